// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package uq implements Monte Carlo uncertainty propagation over the
// orientation weighting factors of composite stiffness models
package uq

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/saksham7saxena/Stress-Strain-Modeling/mdl/composite"
)

// Input holds data to run a Monte Carlo simulation
type Input struct {
	Model  composite.Model         // stiffness model
	Dist   *composite.Distribution // base orientation distribution (not mutated)
	Vf     float64                 // fiber volume fraction
	Sigma  float64                 // standard deviation of multiplicative weight noise
	Nit    int                     // number of iterations
	Strain []float64               // strain grid
	Clamp  bool                    // clamp perturbed weights at zero
	Renorm bool                    // restore the original weight sum after perturbation
}

// Result holds mean and 95% confidence-bound curves plus the full
// ensemble of per-trial curves. Bounds are mean ± 1.96·std computed at
// each strain index; thus Lower ≤ Mean ≤ Upper everywhere.
type Result struct {
	Mean  []float64   // mean stress curve
	Lower []float64   // lower 95% bound
	Upper []float64   // upper 95% bound
	All   [][]float64 // [nit][nstrain] ensemble of stress curves
}

// Run executes the Monte Carlo simulation. Each trial perturbs the
// weighting factors with multiplicative Gaussian noise
//
//	φ'i = φi * (1 + N(0, σ))
//
// on a copy of the base distribution and evaluates the stiffness model
// over the whole strain grid. The random source must be supplied (and
// seeded) by the caller; identical seeds give identical results.
func Run(inp *Input, rng *rand.Rand) (res *Result, err error) {

	// check input
	if inp.Model == nil {
		return nil, chk.Err("montecarlo: stiffness model must be given")
	}
	if inp.Dist == nil || inp.Dist.Nangles() < 1 {
		return nil, chk.Err("montecarlo: orientation distribution must have at least one angle")
	}
	if inp.Nit < 1 {
		return nil, chk.Err("montecarlo: number of iterations must be at least 1. nit=%d is incorrect\n", inp.Nit)
	}
	if inp.Sigma < 0 {
		return nil, chk.Err("montecarlo: noise standard deviation cannot be negative. σ=%g is incorrect\n", inp.Sigma)
	}
	if len(inp.Strain) < 1 {
		return nil, chk.Err("montecarlo: strain grid cannot be empty")
	}
	if rng == nil {
		return nil, chk.Err("montecarlo: random source must be given")
	}

	// trials
	nε := len(inp.Strain)
	res = &Result{All: la.MatAlloc(inp.Nit, nε)}
	target := inp.Dist.Sum()
	for it := 0; it < inp.Nit; it++ {
		d := inp.Dist.Clone()
		for i := range d.Phi {
			d.Phi[i] *= 1.0 + rng.NormFloat64()*inp.Sigma
			if inp.Clamp && d.Phi[i] < 0 {
				d.Phi[i] = 0
			}
		}
		if inp.Renorm {
			if sum := d.Sum(); sum > 0 {
				for i := range d.Phi {
					d.Phi[i] *= target / sum
				}
			}
		}
		σs, e := inp.Model.StressCurve(inp.Strain, inp.Vf, d)
		if e != nil {
			return nil, e
		}
		copy(res.All[it], σs)
	}

	// mean and bounds
	res.Mean = make([]float64, nε)
	res.Lower = make([]float64, nε)
	res.Upper = make([]float64, nε)
	n := float64(inp.Nit)
	for j := 0; j < nε; j++ {
		var mean float64
		for it := 0; it < inp.Nit; it++ {
			mean += res.All[it][j]
		}
		mean /= n
		var vari float64
		for it := 0; it < inp.Nit; it++ {
			d := res.All[it][j] - mean
			vari += d * d
		}
		std := math.Sqrt(vari / n)
		res.Mean[j] = mean
		res.Lower[j] = mean - 1.96*std
		res.Upper[j] = mean + 1.96*std
	}
	return
}
