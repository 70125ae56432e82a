// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package composite

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Weighted implements the orientation-weighted rule of mixtures:
//
//	σ = Efac * vf * ε * Σi φi * cos^p(θi)
//
// where p is 4 by default (cos² from strain transformation combined with
// cos² from stress projection) or 2 as an alternate mode.
type Weighted struct {
	Efac float64 // fiber effective-stiffness scale factor
	P    int     // cosine exponent: 4 or 2
}

// add model to factory
func init() {
	allocators["weighted"] = func() Model { return new(Weighted) }
}

// Init initialises model
func (o *Weighted) Init(prms dbf.Params) (err error) {
	o.Efac = 525.0
	o.P = 4
	for _, p := range prms {
		switch p.N {
		case "Efac":
			o.Efac = p.V
		case "exp":
			o.P = int(p.V)
		case "Ef", "Em", "xi", "Xt", "Xc", "Yt", "Yc", "S":
		default:
			return chk.Err("weighted: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.P != 2 && o.P != 4 {
		return chk.Err("weighted: cosine exponent must be 2 or 4. exp=%d is incorrect\n", o.P)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Weighted) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "Efac", V: 525.0},
		&dbf.P{N: "exp", V: 4},
	}
}

// Emod returns the effective modulus: Efac * vf * Σi φi * cos^p(θi)
func (o Weighted) Emod(dist *Distribution, vf float64) (E float64, err error) {
	if vf < 0 || vf > 1 {
		return 0, chk.Err("weighted: volume fraction must be within [0, 1]. vf=%g is incorrect\n", vf)
	}
	if dist == nil || dist.Nangles() < 1 {
		return 0, chk.Err("weighted: orientation distribution must have at least one angle")
	}
	E = o.Efac * vf * dist.MomentCos(o.P)
	if math.IsNaN(E) || math.IsInf(E, 0) {
		return 0, chk.Err("weighted: effective modulus is not finite. E=%v", E)
	}
	return
}

// Stress computes the stress corresponding to one strain value
func (o Weighted) Stress(ε, vf float64, dist *Distribution) (σ float64, err error) {
	E, err := o.Emod(dist, vf)
	if err != nil {
		return
	}
	return E * ε, nil
}

// StressCurve computes stresses over a strain grid
func (o Weighted) StressCurve(εs []float64, vf float64, dist *Distribution) (σs []float64, err error) {
	E, err := o.Emod(dist, vf)
	if err != nil {
		return
	}
	σs = make([]float64, len(εs))
	for i, ε := range εs {
		σs[i] = E * ε
	}
	return
}

// StressComponents computes the stress contribution of each orientation
// angle separately: σ[i][j] = Efac * vf * εs[j] * φi * cos^p(θi). The
// rows sum to the result of StressCurve.
func (o Weighted) StressComponents(εs []float64, vf float64, dist *Distribution) (σ [][]float64, err error) {
	if _, err = o.Emod(dist, vf); err != nil {
		return
	}
	σ = make([][]float64, dist.Nangles())
	for i, θ := range dist.Theta {
		fac := o.Efac * vf * dist.Phi[i] * math.Pow(math.Cos(θ), float64(o.P))
		σ[i] = make([]float64, len(εs))
		for j, ε := range εs {
			σ[i][j] = fac * ε
		}
	}
	return
}
