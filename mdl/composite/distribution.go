// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package composite

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Distribution holds a fiber orientation distribution: orientation angles
// paired with empirical weighting factors. Weights need not sum to one.
type Distribution struct {
	Theta []float64 // orientation angles [rad]
	Phi   []float64 // weighting factors φ
}

// NewDistribution returns a distribution from angles in degrees
func NewDistribution(degrees, weights []float64) (dist *Distribution, err error) {
	if len(degrees) != len(weights) {
		return nil, chk.Err("number of angles (%d) and number of weights (%d) must be equal", len(degrees), len(weights))
	}
	if len(degrees) < 1 {
		return nil, chk.Err("orientation distribution must have at least one angle")
	}
	dist = &Distribution{
		Theta: make([]float64, len(degrees)),
		Phi:   make([]float64, len(weights)),
	}
	for i, d := range degrees {
		dist.Theta[i] = d * math.Pi / 180.0
	}
	copy(dist.Phi, weights)
	return
}

// Nangles returns the number of orientation angles
func (o Distribution) Nangles() int {
	return len(o.Theta)
}

// Sum returns the sum of weighting factors
func (o Distribution) Sum() (res float64) {
	for _, φ := range o.Phi {
		res += φ
	}
	return
}

// MomentCos computes the weighted cosine-power moment Σ φi * cos^p(θi)
func (o Distribution) MomentCos(p int) (res float64) {
	for i, θ := range o.Theta {
		res += o.Phi[i] * math.Pow(math.Cos(θ), float64(p))
	}
	return
}

// Clone returns a copy of this distribution
func (o Distribution) Clone() *Distribution {
	d := &Distribution{
		Theta: make([]float64, len(o.Theta)),
		Phi:   make([]float64, len(o.Phi)),
	}
	copy(d.Theta, o.Theta)
	copy(d.Phi, o.Phi)
	return d
}
