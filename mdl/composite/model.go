// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package composite implements stiffness models for fiber-reinforced
// composite laminae under plane-stress, linear-elastic conditions
package composite

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for composite stiffness models
type Model interface {

	// Init initialises model with given constituent parameters
	Init(prms dbf.Params) error

	// GetPrms gets (an example) of parameters
	GetPrms() dbf.Params

	// Emod returns the effective modulus for a given orientation
	// distribution and fiber volume fraction
	Emod(dist *Distribution, vf float64) (float64, error)

	// Stress computes the stress corresponding to one strain value
	Stress(ε, vf float64, dist *Distribution) (float64, error)

	// StressCurve computes stresses over a strain grid. The result is
	// identical to calling Stress at each grid point.
	StressCurve(εs []float64, vf float64, dist *Distribution) ([]float64, error)
}

// New returns new composite stiffness model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'composite' database", name)
	}
	return allocator(), nil
}

// allocators holds all available composite models; modelname => allocator
var allocators = map[string]func() Model{}
