// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/saksham7saxena/Stress-Strain-Modeling/mdl/composite"
)

// VfSweep evaluates the stress curve of a stiffness model at each of a
// strictly ascending sequence of volume fractions. The result is a
// matrix σ[i][j] corresponding to vfs[i] and εs[j]; it also serves as
// heatmap data over the (strain, vf) plane.
func VfSweep(mdl composite.Model, dist *composite.Distribution, vfs, εs []float64) (σ [][]float64, err error) {
	if err = checkAscending(vfs); err != nil {
		return
	}
	σ = la.MatAlloc(len(vfs), len(εs))
	for i, vf := range vfs {
		row, e := mdl.StressCurve(εs, vf, dist)
		if e != nil {
			return nil, e
		}
		copy(σ[i], row)
	}
	return
}

// EmodSweep evaluates the effective modulus at each of a strictly
// ascending sequence of volume fractions
func EmodSweep(mdl composite.Model, dist *composite.Distribution, vfs []float64) (E []float64, err error) {
	if err = checkAscending(vfs); err != nil {
		return
	}
	E = make([]float64, len(vfs))
	for i, vf := range vfs {
		E[i], err = mdl.Emod(dist, vf)
		if err != nil {
			return nil, err
		}
	}
	return
}

func checkAscending(vfs []float64) error {
	if len(vfs) < 1 {
		return chk.Err("sweep: at least one volume fraction is required")
	}
	for i := 1; i < len(vfs); i++ {
		if vfs[i] <= vfs[i-1] {
			return chk.Err("sweep: volume fractions must be strictly ascending. vfs[%d]=%g, vfs[%d]=%g", i-1, vfs[i-1], i, vfs[i])
		}
	}
	return nil
}
