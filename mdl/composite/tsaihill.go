// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package composite

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Strengths holds lamina strength parameters for failure analysis
type Strengths struct {
	Xt float64 // longitudinal tensile strength
	Xc float64 // longitudinal compressive strength
	Yt float64 // transverse tensile strength
	Yc float64 // transverse compressive strength
	S  float64 // in-plane shear strength
}

// TsaiHill computes the Tsai-Hill failure index for a plane-stress
// state; failure is predicted when the index reaches one:
//
//	f = (σ1/X)² - σ1*σ2/X² + (σ2/Y)² + (τ12/S)²
func TsaiHill(σ1, σ2, τ12, X, Y, S float64) float64 {
	return σ1*σ1/(X*X) - σ1*σ2/(X*X) + σ2*σ2/(Y*Y) + τ12*τ12/(S*S)
}

// TsaiHillField evaluates the Tsai-Hill index over a σ1 × σ2 grid at
// fixed τ12, returning f[i][j] = f(σ1s[j], σ2s[i], τ12). The level-one
// contour of this field is the failure envelope.
func TsaiHillField(σ1s, σ2s []float64, τ12, X, Y, S float64) (f [][]float64, err error) {
	if len(σ1s) < 1 || len(σ2s) < 1 {
		return nil, chk.Err("tsai-hill: stress grid cannot be empty. n1=%d, n2=%d", len(σ1s), len(σ2s))
	}
	if X <= 0 || Y <= 0 || S <= 0 {
		return nil, chk.Err("tsai-hill: strengths must be positive. X=%g, Y=%g, S=%g", X, Y, S)
	}
	f = la.MatAlloc(len(σ2s), len(σ1s))
	for i, σ2 := range σ2s {
		for j, σ1 := range σ1s {
			f[i][j] = TsaiHill(σ1, σ2, τ12, X, Y, S)
		}
	}
	return
}

// OffAxisIndex computes the Tsai-Hill index for a lamina whose fibers
// make angle θ [rad] with a uniaxial global stress σx. The stress state
// in lamina axes is
//
//	σ1 = σx c²   σ2 = σx s²   τ12 = -σx s c
//
// and tensile/compressive strengths are selected by the sign of the
// normal components.
func OffAxisIndex(σx, θ float64, sth Strengths) (f float64, err error) {
	if sth.Xt <= 0 || sth.Xc <= 0 || sth.Yt <= 0 || sth.Yc <= 0 || sth.S <= 0 {
		return 0, chk.Err("tsai-hill: strengths must be positive. got %+v", sth)
	}
	if math.IsNaN(σx) || math.IsInf(σx, 0) {
		return 0, chk.Err("tsai-hill: applied stress is not finite. σx=%v", σx)
	}
	c, s := math.Cos(θ), math.Sin(θ)
	σ1 := σx * c * c
	σ2 := σx * s * s
	τ12 := -σx * s * c
	X := sth.Xt
	if σ1 < 0 {
		X = sth.Xc
	}
	Y := sth.Yt
	if σ2 < 0 {
		Y = sth.Yc
	}
	return TsaiHill(σ1, σ2, τ12, X, Y, sth.S), nil
}
