// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements derived quantities computed from the output of
// composite stiffness models
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// TangentModulus numerically differentiates a stress curve with respect
// to strain: central differences at interior points and one-sided
// differences at the two boundaries. The strain grid may be non-uniform;
// local spacings are used. The result has the same length as the input.
func TangentModulus(εs, σs []float64) (D []float64, err error) {
	n := len(εs)
	if n != len(σs) {
		return nil, chk.Err("tangent: strain and stress must have the same length. nε=%d, nσ=%d", n, len(σs))
	}
	if n < 2 {
		return nil, chk.Err("tangent: at least two points are required. n=%d is incorrect\n", n)
	}
	D = make([]float64, n)
	for i := 1; i < n-1; i++ {
		hs := εs[i] - εs[i-1]
		hd := εs[i+1] - εs[i]
		if hs == 0 || hd == 0 {
			return nil, chk.Err("tangent: repeated strain value at index %d", i)
		}
		// second-order central difference on a non-uniform grid
		D[i] = (hs*hs*σs[i+1] + (hd*hd-hs*hs)*σs[i] - hd*hd*σs[i-1]) / (hs * hd * (hd + hs))
	}
	h0 := εs[1] - εs[0]
	hn := εs[n-1] - εs[n-2]
	if h0 == 0 || hn == 0 {
		return nil, chk.Err("tangent: repeated strain value at boundary")
	}
	D[0] = (σs[1] - σs[0]) / h0
	D[n-1] = (σs[n-1] - σs[n-2]) / hn
	for i, d := range D {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, chk.Err("tangent: derivative is not finite at index %d", i)
		}
	}
	return
}
