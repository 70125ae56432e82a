// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "github.com/cpmech/gosl/plt"

// default curve styles
var (
	StyBase   = &plt.A{C: "b", Ls: "-", Lw: 2, NoClip: true}               // baseline curve
	StyMean   = &plt.A{C: "k", Ls: "--", Lw: 1.5, L: "mean", NoClip: true} // Monte Carlo mean
	StyBound  = &plt.A{C: "gray", Ls: "--", Lw: 1, NoClip: true}           // confidence bounds
	StyTrial  = &plt.A{C: "gray", A: 0.1, Lw: 1}                           // individual Monte Carlo trials
	StyTangnt = &plt.A{C: "r", Ls: "-", Lw: 2, NoClip: true}               // tangent modulus
)

// GetTexLabel returns the TeX label of a quantity key
func GetTexLabel(key string) string {
	switch key {
	case "eps":
		return "$\\varepsilon$"
	case "sig":
		return "$\\sigma$"
	case "sig1":
		return "$\\sigma_1$"
	case "sig2":
		return "$\\sigma_2$"
	case "D":
		return "$d\\sigma/d\\varepsilon$"
	case "vf":
		return "$V_f$"
	case "theta":
		return "$\\theta$"
	case "findex":
		return "$f_{TH}$"
	}
	return "$" + key + "$"
}
