// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package composite

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// TolSingular is the tolerance below which the Halpin-Tsai denominator
// 1 - η*vf is considered singular
const TolSingular = 1e-9

// HalpinTsai implements the semi-empirical Halpin-Tsai micromechanics
// model:
//
//	η = (Ef/Em - 1) / (Ef/Em + ξ)
//	E = Em * (1 + ξ*η*vf) / (1 - η*vf)
//	σ = E * ε
//
// The orientation distribution does not affect the basic effective
// modulus; EmodOriented averages the off-axis modulus Ex(θ) over a
// distribution using the compliance transformation.
type HalpinTsai struct {
	Ef  float64 // fiber modulus
	Em  float64 // matrix modulus
	Xi  float64 // ξ: fiber aspect-ratio reinforcement factor
	Gf  float64 // fiber shear modulus
	Gm  float64 // matrix shear modulus
	Nuf float64 // fiber Poisson's ratio
	Num float64 // matrix Poisson's ratio
}

// add model to factory
func init() {
	allocators["halpin-tsai"] = func() Model { return new(HalpinTsai) }
}

// Init initialises model
func (o *HalpinTsai) Init(prms dbf.Params) (err error) {
	o.Ef = 230000.0
	o.Em = 3000.0
	o.Xi = 2.0
	o.Gf = 50000.0
	o.Gm = 1200.0
	o.Nuf = 0.2
	o.Num = 0.35
	for _, p := range prms {
		switch p.N {
		case "Ef":
			o.Ef = p.V
		case "Em":
			o.Em = p.V
		case "xi":
			o.Xi = p.V
		case "Gf":
			o.Gf = p.V
		case "Gm":
			o.Gm = p.V
		case "nuf":
			o.Nuf = p.V
		case "num":
			o.Num = p.V
		case "Efac", "exp", "Xt", "Xc", "Yt", "Yc", "S":
		default:
			return chk.Err("halpin-tsai: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Em <= 0 {
		return chk.Err("halpin-tsai: matrix modulus must be positive. Em=%g is incorrect\n", o.Em)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o HalpinTsai) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "Ef", V: 230000.0},
		&dbf.P{N: "Em", V: 3000.0},
		&dbf.P{N: "xi", V: 2.0},
		&dbf.P{N: "Gf", V: 50000.0},
		&dbf.P{N: "Gm", V: 1200.0},
		&dbf.P{N: "nuf", V: 0.2},
		&dbf.P{N: "num", V: 0.35},
	}
}

// halpin implements the Halpin-Tsai closed form for a modulus pair
func halpin(pf, pm, ξ, vf float64) (p float64, err error) {
	η := (pf/pm - 1.0) / (pf/pm + ξ)
	den := 1.0 - η*vf
	if math.Abs(den) < TolSingular {
		return 0, chk.Err("halpin-tsai: model is singular: 1-η*vf=%v is too close to zero (η=%v, vf=%v)", den, η, vf)
	}
	p = pm * (1.0 + ξ*η*vf) / den
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, chk.Err("halpin-tsai: modulus is not finite")
	}
	return
}

// Emod returns the Halpin-Tsai effective modulus. The distribution
// argument is accepted for interface uniformity and is not used.
func (o HalpinTsai) Emod(dist *Distribution, vf float64) (E float64, err error) {
	if vf < 0 || vf > 1 {
		return 0, chk.Err("halpin-tsai: volume fraction must be within [0, 1]. vf=%g is incorrect\n", vf)
	}
	return halpin(o.Ef, o.Em, o.Xi, vf)
}

// Stress computes the stress corresponding to one strain value
func (o HalpinTsai) Stress(ε, vf float64, dist *Distribution) (σ float64, err error) {
	E, err := o.Emod(dist, vf)
	if err != nil {
		return
	}
	return E * ε, nil
}

// StressCurve computes stresses over a strain grid
func (o HalpinTsai) StressCurve(εs []float64, vf float64, dist *Distribution) (σs []float64, err error) {
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

// E1rom returns the longitudinal modulus by the rule of mixtures
func (o HalpinTsai) E1rom(vf float64) float64 {
	return o.Ef*vf + o.Em*(1.0-vf)
}

// Nu12 returns the major Poisson's ratio by the rule of mixtures
func (o HalpinTsai) Nu12(vf float64) float64 {
	return o.Nuf*vf + o.Num*(1.0-vf)
}

// G12 returns the in-plane shear modulus by Halpin-Tsai with ξ=1
func (o HalpinTsai) G12(vf float64) (G float64, err error) {
	return halpin(o.Gf, o.Gm, 1.0, vf)
}

// Ex returns the off-axis modulus at angle θ [rad] from the compliance
// transformation:
//
//	1/Ex = c⁴/E1 + c²s²(1/G12 - 2ν12/E1) + s⁴/E2
func (o HalpinTsai) Ex(θ, vf float64) (Ex float64, err error) {
	E2, err := halpin(o.Ef, o.Em, o.Xi, vf)
	if err != nil {
		return
	}
	G12, err := o.G12(vf)
	if err != nil {
		return
	}
	E1 := o.E1rom(vf)
	ν12 := o.Nu12(vf)
	c, s := math.Cos(θ), math.Sin(θ)
	c2, s2 := c*c, s*s
	invEx := c2*c2/E1 + c2*s2*(1.0/G12-2.0*ν12/E1) + s2*s2/E2
	if invEx < TolSingular {
		return 0, chk.Err("halpin-tsai: off-axis compliance 1/Ex=%v is too close to zero", invEx)
	}
	return 1.0 / invEx, nil
}

// StressCurveOriented computes stresses over a strain grid with the
// orientation-averaged modulus from EmodOriented
func (o HalpinTsai) StressCurveOriented(εs []float64, vf float64, dist *Distribution) (σs []float64, err error) {
	E, err := o.EmodOriented(dist, vf)
	if err != nil {
		return
	}
	σs = make([]float64, len(εs))
	for i, ε := range εs {
		σs[i] = E * ε
	}
	return
}

// EmodOriented averages the off-axis modulus over an orientation
// distribution: E = Σi φi * Ex(θi)
func (o HalpinTsai) EmodOriented(dist *Distribution, vf float64) (E float64, err error) {
	if vf < 0 || vf > 1 {
		return 0, chk.Err("halpin-tsai: volume fraction must be within [0, 1]. vf=%g is incorrect\n", vf)
	}
	if dist == nil || dist.Nangles() < 1 {
		return 0, chk.Err("halpin-tsai: orientation distribution must have at least one angle")
	}
	for i, θ := range dist.Theta {
		Ex, e := o.Ex(θ, vf)
		if e != nil {
			return 0, e
		}
		E += dist.Phi[i] * Ex
	}
	return
}
