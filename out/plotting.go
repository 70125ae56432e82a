// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements plotting of stress-strain analysis results
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"

	"github.com/saksham7saxena/Stress-Strain-Modeling/uq"
)

// PlotStressStrain plots one stress-strain curve
func PlotStressStrain(εs, σs []float64, args *plt.A) {
	plt.Plot(εs, σs, args)
	plt.Gll(GetTexLabel("eps"), GetTexLabel("sig"), nil)
}

// PlotTangent plots the tangent modulus versus strain
func PlotTangent(εs, D []float64) {
	plt.Plot(εs, D, StyTangnt)
	plt.Gll(GetTexLabel("eps"), GetTexLabel("D"), nil)
}

// PlotVfSweep plots one stress-strain curve per volume fraction
func PlotVfSweep(εs, vfs []float64, σ [][]float64) {
	if len(σ) != len(vfs) {
		chk.Panic("number of curves (%d) must match number of volume fractions (%d)", len(σ), len(vfs))
	}
	for i, vf := range vfs {
		plt.Plot(εs, σ[i], &plt.A{L: io.Sf("$V_f=%.2f$", vf), NoClip: true})
	}
	plt.Gll(GetTexLabel("eps"), GetTexLabel("sig"), nil)
}

// PlotComponents plots the per-angle stress contributions of the
// weighted model
func PlotComponents(εs, degrees []float64, σ [][]float64) {
	if len(σ) != len(degrees) {
		chk.Panic("number of curves (%d) must match number of angles (%d)", len(σ), len(degrees))
	}
	for i, deg := range degrees {
		plt.Plot(εs, σ[i], &plt.A{L: io.Sf("$\\theta=%g$", deg), NoClip: true})
	}
	plt.Gll(GetTexLabel("eps"), GetTexLabel("sig"), nil)
}

// PlotMonteCarlo plots the Monte Carlo ensemble (up to maxTrials grey
// curves), the mean curve, the confidence bounds and the baseline curve
func PlotMonteCarlo(εs []float64, res *uq.Result, base []float64, maxTrials int) {
	n := len(res.All)
	if maxTrials >= 0 && n > maxTrials {
		n = maxTrials
	}
	for it := 0; it < n; it++ {
		plt.Plot(εs, res.All[it], StyTrial)
	}
	if base != nil {
		plt.Plot(εs, base, &plt.A{C: "b", Ls: "-", Lw: 2, L: "baseline", NoClip: true})
	}
	plt.Plot(εs, res.Mean, StyMean)
	plt.Plot(εs, res.Lower, &plt.A{C: "gray", Ls: "--", Lw: 1, L: "95% bounds", NoClip: true})
	plt.Plot(εs, res.Upper, StyBound)
	plt.Gll(GetTexLabel("eps"), GetTexLabel("sig"), nil)
}

// PlotEnvelope draws the level-one contour of a Tsai-Hill index field
// over the σ1 × σ2 plane; the contour is the failure envelope
func PlotEnvelope(σ1s, σ2s []float64, f [][]float64) {
	n1, n2 := len(σ1s), len(σ2s)
	xx := la.MatAlloc(n2, n1)
	yy := la.MatAlloc(n2, n1)
	for i := 0; i < n2; i++ {
		for j := 0; j < n1; j++ {
			xx[i][j] = σ1s[j]
			yy[i][j] = σ2s[i]
		}
	}
	plt.ContourL(xx, yy, f, &plt.A{Colors: []string{"k"}, Levels: []float64{1}, Lw: 1.5})
	plt.Gll(GetTexLabel("sig1"), GetTexLabel("sig2"), nil)
}

// PlotOffAxisIndex plots the off-axis failure index versus fiber angle
// with the failure threshold marked
func PlotOffAxisIndex(degrees, f []float64, σx float64) {
	plt.Plot(degrees, f, &plt.A{C: "b", Ls: "-", Lw: 2, L: io.Sf("$f_{TH}$ @ $\\sigma_x=%.1f$", σx), NoClip: true})
	plt.Plot([]float64{degrees[0], degrees[len(degrees)-1]}, []float64{1, 1}, &plt.A{C: "r", Ls: "--", L: "failure"})
	plt.Gll(GetTexLabel("theta"), GetTexLabel("findex"), nil)
}

// Save saves the current figure as dirout/fnkey.png
func Save(dirout, fnkey string) {
	err := plt.Save(dirout, fnkey)
	if err != nil {
		chk.Panic("cannot save figure:\n%v", err)
	}
}
