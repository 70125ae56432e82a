// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/saksham7saxena/Stress-Strain-Modeling/ana"
	"github.com/saksham7saxena/Stress-Strain-Modeling/inp"
	"github.com/saksham7saxena/Stress-Strain-Modeling/mdl/composite"
	"github.com/saksham7saxena/Stress-Strain-Modeling/out"
	"github.com/saksham7saxena/Stress-Strain-Modeling/uq"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			if chk.Verbose {
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "lamina", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)

	// message
	if verbose {
		io.PfWhite("\nStress-Strain Modeling of Fiber-Reinforced Composites\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
		))
	}

	// simulation data
	sim := inp.ReadSim(fnamepath, erasePrev, true)
	εs := sim.StrainGrid()
	if verbose {
		io.Pf("model=%q vf=%g nstrain=%d dirout=%q\n", sim.Ana.Model, sim.Ana.Vf, len(εs), sim.DirOut)
	}

	// baseline stress-strain curve
	σs, err := sim.Model.StressCurve(εs, sim.Ana.Vf, sim.Dist)
	if err != nil {
		chk.Panic("baseline analysis failed:\n%v", err)
	}
	plt.Reset(true, nil)
	out.PlotStressStrain(εs, σs, out.StyBase)
	out.Save(sim.DirOut, fnkey+"-stress-strain")

	// tangent modulus
	D, err := ana.TangentModulus(εs, σs)
	if err != nil {
		chk.Panic("tangent modulus failed:\n%v", err)
	}
	plt.Reset(true, nil)
	out.PlotTangent(εs, D)
	out.Save(sim.DirOut, fnkey+"-tangent")

	// per-angle contributions (weighted model only)
	if w, ok := sim.Model.(*composite.Weighted); ok {
		comp, err := w.StressComponents(εs, sim.Ana.Vf, sim.Dist)
		if err != nil {
			chk.Panic("components analysis failed:\n%v", err)
		}
		plt.Reset(true, nil)
		out.PlotComponents(εs, sim.Ana.Angles, comp)
		out.Save(sim.DirOut, fnkey+"-components")
	}

	// orientation-averaged curve (halpin-tsai only)
	if ht, ok := sim.Model.(*composite.HalpinTsai); ok {
		σo, err := ht.StressCurveOriented(εs, sim.Ana.Vf, sim.Dist)
		if err != nil {
			chk.Panic("oriented analysis failed:\n%v", err)
		}
		plt.Reset(true, nil)
		plt.Plot(εs, σs, &plt.A{C: "b", Ls: "-", Lw: 2, L: "transverse", NoClip: true})
		plt.Plot(εs, σo, &plt.A{C: "g", Ls: "--", Lw: 2, L: "oriented", NoClip: true})
		plt.Gll(out.GetTexLabel("eps"), out.GetTexLabel("sig"), nil)
		out.Save(sim.DirOut, fnkey+"-oriented")
	}

	// volume-fraction sweep
	sweep, err := ana.VfSweep(sim.Model, sim.Dist, sim.Ana.Vfs, εs)
	if err != nil {
		chk.Panic("volume-fraction sweep failed:\n%v", err)
	}
	plt.Reset(true, nil)
	out.PlotVfSweep(εs, sim.Ana.Vfs, sweep)
	out.Save(sim.DirOut, fnkey+"-vf-sweep")

	// Monte Carlo uncertainty
	rng := rand.New(rand.NewSource(sim.Ana.MCseed))
	res, err := uq.Run(&uq.Input{
		Model:  sim.Model,
		Dist:   sim.Dist,
		Vf:     sim.Ana.Vf,
		Sigma:  sim.Ana.MCsigma,
		Nit:    sim.Ana.MCiter,
		Strain: εs,
		Clamp:  sim.Ana.MCclamp,
		Renorm: sim.Ana.MCrenorm,
	}, rng)
	if err != nil {
		chk.Panic("Monte Carlo failed:\n%v", err)
	}
	plt.Reset(true, nil)
	out.PlotMonteCarlo(εs, res, σs, 100)
	out.Save(sim.DirOut, fnkey+"-uncertainty")

	// Tsai-Hill failure analyses
	if sim.Ana.PlotFailure {
		sth, err := sim.Strengths()
		if err != nil {
			chk.Panic("failure analysis failed:\n%v", err)
		}

		// failure envelope over the σ1-σ2 plane
		σ1s := utl.LinSpace(-1.2*sth.Xt, 1.2*sth.Xt, 201)
		σ2s := utl.LinSpace(-1.2*sth.Yc, 1.2*sth.Yc, 201)
		field, err := composite.TsaiHillField(σ1s, σ2s, 0, sth.Xt, sth.Yt, sth.S)
		if err != nil {
			chk.Panic("failure analysis failed:\n%v", err)
		}
		plt.Reset(true, nil)
		out.PlotEnvelope(σ1s, σ2s, field)
		out.Save(sim.DirOut, fnkey+"-envelope")

		// off-axis index at the maximum baseline stress
		σmax := σs[0]
		for _, σ := range σs {
			σmax = utl.Max(σmax, σ)
		}
		degrees := utl.LinSpace(0, 90, 91)
		findex := make([]float64, len(degrees))
		for i, deg := range degrees {
			findex[i], err = composite.OffAxisIndex(σmax, deg*math.Pi/180.0, sth)
			if err != nil {
				chk.Panic("failure analysis failed:\n%v", err)
			}
		}
		plt.Reset(true, nil)
		out.PlotOffAxisIndex(degrees, findex, σmax)
		out.Save(sim.DirOut, fnkey+"-offaxis")
	}

	if verbose {
		io.Pf("analysis complete. plots saved to %s\n", sim.DirOut)
	}
}
