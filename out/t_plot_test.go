// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/saksham7saxena/Stress-Strain-Modeling/ana"
	"github.com/saksham7saxena/Stress-Strain-Modeling/mdl/composite"
	"github.com/saksham7saxena/Stress-Strain-Modeling/uq"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_labels01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("labels01")

	if GetTexLabel("eps") != "$\\varepsilon$" {
		tst.Errorf("wrong label for eps: %q\n", GetTexLabel("eps"))
		return
	}
	if GetTexLabel("sig") != "$\\sigma$" {
		tst.Errorf("wrong label for sig: %q\n", GetTexLabel("sig"))
		return
	}
	// unknown keys are simply wrapped in math mode
	if GetTexLabel("q") != "$q$" {
		tst.Errorf("unknown key must be wrapped: %q\n", GetTexLabel("q"))
		return
	}
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01. stress-strain figures")

	// model and distribution
	mdl, err := composite.New("weighted")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if err = mdl.Init(nil); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	degrees := []float64{0, 30, 60}
	dist, err := composite.NewDistribution(degrees, []float64{0.5, 0.3, 0.2})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// curves
	εs := utl.LinSpace(0.001, 0.3, 50)
	σs, err := mdl.StressCurve(εs, 0.1, dist)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	D, err := ana.TangentModulus(εs, σs)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	vfs := []float64{0.05, 0.1, 0.2}
	sweep, err := ana.VfSweep(mdl, dist, vfs, εs)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	res, err := uq.Run(&uq.Input{
		Model:  mdl,
		Dist:   dist,
		Vf:     0.1,
		Sigma:  0.05,
		Nit:    20,
		Strain: εs,
	}, rand.New(rand.NewSource(1)))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	if chk.Verbose {
		plt.Reset(true, nil)
		PlotStressStrain(εs, σs, StyBase)
		Save("/tmp/composite", "test_plot01_base")

		plt.Reset(true, nil)
		PlotTangent(εs, D)
		Save("/tmp/composite", "test_plot01_tangent")

		plt.Reset(true, nil)
		PlotVfSweep(εs, vfs, sweep)
		Save("/tmp/composite", "test_plot01_sweep")

		plt.Reset(true, nil)
		PlotMonteCarlo(εs, res, σs, 10)
		Save("/tmp/composite", "test_plot01_mc")
	}
}

func Test_plot02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot02. failure figures")

	sth := composite.Strengths{Xt: 2000, Xc: 1000, Yt: 50, Yc: 150, S: 70}
	σ1s := utl.LinSpace(-1.2*sth.Xc, 1.2*sth.Xt, 41)
	σ2s := utl.LinSpace(-1.2*sth.Yc, 1.2*sth.Yt, 41)
	f, err := composite.TsaiHillField(σ1s, σ2s, 0, sth.Xt, sth.Yt, sth.S)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	degrees := utl.LinSpace(0, 90, 91)
	findex := make([]float64, len(degrees))
	for i, deg := range degrees {
		findex[i], err = composite.OffAxisIndex(100, deg*0.017453292519943295, sth)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
	}

	if chk.Verbose {
		plt.Reset(true, nil)
		PlotEnvelope(σ1s, σ2s, f)
		Save("/tmp/composite", "test_plot02_envelope")

		plt.Reset(true, nil)
		PlotOffAxisIndex(degrees, findex, 100)
		Save("/tmp/composite", "test_plot02_offaxis")
	}
}
