// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/saksham7saxena/Stress-Strain-Modeling/mdl/composite"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01")

	mdb, err := ReadMat("data", "materials.mat")
	if err != nil {
		tst.Errorf("cannot read materials.mat:\n%v", err)
		return
	}
	io.Pforan("materials.mat just read: %d materials\n", len(mdb.Materials))
	chk.IntAssert(len(mdb.Materials), 2)

	mat := mdb.Get("carbon-epoxy")
	if mat == nil {
		tst.Errorf("cannot find carbon-epoxy\n")
		return
	}
	w, ok := mat.Mdl.(*composite.Weighted)
	if !ok {
		tst.Errorf("carbon-epoxy must use the weighted model\n")
		return
	}
	chk.Scalar(tst, "Efac", 1e-17, w.Efac, 525)
	chk.IntAssert(w.P, 4)

	sth, err := mat.Strengths()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "Xt", 1e-17, sth.Xt, 2000)
	chk.Scalar(tst, "Xc", 1e-17, sth.Xc, 1000)
	chk.Scalar(tst, "Yt", 1e-17, sth.Yt, 50)
	chk.Scalar(tst, "Yc", 1e-17, sth.Yc, 150)
	chk.Scalar(tst, "S", 1e-17, sth.S, 70)

	mat = mdb.Get("glass-epoxy")
	if mat == nil {
		tst.Errorf("cannot find glass-epoxy\n")
		return
	}
	ht, ok := mat.Mdl.(*composite.HalpinTsai)
	if !ok {
		tst.Errorf("glass-epoxy must use the halpin-tsai model\n")
		return
	}
	chk.Scalar(tst, "Ef", 1e-17, ht.Ef, 72000)
	chk.Scalar(tst, "Em", 1e-17, ht.Em, 3000)
	chk.Scalar(tst, "xi", 1e-17, ht.Xi, 2)

	if mdb.Get("unobtainium") != nil {
		tst.Errorf("unknown material must return nil\n")
		return
	}
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01")

	sim := ReadSim("data/lamina.sim", false, false)
	if sim == nil {
		tst.Errorf("test failed\n")
		return
	}

	io.Pfyel("Key    = %v\n", sim.Key)
	io.Pfyel("DirOut = %v\n", sim.DirOut)
	if sim.Key != "lamina" {
		tst.Errorf("wrong simulation key: %q\n", sim.Key)
		return
	}
	if sim.DirOut != "/tmp/composite/lamina" {
		tst.Errorf("wrong output directory: %q\n", sim.DirOut)
		return
	}

	// analysis data: values from file override defaults
	a := sim.Ana
	chk.Scalar(tst, "vf", 1e-17, a.Vf, 0.2)
	chk.IntAssert(a.Exponent, 4)
	chk.IntAssert(a.EpsNpts, 300)
	chk.IntAssert(a.MCiter, 50)
	chk.Scalar(tst, "mcsigma", 1e-17, a.MCsigma, 0.05)
	if a.MCseed != 42 {
		tst.Errorf("wrong seed: %d\n", a.MCseed)
		return
	}
	if !a.PlotFailure {
		tst.Errorf("plotfailure must be true\n")
		return
	}

	// defaults survive for keys absent from the file
	chk.Vector(tst, "vfs", 1e-17, a.Vfs, []float64{0.05, 0.1, 0.2, 0.3, 0.4, 0.5})
	chk.IntAssert(sim.Dist.Nangles(), 9)

	// strain grid
	εs := sim.StrainGrid()
	chk.IntAssert(len(εs), 300)
	chk.Scalar(tst, "eps first", 1e-17, εs[0], 0.001)
	chk.Scalar(tst, "eps last", 1e-15, εs[len(εs)-1], 0.3)

	// selected material drives the model
	if sim.Mat == nil || sim.Mat.Name != "carbon-epoxy" {
		tst.Errorf("carbon-epoxy must be selected\n")
		return
	}
	w, ok := sim.Model.(*composite.Weighted)
	if !ok {
		tst.Errorf("model must be weighted\n")
		return
	}
	chk.Scalar(tst, "Efac", 1e-17, w.Efac, 525)

	sth, err := sim.Strengths()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "Xt", 1e-17, sth.Xt, 2000)
}
