// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package composite

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_tsaihill01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tsaihill01. failure index")

	X, Y, S := 2000.0, 50.0, 70.0

	// zero stress gives zero index
	chk.Scalar(tst, "f(0,0,0)", 0, TsaiHill(0, 0, 0, X, Y, S), 0)

	// index is symmetric in the sign of τ12
	fp := TsaiHill(300, 20, 35, X, Y, S)
	fm := TsaiHill(300, 20, -35, X, Y, S)
	io.Pforan("f(+τ) = %v\n", fp)
	chk.Scalar(tst, "τ12 sign symmetry", 1e-17, fp, fm)

	// hand-computed reference
	// (300/2000)² - 300·20/2000² + (20/50)² + (35/70)²
	ref := 0.0225 - 0.0015 + 0.16 + 0.25
	chk.Scalar(tst, "f", 1e-15, fp, ref)

	// pure longitudinal loading
	chk.Scalar(tst, "f below threshold", 1e-15, TsaiHill(1000, 0, 0, X, Y, S), 0.25)
	chk.Scalar(tst, "f at threshold", 1e-15, TsaiHill(2000, 0, 0, X, Y, S), 1.0)
}

func Test_tsaihill02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tsaihill02. index field over stress grid")

	X, Y, S := 2000.0, 50.0, 70.0
	σ1s := utl.LinSpace(-2400, 2400, 49)
	σ2s := utl.LinSpace(-60, 60, 25)
	f, err := TsaiHillField(σ1s, σ2s, 0, X, Y, S)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(len(f), len(σ2s))
	chk.IntAssert(len(f[0]), len(σ1s))

	// spot checks against the scalar criterion
	for _, i := range []int{0, 12, 24} {
		for _, j := range []int{0, 24, 48} {
			chk.Scalar(tst, io.Sf("f[%d][%d]", i, j), 1e-17, f[i][j], TsaiHill(σ1s[j], σ2s[i], 0, X, Y, S))
		}
	}

	// errors
	if _, err := TsaiHillField(nil, σ2s, 0, X, Y, S); err == nil {
		tst.Errorf("empty grid must fail\n")
		return
	}
	if _, err := TsaiHillField(σ1s, σ2s, 0, -X, Y, S); err == nil {
		tst.Errorf("negative strength must fail\n")
		return
	}
}

func Test_tsaihill03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tsaihill03. off-axis uniaxial loading")

	sth := Strengths{Xt: 2000, Xc: 1000, Yt: 50, Yc: 150, S: 70}

	// fibers aligned with the load: only the longitudinal term remains
	fsafe, err := OffAxisIndex(100, 0, sth)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "f @ θ=0, σx=100", 1e-15, fsafe, 0.0025)

	ffail, err := OffAxisIndex(2500, 0, sth)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("fsafe=%v ffail=%v\n", fsafe, ffail)
	chk.Scalar(tst, "f @ θ=0, σx=2500", 1e-15, ffail, 1.5625)

	// compression selects the compressive strength
	fcomp, err := OffAxisIndex(-100, 0, sth)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "f @ θ=0, σx=-100", 1e-15, fcomp, 0.01)

	// non-finite stress must fail
	if _, err := OffAxisIndex(math.Inf(1), 0, sth); err == nil {
		tst.Errorf("non-finite stress must fail\n")
		return
	}
	if _, err := OffAxisIndex(100, 0, Strengths{}); err == nil {
		tst.Errorf("zero strengths must fail\n")
		return
	}
}
