// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/saksham7saxena/Stress-Strain-Modeling/mdl/composite"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	Mat     string `json:"mat"`     // name of material to use
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/composite
}

// AnalysisData holds analysis options
type AnalysisData struct {

	// model selection
	Model    string  `json:"model"`    // "weighted" or "halpin-tsai"
	Vf       float64 `json:"vf"`       // fiber volume fraction
	Exponent int     `json:"exponent"` // cosine exponent for the weighted model: 2 or 4

	// strain grid
	EpsIni  float64 `json:"epsini"`  // initial strain
	EpsFin  float64 `json:"epsfin"`  // final strain
	EpsNpts int     `json:"epsnpts"` // number of strain stations

	// orientation distribution
	Angles  []float64 `json:"angles"`  // orientation angles [deg]
	Weights []float64 `json:"weights"` // weighting factors

	// volume-fraction sweep
	Vfs []float64 `json:"vfs"` // volume fractions for sweep (ascending)

	// Monte Carlo
	MCiter   int     `json:"mciter"`   // number of Monte Carlo iterations
	MCsigma  float64 `json:"mcsigma"`  // std deviation of weight perturbation
	MCseed   int64   `json:"mcseed"`   // seed for the random source
	MCclamp  bool    `json:"mcclamp"`  // clamp perturbed weights at zero
	MCrenorm bool    `json:"mcrenorm"` // renormalize perturbed weights to original sum

	// failure analysis
	PlotFailure bool `json:"plotfailure"` // generate Tsai-Hill failure plots
}

// SetDefault sets default values
func (o *AnalysisData) SetDefault() {
	o.Model = "weighted"
	o.Vf = 0.1
	o.Exponent = 4
	o.EpsIni = 0.001
	o.EpsFin = 0.3
	o.EpsNpts = 300
	o.Angles = []float64{0, 10, 20, 30, 40, 50, 60, 70, 80}
	o.Weights = []float64{0.0693, 0.1360, 0.1360, 0.1226, 0.1146, 0.1054, 0.0974, 0.0920, 0.0880}
	o.Vfs = []float64{0.05, 0.1, 0.2, 0.3, 0.4, 0.5}
	o.MCiter = 100
	o.MCsigma = 0.05
	o.MCseed = 1
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data Data         `json:"data"`     // global data
	Ana  AnalysisData `json:"analysis"` // analysis data

	// derived
	Key    string                  // simulation key; e.g. mysim01
	DirOut string                  // output directory
	Mdb    *MatDb                  // materials database
	Mat    *Material               // selected material
	Model  composite.Model         // selected stiffness model
	Dist   *composite.Distribution // orientation distribution
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string, erasePrev, createDirOut bool) *Simulation {

	// new sim
	var o Simulation
	o.Ana.SetDefault()

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	fnkey := io.FnKey(fn)
	o.Key = fnkey

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/composite/" + fnkey
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// erase previous results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// check analysis data
	a := &o.Ana
	if a.Vf < 0 || a.Vf > 1 {
		chk.Panic("ReadSim: volume fraction must be within [0, 1]. vf=%g is incorrect", a.Vf)
	}
	if a.Exponent != 2 && a.Exponent != 4 {
		chk.Panic("ReadSim: cosine exponent must be 2 or 4. exponent=%d is incorrect", a.Exponent)
	}
	if a.EpsNpts < 2 {
		chk.Panic("ReadSim: number of strain stations must be at least 2. epsnpts=%d is incorrect", a.EpsNpts)
	}
	if a.MCiter < 1 {
		chk.Panic("ReadSim: number of Monte Carlo iterations must be at least 1. mciter=%d is incorrect", a.MCiter)
	}
	if a.MCsigma < 0 {
		chk.Panic("ReadSim: Monte Carlo sigma cannot be negative. mcsigma=%g is incorrect", a.MCsigma)
	}

	// orientation distribution
	o.Dist, err = composite.NewDistribution(a.Angles, a.Weights)
	if err != nil {
		chk.Panic("ReadSim: cannot create orientation distribution:\n%v", err)
	}

	// materials database
	if o.Data.Matfile != "" {
		o.Mdb, err = ReadMat(dir, o.Data.Matfile)
		if err != nil {
			chk.Panic("ReadSim: cannot read materials file:\n%v", err)
		}
		o.Mat = o.Mdb.Get(o.Data.Mat)
		if o.Mat == nil {
			chk.Panic("ReadSim: cannot find material %q in materials file", o.Data.Mat)
		}
	}

	// stiffness model: the material database fixes the model when a
	// material is selected; the analysis section selects one otherwise
	name := a.Model
	var prms dbf.Params
	if o.Mat != nil {
		name = o.Mat.Model
		prms = o.Mat.Prms
	}
	o.Model, err = composite.New(name)
	if err != nil {
		chk.Panic("ReadSim: cannot allocate model:\n%v", err)
	}
	if err = o.Model.Init(prms); err != nil {
		chk.Panic("ReadSim: cannot initialise model:\n%v", err)
	}
	if w, ok := o.Model.(*composite.Weighted); ok {
		w.P = a.Exponent
	}
	return &o
}

// StrainGrid returns the strain grid defined by the analysis data
func (o *Simulation) StrainGrid() []float64 {
	return utl.LinSpace(o.Ana.EpsIni, o.Ana.EpsFin, o.Ana.EpsNpts)
}

// Strengths returns the lamina strengths for failure analysis
func (o *Simulation) Strengths() (composite.Strengths, error) {
	if o.Mat != nil {
		return o.Mat.Strengths()
	}
	return composite.Strengths{Xt: 2000, Xc: 1000, Yt: 50, Yc: 150, S: 70}, nil
}
