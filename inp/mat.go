// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/saksham7saxena/Stress-Strain-Modeling/mdl/composite"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Model string     `json:"model"` // name of model; e.g. "weighted", "halpin-tsai"
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Mdl composite.Model // pointer to allocated model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	mats map[string]*Material
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return
	}

	// alloc/init models
	mdb.mats = make(map[string]*Material)
	for _, m := range mdb.Materials {
		if _, ok := mdb.mats[m.Name]; ok {
			return nil, chk.Err("duplicate material named %q in materials file", m.Name)
		}
		m.Mdl, err = composite.New(m.Model)
		if err != nil {
			return
		}
		err = m.Mdl.Init(m.Prms)
		if err != nil {
			return
		}
		mdb.mats[m.Name] = m
	}
	return
}

// Get returns a material by name
func (o MatDb) Get(name string) *Material {
	return o.mats[name]
}

// Strengths extracts lamina strength parameters from the material
// parameters, filling unspecified values with common example strengths
func (o Material) Strengths() (sth composite.Strengths, err error) {
	sth = composite.Strengths{Xt: 2000, Xc: 1000, Yt: 50, Yc: 150, S: 70}
	for _, p := range o.Prms {
		switch p.N {
		case "Xt":
			sth.Xt = p.V
		case "Xc":
			sth.Xc = p.V
		case "Yt":
			sth.Yt = p.V
		case "Yc":
			sth.Yc = p.V
		case "S":
			sth.S = p.V
		}
	}
	if sth.Xt <= 0 || sth.Xc <= 0 || sth.Yt <= 0 || sth.Yc <= 0 || sth.S <= 0 {
		return sth, chk.Err("material %q: strengths must be positive. got %+v", o.Name, sth)
	}
	return
}
