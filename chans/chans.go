// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans describes the membrane conductance mechanisms (ion channel
and pump models) inserted into cell compartments: the standard
sodium/potassium spiking channels (hh2), muscarinic potassium (km),
high-threshold calcium (ca) with its decay pump (cad), calcium-activated
potassium (kca), low-threshold calcium (cat), and the
hyperpolarization-activated mixed current (ar).

The mechanisms themselves are integrated by the external solver; here
they are pure density/parameter descriptors attached to compartments.
*/
package chans

import "github.com/goki/mat32"

// Standard mechanism names as known to the solver.
const (
	HH2 = "hh2"
	Km  = "km"
	Ca  = "ca"
	Cad = "cad"
	KCa = "kca"
	CaT = "cat"
	AR  = "ar"
)

// Mech is one membrane mechanism to insert into a compartment, with the
// parameter names whose values are pulled from a resolved parameter
// table using the {subtype}_{region}_{param}_{mech} key convention
// (e.g. L5Pyr_soma_gkbar_hh2).
type Mech struct {
	Name   string   `desc:"mechanism name as known to the solver, e.g. hh2, km, ca"`
	Params []string `desc:"parameter names set on this mechanism, e.g. gkbar, gl, el"`
}

// Key returns the resolved-parameter table key for given subtype prefix,
// region (soma or dend) and parameter name.
func (mh *Mech) Key(prefix, region, param string) string {
	return prefix + "_" + region + "_" + param + "_" + mh.Name
}

// Gradient is a conductance density that is not a flat parameter but an
// exponential function of path distance from the soma:
// density(d) = Base * exp(K * d). Path distance is accumulated through
// the compartment tree, never Euclidean, and the gradient is evaluated
// at each segment's midpoint when a compartment has multiple segments.
type Gradient struct {
	Mech  string  `desc:"mechanism carrying the graded parameter"`
	Param string  `desc:"graded parameter name, e.g. gbar"`
	Base  float32 `desc:"density at zero distance from the soma"`
	K     float32 `desc:"exponential space constant per length unit"`
}

// Density returns the graded density at given path distance from the soma.
func (gr *Gradient) Density(dist float32) float32 {
	return gr.Base * mat32.Exp(gr.K*dist)
}

// ARGradient is the hyperpolarization-activated (ar) dendritic density
// gradient used by the layer 5 pyramidal subtype.
var ARGradient = Gradient{Mech: AR, Param: "gbar", Base: 1e-6, K: 3e-3}
