// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import "github.com/Kartik-Khandelwal/hnn-core/chans"

// Pyramidal profiles. Default geometry follows the Bush-style reduced
// morphologies (L2 values increased 70 percent for human); all of it can
// be overwritten through the resolved parameter tables.

var hh2Mech = chans.Mech{Name: chans.HH2, Params: []string{"gkbar", "gnabar", "gl", "el"}}

// L2PyrProfile is the layer 2/3 pyramidal subtype: 7 dendrites (one
// apical segment), passive-plus-km biophysics throughout.
var L2PyrProfile = Profile{
	Typ:  L2Pyr,
	Name: "L2Pyr",
	Soma: SectGeom{Name: "soma", L: 22.1, Diam: 23.4, Cm: 0.6195, Ra: 200},
	Dends: []SectGeom{
		{Name: "apical_trunk", L: 59.5, Diam: 4.25},
		{Name: "apical_oblique", L: 340, Diam: 3.91},
		{Name: "apical_1", L: 306, Diam: 4.08},
		{Name: "apical_tuft", L: 238, Diam: 3.4},
		{Name: "basal_1", L: 85, Diam: 4.25},
		{Name: "basal_2", L: 255, Diam: 2.72},
		{Name: "basal_3", L: 255, Diam: 2.72},
	},
	Topol: []TopolEntry{
		{Child: "apical_trunk", Parent: "soma", ParentEnd: 1},
		{Child: "apical_1", Parent: "apical_trunk", ParentEnd: 1},
		{Child: "apical_tuft", Parent: "apical_1", ParentEnd: 1},
		{Child: "apical_oblique", Parent: "apical_trunk", ParentEnd: 1},
		{Child: "basal_1", Parent: "soma", ParentEnd: 0},
		{Child: "basal_2", Parent: "basal_1", ParentEnd: 1},
		{Child: "basal_3", Parent: "basal_1", ParentEnd: 1},
	},
	SomaMechs: []chans.Mech{
		hh2Mech,
		{Name: chans.Km, Params: []string{"gbar"}},
	},
	DendMechs: []chans.Mech{
		hh2Mech,
		{Name: chans.Km, Params: []string{"gbar"}},
	},
	Syns: []SynKey{
		{Loc: Soma, Rcpt: GABAA},
		{Loc: Soma, Rcpt: GABAB},
		{Loc: ApicalOblique, Rcpt: AMPA},
		{Loc: ApicalOblique, Rcpt: NMDA},
		{Loc: Basal2, Rcpt: AMPA},
		{Loc: Basal2, Rcpt: NMDA},
		{Loc: Basal3, Rcpt: AMPA},
		{Loc: Basal3, Rcpt: NMDA},
		{Loc: ApicalTuft, Rcpt: AMPA},
		{Loc: ApicalTuft, Rcpt: NMDA},
	},
	Locs: map[Loc][]SynLoc{
		Proximal: {ApicalOblique, Basal2, Basal3},
		Distal:   {ApicalTuft},
	},
}

// L5PyrProfile is the layer 5 pyramidal subtype: 8 dendrites (a second
// apical segment chained between apical_1 and the tuft), active calcium
// and potassium mechanisms, and the hyperpolarization-activated (ar)
// conductance whose dendritic density grows exponentially with path
// distance from the soma. The tuft additionally carries a slow
// inhibitory receptor.
var L5PyrProfile = Profile{
	Typ:  L5Pyr,
	Name: "L5Pyr",
	Soma: SectGeom{Name: "soma", L: 39, Diam: 28.9, Cm: 0.85, Ra: 200},
	Dends: []SectGeom{
		{Name: "apical_trunk", L: 102, Diam: 10.2},
		{Name: "apical_oblique", L: 255, Diam: 5.1},
		{Name: "apical_1", L: 680, Diam: 7.48},
		{Name: "apical_2", L: 680, Diam: 4.93},
		{Name: "apical_tuft", L: 425, Diam: 3.4},
		{Name: "basal_1", L: 85, Diam: 6.8},
		{Name: "basal_2", L: 255, Diam: 8.5},
		{Name: "basal_3", L: 255, Diam: 8.5},
	},
	Topol: []TopolEntry{
		{Child: "apical_trunk", Parent: "soma", ParentEnd: 1},
		{Child: "apical_1", Parent: "apical_trunk", ParentEnd: 1},
		{Child: "apical_2", Parent: "apical_1", ParentEnd: 1},
		{Child: "apical_tuft", Parent: "apical_2", ParentEnd: 1},
		{Child: "apical_oblique", Parent: "apical_trunk", ParentEnd: 1},
		{Child: "basal_1", Parent: "soma", ParentEnd: 0},
		{Child: "basal_2", Parent: "basal_1", ParentEnd: 1},
		{Child: "basal_3", Parent: "basal_1", ParentEnd: 1},
	},
	SomaMechs: []chans.Mech{
		hh2Mech,
		{Name: chans.Ca, Params: []string{"gbar"}},
		{Name: chans.Cad, Params: []string{"taur"}},
		{Name: chans.KCa, Params: []string{"gbar"}},
		{Name: chans.Km, Params: []string{"gbar"}},
		{Name: chans.CaT, Params: []string{"gbar"}},
		{Name: chans.AR, Params: []string{"gbar"}},
	},
	DendMechs: []chans.Mech{
		hh2Mech,
		{Name: chans.Ca, Params: []string{"gbar"}},
		{Name: chans.Cad, Params: []string{"taur"}},
		{Name: chans.KCa, Params: []string{"gbar"}},
		{Name: chans.Km, Params: []string{"gbar"}},
		{Name: chans.CaT, Params: []string{"gbar"}},
		// ar is inserted by the gradient below
	},
	DendGrads: []chans.Gradient{chans.ARGradient},
	Syns: []SynKey{
		{Loc: Soma, Rcpt: GABAA},
		{Loc: Soma, Rcpt: GABAB},
		{Loc: ApicalOblique, Rcpt: AMPA},
		{Loc: ApicalOblique, Rcpt: NMDA},
		{Loc: Basal2, Rcpt: AMPA},
		{Loc: Basal2, Rcpt: NMDA},
		{Loc: Basal3, Rcpt: AMPA},
		{Loc: Basal3, Rcpt: NMDA},
		{Loc: ApicalTuft, Rcpt: AMPA},
		{Loc: ApicalTuft, Rcpt: NMDA},
		{Loc: ApicalTuft, Rcpt: GABAA},
	},
	Locs: map[Loc][]SynLoc{
		Proximal: {ApicalOblique, Basal2, Basal3},
		Distal:   {ApicalTuft},
	},
}
