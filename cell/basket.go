// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import "github.com/Kartik-Khandelwal/hnn-core/chans"

// Basket (inhibitory) profiles: a single somatic compartment with
// fast-spiking hh2 biophysics and all receptors on the soma. Both input
// regions resolve to the soma, so proximal and distal drives alike land
// there. The two laminae share the shape; they differ only in parameter
// prefix and in how the network wires them.

func basketProfile(typ CellType, name string) Profile {
	return Profile{
		Typ:  typ,
		Name: name,
		Soma: SectGeom{Name: "soma", L: 39, Diam: 20, Cm: 0.85, Ra: 200},
		SomaMechs: []chans.Mech{
			{Name: chans.HH2, Params: []string{"gkbar", "gnabar", "gl", "el"}},
		},
		Syns: []SynKey{
			{Loc: Soma, Rcpt: AMPA},
			{Loc: Soma, Rcpt: NMDA},
			{Loc: Soma, Rcpt: GABAA},
		},
		Locs: map[Loc][]SynLoc{
			Proximal: {Soma},
			Distal:   {Soma},
		},
	}
}

// L2BasketProfile is the layer 2/3 basket subtype.
var L2BasketProfile = basketProfile(L2Basket, "L2Basket")

// L5BasketProfile is the layer 5 basket subtype.
var L5BasketProfile = basketProfile(L5Basket, "L5Basket")
