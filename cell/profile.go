// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"github.com/Kartik-Khandelwal/hnn-core/chans"
	"github.com/Kartik-Khandelwal/hnn-core/params"
)

// SectGeom is the hardcoded default geometry for one section. The
// resolved parameter table can overwrite any of these at build time.
type SectGeom struct {
	Name string  `desc:"section name"`
	L    float32 `desc:"default length in um"`
	Diam float32 `desc:"default diameter in um"`
	Cm   float32 `desc:"default membrane capacitance -- only used for the soma entry; dendrites take theirs from the shared dend parameters"`
	Ra   float32 `desc:"default axial resistivity -- only used for the soma entry"`
}

// Profile declares everything fixed about one cell subtype: tree
// topology, default geometry, the conductance mechanisms per region,
// any distance gradients, and the synapse attachment map. One generic
// builder/applicator consumes any profile, so subtype differences live
// entirely in these tables.
type Profile struct {
	Typ       CellType         `desc:"the subtype this profile describes"`
	Name      string           `desc:"parameter-key prefix, e.g. L5Pyr"`
	Soma      SectGeom         `desc:"soma default geometry"`
	Dends     []SectGeom       `desc:"named dendrites with default geometry, in declaration order"`
	Topol     []TopolEntry     `desc:"fixed tree topology"`
	SomaMechs []chans.Mech     `desc:"mechanisms inserted into the soma"`
	DendMechs []chans.Mech     `desc:"mechanisms shared by all dendrites"`
	DendGrads []chans.Gradient `desc:"dendritic conductance gradients, applied per segment after the tree is connected"`
	Syns      []SynKey         `desc:"synapse attachment map: which (location, receptor) pairs exist on this subtype"`
	Locs      map[Loc][]SynLoc `desc:"grouping of attachment locations into the proximal and distal input regions addressed by external drives"`
}

// ProfileFor returns the fixed profile for given subtype.
func ProfileFor(typ CellType) *Profile {
	switch typ {
	case L2Pyr:
		return &L2PyrProfile
	case L5Pyr:
		return &L5PyrProfile
	case L2Basket:
		return &L2BasketProfile
	default:
		return &L5BasketProfile
	}
}

// DefaultsFor returns the default parameter table for given subtype.
func DefaultsFor(typ CellType) params.Params {
	switch typ {
	case L2Pyr:
		return params.L2PyrDefaults()
	case L5Pyr:
		return params.L5PyrDefaults()
	case L2Basket:
		return params.L2BasketDefaults()
	default:
		return params.L5BasketDefaults()
	}
}

// HasSyn returns true if the profile's attachment map includes the given
// (location, receptor) pair.
func (pf *Profile) HasSyn(key SynKey) bool {
	for _, sk := range pf.Syns {
		if sk == key {
			return true
		}
	}
	return false
}
