// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cell constructs the multi-compartment cable models of the column:
the fixed-topology compartment (section) trees per cell subtype, their
geometric and biophysical properties, and the typed synapse (receptor)
instances at fixed anatomical attachment points.

Construction is a two-phase protocol. Phase 1 (BuildTree) produces the
complete, immutable tree: soma plus named dendrites, connected per the
subtype's declarative topology table, with geometry, segment counts and
path distances assigned. Phase 2 (ApplyBiophys, CreateSynapses) consumes
only completed trees, so distance-dependent properties can never be
computed against a half-wired cell. New runs both phases and is the only
constructor most callers need.
*/
package cell

import (
	"github.com/Kartik-Khandelwal/hnn-core/params"
	"github.com/goki/mat32"
)

// Cell is one constructed neuron: a unique global id (gid), an immutable
// spatial position, a subtype tag, the compartment tree, and the named
// synapse instances. The cell exclusively owns its compartments and
// synapses; connection edges reference the synapses but never own them.
type Cell struct {
	Gid  int                 `desc:"globally unique id across all populations and drive sources"`
	Typ  CellType            `desc:"cell subtype"`
	Pos  mat32.Vec3          `desc:"spatial position, set once at creation; connectivity uses the planar (X, Y) projection"`
	Prof *Profile            `json:"-" desc:"the subtype profile this cell was built from"`
	PAll params.Params       `desc:"complete resolved parameter table"`
	Tree *Tree               `desc:"compartment tree rooted at the soma"`
	Syns map[SynKey]*Synapse `desc:"synapse instances keyed by (location, receptor)"`
}

// New constructs a complete cell of given subtype at given position,
// resolving the sparse overrides against the subtype's default parameter
// table. It runs the full sequence: resolve, build tree, apply
// biophysics, create synapses -- and returns an error (never a partial
// cell) if any step fails.
func New(typ CellType, gid int, pos mat32.Vec3, overrides params.Params) (*Cell, error) {
	prof := ProfileFor(typ)
	pall, err := params.Resolve(DefaultsFor(typ), overrides)
	if err != nil {
		return nil, err
	}
	tr, err := BuildTree(prof, pall)
	if err != nil {
		return nil, err
	}
	if err := ApplyBiophys(tr, prof, pall); err != nil {
		return nil, err
	}
	syns, err := CreateSynapses(tr, prof, pall)
	if err != nil {
		return nil, err
	}
	return &Cell{Gid: gid, Typ: typ, Pos: pos, Prof: prof, PAll: pall, Tree: tr, Syns: syns}, nil
}

// Syn returns the synapse at given (location, receptor), nil if the
// subtype does not place one there.
func (cl *Cell) Syn(loc SynLoc, rcpt Receptor) *Synapse {
	return cl.Syns[SynKey{Loc: loc, Rcpt: rcpt}]
}

// SynKeys returns the cell's synapse keys in deterministic order.
func (cl *Cell) SynKeys() []SynKey {
	return sortSynKeys(cl.Syns)
}

// LocSyns returns the synapses of given receptor kind within the given
// input region (proximal or distal), in the region's declared location
// order. Locations in the region that lack the receptor are skipped.
func (cl *Cell) LocSyns(loc Loc, rcpt Receptor) []*Synapse {
	var ss []*Synapse
	for _, sl := range cl.Prof.Locs[loc] {
		if sy := cl.Syn(sl, rcpt); sy != nil {
			ss = append(ss, sy)
		}
	}
	return ss
}
