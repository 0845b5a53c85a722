// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"fmt"
	"strings"

	"github.com/Kartik-Khandelwal/hnn-core/params"
)

// TopolEntry declares one edge of a subtype's fixed tree topology: the
// named child attaches to the named parent at the given end fraction.
// Subtype branching patterns are these declarative tables, consumed by
// the generic tree builder -- subtype differences are data, not code.
type TopolEntry struct {
	Child     string  `desc:"child section name"`
	Parent    string  `desc:"parent section name"`
	ParentEnd float32 `desc:"attachment fraction on the parent: 0 proximal, 1 distal"`
}

// MissingCompartmentError is returned when a biophysics or synapse
// target location does not exist on a subtype's fixed tree -- a
// parameter/subtype mismatch detected at build time.
type MissingCompartmentError struct {
	Cell string
	Sect string
}

func (e *MissingCompartmentError) Error() string {
	return fmt.Sprintf("cell: %s has no compartment named %q", e.Cell, e.Sect)
}

// Tree is the completed compartment tree of one cell: the phase-1
// product consumed by biophysics application and synapse registration
// (phase 2). Once built it is never restructured.
type Tree struct {
	Soma      *Section            `desc:"root compartment"`
	Dends     map[string]*Section `desc:"named dendrite compartments"`
	DendNames []string            `desc:"dendrite names in declaration order, for deterministic iteration"`
}

// SectByName returns the section of given name (soma included),
// nil if not present.
func (tr *Tree) SectByName(name string) *Section {
	if name == "soma" {
		return tr.Soma
	}
	return tr.Dends[name]
}

// Sections returns all sections, soma first then dendrites in
// declaration order.
func (tr *Tree) Sections() []*Section {
	ls := make([]*Section, 0, 1+len(tr.DendNames))
	ls = append(ls, tr.Soma)
	for _, nm := range tr.DendNames {
		ls = append(ls, tr.Dends[nm])
	}
	return ls
}

// NSects returns the total number of sections including the soma.
func (tr *Tree) NSects() int {
	return 1 + len(tr.DendNames)
}

// BuildTree runs phase 1 of cell construction for the given subtype
// profile and resolved parameters: builds the soma and named dendrites,
// wires the fixed topology, assigns geometry (hardcoded defaults
// overwritten by resolved parameters), derives segment counts, path
// distances and axial projection factors. The returned tree is complete
// and immutable; biophysics and synapses are applied in phase 2.
func BuildTree(prof *Profile, pall params.Params) (*Tree, error) {
	tr := &Tree{}
	tr.buildSoma(prof)
	tr.buildDends(prof)
	if err := tr.connectTree(prof); err != nil {
		return nil, err
	}
	tr.setGeometry(prof, pall)
	tr.setDists(tr.Soma, 0)
	return tr, nil
}

// buildSoma creates the single root compartment with the subtype's
// hardcoded default geometry.
func (tr *Tree) buildSoma(prof *Profile) {
	tr.Soma = &Section{
		Name:   "soma",
		L:      prof.Soma.L,
		Diam:   prof.Soma.Diam,
		Cm:     prof.Soma.Cm,
		Ra:     prof.Soma.Ra,
		Nseg:   1,
		YScale: 1,
	}
}

// buildDends creates each named dendrite with its hardcoded default
// geometry (7 for L2Pyr, 8 for L5Pyr, none for baskets).
func (tr *Tree) buildDends(prof *Profile) {
	tr.Dends = make(map[string]*Section, len(prof.Dends))
	for _, dg := range prof.Dends {
		tr.Dends[dg.Name] = &Section{
			Name:   dg.Name,
			L:      dg.L,
			Diam:   dg.Diam,
			Nseg:   1,
			YScale: yScaleFmName(dg.Name),
		}
		tr.DendNames = append(tr.DendNames, dg.Name)
	}
}

// connectTree wires each dendrite to its parent per the subtype's
// topology table. The table ordering is part of the contract: apical
// trunk off the soma distal end, apical branches chained distally, the
// oblique off the trunk, basals off the soma proximal end.
func (tr *Tree) connectTree(prof *Profile) error {
	for _, te := range prof.Topol {
		kid := tr.SectByName(te.Child)
		if kid == nil {
			return &MissingCompartmentError{Cell: prof.Name, Sect: te.Child}
		}
		par := tr.SectByName(te.Parent)
		if par == nil {
			return &MissingCompartmentError{Cell: prof.Name, Sect: te.Parent}
		}
		kid.connectTo(par, te.ParentEnd)
	}
	return nil
}

// setGeometry overwrites the hardcoded defaults with any length,
// diameter, resistivity or capacitance supplied in the resolved
// parameters, then derives the segment counts.
func (tr *Tree) setGeometry(prof *Profile, pall params.Params) {
	sm := tr.Soma
	if l, ok := pall.Get(prof.Name + "_soma_L"); ok {
		sm.L = l
	}
	if dm, ok := pall.Get(prof.Name + "_soma_diam"); ok {
		sm.Diam = dm
	}
	if cm, ok := pall.Get(prof.Name + "_soma_cm"); ok {
		sm.Cm = cm
	}
	if ra, ok := pall.Get(prof.Name + "_soma_Ra"); ok {
		sm.Ra = ra
	}
	sm.Nseg = NsegFmLen(sm.L)
	for _, nm := range tr.DendNames {
		dn := tr.Dends[nm]
		key := sectParamKey(nm)
		if l, ok := pall.Get(prof.Name + "_" + key + "_L"); ok {
			dn.L = l
		}
		if dm, ok := pall.Get(prof.Name + "_" + key + "_diam"); ok {
			dn.Diam = dm
		}
		if cm, ok := pall.Get(prof.Name + "_dend_cm"); ok {
			dn.Cm = cm
		}
		if ra, ok := pall.Get(prof.Name + "_dend_Ra"); ok {
			dn.Ra = ra
		}
		dn.Nseg = NsegFmLen(dn.L)
	}
}

// setDists accumulates path distances through the tree: a child's 0 end
// is at the parent's 0-end distance plus the attachment fraction of the
// parent's length.
func (tr *Tree) setDists(sc *Section, dist0 float32) {
	sc.Dist0 = dist0
	for _, kid := range sc.Kids {
		tr.setDists(kid, dist0+kid.ParEnd*sc.L)
	}
}

// sectParamKey maps a section name to its parameter-key fragment:
// apical_trunk -> apicaltrunk, basal_1 -> basal1.
func sectParamKey(name string) string {
	return strings.ReplaceAll(name, "_", "")
}
