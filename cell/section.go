// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import "github.com/goki/mat32"

// Section is one compartment of neuronal cable: a named node in a tree
// rooted at the soma, with its own geometric and electrical parameters
// and the membrane mechanisms inserted into it. A child attaches to its
// parent at a fixed fraction of the parent (0 = proximal end, 1 = distal
// end); the attachment topology is fixed per cell subtype.
type Section struct {
	Name   string     `desc:"section name, e.g. soma, apical_trunk, basal_2"`
	L      float32    `desc:"length in um"`
	Diam   float32    `desc:"diameter in um"`
	Ra     float32    `desc:"axial resistivity in ohm-cm"`
	Cm     float32    `desc:"membrane capacitance in uF/cm^2"`
	Nseg   int        `desc:"number of discretization segments -- odd whenever > 1 so a node sits exactly at the midpoint"`
	Par    *Section   `json:"-" desc:"parent section -- nil only for the soma root"`
	ParEnd float32    `desc:"attachment fraction on the parent: 0 proximal, 1 distal"`
	Kids   []*Section `json:"-" desc:"child sections attached to this one"`
	Dist0  float32    `desc:"path distance from the soma origin to this section's 0 end, accumulated through the tree (never Euclidean)"`
	YScale float32    `desc:"axial projection factor approximating this section's contribution to the net dipole axis: 1 along the apical axis, negative for basal (opposite direction), cos(45) magnitude for the angled secondary basals, 0 for the perpendicular oblique"`
	Mechs  []MechVals `desc:"membrane mechanisms inserted into this section with their density parameter values"`
}

// MechVals holds the resolved parameter values for one mechanism
// inserted into a section. Most values are uniform over the section;
// parameters that vary along it (the distance gradient) additionally
// carry one value per segment in SegVals.
type MechVals struct {
	Name    string               `desc:"mechanism name, e.g. hh2, km, ar"`
	Params  map[string]float32   `desc:"uniform parameter values, e.g. gkbar: 0.01"`
	SegVals map[string][]float32 `desc:"per-segment values for parameters that vary along the section, indexed in segment order; evaluated at segment midpoints"`
}

// NsegFmLen returns the segment count for a section of given length:
// lengths over 100 um get floor(L/50) segments, incremented to odd if
// even, so every multi-segment section has a node at its midpoint;
// shorter sections keep a single segment.
func NsegFmLen(l float32) int {
	if l <= 100 {
		return 1
	}
	n := int(mat32.Floor(l / 50))
	if n%2 == 0 {
		n++
	}
	return n
}

// DistAt returns the path distance from the soma origin to the given
// fractional position along this section.
func (sc *Section) DistAt(frac float32) float32 {
	return sc.Dist0 + frac*sc.L
}

// MidDist returns the path distance from the soma origin to this
// section's midpoint -- the distance used by the conductance gradient
// and the point where synapses attach.
func (sc *Section) MidDist() float32 {
	return sc.DistAt(0.5)
}

// SegMids returns the fractional positions of the segment midpoints:
// (2i+1)/(2*Nseg) for segment i.
func (sc *Section) SegMids() []float32 {
	mids := make([]float32, sc.Nseg)
	for i := 0; i < sc.Nseg; i++ {
		mids[i] = float32(2*i+1) / float32(2*sc.Nseg)
	}
	return mids
}

// Mech returns the inserted mechanism of given name, nil if not present.
func (sc *Section) Mech(name string) *MechVals {
	for i := range sc.Mechs {
		if sc.Mechs[i].Name == name {
			return &sc.Mechs[i]
		}
	}
	return nil
}

// insertMech returns the mechanism of given name, inserting it first if
// not already present.
func (sc *Section) insertMech(name string) *MechVals {
	if mv := sc.Mech(name); mv != nil {
		return mv
	}
	sc.Mechs = append(sc.Mechs, MechVals{Name: name, Params: make(map[string]float32)})
	return &sc.Mechs[len(sc.Mechs)-1]
}

// connectTo attaches this section to given parent at given end fraction.
func (sc *Section) connectTo(par *Section, parEnd float32) {
	sc.Par = par
	sc.ParEnd = parEnd
	par.Kids = append(par.Kids, sc)
}

// yScaleFmName returns the axial projection factor for a section name:
// basal sections extend opposite the apical axis (negative), basal_2 and
// basal_3 run at 45 degrees to it, and apical_oblique is perpendicular
// and contributes no net dipole.
func yScaleFmName(name string) float32 {
	ys := float32(1)
	switch name {
	case "basal_2", "basal_3":
		ys = mat32.Sqrt2 / 2
	case "apical_oblique":
		return 0
	}
	if len(name) >= 5 && name[:5] == "basal" {
		ys = -ys
	}
	return ys
}
