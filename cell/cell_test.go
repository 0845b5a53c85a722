// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"errors"
	"testing"

	"github.com/Kartik-Khandelwal/hnn-core/chans"
	"github.com/Kartik-Khandelwal/hnn-core/params"
	"github.com/goki/mat32"
)

const difTol = float32(1.0e-6)

func TestNsegFmLen(t *testing.T) {
	cases := []struct {
		l    float32
		nseg int
	}{
		{80, 1},
		{100, 1},
		{101, 3}, // floor(101/50) = 2, incremented to odd
		{150, 3},
		{200, 5}, // floor = 4, incremented to odd
		{255, 5},
		{680, 13},
	}
	for _, cs := range cases {
		if got := NsegFmLen(cs.l); got != cs.nseg {
			t.Errorf("NsegFmLen(%v) = %d, want %d", cs.l, got, cs.nseg)
		}
	}
}

func TestTreeShape(t *testing.T) {
	cases := []struct {
		typ    CellType
		ndends int
	}{
		{L2Pyr, 7},
		{L5Pyr, 8},
		{L2Basket, 0},
		{L5Basket, 0},
	}
	for _, cs := range cases {
		cl, err := New(cs.typ, 0, mat32.Vec3{}, nil)
		if err != nil {
			t.Fatalf("%v: %v", cs.typ, err)
		}
		tr := cl.Tree
		if len(tr.Dends) != cs.ndends {
			t.Errorf("%v: %d dendrites, want %d", cs.typ, len(tr.Dends), cs.ndends)
		}
		if tr.NSects() != cs.ndends+1 {
			t.Errorf("%v: %d sections, want %d", cs.typ, tr.NSects(), cs.ndends+1)
		}
		// single root, acyclic: soma has no parent, every dendrite has one,
		// and walking up from any dendrite terminates at the soma
		if tr.Soma.Par != nil {
			t.Errorf("%v: soma has a parent", cs.typ)
		}
		for nm, dn := range tr.Dends {
			if dn.Par == nil {
				t.Errorf("%v: dendrite %s is unrooted", cs.typ, nm)
				continue
			}
			sc, steps := dn, 0
			for sc.Par != nil {
				sc = sc.Par
				steps++
				if steps > tr.NSects() {
					t.Fatalf("%v: cycle detected walking up from %s", cs.typ, nm)
				}
			}
			if sc != tr.Soma {
				t.Errorf("%v: dendrite %s does not root at the soma", cs.typ, nm)
			}
		}
	}
}

func TestL5PyrTopology(t *testing.T) {
	cl, err := New(L5Pyr, 0, mat32.Vec3{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	tr := cl.Tree
	attach := []struct {
		child, parent string
		parEnd        float32
	}{
		{"apical_trunk", "soma", 1},
		{"apical_1", "apical_trunk", 1},
		{"apical_2", "apical_1", 1},
		{"apical_tuft", "apical_2", 1},
		{"apical_oblique", "apical_trunk", 1},
		{"basal_1", "soma", 0},
		{"basal_2", "basal_1", 1},
		{"basal_3", "basal_1", 1},
	}
	for _, at := range attach {
		dn := tr.Dends[at.child]
		if dn == nil {
			t.Fatalf("missing %s", at.child)
		}
		if dn.Par.Name != at.parent || dn.ParEnd != at.parEnd {
			t.Errorf("%s attaches to %s@%v, want %s@%v", at.child, dn.Par.Name, dn.ParEnd, at.parent, at.parEnd)
		}
	}
}

func TestPathDistances(t *testing.T) {
	cl, err := New(L5Pyr, 0, mat32.Vec3{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	tr := cl.Tree
	// path distances accumulate through the tree, from the soma 0 end
	cases := []struct {
		sect  string
		dist0 float32
	}{
		{"apical_trunk", 39},       // soma L
		{"apical_1", 39 + 102},     // + trunk L
		{"apical_2", 141 + 680},    // + apical_1 L
		{"apical_tuft", 821 + 680}, // + apical_2 L
		{"apical_oblique", 141},    // off trunk distal end
		{"basal_1", 0},             // soma proximal end
		{"basal_2", 85},
		{"basal_3", 85},
	}
	for _, cs := range cases {
		dn := tr.Dends[cs.sect]
		if mat32.Abs(dn.Dist0-cs.dist0) > difTol {
			t.Errorf("%s Dist0 = %v, want %v", cs.sect, dn.Dist0, cs.dist0)
		}
	}
	tuft := tr.Dends["apical_tuft"]
	if mat32.Abs(tuft.MidDist()-(1501+425.0/2)) > difTol {
		t.Errorf("tuft MidDist = %v", tuft.MidDist())
	}
}

func TestYScale(t *testing.T) {
	cl, err := New(L2Pyr, 0, mat32.Vec3{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	tr := cl.Tree
	cos45 := float32(mat32.Sqrt2 / 2)
	cases := []struct {
		sect string
		ys   float32
	}{
		{"soma", 1},
		{"apical_trunk", 1},
		{"apical_1", 1},
		{"apical_tuft", 1},
		{"apical_oblique", 0}, // perpendicular: no net dipole contribution
		{"basal_1", -1},
		{"basal_2", -cos45},
		{"basal_3", -cos45},
	}
	for _, cs := range cases {
		sc := tr.SectByName(cs.sect)
		if mat32.Abs(sc.YScale-cs.ys) > difTol {
			t.Errorf("%s YScale = %v, want %v", cs.sect, sc.YScale, cs.ys)
		}
	}
}

func TestGeometryOverride(t *testing.T) {
	over := params.Params{"L2Pyr_basal2_L": 120, "L2Pyr_soma_diam": 25}
	cl, err := New(L2Pyr, 0, mat32.Vec3{}, over)
	if err != nil {
		t.Fatal(err)
	}
	b2 := cl.Tree.Dends["basal_2"]
	if b2.L != 120 {
		t.Errorf("basal_2 L = %v, want 120", b2.L)
	}
	if b2.Nseg != 3 {
		t.Errorf("basal_2 Nseg = %d, want 3", b2.Nseg)
	}
	if cl.Tree.Soma.Diam != 25 {
		t.Errorf("soma diam = %v, want 25", cl.Tree.Soma.Diam)
	}
}

func TestUnknownOverrideKey(t *testing.T) {
	_, err := New(L2Pyr, 0, mat32.Vec3{}, params.Params{"L2Pyr_basal9_L": 1})
	if err == nil {
		t.Fatal("expected error for unknown override key")
	}
	var uerr *params.UnknownParameterError
	if !errors.As(err, &uerr) {
		t.Errorf("expected UnknownParameterError, got %T", err)
	}
}

func TestBiophysValues(t *testing.T) {
	cl, err := New(L5Pyr, 0, mat32.Vec3{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	sm := cl.Tree.Soma
	hh := sm.Mech("hh2")
	if hh == nil {
		t.Fatal("soma missing hh2")
	}
	if mat32.Abs(hh.Params["gnabar"]-0.16) > difTol {
		t.Errorf("soma gnabar = %v", hh.Params["gnabar"])
	}
	if ar := sm.Mech("ar"); ar == nil || mat32.Abs(ar.Params["gbar"]-1e-6) > difTol {
		t.Errorf("soma ar gbar wrong: %+v", ar)
	}
	// dendrites share one profile; el differs from the soma's
	b1 := cl.Tree.Dends["basal_1"]
	if hh := b1.Mech("hh2"); hh == nil || mat32.Abs(hh.Params["el"]-(-71)) > difTol {
		t.Errorf("dend el wrong")
	}
	if cad := b1.Mech("cad"); cad == nil || mat32.Abs(cad.Params["taur"]-20) > difTol {
		t.Errorf("dend cad taur wrong")
	}
}

func TestARGradient(t *testing.T) {
	cl, err := New(L5Pyr, 0, mat32.Vec3{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	gr := chans.ARGradient
	// density at each section midpoint matches the gradient law, and is
	// strictly larger for sections farther from the soma
	trunk := cl.Tree.Dends["apical_trunk"]
	tuft := cl.Tree.Dends["apical_tuft"]
	for _, dn := range []*Section{trunk, tuft} {
		ar := dn.Mech("ar")
		if ar == nil {
			t.Fatalf("%s missing ar", dn.Name)
		}
		want := gr.Density(dn.MidDist())
		if mat32.Abs(ar.Params["gbar"]-want) > difTol*want {
			t.Errorf("%s ar gbar = %v, want %v", dn.Name, ar.Params["gbar"], want)
		}
	}
	if tuft.Mech("ar").Params["gbar"] <= trunk.Mech("ar").Params["gbar"] {
		t.Errorf("ar density not increasing with path distance")
	}
	// multi-segment sections carry per-segment values at segment midpoints,
	// strictly increasing along the section
	a1 := cl.Tree.Dends["apical_1"]
	segs := a1.Mech("ar").SegVals["gbar"]
	if len(segs) != a1.Nseg {
		t.Fatalf("apical_1 has %d seg values, want %d", len(segs), a1.Nseg)
	}
	for i, frac := range a1.SegMids() {
		want := gr.Density(a1.DistAt(frac))
		if mat32.Abs(segs[i]-want) > difTol*want {
			t.Errorf("seg %d: %v, want %v", i, segs[i], want)
		}
		if i > 0 && segs[i] <= segs[i-1] {
			t.Errorf("seg %d not greater than seg %d", i, i-1)
		}
	}
}

func TestSynapseRegistry(t *testing.T) {
	cases := []struct {
		typ  CellType
		keys []string
	}{
		{L2Pyr, []string{
			"soma_gabaa", "soma_gabab",
			"apicaloblique_ampa", "apicaloblique_nmda",
			"basal2_ampa", "basal2_nmda",
			"basal3_ampa", "basal3_nmda",
			"apicaltuft_ampa", "apicaltuft_nmda"}},
		{L5Pyr, []string{
			"soma_gabaa", "soma_gabab",
			"apicaloblique_ampa", "apicaloblique_nmda",
			"basal2_ampa", "basal2_nmda",
			"basal3_ampa", "basal3_nmda",
			"apicaltuft_ampa", "apicaltuft_nmda", "apicaltuft_gabaa"}},
		{L2Basket, []string{"soma_ampa", "soma_nmda", "soma_gabaa"}},
		{L5Basket, []string{"soma_ampa", "soma_nmda", "soma_gabaa"}},
	}
	for _, cs := range cases {
		cl, err := New(cs.typ, 0, mat32.Vec3{}, nil)
		if err != nil {
			t.Fatalf("%v: %v", cs.typ, err)
		}
		if len(cl.Syns) != len(cs.keys) {
			t.Errorf("%v: %d synapses, want %d", cs.typ, len(cl.Syns), len(cs.keys))
		}
		got := make(map[string]bool, len(cl.Syns))
		for _, key := range cl.SynKeys() {
			got[key.String()] = true
		}
		for _, nm := range cs.keys {
			if !got[nm] {
				t.Errorf("%v: missing synapse %q", cs.typ, nm)
			}
		}
	}
	// only L5Pyr places slow inhibition on the tuft
	l2, _ := New(L2Pyr, 0, mat32.Vec3{}, nil)
	if l2.Syn(ApicalTuft, GABAA) != nil {
		t.Error("L2Pyr should not have apicaltuft_gabaa")
	}
}

func TestSynapseKinetics(t *testing.T) {
	cl, err := New(L2Pyr, 0, mat32.Vec3{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	sy := cl.Syn(ApicalOblique, AMPA)
	if sy == nil {
		t.Fatal("missing apicaloblique_ampa")
	}
	if sy.E != 0 || sy.Tau1 != 0.5 || sy.Tau2 != 5 {
		t.Errorf("ampa kinetics = (%v, %v, %v)", sy.E, sy.Tau1, sy.Tau2)
	}
	if sy.Pos != 0.5 {
		t.Errorf("synapse not at midpoint: %v", sy.Pos)
	}
	if sy.Sect.Name != "apical_oblique" {
		t.Errorf("attached to %s", sy.Sect.Name)
	}
	gb := cl.Syn(Soma, GABAB)
	if gb.E != -80 || gb.Tau1 != 1 || gb.Tau2 != 20 {
		t.Errorf("gabab kinetics = (%v, %v, %v)", gb.E, gb.Tau1, gb.Tau2)
	}
}

func TestMissingCompartment(t *testing.T) {
	// a profile asking for a tuft receptor on a soma-only tree must fail
	prof := basketProfile(L2Basket, "L2Basket")
	prof.Syns = append(prof.Syns, SynKey{Loc: ApicalTuft, Rcpt: GABAA})
	pall, err := params.Resolve(params.L2BasketDefaults(), nil)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := BuildTree(&prof, pall)
	if err != nil {
		t.Fatal(err)
	}
	_, err = CreateSynapses(tr, &prof, pall)
	if err == nil {
		t.Fatal("expected MissingCompartmentError")
	}
	var merr *MissingCompartmentError
	if !errors.As(err, &merr) {
		t.Fatalf("expected MissingCompartmentError, got %T", err)
	}
	if merr.Sect != "apical_tuft" {
		t.Errorf("error names %q", merr.Sect)
	}
}

func TestMissingKineticsKey(t *testing.T) {
	// a kinetics parameter absent from the table must error, never
	// default to zero
	prof := ProfileFor(L2Basket)
	pall, err := params.Resolve(params.L2BasketDefaults(), nil)
	if err != nil {
		t.Fatal(err)
	}
	delete(pall, "L2Basket_gabaa_tau2")
	tr, err := BuildTree(prof, pall)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = CreateSynapses(tr, prof, pall); err == nil {
		t.Fatal("expected error for missing kinetics parameter")
	}
}

func TestLocSyns(t *testing.T) {
	cl, err := New(L5Pyr, 0, mat32.Vec3{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	prox := cl.LocSyns(Proximal, AMPA)
	if len(prox) != 3 {
		t.Fatalf("proximal ampa count = %d, want 3", len(prox))
	}
	dist := cl.LocSyns(Distal, NMDA)
	if len(dist) != 1 || dist[0].Sect.Name != "apical_tuft" {
		t.Errorf("distal nmda wrong: %v", dist)
	}
	// proximal region has no inhibitory receptors on pyramidal cells
	if got := cl.LocSyns(Proximal, GABAB); len(got) != 0 {
		t.Errorf("unexpected proximal gabab: %v", got)
	}

	// basket regions both resolve to the soma
	bk, err := New(L2Basket, 1, mat32.Vec3{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, loc := range []Loc{Proximal, Distal} {
		got := bk.LocSyns(loc, AMPA)
		if len(got) != 1 || got[0].Sect.Name != "soma" {
			t.Errorf("basket %v ampa wrong: %v", loc, got)
		}
	}
}
