// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"sync"
	"testing"
)

func TestGidRanges(t *testing.T) {
	gs := GidSpace{}
	r1, err := gs.Add("L2Basket", 35)
	if err != nil {
		t.Error(err)
	}
	r2, err := gs.Add("L2Pyr", 100)
	if err != nil {
		t.Error(err)
	}
	r3, err := gs.Add("evprox1", 270)
	if err != nil {
		t.Error(err)
	}
	gs.Finalize()

	if r1.Start != 0 || r1.End() != 35 {
		t.Errorf("L2Basket range %v, want [0,35)", r1)
	}
	if r2.Start != 35 || r2.End() != 135 {
		t.Errorf("L2Pyr range %v, want [35,135)", r2)
	}
	if r3.Start != 135 || r3.End() != 405 {
		t.Errorf("evprox1 range %v, want [135,405)", r3)
	}
	if gs.Total() != 405 {
		t.Errorf("total %d, want 405", gs.Total())
	}
}

func TestGidLookups(t *testing.T) {
	gs := GidSpace{}
	gs.Add("L2Basket", 35)
	gs.Add("L2Pyr", 100)
	gs.Finalize()

	nm, ok := gs.PopOf(34)
	if !ok || nm != "L2Basket" {
		t.Errorf("PopOf(34) = %v, %v", nm, ok)
	}
	nm, ok = gs.PopOf(35)
	if !ok || nm != "L2Pyr" {
		t.Errorf("PopOf(35) = %v, %v", nm, ok)
	}
	if _, ok := gs.PopOf(135); ok {
		t.Errorf("PopOf(135) should be outside all ranges")
	}
	if idx := gs.IdxOf(40); idx != 5 {
		t.Errorf("IdxOf(40) = %d, want 5", idx)
	}
	if idx := gs.IdxOf(500); idx != -1 {
		t.Errorf("IdxOf(500) = %d, want -1", idx)
	}
}

func TestGidErrors(t *testing.T) {
	gs := GidSpace{}
	gs.Add("L2Pyr", 10)
	if _, err := gs.Add("L2Pyr", 10); err == nil {
		t.Errorf("duplicate range name should error")
	}
	gs.Finalize()
	if _, err := gs.Add("L5Pyr", 10); err == nil {
		t.Errorf("add after finalize should error")
	}
}

func TestDriveKindParse(t *testing.T) {
	cases := []struct {
		typ  string
		kind DriveKind
		ok   bool
	}{
		{"evprox1", EvProx, true},
		{"evprox2", EvProx, true},
		{"evdist1", EvDist, true},
		{"extgauss", ExtGauss, true},
		{"extpois", ExtPois, true},
		{"extgauss2", DriveKindN, false},
		{"bogus", DriveKindN, false},
	}
	for _, c := range cases {
		k, ok := ParseDriveKind(c.typ)
		if ok != c.ok || (ok && k != c.kind) {
			t.Errorf("ParseDriveKind(%q) = %v, %v, want %v, %v", c.typ, k, ok, c.kind, c.ok)
		}
	}
}

func TestDriveEventTimes(t *testing.T) {
	ev := &DriveSpec{Name: "evprox1", Type: "evprox1", T0: 20, Sigma: 3, Seed: 42}
	ts1 := ev.EventTimes(7)
	ts2 := ev.EventTimes(7)
	if len(ts1) != 1 || len(ts2) != 1 {
		t.Fatalf("evoked drive should produce one event, got %d and %d", len(ts1), len(ts2))
	}
	if ts1[0] != ts2[0] {
		t.Errorf("same seed and index should repeat: %v vs %v", ts1[0], ts2[0])
	}
	if ts1[0] < 0 {
		t.Errorf("event time %v should be clamped non-negative", ts1[0])
	}

	ev.Sigma = 0
	ts := ev.EventTimes(0)
	if len(ts) != 1 || ts[0] != 20 {
		t.Errorf("zero jitter should return T0 exactly, got %v", ts)
	}

	ps := &DriveSpec{Name: "extpois", Type: "extpois", T0: 0, T1: 1000, Rate: 10, Seed: 7}
	ta := ps.EventTimes(3)
	tb := ps.EventTimes(3)
	if len(ta) == 0 {
		t.Fatalf("poisson drive at 10 Hz over 1 s should produce events")
	}
	if len(ta) != len(tb) {
		t.Fatalf("poisson trains differ in length: %d vs %d", len(ta), len(tb))
	}
	for i := range ta {
		if ta[i] != tb[i] {
			t.Errorf("poisson event %d differs: %v vs %v", i, ta[i], tb[i])
		}
		if ta[i] < ps.T0 || ta[i] >= ps.T1 {
			t.Errorf("poisson event %v outside [%v,%v)", ta[i], ps.T0, ps.T1)
		}
		if i > 0 && ta[i] <= ta[i-1] {
			t.Errorf("poisson events not increasing at %d: %v then %v", i, ta[i-1], ta[i])
		}
	}

	bad := &DriveSpec{Name: "x", Type: "bogus"}
	if ts := bad.EventTimes(0); ts != nil {
		t.Errorf("unrecognized drive type should produce no events, got %v", ts)
	}
}

func TestDriveEventTimesConcurrent(t *testing.T) {
	ds := &DriveSpec{Name: "extpois", Type: "extpois", T0: 0, T1: 500, Rate: 40, Seed: 11}
	nunits := 16
	want := make([][]float32, nunits)
	for i := range want {
		want[i] = ds.EventTimes(i)
	}
	got := make([][]float32, nunits)
	var wg sync.WaitGroup
	for i := 0; i < nunits; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = ds.EventTimes(i)
		}(i)
	}
	wg.Wait()
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("unit %d train length %d under concurrency, want %d", i, len(got[i]), len(want[i]))
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("unit %d event %d = %v under concurrency, want %v", i, j, got[i][j], want[i][j])
			}
		}
	}
}
