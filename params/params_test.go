// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"errors"
	"testing"
)

func TestResolveMerge(t *testing.T) {
	defs := Params{"a": 1, "b": 2, "c": 3}
	over := Params{"b": 20}
	res, err := Resolve(defs, over)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != len(defs) {
		t.Errorf("resolved table has %d keys, want %d", len(res), len(defs))
	}
	for key, val := range defs {
		got, ok := res.Get(key)
		if !ok {
			t.Errorf("key %q missing from resolved table", key)
		}
		want := val
		if key == "b" {
			want = 20
		}
		if got != want {
			t.Errorf("key %q: got %v, want %v", key, got, want)
		}
	}
	// inputs must not be mutated
	if defs["b"] != 2 {
		t.Errorf("defaults mutated: b = %v", defs["b"])
	}
}

func TestResolveUnknownKey(t *testing.T) {
	defs := Params{"a": 1}
	over := Params{"a_typo": 1}
	_, err := Resolve(defs, over)
	if err == nil {
		t.Fatal("expected UnknownParameterError, got nil")
	}
	var uerr *UnknownParameterError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UnknownParameterError, got %T", err)
	}
	if uerr.Key != "a_typo" {
		t.Errorf("error key = %q, want %q", uerr.Key, "a_typo")
	}
}

func TestResolveEmptyOverrides(t *testing.T) {
	defs := L2PyrDefaults()
	res, err := Resolve(defs, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != len(defs) {
		t.Errorf("resolved table has %d keys, want %d", len(res), len(defs))
	}
}

func TestDefaultsHaveCoreKeys(t *testing.T) {
	cases := []struct {
		tab  Params
		keys []string
	}{
		{L2PyrDefaults(), []string{
			"L2Pyr_soma_L", "L2Pyr_apicaltrunk_L", "L2Pyr_basal3_diam",
			"L2Pyr_ampa_tau2", "L2Pyr_gabab_e", "L2Pyr_soma_gbar_km",
			"L2Pyr_dend_gnabar_hh2"}},
		{L5PyrDefaults(), []string{
			"L5Pyr_soma_L", "L5Pyr_apical2_L", "L5Pyr_soma_gbar_ar",
			"L5Pyr_soma_gbar_cat", "L5Pyr_dend_taur_cad", "L5Pyr_gabaa_tau1"}},
		{L2BasketDefaults(), []string{
			"L2Basket_soma_L", "L2Basket_soma_gnabar_hh2", "L2Basket_nmda_tau2"}},
		{L5BasketDefaults(), []string{
			"L5Basket_soma_diam", "L5Basket_gabaa_e"}},
	}
	for _, cs := range cases {
		for _, key := range cs.keys {
			if _, ok := cs.tab.Get(key); !ok {
				t.Errorf("default table missing key %q", key)
			}
		}
	}
}

func TestKeysSorted(t *testing.T) {
	pr := Params{"b": 1, "a": 2, "c": 3}
	ks := pr.Keys()
	want := []string{"a", "b", "c"}
	for i, k := range want {
		if ks[i] != k {
			t.Errorf("keys[%d] = %q, want %q", i, ks[i], k)
		}
	}
}
