// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"fmt"
	"sort"

	"github.com/Kartik-Khandelwal/hnn-core/params"
)

// SynKey identifies one synapse on a cell by its anatomical attachment
// location and receptor kind. Its String form, {location}_{receptor}
// (e.g. apicaltuft_ampa), is the name the connectivity engine routes by.
type SynKey struct {
	Loc  SynLoc   `desc:"anatomical attachment location"`
	Rcpt Receptor `desc:"receptor kind"`
}

func (sk SynKey) String() string {
	return sk.Loc.Label() + "_" + sk.Rcpt.Label()
}

// Synapse is one typed receptor instance attached at a compartment
// midpoint, holding the bi-exponential kinetic parameters the solver
// integrates. It is owned exclusively by its cell; connections reference
// it but never own it.
type Synapse struct {
	Key  SynKey   `desc:"identity of this synapse on its cell"`
	Sect *Section `json:"-" desc:"compartment this synapse attaches to"`
	Pos  float32  `desc:"attachment position along the compartment -- always the midpoint"`
	E    float32  `desc:"reversal potential in mV"`
	Tau1 float32  `desc:"rise time constant in ms"`
	Tau2 float32  `desc:"decay time constant in ms"`
}

// CreateSynapses is phase 2: it instantiates the subtype's fixed synapse
// set at the compartment midpoints of the completed tree, with kinetics
// from the resolved parameter table. A location in the attachment map
// that does not exist on the tree is a MissingCompartmentError, and a
// kinetics parameter absent from the table is an error -- never a silent
// zero.
func CreateSynapses(tr *Tree, prof *Profile, pall params.Params) (map[SynKey]*Synapse, error) {
	syns := make(map[SynKey]*Synapse, len(prof.Syns))
	for _, key := range prof.Syns {
		sc := tr.SectByName(key.Loc.SectName())
		if sc == nil {
			return nil, &MissingCompartmentError{Cell: prof.Name, Sect: key.Loc.SectName()}
		}
		sy := &Synapse{Key: key, Sect: sc, Pos: 0.5}
		lbl := key.Rcpt.Label()
		for _, kp := range []struct {
			suf string
			val *float32
		}{{"e", &sy.E}, {"tau1", &sy.Tau1}, {"tau2", &sy.Tau2}} {
			pk := prof.Name + "_" + lbl + "_" + kp.suf
			v, ok := pall.Get(pk)
			if !ok {
				return nil, fmt.Errorf("cell: %s synapse %v: kinetics parameter %q not in resolved table", prof.Name, key, pk)
			}
			*kp.val = v
		}
		syns[key] = sy
	}
	return syns, nil
}

// sortSynKeys returns the keys in deterministic (location, receptor)
// order.
func sortSynKeys(syns map[SynKey]*Synapse) []SynKey {
	ks := make([]SynKey, 0, len(syns))
	for key := range syns {
		ks = append(ks, key)
	}
	sort.Slice(ks, func(i, j int) bool {
		if ks[i].Loc != ks[j].Loc {
			return ks[i].Loc < ks[j].Loc
		}
		return ks[i].Rcpt < ks[j].Rcpt
	})
	return ks
}
