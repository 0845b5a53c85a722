// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"fmt"

	"github.com/Kartik-Khandelwal/hnn-core/chans"
	"github.com/Kartik-Khandelwal/hnn-core/params"
)

// ApplyBiophys is phase 2: it inserts the subtype's conductance
// mechanisms into each compartment of the completed tree and assigns
// their density parameters from the resolved parameter table. Dendrites
// share one fixed profile; the soma additionally carries the subtype's
// active mechanisms. Gradient-bearing densities are computed from path
// distance, so this must only run on a fully connected tree.
func ApplyBiophys(tr *Tree, prof *Profile, pall params.Params) error {
	if err := applyMechs(tr.Soma, prof.SomaMechs, prof.Name, "soma", pall); err != nil {
		return err
	}
	for _, nm := range tr.DendNames {
		if err := applyMechs(tr.Dends[nm], prof.DendMechs, prof.Name, "dend", pall); err != nil {
			return err
		}
	}
	for i := range prof.DendGrads {
		applyGradient(tr, &prof.DendGrads[i])
	}
	return nil
}

// applyMechs inserts each mechanism into the section and sets its
// uniform parameter values from the resolved table.
func applyMechs(sc *Section, mechs []chans.Mech, prefix, region string, pall params.Params) error {
	for i := range mechs {
		mh := &mechs[i]
		mv := sc.insertMech(mh.Name)
		for _, pnm := range mh.Params {
			key := mh.Key(prefix, region, pnm)
			val, ok := pall.Get(key)
			if !ok {
				return fmt.Errorf("cell: %s section %s: parameter %q not in resolved table", prefix, sc.Name, key)
			}
			mv.Params[pnm] = val
		}
	}
	return nil
}

// applyGradient sets a density parameter as an exponential function of
// path distance from the soma, evaluated at each segment's fractional
// midpoint when a section has more than one segment. The section-level
// value is the density at the section midpoint.
func applyGradient(tr *Tree, gr *chans.Gradient) {
	for _, nm := range tr.DendNames {
		dn := tr.Dends[nm]
		mv := dn.insertMech(gr.Mech)
		mv.Params[gr.Param] = gr.Density(dn.MidDist())
		if dn.Nseg <= 1 {
			continue
		}
		if mv.SegVals == nil {
			mv.SegVals = make(map[string][]float32)
		}
		segs := make([]float32, dn.Nseg)
		for i, frac := range dn.SegMids() {
			segs[i] = gr.Density(dn.DistAt(frac))
		}
		mv.SegVals[gr.Param] = segs
	}
}
