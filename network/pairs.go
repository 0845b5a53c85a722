// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"github.com/Kartik-Khandelwal/hnn-core/cell"
)

// DefaultPairs returns the standard cortical-column wiring table: one
// entry per (source type, target type, receptor). Pyramidal-to-pyramidal
// excitation decays sharply (lamtha 3) and is the only pairing that
// excludes autapses; basket inhibition onto pyramidal somas reaches much
// farther (lamtha 50 / 70). Weights are maximal conductances at zero
// horizontal separation.
func DefaultPairs() []PairSpec {
	return []PairSpec{
		// onto L2Pyr
		{Src: cell.L2Pyr, Tar: cell.L2Pyr, Rcpt: cell.AMPA, Weight: 5e-4, Delay: 1, Lamtha: 3, NoAutapses: true,
			Post: []cell.SynKey{
				{Loc: cell.ApicalOblique, Rcpt: cell.AMPA},
				{Loc: cell.Basal2, Rcpt: cell.AMPA},
				{Loc: cell.Basal3, Rcpt: cell.AMPA},
			}},
		{Src: cell.L2Pyr, Tar: cell.L2Pyr, Rcpt: cell.NMDA, Weight: 5e-4, Delay: 1, Lamtha: 3, NoAutapses: true,
			Post: []cell.SynKey{
				{Loc: cell.ApicalOblique, Rcpt: cell.NMDA},
				{Loc: cell.Basal2, Rcpt: cell.NMDA},
				{Loc: cell.Basal3, Rcpt: cell.NMDA},
			}},
		{Src: cell.L2Basket, Tar: cell.L2Pyr, Rcpt: cell.GABAA, Weight: 5e-2, Delay: 1, Lamtha: 50,
			Post: []cell.SynKey{{Loc: cell.Soma, Rcpt: cell.GABAA}}},
		{Src: cell.L2Basket, Tar: cell.L2Pyr, Rcpt: cell.GABAB, Weight: 5e-2, Delay: 1, Lamtha: 50,
			Post: []cell.SynKey{{Loc: cell.Soma, Rcpt: cell.GABAB}}},

		// onto L5Pyr
		{Src: cell.L5Pyr, Tar: cell.L5Pyr, Rcpt: cell.AMPA, Weight: 5e-4, Delay: 1, Lamtha: 3, NoAutapses: true,
			Post: []cell.SynKey{
				{Loc: cell.ApicalOblique, Rcpt: cell.AMPA},
				{Loc: cell.Basal2, Rcpt: cell.AMPA},
				{Loc: cell.Basal3, Rcpt: cell.AMPA},
			}},
		{Src: cell.L5Pyr, Tar: cell.L5Pyr, Rcpt: cell.NMDA, Weight: 5e-4, Delay: 1, Lamtha: 3, NoAutapses: true,
			Post: []cell.SynKey{
				{Loc: cell.ApicalOblique, Rcpt: cell.NMDA},
				{Loc: cell.Basal2, Rcpt: cell.NMDA},
				{Loc: cell.Basal3, Rcpt: cell.NMDA},
			}},
		{Src: cell.L2Pyr, Tar: cell.L5Pyr, Rcpt: cell.AMPA, Weight: 2.5e-4, Delay: 1, Lamtha: 3,
			Post: []cell.SynKey{
				{Loc: cell.Basal2, Rcpt: cell.AMPA},
				{Loc: cell.Basal3, Rcpt: cell.AMPA},
				{Loc: cell.ApicalTuft, Rcpt: cell.AMPA},
				{Loc: cell.ApicalOblique, Rcpt: cell.AMPA},
			}},
		{Src: cell.L5Basket, Tar: cell.L5Pyr, Rcpt: cell.GABAA, Weight: 2.5e-2, Delay: 1, Lamtha: 70,
			Post: []cell.SynKey{{Loc: cell.Soma, Rcpt: cell.GABAA}}},
		{Src: cell.L5Basket, Tar: cell.L5Pyr, Rcpt: cell.GABAB, Weight: 2.5e-2, Delay: 1, Lamtha: 70,
			Post: []cell.SynKey{{Loc: cell.Soma, Rcpt: cell.GABAB}}},
		{Src: cell.L2Basket, Tar: cell.L5Pyr, Rcpt: cell.GABAA, Weight: 1e-3, Delay: 1, Lamtha: 50,
			Post: []cell.SynKey{{Loc: cell.ApicalTuft, Rcpt: cell.GABAA}}},

		// onto L2Basket
		{Src: cell.L2Pyr, Tar: cell.L2Basket, Rcpt: cell.AMPA, Weight: 5e-4, Delay: 1, Lamtha: 3,
			Post: []cell.SynKey{{Loc: cell.Soma, Rcpt: cell.AMPA}}},
		{Src: cell.L2Basket, Tar: cell.L2Basket, Rcpt: cell.GABAA, Weight: 2e-2, Delay: 1, Lamtha: 20,
			Post: []cell.SynKey{{Loc: cell.Soma, Rcpt: cell.GABAA}}},

		// onto L5Basket
		{Src: cell.L5Pyr, Tar: cell.L5Basket, Rcpt: cell.AMPA, Weight: 5e-4, Delay: 1, Lamtha: 3,
			Post: []cell.SynKey{{Loc: cell.Soma, Rcpt: cell.AMPA}}},
		{Src: cell.L2Pyr, Tar: cell.L5Basket, Rcpt: cell.AMPA, Weight: 2.5e-4, Delay: 1, Lamtha: 3,
			Post: []cell.SynKey{{Loc: cell.Soma, Rcpt: cell.AMPA}}},
		{Src: cell.L5Basket, Tar: cell.L5Basket, Rcpt: cell.GABAA, Weight: 2e-2, Delay: 1, Lamtha: 20,
			Post: []cell.SynKey{{Loc: cell.Soma, Rcpt: cell.GABAA}}},
	}
}
