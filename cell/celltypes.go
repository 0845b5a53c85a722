// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import "github.com/goki/ki/kit"

// CellType enumerates the closed set of cell subtypes in the column
// model: two pyramidal subtypes and two basket (inhibitory) subtypes.
// The subtype selects the fixed tree topology, biophysics profile and
// synapse attachment map -- all subtype differences are data, not code.
type CellType int32

//go:generate stringer -type=CellType

var KiT_CellType = kit.Enums.AddEnum(CellTypeN, kit.NotBitFlag, nil)

func (ev CellType) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *CellType) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The cell subtypes, in the canonical population-declaration order used
// for gid range allocation.
const (
	// L2Basket is the layer 2/3 basket (inhibitory) cell: soma only.
	L2Basket CellType = iota

	// L2Pyr is the layer 2/3 pyramidal cell: soma plus 7 dendrites.
	L2Pyr

	// L5Basket is the layer 5 basket (inhibitory) cell: soma only.
	L5Basket

	// L5Pyr is the layer 5 pyramidal cell: soma plus 8 dendrites
	// (a second apical segment that L2Pyr lacks).
	L5Pyr

	CellTypeN
)

// IsPyr returns true for the pyramidal subtypes.
func (ct CellType) IsPyr() bool {
	return ct == L2Pyr || ct == L5Pyr
}

// Receptor enumerates the synaptic receptor kinds. AMPA is the
// fast-excitatory receptor, NMDA slow-excitatory, GABAA fast-inhibitory,
// and GABAB slow-inhibitory.
type Receptor int32

//go:generate stringer -type=Receptor

var KiT_Receptor = kit.Enums.AddEnum(ReceptorN, kit.NotBitFlag, nil)

func (ev Receptor) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Receptor) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	AMPA Receptor = iota
	NMDA
	GABAA
	GABAB

	ReceptorN
)

var receptorLabels = [ReceptorN]string{"ampa", "nmda", "gabaa", "gabab"}

// Label returns the lowercase name used in parameter keys and synapse
// names, e.g. ampa, gabab.
func (rc Receptor) Label() string {
	return receptorLabels[rc]
}

// SynLoc enumerates the closed set of anatomical synapse attachment
// locations on the compartment trees. Using a closed enum (validated
// against each subtype's attachment map at build time) instead of
// free-form strings removes a class of lookup-typo errors.
type SynLoc int32

//go:generate stringer -type=SynLoc

var KiT_SynLoc = kit.Enums.AddEnum(SynLocN, kit.NotBitFlag, nil)

func (ev SynLoc) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SynLoc) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	Soma SynLoc = iota
	ApicalOblique
	Basal2
	Basal3
	ApicalTuft

	SynLocN
)

var synLocLabels = [SynLocN]string{"soma", "apicaloblique", "basal2", "basal3", "apicaltuft"}

var synLocSects = [SynLocN]string{"soma", "apical_oblique", "basal_2", "basal_3", "apical_tuft"}

// Label returns the lowercase name used in synapse names, e.g.
// apicaloblique in apicaloblique_ampa.
func (sl SynLoc) Label() string {
	return synLocLabels[sl]
}

// SectName returns the name of the compartment this location attaches to.
func (sl SynLoc) SectName() string {
	return synLocSects[sl]
}

// Loc distinguishes the proximal and distal input regions of a tree, the
// two target regions external drives can address.
type Loc int32

//go:generate stringer -type=Loc

var KiT_Loc = kit.Enums.AddEnum(LocN, kit.NotBitFlag, nil)

func (ev Loc) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Loc) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	Proximal Loc = iota
	Distal

	LocN
)
