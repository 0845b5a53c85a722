// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"fmt"
	"log"

	"github.com/Kartik-Khandelwal/hnn-core/cell"
	"github.com/goki/mat32"
)

// Connection is one directed edge from a source unit (cell or drive
// unit, identified by gid) onto a target synapse. Connections are
// created once during network assembly and never mutated; many may
// converge on the same synapse, and a synapse may have none.
type Connection struct {
	SrcGid  int           `desc:"gid of the presynaptic cell or drive unit"`
	SrcType string        `desc:"source population or drive name"`
	Syn     *cell.Synapse `json:"-" desc:"target synapse -- referenced, never owned"`
	Weight  float32       `desc:"connection weight after spatial decay"`
	Delay   float32       `desc:"fixed delay in ms -- not distance scaled"`
	Lamtha  float32       `desc:"spatial decay constant the weight was computed with"`
}

// PairSpec configures cell-to-cell wiring for one (source population,
// target population, receptor) combination: the base weight and delay,
// the population-pair spatial decay constant, whether self-connections
// are permitted, and the named target synapses that fan out from each
// spatial relationship.
type PairSpec struct {
	Src        cell.CellType `desc:"source population type"`
	Tar        cell.CellType `desc:"target population type"`
	Rcpt       cell.Receptor `desc:"receptor being driven"`
	Post       []cell.SynKey `desc:"target synapses -- all receive the same computed weight and delay"`
	Weight     float32       `desc:"base weight at zero distance"`
	Delay      float32       `desc:"connection delay in ms"`
	Lamtha     float32       `desc:"spatial decay constant for this population pair"`
	NoAutapses bool          `desc:"exclude self-connections -- autapses are included unless set"`
}

// WeightFmDist returns the distance-decayed connection weight:
// base * exp(-d^2 / lamtha^2). At distance 0 it is exactly the base
// weight, and it strictly decreases with distance.
func WeightFmDist(base, dist, lamtha float32) float32 {
	return base * mat32.Exp(-(dist*dist)/(lamtha*lamtha))
}

// planarDist returns the distance between two positions projected onto
// the horizontal plane -- the laminar depth (Z) never enters wiring.
func planarDist(a, b mat32.Vec3) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return mat32.Sqrt(dx*dx + dy*dy)
}

// connectPair wires all connections from one source population onto one
// target cell per the pair spec. The computed weight/delay is applied to
// every listed target synapse (multi-receptor fan-out from one spatial
// relationship).
func (nt *Network) connectPair(tar *cell.Cell, ps *PairSpec) error {
	pop, rng := nt.popByType(ps.Src)
	if pop == nil {
		return nil // population not present in this network
	}
	syns := make([]*cell.Synapse, len(ps.Post))
	for i, key := range ps.Post {
		sy := tar.Syns[key]
		if sy == nil {
			return fmt.Errorf("network: %v cell %d has no synapse %v", tar.Typ, tar.Gid, key)
		}
		syns[i] = sy
	}
	for i := 0; i < rng.N; i++ {
		src := nt.Cells[rng.Start+i]
		if ps.NoAutapses && src.Gid == tar.Gid {
			continue
		}
		wt := WeightFmDist(ps.Weight, planarDist(src.Pos, tar.Pos), ps.Lamtha)
		for _, sy := range syns {
			nt.Conns[tar.Gid] = append(nt.Conns[tar.Gid], Connection{
				SrcGid:  src.Gid,
				SrcType: pop.Name,
				Syn:     sy,
				Weight:  wt,
				Delay:   ps.Delay,
				Lamtha:  ps.Lamtha,
			})
		}
	}
	return nil
}

// connectDrive wires one external-drive source onto one target cell.
// Each drive unit connects 1:1 to its cell: the source gid is the
// drive's range start offset by the target's cell gid. Receptor routing
// depends on the drive kind; an unrecognized kind is a logged diagnostic
// and the drive is skipped, never an error.
func (nt *Network) connectDrive(tar *cell.Cell, dr *DriveSpec) {
	kind, ok := dr.Kind()
	if !ok {
		log.Printf("Network %v: drive %v has unrecognized type %q -- skipped\n", nt.Nm, dr.Name, dr.Type)
		return
	}
	wts, ok := dr.Weights[tar.Typ]
	if !ok {
		return // this cell type is not targeted by the drive
	}
	rng, ok := nt.Gids.Range(dr.Name)
	if !ok {
		return
	}
	srcGid := rng.Start + tar.Gid
	dist := planarDist(dr.Origin, tar.Pos)
	add := func(sy *cell.Synapse, base float32) {
		nt.Conns[tar.Gid] = append(nt.Conns[tar.Gid], Connection{
			SrcGid:  srcGid,
			SrcType: dr.Name,
			Syn:     sy,
			Weight:  WeightFmDist(base, dist, dr.Lamtha),
			Delay:   wts.Delay,
			Lamtha:  dr.Lamtha,
		})
	}
	switch kind {
	case EvProx, EvDist:
		// both receptor kinds at the configured region, one shared delay
		for _, sy := range tar.LocSyns(dr.Loc, cell.AMPA) {
			add(sy, wts.AMPA)
		}
		for _, sy := range tar.LocSyns(dr.Loc, cell.NMDA) {
			add(sy, wts.NMDA)
		}
	case ExtGauss:
		// fast receptor only; the NMDA weight is reserved and unused
		for _, sy := range tar.LocSyns(cell.Proximal, cell.AMPA) {
			add(sy, wts.AMPA)
		}
	case ExtPois:
		for _, sy := range tar.LocSyns(cell.Proximal, cell.AMPA) {
			add(sy, wts.AMPA)
		}
		if wts.NMDA > 0 { // never allocate a zero-weight slow edge
			for _, sy := range tar.LocSyns(cell.Proximal, cell.NMDA) {
				add(sy, wts.NMDA)
			}
		}
	}
}
