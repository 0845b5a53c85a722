// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"fmt"
	"sync"

	"github.com/Kartik-Khandelwal/hnn-core/cell"
	"github.com/Kartik-Khandelwal/hnn-core/params"
	"github.com/goki/mat32"
)

// PopSpec declares one cell population before building: its name, cell
// type, the position of every cell, and optional parameter overrides
// applied to each cell on top of the type defaults.
type PopSpec struct {
	Name      string        `desc:"population name, also the gid range name"`
	Typ       cell.CellType `desc:"cell type instantiated for every position"`
	Pos       []mat32.Vec3  `desc:"one position per cell -- len(Pos) is the population size"`
	Overrides params.Params `desc:"parameter overrides shared by all cells of this population"`
}

// Network assembles populations of cells and external drives into a
// fully wired column. Usage is declare-then-build: AddPop / AddDrive
// record intent, and Build allocates gids, constructs every cell in
// parallel, and runs the wiring pass. Build is all-or-nothing -- on any
// error the network holds no cells and no connections.
type Network struct {
	Nm     string         `desc:"network name"`
	Pops   []*PopSpec     `desc:"declared populations, in gid allocation order"`
	Drives []*DriveSpec   `desc:"declared external drives, gid ranges after all populations"`
	Pairs  []PairSpec     `desc:"cell-to-cell wiring table used by Build"`
	Gids   GidSpace       `desc:"gid ranges, valid after Build"`
	Cells  []*cell.Cell   `desc:"all cells indexed by gid, valid after Build"`
	Conns  [][]Connection `desc:"per-target-cell connection lists indexed by gid, valid after Build"`
}

// NewNetwork returns a new named network with the default wiring table.
func NewNetwork(name string) *Network {
	nt := &Network{Nm: name}
	nt.Defaults()
	return nt
}

// Defaults installs the standard wiring table. Call before Build to
// start from the defaults and then adjust; assigning Pairs directly
// replaces the table wholesale.
func (nt *Network) Defaults() {
	nt.Pairs = DefaultPairs()
}

// AddPop declares a population of the given type with one cell per
// position, returning the spec for optional override tweaking. Gid
// ranges follow declaration order.
func (nt *Network) AddPop(name string, typ cell.CellType, pos []mat32.Vec3) *PopSpec {
	ps := &PopSpec{Name: name, Typ: typ, Pos: pos}
	nt.Pops = append(nt.Pops, ps)
	return ps
}

// AddDrive declares an external drive. Its gid range is allocated after
// all population ranges, with one drive unit per cell in the network.
func (nt *Network) AddDrive(ds *DriveSpec) {
	nt.Drives = append(nt.Drives, ds)
}

// NCells returns the number of cells (not drive units) in the network.
func (nt *Network) NCells() int {
	n := 0
	for _, ps := range nt.Pops {
		n += len(ps.Pos)
	}
	return n
}

// CellByGid returns the cell with the given gid, nil if the gid belongs
// to a drive range or is out of bounds.
func (nt *Network) CellByGid(gid int) *cell.Cell {
	if gid < 0 || gid >= len(nt.Cells) {
		return nil
	}
	return nt.Cells[gid]
}

// popByType returns the first declared population of the given type and
// its gid range, nil if no such population was declared.
func (nt *Network) popByType(typ cell.CellType) (*PopSpec, GidRange) {
	for _, ps := range nt.Pops {
		if ps.Typ == typ {
			rng, _ := nt.Gids.Range(ps.Name)
			return ps, rng
		}
	}
	return nil, GidRange{}
}

// Build constructs the network: gid allocation in declaration order,
// parallel cell construction, then the wiring pass (pair table in
// declared order, then drives in declared order, per target cell). Any
// error leaves the network empty.
func (nt *Network) Build() error {
	nt.Gids = GidSpace{}
	nt.Cells = nil
	nt.Conns = nil

	for _, ps := range nt.Pops {
		if _, err := nt.Gids.Add(ps.Name, len(ps.Pos)); err != nil {
			return err
		}
	}
	ncells := nt.Gids.Total()
	for _, dr := range nt.Drives {
		if _, err := nt.Gids.Add(dr.Name, ncells); err != nil {
			return err
		}
	}
	nt.Gids.Finalize()

	if err := nt.buildCells(ncells); err != nil {
		nt.Cells = nil
		return err
	}
	if err := nt.buildConns(ncells); err != nil {
		nt.Cells = nil
		nt.Conns = nil
		return err
	}
	return nil
}

// buildCells constructs every declared cell concurrently, one goroutine
// per cell writing only its own slot. The first construction error wins.
func (nt *Network) buildCells(ncells int) error {
	nt.Cells = make([]*cell.Cell, ncells)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var ferr error
	for _, ps := range nt.Pops {
		rng, _ := nt.Gids.Range(ps.Name)
		for i := range ps.Pos {
			wg.Add(1)
			go func(ps *PopSpec, gid, i int) {
				defer wg.Done()
				cl, err := cell.New(ps.Typ, gid, ps.Pos[i], ps.Overrides)
				if err != nil {
					mu.Lock()
					if ferr == nil {
						ferr = fmt.Errorf("network %v: pop %v cell %d: %w", nt.Nm, ps.Name, gid, err)
					}
					mu.Unlock()
					return
				}
				nt.Cells[gid] = cl
			}(ps, rng.Start+i, i)
		}
	}
	wg.Wait()
	return ferr
}

// buildConns runs the wiring pass: each target cell gets its pair-table
// connections in table order followed by its drive connections in
// declaration order. Targets are independent, so each runs in its own
// goroutine appending only to its own list, which keeps per-cell
// connection order deterministic.
func (nt *Network) buildConns(ncells int) error {
	nt.Conns = make([][]Connection, ncells)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var ferr error
	for gid := 0; gid < ncells; gid++ {
		wg.Add(1)
		go func(tar *cell.Cell) {
			defer wg.Done()
			for pi := range nt.Pairs {
				ps := &nt.Pairs[pi]
				if ps.Tar != tar.Typ {
					continue
				}
				if err := nt.connectPair(tar, ps); err != nil {
					mu.Lock()
					if ferr == nil {
						ferr = err
					}
					mu.Unlock()
					return
				}
			}
			for _, dr := range nt.Drives {
				nt.connectDrive(tar, dr)
			}
		}(nt.Cells[gid])
	}
	wg.Wait()
	return ferr
}

// NConns returns the total number of connections across all cells.
func (nt *Network) NConns() int {
	n := 0
	for _, cs := range nt.Conns {
		n += len(cs)
	}
	return n
}
