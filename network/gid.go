// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"fmt"
	"log"
)

// GidRange is one contiguous block of global ids.
type GidRange struct {
	Start int `desc:"first gid in the range"`
	N     int `desc:"number of gids in the range"`
}

// End returns one past the last gid in the range.
func (gr GidRange) End() int {
	return gr.Start + gr.N
}

// Contains returns true if gid falls in this range.
func (gr GidRange) Contains(gid int) bool {
	return gid >= gr.Start && gid < gr.End()
}

// GidSpace allocates disjoint contiguous gid ranges per cell population
// and external-drive type, in a fixed declaration order, so that gid
// minus a range's start recovers the index into that population. It must
// be finalized (single-threaded) before any parallel construction or
// wiring begins; after that it is read-only.
type GidSpace struct {
	Order  []string            `desc:"range names in allocation order"`
	Ranges map[string]GidRange `desc:"allocated ranges by name"`
	final  bool
}

// Add allocates the next contiguous range of n gids under the given
// name. It is an error to add after Finalize or to reuse a name.
func (gs *GidSpace) Add(name string, n int) (GidRange, error) {
	if gs.final {
		err := fmt.Errorf("GidSpace: cannot add range %q after finalize", name)
		log.Println(err)
		return GidRange{}, err
	}
	if gs.Ranges == nil {
		gs.Ranges = make(map[string]GidRange)
	}
	if _, ok := gs.Ranges[name]; ok {
		err := fmt.Errorf("GidSpace: range %q already allocated", name)
		log.Println(err)
		return GidRange{}, err
	}
	rng := GidRange{Start: gs.Total(), N: n}
	gs.Ranges[name] = rng
	gs.Order = append(gs.Order, name)
	return rng, nil
}

// Finalize freezes the space; no further ranges can be added.
func (gs *GidSpace) Finalize() {
	gs.final = true
}

// Range returns the range allocated under the given name.
func (gs *GidSpace) Range(name string) (GidRange, bool) {
	rng, ok := gs.Ranges[name]
	return rng, ok
}

// PopOf returns the name of the range containing gid, or ok=false if the
// gid is outside all ranges.
func (gs *GidSpace) PopOf(gid int) (string, bool) {
	for _, nm := range gs.Order {
		if gs.Ranges[nm].Contains(gid) {
			return nm, true
		}
	}
	return "", false
}

// IdxOf returns the index of gid within its range, -1 if outside all
// ranges.
func (gs *GidSpace) IdxOf(gid int) int {
	for _, nm := range gs.Order {
		if rng := gs.Ranges[nm]; rng.Contains(gid) {
			return gid - rng.Start
		}
	}
	return -1
}

// Total returns the total number of allocated gids: ranges are
// contiguous and disjoint, so this is also the next free gid.
func (gs *GidSpace) Total() int {
	tot := 0
	for _, rng := range gs.Ranges {
		tot += rng.N
	}
	return tot
}
