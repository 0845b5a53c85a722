// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"github.com/Kartik-Khandelwal/hnn-core/cell"
	"github.com/goki/mat32"
)

// laminar depths (um) for the two pyramidal layers -- depth is carried
// on positions for reporting but never enters wiring distances.
const (
	L2Depth float32 = 1307
	L5Depth float32 = 0
)

// GridPositions lays out nx * ny positions on a regular planar grid with
// the given spacing, all at depth z, row-major from the origin.
func GridPositions(nx, ny int, spacing, z float32) []mat32.Vec3 {
	pos := make([]mat32.Vec3, 0, nx*ny)
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			pos = append(pos, mat32.Vec3{X: float32(ix) * spacing, Y: float32(iy) * spacing, Z: z})
		}
	}
	return pos
}

// StandardColumn returns a network with the canonical four populations:
// nx * ny pyramidal cells per layer on a unit grid, and roughly a third
// as many basket cells per layer interleaved on a coarser grid offset by
// half a spacing so baskets never sit on top of pyramidals.
func StandardColumn(name string, nx, ny int) *Network {
	nt := NewNetwork(name)
	bx, by := (nx+1)/2, (ny+1)/2
	bpos2 := offsetPositions(GridPositions(bx, by, 2, L2Depth), 0.5)
	bpos5 := offsetPositions(GridPositions(bx, by, 2, L5Depth), 0.5)
	nt.AddPop("L2Basket", cell.L2Basket, bpos2)
	nt.AddPop("L2Pyr", cell.L2Pyr, GridPositions(nx, ny, 1, L2Depth))
	nt.AddPop("L5Basket", cell.L5Basket, bpos5)
	nt.AddPop("L5Pyr", cell.L5Pyr, GridPositions(nx, ny, 1, L5Depth))
	return nt
}

func offsetPositions(pos []mat32.Vec3, off float32) []mat32.Vec3 {
	for i := range pos {
		pos[i].X += off
		pos[i].Y += off
	}
	return pos
}
