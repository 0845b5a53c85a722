// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/Kartik-Khandelwal/hnn-core/cell"
	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// SizeReport returns a string reporting the size of each population
// (cells, sections, synapses, incoming connections) and the total
// memory footprint of the built network.
func (nt *Network) SizeReport() string {
	var b strings.Builder
	totSect := 0
	totSyn := 0
	totConn := 0
	totMem := 0
	for _, ps := range nt.Pops {
		rng, _ := nt.Gids.Range(ps.Name)
		nsect := 0
		nsyn := 0
		nconn := 0
		for i := 0; i < rng.N; i++ {
			cl := nt.Cells[rng.Start+i]
			if cl == nil {
				continue
			}
			nsect += cl.Tree.NSects()
			nsyn += len(cl.Syns)
			nconn += len(nt.Conns[rng.Start+i])
		}
		mem := nsect*int(unsafe.Sizeof(cell.Section{})) + nsyn*int(unsafe.Sizeof(cell.Synapse{})) + nconn*int(unsafe.Sizeof(Connection{}))
		totSect += nsect
		totSyn += nsyn
		totConn += nconn
		totMem += mem
		fmt.Fprintf(&b, "%14s:\t Cells: %d\t Sects: %d\t Syns: %d\t Conns: %d\t Mem: %v\n", ps.Name, rng.N, nsect, nsyn, nconn, (datasize.ByteSize)(mem).HumanReadable())
	}
	fmt.Fprintf(&b, "\n%14s:\t Cells: %d\t Sects: %d\t Syns: %d\t Conns: %d\t Mem: %v\n", nt.Nm, nt.NCells(), totSect, totSyn, totConn, (datasize.ByteSize)(totMem).HumanReadable())
	return b.String()
}

// ConnsTable returns all connections as a table, one row per connection,
// suitable for export or analysis.
func (nt *Network) ConnsTable() *etable.Table {
	sch := etable.Schema{
		{Name: "TarGid", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "TarType", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "SrcGid", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "SrcType", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "Syn", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "Weight", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Delay", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Lamtha", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	dt := &etable.Table{}
	dt.SetFromSchema(sch, nt.NConns())
	row := 0
	for gid, cs := range nt.Conns {
		tar := nt.Cells[gid]
		for _, cn := range cs {
			dt.SetCellFloat("TarGid", row, float64(gid))
			dt.SetCellString("TarType", row, tar.Typ.String())
			dt.SetCellFloat("SrcGid", row, float64(cn.SrcGid))
			dt.SetCellString("SrcType", row, cn.SrcType)
			dt.SetCellString("Syn", row, cn.Syn.Key.String())
			dt.SetCellFloat("Weight", row, float64(cn.Weight))
			dt.SetCellFloat("Delay", row, float64(cn.Delay))
			dt.SetCellFloat("Lamtha", row, float64(cn.Lamtha))
			row++
		}
	}
	return dt
}

// PositionsTable returns all cell positions as a table, one row per cell.
func (nt *Network) PositionsTable() *etable.Table {
	sch := etable.Schema{
		{Name: "Gid", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "Pop", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "X", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Y", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Z", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	dt := &etable.Table{}
	dt.SetFromSchema(sch, len(nt.Cells))
	for gid, cl := range nt.Cells {
		pop, _ := nt.Gids.PopOf(gid)
		dt.SetCellFloat("Gid", gid, float64(gid))
		dt.SetCellString("Pop", gid, pop)
		dt.SetCellFloat("X", gid, float64(cl.Pos.X))
		dt.SetCellFloat("Y", gid, float64(cl.Pos.Y))
		dt.SetCellFloat("Z", gid, float64(cl.Pos.Z))
	}
	return dt
}
