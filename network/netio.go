// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/Kartik-Khandelwal/hnn-core/cell"
	"github.com/goki/ki/indent"
)

// SaveConnsJSON saves the full connectivity of a built network to a
// JSON-formatted file. If filename has .gz extension, then file is gzip
// compressed.
func (nt *Network) SaveConnsJSON(filename string) error {
	fp, err := os.Create(filename)
	defer fp.Close()
	if err != nil {
		log.Println(err)
		return err
	}
	ext := filepath.Ext(filename)
	if ext == ".gz" {
		gzr := gzip.NewWriter(fp)
		defer gzr.Close()
		nt.WriteConnsJSON(gzr)
	} else {
		nt.WriteConnsJSON(fp)
	}
	return nil
}

// WriteConnsJSON writes the connectivity from the receiver-side
// perspective in a JSON text format. We build in the indentation logic
// to make it much faster and more efficient.
func (nt *Network) WriteConnsJSON(w io.Writer) {
	depth := 0
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("{\n"))
	depth++
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"Network\": %q,\n", nt.Nm))) // note: can't use \n in `` so need "
	w.Write(indent.TabBytes(depth))
	nc := len(nt.Cells)
	if nc == 0 {
		w.Write([]byte("\"Cells\": null\n"))
	} else {
		w.Write([]byte("\"Cells\": [\n"))
		depth++
		for gid, cl := range nt.Cells {
			nt.writeCellConnsJSON(w, cl, depth)
			if gid == nc-1 {
				w.Write([]byte("\n"))
			} else {
				w.Write([]byte(",\n"))
			}
		}
		depth--
		w.Write(indent.TabBytes(depth))
		w.Write([]byte("]\n"))
	}
	depth--
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("}\n"))
}

func (nt *Network) writeCellConnsJSON(w io.Writer, cl *cell.Cell, depth int) {
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("{\n"))
	depth++
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"Gid\": %d,\n", cl.Gid)))
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"Type\": %q,\n", cl.Typ.String())))
	w.Write(indent.TabBytes(depth))
	cs := nt.Conns[cl.Gid]
	if len(cs) == 0 {
		w.Write([]byte("\"Conns\": null\n"))
	} else {
		w.Write([]byte("\"Conns\": [\n"))
		depth++
		for ci, cn := range cs {
			w.Write(indent.TabBytes(depth))
			w.Write([]byte(fmt.Sprintf("{\"Src\": %d, \"SrcType\": %q, \"Syn\": %q, \"Wt\": %g, \"Del\": %g}",
				cn.SrcGid, cn.SrcType, cn.Syn.Key.String(), cn.Weight, cn.Delay)))
			if ci == len(cs)-1 {
				w.Write([]byte("\n"))
			} else {
				w.Write([]byte(",\n"))
			}
		}
		depth--
		w.Write(indent.TabBytes(depth))
		w.Write([]byte("]\n"))
	}
	depth--
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("}"))
}
