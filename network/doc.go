// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package network assembles cell populations and external drives into a
fully wired cortical column: contiguous gid allocation per population
and drive, parallel cell construction, and a distance-weighted wiring
pass where every connection weight decays as exp(-d^2/lamtha^2) with
horizontal (planar) distance.

Networks are declare-then-build: AddPop and AddDrive record populations
and drives, and Build does all allocation, construction and wiring in
one all-or-nothing pass. StandardColumn declares the canonical
four-population column.
*/
package network
