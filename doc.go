// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hnncore is the overall repository for the construction and wiring
core of a laminated cortical-column model (HNN: human neocortical
neurosolver style), used to simulate current-dipole signals comparable to
MEG/EEG recordings.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* params: flat numeric parameter tables per cell subtype, with default
tables and typo-checked override resolution.

* chans: membrane conductance mechanism descriptors, including the
exponential path-distance density gradient.

* cell: compartment (section) trees, geometry, biophysics application,
and synapse (receptor) registration for the L2/L5 pyramidal and basket
cell subtypes.

* network: global id (gid) allocation, external drive sources, the
distance-weighted connectivity engine, and the network assembler that
coordinates per-cell construction and the wiring pass.

* examples: runnable programs -- examples/colsim assembles the default
column and prints its structure reports.

The numerical integration of membrane equations, data file I/O, plotting,
and dipole post-processing are all owned by external collaborators; this
repository produces the fully constructed, immutable network they consume.
*/
package hnncore
