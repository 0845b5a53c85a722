// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package params provides flat, string-keyed numeric parameter tables for
the cell subtypes, along with the complete default tables and the
resolver that merges sparse user overrides into them.

Resolution is pure and fails fast: an override key that does not exist in
the defaults is an UnknownParameterError, never silently ignored, so a
typo in a parameter name cannot produce a quietly-default network.
*/
package params

import (
	"fmt"
	"sort"
)

// Params is a flat table of named numeric parameters for one cell
// subtype. Keys follow the {subtype}_{section}_{param} convention, e.g.
// L5Pyr_soma_gkbar_hh2 or L2Pyr_apicaltrunk_L.
type Params map[string]float32

// UnknownParameterError is returned when an override key is not present
// in the default table it is being resolved against.
type UnknownParameterError struct {
	Key string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("params: unknown parameter key: %q", e.Key)
}

// Resolve merges a sparse override table into a complete default table,
// returning a new Params containing every default key, with override
// values substituted where present. It does not modify either argument.
// An override key absent from defaults returns UnknownParameterError.
func Resolve(defaults, overrides Params) (Params, error) {
	for key := range overrides {
		if _, ok := defaults[key]; !ok {
			return nil, &UnknownParameterError{Key: key}
		}
	}
	res := make(Params, len(defaults))
	for key, val := range defaults {
		res[key] = val
	}
	for key, val := range overrides {
		res[key] = val
	}
	return res, nil
}

// Get returns the value for given key and whether it was present.
func (pr Params) Get(key string) (float32, bool) {
	val, ok := pr[key]
	return val, ok
}

// Keys returns all keys in sorted order, for deterministic iteration.
func (pr Params) Keys() []string {
	ks := make([]string, 0, len(pr))
	for key := range pr {
		ks = append(ks, key)
	}
	sort.Strings(ks)
	return ks
}
