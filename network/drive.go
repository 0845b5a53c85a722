// Copyright (c) 2023, The HNN-Core Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/Kartik-Khandelwal/hnn-core/cell"
	"github.com/emer/emergent/erand"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// DriveKind enumerates the recognized external-drive generators. Drive
// type strings outside this set are not an error: the wiring pass logs
// them and skips, so forward-compatible drive definitions do not break
// existing networks.
type DriveKind int32

//go:generate stringer -type=DriveKind

var KiT_DriveKind = kit.Enums.AddEnum(DriveKindN, kit.NotBitFlag, nil)

func (ev DriveKind) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *DriveKind) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// EvProx is an evoked input targeting the proximal tree region,
	// deterministic timing with Gaussian jitter.
	EvProx DriveKind = iota

	// EvDist is an evoked input targeting the distal tree region.
	EvDist

	// ExtGauss is the spatially uniform background with
	// Gaussian-distributed onset time.
	ExtGauss

	// ExtPois is the Poisson-train background.
	ExtPois

	DriveKindN
)

// ParseDriveKind maps a drive type string to its kind. Evoked drives
// match by prefix so numbered instances (evprox1, evdist2) parse; the
// background kinds match exactly. ok is false for unrecognized strings.
func ParseDriveKind(typ string) (DriveKind, bool) {
	switch {
	case strings.HasPrefix(typ, "evprox"):
		return EvProx, true
	case strings.HasPrefix(typ, "evdist"):
		return EvDist, true
	case typ == "extgauss":
		return ExtGauss, true
	case typ == "extpois":
		return ExtPois, true
	}
	return DriveKindN, false
}

// DriveWts is the per-cell-type weight pair and delay for one drive:
// fast (AMPA) and slow (NMDA) receptor weights. For the Gaussian
// background the NMDA weight is defined but intentionally unused --
// reserved for future routing, not a bug.
type DriveWts struct {
	AMPA  float32 `desc:"fast-excitatory receptor weight"`
	NMDA  float32 `desc:"slow-excitatory receptor weight"`
	Delay float32 `desc:"fixed connection delay in ms"`
}

// DriveSpec describes one external-drive source: a synthetic presynaptic
// population with one unit per cell, a fixed spatial origin, per-cell-type
// weights, and the timing statistics of its event generator.
type DriveSpec struct {
	Name    string                      `desc:"instance name, also the gid range name"`
	Type    string                      `desc:"drive type string, e.g. evprox1, extgauss, extpois -- unrecognized types are logged and skipped at wiring"`
	Loc     cell.Loc                    `desc:"target tree region for evoked drives (proximal or distal); backgrounds always target proximal"`
	Origin  mat32.Vec3                  `desc:"fixed spatial origin of all units of this drive"`
	Lamtha  float32                     `desc:"drive-global spatial decay constant"`
	Weights map[cell.CellType]DriveWts  `desc:"per-cell-type weights; cell types absent here are not targeted"`
	T0      float32                     `desc:"mean event time (evoked, Gaussian) or train start (Poisson), ms"`
	Sigma   float32                     `desc:"standard deviation of event time jitter, ms"`
	Rate    float32                     `desc:"Poisson event rate in Hz"`
	T1      float32                     `desc:"Poisson train stop time, ms"`
	Seed    int64                       `desc:"base random seed; per-unit streams derive from it deterministically"`
}

// Kind parses the drive's type string.
func (ds *DriveSpec) Kind() (DriveKind, bool) {
	return ParseDriveKind(ds.Type)
}

// evtMu serializes event generation: each call seeds and then consumes
// the process-global math/rand stream as one atomic unit.
var evtMu sync.Mutex

// EventTimes generates the deterministic event times for the drive unit
// of given index. Evoked and Gaussian drives produce one event drawn
// around T0 with jitter Sigma; Poisson drives produce an
// exponential-interval train over [T0, T1]. The same (Seed, idx) always
// yields the same times. Generation draws from the process-global
// math/rand stream (seeded per call, serialized across EventTimes
// callers), so determinism requires that no other code consumes that
// stream concurrently.
func (ds *DriveSpec) EventTimes(idx int) []float32 {
	evtMu.Lock()
	defer evtMu.Unlock()
	rand.Seed(ds.Seed + int64(idx)*104729)
	kind, ok := ds.Kind()
	if !ok {
		return nil
	}
	switch kind {
	case EvProx, EvDist, ExtGauss:
		t := ds.T0
		if ds.Sigma > 0 {
			jp := erand.RndParams{Dist: erand.Gaussian, Mean: float64(ds.T0), Var: float64(ds.Sigma)}
			t = float32(jp.Gen(-1))
		}
		if t < 0 {
			t = 0
		}
		return []float32{t}
	case ExtPois:
		if ds.Rate <= 0 || ds.T1 <= ds.T0 {
			return nil
		}
		mean := 1000.0 / ds.Rate // mean inter-event interval in ms
		// uniform Var is the half-range, so this spans (0, 1)
		up := erand.RndParams{Dist: erand.Uniform, Mean: 0.5, Var: 0.5}
		var ts []float32
		for t := ds.T0; ; {
			u := float32(up.Gen(-1))
			if u <= 0 || u >= 1 {
				continue
			}
			t += -mean * mat32.Log(u)
			if t >= ds.T1 {
				break
			}
			ts = append(ts, t)
		}
		return ts
	}
	return nil
}
