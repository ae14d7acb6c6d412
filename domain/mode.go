// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import "github.com/cpmech/gosl/chk"

// Mode is a bit-flag set selecting which field components a Domain
// allocates and which half-step the stepper runs. It replaces the
// monolithic "polarization string + vacuum bool" pair with a single
// validated value so construction allocates exactly the grids the
// simulation needs — no over-allocation (Design Notes §9).
type Mode uint8

const (
	// EXY selects the in-plane E update: Ex, Ey, Bz.
	EXY Mode = 1 << iota
	// EZ selects the out-of-plane E update: Ez, Bx, By.
	EZ
	// Vacuum enables the parallel vacuum co-simulation (ε≡1 twin grids).
	Vacuum
)

// ModeFromPolarization converts the configuration's polarization
// enum ("z", "xy", "xyz") and vacuum flag into a Mode. Unknown
// polarization strings are a ConfigInvalid error, not a panic: they
// originate from user-supplied configuration, not programmer error.
func ModeFromPolarization(polarization string, vacuum bool) (m Mode, err error) {
	switch polarization {
	case "z":
		m = EZ
	case "xy":
		m = EXY
	case "xyz":
		m = EXY | EZ
	default:
		return 0, chk.Err("domain: unknown polarization %q (expected \"z\", \"xy\" or \"xyz\")", polarization)
	}
	if vacuum {
		m |= Vacuum
	}
	return
}

// HasEXY reports whether the in-plane components are active.
func (m Mode) HasEXY() bool { return m&EXY != 0 }

// HasEZ reports whether the out-of-plane component is active.
func (m Mode) HasEZ() bool { return m&EZ != 0 }

// HasVacuum reports whether the vacuum co-simulation is enabled.
func (m Mode) HasVacuum() bool { return m&Vacuum != 0 }
