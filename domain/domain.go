// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package domain implements the FDTD core: the Yee-grid Domain, its
// absorbing border, pre-step coefficient builder, stepper, frame
// driver, vacuum co-simulator, Poynting accumulator and boundary
// detector. It is the direct descendant of gofem's fem.Domain, with
// the implicit-FEM machinery (equations, Jacobians, Newton loop)
// replaced by the explicit Yee leapfrog.
package domain

import (
	"github.com/cpmech/gosl/chk"

	"github.com/Sciumo/maxwell2d/field"
)

// natural units: the simulation measures length in cells (Δx) and
// time so that the vacuum speed of light c and the vacuum
// permeability μ0 are both 1. f0 = 0.1c, for instance, is then simply
// 0.1 in these units. This matches the reference source, which never
// carries SI constants through the stepper.
const (
	C   = 1.0
	Mu0 = 1.0
)

// Domain owns every grid and scalar for one FDTD simulation. All
// field grids share (Nx,Ny) for the Domain's lifetime (invariant I1).
type Domain struct {
	// geometry
	Nx, Ny int
	Dx     float32
	Mode   Mode

	// time
	Dt      float64
	Time    float64
	Iframe  int
	Dur     float64

	// source parameters
	F0      float64 // primary frequency
	Cycles  float64
	ExAmp   float64
	EyAmp   float64
	EzAmp   float64
	Freqs   []Tone // optional multi-tone source; nil => pure f0 oscillator
	Ramp    bool   // optional raised-cosine startup ramp (original_source supplement)

	// in-plane E components (EXY mode)
	Ex, Ey, Bz *field.Grid

	// out-of-plane E components (EZ mode)
	Ez, Bx, By *field.Grid

	// material and damping (always allocated: painted regardless of mode)
	Epsilon   *field.Grid // ε, relative permittivity; ≥1 (invariant I2)
	Sigma     *field.Grid // σ, E-field loss input; painter-writable, read-only afterwards
	Bdamping  *field.Grid // per-cell B damping multiplier; tapered near borders
	Edamping  *field.Grid // per-cell E damping multiplier; derived once from Sigma+Bdamping
	Eprefix   *field.Grid // ½Δt c²/(Δx ε); derived once

	// forcing masks (cell-resolved source strength)
	ForcingI, ForcingQ *field.Grid

	// scalar forcing strengths, recomputed every timestep by the frame driver
	ExForcingI, ExForcingQ float64
	EyForcingI, EyForcingQ float64
	EzForcingI, EzForcingQ float64

	// BorderWidth records the absorbing-border width InitBorder was
	// last called with, so callers placing a line_oscillator at the
	// reference's fixed row (borderwidth+1) don't need to remember it
	// separately (see DESIGN.md's line_oscillator placement decision).
	BorderWidth int

	// boundary overlay
	Boundaries *field.Grid

	// Poynting accumulators (frame-summed; divide by Iframe at readout)
	PoyntingX, PoyntingY         *field.Grid
	PoyntingXScat, PoyntingYScat *field.Grid

	// vacuum twin (allocated only when Mode.HasVacuum())
	ExVac, EyVac, BzVac *field.Grid
	EzVac, BxVac, ByVac *field.Grid
	EprefixVacuum       float32 // ½Δt c²/Δx; ε≡1 so this is a scalar, not a grid

	coeffsBuilt bool
}

// Tone is one (frequency, amplitude, phase) term of a multi-tone
// source, as configured by the "frequencies" key (§6.1).
type Tone struct {
	Freq, Amp, PhaseDeg float64
}

// New allocates a Domain and zero-initialises every grid (ε and
// Bdamping are initialised to 1, per the Lifecycle in §3). Exactly
// the grids implied by mode are allocated.
//
// Nx<3 or Ny<3 is not rejected here: §4.5 defines stepping on such a
// domain as a degenerate no-op, not an allocation failure. Negative
// or zero dimensions are rejected, since no grid can be built at all.
func New(nx, ny int, dx float32, mode Mode) (o *Domain, err error) {
	if nx < 1 || ny < 1 {
		return nil, chk.Err("domain: invalid dimensions nx=%d ny=%d", nx, ny)
	}
	if dx <= 0 {
		return nil, chk.Err("domain: pixel spacing must be positive, got %v", dx)
	}

	o = &Domain{Nx: nx, Ny: ny, Dx: dx, Mode: mode}
	o.Dt = 0.8 * float64(dx) / C

	o.Epsilon = field.New(nx, ny, 1)
	o.Sigma = field.New(nx, ny, 0)
	o.Bdamping = field.New(nx, ny, 1)
	o.Edamping = field.New(nx, ny, 1)
	o.Eprefix = field.New(nx, ny, 0)
	o.ForcingI = field.New(nx, ny, 0)
	o.ForcingQ = field.New(nx, ny, 0)
	o.Boundaries = field.New(nx, ny, 0)

	o.PoyntingX = field.New(nx, ny, 0)
	o.PoyntingY = field.New(nx, ny, 0)

	if mode.HasEXY() {
		o.Ex = field.New(nx, ny, 0)
		o.Ey = field.New(nx, ny, 0)
		o.Bz = field.New(nx, ny, 0)
	}
	if mode.HasEZ() {
		o.Ez = field.New(nx, ny, 0)
		o.Bx = field.New(nx, ny, 0)
		o.By = field.New(nx, ny, 0)
	}

	if mode.HasVacuum() {
		o.PoyntingXScat = field.New(nx, ny, 0)
		o.PoyntingYScat = field.New(nx, ny, 0)
		if mode.HasEXY() {
			o.ExVac = field.New(nx, ny, 0)
			o.EyVac = field.New(nx, ny, 0)
			o.BzVac = field.New(nx, ny, 0)
		}
		if mode.HasEZ() {
			o.EzVac = field.New(nx, ny, 0)
			o.BxVac = field.New(nx, ny, 0)
			o.ByVac = field.New(nx, ny, 0)
		}
	}

	return o, nil
}

// Degenerate reports whether the grid is too small to have any
// interior cell (§4.5 failure mode: Nx<3 or Ny<3). Callers (the frame
// driver) should report this, not treat it as an error.
func (o *Domain) Degenerate() bool {
	return o.Nx < 3 || o.Ny < 3
}

// Clean releases the Domain's grids. A Domain is unusable after
// Clean; this mirrors fem.Domain.Clean's single teardown call (§3
// Lifecycle).
func (o *Domain) Clean() {
	*o = Domain{}
}
