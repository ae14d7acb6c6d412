// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field implements the 2D real-valued grids shared by every
// FDTD field component. All grids backing a Domain have identical
// dimensions (Nx,Ny); this package provides the one flat-buffer
// implementation they are all built from.
package field

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Grid is a dense Nx-by-Ny single-precision real array addressed by
// (row,col) == (j,i), j increasing in y and i in x. The backing
// storage is one contiguous []float32 slice; there is no row-pointer
// indirection, so every Grid is one allocation and one cache-friendly
// scan regardless of Ny.
type Grid struct {
	Nx, Ny int
	data   []float32
}

// New allocates a Nx-by-Ny Grid and initialises every cell to v.
func New(nx, ny int, v float32) (o *Grid) {
	if nx < 1 || ny < 1 {
		chk.Panic("field: cannot allocate grid with non-positive dimensions (nx=%d, ny=%d)", nx, ny)
	}
	o = &Grid{Nx: nx, Ny: ny, data: make([]float32, nx*ny)}
	if v != 0 {
		o.Reset(v)
	}
	return
}

// idx converts a (j,i) pair into the flat offset backing data.
func (o *Grid) idx(j, i int) int {
	return j*o.Nx + i
}

// At returns the value at (j,i).
func (o *Grid) At(j, i int) float32 {
	return o.data[o.idx(j, i)]
}

// Set writes v at (j,i).
func (o *Grid) Set(j, i int, v float32) {
	o.data[o.idx(j, i)] = v
}

// Add adds v to the value at (j,i).
func (o *Grid) Add(j, i int, v float32) {
	o.data[o.idx(j, i)] += v
}

// Mul multiplies the value at (j,i) by v.
func (o *Grid) Mul(j, i int, v float32) {
	o.data[o.idx(j, i)] *= v
}

// Reset fills every cell with v.
func (o *Grid) Reset(v float32) {
	for k := range o.data {
		o.data[k] = v
	}
}

// Scale multiplies every cell in-place by s.
func (o *Grid) Scale(s float32) {
	for k := range o.data {
		o.data[k] *= s
	}
}

// Sub computes C = A - B element-wise. A, B and o must share (Nx,Ny).
func (o *Grid) Sub(a, b *Grid) {
	o.mustMatch(a)
	o.mustMatch(b)
	for k := range o.data {
		o.data[k] = a.data[k] - b.data[k]
	}
}

// mustMatch panics if other does not share this grid's dimensions.
// Cross-grid shape mismatches are a programmer error (invariant I1),
// never a recoverable input error, so this aborts rather than
// returning an error.
func (o *Grid) mustMatch(other *Grid) {
	if other.Nx != o.Nx || other.Ny != o.Ny {
		chk.Panic("field: grid shape mismatch: (%d,%d) != (%d,%d)", o.Nx, o.Ny, other.Nx, other.Ny)
	}
}

// Extremes returns the minimum and maximum cell values, the way
// `ele/solid/beam.go` locates a diagram's extremes via
// utl.DblArgMinMax before labelling it. Used for end-of-run
// diagnostics (reporting the actual Ez/Bz range reached), not by the
// stepper itself.
func (o *Grid) Extremes() (min, max float32) {
	vals := make([]float64, len(o.data))
	for k, v := range o.data {
		vals[k] = float64(v)
	}
	imin, imax := utl.DblArgMinMax(vals)
	return o.data[imin], o.data[imax]
}

// Raw exposes the backing slice for adapters (output writers) that
// need a read-only flat view; callers must not retain it across a
// Reset/New call on o.
func (o *Grid) Raw() []float32 {
	return o.data
}
