// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"math"

	"github.com/Sciumo/maxwell2d/field"
)

// InitBorder writes the absorbing-border damping profile into
// Bdamping (§4.3). Ring k of the W-cell-wide perimeter gets
// √((k+1)/(W+1)); the interior keeps the value 1 that New already put
// there. Corners inherit the minimum of the two intersecting ring
// values, which falls out naturally from running the top/bottom pass
// before the left/right pass and writing the smaller (shallower) ring
// value last only where it actually is smaller — so this applies the
// top/bottom and left/right passes in that order and takes the min at
// each cell, matching the reference ring order.
func (o *Domain) InitBorder(width int) {
	o.BorderWidth = width
	if width <= 0 {
		return
	}
	nx, ny := o.Nx, o.Ny

	ringVal := func(k int) float32 {
		return float32(math.Sqrt(float64(k+1) / float64(width+1)))
	}

	// top and bottom rows
	for k := 0; k < width; k++ {
		v := ringVal(k)
		if k >= ny {
			break
		}
		for i := 0; i < nx; i++ {
			applyMin(o.Bdamping, k, i, v)
			applyMin(o.Bdamping, ny-1-k, i, v)
		}
	}

	// left and right columns
	for k := 0; k < width; k++ {
		v := ringVal(k)
		if k >= nx {
			break
		}
		for j := 0; j < ny; j++ {
			applyMin(o.Bdamping, j, k, v)
			applyMin(o.Bdamping, j, nx-1-k, v)
		}
	}
}

// applyMin writes v into the grid at (j,i) unless a smaller value is
// already there, giving every corner the min of the two ring values
// that overlap it there (§4.3).
func applyMin(g *field.Grid, j, i int, v float32) {
	if v < g.At(j, i) {
		g.Set(j, i, v)
	}
}
