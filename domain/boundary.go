// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import "github.com/Sciumo/maxwell2d/field"

// DetectBoundaries paints Boundaries with 1 at every cell that is the
// maximum of its own 3×3 neighbourhood in Epsilon while that
// neighbourhood is not uniform, and 0 elsewhere (§4.7/P8,
// mw_boundaries.c's get_max): only the higher-ε side of a material
// discontinuity is marked, not both. Only cells with 1≤j≤Ny−3 and
// 1≤i≤Nx−3 are examined: the outer ring, which has no full 3×3
// neighbourhood, and the second-to-last row and column are never
// marked.
//
// A uniform grid (every cell equal) is the common case and is
// detected up front without the neighbourhood scan, matching the
// reference's short-circuit on a flat permittivity field.
func (o *Domain) DetectBoundaries() {
	o.Boundaries.Reset(0)
	if o.isUniform(o.Epsilon) {
		return
	}
	for j := 1; j < o.Ny-2; j++ {
		for i := 1; i < o.Nx-2; i++ {
			if o.isLocalMax(j, i) {
				o.Boundaries.Set(j, i, 1)
			}
		}
	}
}

// isLocalMax reports whether (j,i) equals the maximum of its 3×3
// neighbourhood in Epsilon and that neighbourhood is not uniform.
func (o *Domain) isLocalMax(j, i int) bool {
	v := o.Epsilon.At(j, i)
	max := v
	uniform := true
	for dj := -1; dj <= 1; dj++ {
		for di := -1; di <= 1; di++ {
			n := o.Epsilon.At(j+dj, i+di)
			if n != v {
				uniform = false
			}
			if n > max {
				max = n
			}
		}
	}
	return !uniform && v == max
}

// isUniform reports whether every cell in g equals the first cell.
func (o *Domain) isUniform(g *field.Grid) bool {
	raw := g.Raw()
	if len(raw) == 0 {
		return true
	}
	first := raw[0]
	for _, v := range raw[1:] {
		if v != first {
			return false
		}
	}
	return true
}
