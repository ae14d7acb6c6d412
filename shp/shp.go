// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements the permittivity painter's geometry shape
// library: a set of rasterizers, keyed by name, that add a shape's
// refractive-index contribution to a domain's ε and σ grids (§4.2).
// Every rasterizer shares the Paint contract, following the same
// name-keyed factory idiom gofem uses for its material models
// (mdl/conduct.New): configuration supplies a shape name and a flat
// parameter stream, and the registry looks up the allocator.
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Canvas is the painter's target: the two grids a shape mutates.
// Shapes only ever add to these, never overwrite (P7 additivity).
type Canvas interface {
	Dims() (nx, ny int)
	PixelSize() float32
	AddEps(j, i int, v float32)
	AddSigma(j, i int, v float32)
}

// Rasterizer paints repeated instances of one shape, consuming its
// parameter tuple from the head of params and returning the
// parameters it did not consume (so the caller can feed the
// remainder to the next instance or shape). A trailing group with
// fewer than the tuple's arity is silently dropped (§7 "Invalid shape
// tuples ... are silently truncated").
type Rasterizer func(c Canvas, params []float64) (rest []float64)

// New looks up the rasterizer registered under name.
func New(name string) (r Rasterizer, err error) {
	r, ok := registry[name]
	if !ok {
		return nil, chk.Err("shp: shape %q is not available", name)
	}
	return r, nil
}

// Paint repeatedly applies the named rasterizer to params until fewer
// than one full tuple remains, painting as many identical shape
// instances as the flat array holds (§4.2 "Parameter groups are
// consumed repeatedly from the head of the array").
func Paint(c Canvas, name string, params []float64) error {
	r, err := New(name)
	if err != nil {
		return err
	}
	rest := params
	for {
		before := len(rest)
		rest = r(c, rest)
		if len(rest) == before {
			return nil // rasterizer could not consume a further whole tuple
		}
	}
}

var registry = map[string]Rasterizer{}

// consume splits the first n values off params, reporting ok=false
// (and returning params unchanged) when fewer than n remain — the
// "silently truncated" trailing-group rule (§7).
func consume(params []float64, n int) (group, rest []float64, ok bool) {
	if len(params) < n {
		return nil, params, false
	}
	return params[:n], params[n:], true
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// susceptibility converts a refractive index pair (nr, ni) to the
// (χr, χi) added into ε and σ: χr = nr−1, χi = |ni| (§4.2). The
// Clausius-Mosotti relation gives a physically sharper answer at
// large n but is not used here; the linear rule is kept even though
// it under-predicts the scattering cross-section for large n, since
// "fixing" it would silently change every example that depends on
// the documented behavior (Open Question (b)).
func susceptibility(nr, ni float64) (chiR, chiI float64) {
	return nr - 1, absFloat64(ni)
}

func absFloat64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// toPixel converts a physical (x,y) coordinate to a (i,j) pixel pair,
// centred on the domain (§4.2): i = x/Δx + Nx/2, j = y/Δx + Ny/2.
func toPixel(c Canvas, x, y float64) (i, j float64) {
	nx, ny := c.Dims()
	dx := float64(c.PixelSize())
	return x/dx + float64(nx)/2, y/dx + float64(ny)/2
}
