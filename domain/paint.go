// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import "github.com/Sciumo/maxwell2d/shp"

// Dims, PixelSize, AddEps and AddSigma make *Domain satisfy shp.Canvas, so
// the shape library can paint directly into a Domain's material
// grids without depending on the domain package (§4.2, §9 "shape
// library ... Model as a uniform function interface").
func (o *Domain) Dims() (nx, ny int)  { return o.Nx, o.Ny }
func (o *Domain) PixelSize() float32 { return o.Dx }

// AddEps adds v to ε at (j,i) and clamps the result to ≥1 (invariant
// I2), the way original_source never lets two overlapping shapes with
// negative χr paint a sub-vacuum permittivity.
func (o *Domain) AddEps(j, i int, v float32) {
	o.Epsilon.Add(j, i, v)
	if o.Epsilon.At(j, i) < 1 {
		o.Epsilon.Set(j, i, 1)
	}
}
func (o *Domain) AddSigma(j, i int, v float32) { o.Sigma.Add(j, i, v) }

// BorderWidthHint returns the absorbing-border width InitBorder was
// last called with (0 if never called).
func (o *Domain) BorderWidthHint() int { return o.BorderWidth }

// ToPixel converts a physical (x,y) coordinate to the nearest pixel
// (i,j), centred on the domain: i = round(x/Δx + Nx/2),
// j = round(y/Δx + Ny/2) (§4.2).
func (o *Domain) ToPixel(x, y float64) (i, j int) {
	dx := float64(o.Dx)
	i = int(x/dx+float64(o.Nx)/2 + 0.5)
	j = int(y/dx+float64(o.Ny)/2 + 0.5)
	return
}

// Paint applies the named shape rasterizer, consuming instance tuples
// from the head of params (§4.2). DetectBoundaries should be re-run
// after painting is complete, since it only reflects ε as of its last
// call.
func (o *Domain) Paint(name string, params []float64) error {
	return shp.Paint(o, name, params)
}
