// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

func init() {
	registry["lens"] = paintLens
}

// paintLens implements the "lens" tuple: x0, y0, radius_curvature,
// size, nr, ni (6). A convex lens centred on (x0,y0) whose thickness
// at a column offset r = i−x0 from the axis is
// thickness = 2 + R − √(R² − size² + r²): thickest on the axis and 2
// cells at the aperture edge |r| = size; columns outside the
// [−size, size] aperture window are not painted. Painted for j in
// [y0, y0+thickness] at each column (§4.2).
func paintLens(c Canvas, params []float64) []float64 {
	group, rest, ok := consume(params, 6)
	if !ok {
		return params
	}
	x0, y0, radiusCurv, size, nr, ni := group[0], group[1], group[2], group[3], group[4], group[5]
	chiR, chiI := susceptibility(nr, ni)

	ci, cj := toPixel(c, x0, y0)
	dx := float64(c.PixelSize())
	rPix := radiusCurv / dx
	sizePix := size / dx

	nx, ny := c.Dims()
	for i := 0; i < nx; i++ {
		r := float64(i) - ci
		if math.Abs(r) > sizePix {
			continue
		}
		under := rPix*rPix - sizePix*sizePix + r*r
		if under < 0 {
			continue
		}
		thickness := 2 + rPix - math.Sqrt(under)
		jMax := cj + thickness
		for j := 0; j < ny; j++ {
			if float64(j) < cj || float64(j) > jMax {
				continue
			}
			c.AddEps(j, i, float32(chiR))
			c.AddSigma(j, i, float32(chiI))
		}
	}
	return rest
}
