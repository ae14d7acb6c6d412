// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

func init() {
	registry["dish"] = paintDish
}

// paintDish implements the "dish" tuple: x_focus, y_focus, scale,
// radius_left, radius_right, thickness, nr, ni (8). The reflector
// surface is the parabola y = (i−x_focus)²/(4·scale) − scale relative
// to the focus, painted as a band "thickness" cells wide, restricted
// laterally to [x_focus−radius_left, x_focus+radius_right] (§4.2).
func paintDish(c Canvas, params []float64) []float64 {
	group, rest, ok := consume(params, 8)
	if !ok {
		return params
	}
	xFocus, yFocus, scale, radiusLeft, radiusRight, thickness, nr, ni :=
		group[0], group[1], group[2], group[3], group[4], group[5], group[6], group[7]
	chiR, chiI := susceptibility(nr, ni)

	cx, cy := toPixel(c, xFocus, yFocus)
	dx := float64(c.PixelSize())
	scalePix := scale / dx
	rLeft, rRight := radiusLeft/dx, radiusRight/dx
	thickPix := thickness / dx

	nx, ny := c.Dims()
	for i := 0; i < nx; i++ {
		di := float64(i) - cx
		if di < -rLeft || di > rRight {
			continue
		}
		surfaceJ := cy + di*di/(4*scalePix) - scalePix
		for j := 0; j < ny; j++ {
			if math.Abs(float64(j)-surfaceJ) > thickPix/2 {
				continue
			}
			c.AddEps(j, i, float32(chiR))
			c.AddSigma(j, i, float32(chiI))
		}
	}
	return rest
}
