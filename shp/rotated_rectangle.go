// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

func init() {
	registry["rotated_rectangle"] = paintRotatedRectangle
}

// paintRotatedRectangle implements the "rotated_rectangle" tuple:
// x0, y0, angle_deg, len1, len2, nr, ni (7). len1 runs along the
// rotated axis, len2 across it.
func paintRotatedRectangle(c Canvas, params []float64) []float64 {
	group, rest, ok := consume(params, 7)
	if !ok {
		return params
	}
	x0, y0, angleDeg, len1, len2, nr, ni := group[0], group[1], group[2], group[3], group[4], group[5], group[6]
	chiR, chiI := susceptibility(nr, ni)

	ci, cj := toPixel(c, x0, y0)
	sin, cos := math.Sincos(degToRad(angleDeg))
	half1, half2 := len1/(2*float64(c.PixelSize())), len2/(2*float64(c.PixelSize()))

	nx, ny := c.Dims()
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			dx, dy := float64(i)-ci, float64(j)-cj
			along := dx*cos + dy*sin
			across := -dx*sin + dy*cos
			if math.Abs(along) <= half1 && math.Abs(across) <= half2 {
				c.AddEps(j, i, float32(chiR))
				c.AddSigma(j, i, float32(chiI))
			}
		}
	}
	return rest
}
