// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

func init() {
	registry["circle"] = paintCircle
}

// paintCircle implements the "circle" tuple: x0, y0, radius, nr, ni (5).
func paintCircle(c Canvas, params []float64) []float64 {
	group, rest, ok := consume(params, 5)
	if !ok {
		return params
	}
	x0, y0, radius, nr, ni := group[0], group[1], group[2], group[3], group[4]
	chiR, chiI := susceptibility(nr, ni)

	ci, cj := toPixel(c, x0, y0)
	rPix := radius / float64(c.PixelSize())
	nx, ny := c.Dims()
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			dx, dy := float64(i)-ci, float64(j)-cj
			if dx*dx+dy*dy <= rPix*rPix {
				c.AddEps(j, i, float32(chiR))
				c.AddSigma(j, i, float32(chiI))
			}
		}
	}
	return rest
}
