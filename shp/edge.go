// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

func init() {
	registry["edge"] = paintEdge
}

// paintEdge implements the "edge" tuple: x0, y0, angle_deg, nr, ni
// (5). Fills the half-plane where (i−x0)·sin(angle) + (j−y0)·cos(angle) > 0
// (§4.2).
func paintEdge(c Canvas, params []float64) []float64 {
	group, rest, ok := consume(params, 5)
	if !ok {
		return params
	}
	x0, y0, angleDeg, nr, ni := group[0], group[1], group[2], group[3], group[4]
	chiR, chiI := susceptibility(nr, ni)

	ci, cj := toPixel(c, x0, y0)
	sin, cos := math.Sincos(degToRad(angleDeg))

	nx, ny := c.Dims()
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			if (float64(i)-ci)*sin+(float64(j)-cj)*cos > 0 {
				c.AddEps(j, i, float32(chiR))
				c.AddSigma(j, i, float32(chiI))
			}
		}
	}
	return rest
}
