// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

func init() {
	registry["gradient"] = paintGradient
}

// paintGradient implements the "gradient" tuple: x0, y0, angle_deg,
// width_factor, ε_offset, ε_scale (6). A logistic transition along
// the line's normal direction: ε += ε_offset + ε_scale·σ(dist/width)
// where dist is the signed distance from the (x0,y0,angle) line and
// σ is the logistic function (§4.2). Unlike the index-based shapes,
// this one adds directly to ε with no σ (loss) contribution.
func paintGradient(c Canvas, params []float64) []float64 {
	group, rest, ok := consume(params, 6)
	if !ok {
		return params
	}
	x0, y0, angleDeg, widthFactor, epsOffset, epsScale :=
		group[0], group[1], group[2], group[3], group[4], group[5]

	ci, cj := toPixel(c, x0, y0)
	sin, cos := math.Sincos(degToRad(angleDeg))

	nx, ny := c.Dims()
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			dist := (float64(i)-ci)*sin + (float64(j)-cj)*cos
			logistic := 1 / (1 + math.Exp(-dist/widthFactor))
			c.AddEps(j, i, float32(epsOffset+epsScale*logistic))
		}
	}
	return rest
}
