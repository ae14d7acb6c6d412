// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

func init() {
	registry["ripple"] = paintRipple
}

// paintRipple implements the "ripple" tuple: x0, y0, angle_deg,
// ε_amp, λ, decay_scale (6). A decaying sinusoid along the line's
// normal: ε += ε_amp·sin(2π·dist/λ)·exp(−(dist/decay_scale)⁴) (§4.2).
func paintRipple(c Canvas, params []float64) []float64 {
	group, rest, ok := consume(params, 6)
	if !ok {
		return params
	}
	x0, y0, angleDeg, epsAmp, lambda, decayScale :=
		group[0], group[1], group[2], group[3], group[4], group[5]

	ci, cj := toPixel(c, x0, y0)
	sin, cos := math.Sincos(degToRad(angleDeg))

	nx, ny := c.Dims()
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			dist := (float64(i)-ci)*sin + (float64(j)-cj)*cos
			decay := dist / decayScale
			factor := epsAmp * math.Sin(2*math.Pi*dist/lambda) * math.Exp(-(decay * decay * decay * decay))
			c.AddEps(j, i, float32(factor))
		}
	}
	return rest
}
