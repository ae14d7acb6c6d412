// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import "math"

func init() {
	registry["wave_packet"] = paintWavePacket
}

// paintWavePacket implements the "wave_packet" tuple: x0, y0,
// angle_deg, len1, len2, λ, nr, ni (8). A sin²-windowed carrier at
// wavelength λ, confined to a rotated rectangle of size len1×len2
// (§4.2): a localized pulse rather than an infinite ripple.
func paintWavePacket(c Canvas, params []float64) []float64 {
	group, rest, ok := consume(params, 8)
	if !ok {
		return params
	}
	x0, y0, angleDeg, len1, len2, lambda, nr, ni :=
		group[0], group[1], group[2], group[3], group[4], group[5], group[6], group[7]
	chiR, chiI := susceptibility(nr, ni)

	ci, cj := toPixel(c, x0, y0)
	sin, cos := math.Sincos(degToRad(angleDeg))
	half1, half2 := len1/(2*float64(c.PixelSize())), len2/(2*float64(c.PixelSize()))
	lambdaPix := lambda / float64(c.PixelSize())

	nx, ny := c.Dims()
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			dx, dy := float64(i)-ci, float64(j)-cj
			along := dx*cos + dy*sin
			across := -dx*sin + dy*cos
			if math.Abs(along) > half1 || math.Abs(across) > half2 {
				continue
			}
			window := math.Sin(math.Pi * (along + half1) / (2 * half1))
			window *= window
			carrier := math.Sin(2 * math.Pi * along / lambdaPix)
			factor := window * carrier
			c.AddEps(j, i, float32(chiR*factor))
			c.AddSigma(j, i, float32(chiI*factor))
		}
	}
	return rest
}
