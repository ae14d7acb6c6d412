// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

func init() {
	registry["cavity"] = paintCavity
}

// paintCavity implements the "cavity" tuple: x_bl, y_bl, x_tr, y_tr,
// x_c, y_c, radius, nr, ni (9): a rectangle with a circular bore
// removed from its center (§4.2).
func paintCavity(c Canvas, params []float64) []float64 {
	group, rest, ok := consume(params, 9)
	if !ok {
		return params
	}
	xBl, yBl, xTr, yTr, xc, yc, radius, nr, ni :=
		group[0], group[1], group[2], group[3], group[4], group[5], group[6], group[7], group[8]
	chiR, chiI := susceptibility(nr, ni)

	iBl, jBl := toPixel(c, xBl, yBl)
	iTr, jTr := toPixel(c, xTr, yTr)
	i0, i1 := sortPair(iBl, iTr)
	j0, j1 := sortPair(jBl, jTr)

	ci, cj := toPixel(c, xc, yc)
	rPix := radius / float64(c.PixelSize())

	nx, ny := c.Dims()
	for j := 0; j < ny; j++ {
		if float64(j) < j0 || float64(j) > j1 {
			continue
		}
		for i := 0; i < nx; i++ {
			if float64(i) < i0 || float64(i) > i1 {
				continue
			}
			dx, dy := float64(i)-ci, float64(j)-cj
			if dx*dx+dy*dy <= rPix*rPix {
				continue
			}
			c.AddEps(j, i, float32(chiR))
			c.AddSigma(j, i, float32(chiI))
		}
	}
	return rest
}
