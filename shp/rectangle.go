// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

func init() {
	registry["rectangle"] = paintRectangle
}

// paintRectangle implements the "rectangle" tuple:
// x_bl, y_bl, x_tr, y_tr, nr, ni (6).
func paintRectangle(c Canvas, params []float64) []float64 {
	group, rest, ok := consume(params, 6)
	if !ok {
		return params
	}
	xBl, yBl, xTr, yTr, nr, ni := group[0], group[1], group[2], group[3], group[4], group[5]
	chiR, chiI := susceptibility(nr, ni)

	iBl, jBl := toPixel(c, xBl, yBl)
	iTr, jTr := toPixel(c, xTr, yTr)
	i0, i1 := sortPair(iBl, iTr)
	j0, j1 := sortPair(jBl, jTr)

	nx, ny := c.Dims()
	for j := 0; j < ny; j++ {
		if float64(j) < j0 || float64(j) > j1 {
			continue
		}
		for i := 0; i < nx; i++ {
			if float64(i) < i0 || float64(i) > i1 {
				continue
			}
			c.AddEps(j, i, float32(chiR))
			c.AddSigma(j, i, float32(chiI))
		}
	}
	return rest
}

// sortPair orders a corner pair regardless of which one the
// configuration names "bottom-left"/"top-right" (§4.2 makes no
// promise about corner ordering).
func sortPair(a, b float64) (lo, hi float64) {
	return min(a, b), max(a, b)
}
