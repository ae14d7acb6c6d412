// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gifout

import (
	"image/color"

	"gonum.org/v1/plot/palette/moreland"
)

// fieldPalette maps a field value in [-vmax,vmax] to a palette index
// via halfsize·(1+v/vmax), clamped to [0, size-2]; index size-1 is
// reserved for the boundary overlay (§6.2). It wraps gonum's diverging
// blue-red colormap (moreland.SmoothBlueRed) the way the rest of the
// retrieval pack reaches for gonum's plotting stack rather than a
// hand-rolled gradient.
type fieldPalette struct {
	colors []color.Color
	size   int
}

// newFieldPalette builds a palette of size entries (the last of which
// is the boundary-overlay color) from the smooth blue-red diverging
// colormap.
func newFieldPalette(size int) (*fieldPalette, error) {
	if size < 2 {
		size = 2
	}
	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(1)

	n := size - 1
	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		col, err := cm.At(t)
		if err != nil {
			return nil, err
		}
		colors[i] = col
	}
	colors = append(colors, color.White) // boundary overlay, index size-1
	return &fieldPalette{colors: colors, size: size}, nil
}

// indexOf maps a field value normalized by vmax to a palette index
// (§6.2's halfsize·(1+v/vmax) rule).
func (p *fieldPalette) indexOf(v, vmax float64) uint8 {
	if vmax <= 0 {
		vmax = 1
	}
	halfsize := float64(p.size-1) / 2
	idx := halfsize * (1 + v/vmax)
	if idx < 0 {
		idx = 0
	}
	if idx > float64(p.size-2) {
		idx = float64(p.size - 2)
	}
	return uint8(idx)
}

// boundaryIndex is the reserved overlay index (§6.2: "boundary mask
// forces index palette−1").
func (p *fieldPalette) boundaryIndex() uint8 {
	return uint8(p.size - 1)
}

func (p *fieldPalette) asColorPalette() color.Palette {
	return color.Palette(p.colors)
}
