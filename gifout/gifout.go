// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gifout implements the image output external collaborator
// (§6.2): sequential frames rendered through a diverging colormap,
// one column block per field, side-by-side with the scattered field
// when vacuum mode is on, encoded as an animated GIF. image/gif has
// no idiomatic third-party replacement in the retrieval pack (see
// DESIGN.md), so it is the one ambient concern this repository serves
// from the standard library; the colormap itself still comes from
// gonum (see palette.go).
package gifout

import (
	"image"
	"image/gif"
	"io"

	"github.com/cpmech/gosl/chk"

	"github.com/Sciumo/maxwell2d/domain"
	"github.com/Sciumo/maxwell2d/field"
)

// Writer accumulates one *image.Paletted frame per recorded
// simulation frame and encodes them as a single animated GIF in
// WriteTo.
type Writer struct {
	pal    *fieldPalette
	mag    int
	eMax   float64
	bMax   float64
	scat   float64 // plot_scat_ratio: scattered panel's value scale relative to total
	vacuum bool
	frames []*image.Paletted
}

// New builds a Writer. mag is clamped to [1,10] (§6.1 "mag ... capped
// at 10").
func New(eMax, bMax, scatRatio float64, mag int, vacuum bool) (w *Writer, err error) {
	if mag < 1 {
		mag = 1
	}
	if mag > 10 {
		mag = 10
	}
	pal, err := newFieldPalette(64)
	if err != nil {
		return nil, chk.Err("gifout: building palette: %v", err)
	}
	return &Writer{pal: pal, mag: mag, eMax: eMax, bMax: bMax, scat: scatRatio, vacuum: vacuum}, nil
}

// AddFrame rasterizes the current Ez and Bz fields (and, under vacuum
// mode, their scattered counterparts in an adjacent column block)
// into one GIF frame.
func (w *Writer) AddFrame(d *domain.Domain) {
	cols := 2 // Ez, Bz
	if w.vacuum {
		cols = 4 // + Ez_scat, Bz_scat
	}
	panelW, panelH := d.Nx*w.mag, d.Ny*w.mag
	img := image.NewPaletted(image.Rect(0, 0, panelW*cols, panelH), w.pal.asColorPalette())

	w.paintPanel(img, 0, d.Ez, w.eMax, d)
	w.paintPanel(img, 1, d.Bz, w.bMax, d)
	if w.vacuum {
		ezScat := field.New(d.Nx, d.Ny, 0)
		ezScat.Sub(d.Ez, d.EzVac)
		bzScat := field.New(d.Nx, d.Ny, 0)
		bzScat.Sub(d.Bz, d.BzVac)
		w.paintPanel(img, 2, ezScat, w.eMax*w.scat, d)
		w.paintPanel(img, 3, bzScat, w.bMax*w.scat, d)
	}
	w.frames = append(w.frames, img)
}

func (w *Writer) paintPanel(img *image.Paletted, panel int, g interface{ At(j, i int) float32 }, vmax float64, d *domain.Domain) {
	offset := panel * d.Nx * w.mag
	for j := 0; j < d.Ny; j++ {
		for i := 0; i < d.Nx; i++ {
			idx := w.pal.indexOf(float64(g.At(j, i)), vmax)
			if d.Boundaries.At(j, i) != 0 {
				idx = w.pal.boundaryIndex()
			}
			for dy := 0; dy < w.mag; dy++ {
				for dx := 0; dx < w.mag; dx++ {
					x := offset + i*w.mag + dx
					y := j*w.mag + dy
					img.SetColorIndex(x, y, idx)
				}
			}
		}
	}
}

// WriteTo encodes every accumulated frame as an animated GIF.
func (w *Writer) WriteTo(out io.Writer) error {
	g := &gif.GIF{
		Image: w.frames,
		Delay: make([]int, len(w.frames)),
	}
	for i := range g.Delay {
		g.Delay[i] = 4 // 40ms/frame
	}
	if err := gif.EncodeAll(out, g); err != nil {
		return chk.Err("gifout: encoding animated GIF: %v", err)
	}
	return nil
}
