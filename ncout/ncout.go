// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ncout implements the scientific output external collaborator
// (§6.2): a NetCDF file holding ε, σ, the Ez/Bz (and, under vacuum
// mode, the scattered) time series, and the mean Poynting vector at
// end of run. Dimensions are (time, y, x), matching the reference's
// nc_file layout. Grounded on the NetCDF writer idiom in
// spatialmodel/inmap's vargrid.go (github.com/ctessum/cdf).
package ncout

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"

	"github.com/Sciumo/maxwell2d/domain"
	"github.com/Sciumo/maxwell2d/field"
)

// Writer accumulates one frame at a time into a NetCDF file opened
// for a known number of frames. Only Ez and Bz are written to the
// time-varying series, matching the reference nc writer: recording
// the full six-component field at every frame was judged unnecessary
// for the visualizations nc_file feeds.
type Writer struct {
	file   *os.File
	f      *cdf.File
	nx, ny int
	frames int
	cursor int
	vacuum bool
	skipTD bool
}

// Create opens path for writing, declaring the dimensions and
// variables up front the way NetCDF's header-then-data model
// requires (h.Define must run before the first write, §"Scientific
// output").
func Create(path string, d *domain.Domain, frames int, skipTimeDependent bool) (w *Writer, err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("ncout: cannot create %q: %v", path, err)
	}

	nx, ny := d.Nx, d.Ny
	h := cdf.NewHeader(
		[]string{"x", "y", "time"},
		[]int{nx, ny, frames},
	)
	h.AddAttribute("", "pixel_spacing", []float32{d.Dx})

	h.AddVariable("epsilon", []string{"y", "x"}, []float32{0})
	h.AddVariable("sigma", []string{"y", "x"}, []float32{0})
	h.AddVariable("poynting_x", []string{"y", "x"}, []float32{0})
	h.AddVariable("poynting_y", []string{"y", "x"}, []float32{0})

	if !skipTimeDependent {
		h.AddVariable("Ez", []string{"time", "y", "x"}, []float32{0})
		h.AddVariable("Bz", []string{"time", "y", "x"}, []float32{0})
		if d.Mode.HasVacuum() {
			h.AddVariable("Ez_scat", []string{"time", "y", "x"}, []float32{0})
			h.AddVariable("Bz_scat", []string{"time", "y", "x"}, []float32{0})
		}
	}
	if d.Mode.HasVacuum() {
		h.AddVariable("poynting_x_scat", []string{"y", "x"}, []float32{0})
		h.AddVariable("poynting_y_scat", []string{"y", "x"}, []float32{0})
	}
	h.Define()

	cf, err := cdf.Create(f, h)
	if err != nil {
		return nil, fmt.Errorf("ncout: writing header to %q: %v", path, err)
	}

	w = &Writer{file: f, f: cf, nx: nx, ny: ny, frames: frames, vacuum: d.Mode.HasVacuum(), skipTD: skipTimeDependent}
	if err = w.writeGrid("epsilon", d.Epsilon.Raw()); err != nil {
		return nil, err
	}
	if err = w.writeGrid("sigma", d.Sigma.Raw()); err != nil {
		return nil, err
	}
	return w, nil
}

// WriteFrame appends one frame's Ez/Bz (and scattered counterparts,
// under vacuum mode) as the next time-slice (§6.2 "one sample per
// frame").
func (w *Writer) WriteFrame(d *domain.Domain) error {
	if w.skipTD {
		w.cursor++
		return nil
	}
	if w.cursor >= w.frames {
		return fmt.Errorf("ncout: frame %d exceeds the %d frames this file was created for", w.cursor, w.frames)
	}
	if err := w.writeTimeSlice("Ez", d.Ez.Raw()); err != nil {
		return err
	}
	if err := w.writeTimeSlice("Bz", d.Bz.Raw()); err != nil {
		return err
	}
	if w.vacuum {
		ezScat := field.New(w.nx, w.ny, 0)
		ezScat.Sub(d.Ez, d.EzVac)
		bzScat := field.New(w.nx, w.ny, 0)
		bzScat.Sub(d.Bz, d.BzVac)
		if err := w.writeTimeSlice("Ez_scat", ezScat.Raw()); err != nil {
			return err
		}
		if err := w.writeTimeSlice("Bz_scat", bzScat.Raw()); err != nil {
			return err
		}
	}
	w.cursor++
	return nil
}

// Close writes the end-of-run mean Poynting vector and closes the
// file (§6.2 "mean Poynting vector computed at end of run").
func (w *Writer) Close(d *domain.Domain) error {
	px, py := poyntingMean(d.PoyntingX, d.Iframe), poyntingMean(d.PoyntingY, d.Iframe)
	if err := w.writeGrid("poynting_x", px); err != nil {
		return err
	}
	if err := w.writeGrid("poynting_y", py); err != nil {
		return err
	}
	if w.vacuum {
		pxs, pys := poyntingMean(d.PoyntingXScat, d.Iframe), poyntingMean(d.PoyntingYScat, d.Iframe)
		if err := w.writeGrid("poynting_x_scat", pxs); err != nil {
			return err
		}
		if err := w.writeGrid("poynting_y_scat", pys); err != nil {
			return err
		}
	}
	return cdf.UpdateNumRecs(w.file)
}

func poyntingMean(g interface{ Raw() []float32 }, iframe int) []float32 {
	raw := g.Raw()
	out := make([]float32, len(raw))
	if iframe == 0 {
		return out
	}
	n := float32(iframe)
	for i, v := range raw {
		out[i] = v / n
	}
	return out
}

func (w *Writer) writeGrid(name string, data []float32) error {
	end := w.f.Header.Lengths(name)
	start := make([]int, len(end))
	_, err := w.f.Writer(name, start, end).Write(data)
	if err != nil {
		return fmt.Errorf("ncout: writing %s: %v", name, err)
	}
	return nil
}

func (w *Writer) writeTimeSlice(name string, data []float32) error {
	end := w.f.Header.Lengths(name)
	end[0] = w.cursor + 1
	start := make([]int, len(end))
	start[0] = w.cursor
	end[1], end[2] = w.ny, w.nx
	_, err := w.f.Writer(name, start, end).Write(data)
	if err != nil {
		return fmt.Errorf("ncout: writing %s at frame %d: %v", name, w.cursor, err)
	}
	return nil
}
