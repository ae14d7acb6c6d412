// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// fakeCanvas is a minimal in-memory Canvas for exercising rasterizers
// without pulling in the domain package (kept dependency-free, the
// way gofem's mdl model tests avoid importing fem).
type fakeCanvas struct {
	nx, ny int
	dx     float32
	eps    []float32
	sigma  []float32
}

func newFakeCanvas(nx, ny int, dx float32) *fakeCanvas {
	return &fakeCanvas{nx: nx, ny: ny, dx: dx, eps: make([]float32, nx*ny), sigma: make([]float32, nx*ny)}
}
func (c *fakeCanvas) Dims() (nx, ny int)  { return c.nx, c.ny }
func (c *fakeCanvas) PixelSize() float32 { return c.dx }
func (c *fakeCanvas) AddEps(j, i int, v float32) { c.eps[j*c.nx+i] += v }
func (c *fakeCanvas) AddSigma(j, i int, v float32) { c.sigma[j*c.nx+i] += v }
func (c *fakeCanvas) epsAt(j, i int) float32 { return c.eps[j*c.nx+i] }

func Test_shp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp01: circle painter hits the domain center")

	c := newFakeCanvas(32, 32, 1)
	err := Paint(c, "circle", []float64{0, 0, 5, 1.5, 0})
	if err != nil {
		tst.Errorf("Paint failed:\n%v", err)
		return
	}
	cx, cy := c.nx/2, c.ny/2
	chk.Scalar(tst, "eps@center", 1e-7, float64(c.epsAt(cy, cx)), 0.5)
	chk.Scalar(tst, "eps@far-corner", 1e-7, float64(c.epsAt(0, 0)), 0)
}

func Test_shp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp02: unknown shape name fails")

	c := newFakeCanvas(8, 8, 1)
	err := Paint(c, "hexagon", []float64{0, 0, 1, 1, 1})
	if err == nil {
		tst.Errorf("expected an error for an unknown shape name")
	}
}

func Test_shp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp03: repeated instances consumed from one flat array")

	c := newFakeCanvas(32, 32, 1)
	// two non-overlapping circles packed into one parameter stream
	err := Paint(c, "circle", []float64{-10, 0, 2, 1.5, 0, 10, 0, 2, 1.5, 0})
	if err != nil {
		tst.Errorf("Paint failed:\n%v", err)
		return
	}
	cy := c.ny / 2
	left := c.nx/2 - 10
	right := c.nx/2 + 10
	chk.Scalar(tst, "eps@left circle", 1e-7, float64(c.epsAt(cy, left)), 0.5)
	chk.Scalar(tst, "eps@right circle", 1e-7, float64(c.epsAt(cy, right)), 0.5)
}

func Test_shp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp04: a trailing incomplete tuple is silently truncated")

	c := newFakeCanvas(16, 16, 1)
	// one full circle tuple plus three leftover values (not a full tuple)
	err := Paint(c, "circle", []float64{0, 0, 3, 1.2, 0, 1, 2, 3})
	if err != nil {
		tst.Errorf("Paint failed:\n%v", err)
	}
}

func Test_shp05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shp05: susceptibility uses |ni|, not ni")

	chiR, chiI := susceptibility(1.5, -0.3)
	chk.Scalar(tst, "chiR", 1e-12, chiR, 0.5)
	chk.Scalar(tst, "chiI", 1e-12, chiI, 0.3)
}
