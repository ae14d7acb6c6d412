// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_grid01(tst *testing.T) {

	chk.PrintTitle("grid01: allocation and addressing")

	g := New(4, 3, 1)
	if g.Nx != 4 || g.Ny != 3 {
		tst.Errorf("dimensions not set correctly")
		return
	}
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			chk.Scalar(tst, "cell", 1e-15, float64(g.At(j, i)), 1)
		}
	}
	g.Set(1, 2, 5)
	chk.Scalar(tst, "g[1][2]", 1e-15, float64(g.At(1, 2)), 5)
	chk.Scalar(tst, "g[0][0] unaffected", 1e-15, float64(g.At(0, 0)), 1)
}

func Test_grid02(tst *testing.T) {

	chk.PrintTitle("grid02: reset, scale, sub")

	g := New(2, 2, 2)
	g.Scale(3)
	chk.Scalar(tst, "scaled", 1e-15, float64(g.At(0, 0)), 6)

	g.Reset(0)
	chk.Scalar(tst, "reset", 1e-15, float64(g.At(1, 1)), 0)

	a := New(2, 2, 4)
	b := New(2, 2, 1)
	c := New(2, 2, 0)
	c.Sub(a, b)
	chk.Scalar(tst, "a-b", 1e-15, float64(c.At(0, 1)), 3)
}

func Test_grid04(tst *testing.T) {

	chk.PrintTitle("grid04: extremes")

	g := New(3, 1, 0)
	g.Set(0, 0, -2)
	g.Set(0, 1, 5)
	g.Set(0, 2, 1)
	min, max := g.Extremes()
	chk.Scalar(tst, "min", 1e-15, float64(min), -2)
	chk.Scalar(tst, "max", 1e-15, float64(max), 5)
}

func Test_grid03(tst *testing.T) {

	chk.PrintTitle("grid03: shape mismatch panics")

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("Sub with mismatched shapes should have panicked")
		}
	}()

	a := New(2, 2, 0)
	b := New(3, 3, 0)
	a.Sub(a, b)
}
