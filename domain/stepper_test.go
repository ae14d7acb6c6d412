// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_stepper01(tst *testing.T) {

	chk.PrintTitle("stepper01: a quiet vacuum domain stays at zero")

	o, _ := New(12, 12, 1, EZ)
	o.F0 = 0.1
	o.Cycles = 0 // source off from the start

	for n := 0; n < 10; n++ {
		o.updateForcing()
		o.Step()
	}

	for j := 0; j < o.Ny; j++ {
		for i := 0; i < o.Nx; i++ {
			chk.Scalar(tst, "Ez", 1e-12, float64(o.Ez.At(j, i)), 0)
		}
	}
}

func Test_stepper02(tst *testing.T) {

	chk.PrintTitle("stepper02: Step is a no-op on a degenerate grid")

	o, _ := New(2, 2, 1, EZ)
	o.F0 = 0.1
	o.Cycles = 100
	o.EzAmp = 1

	if !o.Degenerate() {
		tst.Errorf("2x2 should be degenerate")
	}
	// must not panic: the interior loops (j,i in [1,Ny-2]) are simply empty
	for n := 0; n < 5; n++ {
		o.updateForcing()
		o.Step()
	}
}

func Test_stepper03(tst *testing.T) {

	chk.PrintTitle("stepper03: a driven point source radiates energy outward")

	o, _ := New(24, 24, 1, EZ)
	o.F0 = 0.1
	o.Cycles = 1000
	o.EzAmp = 1
	o.ForcingI.Set(12, 12, 1)

	for n := 0; n < 20; n++ {
		o.updateForcing()
		o.Step()
	}

	energy := 0.0
	for j := 0; j < o.Ny; j++ {
		for i := 0; i < o.Nx; i++ {
			v := float64(o.Ez.At(j, i))
			energy += v * v
		}
	}
	if energy <= 0 {
		tst.Errorf("a driven source should have injected nonzero energy, got %v", energy)
	}
}

func Test_stepper04(tst *testing.T) {

	chk.PrintTitle("stepper04: EXY and EZ run independently when only one mode is active")

	o, _ := New(16, 16, 1, EXY)
	o.F0 = 0.1
	o.Cycles = 1000
	o.ExAmp = 1
	o.ForcingI.Set(8, 8, 1)

	for n := 0; n < 10; n++ {
		o.updateForcing()
		o.Step()
	}
	if o.Ez != nil || o.Bx != nil || o.By != nil {
		tst.Errorf("EZ grids should not exist in EXY-only mode")
	}
}
