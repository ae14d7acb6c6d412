// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_domain01(tst *testing.T) {

	chk.PrintTitle("domain01: allocation follows mode")

	o, err := New(16, 16, 1, EZ)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	if o.Ez == nil || o.Bx == nil || o.By == nil {
		tst.Errorf("EZ grids should be allocated")
	}
	if o.Ex != nil || o.Ey != nil || o.Bz != nil {
		tst.Errorf("EXY grids should not be allocated in EZ-only mode")
	}
	if o.ExVac != nil || o.EzVac != nil {
		tst.Errorf("vacuum grids should not be allocated without Vacuum mode")
	}
}

func Test_domain02(tst *testing.T) {

	chk.PrintTitle("domain02: dual mode plus vacuum allocates every grid")

	o, err := New(16, 16, 1, EZ|EXY|Vacuum)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	if o.Ex == nil || o.Ez == nil || o.ExVac == nil || o.EzVac == nil {
		tst.Errorf("every grid should be allocated in EZ|EXY|Vacuum mode")
	}
}

func Test_domain03(tst *testing.T) {

	chk.PrintTitle("domain03: degenerate grids are flagged, not rejected")

	o, err := New(2, 2, 1, EZ)
	if err != nil {
		tst.Errorf("New should accept a tiny grid:\n%v", err)
		return
	}
	if !o.Degenerate() {
		tst.Errorf("2x2 should be degenerate")
	}

	o2, err := New(5, 5, 1, EZ)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	if o2.Degenerate() {
		tst.Errorf("5x5 should not be degenerate")
	}
}

func Test_domain04(tst *testing.T) {

	chk.PrintTitle("domain04: invalid dimensions rejected at allocation")

	_, err := New(0, 10, 1, EZ)
	if err == nil {
		tst.Errorf("expected an error for nx=0")
	}
	_, err = New(10, 10, 0, EZ)
	if err == nil {
		tst.Errorf("expected an error for dx<=0")
	}
}

func Test_domain05(tst *testing.T) {

	chk.PrintTitle("domain05: epsilon starts at 1, bdamping starts at 1")

	o, _ := New(8, 8, 1, EZ)
	for j := 0; j < 8; j++ {
		for i := 0; i < 8; i++ {
			chk.Scalar(tst, "epsilon", 1e-15, float64(o.Epsilon.At(j, i)), 1)
			chk.Scalar(tst, "bdamping", 1e-15, float64(o.Bdamping.At(j, i)), 1)
		}
	}
}
