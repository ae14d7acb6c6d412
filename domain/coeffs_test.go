// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_coeffs01(tst *testing.T) {

	chk.PrintTitle("coeffs01: Eprefix and Edamping derived once, idempotently")

	o, _ := New(8, 8, 1, EZ)
	o.F0 = 0.1
	o.Sigma.Set(3, 3, 0.5)

	if o.CoeffsBuilt() {
		tst.Errorf("coefficients should not be built before the first step")
	}
	o.buildCoeffs()
	if !o.CoeffsBuilt() {
		tst.Errorf("coefficients should be built after buildCoeffs")
	}

	eprefix := o.Eprefix.At(3, 3)
	edamping := o.Edamping.At(3, 3)

	// mutate the raw inputs; a second call must be a no-op (I4, P5)
	o.Sigma.Set(3, 3, 99)
	o.Epsilon.Set(3, 3, 99)
	o.buildCoeffs()

	chk.Scalar(tst, "eprefix unchanged", 1e-15, float64(o.Eprefix.At(3, 3)), float64(eprefix))
	chk.Scalar(tst, "edamping unchanged", 1e-15, float64(o.Edamping.At(3, 3)), float64(edamping))
}

func Test_coeffs02(tst *testing.T) {

	chk.PrintTitle("coeffs02: Edamping stays within (0,1] (invariant I4)")

	o, _ := New(8, 8, 1, EZ)
	o.F0 = 0.1
	for j := 0; j < 8; j++ {
		for i := 0; i < 8; i++ {
			o.Sigma.Set(j, i, float32(j+i))
		}
	}
	o.buildCoeffs()
	for j := 0; j < 7; j++ {
		for i := 0; i < 7; i++ {
			v := float64(o.Edamping.At(j, i))
			if v <= 0 || v > 1 {
				tst.Errorf("edamping[%d][%d]=%v outside (0,1]", j, i, v)
			}
		}
	}
}

func Test_coeffs03(tst *testing.T) {

	chk.PrintTitle("coeffs03: vacuum twin gets a scalar Eprefix, not a grid")

	o, _ := New(8, 8, 2, EZ|Vacuum)
	o.buildCoeffs()
	want := float64(float32(0.5 * o.Dt * C * C / float64(o.Dx))) // stored in single precision
	chk.Scalar(tst, "EprefixVacuum", 1e-12, float64(o.EprefixVacuum), want)
}
