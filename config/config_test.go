// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_config01(tst *testing.T) {

	chk.PrintTitle("config01: Defaults fills in the zero-valued grid and source fields")

	c := new(Config)
	c.Defaults()

	chk.Scalar(tst, "x_pixels", 1e-15, float64(c.XPixels), 64)
	chk.Scalar(tst, "y_pixels", 1e-15, float64(c.YPixels), 64)
	chk.Scalar(tst, "pixel_spacing", 1e-15, c.PixelSpacing, 1.0)
	chk.Scalar(tst, "border_width", 1e-15, float64(c.BorderWidth), 6)
	if c.Polarization != "z" {
		tst.Errorf("default polarization should be \"z\", got %q", c.Polarization)
	}
	chk.Scalar(tst, "frequency", 1e-15, c.Frequency, 0.1)
	chk.Scalar(tst, "z_amplitude", 1e-15, c.ZAmplitude, 1)
	chk.Scalar(tst, "cycles", 1e-15, c.Cycles, 10)
}

func Test_config02(tst *testing.T) {

	chk.PrintTitle("config02: a configured frequencies list overrides the primary frequency")

	c := new(Config)
	c.Frequencies = []float64{0.05, 1.0, 0, 0.15, 0.5, 90}
	c.Defaults()

	chk.Scalar(tst, "frequency takes Frequencies[0]", 1e-15, c.Frequency, 0.05)

	tones := c.Tones()
	if len(tones) != 2 {
		tst.Errorf("expected 2 tones, got %d", len(tones))
		return
	}
	chk.Scalar(tst, "tone 2 freq", 1e-15, tones[1].Freq, 0.15)
	chk.Scalar(tst, "tone 2 amp", 1e-15, tones[1].Amp, 0.5)
	chk.Scalar(tst, "tone 2 phase", 1e-15, tones[1].PhaseDeg, 90)
}

func Test_config03(tst *testing.T) {

	chk.PrintTitle("config03: Validate rejects an unknown polarization and odd-length tuples")

	c := new(Config)
	c.Polarization = "diagonal"
	if err := c.Validate(); err == nil {
		tst.Errorf("expected an error for an unknown polarization")
	}

	c2 := new(Config)
	c2.Polarization = "z"
	c2.Frequencies = []float64{0.1, 1.0} // not a multiple of 3
	if err := c2.Validate(); err == nil {
		tst.Errorf("expected an error for a malformed frequencies list")
	}
}

func Test_config04(tst *testing.T) {

	chk.PrintTitle("config04: ShapeTuples only reports configured shapes")

	c := new(Config)
	c.Circle = []float64{0, 0, 5, 1.5, 0}
	shapes := c.ShapeTuples()
	if len(shapes) != 1 {
		tst.Errorf("expected exactly one configured shape, got %d", len(shapes))
	}
	if _, ok := shapes["circle"]; !ok {
		tst.Errorf("expected \"circle\" to be present")
	}
}

func Test_config05(tst *testing.T) {

	chk.PrintTitle("config05: mag is capped at 10")

	c := new(Config)
	c.Mag = 37
	c.Defaults()
	chk.Scalar(tst, "mag", 1e-15, float64(c.Mag), 10)
}
