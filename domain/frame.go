// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

// minorSteps is the number of leapfrog steps folded into one
// recorded frame (§4.7): the reference always advances seven minor
// steps between Poynting samples, trading temporal resolution for a
// smoother time-averaged output.
const minorSteps = 7

// AdvanceFrame runs minorSteps leapfrog steps, updating the source
// forcing before each one, then folds the resulting fields into the
// Poynting accumulators and increments Iframe (§4.7). It is the unit
// of work a caller should use to drive a simulation rather than
// calling Step directly, since the Poynting accumulators are only
// meaningful once averaged over a whole frame.
func (o *Domain) AdvanceFrame() {
	for m := 0; m < minorSteps; m++ {
		o.updateForcing()
		o.Step()
	}
	o.accumulatePoynting()
	o.Iframe++
}

// Run drives the simulation with successive frames until Time reaches
// duration, invoking onFrame (if non-nil) after each recorded frame so
// a caller can stream output (NetCDF, GIF, ...) without the frame
// driver knowing anything about output formats (§5, external
// collaborators).
func (o *Domain) Run(duration float64, onFrame func(o *Domain)) {
	o.Dur = duration
	for o.Time < duration {
		o.AdvanceFrame()
		if onFrame != nil {
			onFrame(o)
		}
	}
}
