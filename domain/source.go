// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import "math"

// oscillator computes the dimensionless in-phase/quadrature pair the
// frame driver multiplies by each component's amplitude. It plays the
// role gofem's mdl/conduct.Model interface plays for conductivity:
// one small interface, several interchangeable implementations picked
// by what the configuration supplies (§9 "shape library" idiom,
// applied here to sources instead of shapes).
type oscillator interface {
	eval(t float64) (i, q float64)
}

// singleTone is the default source: a single sinusoid at f0.
type singleTone struct {
	f0 float64
}

func (s singleTone) eval(t float64) (i, q float64) {
	phase := 2 * math.Pi * s.f0 * t
	return math.Sin(phase), math.Cos(phase)
}

// multiTone sums a configured list of (frequency, amplitude, phase)
// triples (the "frequencies" configuration key, §6.1).
type multiTone struct {
	tones []Tone
}

func (m multiTone) eval(t float64) (i, q float64) {
	for _, tone := range m.tones {
		phase := 2*math.Pi*(tone.Freq*t+tone.PhaseDeg/360.0)
		i += tone.Amp * math.Sin(phase)
		q += tone.Amp * math.Cos(phase)
	}
	return
}

// oscillatorFor returns the oscillator implied by the Domain's
// configuration: the multi-tone list when present, otherwise the
// single f0 tone (§4.6).
func (o *Domain) oscillatorFor() oscillator {
	if len(o.Freqs) > 0 {
		return multiTone{tones: o.Freqs}
	}
	return singleTone{f0: o.F0}
}

// rampFactor applies the optional raised-cosine startup window
// (original_source supplement, SPEC_FULL.md "Supplemented features").
// Disabled (Ramp==false) by default so scenario 1's instantaneous
// switch-on matches spec.md literally.
func (o *Domain) rampFactor(t float64) float64 {
	if !o.Ramp {
		return 1
	}
	if o.F0 <= 0 {
		return 1
	}
	period := 1.0 / o.F0
	if t >= period {
		return 1
	}
	return 0.5 * (1 - math.Cos(math.Pi*t/period))
}

// updateForcing sets the six scalar forcing strengths (in-phase and
// quadrature for each of Ex, Ey, Ez) for the next timestep (§4.6).
// Source shutoff (property P4): once time·f0 ≥ cycles, all six
// forcings are exactly zero.
func (o *Domain) updateForcing() {
	if o.Time*o.F0 >= o.Cycles {
		o.ExForcingI, o.ExForcingQ = 0, 0
		o.EyForcingI, o.EyForcingQ = 0, 0
		o.EzForcingI, o.EzForcingQ = 0, 0
		return
	}
	osc := o.oscillatorFor()
	i, q := osc.eval(o.Time)
	ramp := o.rampFactor(o.Time)
	i *= ramp
	q *= ramp
	o.ExForcingI, o.ExForcingQ = o.ExAmp*i, o.ExAmp*q
	o.EyForcingI, o.EyForcingQ = o.EyAmp*i, o.EyAmp*q
	o.EzForcingI, o.EzForcingQ = o.EzAmp*i, o.EzAmp*q
}
