// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Test_fourier01 verifies the multi-tone source property (P-style:
// every configured frequency shows up as its own spectral peak,
// nothing else does) by sampling multiTone.eval and taking its
// spatial... here temporal... FFT, the way a scope would check an
// arbitrary-waveform generator's output against its programmed tones.
func Test_fourier01(tst *testing.T) {

	chk.PrintTitle("fourier01: multi-tone spectral peaks")

	const n = 1024
	const dt = 1.0 / 64.0 // sample rate 64, Nyquist 32

	tones := []Tone{
		{Freq: 4, Amp: 1, PhaseDeg: 0},
		{Freq: 9, Amp: 2, PhaseDeg: 45},
	}
	m := multiTone{tones: tones}

	samples := make([]float64, n)
	for k := 0; k < n; k++ {
		i, _ := m.eval(float64(k) * dt)
		samples[k] = i
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, samples)

	freqRes := 1.0 / (float64(n) * dt)
	magAt := func(freq float64) float64 {
		bin := int(freq/freqRes + 0.5)
		return cmplxAbs(coeffs[bin])
	}

	mag4 := magAt(4)
	mag9 := magAt(9)
	mag7 := magAt(7) // no configured tone here; should be near zero

	if mag4 <= mag7*10 {
		tst.Errorf("expected a clear spectral peak at f=4, got mag4=%v mag7=%v", mag4, mag7)
	}
	if mag9 <= mag7*10 {
		tst.Errorf("expected a clear spectral peak at f=9, got mag9=%v mag7=%v", mag9, mag7)
	}
	// the f=9 tone has twice the amplitude of f=4, so its peak should
	// be the larger of the two.
	if mag9 <= mag4 {
		tst.Errorf("expected f=9 peak (amp 2) to exceed f=4 peak (amp 1): mag4=%v mag9=%v", mag4, mag9)
	}
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
