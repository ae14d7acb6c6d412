// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

// ShapeTuples names every configured (shape-name, parameter-tuple)
// pair with at least one instance present, so a caller can loop
// without hard-coding each key (§4.2, §9 "avoid per-shape ad-hoc
// tuple parsing at call sites").
func (c *Config) ShapeTuples() map[string][]float64 {
	shapes := map[string][]float64{
		"circle":             c.Circle,
		"rectangle":          c.Rectangle,
		"rotated_rectangle":  c.RotatedRectangle,
		"lens":               c.Lens,
		"dish":                c.Dish,
		"edge":               c.Edge,
		"gradient":           c.Gradient,
		"ripple":             c.Ripple,
		"wave_packet":        c.WavePacket,
		"cavity":             c.Cavity,
	}
	out := make(map[string][]float64, len(shapes))
	for name, params := range shapes {
		if len(params) > 0 {
			out[name] = params
		}
	}
	return out
}

// Tone is the flat-array analogue of domain.Tone, kept independent so
// config has no import of domain (§"Configuration" in SPEC_FULL.md:
// "the core domain package never imports it directly").
type Tone struct {
	Freq, Amp, PhaseDeg float64
}

// Tones decodes the flat Frequencies array into (freq,amp,phase)
// triples. Validate should be called first to guarantee the length is
// a multiple of 3.
func (c *Config) Tones() []Tone {
	if len(c.Frequencies) < 3 {
		return nil
	}
	n := len(c.Frequencies) / 3
	tones := make([]Tone, n)
	for k := 0; k < n; k++ {
		tones[k] = Tone{
			Freq:     c.Frequencies[3*k],
			Amp:      c.Frequencies[3*k+1],
			PhaseDeg: c.Frequencies[3*k+2],
		}
	}
	return tones
}

// PointSources decodes point_oscillator's flat (strength,x,y) triples.
func (c *Config) PointSources() []PointSource {
	n := len(c.PointOscillator) / 3
	out := make([]PointSource, n)
	for k := 0; k < n; k++ {
		out[k] = PointSource{
			Strength: c.PointOscillator[3*k],
			X:        c.PointOscillator[3*k+1],
			Y:        c.PointOscillator[3*k+2],
		}
	}
	return out
}

// PointSource is one (strength, x, y) term of point_oscillator.
type PointSource struct {
	Strength, X, Y float64
}

// PhasedPointSources decodes phased_point_oscillator's flat
// (strength,x,y,phase) quadruples.
func (c *Config) PhasedPointSources() []PhasedPointSource {
	n := len(c.PhasedPointOscillator) / 4
	out := make([]PhasedPointSource, n)
	for k := 0; k < n; k++ {
		out[k] = PhasedPointSource{
			Strength: c.PhasedPointOscillator[4*k],
			X:        c.PhasedPointOscillator[4*k+1],
			Y:        c.PhasedPointOscillator[4*k+2],
			PhaseDeg: c.PhasedPointOscillator[4*k+3],
		}
	}
	return out
}

// PhasedPointSource is one (strength, x, y, phase) term of
// phased_point_oscillator.
type PhasedPointSource struct {
	Strength, X, Y, PhaseDeg float64
}

// LineOscillator decodes the two-value line_oscillator key
// (strength, relative_width); ok is false when it was not configured.
func (c *Config) LineOscillator() (strength, relativeWidth float64, ok bool) {
	if len(c.LineOscillatorParams) < 2 {
		return 0, 0, false
	}
	return c.LineOscillatorParams[0], c.LineOscillatorParams[1], true
}
