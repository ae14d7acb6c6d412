// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config implements the keyed configuration external
// collaborator (§6.1): a JSON-tagged struct plus a loader and
// defaulting pass, the same shape gofem's inp.Data/inp.ReadSim give
// to a `.sim` file. The core domain package never imports this
// package — main wires config.Config into domain.Domain, the way
// fem.Main wires inp.Simulation into fem.Domain.
package config

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
)

// Config is the full set of keys a run file may supply (§6.1). Every
// field is optional; Defaults fills in the zero values of the grid,
// source, duration and magnification keys.
type Config struct {
	XPixels      int     `json:"x_pixels"`
	YPixels      int     `json:"y_pixels"`
	PixelSpacing float64 `json:"pixel_spacing"`
	BorderWidth  int     `json:"border_width"`
	Polarization string  `json:"polarization"`
	Vacuum       bool    `json:"vacuum"`

	Frequency   float64   `json:"frequency"`
	Frequencies []float64 `json:"frequencies"` // flat (f,a,φ) triples

	XAmplitude float64 `json:"x_amplitude"`
	YAmplitude float64 `json:"y_amplitude"`
	ZAmplitude float64 `json:"z_amplitude"`
	Cycles     float64 `json:"cycles"`
	Duration   float64 `json:"duration"`

	Mag            int     `json:"mag"`
	PlotEMax       float64 `json:"plot_E_max"`
	PlotBMax       float64 `json:"plot_B_max"`
	PlotScatRatio  float64 `json:"plot_scat_ratio"`

	LineOscillatorParams        []float64 `json:"line_oscillator"`
	PointOscillator             []float64 `json:"point_oscillator"`
	PhasedPointOscillator       []float64 `json:"phased_point_oscillator"`

	Circle            []float64 `json:"circle"`
	Rectangle         []float64 `json:"rectangle"`
	RotatedRectangle  []float64 `json:"rotated_rectangle"`
	Lens              []float64 `json:"lens"`
	Dish              []float64 `json:"dish"`
	Edge              []float64 `json:"edge"`
	Gradient          []float64 `json:"gradient"`
	Ripple            []float64 `json:"ripple"`
	WavePacket        []float64 `json:"wave_packet"`
	Cavity            []float64 `json:"cavity"`

	NcFile                    string `json:"nc_file"`
	EpsilonGifFile            string `json:"epsilon_gif_file"`
	NcSkipTimeDependentFields bool   `json:"nc_skip_time_dependent_fields"`
	Title                     string `json:"title"`

	// SourceRamp enables the optional raised-cosine startup window
	// (original_source supplement; off by default, §"Supplemented
	// features" in SPEC_FULL.md).
	SourceRamp bool `json:"source_ramp"`
}

// Read loads a Config from a JSON file and applies Defaults.
func Read(path string) (cfg *Config, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("config: cannot open %q: %v", path, err)
	}
	defer f.Close()

	cfg = new(Config)
	dec := json.NewDecoder(f)
	if err = dec.Decode(cfg); err != nil {
		return nil, chk.Err("config: invalid JSON in %q: %v", path, err)
	}
	cfg.Defaults()
	return cfg, nil
}

// Defaults fills in the grid, source, duration and magnification
// fields left at their zero value with the default named in §6.1.
// plot_E_max, plot_B_max and plot_scat_ratio are left as given (zero
// when absent), as are the shape, oscillator and output-path keys. It
// is idempotent and safe to call on an already-defaulted Config.
func (c *Config) Defaults() {
	if c.XPixels == 0 {
		c.XPixels = 64
	}
	if c.YPixels == 0 {
		c.YPixels = 64
	}
	if c.PixelSpacing == 0 {
		c.PixelSpacing = 1.0
	}
	if c.BorderWidth == 0 {
		c.BorderWidth = 6
	}
	if c.Polarization == "" {
		c.Polarization = "z"
	}
	if c.Frequency == 0 {
		c.Frequency = 0.1 // ·c, c==1 in the simulator's natural units
	}
	if c.ZAmplitude == 0 && c.XAmplitude == 0 && c.YAmplitude == 0 {
		c.ZAmplitude = 1
	}
	if c.Cycles == 0 {
		c.Cycles = 10
	}
	if c.Mag == 0 {
		c.Mag = 1
	}
	if c.Mag > 10 {
		c.Mag = 10
	}
	if c.Duration == 0 {
		// 200 frames of the 7-minor-step frame, at the stability-bound Δt.
		dt := 0.8 * c.PixelSpacing
		c.Duration = 200 * 7 * dt
	}
	// a configured multi-tone list sets the primary frequency to its
	// first entry, matching original_source's start-up wiring.
	if len(c.Frequencies) >= 3 {
		c.Frequency = c.Frequencies[0]
	}
}

// Validate reports a ConfigInvalid-style error for the checks §7
// assigns to configuration: unknown polarization, negative
// dimensions, and source tuples (frequencies, point_oscillator,
// phased_point_oscillator) whose length isn't a multiple of their
// per-instance arity. Shape tuples are not checked here; the painter
// drops a short trailing shape group.
func (c *Config) Validate() error {
	switch c.Polarization {
	case "z", "xy", "xyz":
	default:
		return chk.Err("config: unknown polarization %q", c.Polarization)
	}
	if c.XPixels < 0 || c.YPixels < 0 {
		return chk.Err("config: negative grid dimensions x=%d y=%d", c.XPixels, c.YPixels)
	}
	if len(c.Frequencies)%3 != 0 {
		return chk.Err("config: frequencies must be a flat list of (freq,amp,phase) triples, got %d values", len(c.Frequencies))
	}
	if len(c.PointOscillator)%3 != 0 {
		return chk.Err("config: point_oscillator must be (strength,x,y) triples, got %d values", len(c.PointOscillator))
	}
	if len(c.PhasedPointOscillator)%4 != 0 {
		return chk.Err("config: phased_point_oscillator must be (strength,x,y,phase) quadruples, got %d values", len(c.PhasedPointOscillator))
	}
	return nil
}
