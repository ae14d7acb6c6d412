// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"math"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/Sciumo/maxwell2d/config"
	"github.com/Sciumo/maxwell2d/domain"
	"github.com/Sciumo/maxwell2d/gifout"
	"github.com/Sciumo/maxwell2d/ncout"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\nmaxwell2d -- 2D FDTD electromagnetic wave simulator\n\n")

	// configuration filenamepath
	flag.Parse()
	if len(flag.Args()) < 1 {
		chk.Panic("Please, provide a configuration filename. Ex.: scenario.json")
	}
	fnamepath := flag.Arg(0)

	cfg, err := config.Read(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	if err = cfg.Validate(); err != nil {
		chk.Panic("%v", err)
	}
	if cfg.Title != "" {
		io.Pf("%s\n", cfg.Title)
	}

	if err = run(cfg); err != nil {
		chk.Panic("%v", err)
	}
}

// run wires config into a Domain, paints its geometry, drives the
// frame loop, and streams frames to whichever output adapters the
// configuration names (§5 "external collaborators").
func run(cfg *config.Config) error {
	mode, err := domain.ModeFromPolarization(cfg.Polarization, cfg.Vacuum)
	if err != nil {
		return err
	}

	d, err := domain.New(cfg.XPixels, cfg.YPixels, float32(cfg.PixelSpacing), mode)
	if err != nil {
		return err
	}
	if d.Degenerate() {
		io.Pfyel("warning: %dx%d grid is degenerate (no interior cell); stepping is a no-op\n", cfg.XPixels, cfg.YPixels)
	}

	d.F0 = cfg.Frequency
	d.Cycles = cfg.Cycles
	d.ExAmp = cfg.XAmplitude
	d.EyAmp = cfg.YAmplitude
	d.EzAmp = cfg.ZAmplitude
	d.Ramp = cfg.SourceRamp
	for _, t := range cfg.Tones() {
		d.Freqs = append(d.Freqs, domain.Tone{Freq: t.Freq, Amp: t.Amp, PhaseDeg: t.PhaseDeg})
	}

	d.InitBorder(cfg.BorderWidth)

	for name, params := range cfg.ShapeTuples() {
		if err := d.Paint(name, params); err != nil {
			return err
		}
	}
	d.DetectBoundaries()

	applySources(d, cfg)

	var nc *ncout.Writer
	if cfg.NcFile != "" {
		frames := int(cfg.Duration/(7*d.Dt)) + 1
		nc, err = ncout.Create(cfg.NcFile, d, frames, cfg.NcSkipTimeDependentFields)
		if err != nil {
			return err
		}
	}

	var gf *gifout.Writer
	if cfg.EpsilonGifFile != "" {
		gf, err = gifout.New(cfg.PlotEMax, cfg.PlotBMax, cfg.PlotScatRatio, cfg.Mag, mode.HasVacuum())
		if err != nil {
			return err
		}
	}

	d.Run(cfg.Duration, func(d *domain.Domain) {
		io.Pf(".")
		if nc != nil {
			if err := nc.WriteFrame(d); err != nil {
				chk.Panic("%v", err)
			}
		}
		if gf != nil {
			gf.AddFrame(d)
		}
	})
	io.Pf("\n")
	reportExtremes(d)

	if nc != nil {
		if err := nc.Close(d); err != nil {
			return err
		}
	}
	if gf != nil {
		f, err := os.Create(cfg.EpsilonGifFile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := gf.WriteTo(f); err != nil {
			return err
		}
	}
	return nil
}

// reportExtremes prints the actual Ez/Bz range reached, so a user
// picking plot_E_max/plot_B_max for a future run has something to
// start from.
func reportExtremes(d *domain.Domain) {
	if d.Ez != nil {
		min, max := d.Ez.Extremes()
		io.Pf("Ez range: [%v, %v]\n", min, max)
	}
	if d.Bz != nil {
		min, max := d.Bz.Extremes()
		io.Pf("Bz range: [%v, %v]\n", min, max)
	}
}

// applySources paints the forcing-mask grids from line_oscillator,
// point_oscillator and phased_point_oscillator (§4.6, §6.1). These
// are source placements, not geometry, so they bypass the shp
// registry and write ForcingI/ForcingQ directly.
func applySources(d *domain.Domain, cfg *config.Config) {
	if strength, relWidth, ok := cfg.LineOscillator(); ok {
		row := d.BorderWidthHint() + 1
		nx := float64(d.Nx)
		for i := 0; i < d.Nx; i++ {
			arg := (float64(i) - nx/2) * 2 / (relWidth * nx)
			window := math.Exp(-math.Pow(arg, 4))
			d.ForcingI.Set(row, i, float32(strength*window))
		}
	}
	for _, p := range cfg.PointSources() {
		i, j := d.ToPixel(p.X, p.Y)
		d.ForcingI.Set(j, i, float32(p.Strength))
	}
	for _, p := range cfg.PhasedPointSources() {
		i, j := d.ToPixel(p.X, p.Y)
		phase := p.PhaseDeg * math.Pi / 180
		d.ForcingI.Set(j, i, float32(p.Strength*math.Cos(phase)))
		d.ForcingQ.Set(j, i, float32(p.Strength*math.Sin(phase)))
	}
}
