// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import "github.com/Sciumo/maxwell2d/field"

// sampler returns a field's value at (j,i); passing a grid's own At
// method or a closure computing (total−vacuum) lets the same
// neighbor-sum helpers below serve both the total-field and
// scattered-field accumulation without duplicating the formulas.
type sampler func(j, i int) float32

// diffSampler returns a sampler reading (total−vacuum) at each cell,
// the literal (E−E_vacuum)·(B−B_vacuum) substitution §4.6 and
// mw_frame.c use for the scattered Poynting term — a product of field
// differences, not a difference of two already-computed S values.
func diffSampler(total, vac *field.Grid) sampler {
	return func(j, i int) float32 { return total.At(j, i) - vac.At(j, i) }
}

// bzAvgForEy returns the 2-sample Bz average the Sx = Ey·Bz term uses
// (§4.6 "the in-plane contribution ... uses Ex, Ey, and Bz"),
// reproducing mw_frame.c's mixing of By in for the second corner
// whenever EZ mode is active (Open Question (a)): both fields exist
// only when both polarizations are active, which is exactly when this
// line can run at all without a nil dereference in the reference's
// always-allocated arrays. The quoted fragment
// `domain->Bz[j+1][i] + domain->By[j+1][i+1]` is preserved verbatim
// rather than "corrected", since fixing it would make this simulator
// diverge numerically from the reference it must match.
func bzAvgForEy(bz, by sampler, hasEZ bool, j, i int) float32 {
	second := bz(j+1, i+1)
	if hasEZ {
		second = by(j+1, i+1)
	}
	return 0.5 * (bz(j+1, i) + second)
}

// bzAvgForEx returns the 2-sample Bz average the Sy = −Ex·Bz term uses.
func bzAvgForEx(bz sampler, j, i int) float32 {
	return 0.5 * (bz(j, i+1) + bz(j+1, i+1))
}

// byAvgForEz returns the 2-sample By average Sx = −½Ez·(By left
// neighbors) uses (§4.6), the same (j-1,i-1),(j-1,i) corner pair
// stepEz's curl term reads.
func byAvgForEz(by sampler, j, i int) float32 {
	return 0.5 * (by(j-1, i-1) + by(j-1, i))
}

// bxAvgForEz returns the 2-sample Bx average Sy = +½Ez·(Bx left
// neighbors) uses (§4.6), the same (j-1,i-1),(j,i-1) corner pair
// stepEz's curl term reads.
func bxAvgForEz(bx sampler, j, i int) float32 {
	return 0.5 * (bx(j-1, i-1) + bx(j, i-1))
}

// accumulatePoynting adds this frame's instantaneous Poynting vector
// into the frame-summed accumulators (§4.7). Readout divides by
// Iframe; the accumulators themselves only ever grow between calls to
// ResetPoynting.
//
// The EXY and EZ contributions run over their own index ranges rather
// than a shared one: the EXY term reads corners up to (j+1,i+1), valid
// over the full [0,Ny-1)×[0,Nx-1) Yee range stepExEy also uses;
// the EZ term reads corners back to (j-1,i-1), valid only over the
// interior [1,Ny-1)×[1,Nx-1) stepEz uses.
func (o *Domain) accumulatePoynting() {
	if o.Mode.HasEXY() {
		nx1, ny1 := o.Nx-1, o.Ny-1
		hasEZ := o.Mode.HasEZ()
		for j := 0; j < ny1; j++ {
			for i := 0; i < nx1; i++ {
				sx := o.Ey.At(j, i) * bzAvgForEy(o.Bz.At, o.By.At, hasEZ, j, i)
				sy := -o.Ex.At(j, i) * bzAvgForEx(o.Bz.At, j, i)
				o.PoyntingX.Add(j, i, sx)
				o.PoyntingY.Add(j, i, sy)

				if o.Mode.HasVacuum() {
					eyDiff := o.Ey.At(j, i) - o.EyVac.At(j, i)
					exDiff := o.Ex.At(j, i) - o.ExVac.At(j, i)
					bzDiff := diffSampler(o.Bz, o.BzVac)
					byDiff := diffSampler(o.By, o.ByVac)
					sxs := eyDiff * bzAvgForEy(bzDiff, byDiff, hasEZ, j, i)
					sys := -exDiff * bzAvgForEx(bzDiff, j, i)
					o.PoyntingXScat.Add(j, i, sxs)
					o.PoyntingYScat.Add(j, i, sys)
				}
			}
		}
	}

	if o.Mode.HasEZ() {
		for j := 1; j < o.Ny-1; j++ {
			for i := 1; i < o.Nx-1; i++ {
				sx := -o.Ez.At(j, i) * byAvgForEz(o.By.At, j, i)
				sy := o.Ez.At(j, i) * bxAvgForEz(o.Bx.At, j, i)
				o.PoyntingX.Add(j, i, sx)
				o.PoyntingY.Add(j, i, sy)

				if o.Mode.HasVacuum() {
					ezDiff := o.Ez.At(j, i) - o.EzVac.At(j, i)
					byDiff := diffSampler(o.By, o.ByVac)
					bxDiff := diffSampler(o.Bx, o.BxVac)
					sxs := -ezDiff * byAvgForEz(byDiff, j, i)
					sys := ezDiff * bxAvgForEz(bxDiff, j, i)
					o.PoyntingXScat.Add(j, i, sxs)
					o.PoyntingYScat.Add(j, i, sys)
				}
			}
		}
	}
}

// ResetPoynting zeroes the Poynting accumulators and the frame counter
// (used between successive recordings of a long run).
func (o *Domain) ResetPoynting() {
	o.PoyntingX.Reset(0)
	o.PoyntingY.Reset(0)
	if o.Mode.HasVacuum() {
		o.PoyntingXScat.Reset(0)
		o.PoyntingYScat.Reset(0)
	}
	o.Iframe = 0
}

// PoyntingAt returns the time-averaged Poynting vector at (j,i): the
// accumulator divided by the number of frames folded into it so far.
// Iframe==0 reads back zero rather than dividing by zero.
func (o *Domain) PoyntingAt(j, i int) (sx, sy float32) {
	if o.Iframe == 0 {
		return 0, 0
	}
	n := float32(o.Iframe)
	return o.PoyntingX.At(j, i) / n, o.PoyntingY.At(j, i) / n
}

// PoyntingScatAt is the scattered-field analogue of PoyntingAt,
// valid only when Mode.HasVacuum().
func (o *Domain) PoyntingScatAt(j, i int) (sx, sy float32) {
	if o.Iframe == 0 || !o.Mode.HasVacuum() {
		return 0, 0
	}
	n := float32(o.Iframe)
	return o.PoyntingXScat.At(j, i) / n, o.PoyntingYScat.At(j, i) / n
}
