// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

// Step advances every active field component by one timestep (§4.5):
// E from the previous B, then B from the newly-advanced E, matching
// gofem's single-mutator-per-timestep discipline (the stepper never
// rewrites ε, σ or the coefficients it was handed). Stepping before
// buildCoeffs has run is defined: it builds on demand, exactly once.
//
// Nx<3 or Ny<3 degenerates to a no-op on the interior loops (§4.5
// failure mode) — time still advances, since the caller (frame
// driver) is the one that reports the degenerate condition.
func (o *Domain) Step() {
	o.buildCoeffs()

	if o.Mode.HasEXY() {
		o.stepExEy()
	}
	if o.Mode.HasEZ() {
		o.stepEz()
		o.stepBxBy()
	}
	if o.Mode.HasEXY() {
		o.stepBz()
	}

	if o.Mode.HasVacuum() {
		if o.Mode.HasEXY() {
			o.stepExEyVacuum()
		}
		if o.Mode.HasEZ() {
			o.stepEzVacuum()
			o.stepBxByVacuum()
		}
		if o.Mode.HasEXY() {
			o.stepBzVacuum()
		}
	}

	o.Time += o.Dt
}

// stepExEy advances the in-plane E components from the previous Bz.
func (o *Domain) stepExEy() {
	dt := o.Dt
	for j := 0; j < o.Ny-1; j++ {
		for i := 0; i < o.Nx-1; i++ {
			damp := o.Edamping.At(j, i)
			prefix := o.Eprefix.At(j, i)
			fi := o.ForcingI.At(j, i)
			fq := o.ForcingQ.At(j, i)

			ex := damp*o.Ex.At(j, i) +
				float32(dt)*(fi*float32(o.ExForcingI)-fq*float32(o.ExForcingQ)) +
				prefix*(o.Bz.At(j+1, i+1)-o.Bz.At(j, i+1))
			o.Ex.Set(j, i, ex)

			ey := damp*o.Ey.At(j, i) +
				float32(dt)*(fi*float32(o.EyForcingI)-fq*float32(o.EyForcingQ)) +
				prefix*(o.Bz.At(j+1, i)-o.Bz.At(j+1, i+1))
			o.Ey.Set(j, i, ey)
		}
	}
}

// stepEz advances the out-of-plane E component from the previous Bx,By.
func (o *Domain) stepEz() {
	dt := o.Dt
	for j := 1; j < o.Ny-1; j++ {
		for i := 1; i < o.Nx-1; i++ {
			damp := o.Edamping.At(j, i)
			prefix := o.Eprefix.At(j, i)
			fi := o.ForcingI.At(j, i)
			fq := o.ForcingQ.At(j, i)

			ez := damp*o.Ez.At(j, i) +
				float32(dt)*(fi*float32(o.EzForcingI)-fq*float32(o.EzForcingQ)) +
				prefix*(o.By.At(j-1, i)-o.By.At(j-1, i-1)-o.Bx.At(j, i-1)+o.Bx.At(j-1, i-1))
			o.Ez.Set(j, i, ez)
		}
	}
}

// stepBxBy advances Bx,By from the newly-advanced Ez.
func (o *Domain) stepBxBy() {
	dtDx := float32(0.5 * o.Dt / float64(o.Dx))
	for j := 0; j < o.Ny-1; j++ {
		for i := 0; i < o.Nx-1; i++ {
			damp := o.Bdamping.At(j, i)
			bx := damp*o.Bx.At(j, i) - dtDx*(o.Ez.At(j+1, i+1)-o.Ez.At(j, i+1))
			o.Bx.Set(j, i, bx)
			by := damp*o.By.At(j, i) - dtDx*(o.Ez.At(j+1, i)-o.Ez.At(j+1, i+1))
			o.By.Set(j, i, by)
		}
	}
}

// stepBz advances Bz from the newly-advanced Ex,Ey.
func (o *Domain) stepBz() {
	dtDx := float32(0.5 * o.Dt / float64(o.Dx))
	for j := 1; j < o.Ny-1; j++ {
		for i := 1; i < o.Nx-1; i++ {
			damp := o.Bdamping.At(j, i)
			bz := damp*o.Bz.At(j, i) -
				dtDx*(o.Ey.At(j-1, i)-o.Ey.At(j-1, i-1)-o.Ex.At(j, i-1)+o.Ex.At(j-1, i-1))
			o.Bz.Set(j, i, bz)
		}
	}
}

// vacuum twin: identical index patterns, Eprefix_vacuum is a scalar
// since ε≡1 everywhere, and Bdamping (not Edamping) damps the vacuum
// E components too (invariant I7).

func (o *Domain) stepExEyVacuum() {
	dt := o.Dt
	prefix := o.EprefixVacuum
	for j := 0; j < o.Ny-1; j++ {
		for i := 0; i < o.Nx-1; i++ {
			damp := o.Bdamping.At(j, i)
			fi := o.ForcingI.At(j, i)
			fq := o.ForcingQ.At(j, i)

			ex := damp*o.ExVac.At(j, i) +
				float32(dt)*(fi*float32(o.ExForcingI)-fq*float32(o.ExForcingQ)) +
				prefix*(o.BzVac.At(j+1, i+1)-o.BzVac.At(j, i+1))
			o.ExVac.Set(j, i, ex)

			ey := damp*o.EyVac.At(j, i) +
				float32(dt)*(fi*float32(o.EyForcingI)-fq*float32(o.EyForcingQ)) +
				prefix*(o.BzVac.At(j+1, i)-o.BzVac.At(j+1, i+1))
			o.EyVac.Set(j, i, ey)
		}
	}
}

func (o *Domain) stepEzVacuum() {
	dt := o.Dt
	prefix := o.EprefixVacuum
	for j := 1; j < o.Ny-1; j++ {
		for i := 1; i < o.Nx-1; i++ {
			damp := o.Bdamping.At(j, i)
			fi := o.ForcingI.At(j, i)
			fq := o.ForcingQ.At(j, i)

			ez := damp*o.EzVac.At(j, i) +
				float32(dt)*(fi*float32(o.EzForcingI)-fq*float32(o.EzForcingQ)) +
				prefix*(o.ByVac.At(j-1, i)-o.ByVac.At(j-1, i-1)-o.BxVac.At(j, i-1)+o.BxVac.At(j-1, i-1))
			o.EzVac.Set(j, i, ez)
		}
	}
}

func (o *Domain) stepBxByVacuum() {
	dtDx := float32(0.5 * o.Dt / float64(o.Dx))
	for j := 0; j < o.Ny-1; j++ {
		for i := 0; i < o.Nx-1; i++ {
			damp := o.Bdamping.At(j, i)
			bx := damp*o.BxVac.At(j, i) - dtDx*(o.EzVac.At(j+1, i+1)-o.EzVac.At(j, i+1))
			o.BxVac.Set(j, i, bx)
			by := damp*o.ByVac.At(j, i) - dtDx*(o.EzVac.At(j+1, i)-o.EzVac.At(j+1, i+1))
			o.ByVac.Set(j, i, by)
		}
	}
}

func (o *Domain) stepBzVacuum() {
	dtDx := float32(0.5 * o.Dt / float64(o.Dx))
	for j := 1; j < o.Ny-1; j++ {
		for i := 1; i < o.Nx-1; i++ {
			damp := o.Bdamping.At(j, i)
			bz := damp*o.BzVac.At(j, i) -
				dtDx*(o.EyVac.At(j-1, i)-o.EyVac.At(j-1, i-1)-o.ExVac.At(j, i-1)+o.ExVac.At(j-1, i-1))
			o.BzVac.Set(j, i, bz)
		}
	}
}
