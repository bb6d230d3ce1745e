/*
Copyright © 2021 the xraymac authors.
This file is part of xraymac.

xraymac is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

xraymac is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with xraymac.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package casino implements the Zaluzec MAC fits used by the CASINO
// Monte Carlo program for the absorbers of common EDS detector windows
// and coatings: H, Be, C, O, Al, Si and Au.
package casino

import (
	"errors"
	"fmt"
	"math"

	"github.com/epmatools/xraymac/mac"
	"github.com/epmatools/xraymac/mac/heinrich"
)

// ErrNotFitted is returned for absorbers without a Zaluzec fit.
var ErrNotFitted = errors.New("no Zaluzec fit for absorber")

// Range of the fitted energy bands in eV. Outside of it, absorbers other
// than hydrogen are delegated to the fallback model.
const (
	MinEnergy = 185.0
	MaxEnergy = 1487.0
)

// hc in eV·Å.
const hc = 12398.1

// Zaluzec is a banded power-law MAC model, c·λⁿ with λ in Å.
type Zaluzec struct {
	// Fallback is used outside of the fitted energy range.
	Fallback mac.Model
}

// New returns a Zaluzec model falling back to Heinrich 1987.
func New() *Zaluzec {
	return &Zaluzec{Fallback: heinrich.New()}
}

// band is c·λⁿ above a lower energy bound.
type band struct {
	above, c, n float64
}

// Bands in decreasing energy order. The last band of each absorber
// extends down to zero.
var bands = map[int][]band{
	1: {{679, 0.001472, 3.359}, {395, 0.001816, 3.285}, {0, 0.002138, 3.231}},
	4: {{679, 0.3102, 3.001}, {285, 0.5060, 2.831}, {0, 2.2480, 2.419}},
	6: {{705, 1.966, 2.788}, {285, 4.1290, 2.529}, {0, 0.2572, 2.404}},
	8: {{532, 6.9980, 2.573}, {0, 0.4810, 2.479}},
}

// Power-law bands above a low-energy polynomial in λ.
var polyBands = map[int]struct {
	band
	poly []float64 // coefficients of λ⁰, λ¹, ...
}{
	13: {band{556, 1.2860, 2.712}, []float64{1801, -364.4, 25.79, -4.815e-2, -7.059e-4}},
	14: {band{637, 1.759, 2.706}, []float64{2278, -527, 39.83, -0.2407}},
	79: {band{776, 41.17, 1.906}, []float64{29660, -4466, 302, -8.218, 9.878e-2, -4.411e-4}},
}

// MAC implements mac.Model.
func (m *Zaluzec) MAC(energyEV float64, z int) (float64, error) {
	if energyEV <= 0 {
		return mac.Opaque, nil
	}
	if z != 1 && (energyEV < MinEnergy || energyEV > MaxEnergy) {
		if m.Fallback == nil {
			return 0, fmt.Errorf("casino: Z=%d at %g eV is outside the fitted range and there is no fallback", z, energyEV)
		}
		return m.Fallback.MAC(energyEV, z)
	}
	l := hc / energyEV
	if z == 1 && energyEV > MaxEnergy {
		return hydrogenHighEnergy(energyEV / 1000), nil
	}
	if bs, ok := bands[z]; ok {
		for _, b := range bs {
			if energyEV > b.above {
				return nonNegative(b.c * math.Pow(l, b.n)), nil
			}
		}
	}
	if pb, ok := polyBands[z]; ok {
		if energyEV > pb.above {
			return pb.c * math.Pow(l, pb.n), nil
		}
		var v float64
		for i := len(pb.poly) - 1; i >= 0; i-- {
			v = v*l + pb.poly[i]
		}
		return nonNegative(v), nil
	}
	return 0, fmt.Errorf("casino: Z=%d: %w", z, ErrNotFitted)
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// hydrogenHighEnergy returns the MAC of hydrogen above 1 keV.
func hydrogenHighEnergy(keV float64) float64 {
	l := 12.3981 / keV
	switch {
	case keV < 1:
		return 0
	case keV <= 2.0:
		return 3.0353 * math.Pow(l, 0.01460)
	case keV <= 3.5:
		return 3.5 * math.Pow(l, 0.05890)
	case keV <= 4.0:
		return 3.5 * math.Pow(l, 0.07434)
	case keV <= 6.0:
		return 2.937 * math.Pow(l, 0.27795)
	case keV <= 9.2:
		return 0.627 * math.Pow(l, 0.4231)
	case keV <= 40.0:
		return 0.089 * math.Pow(l, 0.44767)
	}
	return 0
}
