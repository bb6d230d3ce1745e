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

/*
Package heinrich implements the Heinrich (1987) parameterization of X-ray
mass absorption coefficients.

The energy axis of each absorber is split into 11 regions by its
absorption edges. Within a region the MAC follows

	MAC = C·Z⁴/A · (12397/E)ⁿ · (1 − exp((b − E)/a))

(Model1), where C, n, a and b are polynomials in Z fitted per region.
Below the N1 edge a linear ramp to a Z-dependent cutoff energy is used
instead (Model2).

Reference: K. F. J. Heinrich, "Mass absorption coefficients for electron
probe microanalysis", Proc. 11th ICXOM, 1987, pp. 67-119.
*/
package heinrich

import (
	"fmt"
	"math"

	"github.com/epmatools/xraymac/edges"
	"github.com/epmatools/xraymac/elements"
	"github.com/epmatools/xraymac/mac"
)

// LowEnergyLimit is the energy in eV at or below which the
// parameterization is flagged as unreliable.
const LowEnergyLimit = 180.0

// Model evaluates Heinrich 1987 MACs. It holds no mutable state and is
// safe for concurrent use if its Sink is.
type Model struct {
	Edges  mac.EdgeTable
	Masses mac.MassTable

	// Sink, if not nil, receives the warnings of each MAC call.
	Sink mac.Sink
}

// New returns a Model using the DTSA edge energies and the standard
// atomic masses.
func New() *Model {
	return &Model{Edges: edges.DTSA(), Masses: elements.Table{}}
}

// Result holds a MAC value with the region it was computed in and the
// diagnostics raised along the way.
type Result struct {
	MAC float64

	// Region is 0 when the energy was not classified.
	Region   Region
	Warnings []mac.Warning
}

// MAC implements mac.Model.
func (m *Model) MAC(energyEV float64, z int) (float64, error) {
	r, err := m.Evaluate(energyEV, z)
	mac.Emit(m.Sink, r.Warnings)
	return r.MAC, err
}

// Evaluate computes the MAC of element z at energyEV. Energies at or below
// zero, and negative model results, give mac.Opaque.
func (m *Model) Evaluate(energyEV float64, z int) (Result, error) {
	if energyEV <= 0 {
		return Result{MAC: mac.Opaque}, nil
	}
	var res Result
	if energyEV <= LowEnergyLimit {
		res.Warnings = append(res.Warnings, mac.Warning{Kind: mac.LowEnergy, Z: z, EnergyEV: energyEV, ReferenceEV: LowEnergyLimit})
	}

	region, ws, err := Classify(m.Edges, z, energyEV)
	res.Warnings = append(res.Warnings, ws...)
	if err != nil {
		return res, err
	}
	res.Region = region

	if region >= 10 {
		res.Warnings = append(res.Warnings, mac.Warning{Kind: mac.BelowM5, Z: z, EnergyEV: energyEV})
	}
	if region == 9 && z < 70 {
		res.Warnings = append(res.Warnings, mac.Warning{Kind: mac.BetweenM4M5, Z: z, EnergyEV: energyEV})
	}

	c := C(region, z)
	n := N(region, z)
	mass, err := m.Masses.AtomicMass(z)
	if err != nil {
		return res, fmt.Errorf("heinrich: %w", err)
	}

	if region == 11 {
		cutoff := Cutoff(z)
		if limit := cutoff * 1.1; energyEV <= limit {
			res.Warnings = append(res.Warnings, mac.Warning{Kind: mac.LowEnergy, Z: z, EnergyEV: energyEV, ReferenceEV: limit})
		}
		n1, err := m.Edges.EdgeEnergy(z, edges.N1)
		if err != nil {
			return res, fmt.Errorf("heinrich: %w", err)
		}
		res.MAC = clamp(Model2(z, mass, energyEV, c, n, cutoff, n1))
		return res, nil
	}

	var m4 float64
	if region >= 6 && region <= 9 {
		if m4, err = m.Edges.EdgeEnergy(z, edges.M4); err != nil {
			return res, fmt.Errorf("heinrich: %w", err)
		}
	}
	b := B(region, z, m4)
	a := A(region, z)
	res.MAC = clamp(Model1(z, mass, energyEV, c, n, b, a))
	return res, nil
}

func clamp(v float64) float64 {
	if v < 0 {
		return mac.Opaque
	}
	return v
}

// Model1 is the absorption model of regions 1 to 10:
// C·Z⁴/A · (12397/E)ⁿ · (1 − exp((b − E)/a)).
func Model1(z int, atomicMass, energyEV, c, n, b, a float64) float64 {
	f1 := c * math.Pow(float64(z), 4) / atomicMass
	f2 := math.Pow(12397.0/energyEV, n)
	f3 := 1.0 - math.Exp((-energyEV+b)/a)
	return f1 * f2 * f3
}

// Model2 is the absorption model below the N1 edge (region 11):
// 1.02 · (12397/E)ⁿ · C·Z⁴/A · (E − cutoff)/(N1 − cutoff).
//
// Equation (4) of the paper prints the leading factor as 1.02·C, which
// would apply C twice; the factor is 1.02.
func Model2(z int, atomicMass, energyEV, c, n, cutoffEV, n1EdgeEV float64) float64 {
	f1 := 1.02
	f2 := math.Pow(12397.0/energyEV, n)
	f3 := c * math.Pow(float64(z), 4) / atomicMass
	f4 := (energyEV - cutoffEV) / (n1EdgeEV - cutoffEV)
	return f1 * f2 * f3 * f4
}

// Cutoff returns the energy in eV at which Model2 reaches zero.
func Cutoff(z int) float64 {
	zf := float64(z)
	return (0.252*zf-31.1812)*zf + 1042.0
}
