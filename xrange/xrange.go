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

// Package xrange computes X-ray absorption lengths and ranges in
// elements and compounds.
package xrange

import (
	"fmt"
	"math"
	"strings"

	"github.com/epmatools/xraymac/elements"
	"github.com/epmatools/xraymac/mac"
	"github.com/spf13/cast"
	"gonum.org/v1/gonum/floats"
)

// DefaultLimit is the transmitted intensity fraction that defines the
// range: the depth at which 99% of the X-rays have been absorbed.
const DefaultLimit = 0.01

// Component is one element of a Compound.
type Component struct {
	Z              int
	WeightFraction float64
}

// Compound is a mixture of elements given by weight fractions.
type Compound []Component

// ParseCompound parses "Cu:0.8,Zn:0.2". Elements may be given by symbol,
// name or atomic number. A lone element without a fraction, such as
// "Au", is pure.
func ParseCompound(s string) (Compound, error) {
	var c Compound
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.SplitN(part, ":", 2)
		z, err := elements.AtomicNumber(strings.TrimSpace(fields[0]))
		if err != nil {
			if z, err = cast.ToIntE(strings.TrimSpace(fields[0])); err != nil {
				return nil, fmt.Errorf("xrange: element %q: %v", fields[0], err)
			}
		}
		w := 1.0
		if len(fields) == 2 {
			if w, err = cast.ToFloat64E(strings.TrimSpace(fields[1])); err != nil {
				return nil, fmt.Errorf("xrange: weight fraction of %q: %v", fields[0], err)
			}
		}
		c = append(c, Component{Z: z, WeightFraction: w})
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the compound is not empty and that the weight
// fractions are positive.
func (c Compound) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("xrange: empty compound")
	}
	for _, comp := range c {
		if comp.WeightFraction <= 0 || math.IsNaN(comp.WeightFraction) {
			return fmt.Errorf("xrange: Z=%d: invalid weight fraction %g", comp.Z, comp.WeightFraction)
		}
	}
	return nil
}

// Normalized returns a copy of c with weight fractions summing to 1.
func (c Compound) Normalized() Compound {
	n := make(Compound, len(c))
	copy(n, c)
	sum := floats.Sum(c.weights())
	for i := range n {
		n[i].WeightFraction /= sum
	}
	return n
}

func (c Compound) weights() []float64 {
	w := make([]float64, len(c))
	for i, comp := range c {
		w[i] = comp.WeightFraction
	}
	return w
}

// CompoundMAC returns the MAC of the compound, Σ wᵢ·μᵢ(E).
func CompoundMAC(m mac.Model, c Compound, energyEV float64) (float64, error) {
	mus := make([]float64, len(c))
	for i, comp := range c {
		mu, err := m.MAC(energyEV, comp.Z)
		if err != nil {
			return 0, fmt.Errorf("xrange: %w", err)
		}
		mus[i] = mu
	}
	return floats.Dot(c.weights(), mus), nil
}

// MeanDensity estimates the density in g/cm³ of a compound from the
// densities of its elements, 1/Σ(wᵢ/ρᵢ).
func MeanDensity(c Compound) (float64, error) {
	inv := make([]float64, len(c))
	for i, comp := range c {
		rho, err := elements.MassDensity(comp.Z)
		if err != nil {
			return 0, fmt.Errorf("xrange: %w", err)
		}
		inv[i] = 1 / rho
	}
	return 1 / floats.Dot(c.Normalized().weights(), inv), nil
}

// AbsorptionLength returns 1/(μ·ρ) in cm, the depth at which the
// intensity has dropped by a factor e.
func AbsorptionLength(mu, rho float64) float64 {
	return 1 / (mu * rho)
}

// Range returns the depth in nm at which the transmitted fraction of
// the intensity is limit.
func Range(mu, rho, limit float64) float64 {
	return -math.Log(limit) / (mu * rho) * 1e7
}

// RangeAt returns the range in nm of X-rays of energyEV in compound c of
// density rho.
func RangeAt(m mac.Model, c Compound, rho, energyEV, limit float64) (float64, error) {
	mu, err := CompoundMAC(m, c, energyEV)
	if err != nil {
		return 0, err
	}
	return Range(mu, rho, limit), nil
}
