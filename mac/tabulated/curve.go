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
Package tabulated provides MAC models interpolated from tabulated data:
the FFast (Chantler 2005) table, the Henke scattering factors, the Winxray
tables and the PENELOPE photoelectric cross sections.
*/
package tabulated

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ErrNoData is returned when an element has no tabulated values.
var ErrNoData = errors.New("no tabulated data")

// Curve is a MAC curve sampled at ascending energies.
type Curve struct {
	EnergiesEV []float64
	Values     []float64
}

// NewCurve returns a Curve after checking that energies and values have
// the same non-zero length and that energies are sorted.
func NewCurve(energiesEV, values []float64) (Curve, error) {
	if len(energiesEV) != len(values) {
		return Curve{}, fmt.Errorf("tabulated: %d energies but %d values", len(energiesEV), len(values))
	}
	if len(energiesEV) == 0 {
		return Curve{}, ErrNoData
	}
	if !sort.Float64sAreSorted(energiesEV) {
		return Curve{}, fmt.Errorf("tabulated: energies are not sorted")
	}
	return Curve{EnergiesEV: energiesEV, Values: values}, nil
}

// Len returns the number of points.
func (c Curve) Len() int { return len(c.EnergiesEV) }

// Range returns the first and last energies.
func (c Curve) Range() (lo, hi float64) {
	return c.EnergiesEV[0], c.EnergiesEV[len(c.EnergiesEV)-1]
}

// At linearly interpolates the curve at energyEV. Outside of the
// tabulated range the nearest end value is returned.
func (c Curve) At(energyEV float64) float64 {
	n := len(c.EnergiesEV)
	switch {
	case math.IsNaN(energyEV):
		return math.NaN()
	case energyEV <= c.EnergiesEV[0]:
		return c.Values[0]
	case energyEV >= c.EnergiesEV[n-1]:
		return c.Values[n-1]
	}
	i := floats.Within(c.EnergiesEV, energyEV)
	x0, x1 := c.EnergiesEV[i], c.EnergiesEV[i+1]
	y0, y1 := c.Values[i], c.Values[i+1]
	return y0 + (y1-y0)*(energyEV-x0)/(x1-x0)
}
