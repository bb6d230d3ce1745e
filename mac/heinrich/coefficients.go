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

package heinrich

import (
	"fmt"
	"math"
)

// Coefficient returns the sum of c[i]·z^i, accumulated in order.
func Coefficient(z int, c ...float64) float64 {
	var sum float64
	for i, ci := range c {
		sum += ci * math.Pow(float64(z), float64(i))
	}
	return sum
}

func invalid(r Region) string { return fmt.Sprintf("heinrich: invalid %v", r) }

// C returns the C coefficient of region r.
func C(r Region, z int) float64 {
	switch r {
	case 1:
		if z < 6 {
			return Coefficient(z, -2.87536e-4, 1.808599e-3)
		}
		return Coefficient(z, 5.253e-3, 1.33257e-3, -7.5937e-5, 1.69357e-6, -1.3975e-8)
	case 2:
		return Coefficient(z, -9.24e-5, 1.41478e-4, -5.24999e-6, 9.85296e-8, -9.07306e-10, 3.19254e-12)
	case 3:
		return C(2, z) * 0.858
	case 4:
		zf := float64(z)
		return C(2, z) * (0.8933 + -zf*8.29e-3 + float64(z*z)*6.38e-5)
	case 5:
		if z < 30 {
			return Coefficient(z, 1.889757e-2, -1.8517159e-3, 6.9602789e-5, -1.1641145e-6, 7.2773258e-9)
		}
		return Coefficient(z, 3.0039e-3, -1.73663566e-4, 4.0424792e-6, -4.0585911e-8, 1.497763e-10)
	case 6:
		return c1(z) * c2(z) * c3(z)
	case 7:
		return c1(z) * c2(z) * c4(z)
	case 8:
		return c1(z) * c2(z) * 0.95
	case 9:
		return c1(z) * c2(z) * c5(z)
	case 10, 11:
		return Coefficient(z, 4.3156e-3, -1.4653e-4, 1.707073e-6, -6.69827e-9) * 1.08
	}
	panic(invalid(r))
}

// Sub-polynomials shared by the M regions 6-9.
func c1(z int) float64 { return Coefficient(z, 7.7708e-5, -7.83544e-6, 2.209365e-7, -1.29086e-9) }
func c2(z int) float64 { return Coefficient(z, 1.406, 0.0162, -6.561e-4, 4.865e-6) }
func c3(z int) float64 { return Coefficient(z, 0.584, 0.01955, -1.285e-4) }
func c4(z int) float64 { return Coefficient(z, 1.082, 1.366e-3) }
func c5(z int) float64 { return Coefficient(z, 1.6442, -0.0480, 4.0664e-4) }

// N returns the exponent n of region r.
func N(r Region, z int) float64 {
	switch r {
	case 1:
		if z < 6 {
			return Coefficient(z, 3.34745, 0.02652873, -0.01273815)
		}
		return Coefficient(z, 3.112, -0.0121)
	case 2, 3, 4:
		return Coefficient(z, 2.7575, 1.889e-3, -4.982e-5)
	case 5:
		return Coefficient(z, 0.5385, 0.084597, -1.08246e-3, 4.4509e-6)
	case 6, 7, 8, 9:
		return Coefficient(z, 3.0, -0.004)
	case 10, 11:
		return Coefficient(z, 0.3736, 0.02401)
	}
	panic(invalid(r))
}

// A returns the coefficient a of region r.
func A(r Region, z int) float64 {
	switch r {
	case 1:
		if z < 6 {
			return Coefficient(z, 24.4545, 155.6055, -14.15422)
		}
		return Coefficient(z, 0.0, 47.0, 6.52, -0.152624)
	case 2, 3, 4:
		return Coefficient(z, 0.0, 17.8096, 0.067429, 0.01253775, -1.16286e-4)
	case 5:
		return Coefficient(z, 0.0, 10.2575657, -0.822863477, 2.63199611e-2, -1.8641019e-4)
	case 6, 7, 8, 9:
		return Coefficient(z, 0.0, 4.62, -0.04)
	case 10, 11:
		return Coefficient(z, 0.0, 19.64, -0.61239, 5.39309e-3)
	}
	panic(invalid(r))
}

// B returns the coefficient b of region r in eV. Regions 6-9 scale with
// the M4 edge energy of the element, m4EdgeEV. Region 11 has no b because
// it uses Model2.
func B(r Region, z int, m4EdgeEV float64) float64 {
	switch r {
	case 1:
		if z < 6 {
			return Coefficient(z, -103.0, 18.2)
		}
		return 0
	case 2, 3, 4:
		return 0
	case 5:
		if z < 61 {
			return Coefficient(z, 0.0, 5.654, -0.536839169, 0.018972278, -1.683474e-4)
		}
		return Coefficient(z, 0.0, -1232.4022, 51.114164, -0.699473097, 3.1779619e-3)
	case 6, 7, 8, 9:
		return Coefficient(z, 2.51, -0.052, 3.78e-4) * m4EdgeEV
	case 10:
		return Coefficient(z, -113.0, 4.5)
	}
	panic(invalid(r))
}
