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

// Package jump computes absorption jump ratios and jump factors, the
// fraction of absorption at an energy that is due to one subshell.
package jump

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnsupportedLine is returned by Springer1967 for lines other than
// Ka and La.
var ErrUnsupportedLine = errors.New("unsupported line")

// Springer1967 returns the jump factor of the subshell ionized to emit
// line, from the fits of Springer (1967) to the tables of Sagel (1959):
//
//	Ka: (r_K − 1)/r_K = 0.924 − 0.00144·Z
//	La: (r_L3 − 1)/(r_L3·r_L2·r_L1) = 0.548 − 0.00231·Z
func Springer1967(z int, line string) (float64, error) {
	zf := float64(z)
	switch {
	case strings.HasPrefix(line, "Ka"):
		return 0.924 - 0.00144*zf, nil
	case strings.HasPrefix(line, "La"):
		return 0.548 - 0.00231*zf, nil
	}
	return 0, fmt.Errorf("jump: Springer 1967 %q: %w", line, ErrUnsupportedLine)
}

// Estimates of the K-shell jump ratio r_K collected by Agarwal (1979).

// Rindfleisch returns r_K = a·Z^b with log₁₀a = 1.805283 and b = −0.6207
// (Rindfleisch 1937).
func Rindfleisch(z int) float64 {
	return math.Pow(10, 1.805283) * math.Pow(float64(z), -0.6207)
}

// Laubert returns r_K = a·λ_K^b with log₁₀a = 0.857652 and b = 0.0843
// (Laubert 1941).
func Laubert(lambdaK float64) float64 {
	return math.Pow(10, 0.857652) * math.Pow(lambdaK, 0.0843)
}

// TellezPlasencia returns r_K = 1/(0.051167 + 0.0024882·Z)
// (Tellez-Plasencia 1949).
func TellezPlasencia(z int) float64 {
	return 1 / (0.051167 + 0.0024882*float64(z))
}

// LambdaRatio returns r_K = λ_L1·λ_K.
func LambdaRatio(lambdaL1, lambdaK float64) float64 {
	return lambdaL1 * lambdaK
}
