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

// Package edges holds atomic subshell labels and tables of X-ray
// absorption edge (ionization) energies.
package edges

import (
	"errors"
	"fmt"
	"strings"
)

// Subshell is an atomic subshell, ordered by decreasing binding energy.
type Subshell int

// The subshells, in table column order.
const (
	K Subshell = iota
	L1
	L2
	L3
	M1
	M2
	M3
	M4
	M5
	N1
	N2
	N3
	N4
	N5
	N6
	N7
	O1
	O2
	O3
	O4
	O5
	O6
	O7
	P1
	numSubshells
)

// ErrUnknownSubshell is returned when a subshell label cannot be parsed.
var ErrUnknownSubshell = errors.New("unknown subshell")

var canonical = [numSubshells]string{
	"K",
	"L1", "L2", "L3",
	"M1", "M2", "M3", "M4", "M5",
	"N1", "N2", "N3", "N4", "N5", "N6", "N7",
	"O1", "O2", "O3", "O4", "O5", "O6", "O7",
	"P1",
}

var roman = [numSubshells]string{
	"K",
	"LI", "LII", "LIII",
	"MI", "MII", "MIII", "MIV", "MV",
	"NI", "NII", "NIII", "NIV", "NV", "NVI", "NVII",
	"OI", "OII", "OIII", "OIV", "OV", "OVI", "OVII",
	"PI",
}

var labels map[string]Subshell

func init() {
	labels = make(map[string]Subshell, 2*numSubshells)
	for i := K; i < numSubshells; i++ {
		labels[canonical[i]] = i
		labels[roman[i]] = i
	}
}

// HeinrichEdges are the ten edges that bound the energy regions of the
// Heinrich parameterization, from highest to lowest.
var HeinrichEdges = [10]Subshell{K, L1, L2, L3, M1, M2, M3, M4, M5, N1}

// Subshells returns all subshells in table order.
func Subshells() []Subshell {
	s := make([]Subshell, numSubshells)
	for i := range s {
		s[i] = Subshell(i)
	}
	return s
}

// ParseSubshell converts a canonical ("L3") or Roman-numeral ("LIII")
// label into a Subshell. Case and surrounding space are ignored.
func ParseSubshell(label string) (Subshell, error) {
	s, ok := labels[strings.ToUpper(strings.TrimSpace(label))]
	if !ok {
		return 0, fmt.Errorf("edges: %q: %w", label, ErrUnknownSubshell)
	}
	return s, nil
}

// Valid reports whether s is one of the defined subshells.
func (s Subshell) Valid() bool { return s >= K && s < numSubshells }

// String returns the canonical label.
func (s Subshell) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Subshell(%d)", int(s))
	}
	return canonical[s]
}

// Roman returns the Roman-numeral label.
func (s Subshell) Roman() string {
	if !s.Valid() {
		return fmt.Sprintf("Subshell(%d)", int(s))
	}
	return roman[s]
}
