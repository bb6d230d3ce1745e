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

package edges

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownLine is returned for an unrecognized characteristic line.
	ErrUnknownLine = errors.New("unknown X-ray line")

	// ErrAbsentEdge is returned when a computation needs an edge that
	// the element does not have.
	ErrAbsentEdge = errors.New("absent edge")
)

// transitions maps Siegbahn line names to the (initial vacancy, filling
// electron) subshell pair.
var transitions = map[string][2]Subshell{
	"Ka":  {K, L3},
	"Ka1": {K, L3},
	"Ka2": {K, L2},
	"Kb":  {K, M3},
	"Kb1": {K, M3},
	"Kb3": {K, M2},
	"La":  {L3, M5},
	"La1": {L3, M5},
	"La2": {L3, M4},
	"Lb":  {L2, M4},
	"Lb1": {L2, M4},
	"Ll":  {L3, M1},
	"Ma":  {M5, N7},
	"Mb":  {M4, N6},
}

// Lines returns the line names known to LineEnergy, sorted.
func Lines() []string {
	l := make([]string, 0, len(transitions))
	for k := range transitions {
		l = append(l, k)
	}
	sort.Strings(l)
	return l
}

// LineEnergy approximates the energy in eV of a characteristic X-ray line
// of element z as the difference between the two edges of its transition.
func (t *Table) LineEnergy(z int, line string) (float64, error) {
	tr, ok := transitions[line]
	if !ok {
		return 0, fmt.Errorf("edges: %q: %w", line, ErrUnknownLine)
	}
	hi, err := t.EdgeEnergy(z, tr[0])
	if err != nil {
		return 0, err
	}
	lo, err := t.EdgeEnergy(z, tr[1])
	if err != nil {
		return 0, err
	}
	if hi == 0 || lo == 0 {
		return 0, fmt.Errorf("edges: %s line of Z=%d needs %v and %v edges: %w", line, z, tr[0], tr[1], ErrAbsentEdge)
	}
	return hi - lo, nil
}
