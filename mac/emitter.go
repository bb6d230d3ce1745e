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

package mac

import (
	"fmt"
	"sort"
	"strings"
)

// LineKey resolves a characteristic line spelling such as "K", "Ka1" or
// "Lb2" to one of keys. Keys are tried in sorted order; a key matches
// if it contains line, or if line is longer than the key and begins with
// a string the key contains. If nothing matches, line is returned.
func LineKey(line string, keys []string) string {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)
	for _, k := range sorted {
		if strings.Contains(k, line) {
			return k
		}
		if len(line) > len(k) && strings.Contains(k, line[:len(k)]) {
			return k
		}
	}
	return line
}

// EmitterTable holds measured MACs of absorbers for the characteristic
// lines of emitters.
type EmitterTable interface {
	EmitterMAC(absorberZ, emitterZ int, line string) (float64, bool)
}

// LineEnergies gives the energy in eV of a characteristic line.
type LineEnergies interface {
	LineEnergy(z int, line string) (float64, error)
}

// Emitter computes MACs for characteristic lines, preferring tabulated
// values and falling back to an energy-based model at the line energy.
type Emitter struct {
	Table    EmitterTable
	Energies LineEnergies
	Fallback Model
}

// MAC returns the MAC of absorberZ for the given line of emitterZ.
func (e Emitter) MAC(absorberZ, emitterZ int, line string) (float64, error) {
	if e.Table != nil {
		if v, ok := e.Table.EmitterMAC(absorberZ, emitterZ, line); ok {
			return v, nil
		}
	}
	if e.Energies == nil || e.Fallback == nil {
		return 0, fmt.Errorf("mac: no tabulated value for Z=%d in the %s line of Z=%d and no fallback model", absorberZ, line, emitterZ)
	}
	energy, err := e.Energies.LineEnergy(emitterZ, line)
	if err != nil {
		return 0, err
	}
	return e.Fallback.MAC(energy, absorberZ)
}
