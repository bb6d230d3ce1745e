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
Package mac defines the interface shared by the X-ray mass absorption
coefficient (MAC) models and the machinery built on top of it: diagnostics,
batch evaluation, memoization and emitter-line lookups.

All MAC values are in cm²/g and all energies are in eV.
*/
package mac

import (
	"github.com/epmatools/xraymac/edges"
)

// Opaque is returned by the empirical models when the
// parameterization breaks down, e.g. at or below zero energy or when the
// fitted formula goes negative. It is a value, not an error.
const Opaque = 1.0e6

// Model computes the mass absorption coefficient of element z for
// X-rays of the given energy.
type Model interface {
	MAC(energyEV float64, z int) (float64, error)
}

// ModelFunc adapts a function to the Model interface.
type ModelFunc func(energyEV float64, z int) (float64, error)

// MAC calls f.
func (f ModelFunc) MAC(energyEV float64, z int) (float64, error) { return f(energyEV, z) }

// EdgeTable provides absorption edge energies in eV. Absent edges are
// reported as 0 with a nil error.
type EdgeTable interface {
	EdgeEnergy(z int, s edges.Subshell) (float64, error)
}

// MassTable provides atomic masses in g/mol.
type MassTable interface {
	AtomicMass(z int) (float64, error)
}
