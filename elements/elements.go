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

// Package elements provides physical properties of the chemical elements.
package elements

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Avogadro is the Avogadro number used with these tables, in atoms/mol.
const Avogadro = 6.02205e23

// ErrAtomicNumber is returned when a property is not tabulated for an
// atomic number.
var ErrAtomicNumber = errors.New("atomic number out of range")

func lookup(prop string, data []float64, z int) (float64, error) {
	if z < 1 || z > len(data) {
		return 0, fmt.Errorf("elements: %s of Z=%d (have 1-%d): %w", prop, z, len(data), ErrAtomicNumber)
	}
	return data[z-1], nil
}

// AtomicMass returns the atomic weight in g/mol.
func AtomicMass(z int) (float64, error) { return lookup("atomic mass", atomicMass[:], z) }

// MassDensity returns the density of the pure element in g/cm³.
func MassDensity(z int) (float64, error) { return lookup("mass density", massDensity[:], z) }

// FermiEnergy returns the Fermi energy in eV.
func FermiEnergy(z int) (float64, error) { return lookup("Fermi energy", fermiEnergy[:], z) }

// KFermi returns the Fermi wave number.
func KFermi(z int) (float64, error) { return lookup("Fermi wave number", kFermi[:], z) }

// PlasmonEnergy returns the plasmon energy in eV.
func PlasmonEnergy(z int) (float64, error) { return lookup("plasmon energy", plasmonEnergy[:], z) }

// Symbol returns the chemical symbol of element z.
func Symbol(z int) (string, error) {
	if z < 1 || z > len(symbols) {
		return "", fmt.Errorf("elements: symbol of Z=%d: %w", z, ErrAtomicNumber)
	}
	return symbols[z-1], nil
}

// Name returns the English name of element z.
func Name(z int) (string, error) {
	if z < 1 || z > len(names) {
		return "", fmt.Errorf("elements: name of Z=%d: %w", z, ErrAtomicNumber)
	}
	return names[z-1], nil
}

// AtomicNumber returns the atomic number of the element with the given
// symbol or name, ignoring case.
func AtomicNumber(symbolOrName string) (int, error) {
	s := strings.TrimSpace(symbolOrName)
	for i := range symbols {
		if strings.EqualFold(symbols[i], s) || strings.EqualFold(names[i], s) {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("elements: unknown element %q", symbolOrName)
}

// MeanIonizationEnergy returns the mean ionization potential J in eV.
func MeanIonizationEnergy(z int) float64 {
	if z <= 13 {
		return 11.5 * float64(z)
	}
	zf := float64(z)
	return 9.76*zf + 58.8/math.Pow(zf, 0.19)
}

// KRatioCorrection returns the k correction applied with the mean
// ionization potential.
func KRatioCorrection(z int) float64 {
	return 0.734 * math.Pow(float64(z), 0.037)
}

// KRatioCorrectionMonsel returns the k value defined by Monsel for
// stopping-power calculations at low energy.
func KRatioCorrectionMonsel(z int, workFunctionKeV float64) float64 {
	return 0.8576 - (workFunctionKeV+1e-3)/MeanIonizationEnergy(z)
}

// AtomicDensity returns the number of atoms per cm³ for a material
// with the given mass density (g/cm³) and atomic mass (g/mol).
func AtomicDensity(massDensity, atomicMass float64) float64 {
	return Avogadro * massDensity / atomicMass
}

// Table exposes the atomic masses through a method so that it can be
// passed where an atomic mass source is needed.
type Table struct{}

// AtomicMass returns the atomic weight in g/mol.
func (Table) AtomicMass(z int) (float64, error) { return AtomicMass(z) }
