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

package elements

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestTableLengths(t *testing.T) {
	if len(symbols) != 106 || len(names) != 106 || len(atomicMass) != 106 {
		t.Errorf("symbol/name/mass tables: %d/%d/%d", len(symbols), len(names), len(atomicMass))
	}
	if len(massDensity) != 96 {
		t.Errorf("density table: %d", len(massDensity))
	}
	if len(fermiEnergy) != 103 || len(kFermi) != 103 || len(plasmonEnergy) != 103 {
		t.Errorf("Fermi/plasmon tables: %d/%d/%d", len(fermiEnergy), len(kFermi), len(plasmonEnergy))
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		z       int
		symbol  string
		name    string
		mass    float64
		density float64
	}{
		{z: 1, symbol: "H", name: "Hydrogen", mass: 1.0079, density: 0.0899},
		{z: 6, symbol: "C", name: "Carbon", mass: 12.011, density: 2.62},
		{z: 29, symbol: "Cu", name: "Copper", mass: 63.546, density: 8.96},
		{z: 79, symbol: "Au", name: "Gold", mass: 196.9665, density: 19.3},
		{z: 96, symbol: "Cm", name: "Curium", mass: 247, density: 13.511},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.z), func(t *testing.T) {
			s, err := Symbol(test.z)
			if err != nil || s != test.symbol {
				t.Errorf("symbol: %q, %v", s, err)
			}
			n, err := Name(test.z)
			if err != nil || n != test.name {
				t.Errorf("name: %q, %v", n, err)
			}
			m, err := AtomicMass(test.z)
			if err != nil || m != test.mass {
				t.Errorf("mass: %g, %v", m, err)
			}
			d, err := MassDensity(test.z)
			if err != nil || d != test.density {
				t.Errorf("density: %g, %v", d, err)
			}
			z, err := AtomicNumber(test.symbol)
			if err != nil || z != test.z {
				t.Errorf("by symbol: %d, %v", z, err)
			}
			z, err = AtomicNumber(test.name)
			if err != nil || z != test.z {
				t.Errorf("by name: %d, %v", z, err)
			}
		})
	}
}

func TestOutOfRange(t *testing.T) {
	if _, err := AtomicMass(0); !errors.Is(err, ErrAtomicNumber) {
		t.Errorf("mass Z=0: %v", err)
	}
	if _, err := AtomicMass(107); !errors.Is(err, ErrAtomicNumber) {
		t.Errorf("mass Z=107: %v", err)
	}
	if _, err := MassDensity(97); !errors.Is(err, ErrAtomicNumber) {
		t.Errorf("density Z=97: %v", err)
	}
	if _, err := PlasmonEnergy(104); !errors.Is(err, ErrAtomicNumber) {
		t.Errorf("plasmon Z=104: %v", err)
	}
	if _, err := Symbol(200); !errors.Is(err, ErrAtomicNumber) {
		t.Errorf("symbol Z=200: %v", err)
	}
	if _, err := AtomicNumber("Xx"); err == nil {
		t.Error("expected unknown element error")
	}
}

func TestAtomicNumberCase(t *testing.T) {
	for _, s := range []string{"au", "AU", " Au ", "gold", "GOLD"} {
		z, err := AtomicNumber(s)
		if err != nil || z != 79 {
			t.Errorf("%q: %d, %v", s, z, err)
		}
	}
}

func TestDerived(t *testing.T) {
	tests := []struct {
		name      string
		got, want float64
	}{
		{"J(6)", MeanIonizationEnergy(6), 69},
		{"J(13)", MeanIonizationEnergy(13), 149.5},
		{"J(29)", MeanIonizationEnergy(29), 314.05142382876625},
		{"k(29)", KRatioCorrection(29), 0.8313899796164398},
		{"kMonsel(29)", KRatioCorrectionMonsel(29, 0.005), 0.8575808948485989},
		{"n(Cu)", AtomicDensity(8.96, 63.546), 8.491103767349637e+22},
	}
	for _, test := range tests {
		if math.Abs(test.got-test.want) > 1e-9*math.Abs(test.want) {
			t.Errorf("%s = %v, want %v", test.name, test.got, test.want)
		}
	}
	var tab Table
	if m, _ := tab.AtomicMass(29); m != 63.546 {
		t.Errorf("Table.AtomicMass(29) = %g", m)
	}
}
