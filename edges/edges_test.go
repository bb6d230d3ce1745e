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
	"math"
	"strings"
	"testing"
)

func TestParseSubshell(t *testing.T) {
	tests := []struct {
		label string
		want  Subshell
	}{
		{"K", K},
		{"L3", L3},
		{"LIII", L3},
		{"liii", L3},
		{" MV ", M5},
		{"M5", M5},
		{"NVII", N7},
		{"OI", O1},
		{"PI", P1},
		{"P1", P1},
	}
	for _, test := range tests {
		t.Run(test.label, func(t *testing.T) {
			s, err := ParseSubshell(test.label)
			if err != nil {
				t.Fatal(err)
			}
			if s != test.want {
				t.Errorf("%q: got %v, want %v", test.label, s, test.want)
			}
		})
	}
	for _, bad := range []string{"", "L4", "LIV", "Q1", "X"} {
		if _, err := ParseSubshell(bad); !errors.Is(err, ErrUnknownSubshell) {
			t.Errorf("%q: expected ErrUnknownSubshell, got %v", bad, err)
		}
	}
}

func TestSubshellLabels(t *testing.T) {
	all := Subshells()
	if len(all) != 24 {
		t.Fatalf("have %d subshells, want 24", len(all))
	}
	for _, s := range all {
		c, err := ParseSubshell(s.String())
		if err != nil || c != s {
			t.Errorf("%v: canonical round trip gave %v, %v", s, c, err)
		}
		r, err := ParseSubshell(s.Roman())
		if err != nil || r != s {
			t.Errorf("%v: roman round trip gave %v, %v", s, r, err)
		}
	}
	if L2.Roman() != "LII" {
		t.Errorf("L2.Roman() = %s", L2.Roman())
	}
}

func TestDTSA(t *testing.T) {
	tab := DTSA()
	if tab.MaxZ() != 99 {
		t.Errorf("MaxZ = %d, want 99", tab.MaxZ())
	}
	au := []float64{80722.168, 14352.314, 13733.134, 11918.296, 3424.784,
		3147.693, 2742.907, 2291.022, 2205.625, 758.774}
	for i, s := range HeinrichEdges {
		e, err := tab.EdgeEnergy(79, s)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(e-au[i]) > 1e-6 {
			t.Errorf("Au %v: got %g, want %g", s, e, au[i])
		}
	}
	e, err := tab.EdgeEnergyLabel(79, "MIV")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(e-2291.022) > 1e-6 {
		t.Errorf("Au MIV = %g", e)
	}

	// Absent edges are zero and not errors.
	for _, s := range []Subshell{L1, M1, N1, N7, P1} {
		e, err := tab.EdgeEnergy(6, s)
		if err != nil {
			t.Errorf("C %v: %v", s, err)
		}
		if e != 0 {
			t.Errorf("C %v = %g, want 0", s, e)
		}
	}

	for _, z := range []int{0, -1, 100} {
		if _, err := tab.EdgeEnergy(z, K); !errors.Is(err, ErrAtomicNumber) {
			t.Errorf("Z=%d: expected ErrAtomicNumber, got %v", z, err)
		}
	}
	if _, err := tab.EdgeEnergyLabel(79, "LIV"); !errors.Is(err, ErrUnknownSubshell) {
		t.Errorf("expected ErrUnknownSubshell, got %v", err)
	}
}

func TestDTSAOrdering(t *testing.T) {
	tab := DTSA()
	for z := 1; z <= tab.MaxZ(); z++ {
		if z == 54 {
			continue // Xe M4 and M5 are inverted in the DTSA data.
		}
		prev := math.Inf(1)
		for _, s := range HeinrichEdges {
			e, _ := tab.EdgeEnergy(z, s)
			if e == 0 {
				continue
			}
			if e > prev {
				t.Errorf("Z=%d: %v edge %g above previous edge %g", z, s, e, prev)
			}
			prev = e
		}
	}
}

func TestReadFFast(t *testing.T) {
	const data = `13.6
24.6
54.7,5.3
111.5,8.0,3.0,3.0
`
	tab, err := ReadFFast(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if tab.MaxZ() != 4 {
		t.Fatalf("MaxZ = %d", tab.MaxZ())
	}
	tests := []struct {
		z    int
		s    Subshell
		want float64
	}{
		{1, K, 13.6},
		{1, L1, 0},
		{3, L1, 5.3},
		{4, L3, 3.0},
		{4, P1, 0},
	}
	for _, test := range tests {
		e, err := tab.EdgeEnergy(test.z, test.s)
		if err != nil {
			t.Fatal(err)
		}
		if e != test.want {
			t.Errorf("Z=%d %v: got %g, want %g", test.z, test.s, e, test.want)
		}
	}

	if _, err := ReadFFast(strings.NewReader("1,x\n")); err == nil {
		t.Error("expected parse error")
	}
	if _, err := ReadFFast(strings.NewReader("-1\n")); err == nil {
		t.Error("expected negative energy error")
	}
}

func TestReadCSV(t *testing.T) {
	const data = "Z,K,LIII\n1,0.0136,\n2,0.0246,0.001\n"
	tab, err := ReadCSV(strings.NewReader(data), "test", 1000)
	if err != nil {
		t.Fatal(err)
	}
	e, _ := tab.EdgeEnergy(2, L3)
	if math.Abs(e-1) > 1e-12 {
		t.Errorf("He L3 = %g, want 1", e)
	}
	if _, err := ReadCSV(strings.NewReader("Z,K\n2,1\n"), "test", 1); err == nil {
		t.Error("expected ordering error")
	}
	if _, err := ReadCSV(strings.NewReader("K,L1\n"), "test", 1); err == nil {
		t.Error("expected header error")
	}
}

func TestLineEnergy(t *testing.T) {
	tab := DTSA()
	e, err := tab.LineEnergy(29, "Ka")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(e-(8978.596-931.068)) > 1e-6 {
		t.Errorf("Cu Ka = %g", e)
	}
	if _, err := tab.LineEnergy(29, "Kz"); !errors.Is(err, ErrUnknownLine) {
		t.Errorf("expected ErrUnknownLine, got %v", err)
	}
	if _, err := tab.LineEnergy(29, "Ma"); !errors.Is(err, ErrAbsentEdge) {
		t.Errorf("expected ErrAbsentEdge, got %v", err)
	}
	if len(Lines()) != len(transitions) {
		t.Errorf("Lines() has %d entries", len(Lines()))
	}
}
