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
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/epmatools/xraymac/edges"
	"github.com/epmatools/xraymac/elements"
	"github.com/epmatools/xraymac/mac"
	"github.com/kr/pretty"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestMAC(t *testing.T) {
	m := New()
	tests := []struct {
		z      int
		e      float64
		region Region
		want   float64
	}{
		{z: 5, e: 183, region: 2, want: 2861.0},
		{z: 5, e: 277, region: 1, want: 39838.0},
		{z: 6, e: 183, region: 2, want: 5945.0},
		{z: 6, e: 277, region: 2, want: 2147.0},
		{z: 6, e: 392, region: 1, want: 23586.0},
		{z: 29, e: 2014, region: 2, want: 2238.0},
		{z: 29, e: 8048, region: 2, want: 52.4},
		{z: 29, e: 183, region: 5, want: 37113.3},
		{z: 29, e: 277, region: 5, want: 19141.5},
		{z: 29, e: 392, region: 5, want: 9925.8},
		{z: 30, e: 183, region: 5, want: 40790.1},
		{z: 30, e: 277, region: 5, want: 21582.7},
		{z: 30, e: 392, region: 5, want: 11317.3},
		{z: 31, e: 100, region: 8, want: 100070.5},
		{z: 31, e: 105, region: 7, want: 105933.2},
		{z: 31, e: 183, region: 5, want: 42943.0},
		{z: 47, e: 3692, region: 3, want: 1409.0},
		{z: 47, e: 3590, region: 3, want: 1508.7},
		{z: 47, e: 3444, region: 4, want: 1254.0},
		{z: 47, e: 3487, region: 4, want: 1217.0},
		{z: 60, e: 1740, region: 5, want: 4229.0},
		{z: 60, e: 2014, region: 5, want: 3059.9},
		{z: 60, e: 5899, region: 5, want: 204.2},
		{z: 61, e: 1740, region: 5, want: 4573.6},
		{z: 61, e: 2014, region: 5, want: 3296.5},
		{z: 61, e: 5899, region: 5, want: 219.1},
		{z: 69, e: 1490, region: 9, want: 1815.0},
		{z: 79, e: 3692, region: 5, want: 1496.0},
		{z: 79, e: 3314, region: 6, want: 1801.5},
		{z: 79, e: 2958, region: 7, want: 2192.0},
		{z: 79, e: 2622, region: 8, want: 2418.0},
		{z: 79, e: 2395, region: 8, want: 3073.9},
		{z: 79, e: 2257, region: 9, want: 1468.0},
		{z: 79, e: 2014, region: 10, want: 1192.0},
		{z: 79, e: 849, region: 10, want: 6763.5},
		{z: 79, e: 677, region: 11, want: 12634.85},
		{z: 79, e: 392, region: 11, want: 19996.91},
		{z: 79, e: 277, region: 11, want: 22962.41},
		{z: 79, e: 183, region: 11, want: 14800.395555},
		{z: 79, e: 1, region: 11, want: mac.Opaque},
		{z: 14, e: 1, region: 5, want: mac.Opaque},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d_%g", test.z, test.e), func(t *testing.T) {
			r, err := m.Evaluate(test.e, test.z)
			if err != nil {
				t.Fatal(err)
			}
			if r.Region != test.region {
				t.Errorf("region: got %v, want %v", r.Region, test.region)
			}
			if math.Abs(r.MAC-test.want) > 0.5 {
				t.Errorf("MAC: got %g, want %g", r.MAC, test.want)
			}
			v, err := m.MAC(test.e, test.z)
			if err != nil {
				t.Fatal(err)
			}
			if v != r.MAC {
				t.Errorf("MAC() = %g, Evaluate().MAC = %g", v, r.MAC)
			}
		})
	}
}

func TestNonPositiveEnergy(t *testing.T) {
	m := New()
	for z := 1; z <= 99; z++ {
		for _, e := range []float64{0, -1e-9, -50, -1e6} {
			r, err := m.Evaluate(e, z)
			if err != nil {
				t.Fatal(err)
			}
			if r.MAC != mac.Opaque || r.Region != 0 || len(r.Warnings) != 0 {
				t.Errorf("Z=%d E=%g: %+v", z, e, r)
			}
		}
	}
}

func TestClassifyGold(t *testing.T) {
	tab := edges.DTSA()
	tests := []struct {
		e    float64
		want Region
	}{
		{87.4, 11},
		{108.8, 11},
		{334.89, 11},
		{352.99, 11},
		{546.38, 11},
		{644.67, 11},
		{759.77, 10},
		{2206.6, 9},
		{2292, 8},
		{2743.9, 7},
		{3148.7, 6},
		{3425.8, 5},
		{11919, 4},
		{13734, 3},
		{14353, 2},
		{80723, 1},
	}
	for _, test := range tests {
		r, _, err := Classify(tab, 79, test.e)
		if err != nil {
			t.Fatal(err)
		}
		if r != test.want {
			t.Errorf("E=%g: got %v, want %v", test.e, r, test.want)
		}
	}
	if r, _, _ := Classify(tab, 6, 1); r != 2 {
		t.Errorf("C at 1 eV: %v", r)
	}
	if r, ws, _ := Classify(tab, 79, -50); r != 11 || len(ws) != 0 {
		t.Errorf("Au at -50 eV: %v %v", r, ws)
	}
}

func TestWarnings(t *testing.T) {
	m := New()
	tests := []struct {
		z    int
		e    float64
		want []mac.Warning
	}{
		{
			z: 5, e: 183,
			want: []mac.Warning{{Kind: mac.NearEdge, Z: 5, EnergyEV: 183, ReferenceEV: 187.994}},
		},
		{
			z: 79, e: 2206.6,
			want: []mac.Warning{{Kind: mac.NearEdge, Z: 79, EnergyEV: 2206.6, ReferenceEV: 2205.625}},
		},
		{
			z: 79, e: 849,
			want: []mac.Warning{{Kind: mac.BelowM5, Z: 79, EnergyEV: 849}},
		},
		{
			z: 79, e: 183,
			want: []mac.Warning{{Kind: mac.BelowM5, Z: 79, EnergyEV: 183}},
		},
		{
			z: 79, e: 175,
			want: []mac.Warning{
				{Kind: mac.LowEnergy, Z: 79, EnergyEV: 175, ReferenceEV: 180},
				{Kind: mac.BelowM5, Z: 79, EnergyEV: 175},
			},
		},
		{
			z: 79, e: 1,
			want: []mac.Warning{
				{Kind: mac.LowEnergy, Z: 79, EnergyEV: 1, ReferenceEV: 180},
				{Kind: mac.BelowM5, Z: 79, EnergyEV: 1},
				{Kind: mac.LowEnergy, Z: 79, EnergyEV: 1, ReferenceEV: Cutoff(79) * 1.1},
			},
		},
		{
			z: 69, e: 1490,
			want: []mac.Warning{{Kind: mac.BetweenM4M5, Z: 69, EnergyEV: 1490}},
		},
		{z: 29, e: 8048},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d_%g", test.z, test.e), func(t *testing.T) {
			r, err := m.Evaluate(test.e, test.z)
			if err != nil {
				t.Fatal(err)
			}
			if len(r.Warnings) != len(test.want) {
				t.Fatalf("warnings: %# v", pretty.Formatter(r.Warnings))
			}
			for i, w := range test.want {
				got := r.Warnings[i]
				if got.Kind != w.Kind || got.Z != w.Z || got.EnergyEV != w.EnergyEV ||
					math.Abs(got.ReferenceEV-w.ReferenceEV) > 1e-9 {
					t.Errorf("warning %d: %v", i, pretty.Diff(got, w))
				}
			}
		})
	}
}

func TestSink(t *testing.T) {
	logger, hook := test.NewNullLogger()
	m := New()
	m.Sink = mac.LogSink{Log: logger}
	if _, err := m.MAC(175, 79); err != nil {
		t.Fatal(err)
	}
	if len(hook.AllEntries()) != 2 {
		t.Errorf("logged %d warnings, want 2", len(hook.AllEntries()))
	}
	hook.Reset()

	var c mac.Collector
	m.Sink = &c
	if _, err := m.MAC(8048, 29); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 0 || len(hook.AllEntries()) != 0 {
		t.Errorf("unexpected warnings: %v", c.Warnings())
	}
}

func TestErrors(t *testing.T) {
	m := New()
	if _, err := m.MAC(1000, 100); !errors.Is(err, edges.ErrAtomicNumber) {
		t.Errorf("Z=100: %v", err)
	}
	_, err := m.MAC(math.NaN(), 79)
	if !errors.Is(err, ErrRegionNotFound) {
		t.Errorf("NaN energy: %v", err)
	}

	// Edges but no mass.
	m.Masses = mac.MassTable(massFunc(func(z int) (float64, error) { return elements.AtomicMass(200) }))
	if _, err := m.MAC(1000, 79); !errors.Is(err, elements.ErrAtomicNumber) {
		t.Errorf("missing mass: %v", err)
	}
}

type massFunc func(int) (float64, error)

func (f massFunc) AtomicMass(z int) (float64, error) { return f(z) }

// Regions never increase with energy.
func TestMonotonicRegions(t *testing.T) {
	tab := edges.DTSA()
	for z := 3; z <= 95; z++ {
		k, _ := tab.EdgeEnergy(z, edges.K)
		prev := Region(12)
		for e := 1.0; e < 1.5*k; e *= 1.01 {
			r, _, err := Classify(tab, z, e)
			if err != nil {
				t.Fatal(err)
			}
			if r > prev {
				t.Fatalf("Z=%d E=%g: region %v after %v", z, e, r, prev)
			}
			prev = r
		}
		if prev != 1 {
			t.Errorf("Z=%d: highest energy in %v", z, prev)
		}
	}
}

// No positive energy falls in a region whose upper edge is absent.
func TestAbsentEdges(t *testing.T) {
	tab := edges.DTSA()
	for z := 1; z <= 99; z++ {
		k, _ := tab.EdgeEnergy(z, edges.K)
		for e := 1.0; e < 1.5*k; e *= 1.02 {
			r, _, err := Classify(tab, z, e)
			if err != nil {
				t.Fatal(err)
			}
			if r < 2 || r > 10 {
				continue
			}
			upper, _ := tab.EdgeEnergy(z, edges.HeinrichEdges[r-2])
			if upper == 0 {
				t.Errorf("Z=%d E=%g classified in %v with absent upper edge %v", z, e, r, edges.HeinrichEdges[r-2])
			}
		}
	}
}

func TestDeterministicAndVector(t *testing.T) {
	m := New()
	energies := []float64{-1, 0, 1, 100, 183, 277, 392, 677, 849, 1490, 2014, 2257, 2958, 8048, 20000, 90000}
	for _, z := range []int{5, 6, 14, 29, 47, 69, 79} {
		v, err := mac.Vector(m, energies, z)
		if err != nil {
			t.Fatal(err)
		}
		for i, e := range energies {
			a, _ := m.MAC(e, z)
			b, _ := m.MAC(e, z)
			if a != b || a != v[i] {
				t.Errorf("Z=%d E=%g: %v, %v, vector %v", z, e, a, b, v[i])
			}
		}
	}
	v, err := mac.Vector(m, []float64{183, 277, 392}, 29)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{37113.319495, 19141.496054, 9925.824016}
	for i := range want {
		if math.Abs(v[i]-want[i]) > 1e-5 {
			t.Errorf("[%d] = %.6f, want %.6f", i, v[i], want[i])
		}
	}
}

func TestCoefficients(t *testing.T) {
	if c := Coefficient(2, 1, 2, 3); c != 17 {
		t.Errorf("Coefficient = %g", c)
	}
	if c := Coefficient(7); c != 0 {
		t.Errorf("empty Coefficient = %g", c)
	}
	if c := math.Abs(Cutoff(79) - 151.4172); c > 1e-9 {
		t.Errorf("Cutoff(79) = %g", Cutoff(79))
	}
	if C(3, 29) != C(2, 29)*0.858 {
		t.Error("region 3 C")
	}
	if C(11, 79) != C(10, 79) || N(11, 79) != N(10, 79) || A(11, 79) != A(10, 79) {
		t.Error("region 11 shares region 10 coefficients")
	}
	if B(6, 79, 2291.022) != B(9, 79, 2291.022) || B(6, 79, 0) != 0 {
		t.Error("regions 6-9 b")
	}
	if B(1, 6, 0) != 0 || B(3, 29, 0) != 0 {
		t.Error("zero b")
	}
	if !reflect.DeepEqual(A(2, 29), A(4, 29)) || N(6, 79) != N(9, 79) {
		t.Error("shared polynomials")
	}
	for _, r := range []Region{0, 12, -1} {
		for name, f := range map[string]func(){
			"C": func() { C(r, 29) },
			"N": func() { N(r, 29) },
			"A": func() { A(r, 29) },
			"B": func() { B(r, 29, 0) },
		} {
			func() {
				defer func() {
					if recover() == nil {
						t.Errorf("%s(%d) did not panic", name, r)
					}
				}()
				f()
			}()
		}
	}
}
