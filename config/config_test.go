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

package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/epmatools/xraymac/mac"
	"github.com/epmatools/xraymac/mac/heinrich"
	"github.com/kr/pretty"
)

func TestLoad(t *testing.T) {
	c, err := Load("testdata/config.toml")
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Model:      DTSA,
		MemoSize:   128,
		LogLevel:   "debug",
		Workers:    4,
		RangeLimit: 0.001,
	}
	if diff := pretty.Diff(c, want); len(diff) > 0 {
		t.Error(diff)
	}
}

func TestDefault(t *testing.T) {
	c, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if diff := pretty.Diff(c, Default()); len(diff) > 0 {
		t.Error(diff)
	}
}

func TestValidate(t *testing.T) {
	for _, test := range []struct {
		name, toml string
	}{
		{name: "unknown model", toml: `model = "nist"`},
		{name: "missing data", toml: `model = "penelope"`},
		{name: "memo", toml: `memo_size = -1`},
		{name: "workers", toml: `workers = -2`},
		{name: "limit", toml: `range_limit = 1.5`},
		{name: "level", toml: `log_level = "loud"`},
		{name: "syntax", toml: `model = `},
	} {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(test.toml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestBuildHeinrich(t *testing.T) {
	var col mac.Collector
	c := Default()
	m, closer, err := c.Build(&col)
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	if _, ok := m.(*mac.Memoized); !ok {
		t.Errorf("model type %T, want memoized", m)
	}
	have, err := m.MAC(8048, 29)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := heinrich.New().MAC(8048, 29)
	if have != want {
		t.Errorf("have %g, want %g", have, want)
	}
	if _, err := m.MAC(183, 5); err != nil {
		t.Fatal(err)
	}
	if col.Len() == 0 {
		t.Error("no warnings for B at 183 eV")
	}
}

func TestBuildChantler(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ffast.csv")
	if err := os.WriteFile(file, []byte("1,10,1,20\n2,5,2,10\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c := Default()
	c.Model = Chantler
	c.DataPath = file
	c.MemoSize = 0
	m, closer, err := c.Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	for _, test := range []struct {
		z    int
		e    float64
		want float64
	}{
		{z: 1, e: 1500, want: 7.5},
		{z: 2, e: 1500, want: 15},
		{z: 2, e: 5000, want: 10},
	} {
		have, err := m.MAC(test.e, test.z)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(have-test.want) > 1e-12 {
			t.Errorf("Z=%d E=%g: have %g, want %g", test.z, test.e, have, test.want)
		}
	}
}

func TestBuildEdgeTable(t *testing.T) {
	c := Default()
	c.EdgeTable = "testdata/missing.csv"
	if _, _, err := c.Build(nil); err == nil {
		t.Error("expected an error for a missing edge table")
	}
}
