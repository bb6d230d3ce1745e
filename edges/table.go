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
	"bytes"
	_ "embed" // for the DTSA edge table
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// ErrAtomicNumber is returned when an atomic number is outside of a table.
var ErrAtomicNumber = errors.New("atomic number out of range")

// Table holds edge energies in eV indexed by atomic number and subshell.
// An energy of 0 means that the element has no tabulated edge for
// that subshell.
type Table struct {
	name string

	// eV[z-1][subshell]
	eV [][numSubshells]float64
}

// Name returns the name of the table's data source.
func (t *Table) Name() string { return t.name }

// MaxZ returns the largest atomic number in the table.
func (t *Table) MaxZ() int { return len(t.eV) }

// EdgeEnergy returns the edge energy in eV of subshell s of element z.
// It returns 0 without an error if the element has no such edge.
func (t *Table) EdgeEnergy(z int, s Subshell) (float64, error) {
	if z < 1 || z > len(t.eV) {
		return 0, fmt.Errorf("edges: %s table: Z=%d: %w", t.name, z, ErrAtomicNumber)
	}
	if !s.Valid() {
		return 0, fmt.Errorf("edges: %v: %w", s, ErrUnknownSubshell)
	}
	return t.eV[z-1][s], nil
}

// EdgeEnergyLabel is like EdgeEnergy but takes a subshell label in
// either canonical or Roman-numeral form.
func (t *Table) EdgeEnergyLabel(z int, label string) (float64, error) {
	s, err := ParseSubshell(label)
	if err != nil {
		return 0, err
	}
	return t.EdgeEnergy(z, s)
}

//go:embed data/dtsa.csv
var dtsaCSV []byte

var (
	dtsaOnce  sync.Once
	dtsaTable *Table
)

// DTSA returns the edge energies distributed with DTSA for
// elements 1 through 99 (edges K through N1).
func DTSA() *Table {
	dtsaOnce.Do(func() {
		t, err := ReadCSV(bytes.NewReader(dtsaCSV), "DTSA", 1)
		if err != nil {
			panic(err)
		}
		dtsaTable = t
	})
	return dtsaTable
}

// ReadCSV reads a table whose first row names the columns: "Z" followed by
// subshell labels. Values are multiplied by scale to convert them to eV.
// Rows must be in atomic number order starting at 1.
func ReadCSV(r io.Reader, name string, scale float64) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("edges: reading %s header: %v", name, err)
	}
	if len(header) < 2 || !strings.EqualFold(header[0], "Z") {
		return nil, fmt.Errorf("edges: %s: first column must be Z, got %q", name, header)
	}
	cols := make([]Subshell, len(header)-1)
	for i, h := range header[1:] {
		if cols[i], err = ParseSubshell(h); err != nil {
			return nil, err
		}
	}
	t := &Table{name: name}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("edges: reading %s: %v", name, err)
		}
		z, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("edges: %s: %v", name, err)
		}
		if z != len(t.eV)+1 {
			return nil, fmt.Errorf("edges: %s: expected Z=%d, got %d", name, len(t.eV)+1, z)
		}
		var row [numSubshells]float64
		for i, v := range rec[1:] {
			if row[cols[i]], err = parseEnergy(v, scale); err != nil {
				return nil, fmt.Errorf("edges: %s: Z=%d %v: %v", name, z, cols[i], err)
			}
		}
		t.eV = append(t.eV, row)
	}
	return t, nil
}

// ReadFFast reads an edge database in the FFast layout: no header, one
// row per element starting with hydrogen, and up to 24 columns in
// subshell order (K through P1) in eV. Missing or empty cells are absent
// edges.
func ReadFFast(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	t := &Table{name: "FFast"}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("edges: reading FFast: %v", err)
		}
		if len(rec) > int(numSubshells) {
			return nil, fmt.Errorf("edges: FFast Z=%d: %d columns, want at most %d", len(t.eV)+1, len(rec), numSubshells)
		}
		var row [numSubshells]float64
		for i, v := range rec {
			if row[i], err = parseEnergy(v, 1); err != nil {
				return nil, fmt.Errorf("edges: FFast Z=%d %v: %v", len(t.eV)+1, Subshell(i), err)
			}
		}
		t.eV = append(t.eV, row)
	}
	return t, nil
}

func parseEnergy(v string, scale float64) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, fmt.Errorf("negative edge energy %g", f)
	}
	return f * scale, nil
}
