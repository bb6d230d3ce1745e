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

// Package report writes tables of MAC values as CSV or Excel files.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/epmatools/xraymac/grid"
	"github.com/epmatools/xraymac/mac"
	"github.com/tealeg/xlsx"
)

// Table holds named columns of values.
type Table struct {
	Header []string
	Rows   [][]float64
}

// Column describes one model curve of a sweep.
type Column struct {
	Name  string
	Model mac.Model
	Z     int
}

// Sweep tabulates each column over g. The first column holds the
// energies. Failed evaluations are left as NaN and reported in the
// returned error, which is a mac.BatchError from the first failing
// column.
func Sweep(g *grid.Grid, cols []Column) (*Table, error) {
	energies := g.Energies()
	t := &Table{Header: []string{"Energy (eV)"}, Rows: make([][]float64, len(energies))}
	for i, e := range energies {
		t.Rows[i] = make([]float64, 1, len(cols)+1)
		t.Rows[i][0] = e
	}
	var firstErr error
	for _, c := range cols {
		t.Header = append(t.Header, c.Name)
		v, err := mac.Vector(c.Model, energies, c.Z)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("report: %s: %w", c.Name, err)
		}
		for i := range v {
			t.Rows[i] = append(t.Rows[i], v[i])
		}
	}
	return t, firstErr
}

// WriteCSV writes the header and rows as comma-separated values.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("report: %v", err)
	}
	rec := make([]string, len(t.Header))
	for _, row := range t.Rows {
		rec = rec[:len(row)]
		for j, v := range row {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: %v", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the table to a workbook with a single sheet.
func (t *Table) WriteXLSX(w io.Writer, sheetName string) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("report: %v", err)
	}
	row := sheet.AddRow()
	for _, h := range t.Header {
		row.AddCell().SetString(h)
	}
	for _, r := range t.Rows {
		row = sheet.AddRow()
		for _, v := range r {
			row.AddCell().SetFloat(v)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: %v", err)
	}
	return nil
}

// ReadXLSX reads a table written by WriteXLSX from the first sheet of
// the workbook.
func ReadXLSX(b []byte) (*Table, error) {
	f, err := xlsx.OpenBinary(b)
	if err != nil {
		return nil, fmt.Errorf("report: %v", err)
	}
	if len(f.Sheets) == 0 {
		return nil, fmt.Errorf("report: workbook has no sheets")
	}
	t := new(Table)
	for i, row := range f.Sheets[0].Rows {
		if i == 0 {
			for _, c := range row.Cells {
				t.Header = append(t.Header, c.Value)
			}
			continue
		}
		if len(row.Cells) == 0 {
			continue
		}
		vals := make([]float64, len(row.Cells))
		for j, c := range row.Cells {
			if vals[j], err = c.Float(); err != nil {
				return nil, fmt.Errorf("report: row %d column %d: %v", i, j, err)
			}
		}
		t.Rows = append(t.Rows, vals)
	}
	return t, nil
}

// Write writes t to w in the format given by the extension of
// fileName: ".xlsx" for Excel, anything else for CSV.
func (t *Table) Write(w io.Writer, fileName string) error {
	if strings.EqualFold(filepath.Ext(fileName), ".xlsx") {
		return t.WriteXLSX(w, "MAC")
	}
	return t.WriteCSV(w)
}
