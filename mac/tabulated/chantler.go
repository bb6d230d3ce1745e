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

package tabulated

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Energy units of tabulated files, as multipliers to eV.
const (
	EV  = 1.0
	KeV = 1.0e3
)

// ReadChantlerCSV reads the FFast MAC table of Chantler (2005). Each row
// holds (energy, MAC) column pairs, pair k being element Z=k+1. Energies
// are multiplied by energyScale to give eV. Empty cells and non-positive
// energies are skipped, so elements may have curves of different lengths.
func ReadChantlerCSV(r io.Reader, energyScale float64) (Curves, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	type points struct{ e, v []float64 }
	data := make(map[int]*points)
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("tabulated: reading FFast MAC table: %v", err)
		}
		line++
		for i := 0; i+1 < len(rec); i += 2 {
			es, vs := strings.TrimSpace(rec[i]), strings.TrimSpace(rec[i+1])
			if es == "" || vs == "" {
				continue
			}
			e, err := strconv.ParseFloat(es, 64)
			if err != nil {
				return nil, fmt.Errorf("tabulated: FFast MAC line %d column %d: %v", line, i+1, err)
			}
			v, err := strconv.ParseFloat(vs, 64)
			if err != nil {
				return nil, fmt.Errorf("tabulated: FFast MAC line %d column %d: %v", line, i+2, err)
			}
			if e <= 0 {
				continue
			}
			z := i/2 + 1
			p, ok := data[z]
			if !ok {
				p = new(points)
				data[z] = p
			}
			p.e = append(p.e, e*energyScale)
			p.v = append(p.v, v)
		}
	}
	curves := make(Curves, len(data))
	for z, p := range data {
		c, err := NewCurve(p.e, p.v)
		if err != nil {
			return nil, fmt.Errorf("tabulated: FFast MAC Z=%d: %w", z, err)
		}
		curves[z] = c
	}
	return curves, nil
}
