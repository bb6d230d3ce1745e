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

// Package pouchou holds the measured MACs for soft X-ray lines published
// by Pouchou and Pichoir (1991).
//
// Reference: J.-L. Pouchou and F. Pichoir, "Quantitative analysis of
// homogeneous or stratified microvolumes applying the model PAP", in
// Electron Probe Quantitation, Plenum Press, 1991, pp. 31-75.
package pouchou

import "github.com/epmatools/xraymac/mac"

// table maps line, emitter Z and absorber Z to a MAC in cm²/g.
type table map[string]map[int]map[int]float64

var data = table{
	"Ka": {
		5: {
			5: 3500, 6: 6750, 7: 11000, 8: 16500, 13: 64000, 14: 80000,
			22: 15000, 23: 18000, 24: 20700, 26: 27800, 27: 32000, 28: 37000,
			40: 4400, 41: 4500, 42: 4600, 57: 2500, 73: 23000, 74: 21000, 92: 7400,
		},
		6: {
			5: 39000, 6: 2170, 14: 35000, 22: 8100, 23: 8850, 24: 10700, 26: 13500,
			40: 25000, 41: 24000, 42: 20500, 72: 18000, 73: 17000, 74: 18000,
		},
		7: {
			5: 15800, 7: 1640, 13: 13800, 14: 17000, 22: 4270, 23: 4950, 24: 5650, 26: 7190,
			40: 24000, 41: 25000, 42: 25800, 72: 14000, 73: 15500,
		},
		14: {73: 1490},
		16: {79: 2200},
	},
	"Lb": {
		29: {29: 6750},
	},
	"La": {
		21: {21: 4750},
		22: {22: 4550},
		23: {23: 4370},
		24: {24: 3850},
		25: {25: 3340},
		26: {26: 3350},
		27: {27: 3260},
		28: {28: 3560},
		29: {29: 1755},
		33: {31: 7000},
		42: {79: 2200},
	},
	"Mb": {
		64: {64: 4700},
		72: {72: 3000},
		73: {73: 2500},
		74: {74: 2080},
		79: {78: 2550},
		80: {79: 2170},
	},
}

var lines = func() []string {
	var ls []string
	for l := range data {
		ls = append(ls, l)
	}
	return ls
}()

// Table is the Pouchou and Pichoir (1991) table. The zero value is
// ready to use.
type Table struct{}

// Available reports whether the table has a MAC of absorberZ for the
// given line of emitterZ. Line spellings are resolved with mac.LineKey.
func (Table) Available(absorberZ, emitterZ int, line string) bool {
	_, ok := Table{}.EmitterMAC(absorberZ, emitterZ, line)
	return ok
}

// EmitterMAC implements mac.EmitterTable.
func (Table) EmitterMAC(absorberZ, emitterZ int, line string) (float64, bool) {
	v, ok := data[mac.LineKey(line, lines)][emitterZ][absorberZ]
	return v, ok
}

// Entry is one tabulated value.
type Entry struct {
	Line      string
	EmitterZ  int
	AbsorberZ int
	MAC       float64
}

// Entries returns every tabulated value.
func (Table) Entries() []Entry {
	var es []Entry
	for l, em := range data {
		for e, ab := range em {
			for a, v := range ab {
				es = append(es, Entry{Line: l, EmitterZ: e, AbsorberZ: a, MAC: v})
			}
		}
	}
	return es
}
