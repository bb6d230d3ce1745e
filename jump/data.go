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

package jump

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/epmatools/xraymac/edges"
	"github.com/epmatools/xraymac/elements"
)

// ErrMissing is returned when a Table lacks a value.
var ErrMissing = errors.New("missing atomic data")

// Element holds the atomic data of one element in a Table.
type Element struct {
	// JumpRatios are keyed by subshell label (K, L1, L2, L3).
	JumpRatios map[string]float64 `toml:"jump_ratios"`

	F12 float64 `toml:"f12"`
	F13 float64 `toml:"f13"`
	F23 float64 `toml:"f23"`

	// RadiativeRates holds n_KL1, n_KL2 and n_KL3 keyed by L subshell.
	RadiativeRates map[string]float64 `toml:"radiative_rates"`
}

// Table is a Data implementation backed by per-element values, usually
// read from a TOML file, and an edge table.
type Table struct {
	Edges    EdgeTable
	Elements map[int]Element
}

// ReadTable decodes a TOML document with one table per element symbol:
//
//	[Au]
//	f12 = 0.14
//	f13 = 0.53
//	f23 = 0.122
//	[Au.jump_ratios]
//	K = 5.0
//	L1 = 1.16
//	[Au.radiative_rates]
//	L2 = 0.29
func ReadTable(r io.Reader, t EdgeTable) (*Table, error) {
	var raw map[string]Element
	if _, err := toml.DecodeReader(r, &raw); err != nil {
		return nil, fmt.Errorf("jump: decoding atomic data: %v", err)
	}
	tab := &Table{Edges: t, Elements: make(map[int]Element, len(raw))}
	for sym, el := range raw {
		z, err := elements.AtomicNumber(sym)
		if err != nil {
			return nil, fmt.Errorf("jump: atomic data: %w", err)
		}
		tab.Elements[z] = el
	}
	return tab, nil
}

// EdgeEnergy implements Data.
func (t *Table) EdgeEnergy(z int, s edges.Subshell) (float64, error) {
	return t.Edges.EdgeEnergy(z, s)
}

func (t *Table) element(z int) (Element, error) {
	el, ok := t.Elements[z]
	if !ok {
		return el, fmt.Errorf("Z=%d: %w", z, ErrMissing)
	}
	return el, nil
}

// JumpRatio implements Data.
func (t *Table) JumpRatio(z int, s edges.Subshell) (float64, error) {
	el, err := t.element(z)
	if err != nil {
		return 0, err
	}
	r, ok := el.JumpRatios[s.String()]
	if !ok {
		return 0, fmt.Errorf("Z=%d jump ratio r_%v: %w", z, s, ErrMissing)
	}
	return r, nil
}

// CosterKronig implements Data. Absent probabilities are 0.
func (t *Table) CosterKronig(z int, c CosterKronig) (float64, error) {
	el, err := t.element(z)
	if err != nil {
		return 0, err
	}
	switch c {
	case F12:
		return el.F12, nil
	case F13:
		return el.F13, nil
	case F23:
		return el.F23, nil
	}
	return 0, fmt.Errorf("Z=%d %v: %w", z, c, ErrMissing)
}

// RadiativeRate implements Data. Absent rates are 0.
func (t *Table) RadiativeRate(z int, s edges.Subshell) (float64, error) {
	el, err := t.element(z)
	if err != nil {
		return 0, err
	}
	return el.RadiativeRates[s.String()], nil
}
