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

// Package grid holds energy grids on which MAC curves are sampled.
package grid

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io/ioutil"
	"math"
	"sort"

	"github.com/epmatools/xraymac/edges"
	"github.com/epmatools/xraymac/mac"
	"gonum.org/v1/gonum/floats"
)

// Grid is an ordered set of energy nodes in eV.
type Grid struct {
	energies []float64
	log      bool
}

// Linear returns n nodes evenly spaced between lo and hi inclusive.
func Linear(lo, hi float64, n int) (*Grid, error) {
	if err := check(lo, hi, n); err != nil {
		return nil, err
	}
	return &Grid{energies: floats.Span(make([]float64, n), lo, hi)}, nil
}

// Log returns n nodes evenly spaced in log(E) between lo and hi
// inclusive. Intervals created by Adapt are split geometrically.
func Log(lo, hi float64, n int) (*Grid, error) {
	if err := check(lo, hi, n); err != nil {
		return nil, err
	}
	if lo <= 0 {
		return nil, fmt.Errorf("grid: log grid needs a positive lower bound, got %g", lo)
	}
	return &Grid{energies: floats.LogSpan(make([]float64, n), lo, hi), log: true}, nil
}

func check(lo, hi float64, n int) error {
	if n < 2 {
		return fmt.Errorf("grid: need at least 2 nodes, got %d", n)
	}
	if !(lo < hi) {
		return fmt.Errorf("grid: invalid range [%g, %g]", lo, hi)
	}
	return nil
}

// Len is the number of nodes.
func (g *Grid) Len() int { return len(g.energies) }

// At returns node i.
func (g *Grid) At(i int) float64 { return g.energies[i] }

// Energies returns a copy of the nodes.
func (g *Grid) Energies() []float64 {
	e := make([]float64, len(g.energies))
	copy(e, g.energies)
	return e
}

// AdaptFunc determines whether the interval between two neighboring
// nodes should be split in two, combined with the following interval,
// or neither.
type AdaptFunc func(lo, hi float64) SplitOrCombine

// SplitOrCombine specifies whether a grid interval should be
// split, combined with its neighbor, or left alone.
type SplitOrCombine int

const (
	// Neither specifies that the interval should be left alone.
	Neither SplitOrCombine = iota

	// Split specifies that the interval should be split at its midpoint.
	Split

	// Combine specifies that the interval should be merged with the next
	// one by removing their shared node. The last interval is never
	// combined.
	Combine
)

// Adapt applies f to every interval and rebuilds the grid, repeating
// until no interval changes or maxPasses passes have run. It returns the
// number of passes that changed the grid.
func (g *Grid) Adapt(f AdaptFunc, maxPasses int) int {
	var changed int
	for pass := 0; pass < maxPasses; pass++ {
		if !g.adaptOnce(f) {
			break
		}
		changed++
	}
	return changed
}

func (g *Grid) adaptOnce(f AdaptFunc) bool {
	e := g.energies
	if len(e) < 2 {
		return false
	}
	out := make([]float64, 1, len(e))
	out[0] = e[0]
	var changed bool
	for i := 0; i < len(e)-1; i++ {
		lo, hi := e[i], e[i+1]
		switch f(lo, hi) {
		case Split:
			out = append(out, g.mid(lo, hi), hi)
			changed = true
		case Combine:
			if i+2 < len(e) {
				changed = true
				continue
			}
			out = append(out, hi)
		default:
			out = append(out, hi)
		}
	}
	g.energies = out
	return changed
}

func (g *Grid) mid(lo, hi float64) float64 {
	if g.log {
		return math.Sqrt(lo * hi)
	}
	return (lo + hi) / 2
}

// NearEdges returns an AdaptFunc that splits intervals wider than
// window which contain, or lie within window eV of, an absorption
// edge of element z.
func NearEdges(t mac.EdgeTable, z int, window float64) (AdaptFunc, error) {
	var es []float64
	for _, s := range edges.Subshells() {
		e, err := t.EdgeEnergy(z, s)
		if err != nil {
			return nil, fmt.Errorf("grid: %w", err)
		}
		if e > 0 {
			es = append(es, e)
		}
	}
	return func(lo, hi float64) SplitOrCombine {
		if hi-lo <= window {
			return Neither
		}
		for _, e := range es {
			if e > lo-window && e < hi+window {
				return Split
			}
		}
		return Neither
	}, nil
}

type wire struct {
	Energies []float64
	Log      bool
}

// MarshalBinary serializes the grid.
func (g *Grid) MarshalBinary() ([]byte, error) {
	var b bytes.Buffer
	if err := gob.NewEncoder(&b).Encode(wire{g.energies, g.log}); err != nil {
		return nil, fmt.Errorf("grid: %v", err)
	}
	return b.Bytes(), nil
}

// UnmarshalBinary initializes the grid from data written by
// MarshalBinary.
func (g *Grid) UnmarshalBinary(data []byte) error {
	var w wire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return fmt.Errorf("grid: %v", err)
	}
	if len(w.Energies) < 2 || !sort.Float64sAreSorted(w.Energies) {
		return fmt.Errorf("grid: invalid encoded grid of %d nodes", len(w.Energies))
	}
	g.energies, g.log = w.Energies, w.Log
	return nil
}

// WriteFile stores the grid in file.
func (g *Grid) WriteFile(file string) error {
	b, err := g.MarshalBinary()
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(file, b, 0644); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	return nil
}

// ReadFile loads a grid stored by WriteFile. A missing file gives an
// error matching os.ErrNotExist.
func ReadFile(file string) (*Grid, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	g := new(Grid)
	if err := g.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return g, nil
}
