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

package mac

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Point is an (absorber, energy) pair.
type Point struct {
	Z        int
	EnergyEV float64
}

// ElementError records the failure of one element of a batch.
type ElementError struct {
	Index int
	Point Point
	Err   error
}

func (e ElementError) Error() string {
	return fmt.Sprintf("[%d] Z=%d E=%g eV: %v", e.Index, e.Point.Z, e.Point.EnergyEV, e.Err)
}

// Unwrap returns the cause.
func (e ElementError) Unwrap() error { return e.Err }

// BatchError lists the elements of a batch that failed, in index order.
// The corresponding results are NaN; all other results are valid.
type BatchError []ElementError

func (e BatchError) Error() string {
	if len(e) == 1 {
		return "mac: 1 failed evaluation: " + e[0].Error()
	}
	s := make([]string, len(e))
	for i, ee := range e {
		s[i] = ee.Error()
	}
	return fmt.Sprintf("mac: %d failed evaluations: %s", len(e), strings.Join(s, "; "))
}

// Vector evaluates m at each energy for element z. The result has the same
// length as energies and each element equals m.MAC(energies[i], z).
// A failing element does not stop the others: its result is NaN and the
// returned error is a BatchError.
func Vector(m Model, energies []float64, z int) ([]float64, error) {
	out := make([]float64, len(energies))
	var errs BatchError
	for i, e := range energies {
		v, err := m.MAC(e, z)
		if err != nil {
			errs = append(errs, ElementError{Index: i, Point: Point{Z: z, EnergyEV: e}, Err: err})
			v = math.NaN()
		}
		out[i] = v
	}
	if len(errs) > 0 {
		return out, errs
	}
	return out, nil
}

// Batch evaluates m at each point using up to workers goroutines
// (GOMAXPROCS when workers <= 0). m must be safe for concurrent use.
// Per-point failures are reported as for Vector. If ctx is
// canceled, the remaining points are skipped and the context's error is
// returned.
func Batch(ctx context.Context, m Model, points []Point, workers int) ([]float64, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	if workers > len(points) {
		workers = len(points)
	}
	out := make([]float64, len(points))
	errs := make([]BatchError, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < len(points); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				p := points[i]
				v, err := m.MAC(p.EnergyEV, p.Z)
				if err != nil {
					errs[w] = append(errs[w], ElementError{Index: i, Point: p, Err: err})
					v = math.NaN()
				}
				out[i] = v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var all BatchError
	for _, e := range errs {
		all = append(all, e...)
	}
	if len(all) > 0 {
		sort.Slice(all, func(i, j int) bool { return all[i].Index < all[j].Index })
		return out, all
	}
	return out, nil
}
