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

	"github.com/epmatools/xraymac/edges"
	"github.com/epmatools/xraymac/mac"
)

// ErrRegionNotFound means that an energy could not be placed in any
// region, which only happens with corrupt edge data or a NaN energy.
var ErrRegionNotFound = errors.New("region not found")

// Region is one of the 11 energy intervals delimited by the K, L1-L3,
// M1-M5 and N1 edges. Region 1 is at or above the K edge, region r is
// (edge r, edge r-1] and region 11 is at or below the N1 edge.
type Region int

// Valid reports whether r is between 1 and 11.
func (r Region) Valid() bool { return r >= 1 && r <= 11 }

func (r Region) String() string { return fmt.Sprintf("region %d", int(r)) }

// Near-edge warning window, in eV relative to the edge.
const (
	nearEdgeBelow = -5.0
	nearEdgeAbove = 20.0
)

// Classify returns the region of energyEV for element z. Edges that the
// element does not have (energy 0) cannot be exceeded by a positive
// energy, so their regions are skipped. A NearEdge warning is returned
// for every tested edge that is close to energyEV.
func Classify(t mac.EdgeTable, z int, energyEV float64) (Region, []mac.Warning, error) {
	var ws []mac.Warning
	var upper float64
	for i, s := range edges.HeinrichEdges {
		edge, err := t.EdgeEnergy(z, s)
		if err != nil {
			return 0, ws, fmt.Errorf("heinrich: region of Z=%d: %w", z, err)
		}
		if d := energyEV - edge; d >= nearEdgeBelow && d <= nearEdgeAbove {
			ws = append(ws, mac.Warning{Kind: mac.NearEdge, Z: z, EnergyEV: energyEV, ReferenceEV: edge})
		}
		if i == 0 {
			if energyEV >= edge {
				return 1, ws, nil
			}
		} else if upper >= energyEV && energyEV > edge {
			return Region(i + 1), ws, nil
		}
		upper = edge
	}
	if upper >= energyEV {
		return 11, ws, nil
	}
	return 0, ws, fmt.Errorf("heinrich: Z=%d, E=%g eV, N1 edge=%g eV: %w", z, energyEV, upper, ErrRegionNotFound)
}
