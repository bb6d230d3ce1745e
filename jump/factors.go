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
	"fmt"

	"github.com/epmatools/xraymac/edges"
)

// CosterKronig identifies an L-shell Coster–Kronig transition.
type CosterKronig int

// The Coster–Kronig transitions between L subshells.
const (
	F12 CosterKronig = iota + 1
	F13
	F23
)

func (c CosterKronig) String() string {
	switch c {
	case F12:
		return "f12"
	case F13:
		return "f13"
	case F23:
		return "f23"
	}
	return fmt.Sprintf("CosterKronig(%d)", int(c))
}

// EdgeTable provides edge energies in eV, 0 for absent edges.
type EdgeTable interface {
	EdgeEnergy(z int, s edges.Subshell) (float64, error)
}

// Data supplies the atomic data needed by Factors.
type Data interface {
	EdgeTable

	// JumpRatio returns the absorption jump ratio r of subshell s.
	JumpRatio(z int, s edges.Subshell) (float64, error)

	// CosterKronig returns a Coster–Kronig transition probability.
	CosterKronig(z int, t CosterKronig) (float64, error)

	// RadiativeRate returns the relative rate n_KLi of the K-Li
	// radiative transition, for s in L1, L2 and L3.
	RadiativeRate(z int, s edges.Subshell) (float64, error)
}

// Factors computes jump factors from Data.
type Factors struct {
	Data Data
}

// Factor returns the jump factor of subshell s of element z at
// energyEV. M1 and subshells above M5 have a factor of 0.
func (f Factors) Factor(z int, s edges.Subshell, energyEV float64) (float64, error) {
	switch s {
	case edges.K, edges.L1, edges.L2, edges.L3:
		e := evaluator{Data: f.Data, z: z}
		v := e.factor(s, energyEV)
		return v, e.err
	case edges.M2, edges.M3, edges.M4:
		edge, err := f.Data.EdgeEnergy(z, s)
		if err != nil {
			return 0, fmt.Errorf("jump: %w", err)
		}
		if edge <= 0 {
			return 0, nil
		}
		return M234(f.Data, z, energyEV)
	case edges.M5:
		return MV(f.Data, z, energyEV)
	}
	return 0, nil
}

// evaluator keeps the first error of a recursive evaluation.
type evaluator struct {
	Data
	z   int
	err error
}

func (e *evaluator) edge(s edges.Subshell) float64 {
	v, err := e.EdgeEnergy(e.z, s)
	e.keep(err)
	return v
}

func (e *evaluator) ratio(s edges.Subshell) float64 {
	v, err := e.JumpRatio(e.z, s)
	e.keep(err)
	return v
}

func (e *evaluator) ck(t CosterKronig) float64 {
	v, err := e.CosterKronig(e.z, t)
	e.keep(err)
	return v
}

func (e *evaluator) rate(s edges.Subshell) float64 {
	v, err := e.RadiativeRate(e.z, s)
	e.keep(err)
	return v
}

func (e *evaluator) keep(err error) {
	if err != nil && e.err == nil {
		e.err = fmt.Errorf("jump: Z=%d: %w", e.z, err)
	}
}

// above reports whether energy is at or above the edge of s and the edge
// exists.
func (e *evaluator) above(s edges.Subshell, energy float64) bool {
	edge := e.edge(s)
	return edge > 0 && energy >= edge
}

// own returns (r−1)/r for subshell s.
func (e *evaluator) own(s edges.Subshell) float64 {
	r := e.ratio(s)
	return (r - 1) / r
}

// at returns the factor of s evaluated at its own edge.
func (e *evaluator) at(s edges.Subshell) float64 {
	return e.factor(s, e.edge(s))
}

func (e *evaluator) factor(s edges.Subshell, energy float64) float64 {
	if e.err != nil || !e.above(s, energy) {
		return 0
	}
	j := e.own(s)
	switch s {
	case edges.L1:
		if e.above(edges.K, energy) {
			j = j/e.ratio(edges.K) + e.at(edges.K)*e.rate(edges.L1)
		}
	case edges.L2:
		if e.above(edges.L1, energy) {
			f12 := e.ck(F12)
			j = j/e.ratio(edges.L1) + e.at(edges.L1)*f12
			if e.above(edges.K, energy) {
				j = j/e.ratio(edges.K) + e.at(edges.K)*(e.rate(edges.L2)+e.rate(edges.L1)*f12)
			}
		}
	case edges.L3:
		if e.above(edges.L2, energy) {
			f23 := e.ck(F23)
			j = j/e.ratio(edges.L2) + e.at(edges.L2)*f23
			if e.above(edges.L1, energy) {
				f12, f13 := e.ck(F12), e.ck(F13)
				j = j/e.ratio(edges.L1) + e.at(edges.L1)*(f13+f12*f23)
				if e.above(edges.K, energy) {
					j = j/e.ratio(edges.K) + e.at(edges.K)*(e.rate(edges.L3)+e.rate(edges.L2)*f23+e.rate(edges.L1)*f13)
				}
			}
		}
	}
	if e.err != nil {
		return 0
	}
	return j
}

// step is a piecewise constant factor: value applies below edge.
type step struct {
	edge  edges.Subshell
	value float64
}

var (
	m234Steps = []step{
		{edges.M5, 0}, {edges.M4, 0}, {edges.M3, 0.33}, {edges.M2, 0.29}, {edges.M1, 0.33},
		{edges.L3, 0.30}, {edges.L2, 0.20}, {edges.L1, 0.54}, {edges.K, 0.63},
	}
	mvLanthanides = []step{
		{edges.M5, 0}, {edges.M4, 0.67}, {edges.M3, 0.55}, {edges.M2, 0.59}, {edges.M1, 0.56},
		{edges.L3, 0.52}, {edges.L2, 1.01}, {edges.L1, 0.86}, {edges.K, 0.92},
	}
	mvHeavy = []step{
		{edges.M5, 0}, {edges.M4, 0.56}, {edges.M3, 0.39}, {edges.M2, 0.45}, {edges.M1, 0.43},
		{edges.L3, 0.40}, {edges.L2, 0.92}, {edges.L1, 0.68}, {edges.K, 0.83},
	}
)

// stepped returns the value of the first step whose edge exists and is
// above energy. Above the K edge it returns aboveK; exactly at the K
// edge it returns 0.
func stepped(t EdgeTable, z int, energy float64, steps []step, aboveK float64) (float64, error) {
	for _, st := range steps {
		edge, err := t.EdgeEnergy(z, st.edge)
		if err != nil {
			return 0, fmt.Errorf("jump: %w", err)
		}
		if edge > 0 && energy < edge {
			return st.value, nil
		}
		if st.edge == edges.K && edge > 0 && energy > edge {
			return aboveK, nil
		}
	}
	return 0, nil
}

// M234 returns the approximate jump factor shared by the M2, M3 and M4
// subshells.
func M234(t EdgeTable, z int, energyEV float64) (float64, error) {
	return stepped(t, z, energyEV, m234Steps, 0.20)
}

// MV returns the approximate jump factor of the M5 subshell. It is
// tabulated for 57 ≤ Z ≤ 94 only and is 0 otherwise.
func MV(t EdgeTable, z int, energyEV float64) (float64, error) {
	switch {
	case z >= 57 && z <= 78:
		return stepped(t, z, energyEV, mvLanthanides, 0.24)
	case z >= 79 && z <= 94:
		return stepped(t, z, energyEV, mvHeavy, 0.24)
	}
	return 0, nil
}
