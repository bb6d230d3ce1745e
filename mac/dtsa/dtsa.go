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

// Package dtsa implements the variant of the Heinrich (1987) MAC
// parameterization used by the DTSA microanalysis software.
//
// The coefficients are those of package heinrich written as Horner
// polynomials, with three differences: heavy elements have their own
// region 1 fits, the ramp below the N1 edge ends at 10 eV instead of a
// Z-dependent cutoff, and negative results are returned as is.
//
// Between the M1 and L3 edges, C ends its Horner polynomial with
// ·Z + c₀ as in the Heinrich paper. The DTSA listing writes that step as
// ·(Z + c₀), which drives the MAC far below zero (Cu at 500 eV:
// −227003 cm²/g instead of 6029.65 cm²/g).
//
// New uses the DTSA edge table. DTSA itself evaluates the model with the
// Chantler FFast edges; pass an edges.ReadFFast table as Edges to match
// it.
package dtsa

import (
	"fmt"
	"math"

	"github.com/epmatools/xraymac/edges"
	"github.com/epmatools/xraymac/elements"
	"github.com/epmatools/xraymac/mac"
)

const (
	// MinEnergy is the energy in eV at or below which the model returns
	// mac.Opaque.
	MinEnergy = 10.0

	// Unfitted is returned for elements outside of 3 ≤ Z ≤ 95.
	Unfitted = 0.001

	lowEnergyLimit = 180.0
	rampCutoff     = 10.0
)

// Model evaluates DTSA MACs.
type Model struct {
	Edges  mac.EdgeTable
	Masses mac.MassTable
	Sink   mac.Sink
}

// New returns a Model using the DTSA edge energies and the standard
// atomic masses.
func New() *Model {
	return &Model{Edges: edges.DTSA(), Masses: elements.Table{}}
}

// edgeSet holds the edges of one element in edges.HeinrichEdges order.
type edgeSet [10]float64

func (m *Model) edges(z int) (edgeSet, error) {
	var es edgeSet
	for i, s := range edges.HeinrichEdges {
		e, err := m.Edges.EdgeEnergy(z, s)
		if err != nil {
			return es, fmt.Errorf("dtsa: %w", err)
		}
		es[i] = e
	}
	return es, nil
}

// params are the fitted parameters of one absorption region.
type params struct {
	c, n, a, bias float64
}

// MAC implements mac.Model.
func (m *Model) MAC(energyEV float64, z int) (float64, error) {
	if energyEV <= MinEnergy {
		return mac.Opaque, nil
	}
	if z < 3 || z > 95 {
		return Unfitted, nil
	}
	if energyEV <= lowEnergyLimit && m.Sink != nil {
		m.Sink.Warn(mac.Warning{Kind: mac.LowEnergy, Z: z, EnergyEV: energyEV, ReferenceEV: lowEnergyLimit})
	}
	es, err := m.edges(z)
	if err != nil {
		return 0, err
	}
	mass, err := m.Masses.AtomicMass(z)
	if err != nil {
		return 0, fmt.Errorf("dtsa: %w", err)
	}
	p := fit(float64(z), energyEV, es)

	zf := float64(z)
	z4a := zf * zf * zf * zf / mass
	n1 := es[9]
	if energyEV > n1 {
		mu := p.c * math.Pow(12397.0/energyEV, p.n) * z4a
		return mu * (1 - math.Exp((p.bias-energyEV)/p.a)), nil
	}
	mu := p.c * math.Pow(12397.0/energyEV, p.n) * z4a * (1 - math.Exp((p.bias-n1)/p.a))
	return 1.02 * mu * (energyEV - rampCutoff) / (n1 - rampCutoff), nil
}

// fit selects the region parameters for energy e.
func fit(z, e float64, es edgeSet) params {
	k, l1, l2, l3 := es[0], es[1], es[2], es[3]
	m1, m2, m3, m4, m5 := es[4], es[5], es[6], es[7], es[8]

	switch {
	case e > k:
		if z < 6 {
			return params{
				c:    1.808599e-3*z - 2.87536e-4,
				a:    (-14.15422*z+155.6055)*z + 24.4545,
				bias: 18.2*z - 103.0,
				n:    (-0.01273815*z+0.02652873)*z + 3.34745,
			}
		}
		p := params{
			c: 5.253e-3 + z*(1.33257e-3+z*(-7.5937e-5+z*(1.69357e-6+-1.3975e-8*z))),
			a: ((-0.152624*z+6.52)*z + 47.0) * z,
			n: 3.112 - 0.0121*z,
		}
		if z >= 50 {
			p.a = ((-0.015*z+3.52)*z + 47) * z
		}
		if z >= 57 {
			p.c = 2.0e-4 + (1.0e-4-z)*z
		}
		return p

	case e > l3:
		p := params{
			c: -0.0924e-3 + z*(0.141478e-3+z*(-0.00524999e-3+z*(9.85296e-8+z*(-9.07306e-10+z*3.19245e-12)))),
			a: (((-1.16286e-4*z+0.01253775)*z+0.067429)*z + 17.8096) * z,
			n: (-4.982e-5*z+1.889e-3)*z + 2.7575,
		}
		if l1 > e && e > l2 {
			p.c *= 0.858
		}
		if e < l2 {
			p.c *= 0.8933 + z*(-8.29e-3+6.38e-5*z)
		}
		return p

	case e > m1:
		p := params{
			n: ((4.4509e-6*z-1.08246e-3)*z+0.084597)*z + 0.5385,
			a: (((-1.8641019e-4*z+2.63199611e-2)*z-0.822863477)*z + 10.2575657) * z,
		}
		if z < 30 {
			p.c = (((7.2773258e-9*z-1.1641145e-6)*z+6.9602789e-5)*z-1.8517159e-3)*z + 1.889757e-2
		} else {
			p.c = (((1.497763e-10*z-4.0585911e-8)*z+4.0424792e-6)*z-1.73663566e-4)*z + 3.0039e-3
		}
		if z < 61 {
			p.bias = (((-1.683474e-4*z+0.018972278)*z-0.536839169)*z + 5.654) * z
		} else {
			p.bias = (((3.1779619e-3*z-0.699473097)*z+51.114164)*z - 1232.4022) * z
		}
		return p

	case e >= m5:
		p := params{
			a:    (4.62 - 0.04*z) * z,
			c:    ((-1.29086e-9*z+2.209365e-7)*z-7.83544e-6)*z + 7.7708e-5,
			bias: ((3.78e-4*z-0.052)*z + 2.51) * m4,
			n:    3.0 - 0.004*z,
		}
		p.c *= ((4.865e-6*z-0.0006561)*z+0.0162)*z + 1.406
		switch {
		case e >= m2:
			p.c *= (-0.0001285*z+0.01955)*z + 0.584
		case e >= m3:
			p.c *= 0.001366*z + 1.082
		case e >= m4:
			p.c *= 0.95
		default:
			p.c *= (4.0664e-4*z-4.8e-2)*z + 1.6442
		}
		return p
	}

	return params{
		c:    1.08 * (((-6.69827e-9*z+1.707073e-6)*z-1.4653e-4)*z + 4.3156e-3),
		a:    ((5.39309e-3*z-0.61239)*z + 19.64) * z,
		bias: 4.5*z - 113.0,
		n:    0.3736 + 0.02401*z,
	}
}
