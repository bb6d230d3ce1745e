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

package xrange

import (
	"errors"
	"math"
	"testing"

	"github.com/epmatools/xraymac/mac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var linear = mac.ModelFunc(func(e float64, z int) (float64, error) {
	return 10 * float64(z), nil
})

func TestParseCompound(t *testing.T) {
	tests := []struct {
		in   string
		want Compound
	}{
		{in: "Cu:0.8,Zn:0.2", want: Compound{{29, 0.8}, {30, 0.2}}},
		{in: "Au", want: Compound{{79, 1}}},
		{in: " copper : 0.5 , 30:0.5 ", want: Compound{{29, 0.5}, {30, 0.5}}},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			c, err := ParseCompound(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.want, c)
		})
	}
	for _, bad := range []string{"", "Xx:1", "Cu:abc", "Cu:-0.1", "Cu:0"} {
		_, err := ParseCompound(bad)
		assert.Error(t, err, bad)
	}
}

func TestCompoundMAC(t *testing.T) {
	mu, err := CompoundMAC(linear, Compound{{29, 0.8}, {30, 0.2}}, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 0.8*290+0.2*300, mu, 1e-9)

	failing := mac.ModelFunc(func(e float64, z int) (float64, error) {
		return 0, errors.New("boom")
	})
	_, err = CompoundMAC(failing, Compound{{29, 1}}, 1000)
	assert.Error(t, err)
}

func TestNormalized(t *testing.T) {
	c := Compound{{29, 2}, {30, 6}}
	n := c.Normalized()
	assert.InDelta(t, 0.25, n[0].WeightFraction, 1e-12)
	assert.InDelta(t, 0.75, n[1].WeightFraction, 1e-12)
	assert.Equal(t, 2.0, c[0].WeightFraction)
}

func TestMeanDensity(t *testing.T) {
	rho, err := MeanDensity(Compound{{29, 1}})
	require.NoError(t, err)
	assert.InDelta(t, 8.96, rho, 1e-9)

	rho, err = MeanDensity(Compound{{29, 0.5}, {79, 0.5}})
	require.NoError(t, err)
	assert.InDelta(t, 1/(0.5/8.96+0.5/19.3), rho, 1e-9)

	_, err = MeanDensity(Compound{{200, 1}})
	assert.Error(t, err)
}

func TestRange(t *testing.T) {
	assert.InDelta(t, 1/(50.0*2), AbsorptionLength(50, 2), 1e-15)
	assert.InDelta(t, math.Log(100)/100*1e7, Range(50, 2, DefaultLimit), 1e-6)

	r, err := RangeAt(linear, Compound{{29, 1}}, 8.96, 8048, DefaultLimit)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(100)/(290*8.96)*1e7, r, 1e-6)
}
