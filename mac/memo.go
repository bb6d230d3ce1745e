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
	"math"
	"sync"

	"github.com/golang/groupcache/lru"
)

type memoKey struct {
	z int
	e float64
}

type memoResult struct {
	v   float64
	err error
}

// Memoized is a Model that remembers the most recent results of
// another Model, keyed by the exact (Z, energy) pair.
type Memoized struct {
	m Model

	mu    sync.Mutex
	cache *lru.Cache

	hits, misses int
}

// Memoize wraps m in a least-recently-used cache holding up to size
// results. Warnings reach m's sink only when a value is first computed.
// A size below 1 disables caching. NaN energies are never cached.
func Memoize(m Model, size int) *Memoized {
	mm := &Memoized{m: m}
	if size > 0 {
		mm.cache = lru.New(size)
	}
	return mm
}

// MAC returns the cached value for (energyEV, z), computing it with the
// wrapped model if needed.
func (mm *Memoized) MAC(energyEV float64, z int) (float64, error) {
	if mm.cache == nil || math.IsNaN(energyEV) {
		mm.mu.Lock()
		mm.misses++
		mm.mu.Unlock()
		return mm.m.MAC(energyEV, z)
	}
	k := memoKey{z: z, e: energyEV}
	mm.mu.Lock()
	if r, ok := mm.cache.Get(k); ok {
		mm.hits++
		mm.mu.Unlock()
		res := r.(memoResult)
		return res.v, res.err
	}
	mm.misses++
	mm.mu.Unlock()

	v, err := mm.m.MAC(energyEV, z)

	mm.mu.Lock()
	mm.cache.Add(k, memoResult{v: v, err: err})
	mm.mu.Unlock()
	return v, err
}

// Stats returns the number of cache hits and misses so far.
func (mm *Memoized) Stats() (hits, misses int) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	return mm.hits, mm.misses
}
