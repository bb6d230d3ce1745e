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
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// WarningKind classifies a Warning.
type WarningKind int

const (
	// NearEdge means the energy is within the unstable zone of
	// -5 to +20 eV around an absorption edge.
	NearEdge WarningKind = iota + 1
	// LowEnergy means the energy is at or below the validity limit
	// of the model.
	LowEnergy
	// BelowM5 means the energy is below the M5 edge of the absorber.
	BelowM5
	// BetweenM4M5 means the energy is between the M4 and M5 edges of
	// an absorber with Z < 70.
	BetweenM4M5
)

func (k WarningKind) String() string {
	switch k {
	case NearEdge:
		return "near_edge"
	case LowEnergy:
		return "low_energy"
	case BelowM5:
		return "below_m5"
	case BetweenM4M5:
		return "between_m4_m5"
	default:
		return fmt.Sprintf("WarningKind(%d)", int(k))
	}
}

// Warning is an advisory diagnostic raised while computing a MAC.
// It never interrupts the computation.
type Warning struct {
	Kind     WarningKind
	Z        int
	EnergyEV float64

	// ReferenceEV is the edge energy for NearEdge and the
	// limit for LowEnergy. It is unused by the other kinds.
	ReferenceEV float64
}

func (w Warning) String() string {
	switch w.Kind {
	case NearEdge:
		return fmt.Sprintf("X-ray energy %0.1f eV is near the edge energy %0.1f eV by %0.1f eV",
			w.EnergyEV, w.ReferenceEV, w.EnergyEV-w.ReferenceEV)
	case LowEnergy:
		return fmt.Sprintf("X-ray energy %0.1f eV is very low, less than limit %0.1f eV", w.EnergyEV, w.ReferenceEV)
	case BelowM5:
		return fmt.Sprintf("X-ray energy %0.1f eV is below the M5 edge of Z=%d", w.EnergyEV, w.Z)
	case BetweenM4M5:
		return fmt.Sprintf("X-ray energy %0.1f eV is between the M4 and M5 edges of Z=%d", w.EnergyEV, w.Z)
	}
	return fmt.Sprintf("%v: Z=%d E=%g eV", w.Kind, w.Z, w.EnergyEV)
}

// Sink receives warnings. Implementations must be safe for
// concurrent use.
type Sink interface {
	Warn(Warning)
}

// LogSink writes warnings to a logrus logger.
type LogSink struct {
	Log logrus.FieldLogger
}

// Warn logs w at the warning level.
func (s LogSink) Warn(w Warning) {
	s.Log.WithFields(logrus.Fields{
		"kind":         w.Kind.String(),
		"z":            w.Z,
		"energy_eV":    w.EnergyEV,
		"reference_eV": w.ReferenceEV,
	}).Warn(w.String())
}

// Collector accumulates warnings in memory.
type Collector struct {
	mu sync.Mutex
	w  []Warning
}

// Warn appends w.
func (c *Collector) Warn(w Warning) {
	c.mu.Lock()
	c.w = append(c.w, w)
	c.mu.Unlock()
}

// Warnings returns a copy of the collected warnings.
func (c *Collector) Warnings() []Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Warning(nil), c.w...)
}

// Len returns the number of collected warnings.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.w)
}

// Reset discards the collected warnings.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.w = nil
	c.mu.Unlock()
}

// Tee sends each warning to all of its sinks in order.
type Tee []Sink

// Warn forwards w.
func (t Tee) Warn(w Warning) {
	for _, s := range t {
		s.Warn(w)
	}
}

// Emit sends each warning to s. A nil sink discards them.
func Emit(s Sink, ws []Warning) {
	if s == nil {
		return
	}
	for _, w := range ws {
		s.Warn(w)
	}
}
