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

package tabulated

import (
	"archive/zip"
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/epmatools/xraymac/elements"
)

// NA is the Avogadro constant used to convert PENELOPE cross sections.
const NA = 6.02214076e23

var penelopeShells = [...]string{
	"K", "L1", "L2", "L3", "M1", "M2", "M3", "M4", "M5",
	"N1", "N2", "N3", "N4", "N5", "N6", "N7",
	"O1", "O2", "O3", "O4", "O5", "O6", "O7",
	"P1", "P2", "P3", "P4", "P5", "Q1", "outer shells",
}

// PenelopeShell returns the name of a PENELOPE shell number (1 is K).
func PenelopeShell(id int) string {
	if id < 1 || id > len(penelopeShells) {
		return fmt.Sprintf("shell %d", id)
	}
	return penelopeShells[id-1]
}

// PhotoElectric holds the photoelectric cross sections of one element
// from a PENELOPE pdgphZZ.p18 file.
type PhotoElectric struct {
	Z            int
	ShellIDs     []int
	IonizationEV []float64
	EnergiesEV   []float64

	// Cross sections in barn/atom. PartialsBarn[i][j] is for energy i and
	// shell ShellIDs[j].
	TotalsBarn   []float64
	PartialsBarn [][]float64
}

// BarnToCM2G returns the factor converting barn/atom to cm²/g.
func BarnToCM2G(atomicMass float64) float64 {
	return 1.0e-24 * NA / atomicMass
}

// ReadPenelope parses a PENELOPE photoelectric cross-section file.
func ReadPenelope(r io.Reader) (*PhotoElectric, error) {
	p := new(PhotoElectric)
	ns, nge := 0, 0
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		switch {
		case strings.HasPrefix(text, "# IZ, NS, NGE:"):
			f := strings.Fields(strings.TrimPrefix(text, "# IZ, NS, NGE:"))
			if len(f) != 3 {
				return nil, fmt.Errorf("tabulated: penelope line %d: malformed header %q", line, text)
			}
			var err error
			if p.Z, err = strconv.Atoi(f[0]); err == nil {
				if ns, err = strconv.Atoi(f[1]); err == nil {
					nge, err = strconv.Atoi(f[2])
				}
			}
			if err != nil {
				return nil, fmt.Errorf("tabulated: penelope line %d: %v", line, err)
			}
		case strings.HasPrefix(text, "# Shell:"):
			for _, f := range strings.Fields(strings.TrimPrefix(text, "# Shell:")) {
				id, err := strconv.Atoi(f)
				if err != nil {
					return nil, fmt.Errorf("tabulated: penelope line %d: %v", line, err)
				}
				p.ShellIDs = append(p.ShellIDs, id)
			}
		case strings.HasPrefix(text, "# Eion (eV)"):
			vs, err := parseFloats(strings.Fields(strings.TrimLeft(strings.TrimPrefix(text, "# Eion (eV)"), ":")))
			if err != nil {
				return nil, fmt.Errorf("tabulated: penelope line %d: %v", line, err)
			}
			p.IonizationEV = vs
		case strings.HasPrefix(text, "#"):
		default:
			f := strings.Fields(text)
			if len(f) <= 2 {
				continue
			}
			vs, err := parseFloats(f)
			if err != nil {
				return nil, fmt.Errorf("tabulated: penelope line %d: %v", line, err)
			}
			if len(vs)-2 != ns {
				return nil, fmt.Errorf("tabulated: penelope line %d: %d partial cross sections, want %d", line, len(vs)-2, ns)
			}
			p.EnergiesEV = append(p.EnergiesEV, vs[0])
			p.TotalsBarn = append(p.TotalsBarn, vs[1])
			p.PartialsBarn = append(p.PartialsBarn, vs[2:])
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("tabulated: reading penelope file: %v", err)
	}
	if len(p.EnergiesEV) != nge {
		return nil, fmt.Errorf("tabulated: penelope Z=%d: %d energies, header says %d", p.Z, len(p.EnergiesEV), nge)
	}
	if len(p.ShellIDs) != ns || len(p.IonizationEV) != ns {
		return nil, fmt.Errorf("tabulated: penelope Z=%d: %d shells and %d ionization energies, header says %d",
			p.Z, len(p.ShellIDs), len(p.IonizationEV), ns)
	}
	return p, nil
}

func parseFloats(fields []string) ([]float64, error) {
	vs := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

// Curve returns the total photoelectric MAC curve in cm²/g.
func (p *PhotoElectric) Curve(atomicMass float64) (Curve, error) {
	f := BarnToCM2G(atomicMass)
	vs := make([]float64, len(p.TotalsBarn))
	for i, v := range p.TotalsBarn {
		vs[i] = v * f
	}
	return NewCurve(p.EnergiesEV, vs)
}

// Partial returns the MAC curve of the j-th shell in cm²/g.
func (p *PhotoElectric) Partial(j int, atomicMass float64) (Curve, error) {
	if j < 0 || j >= len(p.ShellIDs) {
		return Curve{}, fmt.Errorf("tabulated: penelope Z=%d has no shell index %d", p.Z, j)
	}
	f := BarnToCM2G(atomicMass)
	vs := make([]float64, len(p.PartialsBarn))
	for i, row := range p.PartialsBarn {
		vs[i] = row[j] * f
	}
	return NewCurve(p.EnergiesEV, vs)
}

// PenelopeZip reads pdgphZZ.p18 files from the PENELOPE distribution
// archive.
type PenelopeZip struct {
	zr    *zip.ReadCloser
	files map[string]*zip.File
}

// PenelopeEntry is the path of the cross-section file of element z in
// the archive.
func PenelopeEntry(z int) string {
	return fmt.Sprintf("pendbase/pdfiles/pdgph%02d.p18", z)
}

// OpenPenelopeZip opens the archive at path.
func OpenPenelopeZip(path string) (*PenelopeZip, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("tabulated: %v", err)
	}
	pz := &PenelopeZip{zr: zr, files: make(map[string]*zip.File)}
	for _, f := range zr.File {
		pz.files[f.Name] = f
	}
	return pz, nil
}

// Close closes the archive.
func (pz *PenelopeZip) Close() error { return pz.zr.Close() }

// PhotoElectric reads the cross sections of element z.
func (pz *PenelopeZip) PhotoElectric(z int) (*PhotoElectric, error) {
	f, ok := pz.files[PenelopeEntry(z)]
	if !ok {
		return nil, fmt.Errorf("tabulated: %s: %w", PenelopeEntry(z), ErrNoData)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("tabulated: %v", err)
	}
	defer rc.Close()
	return ReadPenelope(rc)
}

// Load implements Loader.
func (pz *PenelopeZip) Load(_ context.Context, z int) (Curve, error) {
	p, err := pz.PhotoElectric(z)
	if err != nil {
		return Curve{}, err
	}
	mass, err := elements.AtomicMass(z)
	if err != nil {
		return Curve{}, fmt.Errorf("tabulated: %w", err)
	}
	return p.Curve(mass)
}
