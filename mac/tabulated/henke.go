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
	"archive/tar"
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/epmatools/xraymac/elements"
)

// HenkeFactor returns the constant K in keV·cm²/g converting the
// imaginary scattering factor f2 of an element of the given atomic mass
// to a MAC: MAC = f2·K/(10⁻³·E).
func HenkeFactor(atomicMass float64) float64 {
	const (
		r0 = 2.817938e-15 // m
		h  = 6.62618e-34  // J·s
		c  = 2.99792458e8 // m/s
		j  = 1.602189e-19 // J/eV
		n0 = elements.Avogadro
	)
	c1 := 1.0 / (math.Pi * r0 * h * c)
	k := 2.0 * n0 / (math.Pi * c1 * atomicMass)
	return k / (j * 1.0e3 * 1.0e-4)
}

// HenkeMAC converts the scattering factor f2 at energyEV to a MAC.
func HenkeMAC(atomicMass, energyEV, f2 float64) float64 {
	return f2 * HenkeFactor(atomicMass) / 1.0e-3 / energyEV
}

// ReadHenkeNFF reads a Henke .nff file: a header line followed by
// tab-separated energy (eV), f1 and f2 columns.
func ReadHenkeNFF(r io.Reader, atomicMass float64) (Curve, error) {
	s := bufio.NewScanner(r)
	var es, vs []float64
	line := 0
	for s.Scan() {
		line++
		if line == 1 || strings.TrimSpace(s.Text()) == "" {
			continue
		}
		fields := strings.Fields(s.Text())
		if len(fields) < 3 {
			return Curve{}, fmt.Errorf("tabulated: nff line %d: %d columns, want 3", line, len(fields))
		}
		e, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Curve{}, fmt.Errorf("tabulated: nff line %d: %v", line, err)
		}
		f2, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return Curve{}, fmt.Errorf("tabulated: nff line %d: %v", line, err)
		}
		es = append(es, e)
		vs = append(vs, HenkeMAC(atomicMass, e, f2))
	}
	if err := s.Err(); err != nil {
		return Curve{}, fmt.Errorf("tabulated: reading nff: %v", err)
	}
	return NewCurve(es, vs)
}

// ReadHenkeArchive reads every <symbol>.nff file of a gzipped tar
// archive such as sf.tar.gz. Files of unknown elements are skipped.
func ReadHenkeArchive(r io.Reader) (Curves, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("tabulated: Henke archive: %v", err)
	}
	defer gz.Close()
	tr := tar.NewReader(gz)
	curves := make(Curves)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("tabulated: Henke archive: %v", err)
		}
		name := path.Base(hdr.Name)
		if path.Ext(name) != ".nff" {
			continue
		}
		z, err := elements.AtomicNumber(strings.TrimSuffix(name, ".nff"))
		if err != nil {
			continue
		}
		mass, err := elements.AtomicMass(z)
		if err != nil {
			continue
		}
		c, err := ReadHenkeNFF(tr, mass)
		if err != nil {
			return nil, fmt.Errorf("tabulated: %s: %w", hdr.Name, err)
		}
		curves[z] = c
	}
	return curves, nil
}

// HenkeDir loads <symbol>.nff files from dir.
func HenkeDir(dir string) DirLoader {
	return DirLoader{
		Dir:  dir,
		Name: func(sym string) string { return sym + ".nff" },
		Read: func(r io.Reader, z int) (Curve, error) {
			mass, err := elements.AtomicMass(z)
			if err != nil {
				return Curve{}, err
			}
			return ReadHenkeNFF(r, mass)
		},
	}
}
