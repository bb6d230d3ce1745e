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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadWinxrayText reads a Winxray text table: one tab-separated energy
// (eV) and MAC (cm²/g) per line.
func ReadWinxrayText(r io.Reader) (Curve, error) {
	s := bufio.NewScanner(r)
	var es, vs []float64
	line := 0
	for s.Scan() {
		line++
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return Curve{}, fmt.Errorf("tabulated: winxray line %d: want 2 columns", line)
		}
		e, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Curve{}, fmt.Errorf("tabulated: winxray line %d: %v", line, err)
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Curve{}, fmt.Errorf("tabulated: winxray line %d: %v", line, err)
		}
		es = append(es, e)
		vs = append(vs, v)
	}
	if err := s.Err(); err != nil {
		return Curve{}, fmt.Errorf("tabulated: reading winxray table: %v", err)
	}
	return NewCurve(es, vs)
}

// winxrayHeader is the fixed part of an _eV.mhb file.
type winxrayHeader struct {
	_ [2]float32
	N int32
	_ float32
}

// ReadWinxrayBinary reads a little-endian Winxray _eV.mhb table.
func ReadWinxrayBinary(r io.Reader) (Curve, error) {
	var hdr winxrayHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return Curve{}, fmt.Errorf("tabulated: winxray header: %v", err)
	}
	if hdr.N < 0 {
		return Curve{}, fmt.Errorf("tabulated: winxray: negative point count %d", hdr.N)
	}
	pairs := make([][2]float32, hdr.N)
	if err := binary.Read(r, binary.LittleEndian, pairs); err != nil {
		return Curve{}, fmt.Errorf("tabulated: winxray data: %v", err)
	}
	es := make([]float64, hdr.N)
	vs := make([]float64, hdr.N)
	for i, p := range pairs {
		es[i], vs[i] = float64(p[0]), float64(p[1])
	}
	return NewCurve(es, vs)
}

// WinxrayDir loads Winxray tables from dir: text/<symbol>.dat files, or
// binary/<symbol>_eV.mhb files if mhb is set.
func WinxrayDir(dir string, mhb bool) DirLoader {
	if mhb {
		return DirLoader{
			Dir:  dir,
			Name: func(sym string) string { return "binary/" + sym + "_eV.mhb" },
			Read: func(r io.Reader, _ int) (Curve, error) { return ReadWinxrayBinary(r) },
		}
	}
	return DirLoader{
		Dir:  dir,
		Name: func(sym string) string { return "text/" + sym + ".dat" },
		Read: func(r io.Reader, _ int) (Curve, error) { return ReadWinxrayText(r) },
	}
}
