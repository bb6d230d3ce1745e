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

// Package plot draws MAC curves with gonum/plot.
package plot

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/tiff"
	"github.com/epmatools/xraymac/grid"
	"github.com/epmatools/xraymac/mac"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// XYs implements the gonum.org/v1/plot/plotter.XYer interface.
type XYs []XY

// XY is an x and y value.
type XY struct{ X, Y float64 }

// Len returns the number of X,Y pairs.
func (xys XYs) Len() int {
	return len(xys)
}

// XY return the x and y values at index i, where i < Len()
func (xys XYs) XY(i int) (float64, float64) {
	return xys[i].X, xys[i].Y
}

// positive returns the points that can be drawn on log axes.
func (xys XYs) positive() XYs {
	out := make(XYs, 0, len(xys))
	for _, p := range xys {
		if p.X > 0 && p.Y > 0 && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0) {
			out = append(out, p)
		}
	}
	return out
}

// Curve evaluates m for element z at every node of g.
func Curve(m mac.Model, z int, g *grid.Grid) (XYs, error) {
	xys := make(XYs, g.Len())
	for i := range xys {
		e := g.At(i)
		mu, err := m.MAC(e, z)
		if err != nil {
			return nil, fmt.Errorf("plot: Z=%d E=%g: %w", z, e, err)
		}
		xys[i] = XY{X: e, Y: mu}
	}
	return xys, nil
}

// Series is a named curve.
type Series struct {
	Name string
	XYs  XYs
}

// MACPlot draws the series as lines on log-log axes. Points that are not
// positive are left out.
func MACPlot(title string, series []Series) (*gplot.Plot, error) {
	p, err := gplot.New()
	if err != nil {
		return nil, fmt.Errorf("plot: %v", err)
	}
	p.Title.Text = title
	p.X.Label.Text = "Energy (eV)"
	p.Y.Label.Text = "MAC (cm²/g)"
	p.X.Scale = gplot.LogScale{}
	p.Y.Scale = gplot.LogScale{}
	p.X.Tick.Marker = gplot.LogTicks{}
	p.Y.Tick.Marker = gplot.LogTicks{}

	var lines []interface{}
	for _, s := range series {
		xys := s.XYs.positive()
		if xys.Len() < 2 {
			return nil, fmt.Errorf("plot: series %q has fewer than 2 drawable points", s.Name)
		}
		lines = append(lines, s.Name, xys)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, fmt.Errorf("plot: %v", err)
	}
	return p, nil
}

// Save writes p to file, with the format chosen by the file extension.
// TIFF files (.tif, .tiff) are rasterized at 96 dpi.
func Save(p *gplot.Plot, widthCM, heightCM float64, file string) error {
	w, h := vg.Length(widthCM)*vg.Centimeter, vg.Length(heightCM)*vg.Centimeter
	switch strings.ToLower(filepath.Ext(file)) {
	case ".tif", ".tiff":
		f, err := os.Create(file)
		if err != nil {
			return fmt.Errorf("plot: %v", err)
		}
		if err := WriteTIFF(f, p, w, h); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	if err := p.Save(w, h, file); err != nil {
		return fmt.Errorf("plot: %v", err)
	}
	return nil
}

// WriteTIFF renders p and encodes it as a TIFF image.
func WriteTIFF(out io.Writer, p *gplot.Plot, width, height vg.Length) error {
	c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(96))
	p.Draw(draw.New(c))
	if err := tiff.Encode(out, c.Image(), nil); err != nil {
		return fmt.Errorf("plot: encoding TIFF: %v", err)
	}
	return nil
}
