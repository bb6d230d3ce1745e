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

package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/epmatools/xraymac/edges"
	"github.com/epmatools/xraymac/elements"
	"github.com/epmatools/xraymac/grid"
	"github.com/epmatools/xraymac/jump"
	"github.com/epmatools/xraymac/mac"
	"github.com/epmatools/xraymac/mac/heinrich"
	"github.com/epmatools/xraymac/plot"
	"github.com/epmatools/xraymac/report"
	"github.com/epmatools/xraymac/xrange"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

// hc is Planck's constant times the speed of light in eV·Å.
const hc = 12398.4

func symbol(z int) string {
	s, err := elements.Symbol(z)
	if err != nil {
		return fmt.Sprint(z)
	}
	return s
}

func (cfg *Cfg) macCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "mac Z E...",
		Short: "Print the MAC of an element at one or more energies in eV.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := parseZ(args[0])
			if err != nil {
				return err
			}
			es, err := parseEnergies(args[1:])
			if err != nil {
				return err
			}
			var col mac.Collector
			m, done, err := cfg.model(&col)
			if err != nil {
				return err
			}
			defer done()

			points := make([]mac.Point, len(es))
			for i, e := range es {
				points[i] = mac.Point{Z: z, EnergyEV: e}
			}
			vals, err := mac.Batch(context.Background(), m, points, cfg.Config.Workers)
			var be mac.BatchError
			if err != nil && !errors.As(err, &be) {
				return err
			}
			for i, e := range es {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\t%.6g\n", symbol(z), e, vals[i])
			}
			if err != nil {
				return err
			}
			if n := col.Len(); strict && n > 0 {
				return fmt.Errorf("cli: %d warning(s) in strict mode", n)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail if any warning is raised")
	return cmd
}

func (cfg *Cfg) regionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "region Z E...",
		Short: "Print the Heinrich absorption region of an element at one or more energies in eV.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := parseZ(args[0])
			if err != nil {
				return err
			}
			es, err := parseEnergies(args[1:])
			if err != nil {
				return err
			}
			et, err := cfg.Config.Edges()
			if err != nil {
				return err
			}
			sink := mac.LogSink{Log: cfg.Log}
			for _, e := range es {
				r, ws, err := heinrich.Classify(et, z, e)
				mac.Emit(sink, ws)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\t%d\n", symbol(z), e, int(r))
			}
			return nil
		},
	}
}

type gridFlags struct {
	min, max float64
	n        int
	log      bool
	refine   bool
	window   float64
}

func (g *gridFlags) add(cmd *cobra.Command, n int, log bool) {
	cmd.Flags().Float64Var(&g.min, "min", 100, "lowest energy in eV")
	cmd.Flags().Float64Var(&g.max, "max", 20000, "highest energy in eV")
	cmd.Flags().IntVar(&g.n, "n", n, "number of energies")
	cmd.Flags().BoolVar(&g.log, "log", log, "space the energies logarithmically")
	cmd.Flags().BoolVar(&g.refine, "refine", false, "add energies around the absorption edges")
	cmd.Flags().Float64Var(&g.window, "window", 10, "largest energy step in eV near edges when refining")
}

func (g *gridFlags) grid() (*grid.Grid, error) {
	if g.log {
		return grid.Log(g.min, g.max, g.n)
	}
	return grid.Linear(g.min, g.max, g.n)
}

// cacheName identifies a refined grid in the cache directory.
func (g *gridFlags) cacheName(edgeTable string, zs []int) string {
	z := make([]string, len(zs))
	for i, v := range zs {
		z[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("grid_%s_%g_%g_%d_%t_%g_%s.gob",
		edgeTable, g.min, g.max, g.n, g.log, g.window, strings.Join(z, "-"))
}

// energyGrid builds the grid described by gf, refined around the edges
// of zs if requested. Refined grids are kept in the cache directory when
// one is configured.
func (cfg *Cfg) energyGrid(gf *gridFlags, zs []int) (*grid.Grid, error) {
	if !gf.refine {
		return gf.grid()
	}
	et, err := cfg.Config.Edges()
	if err != nil {
		return nil, err
	}
	var file string
	if dir := cfg.Config.CacheDir; dir != "" {
		name := "dtsa"
		if cfg.Config.EdgeTable != "" {
			base := filepath.Base(cfg.Config.EdgeTable)
			name = strings.TrimSuffix(base, filepath.Ext(base))
		}
		file = filepath.Join(dir, gf.cacheName(name, zs))
		g, err := grid.ReadFile(file)
		if err == nil {
			cfg.Log.WithField("file", file).Debug("using cached grid")
			return g, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			cfg.Log.WithError(err).Warn("ignoring cached grid")
		}
	}

	g, err := gf.grid()
	if err != nil {
		return nil, err
	}
	for _, z := range zs {
		f, err := grid.NearEdges(et, z, gf.window)
		if err != nil {
			return nil, err
		}
		g.Adapt(f, 30)
	}
	cfg.Log.WithField("energies", g.Len()).Debug("refined grid near edges")

	if file != "" {
		if err := os.MkdirAll(cfg.Config.CacheDir, 0755); err != nil {
			cfg.Log.WithError(err).Warn("creating cache directory")
		} else if err := g.WriteFile(file); err != nil {
			cfg.Log.WithError(err).Warn("caching grid")
		}
	}
	return g, nil
}

func (cfg *Cfg) sweepCmd() *cobra.Command {
	var (
		gf  gridFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "sweep Z...",
		Short: "Tabulate MACs of one or more elements over an energy grid.",
		Long: `sweep writes a table of MAC against energy, one column per element,
as CSV or, if the output file name ends in .xlsx, as an Excel workbook.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zs, err := parseZs(args)
			if err != nil {
				return err
			}
			g, err := cfg.energyGrid(&gf, zs)
			if err != nil {
				return err
			}
			m, done, err := cfg.model(nil)
			if err != nil {
				return err
			}
			defer done()

			cols := make([]report.Column, len(zs))
			for i, z := range zs {
				cols[i] = report.Column{Name: symbol(z), Model: m, Z: z}
			}
			t, err := report.Sweep(g, cols)
			if err != nil {
				cfg.Log.WithError(err).Warn("some MACs could not be computed")
			}
			if out == "" {
				return t.WriteCSV(cmd.OutOrStdout())
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := t.Write(f, out); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	gf.add(cmd, 200, false)
	cmd.Flags().StringVar(&out, "out", "", "output .csv or .xlsx file (default: CSV to standard output)")
	return cmd
}

func (cfg *Cfg) plotCmd() *cobra.Command {
	var (
		gf            gridFlags
		out           string
		width, height float64
		show          bool
	)
	cmd := &cobra.Command{
		Use:   "plot Z...",
		Short: "Plot MAC curves of one or more elements.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zs, err := parseZs(args)
			if err != nil {
				return err
			}
			g, err := cfg.energyGrid(&gf, zs)
			if err != nil {
				return err
			}
			m, done, err := cfg.model(nil)
			if err != nil {
				return err
			}
			defer done()

			series := make([]plot.Series, len(zs))
			for i, z := range zs {
				xys, err := plot.Curve(m, z, g)
				if err != nil {
					return err
				}
				series[i] = plot.Series{Name: symbol(z), XYs: xys}
			}
			p, err := plot.MACPlot(fmt.Sprintf("MAC (%s)", cfg.Config.Model), series)
			if err != nil {
				return err
			}
			if err := plot.Save(p, width, height, out); err != nil {
				return err
			}
			if show {
				return cfg.open(out)
			}
			return nil
		},
	}
	gf.add(cmd, 500, true)
	cmd.Flags().StringVar(&out, "out", "mac.png", "output image file (.png, .svg, .pdf, .tif, ...)")
	cmd.Flags().BoolVar(&show, "open", false, "open the image with the default viewer")
	cmd.Flags().Float64Var(&width, "width", 16, "image width in cm")
	cmd.Flags().Float64Var(&height, "height", 12, "image height in cm")
	return cmd
}

func (cfg *Cfg) rangeCmd() *cobra.Command {
	var (
		compound string
		density  float64
	)
	cmd := &cobra.Command{
		Use:   "range E...",
		Short: "Print the absorption length and X-ray range in a compound at one or more energies in eV.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := xrange.ParseCompound(compound)
			if err != nil {
				return err
			}
			es, err := parseEnergies(args)
			if err != nil {
				return err
			}
			rho := density
			if rho <= 0 {
				if rho, err = xrange.MeanDensity(c); err != nil {
					return err
				}
				cfg.Log.WithField("density", rho).Info("using mean density of the elements")
			}
			m, done, err := cfg.model(nil)
			if err != nil {
				return err
			}
			defer done()

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "E (eV)\tMAC (cm2/g)\tabsorption length (um)\trange (nm)")
			for _, e := range es {
				mu, err := xrange.CompoundMAC(m, c, e)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%g\t%.6g\t%.6g\t%.6g\n", e, mu,
					xrange.AbsorptionLength(mu, rho)*1e4, xrange.Range(mu, rho, cfg.Config.RangeLimit))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&compound, "compound", "", `weight fractions, for example "Cu:0.8,Zn:0.2"`)
	cmd.Flags().Float64Var(&density, "density", 0, "density in g/cm3 (default: mean of the elements)")
	return cmd
}

func (cfg *Cfg) jumpCmd() *cobra.Command {
	var line string
	cmd := &cobra.Command{
		Use:   "jump Z",
		Short: "Print the jump factor of a line and estimates of the K-shell jump ratio.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := parseZ(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			f, err := jump.Springer1967(z, line)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "springer1967\t%s\t%.6g\n", line, f)
			fmt.Fprintf(w, "rindfleisch\trK\t%.6g\n", jump.Rindfleisch(z))
			fmt.Fprintf(w, "tellez-plasencia\trK\t%.6g\n", jump.TellezPlasencia(z))

			et, err := cfg.Config.Edges()
			if err != nil {
				return err
			}
			k, err := et.EdgeEnergy(z, edges.K)
			if err != nil {
				return err
			}
			if k <= 0 {
				return nil
			}
			lambdaK := hc / k
			fmt.Fprintf(w, "laubert\trK\t%.6g\n", jump.Laubert(lambdaK))
			if l1, err := et.EdgeEnergy(z, edges.L1); err == nil && l1 > 0 {
				fmt.Fprintf(w, "lambda-ratio\trK\t%.6g\n", jump.LambdaRatio(hc/l1, lambdaK))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&line, "line", "Ka", "emission line (Ka or La)")
	return cmd
}

func (cfg *Cfg) compareCmd() *cobra.Command {
	var (
		gf   gridFlags
		with string
		tol  float64
	)
	cmd := &cobra.Command{
		Use:   "compare Z...",
		Short: "Compare the configured model with another one over an energy grid.",
		Long: `compare prints the mean and standard deviation of the relative
difference (other − model)/model for each element, followed by the
energies at which the difference exceeds the tolerance.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zs, err := parseZs(args)
			if err != nil {
				return err
			}
			g, err := cfg.energyGrid(&gf, zs)
			if err != nil {
				return err
			}
			base, done, err := cfg.model(nil)
			if err != nil {
				return err
			}
			defer done()
			oc := *cfg.Config
			oc.Model = with
			if err := oc.Validate(); err != nil {
				return err
			}
			other, closer, err := oc.Build(mac.LogSink{Log: cfg.Log})
			if err != nil {
				return err
			}
			defer func() {
				if err := closer.Close(); err != nil {
					cfg.Log.WithError(err).Warn("closing model data")
				}
			}()

			w := cmd.OutOrStdout()
			energies := g.Energies()
			for _, z := range zs {
				b, err := mac.Vector(base, energies, z)
				if err != nil {
					cfg.Log.WithError(err).WithField("model", cfg.Config.Model).Warn("some MACs could not be computed")
				}
				o, err := mac.Vector(other, energies, z)
				if err != nil {
					cfg.Log.WithError(err).WithField("model", oc.Model).Warn("some MACs could not be computed")
				}
				rel, at, skipped := relativeDifferences(energies, b, o)
				if skipped > 0 {
					cfg.Log.WithFields(logrus.Fields{"z": z, "skipped": skipped}).Warn("energies left out of the comparison")
				}
				if len(rel) == 0 {
					fmt.Fprintf(w, "%s\tno comparable values\tskipped %d\n", symbol(z), skipped)
					continue
				}
				mean, std := stat.MeanStdDev(rel, nil)
				fmt.Fprintf(w, "%s\tmean %.4g\tstd %.4g\tn %d\tskipped %d\n", symbol(z), mean, std, len(rel), skipped)
				for i, d := range rel {
					if math.Abs(d) > tol {
						fmt.Fprintf(w, "%s\t%g\t%.4g\n", symbol(z), at[i], d)
					}
				}
			}
			return nil
		},
	}
	gf.add(cmd, 100, true)
	cmd.Flags().StringVar(&with, "with", "dtsa", "model to compare with")
	cmd.Flags().Float64Var(&tol, "tol", 0.05, "relative difference above which energies are listed")
	return cmd
}

// relativeDifferences returns (o − b)/b at each energy where it is
// finite, with those energies, and the number of energies left out.
func relativeDifferences(energies, b, o []float64) (rel, at []float64, skipped int) {
	for i := range energies {
		d := (o[i] - b[i]) / b[i]
		if math.IsNaN(d) || math.IsInf(d, 0) {
			skipped++
			continue
		}
		rel = append(rel, d)
		at = append(at, energies[i])
	}
	return rel, at, skipped
}
