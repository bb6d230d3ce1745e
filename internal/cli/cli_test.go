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
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/epmatools/xraymac/config"
	"github.com/epmatools/xraymac/report"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(args ...string) (*Cfg, *test.Hook, string, error) {
	return runCfg(NewCfg(), args...)
}

func runCfg(cfg *Cfg, args ...string) (*Cfg, *test.Hook, string, error) {
	hook := test.NewLocal(cfg.Log)
	var b bytes.Buffer
	cfg.Root.SetOutput(&b)
	cfg.Root.SetArgs(args)
	err := cfg.Root.Execute()
	return cfg, hook, b.String(), err
}

func TestMAC(t *testing.T) {
	_, _, out, err := run("mac", "Au", "677", "8048")
	require.NoError(t, err)
	assert.Contains(t, out, "Au\t677\t")
	assert.Contains(t, out, "Au\t8048\t")

	_, hook, _, err := run("mac", "--strict", "Cu", "8048")
	assert.NoError(t, err)
	assert.Empty(t, hook.AllEntries())

	_, hook, _, err = run("mac", "--strict", "5", "183")
	assert.Error(t, err)
	require.NotEmpty(t, hook.AllEntries())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	_, _, _, err = run("mac", "Xx", "1000")
	assert.Error(t, err)
	_, _, _, err = run("mac", "Cu", "abc")
	assert.Error(t, err)
}

func TestRegion(t *testing.T) {
	_, _, out, err := run("region", "gold", "2206.6", "80723")
	require.NoError(t, err)
	assert.Contains(t, out, "Au\t2206.6\t9\n")
	assert.Contains(t, out, "Au\t80723\t1\n")
}

func TestSweep(t *testing.T) {
	_, _, out, err := run("sweep", "Cu", "Zn", "--min", "1000", "--max", "3000", "--n", "3")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Energy (eV),Cu,Zn\n1000,"), out)
	assert.Equal(t, 4, strings.Count(out, "\n"))

	file := filepath.Join(t.TempDir(), "sweep.xlsx")
	_, _, _, err = run("sweep", "Cu", "--min", "1000", "--max", "10000", "--n", "5", "--refine", "--out", file)
	require.NoError(t, err)
	b, err := os.ReadFile(file)
	require.NoError(t, err)
	tbl, err := report.ReadXLSX(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"Energy (eV)", "Cu"}, tbl.Header)
	assert.True(t, len(tbl.Rows) > 5, "refinement added no energies")
}

func TestPlot(t *testing.T) {
	file := filepath.Join(t.TempDir(), "mac.png")
	_, _, _, err := run("plot", "Cu", "Au", "--n", "50", "--out", file)
	require.NoError(t, err)
	fi, err := os.Stat(file)
	require.NoError(t, err)
	assert.True(t, fi.Size() > 0)
}

func TestRange(t *testing.T) {
	_, _, out, err := run("range", "--compound", "Cu", "--density", "8.96", "8048")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "8048\t"))

	_, _, _, err = run("range", "--compound", "Cu:-1", "8048")
	assert.Error(t, err)
}

func TestJump(t *testing.T) {
	_, _, out, err := run("jump", "Cu")
	require.NoError(t, err)
	assert.Contains(t, out, "springer1967\tKa\t0.88224\n")
	assert.Contains(t, out, "laubert\trK\t")
	assert.Contains(t, out, "lambda-ratio\trK\t")

	_, _, _, err = run("jump", "Cu", "--line", "Ma")
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	_, _, out, err := run("compare", "Cu", "--with", "dtsa", "--min", "1000", "--max", "10000", "--n", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Cu\tmean ")

	_, _, _, err = run("compare", "Cu", "--with", "nist")
	assert.Error(t, err)
}

func TestConfigPrecedence(t *testing.T) {
	const file = "../../config/testdata/config.toml"

	cfg, _, _, err := run("mac", "--config", file, "Cu", "8048")
	require.NoError(t, err)
	assert.Equal(t, config.DTSA, cfg.Config.Model)
	assert.Equal(t, 128, cfg.Config.MemoSize)
	assert.Equal(t, logrus.DebugLevel, cfg.Log.Level)

	cfg, _, _, err = run("mac", "--config", file, "--model", "zaluzec", "Cu", "8048")
	require.NoError(t, err)
	assert.Equal(t, config.Zaluzec, cfg.Config.Model)

	os.Setenv("XRAYMAC_WORKERS", "3")
	defer os.Unsetenv("XRAYMAC_WORKERS")
	cfg, _, _, err = run("mac", "--config", file, "Cu", "8048")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Config.Workers)

	_, _, _, err = run("mac", "--model", "nist", "Cu", "8048")
	assert.Error(t, err)
}

func TestPlotOpen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "mac.tiff")
	cfg := NewCfg()
	var opened []string
	cfg.open = func(f string) error {
		opened = append(opened, f)
		return nil
	}
	_, _, _, err := runCfg(cfg, "plot", "Cu", "--n", "20", "--out", file, "--open")
	require.NoError(t, err)
	assert.Equal(t, []string{file}, opened)
	fi, err := os.Stat(file)
	require.NoError(t, err)
	assert.True(t, fi.Size() > 0)
}

func TestRefinedGridCache(t *testing.T) {
	dir := t.TempDir()
	args := []string{"sweep", "Cu", "--min", "1000", "--max", "10000", "--n", "5", "--refine", "--cache-dir", dir}
	_, _, first, err := run(args...)
	require.NoError(t, err)
	files, err := filepath.Glob(filepath.Join(dir, "grid_*.gob"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	cfg := NewCfg()
	cfg.Log.SetLevel(logrus.DebugLevel)
	_, hook, second, err := runCfg(cfg, append(args, "--log-level", "debug")...)
	require.NoError(t, err)
	var cached bool
	for _, e := range hook.AllEntries() {
		if e.Message == "using cached grid" {
			cached = true
		}
	}
	assert.True(t, cached, "cached grid not used")
	assert.Equal(t, csvLines(first), csvLines(second))
}

func csvLines(out string) []string {
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "Energy") || (len(l) > 0 && l[0] >= '0' && l[0] <= '9') {
			lines = append(lines, l)
		}
	}
	return lines
}

func TestCompareReportsFailures(t *testing.T) {
	file := filepath.Join(t.TempDir(), "h.csv")
	require.NoError(t, os.WriteFile(file, []byte("13.6\n"), 0644))
	_, hook, out, err := run("compare", "Cu", "--edge-table", file, "--min", "1000", "--max", "2000", "--n", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Cu\tno comparable values\tskipped 5\n")
	var failed, skipped bool
	for _, e := range hook.AllEntries() {
		switch e.Message {
		case "some MACs could not be computed":
			failed = e.Data[logrus.ErrorKey] != nil
		case "energies left out of the comparison":
			skipped = e.Data["skipped"] == 5
		}
	}
	assert.True(t, failed, "batch error not logged")
	assert.True(t, skipped, "skipped count not logged")
}

func TestRelativeDifferences(t *testing.T) {
	nan := math.NaN()
	rel, at, skipped := relativeDifferences(
		[]float64{1, 2, 3, 4},
		[]float64{2, nan, 0, 4},
		[]float64{3, 1, 1, 2},
	)
	assert.Equal(t, []float64{0.5, -0.5}, rel)
	assert.Equal(t, []float64{1, 4}, at)
	assert.Equal(t, 2, skipped)
}
