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

package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/epmatools/xraymac/edges"
	"github.com/epmatools/xraymac/elements"
	"github.com/epmatools/xraymac/mac"
	"github.com/epmatools/xraymac/mac/casino"
	"github.com/epmatools/xraymac/mac/dtsa"
	"github.com/epmatools/xraymac/mac/heinrich"
	"github.com/epmatools/xraymac/mac/tabulated"
)

// Edges returns the configured edge table.
func (c *Config) Edges() (*edges.Table, error) {
	if c.EdgeTable == "" {
		return edges.DTSA(), nil
	}
	f, err := os.Open(c.EdgeTable)
	if err != nil {
		return nil, fmt.Errorf("config: %v", err)
	}
	defer f.Close()
	t, err := edges.ReadFFast(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", c.EdgeTable, err)
	}
	return t, nil
}

// Build returns the configured model, sending warnings to sink. The
// returned io.Closer releases the model's data files and must be closed
// when the model is no longer used.
func (c *Config) Build(sink mac.Sink) (mac.Model, io.Closer, error) {
	et, err := c.Edges()
	if err != nil {
		return nil, nil, err
	}
	var (
		m      mac.Model
		closer io.Closer = nopCloser{}
	)
	switch c.Model {
	case Heinrich1987:
		m = &heinrich.Model{Edges: et, Masses: elements.Table{}, Sink: sink}
	case DTSA:
		m = &dtsa.Model{Edges: et, Masses: elements.Table{}, Sink: sink}
	case Zaluzec:
		m = &casino.Zaluzec{Fallback: &heinrich.Model{Edges: et, Masses: elements.Table{}, Sink: sink}}
	case Chantler, Henke, Winxray, Penelope:
		var l tabulated.Loader
		if l, closer, err = c.loader(); err != nil {
			return nil, nil, err
		}
		var opts []tabulated.DatasetOption
		if c.CacheDir != "" {
			opts = append(opts, tabulated.DiskCache(c.CacheDir))
		}
		m = tabulated.NewDataset(c.Model, l, opts...)
	default:
		return nil, nil, fmt.Errorf("config: unknown model %q", c.Model)
	}
	if c.MemoSize > 0 {
		m = mac.Memoize(m, c.MemoSize)
	}
	return m, closer, nil
}

func (c *Config) loader() (tabulated.Loader, io.Closer, error) {
	switch c.Model {
	case Chantler:
		f, err := os.Open(c.DataPath)
		if err != nil {
			return nil, nil, fmt.Errorf("config: %v", err)
		}
		defer f.Close()
		curves, err := tabulated.ReadChantlerCSV(f, tabulated.KeV)
		if err != nil {
			return nil, nil, fmt.Errorf("config: %s: %w", c.DataPath, err)
		}
		return curves, nopCloser{}, nil
	case Henke:
		if strings.HasSuffix(c.DataPath, ".tar.gz") || strings.HasSuffix(c.DataPath, ".tgz") {
			f, err := os.Open(c.DataPath)
			if err != nil {
				return nil, nil, fmt.Errorf("config: %v", err)
			}
			defer f.Close()
			curves, err := tabulated.ReadHenkeArchive(f)
			if err != nil {
				return nil, nil, fmt.Errorf("config: %s: %w", c.DataPath, err)
			}
			return curves, nopCloser{}, nil
		}
		return tabulated.HenkeDir(c.DataPath), nopCloser{}, nil
	case Winxray:
		return tabulated.WinxrayDir(c.DataPath, false), nopCloser{}, nil
	case Penelope:
		pz, err := tabulated.OpenPenelopeZip(c.DataPath)
		if err != nil {
			return nil, nil, fmt.Errorf("config: %w", err)
		}
		return pz, pz, nil
	}
	return nil, nil, fmt.Errorf("config: model %q is not tabulated", c.Model)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
