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

// Package config holds the run configuration of xraymac and builds the
// configured MAC model.
package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/epmatools/xraymac/xrange"
	"github.com/sirupsen/logrus"
)

// Model names.
const (
	Heinrich1987 = "heinrich1987"
	DTSA         = "dtsa"
	Zaluzec      = "zaluzec"
	Chantler     = "chantler"
	Henke        = "henke"
	Winxray      = "winxray"
	Penelope     = "penelope"
)

var models = map[string]bool{
	Heinrich1987: false,
	DTSA:         false,
	Zaluzec:      false,
	Chantler:     true,
	Henke:        true,
	Winxray:      true,
	Penelope:     true,
}

// Models returns the names of the available models.
func Models() []string {
	names := make([]string, 0, len(models))
	for n := range models {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Config is the run configuration, usually read from a TOML file.
type Config struct {
	// Model is the MAC model, one of Models().
	Model string `toml:"model"`

	// EdgeTable is an edge energy file in the FFast layout. The
	// embedded DTSA table is used when it is empty.
	EdgeTable string `toml:"edge_table"`

	// DataPath is the file, archive or directory holding the data of
	// tabulated models.
	DataPath string `toml:"data_path"`

	// CacheDir, if set, holds a disk cache of loaded tabulated curves.
	CacheDir string `toml:"cache_dir"`

	// MemoSize is the number of MAC results kept in memory. 0 disables
	// memoization.
	MemoSize int `toml:"memo_size"`

	LogLevel string `toml:"log_level"`

	// Workers is the number of goroutines of batch evaluations. 0 means
	// one per CPU.
	Workers int `toml:"workers"`

	// RangeLimit is the transmitted fraction defining the X-ray range.
	RangeLimit float64 `toml:"range_limit"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Model:      Heinrich1987,
		MemoSize:   4096,
		LogLevel:   "info",
		RangeLimit: xrange.DefaultLimit,
	}
}

// Load reads the TOML file at path over the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %v", err)
	}
	defer f.Close()
	return Read(f)
}

// Read reads a TOML configuration from r over the defaults.
func Read(r io.Reader) (*Config, error) {
	c := Default()
	if _, err := toml.DecodeReader(r, c); err != nil {
		return nil, fmt.Errorf("config: %v", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	c.Model = strings.ToLower(strings.TrimSpace(c.Model))
	tabulated, ok := models[c.Model]
	if !ok {
		return fmt.Errorf("config: unknown model %q, want one of %s", c.Model, strings.Join(Models(), ", "))
	}
	if tabulated && c.DataPath == "" {
		return fmt.Errorf("config: model %s needs data_path", c.Model)
	}
	if c.MemoSize < 0 {
		return fmt.Errorf("config: negative memo_size %d", c.MemoSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: negative workers %d", c.Workers)
	}
	if !(c.RangeLimit > 0 && c.RangeLimit < 1) {
		return fmt.Errorf("config: range_limit %g not in (0, 1)", c.RangeLimit)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %v", err)
	}
	return nil
}
