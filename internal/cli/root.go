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

// Package cli implements the xraymac command-line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/epmatools/xraymac/config"
	"github.com/epmatools/xraymac/elements"
	"github.com/epmatools/xraymac/mac"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds the command tree and its configuration. Values are taken,
// in decreasing priority, from command-line flags, XRAYMAC_* environment
// variables, the TOML configuration file and the built-in defaults.
type Cfg struct {
	*viper.Viper

	Root *cobra.Command

	// Config is the resolved configuration, available once a command
	// starts running.
	Config *config.Config

	Log *logrus.Logger

	// open shows a file with the system's default application.
	open func(file string) error
}

// option is a configuration value that can be set by flag, environment
// variable or configuration file.
type option struct {
	name, usage string
	defaultVal  interface{}
	get         func(*config.Config) interface{}
	set         func(*config.Config, interface{}) error
}

func options(d *config.Config) []option {
	return []option{
		{
			name:       "model",
			usage:      "MAC model: " + strings.Join(config.Models(), ", "),
			defaultVal: d.Model,
			get:        func(c *config.Config) interface{} { return c.Model },
			set: func(c *config.Config, v interface{}) (err error) {
				c.Model, err = cast.ToStringE(v)
				return
			},
		},
		{
			name:       "log_level",
			usage:      "logging level (debug, info, warning, error)",
			defaultVal: d.LogLevel,
			get:        func(c *config.Config) interface{} { return c.LogLevel },
			set: func(c *config.Config, v interface{}) (err error) {
				c.LogLevel, err = cast.ToStringE(v)
				return
			},
		},
		{
			name:       "edge_table",
			usage:      "edge energy file in the FFast layout (default: embedded DTSA table)",
			defaultVal: d.EdgeTable,
			get:        func(c *config.Config) interface{} { return c.EdgeTable },
			set: func(c *config.Config, v interface{}) (err error) {
				c.EdgeTable, err = cast.ToStringE(v)
				return
			},
		},
		{
			name:       "data_path",
			usage:      "data file, archive or directory of tabulated models",
			defaultVal: d.DataPath,
			get:        func(c *config.Config) interface{} { return c.DataPath },
			set: func(c *config.Config, v interface{}) (err error) {
				c.DataPath, err = cast.ToStringE(v)
				return
			},
		},
		{
			name:       "cache_dir",
			usage:      "disk cache directory for tabulated data",
			defaultVal: d.CacheDir,
			get:        func(c *config.Config) interface{} { return c.CacheDir },
			set: func(c *config.Config, v interface{}) (err error) {
				c.CacheDir, err = cast.ToStringE(v)
				return
			},
		},
		{
			name:       "memo_size",
			usage:      "number of memoized MAC results (0 disables)",
			defaultVal: d.MemoSize,
			get:        func(c *config.Config) interface{} { return c.MemoSize },
			set: func(c *config.Config, v interface{}) (err error) {
				c.MemoSize, err = cast.ToIntE(v)
				return
			},
		},
		{
			name:       "workers",
			usage:      "number of goroutines for batch evaluation (0: one per CPU)",
			defaultVal: d.Workers,
			get:        func(c *config.Config) interface{} { return c.Workers },
			set: func(c *config.Config, v interface{}) (err error) {
				c.Workers, err = cast.ToIntE(v)
				return
			},
		},
		{
			name:       "range_limit",
			usage:      "transmitted fraction defining the X-ray range",
			defaultVal: d.RangeLimit,
			get:        func(c *config.Config) interface{} { return c.RangeLimit },
			set: func(c *config.Config, v interface{}) (err error) {
				c.RangeLimit, err = cast.ToFloat64E(v)
				return
			},
		},
	}
}

func flagName(key string) string { return strings.Replace(key, "_", "-", -1) }

func addFlag(fs *pflag.FlagSet, o option) {
	switch v := o.defaultVal.(type) {
	case string:
		fs.String(flagName(o.name), v, o.usage)
	case int:
		fs.Int(flagName(o.name), v, o.usage)
	case float64:
		fs.Float64(flagName(o.name), v, o.usage)
	default:
		panic(fmt.Errorf("cli: invalid option type %T", v))
	}
}

// NewCfg creates the command tree.
func NewCfg() *Cfg {
	cfg := &Cfg{
		Viper: viper.New(),
		Log:   logrus.New(),
		open:  open.Start,
	}
	cfg.SetEnvPrefix("XRAYMAC")
	cfg.AutomaticEnv()

	opts := options(config.Default())

	cfg.Root = &cobra.Command{
		Use:   "xraymac",
		Short: "X-ray mass absorption coefficients.",
		Long: `xraymac computes X-ray mass absorption coefficients (MACs) of the
elements with the Heinrich (1987) parameterization and several
alternative models, together with related quantities such as
absorption jump factors and X-ray ranges.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.resolve(opts)
		},
	}
	cfg.Root.PersistentFlags().String("config", "", "TOML configuration file")
	if err := cfg.BindPFlag("config", cfg.Root.PersistentFlags().Lookup("config")); err != nil {
		panic(err)
	}
	for _, o := range opts {
		addFlag(cfg.Root.PersistentFlags(), o)
		if err := cfg.BindPFlag(o.name, cfg.Root.PersistentFlags().Lookup(flagName(o.name))); err != nil {
			panic(err)
		}
	}

	cfg.Root.AddCommand(
		cfg.macCmd(),
		cfg.regionCmd(),
		cfg.sweepCmd(),
		cfg.plotCmd(),
		cfg.rangeCmd(),
		cfg.jumpCmd(),
		cfg.compareCmd(),
	)
	return cfg
}

// resolve reads the configuration file, if any, and layers the flag and
// environment values over it.
func (cfg *Cfg) resolve(opts []option) error {
	c := config.Default()
	if file := cfg.GetString("config"); file != "" {
		var err error
		if c, err = config.Load(file); err != nil {
			return err
		}
	}
	for _, o := range opts {
		cfg.SetDefault(o.name, o.get(c))
	}
	for _, o := range opts {
		if err := o.set(c, cfg.Get(o.name)); err != nil {
			return fmt.Errorf("cli: %s: %v", o.name, err)
		}
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg.Config = c

	level, _ := logrus.ParseLevel(c.LogLevel)
	cfg.Log.SetLevel(level)
	cfg.Log.SetOutput(cfg.Root.OutOrStderr())
	return nil
}

// model builds the configured model. Warnings are logged and, if col is
// not nil, also collected.
func (cfg *Cfg) model(col *mac.Collector) (mac.Model, func(), error) {
	var sink mac.Sink = mac.LogSink{Log: cfg.Log}
	if col != nil {
		sink = mac.Tee{sink, col}
	}
	m, closer, err := cfg.Config.Build(sink)
	if err != nil {
		return nil, nil, err
	}
	return m, func() {
		if err := closer.Close(); err != nil {
			cfg.Log.WithError(err).Warn("closing model data")
		}
	}, nil
}

// parseZ parses an element given by symbol, name or atomic number.
func parseZ(s string) (int, error) {
	if z, err := elements.AtomicNumber(s); err == nil {
		return z, nil
	}
	z, err := cast.ToIntE(s)
	if err != nil {
		return 0, fmt.Errorf("cli: invalid element %q", s)
	}
	if _, err := elements.Symbol(z); err != nil {
		return 0, err
	}
	return z, nil
}

func parseZs(args []string) ([]int, error) {
	zs := make([]int, len(args))
	for i, a := range args {
		var err error
		if zs[i], err = parseZ(a); err != nil {
			return nil, err
		}
	}
	return zs, nil
}

func parseEnergies(args []string) ([]float64, error) {
	es := make([]float64, len(args))
	for i, a := range args {
		var err error
		if es[i], err = cast.ToFloat64E(a); err != nil {
			return nil, fmt.Errorf("cli: invalid energy %q", a)
		}
	}
	return es, nil
}
