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
	"context"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ctessum/requestcache"
	"github.com/epmatools/xraymac/elements"
)

func init() {
	gob.Register(Curve{})
}

// Loader loads the MAC curve of one element.
type Loader interface {
	Load(ctx context.Context, z int) (Curve, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, z int) (Curve, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, z int) (Curve, error) { return f(ctx, z) }

// Curves is an in-memory Loader keyed by atomic number.
type Curves map[int]Curve

// Load implements Loader.
func (c Curves) Load(_ context.Context, z int) (Curve, error) {
	cv, ok := c[z]
	if !ok {
		return Curve{}, fmt.Errorf("tabulated: Z=%d: %w", z, ErrNoData)
	}
	return cv, nil
}

// DirLoader reads one file per element from a directory.
type DirLoader struct {
	Dir string

	// Name returns the file name for a lower-case element symbol.
	Name func(symbol string) string

	// Read parses the file of element z.
	Read func(r io.Reader, z int) (Curve, error)
}

// Load implements Loader.
func (d DirLoader) Load(_ context.Context, z int) (Curve, error) {
	sym, err := elements.Symbol(z)
	if err != nil {
		return Curve{}, fmt.Errorf("tabulated: %w", err)
	}
	path := filepath.Join(d.Dir, d.Name(strings.ToLower(sym)))
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Curve{}, fmt.Errorf("tabulated: %s: %w", path, ErrNoData)
	} else if err != nil {
		return Curve{}, fmt.Errorf("tabulated: %v", err)
	}
	defer f.Close()
	c, err := d.Read(f, z)
	if err != nil {
		return Curve{}, fmt.Errorf("tabulated: %s: %w", path, err)
	}
	return c, nil
}

// Dataset is a mac.Model interpolating tabulated curves. Curves are
// loaded on first use; concurrent requests for the same element share
// one load.
type Dataset struct {
	name  string
	cache *requestcache.Cache
}

// DatasetOption configures a Dataset.
type DatasetOption func(*datasetConfig)

type datasetConfig struct {
	memory   int
	cacheDir string
}

// MemoryCache sets the number of curves held in memory. The default is
// 100, enough for every element.
func MemoryCache(n int) DatasetOption {
	return func(c *datasetConfig) { c.memory = n }
}

// DiskCache stores loaded curves as gob files in dir.
func DiskCache(dir string) DatasetOption {
	return func(c *datasetConfig) { c.cacheDir = dir }
}

// NewDataset returns a Dataset loading curves with l. name identifies
// the dataset in errors and on-disk cache keys.
func NewDataset(name string, l Loader, opts ...DatasetOption) *Dataset {
	cfg := datasetConfig{memory: 100}
	for _, o := range opts {
		o(&cfg)
	}
	process := func(ctx context.Context, request interface{}) (interface{}, error) {
		return l.Load(ctx, request.(int))
	}
	caches := []requestcache.CacheFunc{requestcache.Deduplicate(), requestcache.Memory(cfg.memory)}
	if cfg.cacheDir != "" {
		caches = append(caches, requestcache.Disk(cfg.cacheDir, requestcache.MarshalGob, requestcache.UnmarshalGob))
	}
	return &Dataset{
		name:  name,
		cache: requestcache.NewCache(process, runtime.GOMAXPROCS(-1), caches...),
	}
}

// Name returns the name of the dataset.
func (d *Dataset) Name() string { return d.name }

// Curve returns the curve of element z.
func (d *Dataset) Curve(ctx context.Context, z int) (Curve, error) {
	r := d.cache.NewRequest(ctx, z, fmt.Sprintf("%s_%03d", d.name, z))
	result, err := r.Result()
	if err != nil {
		return Curve{}, fmt.Errorf("%s: %w", d.name, err)
	}
	c := result.(Curve)
	if c.Len() == 0 {
		return Curve{}, fmt.Errorf("%s: Z=%d: %w", d.name, z, ErrNoData)
	}
	return c, nil
}

// MAC implements mac.Model.
func (d *Dataset) MAC(energyEV float64, z int) (float64, error) {
	c, err := d.Curve(context.Background(), z)
	if err != nil {
		return 0, err
	}
	return c.At(energyEV), nil
}
