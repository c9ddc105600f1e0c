/*
 * options.go, part of angmom.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package angmom

import (
	"errors"
	"io"
	"log/slog"
	"runtime"

	"github.com/rmera/angmom/coupling"
	"gopkg.in/yaml.v3"
)

//Options contains the options for the construction of energy matrices.
type Options struct {
	cpus       int
	cacheSize  int64
	exactLimit int
	generator  TermGenerator
	kernel     *coupling.Kernel
	logger     *slog.Logger
}

//DefaultOptions returns an Options with the default options.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.cpus = runtime.NumCPU()
	ret.exactLimit = coupling.DefaultExactLimit
	ret.generator = SlaterCondon{}
	return ret
}

//Cpus returns the number of goroutines used to build a matrix
//and sets it, if a valid value is given.
func (o *Options) Cpus(cpus ...int) int {
	ret := o.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		o.cpus = cpus[0]
	}
	return ret
}

//CacheSize returns the size of the coefficient cache and sets it, if a value is given.
//0 means an unbounded cache, a positive value a cache holding at most that many
//coefficients, and a negative value no cache at all.
func (o *Options) CacheSize(size ...int64) int64 {
	ret := o.cacheSize
	if len(size) > 0 {
		o.cacheSize = size[0]
	}
	return ret
}

//ExactLimit returns the crossover between exact and log-domain evaluation of
//the coupling coefficients and sets it, if a valid value is given.
func (o *Options) ExactLimit(limit ...int) int {
	ret := o.exactLimit
	if len(limit) > 0 && limit[0] >= 0 {
		o.exactLimit = limit[0]
	}
	return ret
}

//Generator returns the term generator and sets it, if a non-nil one is given.
func (o *Options) Generator(g ...TermGenerator) TermGenerator {
	ret := o.generator
	if len(g) > 0 && g[0] != nil {
		o.generator = g[0]
	}
	return ret
}

//Kernel returns the coupling kernel shared between matrices, if any, and sets it,
//if a non-nil one is given. When a kernel is set, CacheSize and ExactLimit are ignored.
func (o *Options) Kernel(k ...*coupling.Kernel) *coupling.Kernel {
	ret := o.kernel
	if len(k) > 0 && k[0] != nil {
		o.kernel = k[0]
	}
	return ret
}

//Logger returns the logger, slog.Default() if none was set, and sets it,
//if a non-nil one is given.
func (o *Options) Logger(l ...*slog.Logger) *slog.Logger {
	ret := o.logger
	if len(l) > 0 && l[0] != nil {
		o.logger = l[0]
	}
	if ret == nil {
		ret = slog.Default()
	}
	return ret
}

//newKernel returns the kernel to use with these options, and a function that
//releases it once the caller is done.
func (o *Options) newKernel() (*coupling.Kernel, func(), error) {
	if o.kernel != nil {
		return o.kernel, func() {}, nil
	}
	switch {
	case o.cacheSize < 0:
		return coupling.NewKernel(nil, o.exactLimit), func() {}, nil
	case o.cacheSize == 0:
		return coupling.NewKernel(coupling.NewMapCache(), o.exactLimit), func() {}, nil
	}
	c, err := coupling.NewBoundedCache(o.cacheSize)
	if err != nil {
		return nil, nil, newError(ErrOptions, "Options.newKernel", "%v", err)
	}
	return coupling.NewKernel(c, o.exactLimit), c.Close, nil
}

type yamlOptions struct {
	Cpus       *int   `yaml:"cpus"`
	CacheSize  *int64 `yaml:"cache_size"`
	ExactLimit *int   `yaml:"exact_limit"`
}

//ReadOptions reads options in YAML form from r, e.g.
//
//	cpus: 4
//	cache_size: 100000
//	exact_limit: 80
//
//Missing keys keep their default values.
func ReadOptions(r io.Reader) (*Options, error) {
	o := DefaultOptions()
	var y yamlOptions
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&y); err != nil && !errors.Is(err, io.EOF) {
		return nil, newError(ErrOptions, "ReadOptions", "%v", err)
	}
	if y.Cpus != nil {
		if *y.Cpus <= 0 {
			return nil, newError(ErrOptions, "ReadOptions", "cpus must be positive, got %d", *y.Cpus)
		}
		o.Cpus(*y.Cpus)
	}
	if y.CacheSize != nil {
		o.CacheSize(*y.CacheSize)
	}
	if y.ExactLimit != nil {
		if *y.ExactLimit < 0 {
			return nil, newError(ErrOptions, "ReadOptions", "exact_limit must not be negative, got %d", *y.ExactLimit)
		}
		o.ExactLimit(*y.ExactLimit)
	}
	return o, nil
}
