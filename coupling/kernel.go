/*
 * kernel.go, part of angmom.
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
 */

package coupling

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

//DefaultExactLimit is the default crossover between exact and log-domain evaluation.
//A 3j symbol is evaluated exactly when j1+j2+j3 <= limit, a 6j symbol when the
//smallest of its three Racah upper bounds (e.g. j1+j2+j4+j5) is <= limit. Exact
//values are correctly rounded to float64. Above the limit, factorials are taken
//from math.Lgamma and the alternating sum is done in float64. That sum cancels:
//with many terms the absolute error reaches 1e-9 for j around 40 and keeps
//growing with j, so the log domain is only meant for j well above 100.
const DefaultExactLimit = 400

//Kernel evaluates coupling coefficients, memoizing them in its Cache.
//A Kernel is safe for concurrent use provided its Cache is.
type Kernel struct {
	cache      Cache
	exactLimit int
	hits       atomic.Uint64
	misses     atomic.Uint64
}

//NewKernel returns a kernel memoizing in cache. A nil cache disables memoization.
//The optional exactLimit replaces DefaultExactLimit.
func NewKernel(cache Cache, exactLimit ...int) *Kernel {
	k := &Kernel{cache: cache, exactLimit: DefaultExactLimit}
	if len(exactLimit) > 0 && exactLimit[0] >= 0 {
		k.exactLimit = exactLimit[0]
	}
	return k
}

//plain backs the package-level functions. It has no cache, so it holds no state.
var plain = NewKernel(nil)

//ExactLimit returns the exact/log-domain crossover of the kernel.
func (k *Kernel) ExactLimit() int { return k.exactLimit }

//Cache returns the cache of the kernel, or nil.
func (k *Kernel) Cache() Cache { return k.cache }

//Stats returns the number of cache hits and misses so far.
func (k *Kernel) Stats() (hits, misses uint64) {
	return k.hits.Load(), k.misses.Load()
}

func (k *Kernel) lookup(key Key, compute func() float64) float64 {
	if k.cache == nil {
		return compute()
	}
	if v, ok := k.cache.Get(key); ok {
		k.hits.Add(1)
		return v
	}
	k.misses.Add(1)
	v := compute()
	k.cache.Set(key, v)
	return v
}

//Wigner3j returns the 3j symbol (j1 j2 j3; m1 m2 m3).
func (k *Kernel) Wigner3j(j1, j2, j3, m1, m2, m3 HalfInt) float64 {
	if !threeJAllowed(j1, j2, j3, m1, m2, m3) {
		return 0
	}
	key := Key{Symbol: Symbol3j, J: [6]HalfInt{j1, j2, j3, m1, m2, m3}}
	return k.lookup(key, func() float64 {
		if int(j1+j2+j3) <= 2*k.exactLimit {
			return threeJExact(j1, j2, j3, m1, m2, m3).Float()
		}
		return threeJLog(j1, j2, j3, m1, m2, m3)
	})
}

//Wigner6j returns the 6j symbol {j1 j2 j3; j4 j5 j6}.
func (k *Kernel) Wigner6j(j1, j2, j3, j4, j5, j6 HalfInt) float64 {
	if !sixJAllowed(j1, j2, j3, j4, j5, j6) {
		return 0
	}
	key := Key{Symbol: Symbol6j, J: [6]HalfInt{j1, j2, j3, j4, j5, j6}}
	return k.lookup(key, func() float64 {
		bound := min(j1+j2+j4+j5, j2+j3+j5+j6, j3+j1+j6+j4)
		if int(bound) <= 2*k.exactLimit {
			return sixJExact(j1, j2, j3, j4, j5, j6).Float()
		}
		return sixJLog(j1, j2, j3, j4, j5, j6)
	})
}

//ClebschGordan returns <j1 m1; j2 m2|j3 m3>. m3 defaults to m1+m2.
//It is 0 whenever the selection rules are violated.
func (k *Kernel) ClebschGordan(j1, m1, j2, m2, j3 HalfInt, m3 ...HalfInt) float64 {
	M3 := m1 + m2
	if len(m3) > 0 {
		M3 = m3[0]
	}
	if !threeJAllowed(j1, j2, j3, m1, m2, -M3) {
		return 0
	}
	key := Key{Symbol: SymbolCG, J: [6]HalfInt{j1, m1, j2, m2, j3, M3}}
	return k.lookup(key, func() float64 {
		if int(j1+j2+j3) <= 2*k.exactLimit {
			return ClebschGordanExact(j1, m1, j2, m2, j3, M3).Float()
		}
		return clebschGordanLog(j1, m1, j2, m2, j3, M3)
	})
}

//Collectors returns Prometheus collectors exposing the cache hits and misses
//of the kernel. Registering them is up to the caller.
func (k *Kernel) Collectors() []prometheus.Collector {
	hits := prometheus.NewCounterFunc(prometheus.CounterOpts{
		Namespace: "angmom",
		Subsystem: "coupling",
		Name:      "cache_hits_total",
		Help:      "Coupling coefficients served from the cache.",
	}, func() float64 { return float64(k.hits.Load()) })
	misses := prometheus.NewCounterFunc(prometheus.CounterOpts{
		Namespace: "angmom",
		Subsystem: "coupling",
		Name:      "cache_misses_total",
		Help:      "Coupling coefficients computed because they were not cached.",
	}, func() float64 { return float64(k.misses.Load()) })
	return []prometheus.Collector{hits, misses}
}

//Wigner3j returns the 3j symbol (j1 j2 j3; m1 m2 m3), without memoization.
func Wigner3j(j1, j2, j3, m1, m2, m3 HalfInt) float64 {
	return plain.Wigner3j(j1, j2, j3, m1, m2, m3)
}

//Wigner6j returns the 6j symbol {j1 j2 j3; j4 j5 j6}, without memoization.
func Wigner6j(j1, j2, j3, j4, j5, j6 HalfInt) float64 {
	return plain.Wigner6j(j1, j2, j3, j4, j5, j6)
}

//ClebschGordan returns <j1 m1; j2 m2|j3 m3>, without memoization.
//m3 defaults to m1+m2.
func ClebschGordan(j1, m1, j2, m2, j3 HalfInt, m3 ...HalfInt) float64 {
	return plain.ClebschGordan(j1, m1, j2, m2, j3, m3...)
}
