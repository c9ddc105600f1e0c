/*
 * cache.go, part of angmom.
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
	"fmt"
	"strconv"
	"sync"

	"github.com/dgraph-io/ristretto/v2"
)

//Symbol identifies the kind of coefficient stored under a Key.
type Symbol uint8

const (
	Symbol3j Symbol = iota + 1
	Symbol6j
	SymbolCG
)

//Key identifies a coefficient: its kind and its six arguments, in the order the
//corresponding Kernel method takes them.
type Key struct {
	Symbol Symbol
	J      [6]HalfInt
}

//String returns a compact representation of the key, also used as the
//key of the bounded cache.
func (k Key) String() string {
	b := make([]byte, 0, 32)
	b = strconv.AppendUint(b, uint64(k.Symbol), 10)
	for _, j := range k.J {
		b = append(b, ':')
		b = strconv.AppendInt(b, int64(j), 10)
	}
	return string(b)
}

//Cache memoizes coupling coefficients. Implementations must be safe for
//concurrent use.
type Cache interface {
	Get(Key) (float64, bool)
	Set(Key, float64)
}

//MapCache is an unbounded Cache. Entries are never evicted.
type MapCache struct {
	m sync.Map
}

//NewMapCache returns an empty MapCache.
func NewMapCache() *MapCache { return new(MapCache) }

func (c *MapCache) Get(k Key) (float64, bool) {
	v, ok := c.m.Load(k)
	if !ok {
		return 0, false
	}
	return v.(float64), true
}

func (c *MapCache) Set(k Key, v float64) { c.m.Store(k, v) }

//Len returns the number of stored coefficients.
func (c *MapCache) Len() int {
	n := 0
	c.m.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

//BoundedCache is a Cache holding at most a given number of coefficients.
//Admission and eviction follow ristretto's TinyLFU policy, so a Set
//may be dropped; a dropped coefficient is simply recomputed next time.
type BoundedCache struct {
	c *ristretto.Cache[string, float64]
}

//NewBoundedCache returns a cache that holds at most maxEntries coefficients.
func NewBoundedCache(maxEntries int64) (*BoundedCache, error) {
	if maxEntries <= 0 {
		return nil, newError(ErrDomain, fmt.Sprintf("cache size must be positive, got %d", maxEntries), "NewBoundedCache")
	}
	c, err := ristretto.NewCache(&ristretto.Config[string, float64]{
		NumCounters: 10 * maxEntries,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, newError(ErrDomain, err.Error(), "NewBoundedCache")
	}
	return &BoundedCache{c: c}, nil
}

func (c *BoundedCache) Get(k Key) (float64, bool) { return c.c.Get(k.String()) }

func (c *BoundedCache) Set(k Key, v float64) { c.c.Set(k.String(), v, 1) }

//Wait blocks until all the pending writes have been applied.
func (c *BoundedCache) Wait() { c.c.Wait() }

//Close stops the cache goroutines. The cache must not be used afterwards.
func (c *BoundedCache) Close() { c.c.Close() }
