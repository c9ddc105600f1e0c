/*
 * cache_test.go, part of angmom.
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
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMapCacheKernel(Te *testing.T) {
	c := NewMapCache()
	k := NewKernel(c)
	a := k.ClebschGordan(Int(2), Int(1), Int(1), Int(-1), Int(2))
	b := k.ClebschGordan(Int(2), Int(1), Int(1), Int(-1), Int(2))
	if a != b || a != ClebschGordan(Int(2), Int(1), Int(1), Int(-1), Int(2)) {
		Te.Errorf("cached and uncached values differ: %v %v", a, b)
	}
	hits, misses := k.Stats()
	if hits != 1 || misses != 1 {
		Te.Errorf("hits=%d misses=%d, want 1 and 1", hits, misses)
	}
	//selection-rule zeros are not cached
	k.Wigner3j(Int(1), Int(1), Int(1), Int(0), Int(0), Int(1))
	if c.Len() != 1 {
		Te.Errorf("cache holds %d entries, want 1", c.Len())
	}
}

func TestKernelConcurrent(Te *testing.T) {
	k := NewKernel(NewMapCache())
	want := Wigner6j(Int(3), Int(2), Int(4), Int(2), Int(3), Int(1))
	var wg sync.WaitGroup
	results := make(chan float64, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- k.Wigner6j(Int(3), Int(2), Int(4), Int(2), Int(3), Int(1))
		}()
	}
	wg.Wait()
	close(results)
	for v := range results {
		if v != want {
			Te.Errorf("concurrent 6j gave %v, want %v", v, want)
		}
	}
	hits, misses := k.Stats()
	if hits+misses != 16 {
		Te.Errorf("%d lookups recorded, want 16", hits+misses)
	}
}

func TestBoundedCache(Te *testing.T) {
	if _, err := NewBoundedCache(0); !errors.Is(err, ErrDomain) {
		Te.Errorf("NewBoundedCache(0) should fail, got %v", err)
	}
	c, err := NewBoundedCache(1000)
	if err != nil {
		Te.Fatal(err)
	}
	defer c.Close()
	key := Key{Symbol: Symbol3j, J: [6]HalfInt{Int(1), Int(1), Int(0), Int(0), Int(0), Int(0)}}
	c.Set(key, 0.25)
	c.Wait()
	v, ok := c.Get(key)
	if !ok || v != 0.25 {
		Te.Errorf("bounded cache returned %v %v", v, ok)
	}
	k := NewKernel(c)
	x := k.Wigner3j(Int(2), Int(2), Int(2), Int(0), Int(0), Int(0))
	if x != Wigner3j(Int(2), Int(2), Int(2), Int(0), Int(0), Int(0)) {
		Te.Errorf("bounded kernel gave %v", x)
	}
}

func TestKeyString(Te *testing.T) {
	k := Key{Symbol: SymbolCG, J: [6]HalfInt{Half(1), Half(-1), Int(1), Int(0), Half(1), Half(-1)}}
	if s := k.String(); s != "3:1:-1:2:0:1:-1" {
		Te.Errorf("Key.String()=%q", s)
	}
}

func TestCollectors(Te *testing.T) {
	k := NewKernel(NewMapCache())
	cs := k.Collectors()
	reg := prometheus.NewRegistry()
	reg.MustRegister(cs...)
	for i := 0; i < 3; i++ {
		k.Wigner3j(Int(1), Int(1), Int(2), Int(1), Int(-1), Int(0))
	}
	if v := testutil.ToFloat64(cs[0]); v != 2 {
		Te.Errorf("hits counter=%v, want 2", v)
	}
	if v := testutil.ToFloat64(cs[1]); v != 1 {
		Te.Errorf("misses counter=%v, want 1", v)
	}
	if n, err := testutil.GatherAndCount(reg); err != nil || n != 2 {
		Te.Errorf("registry exposes %d metrics (%v), want 2", n, err)
	}
}
