/*
 * exprio_test.go, part of angmom.
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

package exprio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/angmom"
	"github.com/rmera/angmom/coupling"
	"github.com/rmera/angmom/orbital"
)

func matrix(Te *testing.T) *angmom.Matrix {
	Te.Helper()
	var cfgs []orbital.Configuration
	for _, n := range []int{1, 2} {
		a, err := orbital.NewNonRelativistic(n, 0, 0, coupling.Half(1))
		if err != nil {
			Te.Fatal(err)
		}
		b, err := orbital.NewNonRelativistic(2, 1, 1, coupling.Half(1))
		if err != nil {
			Te.Fatal(err)
		}
		cfgs = append(cfgs, orbital.Configuration{a, b})
	}
	m, err := angmom.NewMatrix(angmom.Sum(angmom.OneBodyHamiltonian{}, angmom.CoulombInteraction{}), cfgs, nil)
	if err != nil {
		Te.Fatal(err)
	}
	return m
}

func same(Te *testing.T, m, back *angmom.Matrix) {
	Te.Helper()
	r, c := m.Dims()
	if r2, c2 := back.Dims(); r2 != r || c2 != c {
		Te.Fatalf("read a %dx%d matrix, wrote %dx%d", r2, c2, r, c)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			want, got := m.At(i, j), back.At(i, j)
			if want.String() != got.String() {
				Te.Errorf("cell %d %d: wrote %v, read %v", i, j, want, got)
			}
			for _, t := range want.Terms() {
				if got.Coeff(t.Atom.String()) != t.Coeff {
					Te.Errorf("cell %d %d: coefficient of %v changed", i, j, t.Atom)
				}
			}
		}
	}
}

func TestRoundTrip(Te *testing.T) {
	m := matrix(Te)
	dir := Te.TempDir()
	sizes := make(map[string]int64)
	for _, name := range []string{"m.json", "m.json.zst", "m.json.gz"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, m); err != nil {
			Te.Fatal(err)
		}
		back, err := ReadFile(path)
		if err != nil {
			Te.Fatal(err)
		}
		same(Te, m, back)
		info, err := os.Stat(path)
		if err != nil {
			Te.Fatal(err)
		}
		sizes[name] = info.Size()
	}
	if sizes["m.json.zst"] >= sizes["m.json"] || sizes["m.json.gz"] >= sizes["m.json"] {
		Te.Errorf("compressed files are not smaller: %v", sizes)
	}
}

func TestStreams(Te *testing.T) {
	m := matrix(Te)
	var buf bytes.Buffer
	if err := Write(&buf, "stream.zst", m); err != nil {
		Te.Fatal(err)
	}
	back, err := Read(&buf, "stream.zst")
	if err != nil {
		Te.Fatal(err)
	}
	same(Te, m, back)
	//the compression is taken from the name, so a mismatch fails
	buf.Reset()
	if err := Write(&buf, "stream.gz", m); err != nil {
		Te.Fatal(err)
	}
	if _, err := Read(&buf, "stream.json"); err == nil {
		Te.Error("read gzip data as plain JSON")
	}
}

func TestErrors(Te *testing.T) {
	_, err := ReadFile(filepath.Join(Te.TempDir(), "missing.json"))
	var e *Error
	if !errors.As(err, &e) || !errors.Is(err, os.ErrNotExist) {
		Te.Errorf("unexpected error %v", err)
	}
	if len(e.Decorate("")) != 1 || e.FileName() == "" {
		Te.Errorf("unexpected decoration %v", e.Decorate(""))
	}
}
