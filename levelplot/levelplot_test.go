/*
 * levelplot_test.go, part of angmom.
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

package levelplot

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/angmom"
	"github.com/rmera/angmom/coupling"
	"github.com/rmera/angmom/orbital"
)

//TestPlot draws the two-level diagram of the 1s²/2s² configuration
//interaction next to the uncoupled diagonal energies.
func TestPlot(Te *testing.T) {
	var cfgs []orbital.Configuration
	for _, n := range []int{1, 2} {
		a, err := orbital.NewNonRelativistic(n, 0, 0, coupling.Half(1))
		if err != nil {
			Te.Fatal(err)
		}
		b, err := orbital.NewNonRelativistic(n, 0, 0, -coupling.Half(1))
		if err != nil {
			Te.Fatal(err)
		}
		cfgs = append(cfgs, orbital.Configuration{a, b})
	}
	m, err := angmom.NewMatrix(angmom.CoulombInteraction{}, cfgs, nil)
	if err != nil {
		Te.Fatal(err)
	}
	values := map[string]float64{
		"R^0(1s 1s;1s 1s)": 1,
		"R^0(2s 2s;2s 2s)": 0.5,
		"R^0(1s 1s;2s 2s)": 0.2,
		"R^0(2s 2s;1s 1s)": 0.2,
	}
	ci, err := FromMatrix("CI", m, values)
	if err != nil {
		Te.Fatal(err)
	}
	if len(ci.Levels) != 2 || math.Abs(ci.Levels[0]+ci.Levels[1]-1.5) > 1e-10 {
		Te.Errorf("unexpected levels %v", ci.Levels)
	}
	diag := Series{Name: "diagonal", Levels: []float64{1, 0.5}}
	dir := Te.TempDir()
	for _, name := range []string{"levels.png", "levels.svg"} {
		path := filepath.Join(dir, name)
		if err := Save(path, "1s² and 2s²", diag, ci); err != nil {
			Te.Fatal(err)
		}
		info, err := os.Stat(path)
		if err != nil {
			Te.Fatal(err)
		}
		if info.Size() == 0 {
			Te.Errorf("empty plot %s", name)
		}
	}
	if _, err := Plot("nothing"); !errors.Is(err, ErrNoSeries) {
		Te.Errorf("plotted no series: %v", err)
	}
	for _, e := range []float64{math.NaN(), math.Inf(1)} {
		_, err := Plot("bad", Series{Name: "bad", Levels: []float64{0, e}})
		if !errors.Is(err, ErrInvalidLevel) {
			Te.Errorf("plotted a %v level: %v", e, err)
		}
	}
	err = Save(filepath.Join(dir, "none.png"), "nothing")
	var perr *Error
	if !errors.As(err, &perr) || !errors.Is(err, ErrNoSeries) {
		Te.Errorf("saved no series: %v", err)
	} else if d := perr.Decorate(""); len(d) != 2 || d[1] != "Save" {
		Te.Errorf("decorations %v, want Plot then Save", d)
	}
}

func TestColors(Te *testing.T) {
	r, g, b := colors(0, 3)
	if r != 255 || g != 0 || b != 0 {
		Te.Errorf("first color is %d %d %d, want red", r, g, b)
	}
	seen := make(map[[3]uint8]bool)
	for i := 0; i < 5; i++ {
		r, g, b := colors(i, 5)
		seen[[3]uint8{r, g, b}] = true
	}
	if len(seen) != 5 {
		Te.Errorf("colors repeat: %v", seen)
	}
}
