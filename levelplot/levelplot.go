/*
 * levelplot.go, part of angmom.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package levelplot draws energy-level diagrams: each series of levels, such as
//the eigenvalues of one energy matrix, is drawn as a column of horizontal bars.
package levelplot

import (
	"image/color"
	"math"

	"github.com/rmera/angmom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Series is a named set of energy levels.
type Series struct {
	Name   string
	Levels []float64
}

//FromMatrix evaluates m with values and returns its eigenvalues as a Series.
func FromMatrix(name string, m *angmom.Matrix, values map[string]float64) (Series, error) {
	levels, err := m.Levels(values)
	if err != nil {
		return Series{}, errDecorate(err, "FromMatrix")
	}
	return Series{Name: name, Levels: levels}, nil
}

//width of a bar, as a fraction of the space for one series.
const width = 0.8

//Plot returns a level diagram with one column per series.
func Plot(title string, series ...Series) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, newError(ErrNoSeries, "Plot", "")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.Y.Label.Text = "Energy"
	p.Add(plotter.NewGrid())
	names := make([]string, len(series))
	for i, s := range series {
		names[i] = s.Name
		r, g, b := colors(i, len(series))
		for _, e := range s.Levels {
			if math.IsNaN(e) || math.IsInf(e, 0) {
				return nil, newError(ErrInvalidLevel, "Plot", "%v in series %q", e, s.Name)
			}
			x := float64(i)
			l, err := plotter.NewLine(plotter.XYs{{X: x - width/2, Y: e}, {X: x + width/2, Y: e}})
			if err != nil {
				return nil, newError(ErrDraw, "Plot", "%v", err)
			}
			l.LineStyle.Width = vg.Points(2)
			l.LineStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
			p.Add(l)
		}
	}
	p.NominalX(names...)
	return p, nil
}

//Save draws the level diagram into filename. The format is taken from the
//extension (png, svg, pdf, eps...).
func Save(filename, title string, series ...Series) error {
	p, err := Plot(title, series...)
	if err != nil {
		return errDecorate(err, "Save")
	}
	w := vg.Length(1+len(series)) * vg.Inch
	if err := p.Save(max(w, 3*vg.Inch), 4*vg.Inch, filename); err != nil {
		return newError(ErrDraw, "Save", "%s: %v", filename, err)
	}
	return nil
}

//colors sweeps the hue from red to violet over steps keys, at full
//saturation and value.
func colors(key, steps int) (r, g, b uint8) {
	h := 270 * float64(key) / float64(max(steps, 1))
	return hsv2rgb(h, 1, 1)
}

//takes hue (0-360), s and v (0-1), returns r,g,b (0-255)
func hsv2rgb(h, s, v float64) (uint8, uint8, uint8) {
	if s == 0 {
		c := uint8(255 * v)
		return c, c, c
	}
	h /= 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return uint8(255 * r), uint8(255 * g), uint8(255 * b)
}
