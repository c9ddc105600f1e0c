/*
 * matrix.go, part of angmom.
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
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rmera/angmom/orbital"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

//Matrix is a matrix of energy expressions, with rows indexed by bra
//configurations and columns by ket configurations.
type Matrix struct {
	rows, cols int
	data       []EnergyExpression
}

//NewMatrix returns the matrix of op over cfgs, <cfgs[i]|op|cfgs[j]>.
//overlaps is handed to the term generator, and must be empty for the default one.
func NewMatrix(op Operator, cfgs []orbital.Configuration, overlaps []Overlap, options ...*Options) (*Matrix, error) {
	m, err := NewMatrixAB(cfgs, op, cfgs, overlaps, options...)
	if err != nil {
		return nil, errDecorate(err, "NewMatrix")
	}
	return m, nil
}

//NewMatrixAB returns the matrix <bra[i]|op|ket[j]>. The cells are computed
//concurrently; the first error found aborts the construction and is returned.
func NewMatrixAB(bra []orbital.Configuration, op Operator, ket []orbital.Configuration, overlaps []Overlap, options ...*Options) (*Matrix, error) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	kern, release, err := o.newKernel()
	if err != nil {
		return nil, errDecorate(err, "NewMatrixAB")
	}
	defer release()
	in := NewIntegrator(kern)
	gen := o.Generator()
	logger := o.Logger()
	start := time.Now()
	h0, m0 := kern.Stats()

	ret := &Matrix{rows: len(bra), cols: len(ket), data: make([]EnergyExpression, len(bra)*len(ket))}
	var nterms atomic.Int64
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(o.Cpus())
	for i, b := range bra {
		for j, k := range ket {
			i, j, b, k := i, j, b, k
			g.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				terms, err := gen.Terms(op, b, k, overlaps)
				if err != nil {
					return errDecorate(err, "NewMatrixAB")
				}
				var contribs []Weighted
				for _, t := range terms {
					w, err := in.IntegrateSpinors(t)
					if err != nil {
						return errDecorate(err, "NewMatrixAB")
					}
					contribs = append(contribs, w...)
				}
				e := NewExpression(contribs...)
				ret.data[i*ret.cols+j] = e
				nterms.Add(int64(len(terms)))
				logger.Debug("matrix cell", "row", i, "col", j, "terms", len(terms), "monomials", e.Len())
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	h, m := kern.Stats()
	logger.Info("energy matrix", "operator", op.String(), "rows", ret.rows, "cols", ret.cols,
		"terms", nterms.Load(), "cache_hits", h-h0, "cache_misses", m-m0, "elapsed", time.Since(start))
	return ret, nil
}

//Dims returns the number of rows and columns of m.
func (m *Matrix) Dims() (int, int) { return m.rows, m.cols }

//At returns the expression in row i and column j. It panics if i or j are out of range.
func (m *Matrix) At(i, j int) EnergyExpression {
	if i < 0 || j < 0 || i >= m.rows || j >= m.cols {
		panic(ErrIndexOutOfRange)
	}
	return m.data[i*m.cols+j]
}

func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "[%d,%d] %v\n", i, j, m.At(i, j))
		}
	}
	return b.String()
}

//Evaluate returns the numerical matrix obtained by replacing every symbol by
//its value in values, keyed by the symbol's String form.
func (m *Matrix) Evaluate(values map[string]float64) (*mat.Dense, error) {
	if m.rows == 0 || m.cols == 0 {
		return nil, newError(ErrShape, "Matrix.Evaluate", "empty %dx%d matrix", m.rows, m.cols)
	}
	ret := mat.NewDense(m.rows, m.cols, nil)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			v, err := m.At(i, j).Evaluate(values)
			if err != nil {
				return nil, errDecorate(err, "Matrix.Evaluate")
			}
			ret.Set(i, j, v)
		}
	}
	return ret, nil
}

//Levels evaluates m and returns its eigenvalues in ascending order.
//m must be square and its evaluation symmetric.
func (m *Matrix) Levels(values map[string]float64) ([]float64, error) {
	if m.rows != m.cols {
		return nil, newError(ErrShape, "Matrix.Levels", "matrix is %dx%d", m.rows, m.cols)
	}
	d, err := m.Evaluate(values)
	if err != nil {
		return nil, errDecorate(err, "Matrix.Levels")
	}
	sym := mat.NewSymDense(m.rows, nil)
	for i := 0; i < m.rows; i++ {
		for j := i; j < m.cols; j++ {
			a, b := d.At(i, j), d.At(j, i)
			if math.Abs(a-b) > 1e-10*math.Max(1, math.Abs(a)) {
				return nil, newError(ErrNotSymmetric, "Matrix.Levels", "element (%d,%d) is %g but (%d,%d) is %g", i, j, a, j, i, b)
			}
			sym.SetSym(i, j, a)
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, false); !ok {
		return nil, newError(ErrShape, "Matrix.Levels", "eigendecomposition failed")
	}
	return eig.Values(nil), nil
}

type jsonMatrix struct {
	Rows  int                `json:"rows"`
	Cols  int                `json:"cols"`
	Cells []EnergyExpression `json:"cells"`
}

//MarshalJSON encodes m with its cells in row-major order.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonMatrix{Rows: m.rows, Cols: m.cols, Cells: m.data})
}

//UnmarshalJSON decodes a matrix written by MarshalJSON.
func (m *Matrix) UnmarshalJSON(b []byte) error {
	var in jsonMatrix
	if err := json.Unmarshal(b, &in); err != nil {
		return errDecorate(err, "Matrix.UnmarshalJSON")
	}
	if in.Rows < 0 || in.Cols < 0 || len(in.Cells) != in.Rows*in.Cols {
		return newError(ErrShape, "Matrix.UnmarshalJSON", "%d cells for a %dx%d matrix", len(in.Cells), in.Rows, in.Cols)
	}
	m.rows, m.cols, m.data = in.Rows, in.Cols, in.Cells
	return nil
}
