/*
 * ranks.go, part of angmom.
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

package tensor

import (
	"math"

	"github.com/rmera/angmom/coupling"
	"github.com/rmera/angmom/lincomb"
	"github.com/rmera/angmom/orbital"
	"golang.org/x/exp/slices"
)

//Kind identifies a family of tensors of arbitrary rank.
type Kind int

const (
	//Spherical is the family of the C^(k).
	Spherical Kind = iota
)

//Ranks returns, in ascending order, the ranks k for which a tensor of the given
//kind can have a non-zero matrix element between a and b. For spherical tensors
//those are the k in the triangle range of the orbital angular momenta with
//la+lb+k even, and, for relativistic orbitals, also in the triangle range of the j.
func Ranks(a orbital.SpinOrbital, kind Kind, b orbital.SpinOrbital) ([]int, error) {
	if kind != Spherical {
		return nil, newError(ErrUnsupportedKind, "Ranks", "kind %d", kind)
	}
	var jrange []coupling.HalfInt
	switch a := a.(type) {
	case orbital.Relativistic:
		rb, ok := b.(orbital.Relativistic)
		if !ok {
			return nil, newError(ErrBasisMismatch, "Ranks", "%v and %v", a, b)
		}
		jrange = coupling.TriangleRange(a.J(), rb.J())
	case orbital.NonRelativistic:
		if _, ok := b.(orbital.NonRelativistic); !ok {
			return nil, newError(ErrBasisMismatch, "Ranks", "%v and %v", a, b)
		}
	default:
		return nil, newError(ErrBasisMismatch, "Ranks", "unsupported orbital %T", a)
	}
	la, lb := a.L(), b.L()
	var ret []int
	for _, k := range coupling.TriangleRange(coupling.Int(la), coupling.Int(lb)) {
		if (la+lb+k.Int())%2 != 0 {
			continue
		}
		if jrange != nil && !slices.Contains(jrange, k) {
			continue
		}
		ret = append(ret, k.Int())
	}
	return ret, nil
}

//Dipole returns the Cartesian components x, y, z of the unit vector r/|r|,
//as complex combinations of the components of C^(1).
func Dipole() [3]lincomb.LinearCombination[Component, complex128] {
	c := C(1)
	m1, c0, p1 := Component{t: c, q: -1}, Component{t: c, q: 0}, Component{t: c, q: 1}
	s := complex(1/math.Sqrt2, 0)
	x := lincomb.FromTerms(
		lincomb.Term[Component, complex128]{Atom: m1, Coeff: s},
		lincomb.Term[Component, complex128]{Atom: p1, Coeff: -s},
	)
	y := lincomb.FromTerms(
		lincomb.Term[Component, complex128]{Atom: m1, Coeff: 1i * s},
		lincomb.Term[Component, complex128]{Atom: p1, Coeff: 1i * s},
	)
	z := lincomb.Lift[Component, complex128](c0)
	return [3]lincomb.LinearCombination[Component, complex128]{x, y, z}
}

//MatrixElement extends OrbitalWignerEckart linearly to a combination of components.
func MatrixElement[N lincomb.Number](e *Engine, a orbital.SpinOrbital, l lincomb.LinearCombination[Component, N], b orbital.SpinOrbital) (N, error) {
	var sum N
	for _, t := range l.Terms() {
		v, err := e.OrbitalWignerEckart(a, t.Atom, b)
		if err != nil {
			return 0, errDecorate(err, "MatrixElement")
		}
		sum += t.Coeff * lincomb.Real[N](v)
	}
	return sum, nil
}
