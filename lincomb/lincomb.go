/*
 * lincomb.go, part of angmom.
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

//Package lincomb implements finite linear combinations of symbolic atoms,
//with real or complex coefficients. A LinearCombination is immutable: every
//operation returns a new value. Atoms with a zero coefficient are never stored,
//so two combinations are equal exactly when their stored terms are.
package lincomb

import (
	"fmt"
	"math/cmplx"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

//Number is the set of allowed coefficient types.
type Number interface {
	float64 | complex128
}

//Atom is anything that can be linearly combined. The String form is used
//to give the terms a stable order.
type Atom interface {
	comparable
	String() string
}

//Term is an atom with its coefficient.
type Term[A Atom, N Number] struct {
	Atom  A
	Coeff N
}

//LinearCombination is a finite sum of atoms times coefficients.
//The zero value is the empty combination.
type LinearCombination[A Atom, N Number] struct {
	terms map[A]N
}

//Real converts a float64 to the coefficient type N.
func Real[N Number](x float64) N {
	var n N
	switch p := any(&n).(type) {
	case *float64:
		*p = x
	case *complex128:
		*p = complex(x, 0)
	}
	return n
}

//New returns the combination c*a.
func New[A Atom, N Number](a A, c N) LinearCombination[A, N] {
	if c == 0 {
		return LinearCombination[A, N]{}
	}
	return LinearCombination[A, N]{terms: map[A]N{a: c}}
}

//Lift returns the combination 1*a.
func Lift[A Atom, N Number](a A) LinearCombination[A, N] {
	return New(a, Real[N](1))
}

//FromTerms returns the sum of the given terms.
func FromTerms[A Atom, N Number](terms ...Term[A, N]) LinearCombination[A, N] {
	m := make(map[A]N, len(terms))
	for _, t := range terms {
		m[t.Atom] += t.Coeff
	}
	return simplify(m)
}

func simplify[A Atom, N Number](m map[A]N) LinearCombination[A, N] {
	for a, c := range m {
		if c == 0 {
			delete(m, a)
		}
	}
	if len(m) == 0 {
		return LinearCombination[A, N]{}
	}
	return LinearCombination[A, N]{terms: m}
}

func (l LinearCombination[A, N]) clone(extra int) map[A]N {
	m := make(map[A]N, len(l.terms)+extra)
	for a, c := range l.terms {
		m[a] = c
	}
	return m
}

//Add returns l+o. Coefficients of shared atoms are summed.
func (l LinearCombination[A, N]) Add(o LinearCombination[A, N]) LinearCombination[A, N] {
	m := l.clone(len(o.terms))
	for a, c := range o.terms {
		m[a] += c
	}
	return simplify(m)
}

//Sub returns l-o.
func (l LinearCombination[A, N]) Sub(o LinearCombination[A, N]) LinearCombination[A, N] {
	return l.Add(o.Neg())
}

//Neg returns -l.
func (l LinearCombination[A, N]) Neg() LinearCombination[A, N] {
	return l.Scale(Real[N](-1))
}

//Scale returns c*l. Scaling by 0 gives the empty combination.
func (l LinearCombination[A, N]) Scale(c N) LinearCombination[A, N] {
	if c == 0 {
		return LinearCombination[A, N]{}
	}
	m := make(map[A]N, len(l.terms))
	for a, v := range l.terms {
		m[a] = c * v
	}
	return simplify(m)
}

//Coeff returns the coefficient of a, which is 0 if a is absent.
func (l LinearCombination[A, N]) Coeff(a A) N { return l.terms[a] }

//Len returns the number of atoms with a non-zero coefficient.
func (l LinearCombination[A, N]) Len() int { return len(l.terms) }

//IsZero returns true for the empty combination.
func (l LinearCombination[A, N]) IsZero() bool { return len(l.terms) == 0 }

//Atoms returns the atoms of l, sorted by their String form.
func (l LinearCombination[A, N]) Atoms() []A {
	atoms := maps.Keys(l.terms)
	slices.SortFunc(atoms, func(a, b A) int { return strings.Compare(a.String(), b.String()) })
	return atoms
}

//Terms returns the terms of l, sorted by the String form of their atoms.
func (l LinearCombination[A, N]) Terms() []Term[A, N] {
	atoms := l.Atoms()
	ret := make([]Term[A, N], len(atoms))
	for i, a := range atoms {
		ret[i] = Term[A, N]{Atom: a, Coeff: l.terms[a]}
	}
	return ret
}

//Equal returns true if l and o have the same atoms with the same coefficients.
func (l LinearCombination[A, N]) Equal(o LinearCombination[A, N]) bool {
	return maps.Equal(l.terms, o.terms)
}

//EqualApprox returns true if every coefficient of l-o has a modulus below tol.
func (l LinearCombination[A, N]) EqualApprox(o LinearCombination[A, N], tol float64) bool {
	d := l.Sub(o)
	for _, c := range d.terms {
		if abs(c) > tol {
			return false
		}
	}
	return true
}

func abs[N Number](c N) float64 {
	switch v := any(c).(type) {
	case float64:
		if v < 0 {
			return -v
		}
		return v
	case complex128:
		return cmplx.Abs(v)
	}
	return 0
}

//String returns a human-readable form of l, e.g. "2 x - y". The empty combination is "0".
func (l LinearCombination[A, N]) String() string {
	if l.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range l.Terms() {
		b.WriteString(formatTerm(t.Coeff, t.Atom.String(), i == 0))
	}
	return b.String()
}

func formatTerm[N Number](c N, atom string, first bool) string {
	v, ok := any(c).(float64)
	if !ok {
		if first {
			return fmt.Sprintf("%v %s", c, atom)
		}
		return fmt.Sprintf(" + %v %s", c, atom)
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var sign string
	switch {
	case first && neg:
		sign = "-"
	case neg:
		sign = " - "
	case !first:
		sign = " + "
	}
	if v == 1 {
		return sign + atom
	}
	return fmt.Sprintf("%s%g %s", sign, v, atom)
}

//Map extends f linearly: it returns the sum over the terms c*a of l of c*f(a).
//The terms are visited in the order of Terms, so the sums are reproducible.
func Map[A, B Atom, N Number](l LinearCombination[A, N], f func(A) (LinearCombination[B, N], error)) (LinearCombination[B, N], error) {
	m := make(map[B]N)
	for _, t := range l.Terms() {
		fa, err := f(t.Atom)
		if err != nil {
			return LinearCombination[B, N]{}, err
		}
		for _, u := range fa.Terms() {
			m[u.Atom] += t.Coeff * u.Coeff
		}
	}
	return simplify(m), nil
}
