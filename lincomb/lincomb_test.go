/*
 * lincomb_test.go, part of angmom.
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

package lincomb

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

type sym string

func (s sym) String() string { return string(s) }

type realComb = LinearCombination[sym, float64]

func TestSimplification(Te *testing.T) {
	x := Lift[sym, float64]("x")
	if z := x.Add(x.Neg()); !z.IsZero() || z.String() != "0" {
		Te.Errorf("x + (-x) = %v, want the empty combination", z)
	}
	five := x.Scale(2).Add(x.Scale(3))
	if five.Len() != 1 || five.Coeff("x") != 5 {
		Te.Errorf("2x + 3x = %v, want 5 x", five)
	}
	if !x.Scale(0).IsZero() {
		Te.Error("0*x is not empty")
	}
	if five.Coeff("y") != 0 {
		Te.Error("absent atom has a non-zero coefficient")
	}
}

func TestArithmetic(Te *testing.T) {
	x, y := Lift[sym, float64]("x"), Lift[sym, float64]("y")
	l := x.Scale(4).Sub(y.Scale(5))
	if s := l.String(); s != "4 x - 5 y" {
		Te.Errorf("got %q, want \"4 x - 5 y\"", s)
	}
	m := FromTerms(Term[sym, float64]{"y", -5}, Term[sym, float64]{"x", 1}, Term[sym, float64]{"x", 3})
	if !l.Equal(m) {
		Te.Errorf("%v != %v", l, m)
	}
	if l.Equal(x) {
		Te.Errorf("%v == %v", l, x)
	}
	var empty realComb
	if !empty.Add(l).Equal(l) || !l.Add(empty).Equal(l) {
		Te.Error("empty combination is not neutral")
	}
	if s := y.Neg().Add(x).String(); s != "x - y" {
		Te.Errorf("got %q", s)
	}
	if s := y.Neg().String(); s != "-y" {
		Te.Errorf("got %q", s)
	}
	terms := l.Terms()
	if len(terms) != 2 || terms[0].Atom != "x" || terms[1].Coeff != -5 {
		Te.Errorf("unexpected terms %v", terms)
	}
}

func TestComplex(Te *testing.T) {
	x := Lift[sym, complex128]("x")
	y := New[sym, complex128]("y", 1i)
	l := x.Add(y).Scale(1i)
	if l.Coeff("x") != 1i || l.Coeff("y") != -1 {
		Te.Errorf("i(x + iy) = %v", l)
	}
	if !l.Add(New[sym, complex128]("y", 1e-14)).EqualApprox(l, 1e-12) {
		Te.Error("EqualApprox too strict")
	}
}

func TestMap(Te *testing.T) {
	x, y := Lift[sym, float64]("x"), Lift[sym, float64]("y")
	l := x.Scale(2).Add(y)
	//x -> a+b, y -> a-b
	got, err := Map(l, func(s sym) (realComb, error) {
		a, b := Lift[sym, float64]("a"), Lift[sym, float64]("b")
		if s == "x" {
			return a.Add(b), nil
		}
		return a.Sub(b), nil
	})
	if err != nil {
		Te.Fatal(err)
	}
	want := FromTerms(Term[sym, float64]{"a", 3}, Term[sym, float64]{"b", 1})
	if !got.Equal(want) {
		Te.Errorf("Map gave %v, want %v", got, want)
	}
	boom := errors.New("boom")
	if _, err := Map(l, func(sym) (realComb, error) { return realComb{}, boom }); !errors.Is(err, boom) {
		Te.Errorf("Map did not propagate the error: %v", err)
	}
}

//TestMapOrder sums many coefficients of very different sizes into one atom,
//so the result depends on the order of the sum. Map must always use the
//order of Terms.
func TestMapOrder(Te *testing.T) {
	var l realComb
	want := 0.0
	for i := 0; i < 40; i++ {
		c := math.Pow(-1, float64(i)) * math.Pow(10, float64(i%7)) / float64(i+3)
		l = l.Add(New(sym(fmt.Sprintf("x%02d", i)), c))
		want += c
	}
	s := Lift[sym, float64]("s")
	for i := 0; i < 50; i++ {
		got, err := Map(l, func(sym) (realComb, error) { return s, nil })
		if err != nil {
			Te.Fatal(err)
		}
		if got.Len() != 1 || got.Coeff("s") != want {
			Te.Fatalf("run %d: Map gave %v, want %v s", i, got, want)
		}
	}
}
