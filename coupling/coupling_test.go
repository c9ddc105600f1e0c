/*
 * coupling_test.go, part of angmom.
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
	"math"
	"math/big"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

func TestTriangleRange(Te *testing.T) {
	cases := []struct {
		a, b HalfInt
		want []HalfInt
	}{
		{Int(2), Int(3), []HalfInt{Int(1), Int(2), Int(3), Int(4), Int(5)}},
		{Int(1), Int(1), []HalfInt{Int(0), Int(1), Int(2)}},
		{Half(1), Int(1), []HalfInt{Half(1), Half(3)}},
		{Int(0), Half(5), []HalfInt{Half(5)}},
		{Int(-1), Int(1), nil},
	}
	for _, c := range cases {
		got := TriangleRange(c.a, c.b)
		if len(got) != len(c.want) {
			Te.Fatalf("TriangleRange(%v,%v)=%v, want %v", c.a, c.b, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				Te.Errorf("TriangleRange(%v,%v)=%v, want %v", c.a, c.b, got, c.want)
			}
		}
	}
	//restartable: a second call gives the same sequence
	if len(TriangleRange(Int(2), Int(3))) != 5 {
		Te.Error("TriangleRange not restartable")
	}
}

func TestPowneg1(Te *testing.T) {
	for k, want := range map[HalfInt]int{Int(0): 1, Int(1): -1, Int(2): 1, Int(-3): -1} {
		got, err := Powneg1(k)
		if err != nil {
			Te.Fatal(err)
		}
		if got != want {
			Te.Errorf("Powneg1(%v)=%d, want %d", k, got, want)
		}
	}
	_, err := Powneg1(Half(1))
	if !errors.Is(err, ErrDomain) {
		Te.Errorf("Powneg1(1/2) should fail with ErrDomain, got %v", err)
	}
}

func TestProd(Te *testing.T) {
	p, err := Prod(Int(1), Half(1))
	if err != nil {
		Te.Fatal(err)
	}
	if !scalar.EqualWithinAbs(p, math.Sqrt(6), tol) {
		Te.Errorf("Prod(1,1/2)=%v, want √6", p)
	}
	if _, err := Prod(Int(-1)); !errors.Is(err, ErrDomain) {
		Te.Errorf("Prod(-1) should fail, got %v", err)
	}
	p, err = ProdFloat(1.5, 2)
	if err != nil {
		Te.Fatal(err)
	}
	if !scalar.EqualWithinAbs(p, math.Sqrt(20), tol) {
		Te.Errorf("ProdFloat(3/2,2)=%v, want √20", p)
	}
	_, err = ProdFloat(0.3)
	if !errors.Is(err, ErrDomain) {
		Te.Errorf("ProdFloat(0.3) should fail with ErrDomain, got %v", err)
	}
	var e *Error
	if errors.As(err, &e) && len(e.Decorate("")) != 2 {
		Te.Errorf("unexpected error trace %s", e.Trace())
	}
}

func TestHalfInt(Te *testing.T) {
	h, err := FromFloat(-2.5)
	if err != nil {
		Te.Fatal(err)
	}
	if h != Half(-5) || h.String() != "-5/2" || h.Float() != -2.5 {
		Te.Errorf("FromFloat(-2.5) gave %v", h)
	}
	if Int(3).String() != "3" || Int(3).Int() != 3 {
		Te.Errorf("Int(3) prints as %v", Int(3))
	}
	if len(Half(3).Projections()) != 4 {
		Te.Errorf("3/2 has %d projections", len(Half(3).Projections()))
	}
	if !ValidPair(Half(3), Half(-1)) || ValidPair(Int(1), Half(1)) || ValidPair(Int(1), Int(2)) {
		Te.Error("ValidPair gives wrong answers")
	}
}

func TestClebschGordanValues(Te *testing.T) {
	s := 1 / math.Sqrt(2)
	cases := []struct {
		j1, m1, j2, m2, j3, m3 HalfInt
		want                   float64
	}{
		{Half(1), Half(1), Half(1), Half(-1), Int(1), Int(0), s},
		{Half(1), Half(1), Half(1), Half(-1), Int(0), Int(0), s},
		{Half(1), Half(-1), Half(1), Half(1), Int(0), Int(0), -s},
		{Int(1), Int(0), Int(1), Int(0), Int(0), Int(0), -1 / math.Sqrt(3)},
		{Int(1), Int(1), Int(1), Int(-1), Int(0), Int(0), 1 / math.Sqrt(3)},
		{Int(1), Int(0), Int(1), Int(0), Int(2), Int(0), math.Sqrt(2.0 / 3)},
		{Int(1), Int(1), Half(1), Half(-1), Half(1), Half(1), math.Sqrt(2.0 / 3)},
		{Int(1), Int(0), Half(1), Half(1), Half(1), Half(1), -math.Sqrt(1.0 / 3)},
	}
	for _, c := range cases {
		got := ClebschGordan(c.j1, c.m1, c.j2, c.m2, c.j3, c.m3)
		if !scalar.EqualWithinAbs(got, c.want, tol) {
			Te.Errorf("CG(%v %v %v %v|%v %v)=%v, want %v", c.j1, c.m1, c.j2, c.m2, c.j3, c.m3, got, c.want)
		}
	}
	//m3 defaults to m1+m2
	if d := ClebschGordan(Int(1), Int(0), Int(1), Int(0), Int(2)); !scalar.EqualWithinAbs(d, math.Sqrt(2.0/3), tol) {
		Te.Errorf("default m3 gave %v", d)
	}
}

func TestClebschGordanZeros(Te *testing.T) {
	zeros := [][6]HalfInt{
		{Int(1), Int(1), Int(1), Int(0), Int(2), Int(0)},     //m1+m2 != m3
		{Int(1), Int(0), Int(1), Int(0), Int(3), Int(0)},     //triangle
		{Int(1), Int(2), Int(1), Int(-2), Int(0), Int(0)},    //|m|>j
		{Int(1), Half(1), Int(1), Half(-1), Int(0), Int(0)},  //j-m not integer
		{Half(1), Half(1), Int(1), Int(0), Int(1), Half(1)},  //half-integer perimeter
		{Int(1), Int(0), Int(1), Int(0), Int(1), Int(0)},     //parity
	}
	for _, z := range zeros {
		if v := ClebschGordan(z[0], z[1], z[2], z[3], z[4], z[5]); v != 0 {
			Te.Errorf("CG%v=%v, want 0", z, v)
		}
	}
}

//The CG coefficients for fixed j1, j2 form an orthogonal matrix between the
//uncoupled (m1,m2) and coupled (J,M) bases.
func TestClebschGordanOrthogonality(Te *testing.T) {
	for _, pair := range [][2]HalfInt{{Half(3), Int(1)}, {Int(2), Int(2)}, {Half(1), Half(5)}} {
		j1, j2 := pair[0], pair[1]
		n := j1.Degeneracy() * j2.Degeneracy()
		u := mat.NewDense(n, n, nil)
		row := 0
		for _, m1 := range j1.Projections() {
			for _, m2 := range j2.Projections() {
				col := 0
				for _, J := range TriangleRange(j1, j2) {
					for _, M := range J.Projections() {
						u.Set(row, col, ClebschGordan(j1, m1, j2, m2, J, M))
						col++
					}
				}
				if col != n {
					Te.Fatalf("coupled basis of %v⊗%v has %d states, want %d", j1, j2, col, n)
				}
				row++
			}
		}
		var p mat.Dense
		p.Mul(u.T(), u)
		id := mat.NewDiagDense(n, nil)
		for i := 0; i < n; i++ {
			id.SetDiag(i, 1)
		}
		if !mat.EqualApprox(&p, id, 1e-12) {
			Te.Errorf("CG matrix for %v⊗%v not orthogonal:\n%v", j1, j2, mat.Formatted(&p))
		}
	}
}

func TestClebschGordanSwap(Te *testing.T) {
	j1, j2 := Half(3), Int(2)
	for _, j3 := range TriangleRange(j1, j2) {
		sign, err := Powneg1(j1 + j2 - j3)
		if err != nil {
			Te.Fatal(err)
		}
		for _, m1 := range j1.Projections() {
			for _, m2 := range j2.Projections() {
				a := ClebschGordan(j1, m1, j2, m2, j3)
				b := ClebschGordan(j2, m2, j1, m1, j3)
				if !scalar.EqualWithinAbs(b, float64(sign)*a, tol) {
					Te.Errorf("swap symmetry broken for (%v %v %v %v|%v): %v vs %v", j1, m1, j2, m2, j3, a, b)
				}
			}
		}
	}
}

func TestWigner3j(Te *testing.T) {
	if v := Wigner3j(Int(1), Int(1), Int(0), Int(0), Int(0), Int(0)); !scalar.EqualWithinAbs(v, -1/math.Sqrt(3), tol) {
		Te.Errorf("(1 1 0;0 0 0)=%v", v)
	}
	e := Wigner3jExact(Int(1), Int(1), Int(2), Int(0), Int(0), Int(0))
	if e.Sign != 1 || e.Square.Cmp(big.NewRat(2, 15)) != 0 {
		Te.Errorf("(1 1 2;0 0 0)=%v, want √(2/15)", e)
	}
	if v := Wigner3j(Int(1), Int(1), Int(1), Int(0), Int(0), Int(0)); v != 0 {
		Te.Errorf("odd-parity 3j gave %v", v)
	}
	//column permutations: even ones leave it unchanged, odd ones give (-1)^(j1+j2+j3)
	a := Wigner3j(Int(2), Half(3), Half(1), Int(1), Half(-1), Half(-1))
	b := Wigner3j(Half(3), Half(1), Int(2), Half(-1), Half(-1), Int(1))
	c := Wigner3j(Half(3), Int(2), Half(1), Half(-1), Int(1), Half(-1))
	if !scalar.EqualWithinAbs(a, b, tol) || !scalar.EqualWithinAbs(a, c, tol) {
		Te.Errorf("3j permutation symmetry broken: %v %v %v", a, b, c)
	}
}

func TestWigner6j(Te *testing.T) {
	cases := []struct {
		j    [6]HalfInt
		want float64
	}{
		{[6]HalfInt{Half(1), Half(1), Int(1), Half(1), Half(1), Int(0)}, 0.5},
		{[6]HalfInt{Int(1), Int(1), Int(1), Int(0), Int(1), Int(1)}, -1.0 / 3},
		{[6]HalfInt{Int(1), Int(1), Int(1), Int(1), Int(1), Int(1)}, 1.0 / 6},
		{[6]HalfInt{Int(2), Int(2), Int(2), Int(2), Int(2), Int(2)}, -3.0 / 70},
		{[6]HalfInt{Int(1), Int(1), Int(3), Int(1), Int(1), Int(1)}, 0},
	}
	for _, c := range cases {
		j := c.j
		if v := Wigner6j(j[0], j[1], j[2], j[3], j[4], j[5]); !scalar.EqualWithinAbs(v, c.want, tol) {
			Te.Errorf("6j%v=%v, want %v", j, v, c.want)
		}
	}
}

func TestWigner6jOrthogonality(Te *testing.T) {
	a, b, c, d := Int(1), Half(3), Int(2), Half(3)
	es := TriangleRange(a, d)
	for _, e := range es {
		for _, f := range es {
			var sum float64
			for _, x := range TriangleRange(a, b) {
				sum += float64(x.Degeneracy()*e.Degeneracy()) * Wigner6j(a, b, x, c, d, e) * Wigner6j(a, b, x, c, d, f)
			}
			if !Triangle(c, b, e) {
				continue
			}
			want := 0.0
			if e == f {
				want = 1
			}
			if !scalar.EqualWithinAbs(sum, want, 1e-12) {
				Te.Errorf("6j orthogonality for e=%v f=%v: %v", e, f, sum)
			}
		}
	}
}

func TestLogDomain(Te *testing.T) {
	logk := NewKernel(nil, 0)
	for _, j := range [][6]HalfInt{
		{Int(3), Half(5), Half(3), Int(1), Half(-3), Half(1)},
		{Int(7), Int(6), Int(4), Int(-2), Int(3), Int(-1)},
		{Half(9), Int(5), Half(3), Half(-5), Int(2), Half(1)},
	} {
		exact := Wigner3j(j[0], j[1], j[2], j[3], j[4], j[5])
		approx := logk.Wigner3j(j[0], j[1], j[2], j[3], j[4], j[5])
		if !scalar.EqualWithinAbs(exact, approx, 1e-11) {
			Te.Errorf("3j%v: exact %v, log-domain %v", j, exact, approx)
		}
		exact = Wigner6j(j[0], j[1], j[2], j[0], j[1], j[2])
		approx = logk.Wigner6j(j[0], j[1], j[2], j[0], j[1], j[2])
		if !scalar.EqualWithinAbs(exact, approx, 1e-11) {
			Te.Errorf("6j%v: exact %v, log-domain %v", j, exact, approx)
		}
	}
	//above the default crossover, with a single term in the sum
	j, m := Int(450), Int(37)
	want := -1 / math.Sqrt(901)
	if v := Wigner3j(j, j, 0, m, -m, 0); !scalar.EqualWithinAbs(v, want, 1e-10) {
		Te.Errorf("(450 450 0;37 -37 0)=%v, want %v", v, want)
	}
}

//TestModerateJ checks that the default kernel gives correctly rounded
//coefficients for j up to 50, where the log-domain sum would cancel.
func TestModerateJ(Te *testing.T) {
	k := NewKernel(NewMapCache())
	w := k.Wigner3j(Int(50), Int(50), Int(50), Int(13), Int(-1), Int(-12))
	if want := Wigner3jExact(Int(50), Int(50), Int(50), Int(13), Int(-1), Int(-12)).Float(); w != want {
		Te.Errorf("(50 50 50;13 -1 -12)=%v, want %v", w, want)
	}
	var worst float64
	for _, j1 := range []int{30, 41, 50} {
		for _, j2 := range []int{35, 50} {
			for j3 := max(j1-j2, j2-j1); j3 <= min(j1+j2, 50); j3 += 5 {
				for m1 := -j1; m1 <= j1; m1 += 9 {
					for m2 := -j2; m2 <= j2; m2 += 11 {
						m3 := -m1 - m2
						if m3 < -j3 || m3 > j3 {
							continue
						}
						J1, J2, J3, M1, M2, M3 := Int(j1), Int(j2), Int(j3), Int(m1), Int(m2), Int(m3)
						got := k.Wigner3j(J1, J2, J3, M1, M2, M3)
						want := Wigner3jExact(J1, J2, J3, M1, M2, M3).Float()
						worst = max(worst, math.Abs(got-want))
						got = k.ClebschGordan(J1, M1, J2, M2, J3)
						want = ClebschGordanExact(J1, M1, J2, M2, J3).Float()
						worst = max(worst, math.Abs(got-want))
					}
				}
			}
		}
	}
	if worst > 1e-15 {
		Te.Errorf("worst 3j/CG error for j<=50 is %v", worst)
	}
	v := k.Wigner6j(Int(50), Int(45), Int(40), Int(35), Int(48), Int(42))
	if want := Wigner6jExact(Int(50), Int(45), Int(40), Int(35), Int(48), Int(42)).Float(); !scalar.EqualWithinAbs(v, want, 1e-15) {
		Te.Errorf("{50 45 40;35 48 42}=%v, want %v", v, want)
	}
}
