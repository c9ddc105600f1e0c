/*
 * racah.go, part of angmom.
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
	"math"
	"math/big"
)

//Racah's single-sum formulas for the 3j and 6j symbols, in two flavours:
//exact (math/big) and log-domain floating point. All the quantum numbers
//are handled as twice their value, so every factorial argument below
//is an exact integer division.

//Exact is a coupling coefficient represented exactly as Sign*sqrt(Square),
//with Square a non-negative rational. The zero value is the coefficient 0.
type Exact struct {
	Sign   int
	Square *big.Rat
}

//IsZero returns true if the coefficient vanishes.
func (e Exact) IsZero() bool { return e.Sign == 0 }

//Float returns the coefficient rounded to a float64.
func (e Exact) Float() float64 {
	if e.Sign == 0 {
		return 0
	}
	f := new(big.Float).SetPrec(128).SetRat(e.Square)
	f.Sqrt(f)
	v, _ := f.Float64()
	return float64(e.Sign) * v
}

func (e Exact) String() string {
	if e.Sign == 0 {
		return "0"
	}
	s := "√(" + e.Square.RatString() + ")"
	if e.Sign < 0 {
		return "-" + s
	}
	return s
}

func fact(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}

//mulFact returns the product of the factorials of ns.
func mulFact(ns ...int) *big.Int {
	ret := big.NewInt(1)
	for _, n := range ns {
		if n > 1 {
			ret.Mul(ret, fact(n))
		}
	}
	return ret
}

func logFact(n int) float64 {
	v, _ := math.Lgamma(float64(n + 1))
	return v
}

func sumLogFact(ns ...int) float64 {
	var s float64
	for _, n := range ns {
		s += logFact(n)
	}
	return s
}

//threeJAllowed returns true unless the selection rules force the 3j symbol to vanish.
func threeJAllowed(j1, j2, j3, m1, m2, m3 HalfInt) bool {
	return m1+m2+m3 == 0 &&
		ValidPair(j1, m1) && ValidPair(j2, m2) && ValidPair(j3, m3) &&
		Triangle(j1, j2, j3)
}

//threeJTerms holds the integer parameters of Racah's formula for a 3j symbol.
type threeJTerms struct {
	tri    [3]int //arguments of the triangle coefficient numerator
	perim  int    //j1+j2+j3+1
	proj   [6]int //(j±m)
	x1, x2 int
	y1, y2 int
	y3     int
	sign   int //(-1)^(j1-j2-m3)
}

func newThreeJTerms(j1, j2, j3, m1, m2, m3 HalfInt) threeJTerms {
	J1, J2, J3 := int(j1), int(j2), int(j3)
	M1, M2, M3 := int(m1), int(m2), int(m3)
	return threeJTerms{
		tri:   [3]int{(J1 + J2 - J3) / 2, (J1 - J2 + J3) / 2, (-J1 + J2 + J3) / 2},
		perim: (J1+J2+J3)/2 + 1,
		proj:  [6]int{(J1 + M1) / 2, (J1 - M1) / 2, (J2 + M2) / 2, (J2 - M2) / 2, (J3 + M3) / 2, (J3 - M3) / 2},
		x1:    (J3 - J2 + M1) / 2,
		x2:    (J3 - J1 - M2) / 2,
		y1:    (J1 + J2 - J3) / 2,
		y2:    (J1 - M1) / 2,
		y3:    (J2 + M2) / 2,
		sign:  phase((J1 - J2 - M3) / 2),
	}
}

func (p threeJTerms) bounds() (int, int) {
	return max(0, -p.x1, -p.x2), min(p.y1, p.y2, p.y3)
}

func (p threeJTerms) den(t int) []int {
	return []int{t, p.x1 + t, p.x2 + t, p.y1 - t, p.y2 - t, p.y3 - t}
}

func threeJExact(j1, j2, j3, m1, m2, m3 HalfInt) Exact {
	if !threeJAllowed(j1, j2, j3, m1, m2, m3) {
		return Exact{}
	}
	p := newThreeJTerms(j1, j2, j3, m1, m2, m3)
	tmin, tmax := p.bounds()
	sum := new(big.Rat)
	for t := tmin; t <= tmax; t++ {
		term := new(big.Rat).SetFrac(big.NewInt(int64(phase(t))), mulFact(p.den(t)...))
		sum.Add(sum, term)
	}
	if sum.Sign() == 0 {
		return Exact{}
	}
	sq := new(big.Rat).Mul(sum, sum)
	sq.Mul(sq, new(big.Rat).SetFrac(mulFact(p.tri[:]...), fact(p.perim)))
	sq.Mul(sq, new(big.Rat).SetInt(mulFact(p.proj[:]...)))
	return Exact{Sign: p.sign * sum.Sign(), Square: sq}
}

func threeJLog(j1, j2, j3, m1, m2, m3 HalfInt) float64 {
	if !threeJAllowed(j1, j2, j3, m1, m2, m3) {
		return 0
	}
	p := newThreeJTerms(j1, j2, j3, m1, m2, m3)
	pre := 0.5 * (sumLogFact(p.tri[:]...) - logFact(p.perim) + sumLogFact(p.proj[:]...))
	tmin, tmax := p.bounds()
	var sum float64
	for t := tmin; t <= tmax; t++ {
		sum += float64(phase(t)) * math.Exp(pre-sumLogFact(p.den(t)...))
	}
	return float64(p.sign) * sum
}

func sixJAllowed(j1, j2, j3, j4, j5, j6 HalfInt) bool {
	return Triangle(j1, j2, j3) && Triangle(j1, j5, j6) && Triangle(j4, j2, j6) && Triangle(j4, j5, j3)
}

//triadArgs returns the factorial arguments of the triangle coefficient
//Δ(abc)² = (a+b-c)!(a-b+c)!(-a+b+c)!/(a+b+c+1)!, the last one being the denominator.
func triadArgs(a, b, c HalfInt) [4]int {
	A, B, C := int(a), int(b), int(c)
	return [4]int{(A + B - C) / 2, (A - B + C) / 2, (-A + B + C) / 2, (A+B+C)/2 + 1}
}

type sixJTerms struct {
	triads [4][4]int
	alpha  [4]int
	beta   [3]int
}

func newSixJTerms(j1, j2, j3, j4, j5, j6 HalfInt) sixJTerms {
	return sixJTerms{
		triads: [4][4]int{triadArgs(j1, j2, j3), triadArgs(j1, j5, j6), triadArgs(j4, j2, j6), triadArgs(j4, j5, j3)},
		alpha:  [4]int{int(j1+j2+j3) / 2, int(j1+j5+j6) / 2, int(j4+j2+j6) / 2, int(j4+j5+j3) / 2},
		beta:   [3]int{int(j1+j2+j4+j5) / 2, int(j2+j3+j5+j6) / 2, int(j3+j1+j6+j4) / 2},
	}
}

func (p sixJTerms) bounds() (int, int) {
	return max(p.alpha[0], p.alpha[1], p.alpha[2], p.alpha[3]), min(p.beta[0], p.beta[1], p.beta[2])
}

func (p sixJTerms) den(t int) []int {
	return []int{t - p.alpha[0], t - p.alpha[1], t - p.alpha[2], t - p.alpha[3], p.beta[0] - t, p.beta[1] - t, p.beta[2] - t}
}

func sixJExact(j1, j2, j3, j4, j5, j6 HalfInt) Exact {
	if !sixJAllowed(j1, j2, j3, j4, j5, j6) {
		return Exact{}
	}
	p := newSixJTerms(j1, j2, j3, j4, j5, j6)
	tmin, tmax := p.bounds()
	sum := new(big.Rat)
	for t := tmin; t <= tmax; t++ {
		num := fact(t + 1)
		if phase(t) < 0 {
			num.Neg(num)
		}
		sum.Add(sum, new(big.Rat).SetFrac(num, mulFact(p.den(t)...)))
	}
	if sum.Sign() == 0 {
		return Exact{}
	}
	sq := new(big.Rat).Mul(sum, sum)
	for _, tr := range p.triads {
		sq.Mul(sq, new(big.Rat).SetFrac(mulFact(tr[:3]...), fact(tr[3])))
	}
	return Exact{Sign: sum.Sign(), Square: sq}
}

func sixJLog(j1, j2, j3, j4, j5, j6 HalfInt) float64 {
	if !sixJAllowed(j1, j2, j3, j4, j5, j6) {
		return 0
	}
	p := newSixJTerms(j1, j2, j3, j4, j5, j6)
	var pre float64
	for _, tr := range p.triads {
		pre += 0.5 * (sumLogFact(tr[:3]...) - logFact(tr[3]))
	}
	tmin, tmax := p.bounds()
	var sum float64
	for t := tmin; t <= tmax; t++ {
		sum += float64(phase(t)) * math.Exp(pre+logFact(t+1)-sumLogFact(p.den(t)...))
	}
	return sum
}

//Wigner3jExact returns the 3j symbol (j1 j2 j3; m1 m2 m3) in exact form.
func Wigner3jExact(j1, j2, j3, m1, m2, m3 HalfInt) Exact {
	return threeJExact(j1, j2, j3, m1, m2, m3)
}

//Wigner6jExact returns the 6j symbol {j1 j2 j3; j4 j5 j6} in exact form.
func Wigner6jExact(j1, j2, j3, j4, j5, j6 HalfInt) Exact {
	return sixJExact(j1, j2, j3, j4, j5, j6)
}

//ClebschGordanExact returns the coefficient <j1 m1; j2 m2|j3 m3> in exact form.
//m3 defaults to m1+m2.
func ClebschGordanExact(j1, m1, j2, m2, j3 HalfInt, m3 ...HalfInt) Exact {
	M3 := m1 + m2
	if len(m3) > 0 {
		M3 = m3[0]
	}
	w := threeJExact(j1, j2, j3, m1, m2, -M3)
	if w.IsZero() {
		return w
	}
	sq := new(big.Rat).Mul(w.Square, big.NewRat(int64(j3.Degeneracy()), 1))
	return Exact{Sign: w.Sign * phase(int(j1-j2+M3)/2), Square: sq}
}

//clebschGordanLog is the log-domain counterpart of ClebschGordanExact.
func clebschGordanLog(j1, m1, j2, m2, j3, m3 HalfInt) float64 {
	w := threeJLog(j1, j2, j3, m1, m2, -m3)
	if w == 0 {
		return 0
	}
	return float64(phase(int(j1-j2+m3)/2)) * prod(j3) * w
}
