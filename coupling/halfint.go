/*
 * halfint.go, part of angmom.
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
	"fmt"
	"math"
	"strconv"
)

//HalfInt is an angular momentum, or its projection, stored as twice its value.
//Sums and differences of HalfInts are again HalfInts, so the usual + and -
//operators can be used directly.
type HalfInt int

//Int returns the HalfInt for the integer n.
func Int(n int) HalfInt { return HalfInt(2 * n) }

//Half returns the HalfInt whose value is twice/2.
func Half(twice int) HalfInt { return HalfInt(twice) }

//FromFloat returns the HalfInt for x. It fails if x is not an integer or a half-integer.
func FromFloat(x float64) (HalfInt, error) {
	t := 2 * x
	if math.IsNaN(t) || math.IsInf(t, 0) || t != math.Trunc(t) {
		return 0, newError(ErrDomain, fmt.Sprintf("%g is neither an integer nor a half-integer", x), "FromFloat")
	}
	return HalfInt(int(t)), nil
}

//Twice returns 2j.
func (h HalfInt) Twice() int { return int(h) }

//Float returns the value as a float64.
func (h HalfInt) Float() float64 { return float64(h) / 2 }

//IsInteger returns true if the value is an integer.
func (h HalfInt) IsInteger() bool { return h%2 == 0 }

//Int returns the value as an int. It panics if h is a half-integer.
func (h HalfInt) Int() int {
	if !h.IsInteger() {
		panic(ErrNotInteger)
	}
	return int(h) / 2
}

//Abs returns |h|.
func (h HalfInt) Abs() HalfInt {
	if h < 0 {
		return -h
	}
	return h
}

//Degeneracy returns 2j+1.
func (h HalfInt) Degeneracy() int { return int(h) + 1 }

//Projections returns -j, -j+1, ..., j. It returns nil for negative j.
func (h HalfInt) Projections() []HalfInt {
	if h < 0 {
		return nil
	}
	ret := make([]HalfInt, 0, h.Degeneracy())
	for m := -h; m <= h; m += 2 {
		ret = append(ret, m)
	}
	return ret
}

func (h HalfInt) String() string {
	if h.IsInteger() {
		return strconv.Itoa(int(h) / 2)
	}
	return strconv.Itoa(int(h)) + "/2"
}

//ValidPair returns true if (j, m) is a valid angular momentum, projection pair,
//i.e. |m|<=j and j-m is an integer.
func ValidPair(j, m HalfInt) bool {
	return j >= 0 && m.Abs() <= j && (j-m).IsInteger()
}
