/*
 * coupling.go, part of angmom.
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
)

//Powneg1 returns (-1)^k. It fails for half-integer k.
func Powneg1(k HalfInt) (int, error) {
	if !k.IsInteger() {
		return 0, newError(ErrDomain, fmt.Sprintf("(-1)^k needs an integer k, got %v", k), "Powneg1")
	}
	return phase(int(k) / 2), nil
}

//phase returns (-1)^n for an integer n.
func phase(n int) int {
	if n%2 == 0 {
		return 1
	}
	return -1
}

//Prod returns the square root of the product of all (2j+1).
func Prod(js ...HalfInt) (float64, error) {
	p := 1
	for _, j := range js {
		if j < 0 {
			return 0, newError(ErrDomain, fmt.Sprintf("∏ needs non-negative arguments, got %v", j), "Prod")
		}
		p *= j.Degeneracy()
	}
	return math.Sqrt(float64(p)), nil
}

//ProdFloat is Prod for angular momenta given as floats.
func ProdFloat(xs ...float64) (float64, error) {
	js := make([]HalfInt, len(xs))
	for i, x := range xs {
		j, err := FromFloat(x)
		if err != nil {
			err.(*Error).Decorate("ProdFloat")
			return 0, err
		}
		js[i] = j
	}
	p, err := Prod(js...)
	if err != nil {
		err.(*Error).Decorate("ProdFloat")
	}
	return p, err
}

//prod is Prod for arguments already known to be valid.
func prod(js ...HalfInt) float64 {
	p := 1
	for _, j := range js {
		p *= j.Degeneracy()
	}
	return math.Sqrt(float64(p))
}

//TriangleRange returns, in ascending order, all the values |a-b|, |a-b|+1, ..., a+b
//that couple a and b. The slice is empty if a or b is negative.
func TriangleRange(a, b HalfInt) []HalfInt {
	if a < 0 || b < 0 {
		return nil
	}
	lo, hi := (a - b).Abs(), a+b
	ret := make([]HalfInt, 0, int(hi-lo)/2+1)
	for k := lo; k <= hi; k += 2 {
		ret = append(ret, k)
	}
	return ret
}

//Triangle returns true if a, b and c satisfy the triangle condition and
//a+b+c is an integer.
func Triangle(a, b, c HalfInt) bool {
	if a < 0 || b < 0 || c < 0 {
		return false
	}
	if (a+b+c)%2 != 0 {
		return false
	}
	return c >= (a-b).Abs() && c <= a+b
}
