/*
 * slater.go, part of angmom.
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
	"github.com/rmera/angmom/orbital"
)

//SlaterCondon generates the terms of matrix elements between Slater
//determinants of orthonormal spin orbitals, following the Slater-Condon rules.
type SlaterCondon struct{}

//aligned holds the ket orbitals reordered so that the orbitals it shares with
//the bra sit at the same positions as in the bra.
type aligned struct {
	ket  []orbital.SpinOrbital
	sign float64
	diff []int //positions where bra and reordered ket differ
}

func align(bra, ket orbital.Configuration) aligned {
	n := len(bra)
	src := make([]int, n)
	used := make([]bool, n)
	ret := aligned{ket: make([]orbital.SpinOrbital, n), sign: 1}
	for i, a := range bra {
		k := ket.Index(a)
		if k < 0 {
			ret.diff = append(ret.diff, i)
			continue
		}
		src[i] = k
		used[k] = true
		ret.ket[i] = a
	}
	next := 0
	for _, i := range ret.diff {
		for used[next] {
			next++
		}
		used[next] = true
		src[i] = next
		ret.ket[i] = ket[next]
	}
	//parity of the permutation is n minus its number of cycles
	seen := make([]bool, n)
	cycles := 0
	for i := range src {
		if seen[i] {
			continue
		}
		cycles++
		for j := i; !seen[j]; j = src[j] {
			seen[j] = true
		}
	}
	if (n-cycles)%2 != 0 {
		ret.sign = -1
	}
	return ret
}

func one(op Operator, a, b orbital.SpinOrbital) Factor {
	return OrbitalMatrixElement{Bra: []orbital.SpinOrbital{a}, Op: op, Ket: []orbital.SpinOrbital{b}}
}

func two(op Operator, a, b, c, d orbital.SpinOrbital) Factor {
	return OrbitalMatrixElement{Bra: []orbital.SpinOrbital{a, b}, Op: op, Ket: []orbital.SpinOrbital{c, d}}
}

//directAndExchange returns the terms s(<ab|g|cd> - <ab|g|dc>).
func directAndExchange(s float64, op Operator, a, b, c, d orbital.SpinOrbital) []Term {
	return []Term{
		{Coeff: s, Factors: []Factor{two(op, a, b, c, d)}},
		{Coeff: -s, Factors: []Factor{two(op, a, b, d, c)}},
	}
}

//Terms returns the terms of <bra|op|ket>. Configurations with different numbers
//of electrons give no terms. Sums of operators are expanded summand by summand.
func (SlaterCondon) Terms(op Operator, bra, ket orbital.Configuration, overlaps []Overlap) ([]Term, error) {
	if len(overlaps) > 0 {
		return nil, newError(ErrNonOrthogonal, "SlaterCondon.Terms", "%d overlaps given", len(overlaps))
	}
	for _, c := range []orbital.Configuration{bra, ket} {
		if err := c.Validate(); err != nil {
			return nil, newError(ErrConfiguration, "SlaterCondon.Terms", "%v", err)
		}
	}
	if sum, ok := op.(OperatorSum); ok {
		var ret []Term
		for _, o := range sum {
			t, err := SlaterCondon{}.Terms(o, bra, ket, nil)
			if err != nil {
				return nil, errDecorate(err, "SlaterCondon.Terms")
			}
			ret = append(ret, t...)
		}
		return ret, nil
	}
	if len(bra) != len(ket) {
		return nil, nil
	}
	al := align(bra, ket)
	s := al.sign
	a, b := bra, al.ket
	switch op.Bodies() {
	case 1:
		switch len(al.diff) {
		case 0:
			ret := make([]Term, 0, len(a))
			for i := range a {
				ret = append(ret, Term{Coeff: s, Factors: []Factor{one(op, a[i], a[i])}})
			}
			return ret, nil
		case 1:
			p := al.diff[0]
			return []Term{{Coeff: s, Factors: []Factor{one(op, a[p], b[p])}}}, nil
		}
		return nil, nil
	case 2:
		var ret []Term
		switch len(al.diff) {
		case 0:
			for i := range a {
				for j := i + 1; j < len(a); j++ {
					ret = append(ret, directAndExchange(s, op, a[i], a[j], a[i], a[j])...)
				}
			}
		case 1:
			p := al.diff[0]
			for j := range a {
				if j == p {
					continue
				}
				ret = append(ret, directAndExchange(s, op, a[p], a[j], b[p], a[j])...)
			}
		case 2:
			p, q := al.diff[0], al.diff[1]
			ret = directAndExchange(s, op, a[p], a[q], b[p], b[q])
		}
		return ret, nil
	}
	return nil, newError(ErrArity, "SlaterCondon.Terms", "%v acts on %d electrons", op, op.Bodies())
}
