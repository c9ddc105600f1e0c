/*
 * operators.go, part of angmom.
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
	"strings"

	"github.com/rmera/angmom/multipole"
	"github.com/rmera/angmom/tensor"
)

//CoulombInteraction is the electron-electron repulsion 1/r12.
type CoulombInteraction = multipole.CoulombInteraction

//CoulombInteractionMultipole is the k-th multipole of 1/r12.
type CoulombInteractionMultipole = multipole.CoulombInteractionMultipole

//OneBodyHamiltonian is the one-electron part of the Hamiltonian. It is left
//unreduced: its orbital matrix elements end up as symbols.
type OneBodyHamiltonian struct{}

func (OneBodyHamiltonian) String() string { return "h" }

//Bodies returns 1.
func (OneBodyHamiltonian) Bodies() int { return 1 }

//OneBodyTensor is a tensor component acting on one electron, such as
//a component of the dipole operator.
type OneBodyTensor struct {
	C tensor.Component
}

func (o OneBodyTensor) String() string { return o.C.String() }

//Bodies returns 1.
func (OneBodyTensor) Bodies() int { return 1 }

//TwoBodyTensor is a scalar product of two tensors, the first acting on
//electron 1 and the second on electron 2.
type TwoBodyTensor struct {
	X tensor.ScalarProduct
}

func (o TwoBodyTensor) String() string { return o.X.String() }

//Bodies returns 2.
func (TwoBodyTensor) Bodies() int { return 2 }

//OperatorSum is a sum of operators, e.g. h+g. Term generators treat each
//summand separately.
type OperatorSum []Operator

//Sum returns the sum of the given operators. Nested sums are flattened.
func Sum(ops ...Operator) OperatorSum {
	var ret OperatorSum
	for _, op := range ops {
		if s, ok := op.(OperatorSum); ok {
			ret = append(ret, s...)
			continue
		}
		ret = append(ret, op)
	}
	return ret
}

func (s OperatorSum) String() string {
	str := make([]string, len(s))
	for i, op := range s {
		str[i] = op.String()
	}
	return strings.Join(str, " + ")
}

//Bodies returns the largest number of bodies among the summands.
func (s OperatorSum) Bodies() int {
	var b int
	for _, op := range s {
		b = max(b, op.Bodies())
	}
	return b
}
