/*
 * state.go, part of angmom.
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
	"fmt"

	"github.com/rmera/angmom/coupling"
	"github.com/rmera/angmom/orbital"
)

//State is the angular part of a basis state, as seen by reduced matrix
//elements: the projection quantum number is left out.
type State interface {
	//J returns the total angular momentum of the state.
	J() coupling.HalfInt
	String() string
	isState()
}

//OrbitalState is an orbital angular momentum state |ℓ>.
type OrbitalState struct {
	l int
}

//Ell returns the state |ℓ>.
func Ell(l int) OrbitalState { return OrbitalState{l: l} }

func (s OrbitalState) L() int              { return s.l }
func (s OrbitalState) J() coupling.HalfInt { return coupling.Int(s.l) }
func (s OrbitalState) String() string      { return fmt.Sprintf("|%d>", s.l) }
func (OrbitalState) isState()              {}

//CoupledState is a state |(ℓ s) j> where an orbital angular momentum and a
//spin are coupled to j. Spherical tensors act on the ℓ part only.
type CoupledState struct {
	l    int
	s, j coupling.HalfInt
}

//NewCoupledState returns |(ℓ s) j>. It fails unless ℓ, s and j form a triangle.
func NewCoupledState(l int, s, j coupling.HalfInt) (CoupledState, error) {
	if !coupling.Triangle(coupling.Int(l), s, j) {
		return CoupledState{}, newError(ErrInvalidState, "NewCoupledState", "cannot couple l=%d and s=%v to j=%v", l, s, j)
	}
	return CoupledState{l: l, s: s, j: j}, nil
}

func (s CoupledState) L() int              { return s.l }
func (s CoupledState) S() coupling.HalfInt { return s.s }
func (s CoupledState) J() coupling.HalfInt { return s.j }
func (s CoupledState) String() string      { return fmt.Sprintf("|(%d %v)%v>", s.l, s.s, s.j) }
func (CoupledState) isState()              {}

//states maps a pair of spin orbitals to angular states. The returned factor is the
//overlap of the parts the states leave out: the spin projections of
//non-relativistic orbitals.
func states(a, b orbital.SpinOrbital) (State, State, float64, error) {
	switch a := a.(type) {
	case orbital.Relativistic:
		b, ok := b.(orbital.Relativistic)
		if !ok {
			break
		}
		sa := CoupledState{l: a.L(), s: coupling.Half(1), j: a.J()}
		sb := CoupledState{l: b.L(), s: coupling.Half(1), j: b.J()}
		return sa, sb, 1, nil
	case orbital.NonRelativistic:
		b, ok := b.(orbital.NonRelativistic)
		if !ok {
			break
		}
		if a.Ms() != b.Ms() {
			return Ell(a.L()), Ell(b.L()), 0, nil
		}
		return Ell(a.L()), Ell(b.L()), 1, nil
	}
	return nil, nil, 0, newError(ErrBasisMismatch, "states", "%v (%T) and %v (%T)", a, a, b, b)
}
