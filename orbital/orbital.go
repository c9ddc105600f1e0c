/*
 * orbital.go, part of angmom.
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

//Package orbital provides the spin orbitals and configurations the rest of
//angmom operates on. Orbitals are small immutable values that can be compared
//with == and used as map keys.
package orbital

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rmera/angmom/coupling"
)

//SpinOrbital is a one-electron state with a radial part and a
//spin-angular part.
type SpinOrbital interface {
	//N returns the principal quantum number.
	N() int
	//L returns the orbital angular momentum.
	L() int
	//JM returns the angular momentum the spin-angular part transforms as,
	//and its projection: (j, m_j) for relativistic orbitals and
	//(ℓ, m_ℓ) for non-relativistic ones, where the spin is a spectator.
	JM() (coupling.HalfInt, coupling.HalfInt)
	//Radial returns the radial orbital.
	Radial() Radial
	String() string
}

var spectroscopic = []byte("spdfghiklmnoqrtuv")

//Letter returns the spectroscopic letter for l.
func Letter(l int) string {
	if l >= 0 && l < len(spectroscopic) {
		return string(spectroscopic[l])
	}
	return "[" + strconv.Itoa(l) + "]"
}

//Radial is a radial orbital: the part of a spin orbital left after the
//spin-angular integration. Relativistic radial orbitals also carry j.
type Radial struct {
	N, L         int
	J            coupling.HalfInt
	Relativistic bool
}

//String returns e.g. "2p" or, for relativistic orbitals with j=l-1/2, "2p-".
func (r Radial) String() string {
	s := strconv.Itoa(r.N) + Letter(r.L)
	if r.Relativistic && r.L > 0 && r.J < coupling.Int(r.L) {
		s += "-"
	}
	return s
}

func validNL(n, l int, caller string) error {
	if n < 1 || l < 0 || l >= n {
		return newError(ErrInvalidOrbital, fmt.Sprintf("need n>=1 and 0<=l<n, got n=%d l=%d", n, l), caller)
	}
	return nil
}

//Relativistic is a spin orbital in the coupled (ℓ s j) basis.
type Relativistic struct {
	n, l  int
	j, mj coupling.HalfInt
}

//NewRelativistic returns the orbital nℓj with projection mj.
//j must be l±1/2 and (j, mj) a valid pair.
func NewRelativistic(n, l int, j, mj coupling.HalfInt) (Relativistic, error) {
	if err := validNL(n, l, "NewRelativistic"); err != nil {
		return Relativistic{}, err
	}
	if (j-coupling.Int(l)).Abs() != coupling.Half(1) || !coupling.ValidPair(j, mj) {
		return Relativistic{}, newError(ErrInvalidOrbital, fmt.Sprintf("invalid j=%v mj=%v for l=%d", j, mj, l), "NewRelativistic")
	}
	return Relativistic{n: n, l: l, j: j, mj: mj}, nil
}

func (o Relativistic) N() int                                   { return o.n }
func (o Relativistic) L() int                                   { return o.l }
func (o Relativistic) J() coupling.HalfInt                      { return o.j }
func (o Relativistic) Mj() coupling.HalfInt                     { return o.mj }
func (o Relativistic) JM() (coupling.HalfInt, coupling.HalfInt) { return o.j, o.mj }

func (o Relativistic) Radial() Radial {
	return Radial{N: o.n, L: o.l, J: o.j, Relativistic: true}
}

//String returns e.g. "2p-(1/2)".
func (o Relativistic) String() string {
	return o.Radial().String() + "(" + o.mj.String() + ")"
}

//NonRelativistic is a spin orbital in the uncoupled basis, with definite
//m_ℓ and m_s.
type NonRelativistic struct {
	n, l, ml int
	ms       coupling.HalfInt
}

//NewNonRelativistic returns the orbital nℓ with projections ml and ms=±1/2.
func NewNonRelativistic(n, l, ml int, ms coupling.HalfInt) (NonRelativistic, error) {
	if err := validNL(n, l, "NewNonRelativistic"); err != nil {
		return NonRelativistic{}, err
	}
	if ml < -l || ml > l || ms.Abs() != coupling.Half(1) {
		return NonRelativistic{}, newError(ErrInvalidOrbital, fmt.Sprintf("invalid ml=%d ms=%v for l=%d", ml, ms, l), "NewNonRelativistic")
	}
	return NonRelativistic{n: n, l: l, ml: ml, ms: ms}, nil
}

func (o NonRelativistic) N() int               { return o.n }
func (o NonRelativistic) L() int               { return o.l }
func (o NonRelativistic) Ml() int              { return o.ml }
func (o NonRelativistic) Ms() coupling.HalfInt { return o.ms }
func (o NonRelativistic) JM() (coupling.HalfInt, coupling.HalfInt) {
	return coupling.Int(o.l), coupling.Int(o.ml)
}

func (o NonRelativistic) Radial() Radial { return Radial{N: o.n, L: o.l} }

//String returns e.g. "2p₋₁α".
func (o NonRelativistic) String() string {
	spin := "α"
	if o.ms < 0 {
		spin = "β"
	}
	return o.Radial().String() + subscript(o.ml) + spin
}

func subscript(n int) string {
	const digits = "₀₁₂₃₄₅₆₇₈₉"
	var b strings.Builder
	if n < 0 {
		b.WriteString("₋")
		n = -n
	}
	for _, c := range strconv.Itoa(n) {
		d := int(c - '0')
		//each subscript digit takes 3 bytes in UTF-8
		b.WriteString(digits[3*d : 3*d+3])
	}
	return b.String()
}

//Configuration is an ordered list of occupied spin orbitals, i.e. a
//Slater determinant.
type Configuration []SpinOrbital

//Index returns the position of o in c, or -1.
func (c Configuration) Index(o SpinOrbital) int {
	for i, v := range c {
		if v == o {
			return i
		}
	}
	return -1
}

//Validate returns an error if an orbital is occupied more than once.
func (c Configuration) Validate() error {
	for i, o := range c {
		if c[:i].Index(o) >= 0 {
			return newError(ErrInvalidConfiguration, fmt.Sprintf("orbital %v occupied twice in %v", o, c), "Configuration.Validate")
		}
	}
	return nil
}

func (c Configuration) String() string {
	s := make([]string, len(c))
	for i, o := range c {
		s[i] = o.String()
	}
	return strings.Join(s, " ")
}
