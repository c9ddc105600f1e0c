/*
 * terms.go, part of angmom.
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
	"fmt"
	"strings"

	"github.com/rmera/angmom/orbital"
)

//OrbitalMatrixElement is <Bra|Op|Ket> between one or two spin orbitals on
//each side, with the i-th orbital of each side belonging to electron i.
type OrbitalMatrixElement struct {
	Bra []orbital.SpinOrbital
	Op  Operator
	Ket []orbital.SpinOrbital
}

//String returns e.g. "<1s₀α 2p₀α|g|2p₀α 1s₀α>".
func (m OrbitalMatrixElement) String() string {
	return "<" + joinOrbitals(m.Bra) + "|" + m.Op.String() + "|" + joinOrbitals(m.Ket) + ">"
}

func (OrbitalMatrixElement) isFactor() {}

func joinOrbitals(o []orbital.SpinOrbital) string {
	s := make([]string, len(o))
	for i, v := range o {
		s[i] = v.String()
	}
	return strings.Join(s, " ")
}

//Overlap is the overlap <A|B> between two spin orbitals.
type Overlap struct {
	A, B orbital.SpinOrbital
}

func (o Overlap) String() string { return fmt.Sprintf("<%v|%v>", o.A, o.B) }

func (Overlap) isFactor() {}

//Term is a coefficient times a product of factors.
type Term struct {
	Coeff   float64
	Factors []Factor
}

func (t Term) String() string {
	s := make([]string, 0, len(t.Factors)+1)
	s = append(s, fmt.Sprintf("%g", t.Coeff))
	for _, f := range t.Factors {
		s = append(s, f.String())
	}
	return strings.Join(s, " ")
}

//RadialOverlap is the overlap between two radial orbitals, left after the
//spin-angular integration of an overlap or a one-body tensor element.
type RadialOverlap struct {
	A, B orbital.Radial
}

func (r RadialOverlap) String() string { return fmt.Sprintf("<%v|%v>", r.A, r.B) }

//Label is a symbol known only by its name, as read back from a file.
type Label string

func (l Label) String() string { return string(l) }
