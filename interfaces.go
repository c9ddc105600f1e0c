/*
 * interfaces.go, part of angmom.
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

import "github.com/rmera/angmom/orbital"

// Operator is a quantum-mechanical operator acting on one or more electrons.
type Operator interface {
	String() string
	//Bodies returns the number of electrons the operator acts on at once.
	Bodies() int
}

// Factor is one of the factors of a Term: an orbital matrix element or an overlap.
type Factor interface {
	String() string
	isFactor()
}

// Symbol is an opaque factor of an energy expression, such as a radial integral, a
// radial overlap, or a matrix element that could not be reduced. Symbols are told
// apart by their String form.
type Symbol interface {
	String() string
}

// TermGenerator turns the matrix element of an operator between two configurations
// into a list of terms, each a coefficient times a product of orbital matrix elements
// and overlaps. An empty list means the matrix element vanishes.
// Implementations must be pure, as they are called concurrently.
type TermGenerator interface {
	Terms(op Operator, bra, ket orbital.Configuration, overlaps []Overlap) ([]Term, error)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
// All of them also unwrap to a sentinel of their package, to be checked with errors.Is.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	Critical() bool
}
