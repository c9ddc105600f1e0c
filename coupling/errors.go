/*
 * errors.go, part of angmom.
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
	"strings"
)

//ErrDomain is the kind of the errors returned when a quantum number lies outside
//the domain of the function it is given to.
var ErrDomain = errors.New("coupling: value outside its domain")

//Error is the error type returned by this package. It mirrors the error
//types of the other angmom packages.
type Error struct {
	message  string
	kind     error
	deco     []string
	critical bool
}

func newError(kind error, message, caller string) *Error {
	return &Error{message: message, kind: kind, deco: []string{caller}, critical: true}
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return err.kind.Error() + ": " + err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err *Error) Critical() bool { return err.critical }

//Unwrap returns the kind of the error, so it can be checked with errors.Is.
func (err *Error) Unwrap() error { return err.kind }

//Trace returns the chain of functions the error went through, innermost first.
func (err *Error) Trace() string { return strings.Join(err.deco, " <- ") }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotInteger = PanicMsg("angmom/coupling: half-integer used where an integer is required")
)
