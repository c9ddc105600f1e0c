/*
 * errors.go, part of angmom.
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
	"errors"
	"fmt"
)

var (
	ErrNonOrthogonal   = errors.New("angmom: non-orthogonal orbitals are not supported by this term generator")
	ErrConfiguration   = errors.New("angmom: invalid configuration")
	ErrArity           = errors.New("angmom: operator and orbitals do not match")
	ErrMissingIntegral = errors.New("angmom: missing value for a symbol")
	ErrShape           = errors.New("angmom: dimension mismatch")
	ErrNotSymmetric    = errors.New("angmom: matrix is not symmetric")
	ErrOptions         = errors.New("angmom: invalid options")
)

// errorStruct is the Error implementation of this package.
type errorStruct struct {
	message  string
	kind     error
	deco     []string
	critical bool
}

func newError(kind error, caller string, format string, a ...any) *errorStruct {
	return &errorStruct{message: fmt.Sprintf(format, a...), kind: kind, deco: []string{caller}, critical: true}
}

// Error returns a string with an error message.
func (err *errorStruct) Error() string { return err.kind.Error() + ": " + err.message }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *errorStruct) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored.
func (err *errorStruct) Critical() bool { return err.critical }

func (err *errorStruct) Unwrap() error { return err.kind }

// errDecorate is a helper function that decorates the error with the caller's name
// if it implements Error. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrIndexOutOfRange = PanicMsg("angmom: index out of range")
)
