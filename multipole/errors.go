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

package multipole

import (
	"errors"
	"fmt"

	"github.com/rmera/angmom/tensor"
)

var (
	//ErrRankMismatch is the same kind tensor.Dot fails with, so either can be checked for.
	ErrRankMismatch  = tensor.ErrRankMismatch
	ErrBasisMismatch = tensor.ErrBasisMismatch
	ErrArity         = errors.New("multipole: wrong number of orbitals")
)

//Error is the error type returned by this package.
type Error struct {
	message  string
	kind     error
	deco     []string
	critical bool
}

func newError(kind error, caller string, format string, a ...any) *Error {
	return &Error{message: fmt.Sprintf(format, a...), kind: kind, deco: []string{caller}, critical: true}
}

//Error returns a string with an error message.
func (err *Error) Error() string { return err.kind.Error() + ": " + err.message }

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

func (err *Error) Unwrap() error { return err.kind }

func errDecorate(err error, caller string) error {
	if e, ok := err.(interface{ Decorate(string) []string }); ok {
		e.Decorate(caller)
	}
	return err
}
