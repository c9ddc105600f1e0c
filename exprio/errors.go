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

package exprio

import (
	"fmt"

	"github.com/rmera/angmom"
)

//Error is the error type of this package. It wraps the underlying error, and
//it fulfills angmom.Error.
type Error struct {
	filename string //the file that has problems
	err      error
	deco     []string
	critical bool
}

func newError(filename, caller string, err error) *Error {
	return &Error{filename: filename, err: err, deco: []string{caller}, critical: true}
}

func (err *Error) Error() string {
	return fmt.Sprintf("expression file %s error: %v", err.filename, err.err)
}

//Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing operation was associated
func (err *Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

func (err *Error) Unwrap() error { return err.err }

func errDecorate(err error, caller string) error {
	if e, ok := err.(angmom.Error); ok {
		e.Decorate(caller)
	}
	return err
}
