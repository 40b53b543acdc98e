/*
 * errors.go, part of automl-autoplex.
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

package autoplex

import "fmt"

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows to add and retrieve info from the
// error without changing its type or wrapping it around something else.
// The decoration slice should contain the list of functions in the calling
// stack, plus, for each function, any relevant information, or nothing.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError (Concrete Error) is the concrete type implementing Error.
// Fatal conditions from the input-contract and search-exhaustion taxonomy
// are returned as CError values; panics are reserved for states that
// indicate a programming error.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds the dec string to the decoration slice of the error and
// returns the resulting slice. An empty string only retrieves the current
// decorations.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// NewError builds a CError tagged with the name of the function where the
// condition was detected.
func NewError(caller, format string, a ...interface{}) Error {
	return CError{fmt.Sprintf(format, a...), []string{caller}}
}

// errDecorate asserts that the given error implements Error, decorates it
// with the caller's name and returns it. Used when passing errors up.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

// PanicMsg is a message used for panics. It satisfies the error interface,
// but for recoverable conditions use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilConf       = PanicMsg("autoplex: nil configuration given")
	ErrNoLattice     = PanicMsg("autoplex: configuration has no lattice")
	ErrAtomOutOfRange = PanicMsg("autoplex: requested atom out of range")
)
