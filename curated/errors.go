// This file is part of bin2rpk.
//
// bin2rpk is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// bin2rpk is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with bin2rpk.  If not, see <https://www.gnu.org/licenses/>.

package curated

import (
	"errors"
	"fmt"
	"strings"
)

type curated struct {
	pattern string
	values  []interface{}
}

// Errorf creates a new curated error. Note that unlike fmt.Errorf() the
// formatting doesn't happen until Error() is called.
func Errorf(pattern string, values ...interface{}) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the go language error interface.
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	// de-duplicate error message parts
	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		return strings.Join(p[1:], ": ")
	}

	return strings.Join(p, ": ")
}

// Unwrap returns the first placeholder value that is an error. This allows
// the errors.Is() and errors.As() functions from the standard library to see
// through a curated error.
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// IsAny checks if error is being curated by this package.
func IsAny(err error) bool {
	if err == nil {
		return false
	}

	var er curated
	return errors.As(err, &er)
}

// Is checks if error has a specific pattern. Note that this checks for
// specificity at the top level only. Use Has() to check if the error contains
// the pattern at any level.
func Is(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}

	return false
}

// Has checks if the pattern appears anywhere in the error, including any
// curated errors used as placeholder values.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	er, ok := err.(curated)
	if !ok {
		// the error may be wrapped by a non-curated error (fmt.Errorf() with
		// the %w verb for example)
		if u := errors.Unwrap(err); u != nil {
			return Has(u, pattern)
		}
		return false
	}

	for i := range er.values {
		if e, ok := er.values[i].(error); ok {
			if Has(e, pattern) {
				return true
			}
		}
	}

	return false
}

// Value returns the placeholder value at index idx of the first error in the
// chain that has the specified pattern. The second return value is false if
// no such error or value exists.
func Value(err error, pattern string, idx int) (interface{}, bool) {
	if err == nil {
		return nil, false
	}

	if er, ok := err.(curated); ok {
		if er.pattern == pattern {
			if idx < 0 || idx >= len(er.values) {
				return nil, false
			}
			return er.values[idx], true
		}
		for i := range er.values {
			if e, ok := er.values[i].(error); ok {
				if v, ok := Value(e, pattern, idx); ok {
					return v, true
				}
			}
		}
		return nil, false
	}

	if u := errors.Unwrap(err); u != nil {
		return Value(u, pattern, idx)
	}

	return nil, false
}
