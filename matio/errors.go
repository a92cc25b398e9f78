// SPDX-License-Identifier: MIT

package matio

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic is returned when a binary stream does not start with the lvmat magic.
	ErrBadMagic = errors.New("matio: not an lvmat binary matrix")

	// ErrVersion is returned for an unsupported format version.
	ErrVersion = errors.New("matio: unsupported format version")

	// ErrKind is returned when the stored element kind differs from the requested one.
	ErrKind = errors.New("matio: element kind mismatch")

	// ErrTruncated is returned when the payload is shorter than the header announces.
	ErrTruncated = errors.New("matio: truncated payload")

	// ErrParse is returned when a CSV cell is not a number.
	ErrParse = errors.New("matio: cannot parse number")
)

// ioErrorf wraps err with an operation tag, preserving the cause via %w.
func ioErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
