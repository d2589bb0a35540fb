// SPDX-License-Identifier: MIT

package binspec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind indicates a declaration whose kind names no builder.
	ErrUnknownKind = errors.New("binspec: unknown kind")

	// ErrInvalidSpec indicates malformed YAML or a declaration missing the
	// fields its kind requires.
	ErrInvalidSpec = errors.New("binspec: invalid spec")

	// ErrUnknownMode indicates a mode other than strict or permissive.
	ErrUnknownMode = errors.New("binspec: unknown mode")
)

// specErrorf prefixes err with the declaration path, e.g. "operands[1].axes[0]".
func specErrorf(path string, err error, format string, args ...interface{}) error {
	if path == "" {
		path = "."
	}

	return fmt.Errorf("%s: %w: %s", path, err, fmt.Sprintf(format, args...))
}
