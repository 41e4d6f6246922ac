// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidPackageName is the sentinel error wrapped by InvalidPackageNameError.
var ErrInvalidPackageName = errors.New("invalid package name")

type (
	// PackageName is the name of the software handed to a package manager.
	// It becomes a single argv element, so it must be non-empty, printable,
	// free of whitespace and must not start with '-' (it would be read as a flag).
	PackageName string

	// InvalidPackageNameError is returned when a PackageName fails validation.
	InvalidPackageNameError struct {
		Value  PackageName
		Reason string
	}
)

// String returns the string representation of the PackageName.
func (n PackageName) String() string { return string(n) }

// Validate returns an error if the PackageName cannot be passed to a package manager.
func (n PackageName) Validate() error {
	switch {
	case n == "":
		return &InvalidPackageNameError{Value: n, Reason: "must not be empty"}
	case strings.HasPrefix(string(n), "-"):
		return &InvalidPackageNameError{Value: n, Reason: "must not start with '-'"}
	case strings.IndexFunc(string(n), unicode.IsSpace) >= 0:
		return &InvalidPackageNameError{Value: n, Reason: "must not contain whitespace"}
	case strings.IndexFunc(string(n), func(r rune) bool { return !unicode.IsPrint(r) }) >= 0:
		return &InvalidPackageNameError{Value: n, Reason: "must not contain control or non-printable characters"}
	}
	return nil
}

// Error implements the error interface for InvalidPackageNameError.
func (e *InvalidPackageNameError) Error() string {
	return fmt.Sprintf("invalid package name %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidPackageName for errors.Is() compatibility.
func (e *InvalidPackageNameError) Unwrap() error { return ErrInvalidPackageName }
