package types

import (
	"errors"
	"fmt"
)

// NotFoundError indicates that a named thing does not exist: the artifact
// file itself, or a country/cluster/method looked up within a loaded
// Dataset. Both cases are terminal for the session; in particular a missing
// artifact means the upstream export has to be re-run, there is nothing to
// retry against.
type NotFoundError struct {
	// Kind names what was looked up: "artifact", "country", "cluster" or
	// "method".
	Kind string
	// Name is the identifier that failed to resolve.
	Name string
	// WrappedError carries the underlying cause when one exists (e.g. the
	// os.Stat error for a missing artifact file).
	WrappedError error
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.WrappedError != nil {
		return fmt.Sprintf("%s %q not found: %v", e.Kind, e.Name, e.WrappedError)
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Unwrap allows error unwrapping
func (e *NotFoundError) Unwrap() error {
	return e.WrappedError
}

// MalformedDataError indicates the artifact violates its schema: a required
// key is missing, or a country-indexed sequence does not match the country
// count. It names the offending key and, for length mismatches, both
// lengths, so the report points at the exact broken invariant.
type MalformedDataError struct {
	// Key is the JSON key the violation was found under.
	Key string
	// Reason describes the violation ("missing required key",
	// "length mismatch", ...).
	Reason string
	// Want and Got carry the expected and actual sequence lengths for
	// length violations; both are zero otherwise.
	Want int
	Got  int
}

// Error implements the error interface
func (e *MalformedDataError) Error() string {
	if e.Want != 0 || e.Got != 0 {
		return fmt.Sprintf("malformed artifact: %s at %q (want %d entries, got %d)",
			e.Reason, e.Key, e.Want, e.Got)
	}
	return fmt.Sprintf("malformed artifact: %s at %q", e.Reason, e.Key)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsMalformed reports whether err is (or wraps) a MalformedDataError.
func IsMalformed(err error) bool {
	var mf *MalformedDataError
	return errors.As(err, &mf)
}
