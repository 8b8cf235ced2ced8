package simm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfiguration reports malformed construction input: an unparseable tenor,
// an unknown enumeration name, or currencies that do not match.
var ErrConfiguration = errors.New("configuration error")

// ErrCapability reports a collaborator that lacks a capability required by the
// caller, like a product that cannot report its underlyings.
var ErrCapability = errors.New("capability error")

// Configurationf returns an error wrapping ErrConfiguration.
func Configurationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// Capabilityf returns an error wrapping ErrCapability.
func Capabilityf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCapability, fmt.Sprintf(format, args...))
}

// parseName looks up 's' among 'names' and returns the matching value.
// Matching is exact: case and spacing matter.
func parseName[T any](kind, s string, names []string, values []T) (T, error) {
	for i, name := range names {
		if name == s {
			return values[i], nil
		}
	}
	var zero T
	return zero, Configurationf("unknown %s %q, expected one of %s", kind, s, strings.Join(names, ", "))
}
