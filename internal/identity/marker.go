// Package identity handles the identity marker, the client-supplied role name that stands in for a logged-in user.
//
// The marker is checked against the allow-list only when it is created. Everything downstream trusts any
// non-empty value, so the marker is not a security boundary.
package identity

import (
	"log/slog"
	"strings"

	"github.com/myrjola/tutorials/internal/errors"
)

// Marker is the role name stored in the user_type cookie.
type Marker string

const (
	User  Marker = "user"
	Admin Marker = "admin"
)

// None is the zero Marker meaning that no marker is present.
const None Marker = ""

var allowed = []Marker{User, Admin}

var ErrInvalidMarker = errors.NewSentinel("invalid user")

// Parse validates input against the allow-list.
//
// Surrounding whitespace is ignored but the comparison is otherwise exact, so "Admin" is rejected.
func Parse(input string) (Marker, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return None, errors.Wrap(ErrInvalidMarker, "empty marker")
	}
	for _, m := range allowed {
		if string(m) == trimmed {
			return m, nil
		}
	}
	return None, errors.Wrap(ErrInvalidMarker, "marker not in allow-list", slog.String("input", trimmed))
}

// Allowed returns the markers accepted by Parse.
func Allowed() []Marker {
	out := make([]Marker, len(allowed))
	copy(out, allowed)
	return out
}

// Present reports whether m holds a value.
func (m Marker) Present() bool {
	return m != None
}

func (m Marker) String() string {
	return string(m)
}

// Label is the upper-cased marker used as navigation link text.
func (m Marker) Label() string {
	return strings.ToUpper(string(m))
}
