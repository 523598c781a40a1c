// Package routeguard decides for every incoming request whether it may reach the page handlers or has to be
// redirected based on the presence of the identity marker cookie.
package routeguard

import (
	"github.com/myrjola/tutorials/internal/identity"
)

const (
	LoginPath  = "/login"
	LogoutPath = "/logout"
	HomePath   = "/home"
)

// Decision is the outcome of the route guard policy.
type Decision int

const (
	// Pass lets the request through to the next handler.
	Pass Decision = iota
	// RedirectLogin sends visitors without a marker to the login page.
	RedirectLogin
	// RedirectHome sends visitors that already have a marker away from the login page.
	RedirectHome
	// Logout clears the marker and redirects to the login page.
	Logout
)

func (d Decision) String() string {
	switch d {
	case Pass:
		return "pass"
	case RedirectLogin:
		return "redirect_login"
	case RedirectHome:
		return "redirect_home"
	case Logout:
		return "logout"
	default:
		return "unknown"
	}
}

// Location is the redirect target of the decision or empty for Pass.
func (d Decision) Location() string {
	switch d {
	case RedirectLogin, Logout:
		return LoginPath
	case RedirectHome:
		return HomePath
	case Pass:
		return ""
	default:
		return ""
	}
}

// Decide applies the policy to a request path and the marker read from the request.
//
// The rules are evaluated in order:
//  1. /logout always logs out.
//  2. Any other path except /login requires a marker.
//  3. /login with a marker goes to /home.
//  4. Everything else passes.
func Decide(path string, marker identity.Marker) Decision {
	switch {
	case path == LogoutPath:
		return Logout
	case path != LoginPath && !marker.Present():
		return RedirectLogin
	case path == LoginPath && marker.Present():
		return RedirectHome
	default:
		return Pass
	}
}
