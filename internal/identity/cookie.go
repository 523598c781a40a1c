package identity

import (
	"net/http"
	"strings"
	"time"
)

// CookieName is the name of the cookie holding the marker.
const CookieName = "user_type"

// CookieOptions controls the attributes of the marker cookie.
type CookieOptions struct {
	// Secure restricts the cookie to HTTPS. Disable it only for plain HTTP development servers.
	Secure bool
}

// Read returns the marker from the request cookie.
//
// A missing cookie and a cookie with an empty value both mean that no marker is present.
func Read(r *http.Request) (Marker, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return None, false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return None, false
	}
	return Marker(value), true
}

// Write sets the marker cookie on the response.
func Write(w http.ResponseWriter, m Marker, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{ //nolint:exhaustruct // defaults are fine for the rest
		Name:     CookieName,
		Value:    string(m),
		Path:     "/",
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the marker cookie by setting an empty value with an expiry in the past.
func Clear(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{ //nolint:exhaustruct // defaults are fine for the rest
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
