package routeguard

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/myrjola/tutorials/internal/contexthelpers"
	"github.com/myrjola/tutorials/internal/identity"
	"github.com/myrjola/tutorials/internal/logging"
)

// DefaultExcludedPrefixes are never guarded. They cover static assets.
var DefaultExcludedPrefixes = []string{"/static/"}

// DefaultExcludedPaths are never guarded. They cover the favicon and the health check.
var DefaultExcludedPaths = []string{"/favicon.ico", "/api/healthy"}

// Guard is an HTTP middleware applying [Decide] to every request outside the exclusion set.
type Guard struct {
	logger           *slog.Logger
	cookie           identity.CookieOptions
	excludedPrefixes []string
	excludedPaths    []string
}

// Option configures a Guard.
type Option func(*Guard)

// WithExcludedPrefixes replaces the excluded path prefixes.
func WithExcludedPrefixes(prefixes ...string) Option {
	return func(g *Guard) {
		g.excludedPrefixes = prefixes
	}
}

// WithExcludedPaths replaces the excluded exact paths.
func WithExcludedPaths(paths ...string) Option {
	return func(g *Guard) {
		g.excludedPaths = paths
	}
}

// New creates a Guard. The cookie options are used when the marker is cleared on logout.
func New(logger *slog.Logger, cookie identity.CookieOptions, opts ...Option) *Guard {
	g := &Guard{
		logger:           logger,
		cookie:           cookie,
		excludedPrefixes: DefaultExcludedPrefixes,
		excludedPaths:    DefaultExcludedPaths,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Excluded reports whether path bypasses the guard.
func (g *Guard) Excluded(path string) bool {
	for _, p := range g.excludedPaths {
		if path == p {
			return true
		}
	}
	for _, prefix := range g.excludedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Middleware redirects or passes the request according to [Decide].
//
// Requests that pass carry the marker in their context, see [contexthelpers.IdentityMarker], and their responses
// are marked as not cacheable so that protected pages don't linger in shared or browser caches after logout.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if g.Excluded(path) {
			next.ServeHTTP(w, r)
			return
		}

		marker, _ := identity.Read(r)
		decision := Decide(path, marker)

		ctx := logging.WithAttrs(r.Context(),
			slog.String("route_decision", decision.String()),
			slog.String("user_type", marker.String()),
		)
		r = r.WithContext(ctx)
		g.logger.LogAttrs(ctx, slog.LevelDebug, "route guard decision", slog.String("path", path))

		switch decision {
		case Logout:
			identity.Clear(w, g.cookie)
			g.redirect(w, r, decision)
		case RedirectLogin, RedirectHome:
			g.redirect(w, r, decision)
		case Pass:
			w.Header().Set("Cache-Control", "no-store")
			next.ServeHTTP(w, contexthelpers.SetIdentityMarker(r, marker))
		}
	})
}

// redirect uses 307 for safe methods. Other methods get 303 so that the browser follows up with a GET.
func (g *Guard) redirect(w http.ResponseWriter, r *http.Request, decision Decision) {
	status := http.StatusTemporaryRedirect
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		status = http.StatusSeeOther
	}
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, decision.Location(), status)
}

// Evaluate returns the decision for path and marker honouring the exclusion set. Excluded paths always pass.
func (g *Guard) Evaluate(path string, marker identity.Marker) Decision {
	if g.Excluded(path) {
		return Pass
	}
	return Decide(path, marker)
}
