package contexthelpers

import (
	"context"

	"github.com/myrjola/tutorials/internal/identity"
)

// IdentityMarker returns the marker the route guard stored in the context or [identity.None].
func IdentityMarker(ctx context.Context) identity.Marker {
	marker, ok := ctx.Value(identityMarkerContextKey).(identity.Marker)
	if !ok {
		return identity.None
	}

	return marker
}

func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(currentPathContextKey).(string)
	if !ok {
		return ""
	}

	return currentPath
}

func CSRFToken(ctx context.Context) string {
	csrfToken, ok := ctx.Value(csrfTokenContextKey).(string)
	if !ok {
		return ""
	}

	return csrfToken
}

func CSPNonce(ctx context.Context) string {
	nonce, ok := ctx.Value(cspNonceContextKey).(string)
	if !ok {
		return ""
	}

	return nonce
}
