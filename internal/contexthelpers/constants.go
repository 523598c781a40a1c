package contexthelpers

type contextKey string

const identityMarkerContextKey = contextKey("identityMarker")
const currentPathContextKey = contextKey("currentPath")
const csrfTokenContextKey = contextKey("csrfToken")
const cspNonceContextKey = contextKey("cspNonce")
