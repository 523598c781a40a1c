package main

import (
	"net/http"
	"time"
)

// timeoutBody has no scripts since it's written outside the handler that knows the CSP nonce.
const timeoutBody = `<!doctype html>
<html lang="en">
<head>
    <title>Timeout</title>
    <link rel="stylesheet" href="/static/main.css">
</head>
<body>
<main>
    <h1>Timeout</h1>
    <p>Fetching the data took too long.</p>
    <a href="">Retry</a>
</main>
</body>
</html>
`

const timeoutHandlerHeadroom = 500 * time.Millisecond

// timeoutHandler responds with a 503 Service Unavailable error when the handler does not meet the deadline.
func timeoutHandler(h http.Handler, defaultTimeout time.Duration) http.Handler {
	// The timeout is a little shorter than the server's write timeout so that the
	// timeout handler has a chance to respond before the server closes the connection.
	httpHandlerTimeout := defaultTimeout - timeoutHandlerHeadroom
	return http.TimeoutHandler(h, httpHandlerTimeout, timeoutBody)
}
