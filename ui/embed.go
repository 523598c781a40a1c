// Package ui holds the page templates and static assets compiled into the binary.
package ui

import "embed"

//go:embed templates static
var Files embed.FS
