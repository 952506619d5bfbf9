// Package static embeds the editor assets served next to the snippet page.
package static

import "embed"

// FS exposes the editor script and stylesheet for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS
