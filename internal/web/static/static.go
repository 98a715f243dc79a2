// Package static embeds the assets served under /static/.
package static

import "embed"

//go:embed app.css app.js
var FS embed.FS
