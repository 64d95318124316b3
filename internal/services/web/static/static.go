// Package static embeds the dashboard's stylesheet and other assets.
package static

import "embed"

//go:embed assets
var FS embed.FS
