// Package web holds the page served to the browser. The page only draws
// what the server sends and reports clicks and geolocation results back.
package web

import "embed"

//go:embed index.html static
var Assets embed.FS
