// Package web holds the embedded dashboard assets.
package web

import _ "embed"

// DashboardHTML is the single-page dashboard served at the root path.
//
//go:embed dashboard.html
var DashboardHTML []byte
