// Package web bundles the site's static assets.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// StaticHandler serves the embedded static directory. Mount it behind
// http.StripPrefix("/static/", ...).
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic("static assets missing: " + err.Error())
	}
	return http.FileServerFS(sub)
}
