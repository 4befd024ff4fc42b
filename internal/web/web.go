// Package web ships the HTML templates and static assets inside the binary,
// so a deployed instance is a single file with no directory layout to get
// wrong.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Engine returns the view engine over the embedded templates. Template names
// are the file names without extension ("index", "history", ...).
func Engine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// Only reachable if the embed directive and the directory name drift
		// apart, which is a build-time mistake.
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("inc", func(i int) int { return i + 1 })
	return engine
}

// StaticFS returns the embedded static asset tree rooted at "static". A
// request for an icon that was never shipped simply 404s; nothing else in the
// app depends on the file being present.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
