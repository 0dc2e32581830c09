package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/ctrlbits/ctrlbits-site/pkg/catalog"
	"github.com/ctrlbits/ctrlbits-site/pkg/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"glyph": func(p models.Project) string { return catalog.Glyph(&p) },
}).ParseFS(templateFS, "templates/*.html"))

// errorPage backs every failure state: fetch errors, not-found, and
// unknown routes. RetryURL renders a Try Again link, BackURL a
// navigation link.
type errorPage struct {
	Title     string
	Message   string
	RetryURL  string
	BackURL   string
	BackLabel string
}

func (h *handler) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		log.WithError(err).Errorf("render %s", name)
	}
}
