package web

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/ctrlbits/ctrlbits-site/pkg/backend"
	"github.com/ctrlbits/ctrlbits-site/pkg/fallback"
	"github.com/ctrlbits/ctrlbits-site/pkg/util"
)

type handler struct {
	backend  *backend.Client
	fallback *fallback.Fixtures
}

func Router(b *backend.Client, fx *fallback.Fixtures) *chi.Mux {
	r := chi.NewRouter()

	cors := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}).Handler

	r.Use(cors)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)

	h := &handler{backend: b, fallback: fx}

	r.Get("/", h.home)
	r.Get("/health", health)
	r.Get("/projects", h.projectList)
	r.Get("/projects/{slug}", h.projectDetail)
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(staticFiles()))))
	r.NotFound(h.notFound)

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status": "ok", "startTime": %d, "version": "%s"}`,
		util.Config.StartTime, util.Config.Version)
}

func (h *handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, "error", errorPage{
		Title:     "Page not found",
		Message:   "The page you are looking for does not exist.",
		BackURL:   "/",
		BackLabel: "Back to Home",
	})
}
