package web

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/ctrlbits/ctrlbits-site/pkg/backend"
	"github.com/ctrlbits/ctrlbits-site/pkg/catalog"
	"github.com/ctrlbits/ctrlbits-site/pkg/models"
	"github.com/ctrlbits/ctrlbits-site/pkg/util"
)

type listPage struct {
	Query      string
	Category   string
	Tab        string
	View       string
	Categories []string
	Projects   []models.Project
	// Degraded marks that the backend fetch failed and the page is
	// showing placeholder projects; RetryURL re-requests the same URL.
	Degraded bool
	RetryURL string
}

type detailPage struct {
	Project *models.Project
	// Rich is the backend-authored full_description. The backend is
	// the sole content author and is trusted; no sanitization happens
	// here.
	Rich template.HTML
}

func (h *handler) projectList(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := params.Get("q")
	category := params.Get("category")
	if category == "" {
		category = catalog.AllCategory
	}
	tab := params.Get("tab")
	switch tab {
	case "featured", "recent":
	default:
		tab = "categories"
	}
	view := params.Get("view")
	if view != "list" {
		view = "grid"
	}

	ctx := r.Context()
	var (
		resp *models.ProjectsResponse
		err  error
	)
	serverSide := util.Config.ServerSideFilter
	switch {
	case serverSide && tab == "featured":
		resp, err = h.backend.FeaturedProjects(ctx)
	case serverSide && tab == "categories" && category != catalog.AllCategory:
		resp, err = h.backend.ProjectsByCategory(ctx, category)
	default:
		serverSide = false
		resp, err = h.backend.Projects(ctx)
	}
	degraded := false
	var projects []models.Project
	if err != nil {
		sentry.CaptureException(err)
		log.WithError(err).Error("fetch projects, serving placeholder content")
		projects = h.fallback.Projects
		// the fallback set is unfiltered; apply the lenses locally
		serverSide = false
		degraded = true
	} else {
		projects = resp.Results
	}
	categories := catalog.Categories(projects)

	var shown []models.Project
	switch tab {
	case "featured":
		if serverSide {
			shown = projects
		} else {
			shown = catalog.Featured(projects)
		}
	case "recent":
		shown = catalog.Recent(projects)
	default:
		if serverSide {
			// category already applied by the backend
			shown = catalog.Filter(projects, query, catalog.AllCategory)
		} else {
			shown = catalog.Filter(projects, query, category)
		}
	}

	h.render(w, http.StatusOK, "projects", listPage{
		Query:      query,
		Category:   category,
		Tab:        tab,
		View:       view,
		Categories: categories,
		Projects:   shown,
		Degraded:   degraded,
		RetryURL:   r.URL.RequestURI(),
	})
}

func (h *handler) projectDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	p, err := h.backend.ProjectBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			h.render(w, http.StatusNotFound, "error", errorPage{
				Title:     "Project not found",
				Message:   fmt.Sprintf("No project matches %q.", slug),
				BackURL:   "/projects",
				BackLabel: "Back to Projects",
			})
			return
		}
		sentry.CaptureException(err)
		log.WithError(err).Errorf("fetch project %s", slug)
		h.render(w, http.StatusBadGateway, "error", errorPage{
			Title:     "Failed to load project details",
			Message:   "Something went wrong while loading this project.",
			BackURL:   "/projects",
			BackLabel: "Back to Projects",
		})
		return
	}

	h.render(w, http.StatusOK, "project", detailPage{
		Project: p,
		Rich:    template.HTML(p.FullDescription),
	})
}
