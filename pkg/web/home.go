package web

import (
	"net/http"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/ctrlbits/ctrlbits-site/pkg/models"
)

type homePage struct {
	Testimonials []models.Testimonial
	Team         []models.TeamMember
	Companies    []models.Company
	Tech         models.TechData
}

// home renders the landing page. Each section fetches independently and
// in parallel; a failed section falls back to placeholder content
// instead of failing the page.
func (h *handler) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := homePage{}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		resp, err := h.backend.Testimonials(ctx)
		if err != nil {
			log.WithError(err).Warn("fetch testimonials, using fallback")
			page.Testimonials = h.fallback.Testimonials
			return
		}
		page.Testimonials = resp.Results
	}()

	go func() {
		defer wg.Done()
		resp, err := h.backend.Team(ctx)
		if err != nil {
			log.WithError(err).Warn("fetch team, using fallback")
			page.Team = h.fallback.Team
			return
		}
		page.Team = resp.Results
	}()

	go func() {
		defer wg.Done()
		resp, err := h.backend.Companies(ctx)
		if err != nil {
			log.WithError(err).Warn("fetch companies, using fallback")
			page.Companies = h.fallback.Companies
			return
		}
		page.Companies = resp.Results
	}()

	go func() {
		defer wg.Done()
		tech, err := h.backend.Tech(ctx)
		if err != nil {
			// no placeholder content; the section is simply omitted
			log.WithError(err).Warn("fetch tech stack")
			return
		}
		page.Tech = tech
	}()

	wg.Wait()

	h.render(w, http.StatusOK, "home", page)
}
