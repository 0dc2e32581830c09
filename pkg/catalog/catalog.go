// Package catalog holds the pure project-collection logic shared by the
// list views: category derivation, search/category filtering, and the
// featured and recent lenses. All functions leave their input untouched.
package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/ctrlbits/ctrlbits-site/pkg/models"
)

// AllCategory is the synthetic category that matches every project.
const AllCategory = "All"

// Categories returns the distinct categories observed in the
// collection, in first-seen order and prefixed with AllCategory.
func Categories(projects []models.Project) []string {
	cats := []string{AllCategory}
	seen := map[string]bool{AllCategory: true}
	for _, p := range projects {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	return cats
}

// Filter returns the projects matching both the free-text query and the
// active category, preserving source order. The query matches if it is
// a case-insensitive substring of the title, description, category, or
// any tag name. The category must match exactly unless it is empty or
// AllCategory.
func Filter(projects []models.Project, query, category string) []models.Project {
	q := strings.ToLower(query)
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if !matchesCategory(&p, category) {
			continue
		}
		if q != "" && !matchesQuery(&p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Featured returns the subset flagged as featured, in source order.
func Featured(projects []models.Project) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Recent returns a copy sorted by date, newest first. Projects whose
// date is missing or unparseable compare equal, so the stable sort
// keeps their original relative order.
func Recent(projects []models.Project) []models.Project {
	out := make([]models.Project, len(projects))
	copy(out, projects)
	sort.SliceStable(out, func(i, j int) bool {
		a, okA := parseDate(out[i].Date)
		b, okB := parseDate(out[j].Date)
		if !okA || !okB {
			return false
		}
		return a.After(b)
	})
	return out
}

func matchesCategory(p *models.Project, category string) bool {
	return category == "" || category == AllCategory || p.Category == category
}

func matchesQuery(p *models.Project, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t.Name), q) {
			return true
		}
	}
	return false
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
