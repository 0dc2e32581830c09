// Package fallback supplies the placeholder content shown when a
// backend fetch fails. The collections live in a YAML file so they can
// be swapped without touching view code; an embedded copy is used when
// no file is configured.
package fallback

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ctrlbits/ctrlbits-site/pkg/models"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type Fixtures struct {
	Projects     []models.Project     `yaml:"projects"`
	Team         []models.TeamMember  `yaml:"team"`
	Testimonials []models.Testimonial `yaml:"testimonials"`
	Companies    []models.Company     `yaml:"companies"`
}

// Load reads fixtures from path, or the embedded defaults when path is
// empty.
func Load(path string) (*Fixtures, error) {
	data := defaultFixtures
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixtures: %w", err)
		}
		data = b
	}

	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &f, nil
}
