package catalog

import "github.com/ctrlbits/ctrlbits-site/pkg/models"

// DefaultGlyph is used for projects with no icon or an unknown icon key.
const DefaultGlyph = "code"

// Backend icon keys mapped to the glyph identifiers the templates
// render. Unknown keys fall back to DefaultGlyph.
var glyphs = map[string]string{
	"ShoppingCart": "shopping-cart",
	"Layout":       "layout",
	"Palette":      "palette",
	"Database":     "database",
	"Globe":        "globe",
	"Code":         "code",
	"ChefHat":      "chef-hat",
}

// Glyph resolves a project's icon key to a glyph identifier.
func Glyph(p *models.Project) string {
	if p.Icon == nil {
		return DefaultGlyph
	}
	if g, ok := glyphs[*p.Icon]; ok {
		return g
	}
	return DefaultGlyph
}
