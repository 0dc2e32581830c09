package catalog

import (
	"reflect"
	"testing"

	"github.com/ctrlbits/ctrlbits-site/pkg/models"
)

func sampleProjects() []models.Project {
	return []models.Project{
		{
			Id:       1,
			Title:    "Shop",
			Category: "Web",
			Tags:     []models.Tag{{Name: "React"}},
			Featured: true,
			Date:     "2024-03-01",
		},
		{
			Id:       2,
			Title:    "CRM",
			Category: "Software",
			Tags:     []models.Tag{},
			Featured: false,
			Date:     "2024-01-01",
		},
	}
}

func ids(projects []models.Project) []int64 {
	out := make([]int64, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Id)
	}
	return out
}

func TestCategories(t *testing.T) {
	got := Categories(sampleProjects())
	want := []string{"All", "Web", "Software"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories = %v, want %v", got, want)
	}
}

func TestCategoriesNoDuplicates(t *testing.T) {
	projects := []models.Project{
		{Id: 1, Category: "Web"},
		{Id: 2, Category: "Web"},
		{Id: 3, Category: "Design"},
	}
	got := Categories(projects)
	want := []string{"All", "Web", "Design"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories = %v, want %v", got, want)
	}
}

func TestFilter(t *testing.T) {
	projects := sampleProjects()

	tests := []struct {
		name     string
		query    string
		category string
		want     []int64
	}{
		{"empty query all category", "", "All", []int64{1, 2}},
		{"tag match case insensitive", "react", "All", []int64{1}},
		{"title match", "crm", "All", []int64{2}},
		{"category field match", "web", "All", []int64{1}},
		{"active category", "", "Software", []int64{2}},
		{"query and category", "shop", "Software", []int64{}},
		{"no match", "nothing matches this", "All", []int64{}},
		{"empty category behaves like All", "", "", []int64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(projects, tt.query, tt.category))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Filter(%q, %q) = %v, want %v", tt.query, tt.category, got, tt.want)
			}
		})
	}
}

func TestFilterIdempotent(t *testing.T) {
	projects := sampleProjects()
	once := Filter(projects, "e", "All")
	twice := Filter(once, "e", "All")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second filter pass changed the result: %v vs %v", once, twice)
	}
}

func TestFilterResetIsIdentity(t *testing.T) {
	projects := sampleProjects()
	got := Filter(projects, "", AllCategory)
	if !reflect.DeepEqual(got, projects) {
		t.Fatalf("reset filter = %v, want full collection", got)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	projects := sampleProjects()
	Filter(projects, "react", "Web")
	if !reflect.DeepEqual(projects, sampleProjects()) {
		t.Fatal("input collection mutated")
	}
}

func TestFeatured(t *testing.T) {
	got := ids(Featured(sampleProjects()))
	if !reflect.DeepEqual(got, []int64{1}) {
		t.Fatalf("Featured = %v, want [1]", got)
	}
}

func TestRecent(t *testing.T) {
	projects := []models.Project{
		{Id: 2, Date: "2024-01-01"},
		{Id: 1, Date: "2024-03-01"},
	}
	got := ids(Recent(projects))
	if !reflect.DeepEqual(got, []int64{1, 2}) {
		t.Fatalf("Recent = %v, want [1 2]", got)
	}
}

func TestRecentStableForMissingDates(t *testing.T) {
	projects := []models.Project{
		{Id: 1},
		{Id: 2, Date: "not a date"},
		{Id: 3},
	}
	got := ids(Recent(projects))
	if !reflect.DeepEqual(got, []int64{1, 2, 3}) {
		t.Fatalf("Recent = %v, want original order [1 2 3]", got)
	}
}

func TestRecentMixedDates(t *testing.T) {
	// Adjacent dated projects reorder; the undated one compares equal
	// to its neighbors and keeps its position.
	projects := []models.Project{
		{Id: 1, Date: "2023-06-01"},
		{Id: 2, Date: "2024-06-01"},
		{Id: 3},
	}
	got := ids(Recent(projects))
	if !reflect.DeepEqual(got, []int64{2, 1, 3}) {
		t.Fatalf("Recent = %v, want [2 1 3]", got)
	}
}

func TestRecentDoesNotMutateInput(t *testing.T) {
	projects := []models.Project{
		{Id: 2, Date: "2024-01-01"},
		{Id: 1, Date: "2024-03-01"},
	}
	Recent(projects)
	if projects[0].Id != 2 {
		t.Fatal("input collection reordered")
	}
}

func TestGlyph(t *testing.T) {
	icon := func(s string) *string { return &s }

	tests := []struct {
		name string
		p    models.Project
		want string
	}{
		{"known key", models.Project{Icon: icon("ShoppingCart")}, "shopping-cart"},
		{"unknown key", models.Project{Icon: icon("Rocket")}, DefaultGlyph},
		{"nil icon", models.Project{}, DefaultGlyph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Glyph(&tt.p); got != tt.want {
				t.Fatalf("Glyph = %q, want %q", got, tt.want)
			}
		})
	}
}
