package fallback

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	f, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(f.Projects) == 0 {
		t.Fatal("no fallback projects")
	}
	if len(f.Testimonials) == 0 {
		t.Fatal("no fallback testimonials")
	}
	for _, p := range f.Projects {
		if p.Category == "" {
			t.Fatalf("project %d has no category", p.Id)
		}
		if p.Title == "" {
			t.Fatalf("project %d has no title", p.Id)
		}
	}
}

func TestLoadCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	content := "projects:\n  - id: 42\n    title: Custom\n    category: Web\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.Projects) != 1 || f.Projects[0].Id != 42 {
		t.Fatalf("unexpected projects: %+v", f.Projects)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("projects: [}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
