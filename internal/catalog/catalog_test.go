package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	a := Generate(30)
	b := Generate(30)
	if a.Len() != 30 || b.Len() != 30 {
		t.Fatalf("generated lengths = %d, %d, want 30", a.Len(), b.Len())
	}
	other := b.Page(1, 30)
	for i, entry := range a.Page(1, 30) {
		if entry.ID != i+1 {
			t.Fatalf("entry ID = %d, want %d", entry.ID, i+1)
		}
		if entry.Title != other[i].Title || !entry.PostedAt.Equal(other[i].PostedAt) {
			t.Fatalf("entry %d not deterministic: %+v vs %+v", i, entry, other[i])
		}
	}
}

func TestPage_Bounds(t *testing.T) {
	t.Parallel()

	c := Generate(25)

	cases := []struct {
		name     string
		page     int
		pageSize int
		wantLen  int
	}{
		{"first full page", 1, 10, 10},
		{"middle page", 2, 10, 10},
		{"short final page", 3, 10, 5},
		{"past the end", 4, 10, 0},
		{"zero page", 0, 10, 0},
		{"zero size", 1, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := len(c.Page(tc.page, tc.pageSize)); got != tc.wantLen {
				t.Fatalf("len(Page(%d, %d)) = %d, want %d", tc.page, tc.pageSize, got, tc.wantLen)
			}
		})
	}
}

func TestPage_OrderPreserved(t *testing.T) {
	t.Parallel()

	c := Generate(25)
	var ids []int
	for page := 1; ; page++ {
		entries := c.Page(page, 10)
		for _, e := range entries {
			ids = append(ids, e.ID)
		}
		if len(entries) < 10 {
			break
		}
	}

	if len(ids) != 25 {
		t.Fatalf("collected %d entries, want 25", len(ids))
	}
	for i, id := range ids {
		if id != i+1 {
			t.Fatalf("ids[%d] = %d, want %d", i, id, i+1)
		}
	}
}

func TestLoad_SeedFile(t *testing.T) {
	t.Parallel()

	seed := `entries:
  - id: 1
    title: "First post"
    author: ada
    tags: [release]
    posted_at: 2025-01-01T09:00:00Z
  - id: 2
    title: "Second post"
    author: rob
    posted_at: 2025-01-01T10:00:00Z
`
	path := filepath.Join(t.TempDir(), "seed.yml")
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	first := c.Page(1, 10)[0]
	if first.Title != "First post" || first.Author != "ada" {
		t.Fatalf("first entry = %+v", first)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("Load of a missing file should error")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("entries: [not closed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load of malformed YAML should error")
	}
}
