// Package catalog holds the demo feed's item source: an in-memory
// ordered list of entries, seeded from a YAML file or generated.
package catalog

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jander96/bloc-scroll-paging/internal/feed"
)

// Catalog is an ordered, read-only entry source. Page numbering is
// 1-based; a page shorter than the requested size signals the end of
// the catalog.
type Catalog struct {
	entries []feed.Entry
}

// seedFile is the YAML shape of a seed file.
type seedFile struct {
	Entries []feed.Entry `yaml:"entries"`
}

// Load reads a YAML seed file into a Catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}
	return New(seed.Entries), nil
}

// New wraps a fixed entry list as a Catalog.
func New(entries []feed.Entry) *Catalog {
	return &Catalog{entries: append([]feed.Entry(nil), entries...)}
}

// Generate creates a deterministic sample catalog of n entries, used
// when no seed file is configured.
func Generate(n int) *Catalog {
	authors := []string{"ada", "brendan", "grace", "ken", "rob"}
	tags := [][]string{
		{"release"},
		{"tooling", "ci"},
		{"design"},
		{"perf"},
		nil,
	}
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	entries := make([]feed.Entry, n)
	for i := range entries {
		entries[i] = feed.Entry{
			ID:       i + 1,
			Title:    fmt.Sprintf("Update #%d from the demo feed", i+1),
			Author:   authors[i%len(authors)],
			Tags:     tags[i%len(tags)],
			PostedAt: base.Add(time.Duration(i) * 17 * time.Minute),
		}
	}
	return New(entries)
}

// Len returns the total number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Page returns the 1-based page of the given size. Pages past the end
// are empty, the final page may be short.
func (c *Catalog) Page(page, pageSize int) []feed.Entry {
	if page < 1 || pageSize < 1 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(c.entries) {
		return nil
	}
	end := start + pageSize
	if end > len(c.entries) {
		end = len(c.entries)
	}
	return append([]feed.Entry(nil), c.entries[start:end]...)
}
