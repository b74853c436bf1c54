package feed

import "time"

// Entry represents a single feed item used across the demo system.
// It is the canonical type for the catalog, the HTTP API, and display.
type Entry struct {
	ID       int       `json:"id" yaml:"id"`
	Title    string    `json:"title" yaml:"title"`
	Author   string    `json:"author" yaml:"author"`
	Tags     []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	PostedAt time.Time `json:"posted_at" yaml:"posted_at"`
}

// Page is the JSON envelope the API returns for one page of entries.
type Page struct {
	Entries  []Entry `json:"entries"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}
