package feed

import "time"

// Shared defaults used by both the server and TUI binaries.
const (
	DefaultPageSize       = 20
	DefaultAPIAddr        = "127.0.0.1:3900"
	DefaultRequestTimeout = 10 * time.Second
	DefaultDebounce       = 250 * time.Millisecond
)
