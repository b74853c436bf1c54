// Package httpapi serves the demo feed over HTTP: a health endpoint and
// a paged entries endpoint honoring the short-final-page exhaustion
// contract.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jander96/bloc-scroll-paging/internal/feed"
)

// maxPageSize caps the page_size query parameter.
const maxPageSize = 100

// EntrySource is the narrow catalog contract required by the API.
type EntrySource interface {
	Page(page, pageSize int) []feed.Entry
	Len() int
}

// Server provides the HTTP API for the demo feed.
type Server struct {
	addr      string
	source    EntrySource
	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new HTTP API server.
func NewServer(addr string, source EntrySource) *Server {
	if addr == "" {
		addr = feed.DefaultAPIAddr
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		source: source,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Listen binds the TCP listener and prepares the HTTP server, so bind
// errors surface before serving starts. Serve must be called next.
func (s *Server) Listen() error {
	gin.SetMode(gin.ReleaseMode)
	r := s.router()

	s.server = &http.Server{
		Handler:           r,
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.listener = listener
	s.startTime = time.Now()
	return nil
}

// Serve blocks handling requests on the bound listener until Stop is
// called. A graceful shutdown reports nil.
func (s *Server) Serve() error {
	if s.listener == nil {
		return errors.New("httpapi: Serve called before Listen")
	}
	if err := s.server.Serve(s.listener); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts down the HTTP server, unblocking Serve.
func (s *Server) Stop() error {
	s.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the bound listen address, or the configured one before
// Listen.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/entries", s.handleEntries)

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"uptime":  time.Since(s.startTime).String(),
		"entries": s.source.Len(),
	})
}

func (s *Server) handleEntries(c *gin.Context) {
	page, err := positiveIntQuery(c, "page", 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
		return
	}
	pageSize, err := positiveIntQuery(c, "page_size", feed.DefaultPageSize)
	if err != nil || pageSize > maxPageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page_size must be a positive integer up to " + strconv.Itoa(maxPageSize)})
		return
	}

	entries := s.source.Page(page, pageSize)
	if entries == nil {
		entries = []feed.Entry{}
	}

	c.JSON(http.StatusOK, feed.Page{
		Entries:  entries,
		Page:     page,
		PageSize: pageSize,
	})
}

// positiveIntQuery parses a positive integer query parameter, applying
// the fallback when absent.
func positiveIntQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
