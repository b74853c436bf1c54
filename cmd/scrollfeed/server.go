package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/jander96/bloc-scroll-paging/internal/catalog"
	"github.com/jander96/bloc-scroll-paging/internal/httpapi"
)

// runServer starts the feed catalog with the HTTP API.
func runServer(cfg appConfig) error {
	cleanupLogger := configureRuntimeLogger()
	defer cleanupLogger()

	cat, err := buildCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	apiServer := httpapi.NewServer(cfg.APIAddr, cat)
	if err := apiServer.Listen(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}

	// Set up context and signal handling before errgroup
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down gracefully... (press Ctrl+C again to force)")
		cancel()

		// Shutdown deadline starts now, not at boot.
		deadline := time.NewTimer(10 * time.Second)
		defer deadline.Stop()

		select {
		case <-sigCh:
			fmt.Println("\nForce shutdown.")
		case <-deadline.C:
			fmt.Println("Shutdown timed out, forcing exit.")
		}
		os.Exit(1)
	}()

	printStartupBanner(cfg, cat.Len())

	g, gctx := errgroup.WithContext(ctx)

	// Serve loop; a serve error cancels gctx and tears the group down.
	g.Go(apiServer.Serve)

	// Shut the server down on signal or serve failure, unblocking Serve.
	g.Go(func() error {
		<-gctx.Done()
		return apiServer.Stop()
	})

	if err := g.Wait(); err != nil {
		log.Printf("server: errgroup exited with error: %v", err)
		return err
	}

	cancel()
	signal.Stop(sigCh)

	return nil
}

// buildCatalog loads entries from the seed file when one is configured,
// otherwise generates a deterministic catalog.
func buildCatalog(cfg appConfig) (*catalog.Catalog, error) {
	if cfg.SeedFile != "" {
		cat, err := catalog.Load(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		log.Printf("catalog: loaded %d entries from %s", cat.Len(), cfg.SeedFile)
		return cat, nil
	}
	return catalog.Generate(cfg.CatalogSize), nil
}

func configureRuntimeLogger() func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	home, err := os.UserHomeDir()
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	logDir := filepath.Join(home, ".local", "state", "scrollfeed")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	logPath := filepath.Join(logDir, "scrollfeed.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		_ = f.Close()
	}
}

func printStartupBanner(cfg appConfig, entries int) {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	bold := lipgloss.NewStyle().Bold(true)

	check := green.Render("●")
	dot := dim.Render("●")

	logo := cyan.Bold(true).Render(`
    ╔═╗╔═╗╦═╗╔═╗╦  ╦  ╔═╗╔═╗╔═╗╔╦╗
    ╚═╗║  ╠╦╝║ ║║  ║  ╠╣ ║╣ ║╣  ║║
    ╚═╝╚═╝╩╚═╚═╝╩═╝╩═╝╚  ╚═╝╚═╝═╩╝`)

	ver := dim.Render("v" + version)

	var lines []string
	lines = append(lines, "")
	lines = append(lines, logo)
	lines = append(lines, "    "+ver)
	lines = append(lines, "")

	separator := dim.Render("    ─────────────────────────────────")
	lines = append(lines, separator)
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Gateway"))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("    %s  HTTP API       %s", check, cyan.Render(cfg.APIAddr)))
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Catalog"))
	lines = append(lines, "")
	if cfg.SeedFile != "" {
		lines = append(lines, fmt.Sprintf("    %s  Seed File      %s", check, dim.Render(shortenPath(cfg.SeedFile))))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Seed File      %s", dot, dim.Render("generated")))
	}
	lines = append(lines, fmt.Sprintf("    %s  Entries        %s", check, dim.Render(fmt.Sprintf("%d", entries))))

	lines = append(lines, "")
	lines = append(lines, bold.Render("    Config"))
	lines = append(lines, "")
	if cfg.ConfigPath != "" {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", check, dim.Render(shortenPath(cfg.ConfigPath))))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", dot, dim.Render("default (no file)")))
	}

	lines = append(lines, "")
	lines = append(lines, separator)
	lines = append(lines, "")
	lines = append(lines, "    "+dim.Render("Press ")+yellow.Render("Ctrl+C")+dim.Render(" to stop"))
	lines = append(lines, "")

	fmt.Println(strings.Join(lines, "\n"))
}

func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
