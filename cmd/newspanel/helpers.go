package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goelo/newspanel/internal/config"
	"github.com/goelo/newspanel/internal/fetch"
	"github.com/goelo/newspanel/internal/store"
	"github.com/goelo/newspanel/internal/studio"
)

// dataDir returns ~/.newspanel, creating it if needed.
func dataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	dir := filepath.Join(home, ".newspanel")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dir, nil
}

// defaultDBPath resolves the archive database location.
func defaultDBPath() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "newspanel.db"), nil
}

// configuredSources returns the feeds from config, or the built-in presets.
func configuredSources(cfg *config.Config) []fetch.Source {
	if len(cfg.Feeds) == 0 {
		return fetch.DefaultSources()
	}
	sources := make([]fetch.Source, len(cfg.Feeds))
	for i, f := range cfg.Feeds {
		sources[i] = fetch.Source{Name: f.Name, URL: f.URL}
	}
	return sources
}

// gatherTitles resolves the input titles for a run: a file ("-" for stdin)
// when given, the configured feeds otherwise. Feed sources are tried in
// order until one delivers.
func gatherTitles(ctx context.Context, cfg *config.Config, file string, limit int) ([]string, error) {
	if file != "" {
		return readTitleLines(file, limit)
	}

	fetcher := fetch.NewFetcher(30 * time.Second)
	var lastErr error
	for _, src := range configuredSources(cfg) {
		headlines, err := fetcher.Fetch(ctx, src)
		if err != nil {
			lastErr = err
			continue
		}
		if len(headlines) > limit {
			headlines = headlines[:limit]
		}
		return fetch.Titles(headlines), nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("all feeds failed: %w", lastErr)
	}
	return nil, fmt.Errorf("no feed sources configured")
}

// readTitleLines reads one title per line; "-" reads stdin.
func readTitleLines(path string, limit int) ([]string, error) {
	var in *os.File
	if path == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open titles file: %w", err)
		}
		defer f.Close()
		in = f
	}

	var titles []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() && len(titles) < limit {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		titles = append(titles, line)
	}
	return titles, scanner.Err()
}

// archiveRun stores a finished run and returns its ID.
func archiveRun(st *store.Store, titles []string, prompt string) (int64, error) {
	panels := studio.Panels(titles)
	rows := make([]store.PanelRow, len(panels))
	for i, p := range panels {
		title := ""
		if i < len(titles) {
			title = studio.NormalizeTitle(titles[i])
		}
		rows[i] = store.PanelRow{
			Position: i,
			Title:    title,
			Headline: p.Headline,
			Subtitle: p.Subtitle,
			Icons:    p.Icons,
		}
	}
	return st.SaveRun(store.Run{
		CreatedAt: time.Now(),
		Prompt:    prompt,
		Panels:    rows,
	})
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
