package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goelo/newspanel/internal/config"
	"github.com/goelo/newspanel/internal/fetch"
	"github.com/goelo/newspanel/internal/logging"
	"github.com/goelo/newspanel/internal/render"
	"github.com/goelo/newspanel/internal/ui"
)

func runTUI() {
	fs := flag.NewFlagSet("tui", flag.ExitOnError)
	limit := fs.Int("limit", 0, "max headlines to pull (default from config)")
	provider := fs.String("provider", "", "image provider: grok or openai (default from config)")
	fs.Parse(os.Args[1:])

	cfg, err := config.Load()
	if err != nil {
		fatalf("load config: %v", err)
	}
	if *limit <= 0 {
		*limit = cfg.Pipeline.MaxHeadlines
	}
	preferred := *provider
	if preferred == "" {
		preferred = cfg.Render.Preferred
	}

	if err := logging.Init(); err == nil {
		defer logging.Close()
	}

	fetcher := fetch.NewFetcher(30 * time.Second)
	sources := configuredSources(cfg)
	manager := render.DefaultManager(preferred)

	appCfg := ui.AppConfig{
		LoadHeadlines: func() tea.Cmd {
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
				defer cancel()

				var lastErr error
				for _, src := range sources {
					headlines, err := fetcher.Fetch(ctx, src)
					if err != nil {
						lastErr = err
						continue
					}
					if len(headlines) > *limit {
						headlines = headlines[:*limit]
					}
					return ui.HeadlinesLoaded{Headlines: headlines}
				}
				return ui.HeadlinesLoaded{Err: lastErr}
			}
		},
		RenderImage: func(prompt string) tea.Cmd {
			return func() tea.Msg {
				p := manager.Pick()
				if p == nil {
					return ui.RenderDone{Err: fmt.Errorf("no image provider configured")}
				}

				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
				defer cancel()

				res, err := p.Generate(ctx, render.Request{Prompt: prompt, Size: cfg.Pipeline.ImageSize})
				if err != nil {
					return ui.RenderDone{Err: err}
				}

				dir, err := dataDir()
				if err != nil {
					return ui.RenderDone{Err: err}
				}
				out := filepath.Join(dir, fmt.Sprintf("panel-%s.png", time.Now().Format("2006-01-02-150405")))
				if err := render.Save(ctx, res, out); err != nil {
					return ui.RenderDone{Err: err}
				}
				return ui.RenderDone{Path: out}
			}
		},
	}

	if _, err := tea.NewProgram(ui.New(appCfg), tea.WithAltScreen()).Run(); err != nil {
		fatalf("tui: %v", err)
	}
}
