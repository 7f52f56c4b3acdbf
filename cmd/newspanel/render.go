package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goelo/newspanel/internal/config"
	"github.com/goelo/newspanel/internal/logging"
	"github.com/goelo/newspanel/internal/render"
	"github.com/goelo/newspanel/internal/store"
	"github.com/goelo/newspanel/internal/studio"
)

func runRender() {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	file := fs.String("file", "", "read titles from file instead of feeds (- for stdin)")
	limit := fs.Int("limit", 0, "max headlines to pull (default from config)")
	out := fs.String("out", "", "image output path (default ~/.newspanel/panel-<date>.png)")
	provider := fs.String("provider", "", "image provider: grok or openai (default from config)")
	dbPath := fs.String("db", "", "database path (default ~/.newspanel/newspanel.db)")
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

	ctx := context.Background()
	titles, err := gatherTitles(ctx, cfg, *file, *limit)
	if err != nil {
		fatalf("gather titles: %v", err)
	}
	prompt := studio.Build(titles)

	p := render.DefaultManager(preferred).Pick()
	if p == nil {
		fatalf("no image provider configured; set GROK_API_KEY or OPENAI_API_KEY")
	}
	logging.Info("rendering image", "provider", p.Name(), "titles", len(titles))

	res, err := p.Generate(ctx, render.Request{Prompt: prompt, Size: cfg.Pipeline.ImageSize})
	if err != nil {
		fatalf("generate image: %v", err)
	}

	outPath := *out
	if outPath == "" {
		dir, err := dataDir()
		if err != nil {
			fatalf("%v", err)
		}
		outPath = filepath.Join(dir, fmt.Sprintf("panel-%s.png", time.Now().Format("2006-01-02")))
	}
	if err := render.Save(ctx, res, outPath); err != nil {
		fatalf("save image: %v", err)
	}

	path := *dbPath
	if path == "" {
		if path, err = defaultDBPath(); err != nil {
			fatalf("%v", err)
		}
	}
	st, err := store.Open(path)
	if err != nil {
		fatalf("open store: %v", err)
	}
	defer st.Close()

	id, err := archiveRun(st, titles, prompt)
	if err != nil {
		fatalf("archive run: %v", err)
	}
	if err := st.SetImage(id, res.Model, outPath); err != nil {
		fatalf("record image: %v", err)
	}

	fmt.Printf("image saved to %s (run %d, %s)\n", outPath, id, res.Model)
}
