package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/goelo/newspanel/internal/config"
	"github.com/goelo/newspanel/internal/logging"
	"github.com/goelo/newspanel/internal/store"
	"github.com/goelo/newspanel/internal/studio"
)

func runBuild() {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	file := fs.String("file", "", "read titles from file instead of feeds (- for stdin)")
	limit := fs.Int("limit", 0, "max headlines to pull (default from config)")
	save := fs.Bool("save", false, "archive the run in the local database")
	dbPath := fs.String("db", "", "database path (default ~/.newspanel/newspanel.db)")
	fs.Parse(os.Args[1:])

	cfg, err := config.Load()
	if err != nil {
		fatalf("load config: %v", err)
	}
	if *limit <= 0 {
		*limit = cfg.Pipeline.MaxHeadlines
	}

	if err := logging.Init(); err == nil {
		defer logging.Close()
	}

	titles, err := gatherTitles(context.Background(), cfg, *file, *limit)
	if err != nil {
		fatalf("gather titles: %v", err)
	}
	logging.Info("building prompt", "titles", len(titles))

	prompt := studio.Build(titles)
	fmt.Print(prompt)

	if *save {
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
		fmt.Printf("\narchived as run %d\n", id)
	}
}
