package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/goelo/newspanel/internal/store"
)

func runRuns() {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	limit := fs.Int("limit", 10, "how many runs to list")
	dbPath := fs.String("db", "", "database path (default ~/.newspanel/newspanel.db)")
	fs.Parse(os.Args[1:])

	path := *dbPath
	if path == "" {
		var err error
		if path, err = defaultDBPath(); err != nil {
			fatalf("%v", err)
		}
	}

	st, err := store.Open(path)
	if err != nil {
		fatalf("open store: %v", err)
	}
	defer st.Close()

	runs, err := st.GetRuns(*limit)
	if err != nil {
		fatalf("list runs: %v", err)
	}
	if len(runs) == 0 {
		fmt.Println("no archived runs")
		return
	}

	for _, r := range runs {
		image := "-"
		if r.ImagePath != "" {
			image = r.ImagePath
		}
		fmt.Printf("%4d  %s  %-20s  %s\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Model, image)
	}
}
