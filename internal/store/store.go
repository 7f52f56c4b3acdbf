// Package store provides SQLite persistence for newspanel runs.
//
// The prompt pipeline itself is stateless; the store only archives finished
// runs (prompt text, panels, generated image) so earlier days stay
// inspectable.
package store

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Store handles SQLite persistence. Concrete type, not an interface.
// All methods are safe for concurrent use via the internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Run is one archived pipeline invocation.
type Run struct {
	ID        int64
	CreatedAt time.Time
	Prompt    string
	Model     string // image model used, empty when no image was rendered
	ImagePath string
	Panels    []PanelRow
}

// PanelRow is one panel of an archived run.
type PanelRow struct {
	Position int
	Title    string
	Headline string
	Subtitle string
	Icons    []string
}

// Open creates a Store at the given database path, creating tables as
// needed. WAL mode is enabled for file-based databases.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at DATETIME NOT NULL,
		prompt TEXT NOT NULL,
		model TEXT,
		image_path TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

	CREATE TABLE IF NOT EXISTS panels (
		run_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		headline TEXT NOT NULL,
		subtitle TEXT NOT NULL,
		icons TEXT NOT NULL,
		PRIMARY KEY (run_id, position),
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveRun archives a run and its panels, returning the new run ID.
func (s *Store) SaveRun(run Run) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	created := run.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	res, err := tx.Exec(
		`INSERT INTO runs (created_at, prompt, model, image_path) VALUES (?, ?, ?, ?)`,
		created, run.Prompt, run.Model, run.ImagePath,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, p := range run.Panels {
		_, err := tx.Exec(
			`INSERT INTO panels (run_id, position, title, headline, subtitle, icons) VALUES (?, ?, ?, ?, ?, ?)`,
			id, p.Position, p.Title, p.Headline, p.Subtitle, strings.Join(p.Icons, ","),
		)
		if err != nil {
			return 0, fmt.Errorf("insert panel %d: %w", p.Position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// SetImage records the rendered image for an archived run.
func (s *Store) SetImage(runID int64, model, imagePath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`UPDATE runs SET model = ?, image_path = ? WHERE id = ?`, model, imagePath, runID)
	return err
}

// GetRuns returns the most recent runs, newest first, without panel rows.
func (s *Store) GetRuns(limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT id, created_at, prompt, model, image_path FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var model, imagePath sql.NullString
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Prompt, &model, &imagePath); err != nil {
			return nil, err
		}
		r.Model = model.String
		r.ImagePath = imagePath.String
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun returns one run with its panel rows, or an error when the ID is
// unknown.
func (s *Store) GetRun(id int64) (Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var r Run
	var model, imagePath sql.NullString
	err := s.db.QueryRow(
		`SELECT id, created_at, prompt, model, image_path FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.CreatedAt, &r.Prompt, &model, &imagePath)
	if err != nil {
		return Run{}, fmt.Errorf("run %d: %w", id, err)
	}
	r.Model = model.String
	r.ImagePath = imagePath.String

	rows, err := s.db.Query(
		`SELECT position, title, headline, subtitle, icons FROM panels WHERE run_id = ? ORDER BY position`, id,
	)
	if err != nil {
		return Run{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var p PanelRow
		var icons string
		if err := rows.Scan(&p.Position, &p.Title, &p.Headline, &p.Subtitle, &icons); err != nil {
			return Run{}, err
		}
		if icons != "" {
			p.Icons = strings.Split(icons, ",")
		}
		r.Panels = append(r.Panels, p)
	}
	return r, rows.Err()
}
