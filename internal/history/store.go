// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records generated projects in a local SQLite database so
// earlier investigations can be listed and located again.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/investigator/pkg/types"
)

const (
	configDir = "investigator"
	dbFile    = "history.db"

	defaultLimit = 20

	// timeLayout is fixed-width so generated_at sorts correctly as TEXT.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Entry is one generated project.
type Entry struct {
	ID          string                  `json:"id" yaml:"id"`
	Project     string                  `json:"project" yaml:"project"`
	Root        string                  `json:"root" yaml:"root"`
	Topic       string                  `json:"topic" yaml:"topic"`
	Type        types.InvestigationType `json:"type" yaml:"type"`
	Agents      int                     `json:"agents" yaml:"agents"`
	Level       types.ValidationLevel   `json:"validationLevel" yaml:"validation_level"`
	GeneratedAt time.Time               `json:"generatedAt" yaml:"generated_at"`

	// Config is the investigation.json body as written.
	Config string `json:"-" yaml:"-"`
}

// NewEntry describes cfg, generated at now, with a fresh run id.
func NewEntry(cfg *types.Config, investigationJSON []byte, now time.Time) Entry {
	return Entry{
		ID:          uuid.NewString(),
		Project:     cfg.Output.ProjectName,
		Root:        cfg.Output.ProjectRoot,
		Topic:       cfg.Investigation.Topic,
		Type:        cfg.Investigation.Type,
		Agents:      len(cfg.Agents.Explorers),
		Level:       cfg.Validation.Level,
		GeneratedAt: now.UTC(),
		Config:      string(investigationJSON),
	}
}

// DefaultPath returns ~/.config/investigator/history.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".config", configDir, dbFile), nil
}

// Store is the history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path, creating its directory and
// schema when missing.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			project TEXT NOT NULL,
			root TEXT NOT NULL,
			topic TEXT,
			type TEXT,
			agents INTEGER,
			validation_level TEXT,
			generated_at TEXT NOT NULL,
			config TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_generated_at ON runs(generated_at)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_project ON runs(project)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores e. An empty ID is replaced with a new one; the stored entry
// is returned.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.GeneratedAt.IsZero() {
		e.GeneratedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, project, root, topic, type, agents, validation_level, generated_at, config)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Project, e.Root, e.Topic, string(e.Type), e.Agents, string(e.Level),
		e.GeneratedAt.UTC().Format(timeLayout), e.Config,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("recording run %s: %w", e.ID, err)
	}
	return e, nil
}

// ErrNotFound is returned by Get for an unknown run id.
var ErrNotFound = errors.New("run not found")

// Get returns the entry with id, including its stored configuration.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, project, root, topic, type, agents, validation_level, generated_at, config
		FROM runs WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return e, err
}

// List returns up to limit entries, newest first. A limit of zero or less
// uses the default of 20.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project, root, topic, type, agents, validation_level, generated_at, config
		FROM runs ORDER BY generated_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return entries, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(r scanner) (Entry, error) {
	var (
		e                          Entry
		topic, typ, level, cfgJSON sql.NullString
		agents                     sql.NullInt64
		generatedAt                string
	)
	if err := r.Scan(&e.ID, &e.Project, &e.Root, &topic, &typ, &agents, &level, &generatedAt, &cfgJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("scanning run: %w", err)
	}
	t, err := time.Parse(timeLayout, generatedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing generated_at for %s: %w", e.ID, err)
	}
	e.Topic = topic.String
	e.Type = types.InvestigationType(typ.String)
	e.Agents = int(agents.Int64)
	e.Level = types.ValidationLevel(level.String)
	e.GeneratedAt = t
	e.Config = cfgJSON.String
	return e, nil
}
