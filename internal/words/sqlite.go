// internal/words/sqlite.go
//
// SQLite-backed word source.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying the embedded schema migrations (golang-migrate).
//   - Reading both word groups, seeding the embedded defaults into an empty DB.
//
// Table layout: words(id, word, kind) with kind 'answer' or 'allowed'.

package words

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/woxirdle/assets"
)

// Word kinds stored in the kind column.
const (
	KindAnswer  = "answer"
	KindAllowed = "allowed"
)

//go:embed migrations/*.sql
var migrations embed.FS

// OpenDB opens (and creates if missing) a SQLite database file.
// The parent directory is created for relative paths such as ./data/words.db.
func OpenDB(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	return db, nil
}

// Migrate applies the embedded migrations. Already-applied versions are skipped.
func Migrate(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("migrations source: %w", err)
	}
	drv, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("migrations driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", drv)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Store reads and writes the words table.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Count returns the total number of stored words.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM words`).Scan(&n)
	return n, err
}

// Words returns every word of the given kind in insertion order.
func (s *Store) Words(ctx context.Context, kind string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word FROM words WHERE kind=? ORDER BY id`, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Add inserts words of one kind in a single transaction. Existing rows are ignored.
func (s *Store) Add(ctx context.Context, kind string, words ...string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, w := range words {
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO words(word, kind) VALUES (?, ?)`, w, kind); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert %s: %w", w, err)
		}
	}
	return tx.Commit()
}

// Seed fills an empty store with the embedded default lists.
func (s *Store) Seed(ctx context.Context) error {
	n, err := s.Count(ctx)
	if err != nil {
		return fmt.Errorf("count words: %w", err)
	}
	if n > 0 {
		return nil
	}

	answers, err := assets.Answers()
	if err != nil {
		return err
	}
	allowed, err := assets.Allowed()
	if err != nil {
		return err
	}
	if err := s.Add(ctx, KindAnswer, answers...); err != nil {
		return err
	}
	if err := s.Add(ctx, KindAllowed, allowed...); err != nil {
		return err
	}
	log.Info().Int("answers", len(answers)).Int("allowed", len(allowed)).Msg("seeded word database")
	return nil
}

// Lists returns the answer and allowed groups.
func (s *Store) Lists(ctx context.Context) (answers, allowed []string, err error) {
	if answers, err = s.Words(ctx, KindAnswer); err != nil {
		return nil, nil, fmt.Errorf("query answers: %w", err)
	}
	if allowed, err = s.Words(ctx, KindAllowed); err != nil {
		return nil, nil, fmt.Errorf("query allowed: %w", err)
	}
	return answers, allowed, nil
}

// loadSQLite opens, migrates and seeds the database at path, then reads both lists.
func loadSQLite(ctx context.Context, path string) ([]string, []string, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		return nil, nil, err
	}
	st := NewStore(db)
	if err := st.Seed(ctx); err != nil {
		return nil, nil, err
	}
	return st.Lists(ctx)
}
