// internal/stats/stats.go
//
// SQLite-backed store for finished play results.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Bootstrapping the schema (idempotent).
//   - Recording one row per finished game and aggregating them into
//     a summary (totals, guess distribution, current streak).
//
// The solver never touches this store; only play results are
// persisted, and a stats failure must never interrupt a game.

package stats

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS plays (
    id         TEXT PRIMARY KEY,
    word       TEXT NOT NULL,
    won        INTEGER NOT NULL,
    guesses    INTEGER NOT NULL,
    hard       INTEGER NOT NULL,
    daily      INTEGER NOT NULL,
    played_at  TIMESTAMP NOT NULL
);`

// Play is one finished game.
type Play struct {
	ID       string
	Word     string
	Won      bool
	Guesses  int
	Hard     bool
	Daily    bool
	PlayedAt time.Time
}

// Summary aggregates the recorded plays.
type Summary struct {
	Games        int
	Wins         int
	Streak       int         // consecutive wins ending at the latest play
	Distribution map[int]int // guesses taken → win count
}

// Store wraps the plays database.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if missing) the stats database and applies
// the schema.
//
//   - Ensures the parent directory exists for relative paths
//     (e.g. ./data/wordler.db).
//   - Configures busy timeout and WAL journaling mode.
func Open(dsn string) (*Store, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// RecordPlay inserts one finished game. A zero ID or PlayedAt is
// filled in.
func (s *Store) RecordPlay(ctx context.Context, p Play) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.PlayedAt.IsZero() {
		p.PlayedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO plays (id, word, won, guesses, hard, daily, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Word, boolInt(p.Won), p.Guesses, boolInt(p.Hard), boolInt(p.Daily), p.PlayedAt.UTC())
	if err != nil {
		return fmt.Errorf("record play: %w", err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Summary aggregates all recorded plays.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	out := Summary{Distribution: make(map[int]int)}

	rows, err := s.db.QueryContext(ctx,
		`SELECT won, guesses FROM plays ORDER BY played_at ASC`)
	if err != nil {
		return Summary{}, fmt.Errorf("summary: %w", err)
	}
	defer rows.Close()

	streak := 0
	for rows.Next() {
		var won, guesses int
		if err := rows.Scan(&won, &guesses); err != nil {
			return Summary{}, fmt.Errorf("summary scan: %w", err)
		}
		out.Games++
		if won == 1 {
			out.Wins++
			out.Distribution[guesses]++
			streak++
		} else {
			streak = 0
		}
	}
	if err := rows.Err(); err != nil {
		return Summary{}, fmt.Errorf("summary rows: %w", err)
	}
	out.Streak = streak
	return out, nil
}
