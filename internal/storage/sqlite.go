// Package storage provides SQLite-backed persistence for the snake device:
// the integer slots that stand in for the EEPROM cells, and a history of
// finished rounds. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pixel-snake/internal/device"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RoundEntry is one finished round.
type RoundEntry struct {
	ID        int64
	Score     int
	Length    int
	CreatedAt time.Time
}

// Stats aggregates the round history.
type Stats struct {
	Rounds     int
	BestScore  int
	AvgScore   float64
	BestLength int
	LastPlayed time.Time
}

var (
	_ device.Store    = (*Store)(nil)
	_ device.Recorder = (*Store)(nil)
)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS slots (
			slot INTEGER PRIMARY KEY,
			value INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// ReadInt returns the value stored in slot. A slot never written reads as
// zero, the way an erased cell does.
func (s *Store) ReadInt(slot int) (int, error) {
	var v int
	err := s.db.QueryRow("SELECT value FROM slots WHERE slot = ?", slot).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read slot %d: %w", slot, err)
	}
	return v, nil
}

// WriteInt stores value in slot, replacing what was there.
func (s *Store) WriteInt(slot int, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO slots (slot, value) VALUES (?, ?)
		 ON CONFLICT(slot) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		slot, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write slot %d: %w", slot, err)
	}
	return nil
}

// RecordRound appends a finished round to the history.
func (s *Store) RecordRound(score, length int) error {
	_, err := s.db.Exec(
		"INSERT INTO rounds (score, length) VALUES (?, ?)",
		score, length,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record round: %w", err)
	}
	return nil
}

// TopRounds returns the best rounds, highest score first.
func (s *Store) TopRounds(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, length, created_at
		 FROM rounds
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.Length, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats returns aggregates over the whole round history.
func (s *Store) Stats() (*Stats, error) {
	st := &Stats{}
	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(length), 0), MAX(created_at)
		 FROM rounds`,
	).Scan(&st.Rounds, &st.BestScore, &st.AvgScore, &st.BestLength, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.LastPlayed = parseTime(last)
	return st, nil
}

// Reset erases every slot and the round history.
func (s *Store) Reset() error {
	if _, err := s.db.Exec("DELETE FROM slots; DELETE FROM rounds;"); err != nil {
		return fmt.Errorf("storage: cannot reset: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
