package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// DefaultSlot is the save slot used when none is configured.
const DefaultSlot = "default"

// SQLiteBackend keeps every save of a slot as a row and reads back the most
// recent one.
type SQLiteBackend struct {
	db   *sql.DB
	slot string
}

// NewSQLiteBackend opens the database at path and creates the saves table.
func NewSQLiteBackend(path, slot string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if slot == "" {
		slot = DefaultSlot
	}
	b := &SQLiteBackend{db: db, slot: slot}
	if err := b.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return b, nil
}

// Migrate creates the saves table and its index.
func (b *SQLiteBackend) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS saves (
			id TEXT PRIMARY KEY,
			slot TEXT NOT NULL,
			record TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_saves_slot ON saves(slot)`,
	}
	for _, m := range migrations {
		if _, err := b.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

func (b *SQLiteBackend) Read() ([]byte, error) {
	var record string
	err := b.db.QueryRow(
		`SELECT record FROM saves WHERE slot = ? ORDER BY rowid DESC LIMIT 1`,
		b.slot,
	).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w in slot %q", ErrRecordNotFound, b.slot)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %q: %w", b.slot, err)
	}
	return []byte(record), nil
}

func (b *SQLiteBackend) Write(data []byte) error {
	_, err := b.db.Exec(
		`INSERT INTO saves (id, slot, record) VALUES (?, ?, ?)`,
		uuid.NewString(), b.slot, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to insert save: %w", err)
	}
	return nil
}

// Saves returns how many records the slot holds.
func (b *SQLiteBackend) Saves() (int, error) {
	var n int
	if err := b.db.QueryRow(`SELECT COUNT(*) FROM saves WHERE slot = ?`, b.slot).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count saves: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
