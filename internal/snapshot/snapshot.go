package snapshot

import (
	"database/sql"
	_ "embed"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/lexstat/internal/mask"
)

//go:embed schema.sql
var schemaSQL string

// Snapshot is a frequency table together with the ordinal mapping it
// was built against.
type Snapshot struct {
	// ID is a time-sortable UUIDv7 assigned when the snapshot is
	// created.
	ID string

	// Created is the snapshot creation time (UTC).
	Created time.Time

	// Names holds the source names in ordinal order.
	Names []string

	// Table is the frequency table.
	Table mask.Table
}

// New stamps a frequency table with a fresh UUIDv7 snapshot id.
func New(names []string, table mask.Table) *Snapshot {
	return &Snapshot{
		ID:      uuid.Must(uuid.NewV7()).String(),
		Created: time.Now().UTC(),
		Names:   names,
		Table:   table,
	}
}

// Write serializes the snapshot to a SQLite file at path, creating it
// if needed. The write is a single transaction: a failed export leaves
// no partial snapshot behind for an existing file, and masks/sources
// from a previous export at the same path are replaced wholesale.
func Write(path string, s *Snapshot) error {
	db, err := open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("snapshot: begin: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	for _, stmt := range []string{"DELETE FROM meta", "DELETE FROM sources", "DELETE FROM masks"} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("snapshot: clear: %w", err)
		}
	}

	meta := map[string]string{
		"snapshot_id": s.ID,
		"created_at":  s.Created.Format(time.RFC3339Nano),
		"sources":     strconv.Itoa(len(s.Names)),
		"words":       strconv.Itoa(s.Table.WordCount()),
	}
	for k, v := range meta {
		if _, err := tx.Exec("INSERT INTO meta (key, value) VALUES (?, ?)", k, v); err != nil {
			return fmt.Errorf("snapshot: meta %s: %w", k, err)
		}
	}

	for ordinal, name := range s.Names {
		if _, err := tx.Exec("INSERT INTO sources (ordinal, name) VALUES (?, ?)", ordinal, name); err != nil {
			return fmt.Errorf("snapshot: source %s: %w", name, err)
		}
	}

	for m, count := range s.Table {
		if _, err := tx.Exec("INSERT INTO masks (mask, words) VALUES (?, ?)", m.Bytes(), count); err != nil {
			return fmt.Errorf("snapshot: mask %s: %w", m, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("snapshot: commit: %w", err)
	}
	return nil
}

// Read loads a snapshot written by Write, rebuilding the exact table
// and ordinal mapping.
func Read(path string) (*Snapshot, error) {
	db, err := open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	s := &Snapshot{Table: make(mask.Table)}

	rows, err := db.Query("SELECT key, value FROM meta")
	if err != nil {
		return nil, fmt.Errorf("snapshot: meta: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("snapshot: meta: %w", err)
		}
		switch k {
		case "snapshot_id":
			s.ID = v
		case "created_at":
			t, err := time.Parse(time.RFC3339Nano, v)
			if err != nil {
				return nil, fmt.Errorf("snapshot: created_at: %w", err)
			}
			s.Created = t
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("snapshot: meta: %w", err)
	}

	srcRows, err := db.Query("SELECT ordinal, name FROM sources ORDER BY ordinal")
	if err != nil {
		return nil, fmt.Errorf("snapshot: sources: %w", err)
	}
	defer srcRows.Close()
	for srcRows.Next() {
		var ordinal int
		var name string
		if err := srcRows.Scan(&ordinal, &name); err != nil {
			return nil, fmt.Errorf("snapshot: sources: %w", err)
		}
		if ordinal != len(s.Names) {
			return nil, fmt.Errorf("snapshot: non-contiguous ordinal %d for source %s", ordinal, name)
		}
		s.Names = append(s.Names, name)
	}
	if err := srcRows.Err(); err != nil {
		return nil, fmt.Errorf("snapshot: sources: %w", err)
	}
	if len(s.Names) == 0 {
		return nil, fmt.Errorf("snapshot: %s records no sources", path)
	}

	maskRows, err := db.Query("SELECT mask, words FROM masks")
	if err != nil {
		return nil, fmt.Errorf("snapshot: masks: %w", err)
	}
	defer maskRows.Close()
	for maskRows.Next() {
		var blob []byte
		var words int
		if err := maskRows.Scan(&blob, &words); err != nil {
			return nil, fmt.Errorf("snapshot: masks: %w", err)
		}
		m := mask.FromBytes(blob)
		if m == "" {
			return nil, fmt.Errorf("snapshot: zero mask in %s", path)
		}
		s.Table[m] = words
	}
	if err := maskRows.Err(); err != nil {
		return nil, fmt.Errorf("snapshot: masks: %w", err)
	}

	return s, nil
}

// open opens the SQLite file and applies pragmas and the schema.
func open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("snapshot: open %s: %w", path, err)
	}

	// Single writer avoids SQLITE_BUSY on export.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("snapshot: %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("snapshot: apply schema: %w", err)
	}
	return db, nil
}
