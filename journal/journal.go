// Package journal provides SQLite-backed persistence for counterexamples
// reported by verification runs, so a reported failure can be replayed
// later.
//
// The engine core never touches the journal; only the host (the CLI) writes
// to it after a run completes.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no entry exists with the requested id.
var ErrNotFound = errors.New("journal: no such entry")

// Journal records counterexamples in a SQLite database.
type Journal struct {
	db *sql.DB
}

// An Entry is one recorded counterexample.
//
// Actions and State are host-serialized (typically JSON); the journal stores
// them opaquely and never interprets them.
type Entry struct {
	ID             int64
	Domain         string
	Property       string
	Seed           int64
	MaxActions     int
	Trial          int
	ViolationIndex int
	Actions        string
	State          string
	CreatedAt      time.Time
}

// Open opens (creating if necessary) the journal database at the given path
// and ensures the schema is up to date.
func Open(path string) (*Journal, error) {
	if path == "" {
		return nil, fmt.Errorf("journal: path is empty")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("journal: open: %w", err)
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Journal{db: db}, nil
}

// Close closes the underlying database handle.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends a counterexample and returns its id.
func (j *Journal) Record(e Entry) (int64, error) {
	if e.Domain == "" {
		return -1, fmt.Errorf("journal: record: domain is empty")
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := j.db.Exec(
		`INSERT INTO counterexamples (domain, property, seed, max_actions, trial, violation_index, actions, state, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Domain, e.Property, e.Seed, e.MaxActions, e.Trial, e.ViolationIndex, e.Actions, e.State, now,
	)
	if err != nil {
		return -1, fmt.Errorf("journal: record: insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return -1, fmt.Errorf("journal: record: last insert id: %w", err)
	}
	return id, nil
}

// Get returns the entry with the given id.
func (j *Journal) Get(id int64) (Entry, error) {
	row := j.db.QueryRow(
		`SELECT id, domain, property, seed, max_actions, trial, violation_index, actions, state, created_at
		 FROM counterexamples WHERE id = ?`, id)
	e, err := scanEntry(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("journal: get %v: %w", id, err)
	}
	return e, nil
}

// List returns all entries, oldest first.
func (j *Journal) List() ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT id, domain, property, seed, max_actions, trial, violation_index, actions, state, created_at
		 FROM counterexamples ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("journal: list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("journal: list: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: list: %w", err)
	}
	return entries, nil
}

func scanEntry(scan func(...any) error) (Entry, error) {
	var e Entry
	var createdAt string
	err := scan(&e.ID, &e.Domain, &e.Property, &e.Seed, &e.MaxActions, &e.Trial, &e.ViolationIndex, &e.Actions, &e.State, &createdAt)
	if err != nil {
		return Entry{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Entry{}, fmt.Errorf("parse created_at: %w", err)
	}
	e.CreatedAt = ts
	return e, nil
}
