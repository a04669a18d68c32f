package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Record is one saved generation result.
type Record struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	InitialSequence string    `json:"initial_sequence"`
	Sequence        string    `json:"sequence"`
	Length          int       `json:"length"`
	GCContent       float64   `json:"gc_content"`
	Mode            string    `json:"mode"`
	Seed            *int64    `json:"seed,omitempty"`
	Profile         string    `json:"profile,omitempty"`
	TotalAttempts   int       `json:"total_attempts"`
	BacktrackCount  int       `json:"backtrack_count"`
}

// ErrNotFound is returned by Get when no record has the requested id.
var ErrNotFound = errors.New("sequence record not found")

// Save inserts a record and returns its generated id. CreatedAt is stamped
// here; any value on the input record is ignored.
func (s *Store) Save(ctx context.Context, rec Record) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()
	createdAt := time.Now().UTC().Format(time.RFC3339Nano)

	var seed sql.NullInt64
	if rec.Seed != nil {
		seed = sql.NullInt64{Int64: *rec.Seed, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sequences
		(id, created_at, initial_sequence, sequence, length, gc_content, mode, seed, profile, total_attempts, backtrack_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		id,
		createdAt,
		rec.InitialSequence,
		rec.Sequence,
		rec.Length,
		rec.GCContent,
		rec.Mode,
		seed,
		rec.Profile,
		rec.TotalAttempts,
		rec.BacktrackCount,
	)
	if err != nil {
		return "", fmt.Errorf("save sequence: %w", err)
	}
	return id, nil
}

// List returns up to limit records, newest first. limit <= 0 means no
// limit.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := `
		SELECT id, created_at, initial_sequence, sequence, length, gc_content, mode, seed, profile, total_attempts, backtrack_count
		FROM sequences
		ORDER BY created_at DESC, id DESC
	`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, query+" LIMIT ?", limit)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list sequences: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sequences: %w", err)
	}
	return records, nil
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, initial_sequence, sequence, length, gc_content, mode, seed, profile, total_attempts, backtrack_count
		FROM sequences
		WHERE id = ?
	`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var createdAt string
	var seed sql.NullInt64
	err := row.Scan(
		&rec.ID,
		&createdAt,
		&rec.InitialSequence,
		&rec.Sequence,
		&rec.Length,
		&rec.GCContent,
		&rec.Mode,
		&seed,
		&rec.Profile,
		&rec.TotalAttempts,
		&rec.BacktrackCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("scan sequence record: %w", err)
	}
	if ts, perr := time.Parse(time.RFC3339Nano, createdAt); perr == nil {
		rec.CreatedAt = ts
	}
	if seed.Valid {
		rec.Seed = &seed.Int64
	}
	return rec, nil
}
