package library

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "library.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRecord() Record {
	seed := int64(42)
	return Record{
		InitialSequence: "ATGC",
		Sequence:        "ATGCATGCAT",
		Length:          10,
		GCContent:       0.5,
		Mode:            "deterministic",
		Seed:            &seed,
		Profile:         "pcr_friendly",
		TotalAttempts:   120,
		BacktrackCount:  8,
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id, err := s.Save(ctx, testRecord())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "ATGCATGCAT", got.Sequence)
	assert.Equal(t, "ATGC", got.InitialSequence)
	assert.Equal(t, 10, got.Length)
	assert.Equal(t, 0.5, got.GCContent)
	assert.Equal(t, "deterministic", got.Mode)
	require.NotNil(t, got.Seed)
	assert.Equal(t, int64(42), *got.Seed)
	assert.Equal(t, "pcr_friendly", got.Profile)
	assert.Equal(t, 120, got.TotalAttempts)
	assert.Equal(t, 8, got.BacktrackCount)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestStore_SaveNilSeed(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	rec := testRecord()
	rec.Seed = nil
	rec.Profile = ""
	id, err := s.Save(ctx, rec)
	require.NoError(t, err)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Seed)
	assert.Empty(t, got.Profile)
}

func TestStore_GetNotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Get(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_List(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		rec := testRecord()
		rec.Length = 10 + i
		id, err := s.Save(ctx, rec)
		require.NoError(t, err)
		ids = append(ids, id)
		time.Sleep(2 * time.Millisecond) // distinct created_at ordering
	}

	records, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	// Newest first.
	assert.Equal(t, ids[2], records[0].ID)
	assert.Equal(t, ids[0], records[2].ID)

	limited, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestStore_Count(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = s.Save(ctx, testRecord())
	require.NoError(t, err)

	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestOpen_SchemaIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Save(context.Background(), testRecord())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopening an existing database must not clobber it.
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
