package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// migrationsFS exposes the repository's migrations directory the same way
// the embedded filesystem does in the binary.
var migrationsFS = os.DirFS(filepath.Join("..", ".."))

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "tally.db"), migrationsFS, log.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteSaveLoad(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)
	want := sampleTransactions()

	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loaded transactions differ (-want +got):\n%s", diff)
	}
}

func TestSQLiteLoadEmpty(t *testing.T) {
	got, err := newSQLiteStore(t).Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSQLiteSaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	require.NoError(t, s.Save(ctx, sampleTransactions()))
	require.NoError(t, s.Save(ctx, sampleTransactions()[1:2]))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tally.db")

	s, err := NewSQLiteStore(path, migrationsFS, log.Discard())
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, sampleTransactions()))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path, migrationsFS, log.Discard())
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	repo, err := Open(config.StorageConfig{Driver: config.DriverJSON, Path: filepath.Join(dir, "t.json")}, migrationsFS, log.Discard())
	require.NoError(t, err)
	assert.IsType(t, &JSONStore{}, repo)
	require.NoError(t, repo.Close())

	repo, err = Open(config.StorageConfig{Driver: config.DriverSQLite, Path: filepath.Join(dir, "t.db")}, migrationsFS, log.Discard())
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, repo)
	require.NoError(t, repo.Close())

	_, err = Open(config.StorageConfig{Driver: "csv", Path: "x"}, migrationsFS, log.Discard())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
