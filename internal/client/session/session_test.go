package session

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/xpboard/internal/client/client"
	"github.com/dmitrijs2005/xpboard/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/xpboard/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRepo struct {
	metadata.Repository
}

func (failingRepo) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func openStore(t *testing.T, path string) (*KVStore, *sql.DB) {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewKVStore(metadata.NewSQLiteRepository(db), logging.Discard()), db
}

func TestStore_Lifecycle(t *testing.T) {
	stores := map[string]Store{
		"memory": NewMemoryStore(logging.Discard()),
	}
	sqliteStore, _ := openStore(t, filepath.Join(t.TempDir(), "s.db"))
	stores["sqlite"] = sqliteStore

	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok := s.Retrieve(ctx)
			assert.False(t, ok)

			require.NoError(t, s.Persist(ctx, "  a.b.c\n"))
			tok, ok := s.Retrieve(ctx)
			require.True(t, ok)
			assert.Equal(t, "a.b.c", tok)

			require.NoError(t, s.Persist(ctx, "d.e.f"))
			tok, _ = s.Retrieve(ctx)
			assert.Equal(t, "d.e.f", tok)

			require.NoError(t, s.Clear(ctx))
			require.NoError(t, s.Clear(ctx))
			_, ok = s.Retrieve(ctx)
			assert.False(t, ok)
		})
	}
}

func TestStore_PersistEmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(logging.Discard())
	require.NoError(t, s.Persist(ctx, "x.y.z"))

	require.NoError(t, s.Persist(ctx, ""))
	require.NoError(t, s.Persist(ctx, "   "))

	tok, ok := s.Retrieve(ctx)
	require.True(t, ok)
	assert.Equal(t, "x.y.z", tok)
}

func TestStore_RetrieveSwallowsErrors(t *testing.T) {
	s := NewKVStore(failingRepo{}, logging.Discard())
	tok, ok := s.Retrieve(context.Background())
	assert.False(t, ok)
	assert.Empty(t, tok)
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "xpboard.db")

	s1, db1 := openStore(t, path)
	require.NoError(t, s1.Persist(ctx, "a.b.c"))
	require.NoError(t, db1.Close())

	s2, _ := openStore(t, path)
	tok, ok := s2.Retrieve(ctx)
	require.True(t, ok)
	assert.Equal(t, "a.b.c", tok)
}
