package users

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/GURUTIKI/presently/internal/common"
	"github.com/GURUTIKI/presently/internal/server/models"
	"github.com/GURUTIKI/presently/internal/server/repositories/filestore"
	"github.com/stretchr/testify/require"
)

func newFileRepo(t *testing.T) *FileRepository {
	t.Helper()
	store := filestore.New(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, store.Init())
	return NewFileRepository(store)
}

func TestFileCreate_AndGet(t *testing.T) {
	repo := newFileRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{ID: "u1", Username: "alice", PasswordHash: "pw1"})
	require.NoError(t, err)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "u1", got.ID)
	require.Equal(t, "pw1", got.PasswordHash)
}

func TestFileCreate_DuplicateKeepsFirstRecord(t *testing.T) {
	repo := newFileRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{ID: "u1", Username: "alice", PasswordHash: "pw1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{ID: "u2", Username: "alice", PasswordHash: "pw2"})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "u1", got.ID, "first record must stay untouched")
	require.Equal(t, "pw1", got.PasswordHash)
}

func TestFileGet_CaseSensitive(t *testing.T) {
	repo := newFileRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{ID: "u1", Username: "Alice"})
	require.NoError(t, err)

	_, err = repo.GetByUsername(ctx, "alice")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
