package items

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/GURUTIKI/presently/internal/common"
	"github.com/GURUTIKI/presently/internal/server/models"
	"github.com/GURUTIKI/presently/internal/server/repositories/filestore"
	"github.com/stretchr/testify/require"
)

func newFileRepo(t *testing.T) (*FileRepository, *filestore.Store) {
	t.Helper()
	store := filestore.New(filepath.Join(t.TempDir(), "db.json"))
	require.NoError(t, store.Init())
	require.NoError(t, store.Update(func(doc *filestore.Document) error {
		doc.Lists = append(doc.Lists, &models.GiftList{ID: "l1", OwnerID: "u1", Title: "Birthday"})
		return nil
	}))
	return NewFileRepository(store), store
}

func TestFileCreate_OwnedList(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	item := &models.GiftItem{ID: "i1", ListID: "l1", Name: "Socks", CreatedAt: 1000}
	_, err := repo.Create(ctx, item, "u1")
	require.NoError(t, err)

	got, err := repo.ListByList(ctx, "l1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Socks", got[0].Name)
	require.False(t, got[0].IsBought)
}

func TestFileCreate_ForeignListWritesNothing(t *testing.T) {
	repo, store := newFileRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.GiftItem{ID: "i1", ListID: "l1", Name: "Socks"}, "intruder")
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, store.View(func(doc *filestore.Document) error {
		require.Empty(t, doc.Items)
		return nil
	}))
}

func TestFileUpdateStatus_Toggle(t *testing.T) {
	repo, _ := newFileRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.GiftItem{ID: "i1", ListID: "l1", Name: "Socks"}, "u1")
	require.NoError(t, err)

	got, err := repo.UpdateStatus(ctx, "i1", true, "bob")
	require.NoError(t, err)
	require.True(t, got.IsBought)
	require.Equal(t, "bob", got.BoughtBy)

	// toggling back round-trips to the original state
	got, err = repo.UpdateStatus(ctx, "i1", false, "")
	require.NoError(t, err)
	require.False(t, got.IsBought)
	require.Empty(t, got.BoughtBy)
}

func TestFileUpdateStatus_MissingID(t *testing.T) {
	repo, _ := newFileRepo(t)

	_, err := repo.UpdateStatus(context.Background(), "missing", true, "bob")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFileDelete(t *testing.T) {
	repo, store := newFileRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.GiftItem{ID: "i1", ListID: "l1", Name: "Socks"}, "u1")
	require.NoError(t, err)

	ok, err := repo.Delete(ctx, "i1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.Delete(ctx, "i1")
	require.NoError(t, err)
	require.False(t, ok, "second delete must report nothing removed")

	require.NoError(t, store.View(func(doc *filestore.Document) error {
		require.Empty(t, doc.Items)
		return nil
	}))
}
