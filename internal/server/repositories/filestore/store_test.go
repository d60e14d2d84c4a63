package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/GURUTIKI/presently/internal/server/models"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), "data", "db.json"))
	require.NoError(t, s.Init())
	return s
}

func TestInit_CreatesEmptyDocument(t *testing.T) {
	s := newStore(t)

	err := s.View(func(doc *Document) error {
		require.Empty(t, doc.Users)
		require.Empty(t, doc.Lists)
		require.Empty(t, doc.Items)
		return nil
	})
	require.NoError(t, err)
}

func TestInit_KeepsExistingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users":[{"id":"u1","username":"alice"}],"lists":[],"items":[]}`), 0o660))

	s := New(path)
	require.NoError(t, s.Init())

	err := s.View(func(doc *Document) error {
		require.Len(t, doc.Users, 1)
		require.Equal(t, "alice", doc.Users[0].Username)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdate_PersistsChanges(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Update(func(doc *Document) error {
		doc.Users = append(doc.Users, &models.User{ID: "u1", Username: "alice"})
		return nil
	}))

	// fresh load sees the change
	err := s.View(func(doc *Document) error {
		require.Len(t, doc.Users, 1)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdate_FnErrorAbortsRewrite(t *testing.T) {
	s := newStore(t)

	boom := errors.New("boom")
	err := s.Update(func(doc *Document) error {
		doc.Users = append(doc.Users, &models.User{ID: "u1"})
		return boom
	})
	require.ErrorIs(t, err, boom)

	err = s.View(func(doc *Document) error {
		require.Empty(t, doc.Users)
		return nil
	})
	require.NoError(t, err)
}
