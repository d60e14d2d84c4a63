package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirs(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "a", "b", "db.json")

	require.NoError(t, EnsureParentDir(target))

	fi, err := os.Stat(filepath.Join(tmp, "a", "b"))
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "data", "db.json")

	require.NoError(t, EnsureParentDir(target))
	require.NoError(t, EnsureParentDir(target))
}

func TestWriteAtomic_WritesAndReplaces(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "db.json")

	require.NoError(t, WriteAtomic(target, []byte(`{"v":1}`)))
	require.NoError(t, WriteAtomic(target, []byte(`{"v":2}`)))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, `{"v":2}`, string(got))

	// no stray temp files left behind
	entries, err := os.ReadDir(tmp)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriteAtomic_MissingDirFails(t *testing.T) {
	err := WriteAtomic(filepath.Join(t.TempDir(), "nope", "db.json"), []byte("x"))
	require.Error(t, err)
}
