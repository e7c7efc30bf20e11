package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirectories(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "state", "nested", "xpboard.db")

	require.NoError(t, EnsureParentDir(path))

	fi, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir", "file.db")

	require.NoError(t, EnsureParentDir(path))
	require.NoError(t, EnsureParentDir(path))
}

func TestEnsureParentDir_BareFileName(t *testing.T) {
	require.NoError(t, EnsureParentDir("xpboard.db"))
}

func TestEnsureParentDir_ParentIsAFile(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := EnsureParentDir(filepath.Join(blocker, "sub", "file.db"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "mkdir")
}
