package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("queries/users.sql", "SELECT 1;")

	content, err := mfs.ReadFile("queries/users.sql")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;", string(content))

	content, err = mfs.ReadFile("/project/queries/users.sql")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;", string(content))

	_, err = mfs.ReadFile("queries/missing.sql")
	assert.Error(t, err)
}

func TestMemoryFileSystem_WalkIsSortedAndComplete(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("b.sql", "B")
	mfs.AddFile("a.sql", "A")
	mfs.AddFile("nested/c.sql", "C")

	dir, err := mfs.Open(".")
	require.NoError(t, err)

	var paths []string
	err = dir.Walk(func(f File, err error) error {
		require.NoError(t, err)
		if !f.Info().IsDir() {
			paths = append(paths, f.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.sql", "b.sql", "nested/c.sql"}, paths)
}

func TestMemoryFileSystem_OpenErrors(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("file.sql", "x")

	_, err := mfs.Open("nope")
	assert.Error(t, err)

	_, err = mfs.Open("file.sql")
	assert.Error(t, err, "opening a file as a directory must fail")
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/project")
	mfs.AddFile("queries/users.sql", "SELECT 1;")

	info, err := mfs.Stat("queries/users.sql")
	require.NoError(t, err)
	assert.Equal(t, "users.sql", info.Name())
	assert.Equal(t, int64(9), info.Size())
	assert.False(t, info.IsDir())

	info, err = mfs.Stat("queries")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
