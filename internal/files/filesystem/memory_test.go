package filesystem

import (
	"errors"
	"io/fs"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	expectedContent := "SELECT 1;"
	mfs.AddFile("root.sql", expectedContent)

	content, err := mfs.ReadFile("/test/project/root.sql")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))

	content, err = mfs.ReadFile("root.sql")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))

	_, err = mfs.ReadFile("missing.sql")
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_ReadDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("glam/b.sql", "SELECT 2;")
	mfs.AddFile("glam/a.sql", "SELECT 1;")
	mfs.AddFile("glam/nested/c.sql", "SELECT 3;")
	mfs.AddFile("other/d.sql", "SELECT 4;")

	entries, err := mfs.ReadDir(".")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "glam", entries[0].Name())
	require.True(t, entries[0].IsDir())
	require.Equal(t, "other", entries[1].Name())

	entries, err = mfs.ReadDir("glam")
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.Equal(t, []string{"a.sql", "b.sql", "nested"}, names)

	_, err = mfs.ReadDir("glam/a.sql")
	require.Error(t, err)

	_, err = mfs.ReadDir("nowhere")
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("root.sql", "SELECT 1;")

	info, err := mfs.Stat("/test/project/root.sql")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "root.sql", info.Name())
	require.Equal(t, int64(9), info.Size())

	info, err = mfs.Stat("/test/project")
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestMemoryFileSystem_WriteFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/out")

	data := []byte("SELECT 1;\n")
	require.NoError(t, mfs.WriteFile("sql/telemetry_derived/t/query.sql", data))
	data[0] = 'X'

	content, err := mfs.ReadFile("sql/telemetry_derived/t/query.sql")
	require.NoError(t, err)
	require.Equal(t, "SELECT 1;\n", string(content))

	info, err := mfs.Stat("sql/telemetry_derived")
	require.NoError(t, err)
	require.True(t, info.IsDir())

	require.Error(t, mfs.WriteFile("sql", []byte("x")))
}

func TestMemoryFileSystem_ConcurrentAccess(t *testing.T) {
	mfs := NewMemoryFileSystem("/")
	mfs.AddFile("shared.sql", "SELECT 1;")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = mfs.ReadFile("shared.sql")
			_ = mfs.WriteFile("shared.sql", []byte("SELECT 2;"))
			_, _ = mfs.ReadDir(".")
		}()
	}
	wg.Wait()

	content, err := mfs.ReadFile("shared.sql")
	require.NoError(t, err)
	require.Equal(t, "SELECT 2;", string(content))
}
