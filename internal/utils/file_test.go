package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFileExtension(t *testing.T) {
	assert.Equal(t, "jpg", GetFileExtension("photo.JPG"))
	assert.Equal(t, "cr2", GetFileExtension("/a/b/IMG_0001.CR2"))
	assert.Equal(t, "jpeg", GetFileExtension("archive.tar.jpeg"))
	assert.Equal(t, "", GetFileExtension("README"))
}

func TestHasExtension(t *testing.T) {
	exts := []string{"jpeg", "jpg", ".cr2"}

	for _, name := range []string{"a.jpg", "b.JPEG", "c.Cr2", "d.e.jpg"} {
		assert.True(t, HasExtension(name, exts), name)
	}
	for _, name := range []string{"a.png", "jpg", "notes.txt", "a.jpg.bak", ""} {
		assert.False(t, HasExtension(name, exts), name)
	}
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "photo", BaseName("photo.jpg"))
	assert.Equal(t, "IMG_0001", BaseName("/in/IMG_0001.CR2"))
	assert.Equal(t, "my.holiday.pic", BaseName("my.holiday.pic.jpeg"))
	assert.Equal(t, "noext", BaseName("noext"))
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.JPG", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.jpg"), 0o755))

	files, err := ListFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.JPG", "b.jpg", "c.txt"}, files)

	empty, err := ListFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ListFiles(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestListFilesFollowsSymlinks(t *testing.T) {
	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "photo.jpg"), nil, 0o644))

	dir := t.TempDir()
	require.NoError(t, os.Symlink(filepath.Join(target, "photo.jpg"), filepath.Join(dir, "linked.jpg")))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "album")))
	require.NoError(t, os.Symlink(filepath.Join(target, "gone.jpg"), filepath.Join(dir, "dangling.jpg")))

	files, err := ListFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"dangling.jpg", "linked.jpg"}, files)
}

func TestCreateDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Output - run")
	require.NoError(t, CreateDir(dir))
	err := CreateDir(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrExist)
}
