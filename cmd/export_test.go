package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sudhirshivaram/portfolio/internal/config"
)

func setupSite(t *testing.T, cfg config.Config) site {
	t.Helper()
	logger = zap.NewNop()
	s, err := loadSite(cfg)
	require.NoError(t, err)
	return s
}

func TestExportPage_WritesDocument(t *testing.T) {
	dir := t.TempDir()
	s := setupSite(t, config.Config{AssetsDir: dir, PageTitle: "Custom Title"})

	out := filepath.Join(dir, "public", "index.html")
	require.NoError(t, exportPage(s, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	page := string(data)
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>Custom Title</title>")
	assert.Contains(t, page, "img-placeholder")
}

func TestExportPage_EmbedsImagesFromAssetsDir(t *testing.T) {
	dir := t.TempDir()
	imgDir := filepath.Join(dir, "images", "projects")
	require.NoError(t, os.MkdirAll(imgDir, 0o755))
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	require.NoError(t, os.WriteFile(filepath.Join(imgDir, "foodhub-2.png"), png, 0o644))

	s := setupSite(t, config.Config{AssetsDir: dir})
	out := filepath.Join(dir, "index.html")
	require.NoError(t, exportPage(s, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Sudhir Shivaram - ML Engineer Portfolio")
	assert.Equal(t, 1, strings.Count(string(data), `src="data:image/png;base64,`))
}

func TestAddWatchDirs(t *testing.T) {
	logger = zap.NewNop()
	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()

	root := filepath.Join(t.TempDir(), "images")
	assert.Error(t, addWatchDirs(watcher, root))

	require.NoError(t, os.MkdirAll(filepath.Join(root, "projects"), 0o755))
	require.NoError(t, addWatchDirs(watcher, root))
	assert.ElementsMatch(t, []string{root, filepath.Join(root, "projects")}, watcher.WatchList())
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.True(t, isDir(dir))
	assert.False(t, isDir(file))
	assert.False(t, isDir(filepath.Join(dir, "missing")))
}

func TestExportPage_ReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(out, []byte("stale page"), 0o600))

	s := setupSite(t, config.Config{AssetsDir: dir})
	require.NoError(t, exportPage(s, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale page")
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "index.html", entries[0].Name())
}
