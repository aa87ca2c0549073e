package gallery

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valter-silva-au/agent-gallery/internal/logging"
	"github.com/valter-silva-au/agent-gallery/internal/storage"
)

func TestRelevant_FileCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agents.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"a","title":"A","body":""}]`), 0644))

	catalog := storage.NewCatalogStoreManager(path)
	require.NoError(t, catalog.Load())

	cw, err := newCatalogWatcher(catalog, logging.New(io.Discard, "silent"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cw.watcher.Close() })

	assert.True(t, cw.relevant(fsnotify.Event{Name: path, Op: fsnotify.Write}))
	assert.True(t, cw.relevant(fsnotify.Event{Name: path, Op: fsnotify.Rename}))
	assert.False(t, cw.relevant(fsnotify.Event{Name: path, Op: fsnotify.Chmod}))
	assert.False(t, cw.relevant(fsnotify.Event{
		Name: filepath.Join(filepath.Dir(path), "other.txt"),
		Op:   fsnotify.Write,
	}))
}

func TestRelevant_DirectoryCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("---\ntitle: A\n---\n\nBody."), 0644))

	catalog := storage.NewCatalogStoreManager(dir)
	require.NoError(t, catalog.Load())

	cw, err := newCatalogWatcher(catalog, logging.New(io.Discard, "silent"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cw.watcher.Close() })

	assert.True(t, cw.relevant(fsnotify.Event{Name: filepath.Join(dir, "a.md"), Op: fsnotify.Write}))
	assert.True(t, cw.relevant(fsnotify.Event{Name: filepath.Join(dir, "new.md"), Op: fsnotify.Create}))
	assert.False(t, cw.relevant(fsnotify.Event{Name: filepath.Join(dir, "notes.txt"), Op: fsnotify.Write}))
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agents.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"a","title":"A","body":""}]`), 0644))

	catalog := storage.NewCatalogStoreManager(path)
	require.NoError(t, catalog.Load())
	require.EqualValues(t, 1, catalog.Version())

	cw, err := newCatalogWatcher(catalog, logging.New(io.Discard, "silent"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cw.run(ctx)

	require.NoError(t, os.WriteFile(path,
		[]byte(`[{"id":"a","title":"A","body":""},{"id":"b","title":"B","body":""}]`), 0644))

	require.Eventually(t, func() bool {
		return catalog.Version() == 2
	}, 3*time.Second, 50*time.Millisecond, "catalog was not reloaded")
	assert.Len(t, catalog.Agents(), 2)
}

func TestWatcher_ReloadsDirectoryCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"),
		[]byte("---\ntitle: A\n---\n\nBody."), 0644))

	catalog := storage.NewCatalogStoreManager(dir)
	require.NoError(t, catalog.Load())
	require.EqualValues(t, 1, catalog.Version())

	cw, err := newCatalogWatcher(catalog, logging.New(io.Discard, "silent"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cw.run(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"),
		[]byte("---\ntitle: B\n---\n\nBody."), 0644))

	require.Eventually(t, func() bool {
		return catalog.Version() == 2
	}, 3*time.Second, 50*time.Millisecond,
		"catalog was not reloaded after a markdown file changed inside the directory")
	assert.Len(t, catalog.Agents(), 2)
}

func TestWatcher_KeepsLastGoodCatalogOnBrokenWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "agents.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"a","title":"A","body":""}]`), 0644))

	catalog := storage.NewCatalogStoreManager(path)
	require.NoError(t, catalog.Load())

	cw, err := newCatalogWatcher(catalog, logging.New(io.Discard, "silent"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cw.run(ctx)

	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	// Give the debounced reload time to fire and fail.
	time.Sleep(4 * reloadDebounce)
	assert.EqualValues(t, 1, catalog.Version())
	assert.Len(t, catalog.Agents(), 1)
}
