package gallery

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/valter-silva-au/agent-gallery/internal/logging"
	"github.com/valter-silva-au/agent-gallery/internal/storage"
)

// reloadDebounce collapses the bursts of write events editors produce into
// a single catalog reload.
const reloadDebounce = 250 * time.Millisecond

// catalogWatcher reloads the catalog when its source file or directory
// changes on disk.
type catalogWatcher struct {
	catalog storage.CatalogStoreManager
	watcher *fsnotify.Watcher
	log     *logging.Logger
}

func newCatalogWatcher(catalog storage.CatalogStoreManager, log *logging.Logger) (*catalogWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Directory catalogs get a watch on the directory itself; fsnotify does
	// not recurse, so watching the parent would miss the markdown files
	// inside. File catalogs watch the parent directory instead: editors
	// replace files by rename, which would otherwise drop the watch.
	target := catalog.Path()
	if info, err := os.Stat(target); err != nil || !info.IsDir() {
		target = filepath.Dir(target)
	}
	if err := w.Add(target); err != nil {
		_ = w.Close()
		return nil, err
	}

	return &catalogWatcher{
		catalog: catalog,
		watcher: w,
		log:     log.Sub("watch"),
	}, nil
}

// run processes filesystem events until the context is cancelled.
func (cw *catalogWatcher) run(ctx context.Context) {
	defer func() { _ = cw.watcher.Close() }()

	var timer *time.Timer
	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if !cw.relevant(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.log.Warn().Err(err).Msg("catalog watch error")

		case <-reload:
			if err := cw.catalog.Load(); err != nil {
				// Keep serving the last good catalog.
				cw.log.Error().Err(err).Msg("catalog reload failed")
				continue
			}
			cw.log.Info().
				Int("agents", len(cw.catalog.Agents())).
				Msg("catalog reloaded")
		}
	}
}

// relevant reports whether a filesystem event concerns the catalog source.
func (cw *catalogWatcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	path := cw.catalog.Path()
	if event.Name == path {
		return true
	}
	// Directory catalogs: any markdown file inside the catalog dir counts.
	return filepath.Dir(event.Name) == path && filepath.Ext(event.Name) == ".md"
}
