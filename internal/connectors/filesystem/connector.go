// Package filesystem provides a document source that walks a local
// directory tree and flattens supported files into plain text.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
	"github.com/swimforge-labs/swimforge-cli/internal/core/ports/driven"
	"github.com/swimforge-labs/swimforge-cli/internal/logger"
	"github.com/swimforge-labs/swimforge-cli/internal/normalisers"
)

// Ensure Connector implements the interface.
var _ driven.DocumentSource = (*Connector)(nil)

// watchDebounce coalesces bursts of filesystem events into one signal.
const watchDebounce = 500 * time.Millisecond

// Connector loads documents from a local directory. Document IDs are
// the slash-separated paths relative to the root, so rebuilding the
// same tree yields the same IDs.
type Connector struct {
	rootPath string
	watcher  *fsnotify.Watcher
}

// New creates a filesystem connector rooted at rootPath.
func New(rootPath string) *Connector {
	return &Connector{rootPath: rootPath}
}

// Load walks the root directory and returns all supported documents.
// Unreadable or malformed files are skipped with a warning rather than
// failing the whole build.
func (c *Connector) Load(ctx context.Context) ([]domain.Document, error) {
	info, err := os.Stat(c.rootPath)
	if err != nil {
		return nil, fmt.Errorf("docs directory %s: %w", c.rootPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("docs path %s is not a directory", c.rootPath)
	}

	var docs []domain.Document
	err = filepath.WalkDir(c.rootPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("skipping %s: %v", path, err)
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() {
			// Hidden directories are not part of the corpus.
			if entry.Name() != "." && entry.Name()[0] == '.' && path != c.rootPath {
				return filepath.SkipDir
			}
			return nil
		}
		if !normalisers.Supported(path) {
			return nil
		}

		doc, err := c.loadFile(path)
		if err != nil {
			logger.Warn("skipping %s: %v", path, err)
			return nil
		}
		docs = append(docs, *doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded %d documents from %s", len(docs), c.rootPath)
	return docs, nil
}

// loadFile reads and flattens one file.
func (c *Connector) loadFile(path string) (*domain.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	normaliser := normalisers.ForPath(path)
	title, text, err := normaliser.Normalise(path, content)
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(c.rootPath, path)
	if err != nil {
		return nil, err
	}

	return &domain.Document{
		ID:       filepath.ToSlash(rel),
		Path:     path,
		Title:    title,
		Content:  text,
		LoadedAt: time.Now(),
	}, nil
}

// Watch emits a signal whenever a supported file under the root
// changes. Bursts of events are debounced into one signal. The channel
// closes when the context is cancelled or the watcher fails.
func (c *Connector) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	c.watcher = watcher

	// Watch the root and every existing subdirectory.
	err = filepath.WalkDir(c.rootPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable subtrees are skipped
		}
		if entry.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", c.rootPath, err)
	}

	changes := make(chan struct{}, 1)
	go c.watchLoop(ctx, watcher, changes)
	return changes, nil
}

// watchLoop translates raw fsnotify events into debounced signals.
func (c *Connector) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, changes chan<- struct{}) {
	defer close(changes)
	defer watcher.Close()

	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			// New directories must be added to the watch set.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						logger.Warn("watching %s: %v", event.Name, err)
					}
				}
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("change detected: %s %s", event.Op, event.Name)
			if debounce == nil {
				debounce = time.NewTimer(watchDebounce)
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(watchDebounce)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			select {
			case changes <- struct{}{}:
			default:
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// relevant filters events down to content changes of supported files.
func relevant(event fsnotify.Event) bool {
	if event.Op.Has(fsnotify.Chmod) && event.Op&^fsnotify.Chmod == 0 {
		return false
	}
	// Removes and renames of directories matter too; their names have
	// no extension so check support only for create/write.
	if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) {
		return normalisers.Supported(event.Name)
	}
	return true
}

// Close stops the watcher if one is running.
func (c *Connector) Close() error {
	if c.watcher != nil {
		return c.watcher.Close()
	}
	return nil
}
