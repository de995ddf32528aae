// Package assets serves the stylesheet, scripts and images under /static and
// fingerprints their URLs so browsers pick up changes.
package assets

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// URLPrefix is where the assets are mounted.
const URLPrefix = "/static"

// Assets is a read-only asset filesystem with cached content hashes.
type Assets struct {
	fs     afero.Fs
	dir    string
	mu     sync.RWMutex
	hashes map[string]string
	logger *slog.Logger

	watcher *fsnotify.Watcher
}

// New serves from dir when it is set, otherwise from the embedded filesystem.
func New(embedded fs.FS, dir string) (*Assets, error) {
	if dir == "" {
		return NewFromFs(&afero.FromIOFS{FS: embedded}), nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: static dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: static dir %s is not a directory", dir)
	}

	a := NewFromFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
	a.dir = dir
	return a, nil
}

// NewFromFs wraps any afero filesystem. Writes through the wrapper are refused.
func NewFromFs(fsys afero.Fs) *Assets {
	return &Assets{
		fs:     afero.NewReadOnlyFs(fsys),
		hashes: make(map[string]string),
		logger: slog.Default().With("service", "assets"),
	}
}

// FS exposes the assets as an io/fs filesystem for Echo's StaticFS.
func (a *Assets) FS() fs.FS {
	return afero.NewIOFS(a.fs)
}

// Path returns the public URL of an asset with a content fingerprint. Missing
// assets get the bare URL so a broken reference shows up as a 404.
func (a *Assets) Path(name string) string {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	url := URLPrefix + "/" + name

	version, err := a.version(name)
	if err != nil {
		a.logger.Warn("Asset not found", "name", name, "error", err)
		return url
	}
	return url + "?v=" + version
}

func (a *Assets) version(name string) (string, error) {
	a.mu.RLock()
	v, ok := a.hashes[name]
	a.mu.RUnlock()
	if ok {
		return v, nil
	}

	data, err := afero.ReadFile(a.fs, name)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	v = hex.EncodeToString(sum[:])[:10]

	a.mu.Lock()
	a.hashes[name] = v
	a.mu.Unlock()
	return v, nil
}

// Invalidate forgets every cached fingerprint.
func (a *Assets) Invalidate() {
	a.mu.Lock()
	a.hashes = make(map[string]string)
	a.mu.Unlock()
}

// Watch invalidates fingerprints whenever a file under the on-disk static
// directory changes. It is a no-op for embedded assets and returns once the
// watcher is running; ctx ends it.
func (a *Assets) Watch(ctx context.Context) error {
	if a.dir == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("assets: create watcher: %w", err)
	}

	err = filepath.WalkDir(a.dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return fmt.Errorf("assets: watch %s: %w", a.dir, err)
	}

	a.mu.Lock()
	a.watcher = watcher
	a.mu.Unlock()

	go a.watchLoop(ctx, watcher)
	a.logger.Info("Watching static assets", "dir", a.dir)
	return nil
}

func (a *Assets) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				a.logger.Debug("Static asset changed", "file", ev.Name, "op", ev.Op.String())
				a.Invalidate()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			a.logger.Error("Static asset watcher error", "error", err)
		}
	}
}

// Shutdown stops the watcher if one is running.
func (a *Assets) Shutdown() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.watcher == nil {
		return nil
	}
	err := a.watcher.Close()
	a.watcher = nil
	return err
}
