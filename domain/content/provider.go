package content

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/ahbiggie/Bigeen-web/pkg/logger"
)

// Provider serves the current copy. When backed by a file it can reload the
// file on change; readers always see a complete document.
type Provider struct {
	site atomic.Pointer[Site]
	path string
	log  *slog.Logger

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewStaticProvider serves site without any file backing.
func NewStaticProvider(site *Site) *Provider {
	p := &Provider{log: slog.Default()}
	p.site.Store(site)
	return p
}

// NewFileProvider loads copy from path.
func NewFileProvider(path string, log *slog.Logger) (*Provider, error) {
	p := &Provider{
		path: path,
		log:  log.With(logger.Scope("content")),
	}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Site returns the current copy.
func (p *Provider) Site() *Site {
	return p.site.Load()
}

// Reload re-reads the backing file. The previous copy stays active on error.
func (p *Provider) Reload() error {
	if p.path == "" {
		return nil
	}
	data, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("failed to read content file: %w", err)
	}
	site, err := Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", p.path, err)
	}
	p.site.Store(site)
	return nil
}

// Watch reloads the backing file whenever it is written or replaced.
func (p *Provider) Watch() error {
	if p.path == "" {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.watcher != nil {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create content watcher: %w", err)
	}
	// Editors replace files on save, so watch the directory rather than the file.
	if err := w.Add(filepath.Dir(p.path)); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to watch content dir: %w", err)
	}

	p.watcher = w
	p.done = make(chan struct{})
	go p.loop(w, p.done)

	p.log.Info("watching content file", slog.String("path", p.path))
	return nil
}

func (p *Provider) loop(w *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	target := filepath.Clean(p.path)

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := p.Reload(); err != nil {
				p.log.Warn("content reload failed, keeping previous copy", logger.Error(err))
				continue
			}
			p.log.Info("content reloaded", slog.String("path", p.path))
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			p.log.Warn("content watcher error", logger.Error(err))
		}
	}
}

// Close stops watching.
func (p *Provider) Close(ctx context.Context) error {
	p.mu.Lock()
	w, done := p.watcher, p.done
	p.watcher, p.done = nil, nil
	p.mu.Unlock()

	if w == nil {
		return nil
	}
	if err := w.Close(); err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
