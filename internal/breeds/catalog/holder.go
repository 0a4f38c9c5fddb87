package catalog

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"dogbreed-service/internal/metrics"
)

// LoaderFunc builds a fresh catalog.
type LoaderFunc func() (*Catalog, LoadReport, error)

// Holder publishes the current catalog snapshot. Readers call Current once per request and keep
// working on that snapshot; a reload swaps in a new catalog and never touches the old one.
type Holder struct {
	cur    atomic.Pointer[Catalog]
	load   LoaderFunc
	logger zerolog.Logger
	mu     sync.Mutex // serializes reloads
}

func NewHolder(load LoaderFunc, logger zerolog.Logger) *Holder {
	h := &Holder{load: load, logger: logger.With().Str("component", "catalog").Logger()}
	h.cur.Store(Empty())
	return h
}

func (h *Holder) Current() *Catalog { return h.cur.Load() }

// Reload runs the loader and publishes its catalog. On error the previous snapshot stays.
func (h *Holder) Reload() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, rep, err := h.load()
	if err != nil {
		metrics.CatalogReloads.WithLabelValues("error").Inc()
		h.logger.Error().Err(err).Str("source", rep.Source).Msg("catalog load failed, keeping previous")
		return err
	}
	h.cur.Store(c)
	metrics.CatalogReloads.WithLabelValues("ok").Inc()
	metrics.CatalogRecords.Set(float64(c.Len()))

	ev := h.logger.Info()
	if len(rep.Warnings) > 0 {
		ev = h.logger.Warn().Strs("warnings", rep.Warnings)
	}
	ev.Str("source", rep.Source).
		Int("rows", rep.Rows).
		Int("loaded", rep.Loaded).
		Int("skipped", rep.Skipped).
		Msg("catalog loaded")
	return nil
}

// Watch reloads whenever path changes, until ctx is done. The parent directory is watched so
// editors that save via rename are picked up; bursts of events within debounce cause one reload.
func (h *Holder) Watch(ctx context.Context, path string, debounce time.Duration) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return err
	}

	go func() {
		defer fw.Close()
		var timer *time.Timer
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, func() { _ = h.Reload() })
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				h.logger.Warn().Err(err).Msg("catalog watcher")
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			}
		}
	}()
	h.logger.Info().Str("path", abs).Msg("watching catalog")
	return nil
}
