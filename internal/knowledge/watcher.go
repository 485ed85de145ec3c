package knowledge

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/povarna/generative-ai-agents/health-agent/internal/retrieval"
	"github.com/povarna/generative-ai-agents/health-agent/internal/tfidf"
	"github.com/rs/zerolog"
)

const defaultDebounce = 250 * time.Millisecond

// Watcher rebuilds the index whenever the knowledge base file changes and
// swaps it into the store. A broken file keeps the previous index live.
type Watcher struct {
	source   *FileSource
	store    *retrieval.Store
	opts     tfidf.Options
	debounce time.Duration
	logger   *zerolog.Logger
	onSwap   func(*retrieval.Index)
	// reloaded receives the result of every rebuild, for tests.
	reloaded chan error
}

func NewWatcher(source *FileSource, store *retrieval.Store, opts tfidf.Options, logger *zerolog.Logger) *Watcher {
	return &Watcher{
		source:   source,
		store:    store,
		opts:     opts,
		debounce: defaultDebounce,
		logger:   logger,
	}
}

// OnSwap registers fn to be called with every newly published index.
func (w *Watcher) OnSwap(fn func(*retrieval.Index)) *Watcher {
	w.onSwap = fn
	return w
}

// Run blocks until ctx is done. The parent directory is watched so editors
// that replace the file by rename are noticed.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fsw.Close()

	target := filepath.Clean(w.source.Path())
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	w.logger.Info().Str("path", target).Msg("Watching knowledge base for changes")

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			err := w.reload(ctx)
			select {
			case w.reloaded <- err:
			default:
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("File watcher error")
		}
	}
}

func (w *Watcher) reload(ctx context.Context) error {
	idx, err := BuildIndex(ctx, w.source, w.opts, w.logger)
	if err != nil {
		w.logger.Error().Err(err).Msg("Knowledge base reload failed, keeping previous index")
		return err
	}

	prev := w.store.Swap(idx)
	w.logger.Info().Int("previous", prev.Len()).Int("current", idx.Len()).Msg("Knowledge index swapped")
	if w.onSwap != nil {
		w.onSwap(idx)
	}
	return nil
}
