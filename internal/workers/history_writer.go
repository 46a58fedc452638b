package workers

import (
	"context"
	"sync"
	"time"

	"github.com/wellmind/wellmind/internal/logger"
	"github.com/wellmind/wellmind/internal/store"
	"github.com/wellmind/wellmind/models"
)

const (
	// defaultQueueSize bounds the number of entries waiting to be persisted.
	defaultQueueSize = 256

	// saveTimeout bounds a single database insert so that a slow database
	// cannot stall the queue indefinitely.
	saveTimeout = 5 * time.Second
)

// HistoryWriter persists analysis history entries in the background.
//
// Record never blocks the caller: entries are pushed onto a bounded queue
// and a single goroutine drains it into the HistoryRepository. When the
// queue is full the entry is dropped with a warning, trading completeness
// of history for API latency.
type HistoryWriter struct {
	repository store.HistoryRepository
	queue      chan models.HistoryEntry
	logger     *logger.Logger

	stopOnce sync.Once
	done     chan struct{}
}

// NewHistoryWriter creates a HistoryWriter draining into repository.
func NewHistoryWriter(repository store.HistoryRepository, logger *logger.Logger) *HistoryWriter {
	return &HistoryWriter{
		repository: repository,
		queue:      make(chan models.HistoryEntry, defaultQueueSize),
		logger:     logger,
		done:       make(chan struct{}),
	}
}

// Record queues entry for persistence and returns immediately.
// If the queue is full the entry is dropped and a warning is logged.
func (w *HistoryWriter) Record(entry models.HistoryEntry) {
	select {
	case w.queue <- entry:
	default:
		w.logger.Warn().
			Str("email", entry.Email).
			Str("emotion", entry.Emotion).
			Msg("history queue is full, dropping entry")
	}
}

// Run starts the drain goroutine and returns immediately.
func (w *HistoryWriter) Run() {
	go w.drain()
}

// Stop closes the queue and waits until every already queued entry has been
// written. After Stop returns, Record must not be called again.
func (w *HistoryWriter) Stop() {
	w.stopOnce.Do(func() {
		close(w.queue)
	})
	<-w.done
}

func (w *HistoryWriter) drain() {
	defer close(w.done)

	for entry := range w.queue {
		w.save(entry)
	}
}

func (w *HistoryWriter) save(entry models.HistoryEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := w.repository.SaveEntry(ctx, entry); err != nil {
		w.logger.Err(err).
			Str("email", entry.Email).
			Str("emotion", entry.Emotion).
			Msg("history entry was not saved")
	}
}
