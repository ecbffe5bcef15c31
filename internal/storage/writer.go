package storage

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/balkashynov/shiftr/internal/models"
)

// DefaultDebounce coalesces bursts of edits into a single write
const DefaultDebounce = 300 * time.Millisecond

// Writer mirrors state changes to a Store in the background. Each Schedule
// call supersedes the pending write and restarts the delay, so only the
// latest state is written. Failures are logged and otherwise ignored: the
// in-memory state stays authoritative.
type Writer struct {
	store Store
	delay time.Duration
	log   logrus.FieldLogger

	mu      sync.Mutex
	timer   *time.Timer
	pending *models.SavedState
	closed  bool
	writes  int
}

func NewWriter(store Store, delay time.Duration, log logrus.FieldLogger) *Writer {
	if delay < 0 {
		delay = 0
	}
	return &Writer{store: store, delay: delay, log: log}
}

// Schedule queues state for writing after the debounce delay. A zero delay
// writes synchronously.
func (w *Writer) Schedule(state models.SavedState) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.log.Warn("Save scheduled after writer closed, dropping")
		return
	}
	w.pending = &state
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	if w.delay == 0 {
		w.mu.Unlock()
		w.Flush()
		return
	}
	w.timer = time.AfterFunc(w.delay, w.Flush)
	w.mu.Unlock()
}

// Flush writes any pending state now
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	if w.pending == nil {
		return
	}

	state := *w.pending
	w.pending = nil
	if err := w.store.Save(state); err != nil {
		w.log.WithError(err).Error("Failed to save state")
		return
	}
	w.writes++
	w.log.WithField("breaks", len(state.Breaks)).Debug("State saved")
}

// Close flushes and refuses further writes
func (w *Writer) Close() {
	w.Flush()
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
}

// Writes reports how many saves have succeeded
func (w *Writer) Writes() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writes
}
