package store

import (
	"context"
	"sync"
	"time"

	"github.com/khrees2412/quickcv/pkg/models"
	"github.com/rs/zerolog"
)

// DefaultAutosaveDelay is the debounce window used when none is configured
const DefaultAutosaveDelay = time.Second

// Saver writes a snapshot
type Saver interface {
	Save(ctx context.Context, r models.Resume) error
}

// Status reports the outcome of the most recent write
type Status int

const (
	StatusSaved Status = iota
	StatusSaving
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSaving:
		return "saving"
	case StatusError:
		return "error"
	default:
		return "saved"
	}
}

type stopper interface {
	Stop() bool
}

// Autosaver debounces snapshot writes. Every Schedule cancels the pending
// write and starts a new window, so at most one write happens per window
// and the newest value always wins.
type Autosaver struct {
	saver  Saver
	delay  time.Duration
	logger zerolog.Logger

	afterFunc func(time.Duration, func()) stopper
	now       func() time.Time

	// writeMu serializes writes so an older value can never land after a
	// newer one.
	writeMu sync.Mutex

	mu        sync.Mutex
	timer     stopper
	pending   *models.Resume
	gen       uint64
	closed    bool
	status    Status
	lastSaved time.Time
	lastErr   error
}

// NewAutosaver returns an Autosaver writing through saver after delay
func NewAutosaver(saver Saver, delay time.Duration, logger zerolog.Logger) *Autosaver {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	return &Autosaver{
		saver:  saver,
		delay:  delay,
		logger: logger,
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
		now: time.Now,
	}
}

// Schedule replaces any pending value with r and restarts the window
func (a *Autosaver) Schedule(r models.Resume) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		a.logger.Warn().Msg("autosave closed, change not scheduled")
		return
	}
	if a.timer != nil {
		a.timer.Stop()
	}
	a.gen++
	gen := a.gen
	a.pending = &r
	a.timer = a.afterFunc(a.delay, func() { a.fire(gen) })
}

func (a *Autosaver) fire(gen uint64) {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	a.mu.Lock()
	if gen != a.gen || a.pending == nil {
		// superseded by a newer Schedule or already flushed
		a.mu.Unlock()
		return
	}
	r := *a.pending
	a.pending = nil
	a.timer = nil
	a.status = StatusSaving
	a.mu.Unlock()

	a.write(r)
}

// Flush writes the pending value now, if there is one
func (a *Autosaver) Flush() error {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	if a.pending == nil {
		a.mu.Unlock()
		return nil
	}
	r := *a.pending
	a.pending = nil
	a.status = StatusSaving
	a.mu.Unlock()

	return a.write(r)
}

// Close stops accepting new values and flushes the pending one
func (a *Autosaver) Close() error {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
	return a.Flush()
}

// Pending reports whether a write is waiting for its window to end
func (a *Autosaver) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending != nil
}

// Status returns the state of the last write, when it last succeeded and
// the error of the last failed write.
func (a *Autosaver) Status() (Status, time.Time, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status, a.lastSaved, a.lastErr
}

// write must be called with writeMu held
func (a *Autosaver) write(r models.Resume) error {
	err := a.saver.Save(context.Background(), r)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.status = StatusError
		a.lastErr = err
		a.logger.Error().Err(err).Msg("failed to save resume")
		return err
	}
	a.status = StatusSaved
	a.lastErr = nil
	a.lastSaved = a.now()
	a.logger.Debug().Time("saved_at", a.lastSaved).Msg("resume saved")
	return nil
}
