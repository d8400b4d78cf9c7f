package snapshots

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/seguro-calcio/roster-service/internal/logging"
	"github.com/seguro-calcio/roster-service/internal/metrics"
	"github.com/seguro-calcio/roster-service/internal/timeutil"
)

const defaultInterval = 5 * time.Minute

// Autosaver captures the store state on an interval and writes it to disk.
type Autosaver struct {
	store    Store
	writer   *Writer
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the autosave loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// NewAutosaver constructs an Autosaver with sane defaults.
func NewAutosaver(store Store, writer *Writer, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Autosaver {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Autosaver{
		store:    store,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start launches the autosave loop. Calling Start twice is a no-op.
func (a *Autosaver) Start(ctx context.Context) {
	if a == nil || a.writer == nil {
		return
	}

	a.startMu.Lock()
	if a.started {
		a.startMu.Unlock()
		return
	}
	a.started = true
	a.ticker = time.NewTicker(a.interval)
	a.startMu.Unlock()

	a.saveOnce()

	go func() {
		defer a.ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-a.done:
				return
			case <-a.ticker.C:
				a.saveOnce()
			}
		}
	}()
}

// Stop terminates the loop after writing a final snapshot.
func (a *Autosaver) Stop() {
	if a == nil || a.writer == nil {
		return
	}
	a.stopOnce.Do(func() {
		a.saveOnce()
		close(a.done)
	})
}

// Status returns a copy of the current loop health.
func (a *Autosaver) CurrentStatus() Status {
	a.statusMu.RLock()
	defer a.statusMu.RUnlock()
	return a.status
}

func (a *Autosaver) saveOnce() {
	date := timeutil.FormatDate(a.now().UTC())
	err := a.writer.WriteState(date, Capture(a.store))
	a.metrics.RecordSnapshotWrite(err)
	a.recordAttempt(err)

	if err != nil {
		logging.Error(a.logger, "state snapshot failed", err, slog.String(logging.FieldDate, date))
		return
	}
	logging.Info(a.logger, "state snapshot written", slog.String(logging.FieldDate, date))
}

func (a *Autosaver) recordAttempt(err error) {
	a.statusMu.Lock()
	defer a.statusMu.Unlock()

	now := a.now()
	a.status.LastAttempt = now
	if err != nil {
		a.status.ConsecutiveFailures++
		a.status.LastError = err.Error()
		return
	}
	a.status.ConsecutiveFailures = 0
	a.status.LastError = ""
	a.status.LastSuccess = now
}
