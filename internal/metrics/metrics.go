package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics and mirrors them to
// OpenTelemetry when exporters are configured. A nil Recorder is safe to
// call.
type Recorder struct {
	mu               sync.Mutex
	stats            map[string]*providerStats
	importRows       map[string]int
	quotaRejections  map[string]int
	snapshotWrites   int
	snapshotFailures int
	otel             *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:           make(map[string]*providerStats),
		importRows:      make(map[string]int),
		quotaRejections: make(map[string]int),
		otel:            otel,
	}
}

// RecordProviderAttempt increments counters for an external call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordImportRows tracks how a CSV import classified its rows.
func (r *Recorder) RecordImportRows(imported, skipped, duplicates int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.importRows[OutcomeImported] += imported
	r.importRows[OutcomeSkipped] += skipped
	r.importRows[OutcomeDuplicate] += duplicates
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordImportRows(imported, skipped, duplicates)
	}
}

// RecordQuotaRejection tracks a refused squad addition.
func (r *Recorder) RecordQuotaRejection(reason string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.quotaRejections[reason]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordQuotaRejection(reason)
	}
}

// RecordSnapshotWrite tracks one state snapshot attempt.
func (r *Recorder) RecordSnapshotWrite(err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.snapshotWrites++
	if err != nil {
		r.snapshotFailures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSnapshotWrite(err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.stats[provider]; ok {
		return stats.calls
	}
	return 0
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.stats[provider]; ok {
		return stats.errors
	}
	return 0
}

// ImportRows returns how many rows were recorded with the given outcome.
func (r *Recorder) ImportRows(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.importRows[outcome]
}

// QuotaRejections returns how many additions were refused for the reason.
func (r *Recorder) QuotaRejections(reason string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quotaRejections[reason]
}

// SnapshotWrites returns the total and failed snapshot attempts.
func (r *Recorder) SnapshotWrites() (total, failed int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotWrites, r.snapshotFailures
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
