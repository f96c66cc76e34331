// Package prof collects coarse wall-clock timings for the generation tools.
// It is a process-wide recorder guarded by a mutex; the generators
// themselves never touch it.
package prof

import (
	"sync"
	"time"
)

// Entry is a single labeled timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

// Stat aggregates the entries recorded under one label.
type Stat struct {
	Count int
	Total time.Duration
}

// Mean returns the average duration per recorded entry.
func (s Stat) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start under the given label. Intended to be
// deferred: defer prof.Track(time.Now(), "safeprime").
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: label, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected entries and clears the recorder.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// Summarize folds entries into per-label statistics.
func Summarize(entries []Entry) map[string]Stat {
	out := make(map[string]Stat, len(entries))
	for _, e := range entries {
		s := out[e.Label]
		s.Count++
		s.Total += e.Dur
		out[e.Label] = s
	}
	return out
}
