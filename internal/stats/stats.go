// Package stats tracks recognition call statistics in memory: how many calls
// ran, how many degraded to the fallback record, and how long the model took.
package stats

import (
	"sync"
	"time"
)

// Outcome classifies one finished recognition call.
type Outcome string

const (
	// OutcomeRecognized means the model produced a usable record.
	OutcomeRecognized Outcome = "recognized"
	// OutcomeFallback means the call degraded to the default record.
	OutcomeFallback Outcome = "fallback"
)

// Recorder accumulates recognition call statistics for the process lifetime.
type Recorder struct {
	mu           sync.Mutex
	recognized   int64
	fallback     int64
	totalSeconds float64
	lastCallAt   time.Time
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record adds one finished call.
func (r *Recorder) Record(outcome Outcome, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch outcome {
	case OutcomeFallback:
		r.fallback++
	default:
		r.recognized++
	}
	r.totalSeconds += duration.Seconds()
	r.lastCallAt = time.Now()
}

// Summary is a point-in-time view of the recorded statistics.
type Summary struct {
	Calls          int64     `json:"calls"`
	Recognized     int64     `json:"recognized"`
	Fallback       int64     `json:"fallback"`
	FallbackRate   float64   `json:"fallbackRate"`
	AvgCallSeconds float64   `json:"avgCallSeconds"`
	LastCallAt     time.Time `json:"lastCallAt,omitempty"`
}

// Summary returns the current statistics.
func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Summary{
		Calls:      r.recognized + r.fallback,
		Recognized: r.recognized,
		Fallback:   r.fallback,
		LastCallAt: r.lastCallAt,
	}
	if s.Calls > 0 {
		s.FallbackRate = float64(r.fallback) / float64(s.Calls)
		s.AvgCallSeconds = r.totalSeconds / float64(s.Calls)
	}
	return s
}
