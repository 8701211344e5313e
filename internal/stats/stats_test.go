package stats

import (
	"sync"
	"testing"
	"time"
)

func TestRecorder_Summary(t *testing.T) {
	r := NewRecorder()

	if s := r.Summary(); s.Calls != 0 || s.FallbackRate != 0 {
		t.Errorf("empty summary = %+v", s)
	}

	r.Record(OutcomeRecognized, 2*time.Second)
	r.Record(OutcomeRecognized, 4*time.Second)
	r.Record(OutcomeFallback, 6*time.Second)

	s := r.Summary()
	if s.Calls != 3 || s.Recognized != 2 || s.Fallback != 1 {
		t.Errorf("summary counts = %+v", s)
	}
	if s.FallbackRate < 0.33 || s.FallbackRate > 0.34 {
		t.Errorf("fallbackRate = %v", s.FallbackRate)
	}
	if s.AvgCallSeconds != 4 {
		t.Errorf("avgCallSeconds = %v", s.AvgCallSeconds)
	}
	if s.LastCallAt.IsZero() {
		t.Error("lastCallAt not set")
	}
}

func TestRecorder_Concurrent(t *testing.T) {
	r := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				r.Record(OutcomeRecognized, time.Second)
			} else {
				r.Record(OutcomeFallback, time.Second)
			}
		}(i)
	}
	wg.Wait()

	s := r.Summary()
	if s.Calls != 50 || s.Recognized != 25 || s.Fallback != 25 {
		t.Errorf("summary = %+v", s)
	}
}
