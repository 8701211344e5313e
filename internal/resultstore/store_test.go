package resultstore

import (
	"sync"
	"testing"

	"github.com/seadex/seadex/internal/recognition"
)

func TestStore_PutGet(t *testing.T) {
	s := New()

	rec := recognition.DefaultRecord()
	rec.ChineseName = "小丑鱼"

	id := s.Put(rec, "/uploads/images/a.jpg")
	if id != 1 {
		t.Errorf("first id = %d, want 1", id)
	}

	got, ok := s.Get(id)
	if !ok {
		t.Fatal("Get returned false for stored id")
	}
	if got.Record.ChineseName != "小丑鱼" {
		t.Errorf("record = %+v", got.Record)
	}
	if got.ImageURL != "/uploads/images/a.jpg" {
		t.Errorf("imageURL = %q", got.ImageURL)
	}
	if got.CreatedAt.IsZero() || !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Errorf("timestamps not set consistently: %v / %v", got.CreatedAt, got.UpdatedAt)
	}
}

func TestStore_GetUnknown(t *testing.T) {
	s := New()
	if _, ok := s.Get(42); ok {
		t.Error("Get should report false for an id that was never stored")
	}
}

func TestStore_IDsIncrease(t *testing.T) {
	s := New()
	var last int64
	for i := 0; i < 10; i++ {
		id := s.Put(recognition.DefaultRecord(), "")
		if id <= last {
			t.Fatalf("id %d not greater than previous %d", id, last)
		}
		last = id
	}
}

func TestStore_ConcurrentPuts(t *testing.T) {
	const n = 100
	s := New()

	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- s.Put(recognition.DefaultRecord(), "")
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if s.Len() != n {
		t.Errorf("Len = %d, want %d", s.Len(), n)
	}
}
