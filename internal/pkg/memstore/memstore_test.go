package memstore

import (
	"sync"
	"testing"
)

type record struct {
	ID    string
	Value int
}

func newStore(t *testing.T, items ...record) *Store[record] {
	t.Helper()
	s := New(func(r record) string { return r.ID })
	s.Seed(items)
	return s
}

func TestGetAbsentIsNotAFault(t *testing.T) {
	s := newStore(t, record{ID: "a", Value: 1})

	if _, ok := s.Get("missing"); ok {
		t.Fatal("expected ok=false for absent id")
	}
	if got, ok := s.Get("a"); !ok || got.Value != 1 {
		t.Fatalf("Get(a) = %+v, %v", got, ok)
	}
}

func TestAllReturnsClone(t *testing.T) {
	s := newStore(t, record{ID: "a", Value: 1}, record{ID: "b", Value: 2})

	items := s.All()
	items[0].Value = 99

	got, _ := s.Get("a")
	if got.Value != 1 {
		t.Fatalf("mutating All() result leaked into store: Value = %d", got.Value)
	}
}

func TestUpdateMutatesInPlace(t *testing.T) {
	s := newStore(t, record{ID: "a", Value: 1})

	updated, ok := s.Update("a", func(r *record) { r.Value = 7 })
	if !ok || updated.Value != 7 {
		t.Fatalf("Update = %+v, %v", updated, ok)
	}
	got, _ := s.Get("a")
	if got.Value != 7 {
		t.Errorf("store not updated, Value = %d", got.Value)
	}

	if _, ok := s.Update("missing", func(r *record) { r.Value = 0 }); ok {
		t.Error("expected ok=false updating absent id")
	}
}

func TestReplaceKeepsPosition(t *testing.T) {
	s := newStore(t, record{ID: "a", Value: 1}, record{ID: "b", Value: 2}, record{ID: "c", Value: 3})

	if !s.Replace("b", record{ID: "b", Value: 20}) {
		t.Fatal("Replace returned false for present id")
	}
	items := s.All()
	if items[1].ID != "b" || items[1].Value != 20 {
		t.Fatalf("replaced record moved or unchanged: %+v", items)
	}
	if s.Replace("missing", record{ID: "missing"}) {
		t.Error("Replace of absent id should return false")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newStore(t, record{ID: "a", Value: 1})

	if !s.Delete("a") {
		t.Fatal("first delete should succeed")
	}
	if s.Delete("a") {
		t.Fatal("second delete of same id should report false, not fail")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after delete", s.Len())
	}
}

func TestMutateReplacesCollection(t *testing.T) {
	s := newStore(t, record{ID: "a", Value: 1}, record{ID: "b", Value: 2})

	s.Mutate(func(items []record) []record {
		for i := range items {
			items[i].Value *= 10
		}
		return append(items, record{ID: "c", Value: 3})
	})

	if s.Len() != 3 {
		t.Fatalf("Len = %d after Mutate", s.Len())
	}
	if got, _ := s.Get("a"); got.Value != 10 {
		t.Errorf("in-place edit lost: %+v", got)
	}
	if _, ok := s.Get("c"); !ok {
		t.Error("appended record missing")
	}
}

func TestMutateIsAtomicAcrossGoroutines(t *testing.T) {
	s := newStore(t)
	const workers = 8

	// Each worker inserts its record only if absent, the way compound
	// upserts do. Under one lock per Mutate call, exactly one insert of
	// each id can win.
	var wg sync.WaitGroup
	start := make(chan struct{})
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			s.Mutate(func(items []record) []record {
				for i := range items {
					if items[i].ID == "shared" {
						items[i].Value++
						return items
					}
				}
				return append(items, record{ID: "shared", Value: 1})
			})
		}()
	}
	close(start)
	wg.Wait()

	if s.Len() != 1 {
		t.Fatalf("check-then-insert raced: %d records for one id", s.Len())
	}
	if got, _ := s.Get("shared"); got.Value != workers {
		t.Errorf("Value = %d, want %d", got.Value, workers)
	}
}

func TestFindPreservesInsertionOrder(t *testing.T) {
	s := newStore(t,
		record{ID: "a", Value: 1},
		record{ID: "b", Value: 2},
		record{ID: "c", Value: 1},
	)

	out := s.Find(func(r record) bool { return r.Value == 1 })
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "c" {
		t.Fatalf("Find result out of order: %+v", out)
	}
}
