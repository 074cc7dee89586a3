package core

import (
	"sync"
	"testing"
)

func TestSyncRegistry_ConcurrentSubmit(t *testing.T) {
	s := NewSyncRegistry()

	const workers, perWorker = 8, 250
	ids := make(chan uint64, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			side := Buy
			if w%2 == 1 {
				side = Sell
			}
			for i := 0; i < perWorker; i++ {
				ids <- s.Submit(side, 1, 2)
				_ = s.Count()
				_ = s.TotalNotional(side)
			}
		}(w)
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool, workers*perWorker)
	for id := range ids {
		if seen[id] {
			t.Fatalf("id %d assigned twice", id)
		}
		seen[id] = true
	}
	for id := uint64(1); id <= workers*perWorker; id++ {
		if !seen[id] {
			t.Fatalf("id %d never assigned", id)
		}
	}

	snap := s.Snapshot()
	if snap.Count() != workers*perWorker || s.Count() != snap.Count() {
		t.Errorf("snapshot count = %d, registry count = %d", snap.Count(), s.Count())
	}
	if snap.BuyNotional != float64(len(snap.Buys))*2 {
		t.Errorf("buy notional = %v for %d orders", snap.BuyNotional, len(snap.Buys))
	}
}

func TestSyncRegistry_Find(t *testing.T) {
	s := NewSyncRegistry()
	id := s.Submit(Sell, 75, 52.5)

	o, ok := s.Find(id)
	if !ok || o.Side != Sell || o.Notional() != 3937.5 {
		t.Fatalf("Find(%d) = %+v, %v", id, o, ok)
	}
	if _, ok := s.Find(id + 1); ok {
		t.Error("unknown id should miss")
	}
	if got := s.OrdersFor(Buy); len(got) != 0 {
		t.Errorf("buy side = %+v, want empty", got)
	}
}
