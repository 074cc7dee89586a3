package feeder

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/uhyunpark/tradebook/pkg/app/core"
)

func TestGenerator_Bounds(t *testing.T) {
	g := NewGenerator(50.0, 42)
	var buys, sells int
	for _, r := range g.Batch(2000) {
		if r.Price < 47.5 || r.Price > 52.5 {
			t.Fatalf("price %v outside ±5%% of 50", r.Price)
		}
		if r.Amount < 1 || r.Amount > 500 {
			t.Fatalf("amount %v outside [1, 500]", r.Amount)
		}
		switch r.Side {
		case core.Buy:
			buys++
		case core.Sell:
			sells++
		default:
			t.Fatalf("invalid side %v", r.Side)
		}
	}
	if buys == 0 || sells == 0 {
		t.Errorf("expected both sides, got buys=%d sells=%d", buys, sells)
	}
	if g.Generated() != 2000 {
		t.Errorf("Generated() = %d, want 2000", g.Generated())
	}
}

func TestGenerator_DeterministicSeed(t *testing.T) {
	a := NewGenerator(10, 7).Batch(20)
	b := NewGenerator(10, 7).Batch(20)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("request %d differs for identical seeds: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestFeeder_TickSubmitsAndNotifies(t *testing.T) {
	reg := core.NewRegistry()
	f := New(reg, Config{BatchSize: 5, BasePrice: 20, Seed: 1}, nil)

	var seen []core.Order
	f.OnSubmit(func(o core.Order) { seen = append(seen, o) })

	out := f.tick()
	if len(out) != 5 || len(seen) != 5 || reg.Count() != 5 {
		t.Fatalf("tick: out=%d hooks=%d registry=%d, want 5", len(out), len(seen), reg.Count())
	}
	for i, o := range out {
		if o.ID != uint64(i+1) {
			t.Errorf("order %d id = %d", i, o.ID)
		}
		stored, ok := reg.Find(o.ID)
		if !ok || stored != o {
			t.Errorf("hook order %+v does not match stored %+v", o, stored)
		}
	}
}

func TestFeeder_RunStopsOnCancel(t *testing.T) {
	reg := core.NewSyncRegistry()
	f := New(reg, Config{Interval: 5 * time.Millisecond, BatchSize: 3, Seed: 9}, nil)

	var mu sync.Mutex
	notified := 0
	f.OnSubmit(func(core.Order) {
		mu.Lock()
		notified++
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for reg.Count() < 6 {
		select {
		case <-deadline:
			t.Fatalf("feeder submitted only %d orders", reg.Count())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	if f.Submitted() != reg.Count() || notified != reg.Count() {
		t.Errorf("submitted=%d notified=%d registry=%d", f.Submitted(), notified, reg.Count())
	}
}

func TestSeedDemo(t *testing.T) {
	reg := core.NewRegistry()
	ids := SeedDemo(reg)

	want := []uint64{1, 2, 3, 4, 5, 6}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v", ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}
	if len(reg.OrdersFor(core.Buy)) != 3 || len(reg.OrdersFor(core.Sell)) != 3 {
		t.Errorf("expected 3 orders per side")
	}
	if o, _ := reg.Find(3); o.Side != core.Buy || o.Amount != 150 || o.Price != 51 {
		t.Errorf("Find(3) = %+v", o)
	}
}
