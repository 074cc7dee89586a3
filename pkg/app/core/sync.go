package core

import "sync"

// SyncRegistry guards a Registry with a single RWMutex so it can be shared between
// the feeder and the HTTP view. Submit holds the write lock because it moves the
// partition and the id counter together.
type SyncRegistry struct {
	mu  sync.RWMutex
	reg *Registry
}

// NewSyncRegistry returns an empty registry safe for concurrent use.
func NewSyncRegistry() *SyncRegistry {
	return &SyncRegistry{reg: NewRegistry()}
}

// Submit stores an order under the write lock and returns its id.
func (s *SyncRegistry) Submit(side Side, amount, price float64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Submit(side, amount, price)
}

// Count returns the number of orders across both sides.
func (s *SyncRegistry) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Count()
}

// OrdersFor returns a copy of one side in submission order.
func (s *SyncRegistry) OrdersFor(side Side) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.OrdersFor(side)
}

// Find looks an order up by id, buy side first.
func (s *SyncRegistry) Find(id uint64) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.Find(id)
}

// TotalNotional sums amount*price over one side.
func (s *SyncRegistry) TotalNotional(side Side) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reg.TotalNotional(side)
}

// Snapshot is a consistent view of both sides taken under one read lock.
type Snapshot struct {
	Buys         []Order
	Sells        []Order
	BuyNotional  float64
	SellNotional float64
}

// Count returns the number of orders in the snapshot.
func (s Snapshot) Count() int { return len(s.Buys) + len(s.Sells) }

// Snapshot copies both sides and their totals atomically with respect to Submit.
func (s *SyncRegistry) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Buys:         s.reg.OrdersFor(Buy),
		Sells:        s.reg.OrdersFor(Sell),
		BuyNotional:  s.reg.TotalNotional(Buy),
		SellNotional: s.reg.TotalNotional(Sell),
	}
}
