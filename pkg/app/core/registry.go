package core

// Registry owns every submitted order, partitioned by side.
// It is append-only and not safe for concurrent use; see SyncRegistry.
type Registry struct {
	buys   []Order // submission order
	sells  []Order // submission order
	nextID uint64
}

// NewRegistry returns an empty registry whose first id is 1.
func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

// partition returns the slice backing side. Anything other than Buy reads the sell side.
func (r *Registry) partition(side Side) []Order {
	if side == Buy {
		return r.buys
	}
	return r.sells
}

// Submit stores a new order and returns its id. Amount and price are not validated.
// Any side other than Buy is stored as Sell, matching the partition it lands in.
func (r *Registry) Submit(side Side, amount, price float64) uint64 {
	if side != Buy {
		side = Sell
	}
	o := Order{
		ID:     r.nextID,
		Side:   side,
		Amount: amount,
		Price:  price,
	}

	if side == Buy {
		r.buys = append(r.buys, o)
	} else {
		r.sells = append(r.sells, o)
	}

	r.nextID++
	return o.ID
}

// Count returns the number of orders across both sides.
func (r *Registry) Count() int {
	return len(r.buys) + len(r.sells)
}

// OrdersFor returns a copy of the orders on side in submission order.
func (r *Registry) OrdersFor(side Side) []Order {
	src := r.partition(side)
	out := make([]Order, len(src))
	copy(out, src)
	return out
}

// Find looks an order up by id, buy side first. ok is false for unknown ids.
func (r *Registry) Find(id uint64) (Order, bool) {
	for _, o := range r.buys {
		if o.ID == id {
			return o, true
		}
	}
	for _, o := range r.sells {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// TotalNotional sums amount*price over side in submission order.
func (r *Registry) TotalNotional(side Side) float64 {
	var total float64
	for _, o := range r.partition(side) {
		total += o.Notional()
	}
	return total
}
