package feeder

import "github.com/uhyunpark/tradebook/pkg/app/core"

// DemoOrders is the six-order sample book: three bids around 50, three asks around 52.
var DemoOrders = []Request{
	{Side: core.Buy, Amount: 100.0, Price: 50.25},
	{Side: core.Buy, Amount: 200.0, Price: 49.80},
	{Side: core.Buy, Amount: 150.0, Price: 51.00},
	{Side: core.Sell, Amount: 75.0, Price: 52.50},
	{Side: core.Sell, Amount: 300.0, Price: 53.20},
	{Side: core.Sell, Amount: 125.0, Price: 51.75},
}

// SeedDemo submits DemoOrders in order and returns the assigned ids.
func SeedDemo(sub Submitter) []uint64 {
	ids := make([]uint64, 0, len(DemoOrders))
	for _, r := range DemoOrders {
		ids = append(ids, sub.Submit(r.Side, r.Amount, r.Price))
	}
	return ids
}
