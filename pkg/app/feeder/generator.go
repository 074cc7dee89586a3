package feeder

import (
	"math"
	"math/rand"

	"github.com/uhyunpark/tradebook/pkg/app/core"
)

// Request is one generated submission, before the registry assigns an id.
type Request struct {
	Side   core.Side
	Amount float64
	Price  float64
}

// Generator creates random orders around a base price.
type Generator struct {
	basePrice float64
	rng       *rand.Rand
	generated int
}

// NewGenerator returns a generator pricing around basePrice. Equal seeds yield equal streams.
func NewGenerator(basePrice float64, seed int64) *Generator {
	return &Generator{
		basePrice: basePrice,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Next returns a random order: 50/50 side, price within ±5% of the base rounded to
// cents, amount 1 to 500 whole units.
func (g *Generator) Next() Request {
	side := core.Buy
	if g.rng.Intn(2) == 1 {
		side = core.Sell
	}

	variation := (g.rng.Float64()*2 - 1) * 0.05
	price := math.Round(g.basePrice*(1+variation)*100) / 100
	if price < 0.01 {
		price = 0.01
	}

	amount := float64(g.rng.Intn(500) + 1)

	g.generated++
	return Request{Side: side, Amount: amount, Price: price}
}

func (g *Generator) Batch(count int) []Request {
	batch := make([]Request, count)
	for i := range batch {
		batch[i] = g.Next()
	}
	return batch
}

// Generated is the number of requests produced so far.
func (g *Generator) Generated() int { return g.generated }
