// Package feeder drives the registry from inside the process: a synthetic order
// stream for demos and load, and a fixed sample book.
package feeder

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/uhyunpark/tradebook/pkg/app/core"
)

// Submitter is the write side of the registry.
type Submitter interface {
	Submit(side core.Side, amount, price float64) uint64
}

// Config controls order generation rate
type Config struct {
	Interval  time.Duration // How often to generate batches
	BatchSize int           // Orders per batch
	BasePrice float64
	Seed      int64 // 0 seeds from the clock
}

func DefaultConfig() Config {
	return Config{
		Interval:  500 * time.Millisecond,
		BatchSize: 2,
		BasePrice: 50.0,
	}
}

type Feeder struct {
	sub      Submitter
	cfg      Config
	gen      *Generator
	logger   *zap.SugaredLogger
	onSubmit []func(core.Order)
	total    int
}

// New creates a feeder submitting to sub. Zero config fields fall back to DefaultConfig.
func New(sub Submitter, cfg Config, logger *zap.SugaredLogger) *Feeder {
	def := DefaultConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.BasePrice <= 0 {
		cfg.BasePrice = def.BasePrice
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Feeder{
		sub:    sub,
		cfg:    cfg,
		gen:    NewGenerator(cfg.BasePrice, seed),
		logger: logger,
	}
}

// OnSubmit registers a hook called with every order the feeder submits.
// Hooks must be registered before Run.
func (f *Feeder) OnSubmit(fn func(core.Order)) {
	f.onSubmit = append(f.onSubmit, fn)
}

// Run submits a batch every interval until ctx is cancelled.
func (f *Feeder) Run(ctx context.Context) error {
	ticker := time.NewTicker(f.cfg.Interval)
	defer ticker.Stop()

	start := time.Now()
	f.logger.Infow("feeder_started",
		"interval_ms", f.cfg.Interval.Milliseconds(),
		"batch", f.cfg.BatchSize,
		"base_price", f.cfg.BasePrice)

	for {
		select {
		case <-ctx.Done():
			elapsed := time.Since(start)
			f.logger.Infow("feeder_stopped",
				"submitted", f.total,
				"generated", f.gen.Generated(),
				"elapsed", elapsed.Round(time.Millisecond).String(),
				"rate_per_sec", float64(f.total)/elapsed.Seconds())
			return nil
		case <-ticker.C:
			f.tick()
		}
	}
}

// tick submits one batch and returns the stored orders.
func (f *Feeder) tick() []core.Order {
	batch := f.gen.Batch(f.cfg.BatchSize)
	out := make([]core.Order, 0, len(batch))
	for _, req := range batch {
		id := f.sub.Submit(req.Side, req.Amount, req.Price)
		o := core.Order{ID: id, Side: req.Side, Amount: req.Amount, Price: req.Price}
		out = append(out, o)
		f.logger.Debugw("order_submitted", "id", id, "side", req.Side.String(), "amount", req.Amount, "price", req.Price)
		for _, fn := range f.onSubmit {
			fn(o)
		}
	}
	f.total += len(out)
	return out
}

// Submitted is the number of orders this feeder has submitted.
func (f *Feeder) Submitted() int { return f.total }
