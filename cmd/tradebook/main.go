package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/uhyunpark/tradebook/params"
	"github.com/uhyunpark/tradebook/pkg/api"
	"github.com/uhyunpark/tradebook/pkg/app/core"
	"github.com/uhyunpark/tradebook/pkg/app/feeder"
	"github.com/uhyunpark/tradebook/pkg/util"
)

func main() {
	// Load config from .env file and environment variables
	cfg := params.LoadFromEnv("")

	logger, err := util.NewLoggerWithFile(cfg.Node.LogFile, cfg.Node.Verbose)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()
	sugar.Infow("logger_initialized", "log_file", cfg.Node.LogFile, "verbose", cfg.Node.Verbose)

	// One registry for the whole process, shared by the feeder and the API.
	book := core.NewSyncRegistry()

	if cfg.Node.SeedDemo {
		ids := feeder.SeedDemo(book)
		sugar.Infow("demo_orders_seeded", "count", len(ids), "ids", ids)
		if err := api.RenderBook(os.Stdout, book); err != nil {
			sugar.Warnw("render_failed", "err", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	apiServer := api.NewServer(book, api.Options{AllowedOrigins: cfg.API.AllowedOrigins}, sugar.Named("api"))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return apiServer.Start(gctx, cfg.API.Addr)
	})

	// ---- Order Feeder (optional) ----
	// Enable with: ENABLE_FEEDER=true FEEDER_INTERVAL_MS=500 FEEDER_BATCH=2
	var f *feeder.Feeder
	if cfg.Feeder.Enabled {
		f = feeder.New(book, feeder.Config{
			Interval:  cfg.Feeder.Interval,
			BatchSize: cfg.Feeder.BatchSize,
			BasePrice: cfg.Feeder.BasePrice,
		}, sugar.Named("feeder"))
		f.OnSubmit(apiServer.BroadcastOrder)

		g.Go(func() error {
			return f.Run(gctx)
		})
	} else {
		sugar.Info("feeder_disabled")
	}

	sugar.Infow("tradebook_started",
		"api_addr", cfg.API.Addr,
		"orders", book.Count(),
		"feeder", cfg.Feeder.Enabled)

	if err := g.Wait(); err != nil {
		sugar.Fatalw("tradebook_failed", "err", err)
	}

	fed := 0
	if f != nil {
		fed = f.Submitted()
	}
	snap := book.Snapshot()
	sugar.Infow("tradebook_stopped",
		"orders", snap.Count(),
		"fed", fed,
		"buy_notional", snap.BuyNotional,
		"sell_notional", snap.SellNotional)
}
