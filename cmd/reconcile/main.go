// Command reconcile replays the stock ledger for every item and compares
// the result with the stored balances. It never writes. A Redis lock keeps
// concurrent invocations to one runner.
//
// Usage:
//
//	reconcile [-config path]
//
// Exit codes: 0 = no drift, 1 = error, 2 = drift found, 3 = already running.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/boxstock-backend/internal/adapter/cache"
	"github.com/heartmarshall/boxstock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boxstock-backend/internal/adapter/postgres/inventory"
	"github.com/heartmarshall/boxstock-backend/internal/adapter/postgres/ledger"
	"github.com/heartmarshall/boxstock-backend/internal/app"
	"github.com/heartmarshall/boxstock-backend/internal/config"
	"github.com/heartmarshall/boxstock-backend/internal/service/reconcile"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config (default $CONFIG_PATH)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: reconcile [-config path]")
		flag.PrintDefaults()
		config.Usage(os.Stderr)
	}
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if !cfg.Redis.Enabled() {
		logger.Error("reconcile requires redis for its lock; set REDIS_ADDR")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	rdb, err := cache.NewClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer rdb.Close() //nolint:errcheck

	svc := reconcile.NewService(
		logger,
		inventory.New(pool),
		ledger.New(pool, cfg.Inventory.LedgerPageSize),
		postgres.NewTxManager(pool),
		cache.NewLocker(rdb, cfg.Redis.KeyPrefix),
		cfg.Reconcile.LockTTL,
	)

	report, err := svc.Run(ctx)
	switch {
	case errors.Is(err, reconcile.ErrAlreadyRunning):
		logger.Warn("another reconciliation is running")
		os.Exit(3)
	case err != nil:
		logger.Error("reconciliation failed", slog.String("error", err.Error()))
		os.Exit(1)
	case !report.Clean():
		os.Exit(2)
	}
}
