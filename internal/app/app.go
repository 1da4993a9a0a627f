package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/boxstock-backend/internal/adapter/cache"
	"github.com/heartmarshall/boxstock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boxstock-backend/internal/adapter/postgres/actor"
	"github.com/heartmarshall/boxstock-backend/internal/adapter/postgres/inventory"
	ledgerrepo "github.com/heartmarshall/boxstock-backend/internal/adapter/postgres/ledger"
	partyrepo "github.com/heartmarshall/boxstock-backend/internal/adapter/postgres/party"
	"github.com/heartmarshall/boxstock-backend/internal/adapter/postgres/wastage"
	"github.com/heartmarshall/boxstock-backend/internal/auth"
	"github.com/heartmarshall/boxstock-backend/internal/config"
	"github.com/heartmarshall/boxstock-backend/internal/service/party"
	"github.com/heartmarshall/boxstock-backend/internal/service/stock"
	"github.com/heartmarshall/boxstock-backend/internal/service/summary"
	"github.com/heartmarshall/boxstock-backend/internal/transport/dataloader"
	"github.com/heartmarshall/boxstock-backend/internal/transport/middleware"
	"github.com/heartmarshall/boxstock-backend/internal/transport/rest"
)

// summaryCache is what the services need from the read-model cache.
type summaryCache interface {
	Get(ctx context.Context, key string, dst any) (int64, bool, error)
	Set(ctx context.Context, gen int64, key string, v any) error
	Invalidate(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and (optionally) Redis, wires the services and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	health := rest.NewHealthHandler(pool, BuildVersion())

	var summaries summaryCache = cache.Nop{}
	if cfg.Redis.Enabled() {
		rdb, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer rdb.Close() //nolint:errcheck

		summaries = cache.New(rdb, cfg.Redis.KeyPrefix, cfg.Redis.SummaryTTL)
		health.WithOptional("cache", rest.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}))
	} else {
		logger.Warn("redis not configured, summaries are computed on every request")
	}

	items := inventory.New(pool)
	ledger := ledgerrepo.New(pool, cfg.Inventory.LedgerPageSize)
	sales := wastage.New(pool)
	actors := actor.New(pool)
	parties := partyrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	gate := auth.NewGate(logger, actors)

	stockSvc := stock.NewService(logger, items, ledger, sales, gate, tx, summaries, cfg.Inventory.MaxLedgerResultLimit)
	partySvc := party.NewService(logger, parties, gate)
	summarySvc := summary.NewService(logger, items, ledger, sales, parties, gate, summaries, summary.Settings{
		LowStockWeightKg:    cfg.Inventory.LowStockWeight(),
		LowStockPieces:      cfg.Inventory.LowStockPieces,
		WindowDays:          cfg.Inventory.DashboardWindowDays,
		RecentActivityLimit: cfg.Inventory.RecentActivityLimit,
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.Handlers{
		Health:  health,
		Stock:   rest.NewStockHandler(stockSvc, logger),
		Summary: rest.NewSummaryHandler(summarySvc, logger),
		Parties: rest.NewPartyHandler(partySvc, logger),
	}, rest.Wrappers{
		Global: middleware.Chain(
			middleware.RequestID(),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(tokens),
			middleware.Logger(logger),
		),
		Writes:  limiter.Limit(cfg.Server.WriteRateLimit),
		Loaders: dataloader.Middleware(items),
	})

	// Requests drain through Shutdown instead of failing on the signal.
	baseCtx := context.WithoutCancel(ctx)
	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then shuts it down within timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), timeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
