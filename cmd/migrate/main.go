// Command migrate applies or reports the embedded database migrations.
//
// Usage:
//
//	migrate [-config path] up
//	migrate [-config path] status
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/boxstock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/boxstock-backend/internal/app"
	"github.com/heartmarshall/boxstock-backend/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config (default $CONFIG_PATH)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: migrate [-config path] up|status")
		flag.PrintDefaults()
		config.Usage(os.Stderr)
	}
	flag.Parse()

	cmd := flag.Arg(0)
	if flag.NArg() != 1 || (cmd != "up" && cmd != "status") {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	switch cmd {
	case "up":
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			logger.Error("migrate up", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrations up to date")
	case "status":
		statuses, err := postgres.MigrationStatus(ctx, pool)
		if err != nil {
			logger.Error("migration status", slog.String("error", err.Error()))
			os.Exit(1)
		}
		for _, s := range statuses {
			fmt.Printf("%-8d %-10s %s\n", s.Source.Version, s.State, s.Source.Path)
		}
	}
}
