package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Server.WriteRateLimit < 0 {
		return fmt.Errorf("server.write_rate_limit must be >= 0 (got %d)", c.Server.WriteRateLimit)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Inventory.validate(); err != nil {
		return fmt.Errorf("inventory: %w", err)
	}

	if c.Redis.Enabled() && c.Redis.SummaryTTL <= 0 {
		return fmt.Errorf("redis.summary_ttl must be > 0 (got %s)", c.Redis.SummaryTTL)
	}

	return nil
}

func (i *InventoryConfig) validate() error {
	w, err := decimal.NewFromString(i.LowStockWeightKg)
	if err != nil {
		return fmt.Errorf("low_stock_weight_kg: %w", err)
	}
	if w.IsNegative() {
		return fmt.Errorf("low_stock_weight_kg must be >= 0 (got %s)", w)
	}
	if i.LowStockPieces < 0 {
		return fmt.Errorf("low_stock_pieces must be >= 0 (got %d)", i.LowStockPieces)
	}
	if i.DashboardWindowDays <= 0 {
		return fmt.Errorf("dashboard_window_days must be > 0 (got %d)", i.DashboardWindowDays)
	}
	if i.RecentActivityLimit <= 0 {
		return fmt.Errorf("recent_activity_limit must be > 0 (got %d)", i.RecentActivityLimit)
	}
	if i.LedgerPageSize <= 0 {
		return fmt.Errorf("ledger_page_size must be > 0 (got %d)", i.LedgerPageSize)
	}
	if i.MaxLedgerResultLimit < i.RecentActivityLimit {
		return fmt.Errorf("max_ledger_result_limit must be >= recent_activity_limit")
	}
	return nil
}

// LowStockWeight returns the parsed weight threshold. Validate guarantees
// the string parses.
func (i InventoryConfig) LowStockWeight() decimal.Decimal {
	w, err := decimal.NewFromString(i.LowStockWeightKg)
	if err != nil {
		return decimal.Zero
	}
	return w
}
