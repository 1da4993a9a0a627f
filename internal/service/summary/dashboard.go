package summary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

const keyDashboard = "dashboard"

// Dashboard is the landing-page overview. Sections the actor may not view
// are nil.
type Dashboard struct {
	RawMaterials   *RawTotals      `json:"raw_materials,omitempty"`
	FinishedGoods  *FinishedTotals `json:"finished_goods,omitempty"`
	LowStock       []LowStockAlert `json:"low_stock"`
	RecentActivity []RecentEntry   `json:"recent_activity,omitempty"`
	WindowDays     int             `json:"window_days"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

// RawTotals summarise raw stock.
type RawTotals struct {
	ItemCount int             `json:"item_count"`
	WeightKg  decimal.Decimal `json:"weight_kg"`
	Value     decimal.Decimal `json:"value"`
	Added     domain.Balance  `json:"added"`
}

// FinishedTotals summarise finished goods.
type FinishedTotals struct {
	ItemCount  int             `json:"item_count"`
	Pieces     int64           `json:"pieces"`
	WeightKg   decimal.Decimal `json:"weight_kg"`
	Added      domain.Balance  `json:"added"`
	Dispatched domain.Balance  `json:"dispatched"`
}

// LowStockAlert flags an item at or below its threshold.
type LowStockAlert struct {
	ItemID  uuid.UUID       `json:"item_id"`
	Kind    domain.ItemKind `json:"kind"`
	Name    string          `json:"name"`
	Balance domain.Balance  `json:"balance"`
}

// RecentEntry is a ledger entry with the name of its item. ItemName is
// empty for standalone entries and removed items.
type RecentEntry struct {
	Entry    domain.LedgerEntry `json:"entry"`
	ItemName string             `json:"item_name"`
}

// Dashboard returns the overview trimmed to what the current actor may view.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	actor, err := s.gate.CurrentActor(ctx)
	if err != nil {
		return nil, err
	}

	full, err := cached(ctx, s, keyDashboard, s.buildDashboard)
	if err != nil {
		return nil, err
	}

	d := visibleTo(full, actor)

	s.log.InfoContext(ctx, "dashboard loaded",
		slog.String("actor_id", actor.ID.String()),
		slog.Int("low_stock", len(d.LowStock)),
		slog.Int("recent", len(d.RecentActivity)),
	)
	return &d, nil
}

func (s *Service) buildDashboard(ctx context.Context) (Dashboard, error) {
	now := s.now()
	since := now.AddDate(0, 0, -s.settings.WindowDays)

	var (
		raw, finished           []domain.InventoryItem
		rawAdded, finishedAdded domain.Balance
		dispatched              domain.Balance
		recent                  []domain.LedgerEntry
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		raw, err = s.items.List(gctx, domain.ItemKindRawMaterial)
		if err != nil {
			return fmt.Errorf("list raw materials: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		finished, err = s.items.List(gctx, domain.ItemKindFinishedGood)
		if err != nil {
			return fmt.Errorf("list finished goods: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		rawAdded, err = s.ledger.SumByActivitySince(gctx, domain.ActivityAdd, domain.ItemKindRawMaterial, since)
		if err != nil {
			return fmt.Errorf("sum raw added: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		finishedAdded, err = s.ledger.SumByActivitySince(gctx, domain.ActivityAdd, domain.ItemKindFinishedGood, since)
		if err != nil {
			return fmt.Errorf("sum finished added: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		dispatched, err = s.ledger.SumByActivitySince(gctx, domain.ActivityDispatch, domain.ItemKindFinishedGood, since)
		if err != nil {
			return fmt.Errorf("sum dispatched: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		recent, err = s.ledger.List(gctx, domain.LedgerFilter{}, s.settings.RecentActivityLimit)
		if err != nil {
			return fmt.Errorf("list recent entries: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}

	rawSum := total(SummarizeByKey(raw, rawMaterialKey, rawMaterialMeasure))
	finishedSum := total(SummarizeByKey(finished, finishedGoodKey, finishedGoodMeasure))

	d := Dashboard{
		RawMaterials: &RawTotals{
			ItemCount: len(raw),
			WeightKg:  rawSum.WeightKg,
			Value:     rawSum.Amount,
			Added:     rawAdded,
		},
		FinishedGoods: &FinishedTotals{
			ItemCount:  len(finished),
			Pieces:     finishedSum.Quantity,
			WeightKg:   finishedSum.WeightKg,
			Added:      finishedAdded,
			Dispatched: dispatched,
		},
		LowStock:    []LowStockAlert{},
		WindowDays:  s.settings.WindowDays,
		GeneratedAt: now,
	}

	for _, items := range [][]domain.InventoryItem{raw, finished} {
		for _, it := range items {
			if it.IsLowStock(s.settings.LowStockWeightKg, s.settings.LowStockPieces) {
				d.LowStock = append(d.LowStock, LowStockAlert{ItemID: it.ID, Kind: it.Kind, Name: it.Name, Balance: it.Balance})
			}
		}
	}

	names := itemNames(raw, finished)
	d.RecentActivity = make([]RecentEntry, len(recent))
	for i, e := range recent {
		d.RecentActivity[i] = RecentEntry{Entry: e}
		if e.ItemID != nil {
			d.RecentActivity[i].ItemName = names[*e.ItemID]
		}
	}

	return d, nil
}

// visibleTo drops the sections actor has no view permission for.
func visibleTo(d Dashboard, actor domain.Actor) Dashboard {
	canRaw := actor.Can(domain.Permission{Module: domain.ModuleRawMaterials, Action: domain.ActionView})
	canFinished := actor.Can(domain.Permission{Module: domain.ModuleFinishedGoods, Action: domain.ActionView})

	if !canRaw {
		d.RawMaterials = nil
	}
	if !canFinished {
		d.FinishedGoods = nil
	}

	alerts := make([]LowStockAlert, 0, len(d.LowStock))
	for _, a := range d.LowStock {
		if (a.Kind == domain.ItemKindRawMaterial && canRaw) || (a.Kind == domain.ItemKindFinishedGood && canFinished) {
			alerts = append(alerts, a)
		}
	}
	d.LowStock = alerts

	if !actor.Can(domain.Permission{Module: domain.ModuleStockLogs, Action: domain.ActionView}) {
		d.RecentActivity = nil
	}
	return d
}
