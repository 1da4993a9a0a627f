package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
	"github.com/heartmarshall/boxstock-backend/internal/service/party"
	"github.com/heartmarshall/boxstock-backend/internal/service/stock"
	"github.com/heartmarshall/boxstock-backend/internal/service/summary"
)

var _ stockService = &stockServiceMock{}

type stockServiceMock struct {
	ApplyMutationFunc     func(ctx context.Context, input stock.MutationInput) (*stock.MutationResult, error)
	RemoveItemFunc        func(ctx context.Context, input stock.RemoveItemInput) (*domain.LedgerEntry, error)
	GetItemFunc           func(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	ListItemsFunc         func(ctx context.Context, kind domain.ItemKind) ([]domain.InventoryItem, error)
	RecordWastageSaleFunc func(ctx context.Context, input stock.WastageSaleInput) (*stock.WastageSaleResult, error)
	ListWastageSalesFunc  func(ctx context.Context, f domain.WastageFilter) ([]domain.WastageSale, error)
	HistoryFunc           func(ctx context.Context, f domain.LedgerFilter, limit int) ([]domain.LedgerEntry, error)

	calls struct {
		ApplyMutation []struct {
			Ctx   context.Context
			Input stock.MutationInput
		}
		RemoveItem []struct {
			Ctx   context.Context
			Input stock.RemoveItemInput
		}
		GetItem []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListItems []struct {
			Ctx  context.Context
			Kind domain.ItemKind
		}
		RecordWastageSale []struct {
			Ctx   context.Context
			Input stock.WastageSaleInput
		}
		ListWastageSales []struct {
			Ctx context.Context
			F   domain.WastageFilter
		}
		History []struct {
			Ctx   context.Context
			F     domain.LedgerFilter
			Limit int
		}
	}
	lockApplyMutation     sync.RWMutex
	lockRemoveItem        sync.RWMutex
	lockGetItem           sync.RWMutex
	lockListItems         sync.RWMutex
	lockRecordWastageSale sync.RWMutex
	lockListWastageSales  sync.RWMutex
	lockHistory           sync.RWMutex
}

func (mock *stockServiceMock) ApplyMutation(ctx context.Context, input stock.MutationInput) (*stock.MutationResult, error) {
	if mock.ApplyMutationFunc == nil {
		panic("stockServiceMock.ApplyMutationFunc: method is nil but stockService.ApplyMutation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input stock.MutationInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockApplyMutation.Lock()
	mock.calls.ApplyMutation = append(mock.calls.ApplyMutation, callInfo)
	mock.lockApplyMutation.Unlock()
	return mock.ApplyMutationFunc(ctx, input)
}

func (mock *stockServiceMock) ApplyMutationCalls() []struct {
	Ctx   context.Context
	Input stock.MutationInput
} {
	mock.lockApplyMutation.RLock()
	calls := mock.calls.ApplyMutation
	mock.lockApplyMutation.RUnlock()
	return calls
}

func (mock *stockServiceMock) RemoveItem(ctx context.Context, input stock.RemoveItemInput) (*domain.LedgerEntry, error) {
	if mock.RemoveItemFunc == nil {
		panic("stockServiceMock.RemoveItemFunc: method is nil but stockService.RemoveItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input stock.RemoveItemInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRemoveItem.Lock()
	mock.calls.RemoveItem = append(mock.calls.RemoveItem, callInfo)
	mock.lockRemoveItem.Unlock()
	return mock.RemoveItemFunc(ctx, input)
}

func (mock *stockServiceMock) RemoveItemCalls() []struct {
	Ctx   context.Context
	Input stock.RemoveItemInput
} {
	mock.lockRemoveItem.RLock()
	calls := mock.calls.RemoveItem
	mock.lockRemoveItem.RUnlock()
	return calls
}

func (mock *stockServiceMock) GetItem(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	if mock.GetItemFunc == nil {
		panic("stockServiceMock.GetItemFunc: method is nil but stockService.GetItem was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetItem.Lock()
	mock.calls.GetItem = append(mock.calls.GetItem, callInfo)
	mock.lockGetItem.Unlock()
	return mock.GetItemFunc(ctx, id)
}

func (mock *stockServiceMock) GetItemCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetItem.RLock()
	calls := mock.calls.GetItem
	mock.lockGetItem.RUnlock()
	return calls
}

func (mock *stockServiceMock) ListItems(ctx context.Context, kind domain.ItemKind) ([]domain.InventoryItem, error) {
	if mock.ListItemsFunc == nil {
		panic("stockServiceMock.ListItemsFunc: method is nil but stockService.ListItems was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.ItemKind
	}{
		Ctx:  ctx,
		Kind: kind,
	}
	mock.lockListItems.Lock()
	mock.calls.ListItems = append(mock.calls.ListItems, callInfo)
	mock.lockListItems.Unlock()
	return mock.ListItemsFunc(ctx, kind)
}

func (mock *stockServiceMock) ListItemsCalls() []struct {
	Ctx  context.Context
	Kind domain.ItemKind
} {
	mock.lockListItems.RLock()
	calls := mock.calls.ListItems
	mock.lockListItems.RUnlock()
	return calls
}

func (mock *stockServiceMock) RecordWastageSale(ctx context.Context, input stock.WastageSaleInput) (*stock.WastageSaleResult, error) {
	if mock.RecordWastageSaleFunc == nil {
		panic("stockServiceMock.RecordWastageSaleFunc: method is nil but stockService.RecordWastageSale was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input stock.WastageSaleInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRecordWastageSale.Lock()
	mock.calls.RecordWastageSale = append(mock.calls.RecordWastageSale, callInfo)
	mock.lockRecordWastageSale.Unlock()
	return mock.RecordWastageSaleFunc(ctx, input)
}

func (mock *stockServiceMock) RecordWastageSaleCalls() []struct {
	Ctx   context.Context
	Input stock.WastageSaleInput
} {
	mock.lockRecordWastageSale.RLock()
	calls := mock.calls.RecordWastageSale
	mock.lockRecordWastageSale.RUnlock()
	return calls
}

func (mock *stockServiceMock) ListWastageSales(ctx context.Context, f domain.WastageFilter) ([]domain.WastageSale, error) {
	if mock.ListWastageSalesFunc == nil {
		panic("stockServiceMock.ListWastageSalesFunc: method is nil but stockService.ListWastageSales was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.WastageFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockListWastageSales.Lock()
	mock.calls.ListWastageSales = append(mock.calls.ListWastageSales, callInfo)
	mock.lockListWastageSales.Unlock()
	return mock.ListWastageSalesFunc(ctx, f)
}

func (mock *stockServiceMock) ListWastageSalesCalls() []struct {
	Ctx context.Context
	F   domain.WastageFilter
} {
	mock.lockListWastageSales.RLock()
	calls := mock.calls.ListWastageSales
	mock.lockListWastageSales.RUnlock()
	return calls
}

func (mock *stockServiceMock) History(ctx context.Context, f domain.LedgerFilter, limit int) ([]domain.LedgerEntry, error) {
	if mock.HistoryFunc == nil {
		panic("stockServiceMock.HistoryFunc: method is nil but stockService.History was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		F     domain.LedgerFilter
		Limit int
	}{
		Ctx:   ctx,
		F:     f,
		Limit: limit,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, f, limit)
}

func (mock *stockServiceMock) HistoryCalls() []struct {
	Ctx   context.Context
	F     domain.LedgerFilter
	Limit int
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

var _ summaryService = &summaryServiceMock{}

type summaryServiceMock struct {
	FinishedGoodsSummaryFunc func(ctx context.Context) ([]summary.Group[summary.FinishedGoodKey], error)
	RawMaterialsSummaryFunc  func(ctx context.Context) (*summary.RawMaterialsReport, error)
	WastageSummaryFunc       func(ctx context.Context, f domain.WastageFilter) (summary.WastageReport, error)
	ActivityCountsFunc       func(ctx context.Context, f domain.LedgerFilter) ([]domain.ActivityCount, error)
	DashboardFunc            func(ctx context.Context) (*summary.Dashboard, error)

	calls struct {
		FinishedGoodsSummary []struct {
			Ctx context.Context
		}
		RawMaterialsSummary []struct {
			Ctx context.Context
		}
		WastageSummary []struct {
			Ctx context.Context
			F   domain.WastageFilter
		}
		ActivityCounts []struct {
			Ctx context.Context
			F   domain.LedgerFilter
		}
		Dashboard []struct {
			Ctx context.Context
		}
	}
	lockFinishedGoodsSummary sync.RWMutex
	lockRawMaterialsSummary  sync.RWMutex
	lockWastageSummary       sync.RWMutex
	lockActivityCounts       sync.RWMutex
	lockDashboard            sync.RWMutex
}

func (mock *summaryServiceMock) FinishedGoodsSummary(ctx context.Context) ([]summary.Group[summary.FinishedGoodKey], error) {
	if mock.FinishedGoodsSummaryFunc == nil {
		panic("summaryServiceMock.FinishedGoodsSummaryFunc: method is nil but summaryService.FinishedGoodsSummary was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockFinishedGoodsSummary.Lock()
	mock.calls.FinishedGoodsSummary = append(mock.calls.FinishedGoodsSummary, callInfo)
	mock.lockFinishedGoodsSummary.Unlock()
	return mock.FinishedGoodsSummaryFunc(ctx)
}

func (mock *summaryServiceMock) FinishedGoodsSummaryCalls() []struct {
	Ctx context.Context
} {
	mock.lockFinishedGoodsSummary.RLock()
	calls := mock.calls.FinishedGoodsSummary
	mock.lockFinishedGoodsSummary.RUnlock()
	return calls
}

func (mock *summaryServiceMock) RawMaterialsSummary(ctx context.Context) (*summary.RawMaterialsReport, error) {
	if mock.RawMaterialsSummaryFunc == nil {
		panic("summaryServiceMock.RawMaterialsSummaryFunc: method is nil but summaryService.RawMaterialsSummary was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockRawMaterialsSummary.Lock()
	mock.calls.RawMaterialsSummary = append(mock.calls.RawMaterialsSummary, callInfo)
	mock.lockRawMaterialsSummary.Unlock()
	return mock.RawMaterialsSummaryFunc(ctx)
}

func (mock *summaryServiceMock) RawMaterialsSummaryCalls() []struct {
	Ctx context.Context
} {
	mock.lockRawMaterialsSummary.RLock()
	calls := mock.calls.RawMaterialsSummary
	mock.lockRawMaterialsSummary.RUnlock()
	return calls
}

func (mock *summaryServiceMock) WastageSummary(ctx context.Context, f domain.WastageFilter) (summary.WastageReport, error) {
	if mock.WastageSummaryFunc == nil {
		panic("summaryServiceMock.WastageSummaryFunc: method is nil but summaryService.WastageSummary was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.WastageFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockWastageSummary.Lock()
	mock.calls.WastageSummary = append(mock.calls.WastageSummary, callInfo)
	mock.lockWastageSummary.Unlock()
	return mock.WastageSummaryFunc(ctx, f)
}

func (mock *summaryServiceMock) WastageSummaryCalls() []struct {
	Ctx context.Context
	F   domain.WastageFilter
} {
	mock.lockWastageSummary.RLock()
	calls := mock.calls.WastageSummary
	mock.lockWastageSummary.RUnlock()
	return calls
}

func (mock *summaryServiceMock) ActivityCounts(ctx context.Context, f domain.LedgerFilter) ([]domain.ActivityCount, error) {
	if mock.ActivityCountsFunc == nil {
		panic("summaryServiceMock.ActivityCountsFunc: method is nil but summaryService.ActivityCounts was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.LedgerFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockActivityCounts.Lock()
	mock.calls.ActivityCounts = append(mock.calls.ActivityCounts, callInfo)
	mock.lockActivityCounts.Unlock()
	return mock.ActivityCountsFunc(ctx, f)
}

func (mock *summaryServiceMock) ActivityCountsCalls() []struct {
	Ctx context.Context
	F   domain.LedgerFilter
} {
	mock.lockActivityCounts.RLock()
	calls := mock.calls.ActivityCounts
	mock.lockActivityCounts.RUnlock()
	return calls
}

func (mock *summaryServiceMock) Dashboard(ctx context.Context) (*summary.Dashboard, error) {
	if mock.DashboardFunc == nil {
		panic("summaryServiceMock.DashboardFunc: method is nil but summaryService.Dashboard was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockDashboard.Lock()
	mock.calls.Dashboard = append(mock.calls.Dashboard, callInfo)
	mock.lockDashboard.Unlock()
	return mock.DashboardFunc(ctx)
}

func (mock *summaryServiceMock) DashboardCalls() []struct {
	Ctx context.Context
} {
	mock.lockDashboard.RLock()
	calls := mock.calls.Dashboard
	mock.lockDashboard.RUnlock()
	return calls
}

var _ partyService = &partyServiceMock{}

type partyServiceMock struct {
	CreateFunc func(ctx context.Context, kind domain.PartyKind, input party.CreateInput) (domain.Party, error)
	ListFunc   func(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Kind  domain.PartyKind
			Input party.CreateInput
		}
		List []struct {
			Ctx  context.Context
			Kind domain.PartyKind
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *partyServiceMock) Create(ctx context.Context, kind domain.PartyKind, input party.CreateInput) (domain.Party, error) {
	if mock.CreateFunc == nil {
		panic("partyServiceMock.CreateFunc: method is nil but partyService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Kind  domain.PartyKind
		Input party.CreateInput
	}{
		Ctx:   ctx,
		Kind:  kind,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, kind, input)
}

func (mock *partyServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Kind  domain.PartyKind
	Input party.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *partyServiceMock) List(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	if mock.ListFunc == nil {
		panic("partyServiceMock.ListFunc: method is nil but partyService.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.PartyKind
	}{
		Ctx:  ctx,
		Kind: kind,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, kind)
}

func (mock *partyServiceMock) ListCalls() []struct {
	Ctx  context.Context
	Kind domain.PartyKind
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
