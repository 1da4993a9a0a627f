package rest

import (
	"net/http"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

// APIPrefix is the path prefix of all routes except health checks.
const APIPrefix = "/api/v1"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Health  *HealthHandler
	Stock   *StockHandler
	Summary *SummaryHandler
	Parties *PartyHandler
}

// Wrappers are applied by NewRouter. Global wraps every route and must
// place request ids, recovery, CORS and authentication before logging.
// Writes wraps mutating routes only. Loaders wraps routes that render
// item names.
type Wrappers struct {
	Global  func(http.Handler) http.Handler
	Writes  func(http.Handler) http.Handler
	Loaders func(http.Handler) http.Handler
}

// NewRouter mounts the health checks at the root and everything else under
// APIPrefix.
func NewRouter(h Handlers, wrap Wrappers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	api := func(method, path string) string { return method + " " + APIPrefix + path }
	writes := orIdentity(wrap.Writes)
	loaders := orIdentity(wrap.Loaders)

	mux.HandleFunc(api("GET", "/items"), h.Stock.ListItems)
	mux.HandleFunc(api("GET", "/items/{id}"), h.Stock.GetItem)
	mux.Handle(api("POST", "/items"), writes(http.HandlerFunc(h.Stock.CreateItem)))
	mux.Handle(api("POST", "/items/{id}/mutations"), writes(http.HandlerFunc(h.Stock.Mutate)))
	mux.Handle(api("DELETE", "/items/{id}"), writes(http.HandlerFunc(h.Stock.RemoveItem)))

	mux.HandleFunc(api("GET", "/wastage-sales"), h.Stock.ListWastageSales)
	mux.Handle(api("POST", "/wastage-sales"), writes(http.HandlerFunc(h.Stock.RecordWastageSale)))

	mux.Handle(api("GET", "/suppliers"), h.Parties.List(domain.PartySupplier))
	mux.Handle(api("POST", "/suppliers"), writes(h.Parties.Create(domain.PartySupplier)))
	mux.Handle(api("GET", "/customers"), h.Parties.List(domain.PartyCustomer))
	mux.Handle(api("POST", "/customers"), writes(h.Parties.Create(domain.PartyCustomer)))

	mux.Handle(api("GET", "/ledger"), loaders(http.HandlerFunc(h.Stock.History)))

	mux.HandleFunc(api("GET", "/summary/finished-goods"), h.Summary.FinishedGoods)
	mux.HandleFunc(api("GET", "/summary/raw-materials"), h.Summary.RawMaterials)
	mux.HandleFunc(api("GET", "/summary/wastage"), h.Summary.Wastage)
	mux.HandleFunc(api("GET", "/summary/activity"), h.Summary.Activity)
	mux.HandleFunc(api("GET", "/dashboard"), h.Summary.Dashboard)

	return orIdentity(wrap.Global)(mux)
}

func orIdentity(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return mw
}
