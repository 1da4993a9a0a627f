package rest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

// rawMaterialDTO and finishedGoodDTO mirror the domain attribute structs
// field for field so they convert with a plain type conversion.
type rawMaterialDTO struct {
	Type          domain.MaterialType  `json:"type"`
	Form          *domain.MaterialForm `json:"form"`
	GSM           *int                 `json:"gsm"`
	BF            *int                 `json:"bf"`
	SizeWidthCm   decimal.NullDecimal  `json:"size_width_cm"`
	RatePerKg     decimal.NullDecimal  `json:"rate_per_kg"`
	SupplierID    *uuid.UUID           `json:"supplier_id"`
	InvoiceNumber *string              `json:"invoice_number"`
}

type finishedGoodDTO struct {
	CustomerID   *uuid.UUID          `json:"customer_id"`
	LengthCm     decimal.NullDecimal `json:"length_cm"`
	WidthCm      decimal.NullDecimal `json:"width_cm"`
	HeightCm     decimal.NullDecimal `json:"height_cm"`
	NumberOfPly  *int                `json:"number_of_ply"`
	UnitWeightKg decimal.Decimal     `json:"unit_weight_kg"`
	RatePerPiece decimal.NullDecimal `json:"rate_per_piece"`
}

type itemResponse struct {
	ID           uuid.UUID        `json:"id"`
	Kind         domain.ItemKind  `json:"kind"`
	Name         string           `json:"name"`
	Balance      domain.Balance   `json:"balance"`
	RawMaterial  *rawMaterialDTO  `json:"raw_material,omitempty"`
	FinishedGood *finishedGoodDTO `json:"finished_good,omitempty"`
	CreatedBy    uuid.UUID        `json:"created_by"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func toItemResponse(it *domain.InventoryItem) itemResponse {
	resp := itemResponse{
		ID:        it.ID,
		Kind:      it.Kind,
		Name:      it.Name,
		Balance:   it.Balance,
		CreatedBy: it.CreatedBy,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
	if it.RawMaterial != nil {
		rm := rawMaterialDTO(*it.RawMaterial)
		resp.RawMaterial = &rm
	}
	if it.FinishedGood != nil {
		fg := finishedGoodDTO(*it.FinishedGood)
		resp.FinishedGood = &fg
	}
	return resp
}

func toItemResponses(items []domain.InventoryItem) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for i := range items {
		out = append(out, toItemResponse(&items[i]))
	}
	return out
}

type mutationRequest struct {
	Activity      domain.ActivityType `json:"activity"`
	Quantity      int64               `json:"quantity"`
	WeightKg      decimal.Decimal     `json:"weight_kg"`
	Notes         *string             `json:"notes"`
	ConvertTarget *string             `json:"convert_target"`
}

// createItemRequest is the first Add of a new item. ID lets clients retry
// a creation without producing a duplicate.
type createItemRequest struct {
	ID           *uuid.UUID       `json:"id"`
	Kind         domain.ItemKind  `json:"kind"`
	Name         string           `json:"name"`
	Quantity     int64            `json:"quantity"`
	WeightKg     decimal.Decimal  `json:"weight_kg"`
	Notes        *string          `json:"notes"`
	RawMaterial  *rawMaterialDTO  `json:"raw_material"`
	FinishedGood *finishedGoodDTO `json:"finished_good"`
}

type mutationResponse struct {
	Item  itemResponse       `json:"item"`
	Entry domain.LedgerEntry `json:"entry"`
}

type removeItemRequest struct {
	Notes *string `json:"notes"`
}

// wastageSaleRequest.Date is YYYY-MM-DD; empty means today.
type wastageSaleRequest struct {
	Date            string          `json:"date"`
	ItemDescription string          `json:"item_description"`
	Quantity        int64           `json:"quantity"`
	WeightKg        decimal.Decimal `json:"weight_kg"`
	SaleAmount      decimal.Decimal `json:"sale_amount"`
	Notes           *string         `json:"notes"`
}

type wastageSaleResponse struct {
	ID              uuid.UUID       `json:"id"`
	Date            string          `json:"date"`
	ItemDescription string          `json:"item_description"`
	Quantity        int64           `json:"quantity"`
	WeightKg        decimal.Decimal `json:"weight_kg"`
	SaleAmount      decimal.Decimal `json:"sale_amount"`
	Notes           *string         `json:"notes"`
	ActorID         uuid.UUID       `json:"actor_id"`
	CreatedAt       time.Time       `json:"created_at"`
}

func toWastageSaleResponse(s domain.WastageSale) wastageSaleResponse {
	return wastageSaleResponse{
		ID:              s.ID,
		Date:            s.Date.Format(time.DateOnly),
		ItemDescription: s.ItemDescription,
		Quantity:        s.Quantity,
		WeightKg:        s.WeightKg,
		SaleAmount:      s.SaleAmount,
		Notes:           s.Notes,
		ActorID:         s.ActorID,
		CreatedAt:       s.CreatedAt,
	}
}

// ledgerEntryResponse adds the item's current name. ItemName is empty for
// standalone entries and for items that have since been removed.
type ledgerEntryResponse struct {
	domain.LedgerEntry
	ItemName string `json:"item_name,omitempty"`
}

type partyRequest struct {
	Name          string  `json:"name"`
	Email         *string `json:"email"`
	ContactPerson *string `json:"contact_person"`
	Address       *string `json:"address"`
}

type partyResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         *string   `json:"email"`
	ContactPerson *string   `json:"contact_person"`
	Address       *string   `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toPartyResponse(p domain.Party) partyResponse {
	return partyResponse{
		ID:            p.ID,
		Name:          p.Name,
		Email:         p.Email,
		ContactPerson: p.ContactPerson,
		Address:       p.Address,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
