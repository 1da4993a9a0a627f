package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

// itemRow mirrors one inventory_items row. Kind-specific columns are nullable.
type itemRow struct {
	ID       uuid.UUID       `db:"id"`
	Kind     string          `db:"kind"`
	Name     string          `db:"name"`
	Quantity int64           `db:"quantity"`
	WeightKg decimal.Decimal `db:"weight_kg"`

	MaterialType  *string             `db:"material_type"`
	MaterialForm  *string             `db:"material_form"`
	GSM           *int                `db:"gsm"`
	BF            *int                `db:"bf"`
	SizeWidthCm   decimal.NullDecimal `db:"size_width_cm"`
	RatePerKg     decimal.NullDecimal `db:"rate_per_kg"`
	SupplierID    *uuid.UUID          `db:"supplier_id"`
	InvoiceNumber *string             `db:"invoice_number"`

	CustomerID   *uuid.UUID          `db:"customer_id"`
	LengthCm     decimal.NullDecimal `db:"length_cm"`
	WidthCm      decimal.NullDecimal `db:"width_cm"`
	HeightCm     decimal.NullDecimal `db:"height_cm"`
	NumberOfPly  *int                `db:"number_of_ply"`
	UnitWeightKg decimal.NullDecimal `db:"unit_weight_kg"`
	RatePerPiece decimal.NullDecimal `db:"rate_per_piece"`

	CreatedBy uuid.UUID `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r itemRow) toDomain() domain.InventoryItem {
	item := domain.InventoryItem{
		ID:        r.ID,
		Kind:      domain.ItemKind(r.Kind),
		Name:      r.Name,
		Balance:   domain.Balance{Quantity: r.Quantity, WeightKg: r.WeightKg},
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	switch item.Kind {
	case domain.ItemKindRawMaterial:
		attrs := &domain.RawMaterialAttrs{
			GSM:           r.GSM,
			BF:            r.BF,
			SizeWidthCm:   r.SizeWidthCm,
			RatePerKg:     r.RatePerKg,
			SupplierID:    r.SupplierID,
			InvoiceNumber: r.InvoiceNumber,
		}
		if r.MaterialType != nil {
			attrs.Type = domain.MaterialType(*r.MaterialType)
		}
		if r.MaterialForm != nil {
			f := domain.MaterialForm(*r.MaterialForm)
			attrs.Form = &f
		}
		item.RawMaterial = attrs
	case domain.ItemKindFinishedGood:
		item.FinishedGood = &domain.FinishedGoodAttrs{
			CustomerID:   r.CustomerID,
			LengthCm:     r.LengthCm,
			WidthCm:      r.WidthCm,
			HeightCm:     r.HeightCm,
			NumberOfPly:  r.NumberOfPly,
			UnitWeightKg: r.UnitWeightKg.Decimal,
			RatePerPiece: r.RatePerPiece,
		}
	}

	return item
}

func fromDomain(it *domain.InventoryItem) itemRow {
	row := itemRow{
		ID:        it.ID,
		Kind:      string(it.Kind),
		Name:      it.Name,
		Quantity:  it.Balance.Quantity,
		WeightKg:  it.Balance.WeightKg,
		CreatedBy: it.CreatedBy,
	}

	if rm := it.RawMaterial; rm != nil {
		t := string(rm.Type)
		row.MaterialType = &t
		if rm.Form != nil {
			f := string(*rm.Form)
			row.MaterialForm = &f
		}
		row.GSM = rm.GSM
		row.BF = rm.BF
		row.SizeWidthCm = rm.SizeWidthCm
		row.RatePerKg = rm.RatePerKg
		row.SupplierID = rm.SupplierID
		row.InvoiceNumber = rm.InvoiceNumber
	}

	if fg := it.FinishedGood; fg != nil {
		row.CustomerID = fg.CustomerID
		row.LengthCm = fg.LengthCm
		row.WidthCm = fg.WidthCm
		row.HeightCm = fg.HeightCm
		row.NumberOfPly = fg.NumberOfPly
		row.UnitWeightKg = decimal.NewNullDecimal(fg.UnitWeightKg)
		row.RatePerPiece = fg.RatePerPiece
	}

	return row
}
