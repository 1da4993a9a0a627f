package stock

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

// maxWeightKg is the largest weight a NUMERIC(14,2) column holds.
var maxWeightKg = decimal.RequireFromString("999999999999.99")

// MutationInput requests one balance change on an item.
type MutationInput struct {
	ItemID   uuid.UUID
	Activity domain.ActivityType
	Quantity int64
	WeightKg decimal.Decimal
	Notes    *string

	// NewItem describes the item to create when an Add targets an unknown id.
	NewItem *NewItemInput

	// ConvertTarget names what a Convert produced; it becomes the default note.
	ConvertTarget *string
}

// NewItemInput describes an item created by its first Add.
type NewItemInput struct {
	Kind         domain.ItemKind
	Name         string
	RawMaterial  *domain.RawMaterialAttrs
	FinishedGood *domain.FinishedGoodAttrs
}

// Validate checks all fields and collects all errors.
func (i MutationInput) Validate() error {
	var errs []domain.FieldError

	if !isMutationActivity(i.Activity) {
		errs = append(errs, domain.FieldError{Field: "activity", Message: "must be one of Add, Use, Convert, Dispatch, Wastage"})
	}
	if i.ItemID == uuid.Nil && i.NewItem == nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be >= 0"})
	}
	errs = append(errs, validateWeight("weight_kg", i.WeightKg)...)
	if i.Quantity == 0 && i.WeightKg.IsZero() {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "quantity or weight must be positive"})
	}
	if i.Notes != nil && len(*i.Notes) > MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 500 characters"})
	}

	if i.NewItem != nil {
		if i.Activity != domain.ActivityAdd {
			errs = append(errs, domain.FieldError{Field: "new_item", Message: "only allowed with Add"})
		} else {
			errs = append(errs, i.NewItem.validate()...)
		}
	}
	if i.ConvertTarget != nil && i.Activity != domain.ActivityConvert {
		errs = append(errs, domain.FieldError{Field: "convert_target", Message: "only allowed with Convert"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (n NewItemInput) validate() []domain.FieldError {
	var errs []domain.FieldError

	name := strings.TrimSpace(n.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "new_item.name", Message: "required"})
	}
	if len(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "new_item.name", Message: "max 200 characters"})
	}

	switch n.Kind {
	case domain.ItemKindRawMaterial:
		if n.FinishedGood != nil {
			errs = append(errs, domain.FieldError{Field: "new_item.finished_good", Message: "not allowed for raw materials"})
		}
		rm := n.RawMaterial
		if rm == nil {
			errs = append(errs, domain.FieldError{Field: "new_item.raw_material", Message: "required"})
			break
		}
		if !rm.Type.IsValid() {
			errs = append(errs, domain.FieldError{Field: "new_item.raw_material.type", Message: "must be Paper, StitchingWire or GumPowder"})
		}
		if rm.Form != nil && !rm.Form.IsValid() {
			errs = append(errs, domain.FieldError{Field: "new_item.raw_material.form", Message: "must be Reel or Sheet"})
		}
		if rm.GSM != nil && *rm.GSM <= 0 {
			errs = append(errs, domain.FieldError{Field: "new_item.raw_material.gsm", Message: "must be > 0"})
		}
		if rm.BF != nil && *rm.BF <= 0 {
			errs = append(errs, domain.FieldError{Field: "new_item.raw_material.bf", Message: "must be > 0"})
		}
		if rm.RatePerKg.Valid && rm.RatePerKg.Decimal.IsNegative() {
			errs = append(errs, domain.FieldError{Field: "new_item.raw_material.rate_per_kg", Message: "must be >= 0"})
		}
	case domain.ItemKindFinishedGood:
		if n.RawMaterial != nil {
			errs = append(errs, domain.FieldError{Field: "new_item.raw_material", Message: "not allowed for finished goods"})
		}
		fg := n.FinishedGood
		if fg == nil {
			errs = append(errs, domain.FieldError{Field: "new_item.finished_good", Message: "required"})
			break
		}
		if !fg.UnitWeightKg.IsPositive() {
			errs = append(errs, domain.FieldError{Field: "new_item.finished_good.unit_weight_kg", Message: "must be > 0"})
		} else if !fg.UnitWeightKg.Equal(fg.UnitWeightKg.Round(2)) {
			errs = append(errs, domain.FieldError{Field: "new_item.finished_good.unit_weight_kg", Message: "at most 2 decimal places"})
		}
		if fg.NumberOfPly != nil && *fg.NumberOfPly <= 0 {
			errs = append(errs, domain.FieldError{Field: "new_item.finished_good.number_of_ply", Message: "must be > 0"})
		}
		if fg.RatePerPiece.Valid && fg.RatePerPiece.Decimal.IsNegative() {
			errs = append(errs, domain.FieldError{Field: "new_item.finished_good.rate_per_piece", Message: "must be >= 0"})
		}
	default:
		errs = append(errs, domain.FieldError{Field: "new_item.kind", Message: "must be raw_material or finished_good"})
	}

	return errs
}

// WastageSaleInput records a sale of scrap that is not tied to an item.
type WastageSaleInput struct {
	Date            time.Time // zero means today
	ItemDescription string
	Quantity        int64
	WeightKg        decimal.Decimal
	SaleAmount      decimal.Decimal
	Notes           *string
}

// Validate checks all fields and collects all errors.
func (i WastageSaleInput) Validate() error {
	var errs []domain.FieldError

	desc := strings.TrimSpace(i.ItemDescription)
	if desc == "" {
		errs = append(errs, domain.FieldError{Field: "item_description", Message: "required"})
	}
	if len(desc) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "item_description", Message: "max 200 characters"})
	}
	if i.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be >= 0"})
	}
	errs = append(errs, validateWeight("weight_kg", i.WeightKg)...)
	if i.WeightKg.IsZero() {
		errs = append(errs, domain.FieldError{Field: "weight_kg", Message: "must be > 0"})
	}
	if i.SaleAmount.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "sale_amount", Message: "must be >= 0"})
	} else if !i.SaleAmount.Equal(i.SaleAmount.Round(2)) {
		errs = append(errs, domain.FieldError{Field: "sale_amount", Message: "at most 2 decimal places"})
	}
	if i.Notes != nil && len(*i.Notes) > MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RemoveItemInput deletes an item and records its remaining balance.
type RemoveItemInput struct {
	ItemID uuid.UUID
	Notes  *string
}

// Validate checks all fields and collects all errors.
func (i RemoveItemInput) Validate() error {
	var errs []domain.FieldError
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Notes != nil && len(*i.Notes) > MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 500 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateWeight(field string, w decimal.Decimal) []domain.FieldError {
	switch {
	case w.IsNegative():
		return []domain.FieldError{{Field: field, Message: "must be >= 0"}}
	case !w.Equal(w.Round(2)):
		return []domain.FieldError{{Field: field, Message: "at most 2 decimal places"}}
	case w.GreaterThan(maxWeightKg):
		return []domain.FieldError{{Field: field, Message: "too large"}}
	}
	return nil
}

func isMutationActivity(a domain.ActivityType) bool {
	for _, m := range domain.MutationActivities {
		if a == m {
			return true
		}
	}
	return false
}
