package domain

import (
	"time"

	"github.com/google/uuid"
)

// PartyKind tells suppliers of raw material from customers that boxes are
// made for. Both share one shape.
type PartyKind string

const (
	PartySupplier PartyKind = "supplier"
	PartyCustomer PartyKind = "customer"
)

func (k PartyKind) IsValid() bool {
	return k == PartySupplier || k == PartyCustomer
}

// Module returns the permission module that guards parties of this kind.
func (k PartyKind) Module() Module {
	if k == PartySupplier {
		return ModuleSuppliers
	}
	return ModuleCustomers
}

// UnknownCustomer labels finished goods whose customer is unset or gone.
const UnknownCustomer = "Unknown Customer"

// Party is a supplier or customer record. Names are unique per kind.
type Party struct {
	ID            uuid.UUID
	Kind          PartyKind
	Name          string
	Email         *string
	ContactPerson *string
	Address       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
