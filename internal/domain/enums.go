package domain

// ItemKind distinguishes the two inventory item variants.
type ItemKind string

const (
	ItemKindRawMaterial  ItemKind = "raw_material"
	ItemKindFinishedGood ItemKind = "finished_good"
)

func (k ItemKind) String() string { return string(k) }

func (k ItemKind) IsValid() bool {
	switch k {
	case ItemKindRawMaterial, ItemKindFinishedGood:
		return true
	}
	return false
}

// Module returns the permission module that governs items of this kind.
func (k ItemKind) Module() Module {
	if k == ItemKindFinishedGood {
		return ModuleFinishedGoods
	}
	return ModuleRawMaterials
}

// ActivityType is the kind of stock movement recorded in the ledger.
type ActivityType string

const (
	ActivityAdd      ActivityType = "Add"
	ActivityUse      ActivityType = "Use"
	ActivityConvert  ActivityType = "Convert"
	ActivityDispatch ActivityType = "Dispatch"
	ActivityWastage  ActivityType = "Wastage"
	// ActivityRemoved is written when an item is deleted so that replaying
	// the ledger still ends at the removed balance.
	ActivityRemoved ActivityType = "Removed"
)

// MutationActivities are the activity types a caller may request through
// the mutation service. Removed is reserved for item deletion.
var MutationActivities = []ActivityType{
	ActivityAdd, ActivityUse, ActivityConvert, ActivityDispatch, ActivityWastage,
}

func (a ActivityType) String() string { return string(a) }

func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityAdd, ActivityUse, ActivityConvert, ActivityDispatch, ActivityWastage, ActivityRemoved:
		return true
	}
	return false
}

// IsDepleting reports whether the activity decreases the item balance.
func (a ActivityType) IsDepleting() bool {
	switch a {
	case ActivityUse, ActivityConvert, ActivityDispatch, ActivityWastage, ActivityRemoved:
		return true
	}
	return false
}

// Sign returns +1 for balance-increasing activities and -1 for depleting ones.
func (a ActivityType) Sign() int64 {
	if a.IsDepleting() {
		return -1
	}
	return 1
}

// MaterialType classifies raw materials.
type MaterialType string

const (
	MaterialPaper         MaterialType = "Paper"
	MaterialStitchingWire MaterialType = "StitchingWire"
	MaterialGumPowder     MaterialType = "GumPowder"
)

func (m MaterialType) String() string { return string(m) }

func (m MaterialType) IsValid() bool {
	switch m {
	case MaterialPaper, MaterialStitchingWire, MaterialGumPowder:
		return true
	}
	return false
}

// MaterialForm is the physical form of a paper raw material.
type MaterialForm string

const (
	MaterialFormReel  MaterialForm = "Reel"
	MaterialFormSheet MaterialForm = "Sheet"
)

func (f MaterialForm) String() string { return string(f) }

func (f MaterialForm) IsValid() bool {
	switch f {
	case MaterialFormReel, MaterialFormSheet:
		return true
	}
	return false
}

// Role is an actor's account role.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }
