package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Module is an area of the application guarded by permissions.
type Module string

const (
	ModuleSuppliers     Module = "suppliers"
	ModuleMasterData    Module = "masterData"
	ModuleRawMaterials  Module = "rawMaterials"
	ModuleFinishedGoods Module = "finishedGoods"
	ModuleCustomers     Module = "customers"
	ModuleStockLogs     Module = "stockLogs"
	ModuleWastageSales  Module = "wastageSales"
)

func (m Module) String() string { return string(m) }

// Action is an operation within a module.
type Action string

const (
	ActionView   Action = "view"
	ActionManage Action = "manage"
	ActionAdd    Action = "add"
	ActionModify Action = "modify"
	ActionDelete Action = "delete"
)

func (a Action) String() string { return string(a) }

// Permission is one {module, action} pair.
type Permission struct {
	Module Module
	Action Action
}

func (p Permission) String() string { return string(p.Module) + ":" + string(p.Action) }

var baseActions = []Action{ActionView, ActionManage}

var stockActions = []Action{ActionView, ActionManage, ActionAdd, ActionModify, ActionDelete}

// moduleActions enumerates every valid permission.
var moduleActions = map[Module][]Action{
	ModuleSuppliers:     baseActions,
	ModuleMasterData:    baseActions,
	ModuleRawMaterials:  stockActions,
	ModuleFinishedGoods: stockActions,
	ModuleCustomers:     baseActions,
	ModuleStockLogs:     baseActions,
	ModuleWastageSales:  baseActions,
}

// IsValid reports whether the pair exists in the permission catalogue.
func (p Permission) IsValid() bool {
	for _, a := range moduleActions[p.Module] {
		if a == p.Action {
			return true
		}
	}
	return false
}

// AllPermissions returns the full catalogue in a stable order.
func AllPermissions() []Permission {
	modules := make([]string, 0, len(moduleActions))
	for m := range moduleActions {
		modules = append(modules, string(m))
	}
	sort.Strings(modules)

	var out []Permission
	for _, m := range modules {
		for _, a := range moduleActions[Module(m)] {
			out = append(out, Permission{Module: Module(m), Action: a})
		}
	}
	return out
}

// PermissionMatrix holds the granted permissions of one actor. Pairs absent
// from the matrix are denied.
type PermissionMatrix struct {
	granted map[Permission]bool
}

// NewPermissionMatrix builds a matrix from explicit grants, rejecting pairs
// outside the catalogue.
func NewPermissionMatrix(grants ...Permission) (PermissionMatrix, error) {
	m := PermissionMatrix{granted: make(map[Permission]bool, len(grants))}
	var errs []FieldError
	for _, p := range grants {
		if !p.IsValid() {
			errs = append(errs, FieldError{Field: "permissions." + p.String(), Message: "unknown permission"})
			continue
		}
		m.granted[p] = true
	}
	if len(errs) > 0 {
		return PermissionMatrix{}, NewValidationErrors(errs)
	}
	return m, nil
}

// ParsePermissionMatrix decodes the stored JSON form
// {"rawMaterials": {"view": true, "add": false}, ...}. Unknown modules or
// actions are rejected so typos surface at load time.
func ParsePermissionMatrix(raw []byte) (PermissionMatrix, error) {
	if len(raw) == 0 {
		return PermissionMatrix{granted: map[Permission]bool{}}, nil
	}

	var doc map[string]map[string]bool
	if err := json.Unmarshal(raw, &doc); err != nil {
		return PermissionMatrix{}, NewValidationError("permissions", fmt.Sprintf("malformed: %v", err))
	}

	var grants []Permission
	var errs []FieldError
	for module, actions := range doc {
		if _, ok := moduleActions[Module(module)]; !ok {
			errs = append(errs, FieldError{Field: "permissions." + module, Message: "unknown module"})
			continue
		}
		for action, allowed := range actions {
			p := Permission{Module: Module(module), Action: Action(action)}
			if !p.IsValid() {
				errs = append(errs, FieldError{Field: "permissions." + p.String(), Message: "unknown action"})
				continue
			}
			if allowed {
				grants = append(grants, p)
			}
		}
	}
	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
		return PermissionMatrix{}, NewValidationErrors(errs)
	}

	return NewPermissionMatrix(grants...)
}

// Allows reports whether p is granted.
func (m PermissionMatrix) Allows(p Permission) bool {
	return m.granted[p]
}

// MarshalJSON renders the matrix in the stored nested form.
func (m PermissionMatrix) MarshalJSON() ([]byte, error) {
	doc := make(map[string]map[string]bool)
	for p, ok := range m.granted {
		if !ok {
			continue
		}
		if doc[string(p.Module)] == nil {
			doc[string(p.Module)] = make(map[string]bool)
		}
		doc[string(p.Module)][string(p.Action)] = true
	}
	return json.Marshal(doc)
}

// PermissionFor returns the permission an activity requires on items of kind.
func PermissionFor(kind ItemKind, activity ActivityType) Permission {
	module := kind.Module()
	switch activity {
	case ActivityAdd:
		return Permission{Module: module, Action: ActionAdd}
	case ActivityRemoved:
		return Permission{Module: module, Action: ActionDelete}
	default:
		return Permission{Module: module, Action: ActionModify}
	}
}
