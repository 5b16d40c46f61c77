package enums

import "fmt"

// Warehouse maps to the warehouse_site enum in Postgres. The set of sites is
// fixed per deployment; storage addresses always name one of these.
type Warehouse string

const (
	WarehouseMain  Warehouse = "main"
	WarehouseAnnex Warehouse = "annex"
	WarehouseEast  Warehouse = "east"
	WarehouseWest  Warehouse = "west"
	WarehouseVault Warehouse = "vault"
)

var validWarehouses = []Warehouse{
	WarehouseMain,
	WarehouseAnnex,
	WarehouseEast,
	WarehouseWest,
	WarehouseVault,
}

// Warehouses returns the configured sites in declaration order.
func Warehouses() []Warehouse {
	return append([]Warehouse{}, validWarehouses...)
}

// String implements fmt.Stringer.
func (w Warehouse) String() string {
	return string(w)
}

// IsValid reports whether the value matches the canonical warehouse_site enum.
func (w Warehouse) IsValid() bool {
	for _, candidate := range validWarehouses {
		if candidate == w {
			return true
		}
	}
	return false
}

// ParseWarehouse converts raw input into Warehouse.
func ParseWarehouse(value string) (Warehouse, error) {
	for _, candidate := range validWarehouses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid warehouse %q", value)
}
