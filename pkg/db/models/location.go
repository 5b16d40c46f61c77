package models

import (
	"fmt"

	"github.com/galleryops/artstore-backend/pkg/enums"
)

// Physical bounds of the storage grid. Every shelf holds MaxBox boxes and
// every box holds MaxFolder folders.
const (
	MinLevel  = 1
	MaxFloor  = 3
	MaxShelf  = 30
	MaxBox    = 10
	MaxFolder = 5
)

// Location is the five-level storage address of an artwork. A zero level
// means unset; persisted artwork locations must always be complete.
type Location struct {
	Warehouse enums.Warehouse `gorm:"column:warehouse;type:warehouse_site;not null" json:"warehouse"`
	Floor     int             `gorm:"column:floor;not null" json:"floor"`
	Shelf     int             `gorm:"column:shelf;not null" json:"shelf"`
	Box       int             `gorm:"column:box;not null" json:"box"`
	Folder    int             `gorm:"column:folder;not null" json:"folder"`
}

// Validate checks that the location is complete and inside the storage grid.
func (l Location) Validate() error {
	if !l.Warehouse.IsValid() {
		return fmt.Errorf("invalid warehouse %q", l.Warehouse)
	}
	if l.Floor < MinLevel || l.Floor > MaxFloor {
		return fmt.Errorf("floor %d out of range [%d,%d]", l.Floor, MinLevel, MaxFloor)
	}
	if l.Shelf < MinLevel || l.Shelf > MaxShelf {
		return fmt.Errorf("shelf %d out of range [%d,%d]", l.Shelf, MinLevel, MaxShelf)
	}
	if l.Box < MinLevel || l.Box > MaxBox {
		return fmt.Errorf("box %d out of range [%d,%d]", l.Box, MinLevel, MaxBox)
	}
	if l.Folder < MinLevel || l.Folder > MaxFolder {
		return fmt.Errorf("folder %d out of range [%d,%d]", l.Folder, MinLevel, MaxFolder)
	}
	return nil
}

// Equal reports whether both addresses point at the same folder.
func (l Location) Equal(other Location) bool {
	return l == other
}

// String renders the address in the warehouse/floor/shelf/box/folder form
// used in logs and movement summaries.
func (l Location) String() string {
	return fmt.Sprintf("%s/F%d/S%d/B%d/P%d", l.Warehouse, l.Floor, l.Shelf, l.Box, l.Folder)
}
