package artwork

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/galleryops/artstore-backend/pkg/db/models"
	"github.com/galleryops/artstore-backend/pkg/enums"
)

// CreateArtworkInput holds the validated payload to register an artwork.
// When ID is empty the service generates one.
type CreateArtworkInput struct {
	ID          string
	Title       string
	Artist      string
	Category    enums.ArtworkCategory
	Year        *int
	Medium      *string
	Dimensions  *string
	Value       decimal.Decimal
	Condition   enums.ArtworkCondition
	Status      enums.ArtworkStatus
	ImageURL    *string
	Location    models.Location
	Tags        []string
	Description *string
	Provenance  *string
	Notes       *string
}

// UpdateArtworkInput holds optional mutation values. The id, date_added, and
// location fields are deliberately absent: the first two are immutable and
// location changes only happen through the relocation workflow.
type UpdateArtworkInput struct {
	Title       *string
	Artist      *string
	Category    *enums.ArtworkCategory
	Year        *int
	Medium      *string
	Dimensions  *string
	Value       *decimal.Decimal
	Condition   *enums.ArtworkCondition
	Status      *enums.ArtworkStatus
	ImageURL    *string
	Tags        *[]string
	Description *string
	Provenance  *string
	Notes       *string
}

// RelocateInput describes a single artwork move.
type RelocateInput struct {
	Target  models.Location
	MovedBy string
	Notes   string
}

// BulkRelocateInput moves a set of artworks to one shared target location.
type BulkRelocateInput struct {
	ArtworkIDs []string
	Target     models.Location
	MovedBy    string
	Notes      string
}

// SearchInput combines a free-text term with structured filters. All supplied
// parts are AND-combined.
type SearchInput struct {
	Term      string
	Category  *enums.ArtworkCategory
	Status    *enums.ArtworkStatus
	Condition *enums.ArtworkCondition
	MinValue  *decimal.Decimal
	MaxValue  *decimal.Decimal
}

// LocationFilter is a partial storage address used by location lookups. A
// level may only be supplied when every parent level is supplied, so a filter
// always describes a prefix of the warehouse/floor/shelf/box/folder path.
type LocationFilter struct {
	Warehouse *enums.Warehouse
	Floor     *int
	Shelf     *int
	Box       *int
	Folder    *int
}

// Empty reports whether no level was supplied at all.
func (f LocationFilter) Empty() bool {
	return f.Warehouse == nil && f.Floor == nil && f.Shelf == nil && f.Box == nil && f.Folder == nil
}

// Validate enforces the prefix rule and the storage grid bounds.
func (f LocationFilter) Validate() error {
	type level struct {
		name    string
		set     bool
		value   int
		max     int
		bounded bool
	}
	levels := []level{
		{name: "warehouse", set: f.Warehouse != nil},
		{name: "floor", set: f.Floor != nil, max: models.MaxFloor, bounded: true},
		{name: "shelf", set: f.Shelf != nil, max: models.MaxShelf, bounded: true},
		{name: "box", set: f.Box != nil, max: models.MaxBox, bounded: true},
		{name: "folder", set: f.Folder != nil, max: models.MaxFolder, bounded: true},
	}
	levels[1].value = deref(f.Floor)
	levels[2].value = deref(f.Shelf)
	levels[3].value = deref(f.Box)
	levels[4].value = deref(f.Folder)

	for i, l := range levels {
		if !l.set {
			continue
		}
		if i > 0 && !levels[i-1].set {
			return fmt.Errorf("%s requires %s to be set", l.name, levels[i-1].name)
		}
		if l.bounded && (l.value < models.MinLevel || l.value > l.max) {
			return fmt.Errorf("%s %d out of range [%d,%d]", l.name, l.value, models.MinLevel, l.max)
		}
	}

	if f.Warehouse != nil && !f.Warehouse.IsValid() {
		return fmt.Errorf("invalid warehouse %q", *f.Warehouse)
	}
	return nil
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
