package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/galleryops/artstore-backend/pkg/enums"
)

// ValuationInput narrows the valuation report to one category or status.
type ValuationInput struct {
	Category *enums.ArtworkCategory
	Status   *enums.ArtworkStatus
}

// ArtworkValue identifies an artwork inside valuation extremes.
type ArtworkValue struct {
	ID    string          `json:"id"`
	Title string          `json:"title"`
	Value decimal.Decimal `json:"value"`
}

// ValuationReport summarizes collection value. Average is zero when the
// filtered set is empty.
type ValuationReport struct {
	Count        int64           `json:"count"`
	TotalValue   decimal.Decimal `json:"totalValue"`
	AverageValue decimal.Decimal `json:"averageValue"`
	Highest      *ArtworkValue   `json:"highest,omitempty"`
	Lowest       *ArtworkValue   `json:"lowest,omitempty"`
}

// UtilizationInput narrows the utilization report to one warehouse.
type UtilizationInput struct {
	Warehouse *enums.Warehouse
}

// ShelfUtilization is the fill level of one physical shelf. Only occupied
// shelves are reported; anything absent is at 0%.
type ShelfUtilization struct {
	Warehouse      enums.Warehouse `json:"warehouse"`
	Floor          int             `json:"floor"`
	Shelf          int             `json:"shelf"`
	ArtworkCount   int64           `json:"artworkCount"`
	Capacity       int             `json:"capacity"`
	UtilizationPct float64         `json:"utilizationPct"`
	High           bool            `json:"high"`
	Low            bool            `json:"low"`
}

// UtilizationReport aggregates shelf fill levels across the storage grid.
type UtilizationReport struct {
	ShelfCapacity   int                `json:"shelfCapacity"`
	TotalArtworks   int64              `json:"totalArtworks"`
	OccupiedShelves int                `json:"occupiedShelves"`
	Shelves         []ShelfUtilization `json:"shelves"`
}

// ActivityInput bounds the movement activity report. A nil Since defaults to
// thirty days before Until; a nil Until defaults to now.
type ActivityInput struct {
	Since     *time.Time
	Until     *time.Time
	ArtworkID string
	Warehouse *enums.Warehouse
}

// DayActivity is one per-day bucket of the activity report.
type DayActivity struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// ActivityReport counts movements inside a time window.
type ActivityReport struct {
	WindowStart    time.Time     `json:"windowStart"`
	WindowEnd      time.Time     `json:"windowEnd"`
	TotalMovements int64         `json:"totalMovements"`
	PerDay         []DayActivity `json:"perDay"`
	BusiestDay     *DayActivity  `json:"busiestDay,omitempty"`
}

// DistributionReport counts artworks per category, status, and condition.
type DistributionReport struct {
	ByCategory  map[string]int64 `json:"byCategory"`
	ByStatus    map[string]int64 `json:"byStatus"`
	ByCondition map[string]int64 `json:"byCondition"`
}
