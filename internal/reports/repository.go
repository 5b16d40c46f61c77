package report

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/galleryops/artstore-backend/pkg/db/models"
)

// Repository runs the read-only aggregation queries behind the reports.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type valuationRow struct {
	Count int64
	Total decimal.Decimal
}

// ValuationTotals returns the row count and value sum for the filtered set.
func (r *Repository) ValuationTotals(ctx context.Context, input ValuationInput) (int64, decimal.Decimal, error) {
	var row valuationRow
	err := r.valuationScope(ctx, input).
		Select("COUNT(*) AS count, COALESCE(SUM(value), 0) AS total").
		Scan(&row).Error
	if err != nil {
		return 0, decimal.Zero, err
	}
	return row.Count, row.Total, nil
}

// ValuationExtreme returns the highest (desc) or lowest (asc) valued artwork
// in the filtered set, or nil when the set is empty.
func (r *Repository) ValuationExtreme(ctx context.Context, input ValuationInput, descending bool) (*ArtworkValue, error) {
	order := "value ASC, id ASC"
	if descending {
		order = "value DESC, id ASC"
	}

	var row ArtworkValue
	err := r.valuationScope(ctx, input).
		Select("id, title, value").
		Order(order).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) valuationScope(ctx context.Context, input ValuationInput) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&models.Artwork{})
	if input.Category != nil {
		tx = tx.Where("category = ?", *input.Category)
	}
	if input.Status != nil {
		tx = tx.Where("status = ?", *input.Status)
	}
	return tx
}

// ShelfCount is one occupied (warehouse, floor, shelf) group.
type ShelfCount struct {
	Warehouse string
	Floor     int
	Shelf     int
	Count     int64
}

// ShelfCounts groups artworks per shelf, optionally within one warehouse.
func (r *Repository) ShelfCounts(ctx context.Context, input UtilizationInput) ([]ShelfCount, error) {
	tx := r.db.WithContext(ctx).Model(&models.Artwork{})
	if input.Warehouse != nil {
		tx = tx.Where("warehouse = ?", *input.Warehouse)
	}

	var rows []ShelfCount
	err := tx.Select("warehouse, floor, shelf, COUNT(*) AS count").
		Group("warehouse").Group("floor").Group("shelf").
		Order("warehouse ASC, floor ASC, shelf ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MovementTimestamps returns the timestamps of all movements in the window.
// Day bucketing happens in the service so both drivers behave identically.
func (r *Repository) MovementTimestamps(ctx context.Context, input ActivityInput, since, until time.Time) ([]time.Time, error) {
	tx := r.db.WithContext(ctx).
		Model(&models.Movement{}).
		Where("timestamp >= ? AND timestamp < ?", since, until)
	if input.ArtworkID != "" {
		tx = tx.Where("artwork_id = ?", input.ArtworkID)
	}
	if input.Warehouse != nil {
		tx = tx.Where("(from_warehouse = ? OR to_warehouse = ?)", *input.Warehouse, *input.Warehouse)
	}

	var stamps []time.Time
	if err := tx.Order("timestamp ASC").Pluck("timestamp", &stamps).Error; err != nil {
		return nil, err
	}
	return stamps, nil
}

type groupCount struct {
	Key   string
	Count int64
}

// CountsBy groups artworks by one enum column.
func (r *Repository) CountsBy(ctx context.Context, column string) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).
		Model(&models.Artwork{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Count
	}
	return out, nil
}
