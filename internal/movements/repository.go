package movement

import (
	"context"

	"gorm.io/gorm"

	"github.com/galleryops/artstore-backend/pkg/db/models"
	"github.com/galleryops/artstore-backend/pkg/pagination"
)

// ListQuery narrows and pages a movement listing.
type ListQuery struct {
	ArtworkID string
	Limit     int
	Cursor    *pagination.Cursor
}

// Repository persists the append-only movement log.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Insert appends one audit record. Movements are never updated afterwards.
func (r *Repository) Insert(ctx context.Context, movement *models.Movement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// ListPage returns movements newest first. The caller passes a limit with the
// +1 lookahead buffer; the service trims the page and derives the next cursor.
func (r *Repository) ListPage(ctx context.Context, query ListQuery) ([]models.Movement, error) {
	tx := r.db.WithContext(ctx).Model(&models.Movement{})
	if query.ArtworkID != "" {
		tx = tx.Where("artwork_id = ?", query.ArtworkID)
	}
	if query.Cursor != nil {
		tx = tx.Where(
			"(timestamp < ?) OR (timestamp = ? AND id < ?)",
			query.Cursor.Timestamp, query.Cursor.Timestamp, query.Cursor.ID,
		)
	}

	var rows []models.Movement
	err := tx.Order("timestamp DESC").
		Order("id DESC").
		Limit(query.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByArtwork returns how many moves the artwork has accumulated.
func (r *Repository) CountByArtwork(ctx context.Context, artworkID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Movement{}).
		Where("artwork_id = ?", artworkID).
		Count(&count).Error
	return count, err
}

// DeleteByArtwork removes the artwork's movement history. Used inside the
// artwork delete transaction alongside the FK cascade.
func (r *Repository) DeleteByArtwork(ctx context.Context, artworkID string) error {
	return r.db.WithContext(ctx).
		Where("artwork_id = ?", artworkID).
		Delete(&models.Movement{}).Error
}
