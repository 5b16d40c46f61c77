package artwork

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/galleryops/artstore-backend/pkg/db/models"
)

// Repository persists artwork inventory records.
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

// CreateArtwork inserts a new inventory row.
func (r *Repository) CreateArtwork(ctx context.Context, artwork *models.Artwork) (*models.Artwork, error) {
	if err := r.db.WithContext(ctx).Create(artwork).Error; err != nil {
		return nil, err
	}
	return artwork, nil
}

// SaveArtwork writes the full row back.
func (r *Repository) SaveArtwork(ctx context.Context, artwork *models.Artwork) (*models.Artwork, error) {
	if err := r.db.WithContext(ctx).Save(artwork).Error; err != nil {
		return nil, err
	}
	return artwork, nil
}

// FindByID loads the artwork without associations.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Artwork, error) {
	var artwork models.Artwork
	if err := r.db.WithContext(ctx).First(&artwork, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &artwork, nil
}

// DeleteByID removes the artwork row and reports how many rows went away.
func (r *Repository) DeleteByID(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Artwork{})
	return res.RowsAffected, res.Error
}

// ListAll returns the whole inventory, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.Artwork, error) {
	var rows []models.Artwork
	err := r.db.WithContext(ctx).
		Order("date_added DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByLocation matches the supplied address levels exactly, title ascending.
// The filter's prefix rule is enforced by the service before the query runs.
func (r *Repository) ListByLocation(ctx context.Context, filter LocationFilter) ([]models.Artwork, error) {
	tx := r.db.WithContext(ctx).Model(&models.Artwork{})
	if filter.Warehouse != nil {
		tx = tx.Where("warehouse = ?", *filter.Warehouse)
	}
	if filter.Floor != nil {
		tx = tx.Where("floor = ?", *filter.Floor)
	}
	if filter.Shelf != nil {
		tx = tx.Where("shelf = ?", *filter.Shelf)
	}
	if filter.Box != nil {
		tx = tx.Where("box = ?", *filter.Box)
	}
	if filter.Folder != nil {
		tx = tx.Where("folder = ?", *filter.Folder)
	}

	var rows []models.Artwork
	if err := tx.Order("title ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Search applies the free-text term and structured filters, title ascending.
func (r *Repository) Search(ctx context.Context, input SearchInput) ([]models.Artwork, error) {
	tx := r.db.WithContext(ctx).Model(&models.Artwork{})

	if term := strings.TrimSpace(input.Term); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		cond := "LOWER(title) LIKE ? OR LOWER(artist) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ?"
		args := []any{like, like, like}
		if r.db.Dialector.Name() == "postgres" {
			cond += " OR ? = ANY(tags)"
			args = append(args, term)
		} else {
			// sqlite stores the array literal as text; substring match keeps
			// tag search usable in dev.
			cond += " OR tags LIKE ?"
			args = append(args, "%"+term+"%")
		}
		tx = tx.Where("("+cond+")", args...)
	}

	if input.Category != nil {
		tx = tx.Where("category = ?", *input.Category)
	}
	if input.Status != nil {
		tx = tx.Where("status = ?", *input.Status)
	}
	if input.Condition != nil {
		tx = tx.Where("condition = ?", *input.Condition)
	}
	if input.MinValue != nil {
		tx = tx.Where("value >= ?", *input.MinValue)
	}
	if input.MaxValue != nil {
		tx = tx.Where("value <= ?", *input.MaxValue)
	}

	var rows []models.Artwork
	if err := tx.Order("title ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
