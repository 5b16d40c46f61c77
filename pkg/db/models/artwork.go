package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/galleryops/artstore-backend/pkg/enums"
)

// Artwork is the canonical inventory record for a stored piece.
type Artwork struct {
	ID          string                 `gorm:"column:id;primaryKey"`
	Title       string                 `gorm:"column:title;not null"`
	Artist      string                 `gorm:"column:artist;not null"`
	Category    enums.ArtworkCategory  `gorm:"column:category;type:artwork_category;not null;default:painting"`
	Year        *int                   `gorm:"column:year"`
	Medium      *string                `gorm:"column:medium"`
	Dimensions  *string                `gorm:"column:dimensions"`
	Value       decimal.Decimal        `gorm:"column:value;type:numeric(12,2);not null;default:0"`
	Condition   enums.ArtworkCondition `gorm:"column:condition;type:artwork_condition;not null;default:good"`
	Status      enums.ArtworkStatus    `gorm:"column:status;type:artwork_status;not null;default:available"`
	ImageURL    *string                `gorm:"column:image_url"`
	Location    Location               `gorm:"embedded"`
	Tags        pq.StringArray         `gorm:"column:tags;type:text[];not null;default:'{}'"`
	Description *string                `gorm:"column:description;type:text"`
	Provenance  *string                `gorm:"column:provenance;type:text"`
	Notes       *string                `gorm:"column:notes;type:text"`
	DateAdded   time.Time              `gorm:"column:date_added;autoCreateTime"`
	LastMoved   time.Time              `gorm:"column:last_moved;not null"`
	Movements   []Movement             `gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE"`
}

// TableName implements the gorm table naming interface.
func (Artwork) TableName() string {
	return "artworks"
}
