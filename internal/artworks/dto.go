package artwork

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/galleryops/artstore-backend/pkg/db/models"
	"github.com/galleryops/artstore-backend/pkg/enums"
)

// ArtworkDTO is the API shape of an inventory record.
type ArtworkDTO struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Artist      string                 `json:"artist"`
	Category    enums.ArtworkCategory  `json:"category"`
	Year        *int                   `json:"year,omitempty"`
	Medium      *string                `json:"medium,omitempty"`
	Dimensions  *string                `json:"dimensions,omitempty"`
	Value       decimal.Decimal        `json:"value"`
	Condition   enums.ArtworkCondition `json:"condition"`
	Status      enums.ArtworkStatus    `json:"status"`
	ImageURL    *string                `json:"imageUrl,omitempty"`
	Location    models.Location        `json:"location"`
	Tags        []string               `json:"tags"`
	Description *string                `json:"description,omitempty"`
	Provenance  *string                `json:"provenance,omitempty"`
	Notes       *string                `json:"notes,omitempty"`
	DateAdded   time.Time              `json:"dateAdded"`
	LastMoved   time.Time              `json:"lastMoved"`
}

// BulkItemResult reports one artwork's outcome inside a bulk move.
type BulkItemResult struct {
	ArtworkID string `json:"artworkId"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// BulkRelocateResult aggregates a best-effort batch move.
type BulkRelocateResult struct {
	Results []BulkItemResult `json:"results"`
	Moved   int              `json:"moved"`
	Failed  int              `json:"failed"`
}

// NewArtworkDTO maps the persistence model to the API shape.
func NewArtworkDTO(a *models.Artwork) *ArtworkDTO {
	if a == nil {
		return nil
	}
	tags := make([]string, len(a.Tags))
	copy(tags, a.Tags)
	return &ArtworkDTO{
		ID:          a.ID,
		Title:       a.Title,
		Artist:      a.Artist,
		Category:    a.Category,
		Year:        a.Year,
		Medium:      a.Medium,
		Dimensions:  a.Dimensions,
		Value:       a.Value,
		Condition:   a.Condition,
		Status:      a.Status,
		ImageURL:    a.ImageURL,
		Location:    a.Location,
		Tags:        tags,
		Description: a.Description,
		Provenance:  a.Provenance,
		Notes:       a.Notes,
		DateAdded:   a.DateAdded,
		LastMoved:   a.LastMoved,
	}
}

func newArtworkDTOs(rows []models.Artwork) []ArtworkDTO {
	out := make([]ArtworkDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewArtworkDTO(&rows[i]))
	}
	return out
}
