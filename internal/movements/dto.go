package movement

import (
	"time"

	"github.com/galleryops/artstore-backend/pkg/db/models"
)

// MovementDTO is the API shape of one relocation audit record.
type MovementDTO struct {
	ID           string          `json:"id"`
	ArtworkID    string          `json:"artworkId"`
	ArtworkTitle string          `json:"artworkTitle"`
	FromLocation models.Location `json:"fromLocation"`
	ToLocation   models.Location `json:"toLocation"`
	MovedBy      string          `json:"movedBy"`
	Notes        string          `json:"notes,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

// ListResult is one page of the movement log.
type ListResult struct {
	Movements  []MovementDTO `json:"movements"`
	NextCursor *string       `json:"nextCursor,omitempty"`
}

// NewMovementDTO maps the persistence model to the API shape.
func NewMovementDTO(m *models.Movement) *MovementDTO {
	if m == nil {
		return nil
	}
	return &MovementDTO{
		ID:           m.ID,
		ArtworkID:    m.ArtworkID,
		ArtworkTitle: m.ArtworkTitle,
		FromLocation: m.From,
		ToLocation:   m.To,
		MovedBy:      m.MovedBy,
		Notes:        m.Notes,
		Timestamp:    m.Timestamp,
	}
}
