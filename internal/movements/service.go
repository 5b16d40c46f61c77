package movement

import (
	"context"
	"fmt"

	pkgerrors "github.com/galleryops/artstore-backend/pkg/errors"
	"github.com/galleryops/artstore-backend/pkg/pagination"
)

// Service exposes read access to the movement log.
type Service interface {
	List(ctx context.Context, input ListInput) (*ListResult, error)
}

// ListInput holds the validated listing parameters.
type ListInput struct {
	ArtworkID string
	Limit     int
	Cursor    string
}

type service struct {
	repo *Repository
}

// NewService constructs a movement service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("movement repository required")
	}
	return &service{repo: repo}, nil
}

// List returns one page of the log, newest first.
func (s *service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	cursor, err := pagination.ParseCursor(input.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(input.Limit)
	rows, err := s.repo.ListPage(ctx, ListQuery{
		ArtworkID: input.ArtworkID,
		Limit:     limit + 1,
		Cursor:    cursor,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing movements")
	}

	result := &ListResult{Movements: make([]MovementDTO, 0, len(rows))}
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next := pagination.EncodeCursor(pagination.Cursor{Timestamp: last.Timestamp, ID: last.ID})
		result.NextCursor = &next
	}
	for i := range rows {
		result.Movements = append(result.Movements, *NewMovementDTO(&rows[i]))
	}
	return result, nil
}
