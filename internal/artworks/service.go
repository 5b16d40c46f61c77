package artwork

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	movement "github.com/galleryops/artstore-backend/internal/movements"
	"github.com/galleryops/artstore-backend/pkg/db"
	"github.com/galleryops/artstore-backend/pkg/db/models"
	"github.com/galleryops/artstore-backend/pkg/enums"
	pkgerrors "github.com/galleryops/artstore-backend/pkg/errors"
	"github.com/galleryops/artstore-backend/pkg/metrics"
)

// Relocation metric operation labels.
const (
	opMove     = "move"
	opBulkMove = "bulk_move"
)

// Service exposes artwork inventory management operations.
type Service interface {
	Create(ctx context.Context, input CreateArtworkInput) (*ArtworkDTO, error)
	Get(ctx context.Context, id string) (*ArtworkDTO, error)
	List(ctx context.Context) ([]ArtworkDTO, error)
	GetByLocation(ctx context.Context, filter LocationFilter) ([]ArtworkDTO, error)
	Search(ctx context.Context, input SearchInput) ([]ArtworkDTO, error)
	Update(ctx context.Context, id string, input UpdateArtworkInput) (*ArtworkDTO, error)
	Delete(ctx context.Context, id string) error
	Relocate(ctx context.Context, id string, input RelocateInput) (*ArtworkDTO, error)
	BulkRelocate(ctx context.Context, input BulkRelocateInput) (*BulkRelocateResult, error)
}

// service implements the artwork service.
type service struct {
	repo      *Repository
	movements *movement.Repository
	dbClient  *db.Client
	metrics   *metrics.RelocationMetrics
}

// NewService constructs an artwork service instance. The metrics argument may
// be nil; recording becomes a no-op then.
func NewService(repo *Repository, movements *movement.Repository, dbClient *db.Client, relocationMetrics *metrics.RelocationMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("artwork repository required")
	}
	if movements == nil {
		return nil, fmt.Errorf("movement repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{
		repo:      repo,
		movements: movements,
		dbClient:  dbClient,
		metrics:   relocationMetrics,
	}, nil
}

// Create registers a new artwork at a complete storage location.
func (s *service) Create(ctx context.Context, input CreateArtworkInput) (*ArtworkDTO, error) {
	applyCreateDefaults(&input)
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = models.NewArtworkID()
	}

	artwork := &models.Artwork{
		ID:          id,
		Title:       strings.TrimSpace(input.Title),
		Artist:      strings.TrimSpace(input.Artist),
		Category:    input.Category,
		Year:        input.Year,
		Medium:      input.Medium,
		Dimensions:  input.Dimensions,
		Value:       input.Value,
		Condition:   input.Condition,
		Status:      input.Status,
		ImageURL:    input.ImageURL,
		Location:    input.Location,
		Tags:        normalizeTags(input.Tags),
		Description: input.Description,
		Provenance:  input.Provenance,
		Notes:       input.Notes,
		LastMoved:   time.Now().UTC(),
	}

	created, err := s.repo.CreateArtwork(ctx, artwork)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "artwork id already exists").
				WithDetails(map[string]string{"id": id})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating artwork")
	}
	return NewArtworkDTO(created), nil
}

// Get loads one artwork by id.
func (s *service) Get(ctx context.Context, id string) (*ArtworkDTO, error) {
	artwork, err := s.loadArtwork(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	return NewArtworkDTO(artwork), nil
}

// List returns the whole inventory, newest first.
func (s *service) List(ctx context.Context) ([]ArtworkDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing artworks")
	}
	return newArtworkDTOs(rows), nil
}

// GetByLocation lists artworks whose address matches the partial filter.
func (s *service) GetByLocation(ctx context.Context, filter LocationFilter) ([]ArtworkDTO, error) {
	if err := filter.Validate(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid location filter")
	}
	rows, err := s.repo.ListByLocation(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing artworks by location")
	}
	return newArtworkDTOs(rows), nil
}

// Search runs the combined term + filter query.
func (s *service) Search(ctx context.Context, input SearchInput) ([]ArtworkDTO, error) {
	if input.MinValue != nil && input.MinValue.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "minValue cannot be negative")
	}
	if input.MinValue != nil && input.MaxValue != nil && input.MaxValue.LessThan(*input.MinValue) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "maxValue cannot be below minValue")
	}
	rows, err := s.repo.Search(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "searching artworks")
	}
	return newArtworkDTOs(rows), nil
}

// Update mutates descriptive fields. Location and date_added never change
// here; moves go through Relocate.
func (s *service) Update(ctx context.Context, id string, input UpdateArtworkInput) (*ArtworkDTO, error) {
	artwork, err := s.loadArtwork(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(artwork, input)
	if err := validateArtworkFields(artwork); err != nil {
		return nil, err
	}

	saved, err := s.repo.SaveArtwork(ctx, artwork)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating artwork")
	}
	return NewArtworkDTO(saved), nil
}

// Delete removes the artwork and its movement history in one transaction.
func (s *service) Delete(ctx context.Context, id string) error {
	return s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if _, err := s.loadArtwork(ctx, txRepo, id); err != nil {
			return err
		}
		if err := s.movements.WithTx(tx).DeleteByArtwork(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting movement history")
		}
		if _, err := txRepo.DeleteByID(ctx, id); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting artwork")
		}
		return nil
	})
}

// Relocate moves one artwork and appends the audit record atomically.
func (s *service) Relocate(ctx context.Context, id string, input RelocateInput) (*ArtworkDTO, error) {
	start := time.Now()
	dto, err := s.relocate(ctx, id, input)
	if err != nil {
		s.metrics.IncFailure(opMove)
		return nil, err
	}
	s.metrics.IncSuccess(opMove)
	s.metrics.ObserveDuration(opMove, time.Since(start))
	return dto, nil
}

// BulkRelocate moves each artwork in its own transaction and reports per-item
// outcomes. A failed item never blocks the rest of the batch.
func (s *service) BulkRelocate(ctx context.Context, input BulkRelocateInput) (*BulkRelocateResult, error) {
	if len(input.ArtworkIDs) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "artworkIds must not be empty")
	}
	if err := input.Target.Validate(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid target location")
	}

	start := time.Now()
	result := &BulkRelocateResult{Results: make([]BulkItemResult, 0, len(input.ArtworkIDs))}
	for _, id := range input.ArtworkIDs {
		item := BulkItemResult{ArtworkID: id}
		_, err := s.relocate(ctx, id, RelocateInput{
			Target:  input.Target,
			MovedBy: input.MovedBy,
			Notes:   input.Notes,
		})
		if err != nil {
			item.Error = publicReason(err)
			result.Failed++
			s.metrics.IncFailure(opBulkMove)
		} else {
			item.Success = true
			result.Moved++
			s.metrics.IncSuccess(opBulkMove)
		}
		result.Results = append(result.Results, item)
	}
	s.metrics.ObserveDuration(opBulkMove, time.Since(start))
	return result, nil
}

func (s *service) relocate(ctx context.Context, id string, input RelocateInput) (*ArtworkDTO, error) {
	if err := input.Target.Validate(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid target location")
	}

	movedBy := strings.TrimSpace(input.MovedBy)
	if movedBy == "" {
		movedBy = models.DefaultMovedBy
	}

	var moved *models.Artwork
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		artwork, err := s.loadArtwork(ctx, txRepo, id)
		if err != nil {
			return err
		}
		if artwork.Location.Equal(input.Target) {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "artwork is already stored at the target location").
				WithDetails(map[string]string{"location": input.Target.String()})
		}

		now := time.Now().UTC()
		record := &models.Movement{
			ID:           models.NewMovementID(),
			ArtworkID:    artwork.ID,
			ArtworkTitle: artwork.Title,
			From:         artwork.Location,
			To:           input.Target,
			MovedBy:      movedBy,
			Notes:        input.Notes,
			Timestamp:    now,
		}
		if err := s.movements.WithTx(tx).Insert(ctx, record); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "recording movement")
		}

		artwork.Location = input.Target
		artwork.LastMoved = now
		if _, err := txRepo.SaveArtwork(ctx, artwork); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating artwork location")
		}

		moved = artwork
		return nil
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "relocating artwork")
	}
	return NewArtworkDTO(moved), nil
}

func (s *service) loadArtwork(ctx context.Context, repo *Repository, id string) (*models.Artwork, error) {
	artwork, err := repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "artwork not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading artwork")
	}
	return artwork, nil
}

func applyCreateDefaults(input *CreateArtworkInput) {
	if input.Category == "" {
		input.Category = enums.CategoryPainting
	}
	if input.Condition == "" {
		input.Condition = enums.ConditionGood
	}
	if input.Status == "" {
		input.Status = enums.StatusAvailable
	}
}

func validateCreateInput(input CreateArtworkInput) error {
	fields := map[string]string{}
	if strings.TrimSpace(input.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(input.Artist) == "" {
		fields["artist"] = "artist is required"
	}
	if !input.Category.IsValid() {
		fields["category"] = fmt.Sprintf("invalid category %q", input.Category)
	}
	if !input.Condition.IsValid() {
		fields["condition"] = fmt.Sprintf("invalid condition %q", input.Condition)
	}
	if !input.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid status %q", input.Status)
	}
	if input.Value.IsNegative() {
		fields["value"] = "value cannot be negative"
	}
	if err := input.Location.Validate(); err != nil {
		fields["location"] = err.Error()
	}
	if len(fields) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid artwork payload").WithDetails(fields)
	}
	return nil
}

func validateArtworkFields(artwork *models.Artwork) error {
	fields := map[string]string{}
	if strings.TrimSpace(artwork.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(artwork.Artist) == "" {
		fields["artist"] = "artist is required"
	}
	if !artwork.Category.IsValid() {
		fields["category"] = fmt.Sprintf("invalid category %q", artwork.Category)
	}
	if !artwork.Condition.IsValid() {
		fields["condition"] = fmt.Sprintf("invalid condition %q", artwork.Condition)
	}
	if !artwork.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid status %q", artwork.Status)
	}
	if artwork.Value.IsNegative() {
		fields["value"] = "value cannot be negative"
	}
	if len(fields) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid artwork payload").WithDetails(fields)
	}
	return nil
}

func applyUpdate(artwork *models.Artwork, input UpdateArtworkInput) {
	if input.Title != nil {
		artwork.Title = strings.TrimSpace(*input.Title)
	}
	if input.Artist != nil {
		artwork.Artist = strings.TrimSpace(*input.Artist)
	}
	if input.Category != nil {
		artwork.Category = *input.Category
	}
	if input.Year != nil {
		artwork.Year = input.Year
	}
	if input.Medium != nil {
		artwork.Medium = input.Medium
	}
	if input.Dimensions != nil {
		artwork.Dimensions = input.Dimensions
	}
	if input.Value != nil {
		artwork.Value = *input.Value
	}
	if input.Condition != nil {
		artwork.Condition = *input.Condition
	}
	if input.Status != nil {
		artwork.Status = *input.Status
	}
	if input.ImageURL != nil {
		artwork.ImageURL = input.ImageURL
	}
	if input.Tags != nil {
		artwork.Tags = normalizeTags(*input.Tags)
	}
	if input.Description != nil {
		artwork.Description = input.Description
	}
	if input.Provenance != nil {
		artwork.Provenance = input.Provenance
	}
	if input.Notes != nil {
		artwork.Notes = input.Notes
	}
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := map[string]struct{}{}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// publicReason extracts a caller-safe message for bulk move item errors.
func publicReason(err error) string {
	if typed := pkgerrors.As(err); typed != nil {
		meta := pkgerrors.MetadataFor(typed.Code())
		if meta.DetailsAllowed || typed.Code() == pkgerrors.CodeNotFound {
			return typed.Message()
		}
		return meta.PublicMessage
	}
	return "internal error"
}
