package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/galleryops/artstore-backend/api/responses"
	"github.com/galleryops/artstore-backend/api/validators"
	artworksvc "github.com/galleryops/artstore-backend/internal/artworks"
	"github.com/galleryops/artstore-backend/pkg/db/models"
	"github.com/galleryops/artstore-backend/pkg/enums"
	pkgerrors "github.com/galleryops/artstore-backend/pkg/errors"
	"github.com/galleryops/artstore-backend/pkg/logger"
)

// CreateArtwork registers a new artwork at a storage location.
func CreateArtwork(svc artworksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "artwork service unavailable"))
			return
		}

		var payload createArtworkRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		artwork, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, artwork)
	}
}

// ListArtworks returns the inventory, newest first.
func ListArtworks(svc artworksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "artwork service unavailable"))
			return
		}

		artworks, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, artworks)
	}
}

// ArtworksByLocation lists artworks matching a partial storage address.
func ArtworksByLocation(svc artworksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "artwork service unavailable"))
			return
		}

		filter, err := locationFilterFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		artworks, err := svc.GetByLocation(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, artworks)
	}
}

// SearchArtworks runs the free-text + structured filter query.
func SearchArtworks(svc artworksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "artwork service unavailable"))
			return
		}

		input := artworksvc.SearchInput{Term: strings.TrimSpace(r.URL.Query().Get("term"))}

		var err error
		if input.Category, err = validators.ParseQueryEnum(r, "category", enums.ParseArtworkCategory); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.Status, err = validators.ParseQueryEnum(r, "status", enums.ParseArtworkStatus); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.Condition, err = validators.ParseQueryEnum(r, "condition", enums.ParseArtworkCondition); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.MinValue, err = validators.ParseQueryDecimal(r, "minValue"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.MaxValue, err = validators.ParseQueryDecimal(r, "maxValue"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		artworks, err := svc.Search(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, artworks)
	}
}

// ArtworkDetail loads one artwork by id.
func ArtworkDetail(svc artworksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "artwork service unavailable"))
			return
		}

		id, err := artworkIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		artwork, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, artwork)
	}
}

// UpdateArtwork mutates descriptive fields of an artwork.
func UpdateArtwork(svc artworksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "artwork service unavailable"))
			return
		}

		id, err := artworkIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateArtworkRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		artwork, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, artwork)
	}
}

// DeleteArtwork removes an artwork and its movement history.
func DeleteArtwork(svc artworksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "artwork service unavailable"))
			return
		}

		id, err := artworkIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}

// MoveArtwork relocates one artwork.
func MoveArtwork(svc artworksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "artwork service unavailable"))
			return
		}

		id, err := artworkIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload moveRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		target, err := payload.ToLocation.toLocation()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		artwork, err := svc.Relocate(r.Context(), id, artworksvc.RelocateInput{
			Target:  target,
			MovedBy: payload.MovedBy,
			Notes:   payload.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, artwork)
	}
}

// BulkMoveArtworks relocates a set of artworks to one shared target.
func BulkMoveArtworks(svc artworksvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "artwork service unavailable"))
			return
		}

		var payload bulkMoveRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		target, err := payload.ToLocation.toLocation()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.BulkRelocate(r.Context(), artworksvc.BulkRelocateInput{
			ArtworkIDs: payload.ArtworkIDs,
			Target:     target,
			MovedBy:    payload.MovedBy,
			Notes:      payload.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

type locationRequest struct {
	Warehouse string `json:"warehouse" validate:"required"`
	Floor     int    `json:"floor" validate:"required"`
	Shelf     int    `json:"shelf" validate:"required"`
	Box       int    `json:"box" validate:"required"`
	Folder    int    `json:"folder" validate:"required"`
}

func (lr locationRequest) toLocation() (models.Location, error) {
	warehouse, err := enums.ParseWarehouse(strings.TrimSpace(lr.Warehouse))
	if err != nil {
		return models.Location{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid warehouse")
	}
	return models.Location{
		Warehouse: warehouse,
		Floor:     lr.Floor,
		Shelf:     lr.Shelf,
		Box:       lr.Box,
		Folder:    lr.Folder,
	}, nil
}

type createArtworkRequest struct {
	ID          string          `json:"id,omitempty"`
	Title       string          `json:"title" validate:"required"`
	Artist      string          `json:"artist" validate:"required"`
	Category    string          `json:"category,omitempty"`
	Year        *int            `json:"year,omitempty"`
	Medium      *string         `json:"medium,omitempty"`
	Dimensions  *string         `json:"dimensions,omitempty"`
	Value       decimal.Decimal `json:"value"`
	Condition   string          `json:"condition,omitempty"`
	Status      string          `json:"status,omitempty"`
	ImageURL    *string         `json:"imageUrl,omitempty"`
	Location    locationRequest `json:"location" validate:"required"`
	Tags        []string        `json:"tags,omitempty"`
	Description *string         `json:"description,omitempty"`
	Provenance  *string         `json:"provenance,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
}

func (r createArtworkRequest) toCreateInput() (artworksvc.CreateArtworkInput, error) {
	location, err := r.Location.toLocation()
	if err != nil {
		return artworksvc.CreateArtworkInput{}, err
	}

	input := artworksvc.CreateArtworkInput{
		ID:          r.ID,
		Title:       r.Title,
		Artist:      r.Artist,
		Year:        r.Year,
		Medium:      r.Medium,
		Dimensions:  r.Dimensions,
		Value:       r.Value,
		ImageURL:    r.ImageURL,
		Location:    location,
		Tags:        r.Tags,
		Description: r.Description,
		Provenance:  r.Provenance,
		Notes:       r.Notes,
	}

	if raw := strings.TrimSpace(r.Category); raw != "" {
		if input.Category, err = enums.ParseArtworkCategory(raw); err != nil {
			return artworksvc.CreateArtworkInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
	}
	if raw := strings.TrimSpace(r.Condition); raw != "" {
		if input.Condition, err = enums.ParseArtworkCondition(raw); err != nil {
			return artworksvc.CreateArtworkInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid condition")
		}
	}
	if raw := strings.TrimSpace(r.Status); raw != "" {
		if input.Status, err = enums.ParseArtworkStatus(raw); err != nil {
			return artworksvc.CreateArtworkInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
	}
	return input, nil
}

type updateArtworkRequest struct {
	Title       *string          `json:"title,omitempty"`
	Artist      *string          `json:"artist,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Year        *int             `json:"year,omitempty"`
	Medium      *string          `json:"medium,omitempty"`
	Dimensions  *string          `json:"dimensions,omitempty"`
	Value       *decimal.Decimal `json:"value,omitempty"`
	Condition   *string          `json:"condition,omitempty"`
	Status      *string          `json:"status,omitempty"`
	ImageURL    *string          `json:"imageUrl,omitempty"`
	Tags        *[]string        `json:"tags,omitempty"`
	Description *string          `json:"description,omitempty"`
	Provenance  *string          `json:"provenance,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

func (r updateArtworkRequest) toUpdateInput() (artworksvc.UpdateArtworkInput, error) {
	input := artworksvc.UpdateArtworkInput{
		Title:       r.Title,
		Artist:      r.Artist,
		Year:        r.Year,
		Medium:      r.Medium,
		Dimensions:  r.Dimensions,
		Value:       r.Value,
		ImageURL:    r.ImageURL,
		Tags:        r.Tags,
		Description: r.Description,
		Provenance:  r.Provenance,
		Notes:       r.Notes,
	}

	if r.Category != nil {
		category, err := enums.ParseArtworkCategory(strings.TrimSpace(*r.Category))
		if err != nil {
			return artworksvc.UpdateArtworkInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
		input.Category = &category
	}
	if r.Condition != nil {
		condition, err := enums.ParseArtworkCondition(strings.TrimSpace(*r.Condition))
		if err != nil {
			return artworksvc.UpdateArtworkInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid condition")
		}
		input.Condition = &condition
	}
	if r.Status != nil {
		status, err := enums.ParseArtworkStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return artworksvc.UpdateArtworkInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = &status
	}
	return input, nil
}

type moveRequest struct {
	ToLocation locationRequest `json:"toLocation" validate:"required"`
	MovedBy    string          `json:"movedBy,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

type bulkMoveRequest struct {
	ArtworkIDs []string        `json:"artworkIds" validate:"required,min=1,dive,required"`
	ToLocation locationRequest `json:"toLocation" validate:"required"`
	MovedBy    string          `json:"movedBy,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

func artworkIDParam(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "artworkId"))
	if id == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "artwork id required")
	}
	return id, nil
}

func locationFilterFromQuery(r *http.Request) (artworksvc.LocationFilter, error) {
	filter := artworksvc.LocationFilter{}

	var err error
	if filter.Warehouse, err = validators.ParseQueryEnum(r, "warehouse", enums.ParseWarehouse); err != nil {
		return filter, err
	}
	if filter.Floor, err = validators.ParseQueryIntPtr(r, "floor", models.MinLevel, models.MaxFloor); err != nil {
		return filter, err
	}
	if filter.Shelf, err = validators.ParseQueryIntPtr(r, "shelf", models.MinLevel, models.MaxShelf); err != nil {
		return filter, err
	}
	if filter.Box, err = validators.ParseQueryIntPtr(r, "box", models.MinLevel, models.MaxBox); err != nil {
		return filter, err
	}
	if filter.Folder, err = validators.ParseQueryIntPtr(r, "folder", models.MinLevel, models.MaxFolder); err != nil {
		return filter, err
	}
	return filter, nil
}
