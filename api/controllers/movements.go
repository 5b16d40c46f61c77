package controllers

import (
	"net/http"
	"strings"

	"github.com/galleryops/artstore-backend/api/responses"
	"github.com/galleryops/artstore-backend/api/validators"
	movementsvc "github.com/galleryops/artstore-backend/internal/movements"
	pkgerrors "github.com/galleryops/artstore-backend/pkg/errors"
	"github.com/galleryops/artstore-backend/pkg/logger"
	"github.com/galleryops/artstore-backend/pkg/pagination"
)

// ListMovements returns a page of the movement log, newest first.
func ListMovements(svc movementsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "movement service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), movementsvc.ListInput{
			ArtworkID: strings.TrimSpace(r.URL.Query().Get("artworkId")),
			Limit:     limit,
			Cursor:    strings.TrimSpace(r.URL.Query().Get("cursor")),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
