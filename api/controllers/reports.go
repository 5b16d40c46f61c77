package controllers

import (
	"net/http"
	"strings"

	"github.com/galleryops/artstore-backend/api/responses"
	"github.com/galleryops/artstore-backend/api/validators"
	reportsvc "github.com/galleryops/artstore-backend/internal/reports"
	"github.com/galleryops/artstore-backend/pkg/enums"
	pkgerrors "github.com/galleryops/artstore-backend/pkg/errors"
	"github.com/galleryops/artstore-backend/pkg/logger"
)

// ValuationReport summarizes collection value, optionally filtered.
func ValuationReport(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "report service unavailable"))
			return
		}

		var (
			input reportsvc.ValuationInput
			err   error
		)
		if input.Category, err = validators.ParseQueryEnum(r, "category", enums.ParseArtworkCategory); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.Status, err = validators.ParseQueryEnum(r, "status", enums.ParseArtworkStatus); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		report, err := svc.Valuation(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}

// UtilizationReport reports per-shelf fill levels.
func UtilizationReport(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "report service unavailable"))
			return
		}

		var (
			input reportsvc.UtilizationInput
			err   error
		)
		if input.Warehouse, err = validators.ParseQueryEnum(r, "warehouse", enums.ParseWarehouse); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		report, err := svc.Utilization(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}

// ActivityReport counts movements inside a time window.
func ActivityReport(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "report service unavailable"))
			return
		}

		input := reportsvc.ActivityInput{
			ArtworkID: strings.TrimSpace(r.URL.Query().Get("artworkId")),
		}

		var err error
		if input.Since, err = validators.ParseQueryTime(r, "since"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.Until, err = validators.ParseQueryTime(r, "until"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.Warehouse, err = validators.ParseQueryEnum(r, "warehouse", enums.ParseWarehouse); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		report, err := svc.Activity(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}

// DistributionsReport counts artworks per category, status, and condition.
func DistributionsReport(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "report service unavailable"))
			return
		}

		report, err := svc.Distributions(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}
