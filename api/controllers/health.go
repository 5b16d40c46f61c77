package controllers

import (
	"net/http"

	"github.com/galleryops/artstore-backend/api/responses"
	"github.com/galleryops/artstore-backend/pkg/config"
	"github.com/galleryops/artstore-backend/pkg/db"
	pkgerrors "github.com/galleryops/artstore-backend/pkg/errors"
	"github.com/galleryops/artstore-backend/pkg/logger"
	pkgredis "github.com/galleryops/artstore-backend/pkg/redis"
)

const envHeader = "X-Artstore-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the datasources. The database is required; redis is
// optional and only reported.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, cacheP pkgredis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		ctx := r.Context()

		checks := map[string]string{}

		if dbP == nil {
			checks["database"] = "not configured"
		} else if err := dbP.Ping(ctx); err != nil {
			if logg != nil {
				logg.Error(ctx, "readiness database ping failed", err)
			}
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
			return
		} else {
			checks["database"] = "up"
		}

		if cacheP == nil {
			checks["redis"] = "disabled"
		} else if err := cacheP.Ping(ctx); err != nil {
			if logg != nil {
				logg.Error(ctx, "readiness redis ping failed", err)
			}
			checks["redis"] = "down"
		} else {
			checks["redis"] = "up"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
