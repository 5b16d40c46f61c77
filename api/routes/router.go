package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/galleryops/artstore-backend/api/controllers"
	"github.com/galleryops/artstore-backend/api/middleware"
	artworksvc "github.com/galleryops/artstore-backend/internal/artworks"
	movementsvc "github.com/galleryops/artstore-backend/internal/movements"
	reportsvc "github.com/galleryops/artstore-backend/internal/reports"
	"github.com/galleryops/artstore-backend/pkg/config"
	"github.com/galleryops/artstore-backend/pkg/db"
	"github.com/galleryops/artstore-backend/pkg/logger"
	pkgredis "github.com/galleryops/artstore-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *pkgredis.Client,
	registry *prometheus.Registry,
	artworkService artworksvc.Service,
	movementService movementsvc.Service,
	reportService reportsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisPinger(redisClient)))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(idempotencyStore(redisClient), logg))

		r.Route("/artworks", func(r chi.Router) {
			r.Get("/", controllers.ListArtworks(artworkService, logg))
			r.Post("/", controllers.CreateArtwork(artworkService, logg))
			r.Get("/location", controllers.ArtworksByLocation(artworkService, logg))
			r.Get("/search", controllers.SearchArtworks(artworkService, logg))
			r.Post("/bulk-move", controllers.BulkMoveArtworks(artworkService, logg))

			r.Route("/{artworkId}", func(r chi.Router) {
				r.Get("/", controllers.ArtworkDetail(artworkService, logg))
				r.Put("/", controllers.UpdateArtwork(artworkService, logg))
				r.Delete("/", controllers.DeleteArtwork(artworkService, logg))
				r.Post("/move", controllers.MoveArtwork(artworkService, logg))
			})
		})

		r.Get("/movements", controllers.ListMovements(movementService, logg))

		r.Route("/reports", func(r chi.Router) {
			r.Get("/valuation", controllers.ValuationReport(reportService, logg))
			r.Get("/utilization", controllers.UtilizationReport(reportService, logg))
			r.Get("/activity", controllers.ActivityReport(reportService, logg))
			r.Get("/distributions", controllers.DistributionsReport(reportService, logg))
		})
	})

	return r
}

// redisPinger avoids handing the health check a non-nil interface wrapping a
// nil client.
func redisPinger(client *pkgredis.Client) pkgredis.Pinger {
	if client == nil {
		return nil
	}
	return client
}

func idempotencyStore(client *pkgredis.Client) pkgredis.IdempotencyStore {
	if client == nil {
		return nil
	}
	return client
}
