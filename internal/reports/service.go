package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/galleryops/artstore-backend/pkg/config"
	"github.com/galleryops/artstore-backend/pkg/enums"
	pkgerrors "github.com/galleryops/artstore-backend/pkg/errors"
)

// defaultActivityWindow is used when the caller supplies no start bound.
const defaultActivityWindow = 30 * 24 * time.Hour

// Service exposes the reporting aggregations.
type Service interface {
	Valuation(ctx context.Context, input ValuationInput) (*ValuationReport, error)
	Utilization(ctx context.Context, input UtilizationInput) (*UtilizationReport, error)
	Activity(ctx context.Context, input ActivityInput) (*ActivityReport, error)
	Distributions(ctx context.Context) (*DistributionReport, error)
}

// reportCache is the slice of the redis client used for short-TTL report
// caching. A nil cache disables caching entirely.
type reportCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	ReportKey(name, variant string) string
}

type service struct {
	repo    *Repository
	cache   reportCache
	storage config.StorageConfig
	ttl     time.Duration
	now     func() time.Time
}

// NewService constructs a report service instance. cache may be nil.
func NewService(repo *Repository, cache reportCache, storage config.StorageConfig, reports config.ReportsConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("report repository required")
	}
	if storage.ShelfCapacity <= 0 {
		return nil, fmt.Errorf("shelf capacity must be positive")
	}
	return &service{
		repo:    repo,
		cache:   cache,
		storage: storage,
		ttl:     reports.CacheTTL,
		now:     time.Now,
	}, nil
}

// Valuation reports count, total, average, and the value extremes.
func (s *service) Valuation(ctx context.Context, input ValuationInput) (*ValuationReport, error) {
	variant := fmt.Sprintf("cat=%s|status=%s", derefEnum(input.Category), derefEnum(input.Status))
	if cached, ok := cacheLookup[ValuationReport](ctx, s.cache, "valuation", variant); ok {
		return cached, nil
	}

	count, total, err := s.repo.ValuationTotals(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "computing valuation totals")
	}

	report := &ValuationReport{
		Count:        count,
		TotalValue:   total,
		AverageValue: decimal.Zero,
	}
	if count > 0 {
		report.AverageValue = total.DivRound(decimal.NewFromInt(count), 2)

		if report.Highest, err = s.repo.ValuationExtreme(ctx, input, true); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finding highest valued artwork")
		}
		if report.Lowest, err = s.repo.ValuationExtreme(ctx, input, false); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finding lowest valued artwork")
		}
	}

	s.cacheStore(ctx, "valuation", variant, report)
	return report, nil
}

// Utilization reports per-shelf fill levels against the configured capacity.
func (s *service) Utilization(ctx context.Context, input UtilizationInput) (*UtilizationReport, error) {
	variant := fmt.Sprintf("wh=%s", derefEnum(input.Warehouse))
	if cached, ok := cacheLookup[UtilizationReport](ctx, s.cache, "utilization", variant); ok {
		return cached, nil
	}

	counts, err := s.repo.ShelfCounts(ctx, input)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting shelf occupancy")
	}

	report := &UtilizationReport{
		ShelfCapacity: s.storage.ShelfCapacity,
		Shelves:       make([]ShelfUtilization, 0, len(counts)),
	}
	for _, row := range counts {
		pct := float64(row.Count) * 100 / float64(s.storage.ShelfCapacity)
		report.Shelves = append(report.Shelves, ShelfUtilization{
			Warehouse:      parseWarehouseColumn(row.Warehouse),
			Floor:          row.Floor,
			Shelf:          row.Shelf,
			ArtworkCount:   row.Count,
			Capacity:       s.storage.ShelfCapacity,
			UtilizationPct: pct,
			High:           pct >= float64(s.storage.HighUtilizationPct),
			Low:            pct > 0 && pct <= float64(s.storage.LowUtilizationPct),
		})
		report.TotalArtworks += row.Count
	}
	report.OccupiedShelves = len(report.Shelves)

	s.cacheStore(ctx, "utilization", variant, report)
	return report, nil
}

// Activity counts movements in the window and buckets them per UTC day.
func (s *service) Activity(ctx context.Context, input ActivityInput) (*ActivityReport, error) {
	until := s.now().UTC()
	if input.Until != nil {
		until = input.Until.UTC()
	}
	since := until.Add(-defaultActivityWindow)
	if input.Since != nil {
		since = input.Since.UTC()
	}
	if !since.Before(until) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "activity window start must precede its end")
	}

	stamps, err := s.repo.MovementTimestamps(ctx, input, since, until)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading movement activity")
	}

	report := &ActivityReport{
		WindowStart:    since,
		WindowEnd:      until,
		TotalMovements: int64(len(stamps)),
		PerDay:         []DayActivity{},
	}

	buckets := map[string]int64{}
	order := []string{}
	for _, ts := range stamps {
		day := ts.UTC().Format("2006-01-02")
		if _, ok := buckets[day]; !ok {
			order = append(order, day)
		}
		buckets[day]++
	}
	for _, day := range order {
		report.PerDay = append(report.PerDay, DayActivity{Day: day, Count: buckets[day]})
	}
	for i := range report.PerDay {
		if report.BusiestDay == nil || report.PerDay[i].Count > report.BusiestDay.Count {
			report.BusiestDay = &report.PerDay[i]
		}
	}
	return report, nil
}

// Distributions counts artworks per category, status, and condition.
func (s *service) Distributions(ctx context.Context) (*DistributionReport, error) {
	if cached, ok := cacheLookup[DistributionReport](ctx, s.cache, "distributions", ""); ok {
		return cached, nil
	}

	report := &DistributionReport{}
	var err error
	if report.ByCategory, err = s.repo.CountsBy(ctx, "category"); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting by category")
	}
	if report.ByStatus, err = s.repo.CountsBy(ctx, "status"); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting by status")
	}
	if report.ByCondition, err = s.repo.CountsBy(ctx, "condition"); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting by condition")
	}

	s.cacheStore(ctx, "distributions", "", report)
	return report, nil
}

func derefEnum[T ~string](v *T) string {
	if v == nil {
		return ""
	}
	return string(*v)
}

func parseWarehouseColumn(value string) enums.Warehouse {
	return enums.Warehouse(value)
}

// cacheLookup returns the decoded cached report on a hit. Errors and decode
// failures are treated as misses.
func cacheLookup[T any](ctx context.Context, cache reportCache, name, variant string) (*T, bool) {
	if cache == nil {
		return nil, false
	}
	raw, err := cache.Get(ctx, cache.ReportKey(name, variant))
	if err != nil {
		return nil, false
	}
	var report T
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, false
	}
	return &report, true
}

// cacheStore writes the report best-effort; a failed write never fails the
// request.
func (s *service) cacheStore(ctx context.Context, name, variant string, report any) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	_ = s.cache.Set(ctx, s.cache.ReportKey(name, variant), string(raw), s.ttl)
}
