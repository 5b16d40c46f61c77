package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/galleryops/artstore-backend/internal/testdb"
	"github.com/galleryops/artstore-backend/pkg/config"
	"github.com/galleryops/artstore-backend/pkg/db"
	"github.com/galleryops/artstore-backend/pkg/db/models"
	"github.com/galleryops/artstore-backend/pkg/enums"
)

func testStorageConfig() config.StorageConfig {
	return config.StorageConfig{ShelfCapacity: 50, HighUtilizationPct: 85, LowUtilizationPct: 10}
}

func newTestService(t *testing.T, cache reportCache) (Service, *db.Client) {
	t.Helper()
	client := testdb.Open(t)
	svc, err := NewService(NewRepository(client.DB()), cache, testStorageConfig(), config.ReportsConfig{CacheTTL: time.Minute})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, client
}

func seedArtwork(t *testing.T, client *db.Client, id string, value int64, category enums.ArtworkCategory, status enums.ArtworkStatus, loc models.Location) {
	t.Helper()
	art := &models.Artwork{
		ID:        id,
		Title:     "Piece " + id,
		Artist:    "Tester",
		Category:  category,
		Value:     decimal.NewFromInt(value),
		Condition: enums.ConditionGood,
		Status:    status,
		Location:  loc,
		Tags:      []string{},
		LastMoved: time.Now().UTC(),
	}
	if err := client.DB().Create(art).Error; err != nil {
		t.Fatalf("seed artwork %s: %v", id, err)
	}
}

func seedMovementAt(t *testing.T, client *db.Client, id string, warehouse enums.Warehouse, ts time.Time) {
	t.Helper()
	loc := models.Location{Warehouse: warehouse, Floor: 1, Shelf: 1, Box: 1, Folder: 1}
	to := loc
	to.Shelf = 2
	record := &models.Movement{
		ID:           id,
		ArtworkID:    "ART-1-seed",
		ArtworkTitle: "Seeded",
		From:         loc,
		To:           to,
		MovedBy:      models.DefaultMovedBy,
		Timestamp:    ts,
	}
	if err := client.DB().Create(record).Error; err != nil {
		t.Fatalf("seed movement %s: %v", id, err)
	}
}

func mainLocation(floor, shelf, box, folder int) models.Location {
	return models.Location{Warehouse: enums.WarehouseMain, Floor: floor, Shelf: shelf, Box: box, Folder: folder}
}

func TestValuationEmptySet(t *testing.T) {
	svc, _ := newTestService(t, nil)

	got, err := svc.Valuation(context.Background(), ValuationInput{})
	if err != nil {
		t.Fatalf("valuation: %v", err)
	}
	if got.Count != 0 {
		t.Fatalf("expected empty count, got %d", got.Count)
	}
	if !got.AverageValue.IsZero() || !got.TotalValue.IsZero() {
		t.Fatalf("expected zero totals, got avg=%s total=%s", got.AverageValue, got.TotalValue)
	}
	if got.Highest != nil || got.Lowest != nil {
		t.Fatal("expected no extremes for an empty set")
	}
}

func TestValuationTotalsAndExtremes(t *testing.T) {
	svc, client := newTestService(t, nil)

	seedArtwork(t, client, "ART-1-a", 100, enums.CategoryPainting, enums.StatusAvailable, mainLocation(1, 1, 1, 1))
	seedArtwork(t, client, "ART-2-b", 250, enums.CategoryPainting, enums.StatusAvailable, mainLocation(1, 1, 1, 2))
	seedArtwork(t, client, "ART-3-c", 1000, enums.CategorySculpture, enums.StatusSold, mainLocation(1, 2, 1, 1))

	got, err := svc.Valuation(context.Background(), ValuationInput{})
	if err != nil {
		t.Fatalf("valuation: %v", err)
	}
	if got.Count != 3 {
		t.Fatalf("expected 3 artworks, got %d", got.Count)
	}
	if !got.TotalValue.Equal(decimal.NewFromInt(1350)) {
		t.Fatalf("expected total 1350, got %s", got.TotalValue)
	}
	if !got.AverageValue.Equal(decimal.NewFromInt(450)) {
		t.Fatalf("expected average 450, got %s", got.AverageValue)
	}
	if got.Highest == nil || got.Highest.ID != "ART-3-c" {
		t.Fatalf("expected highest ART-3-c, got %+v", got.Highest)
	}
	if got.Lowest == nil || got.Lowest.ID != "ART-1-a" {
		t.Fatalf("expected lowest ART-1-a, got %+v", got.Lowest)
	}

	category := enums.CategoryPainting
	filtered, err := svc.Valuation(context.Background(), ValuationInput{Category: &category})
	if err != nil {
		t.Fatalf("filtered valuation: %v", err)
	}
	if filtered.Count != 2 || !filtered.TotalValue.Equal(decimal.NewFromInt(350)) {
		t.Fatalf("expected 2 paintings totalling 350, got %d / %s", filtered.Count, filtered.TotalValue)
	}
}

func TestUtilizationFlags(t *testing.T) {
	svc, client := newTestService(t, nil)

	// Shelf main/F1/S1 holds 45 of 50 (90%, high); main/F1/S2 holds 5 (10%, low).
	for i := 0; i < 45; i++ {
		box := i/5 + 1
		folder := i%5 + 1
		seedArtwork(t, client, fmt.Sprintf("ART-h-%02d", i), 10, enums.CategoryPainting, enums.StatusAvailable, mainLocation(1, 1, box, folder))
	}
	for i := 0; i < 5; i++ {
		seedArtwork(t, client, fmt.Sprintf("ART-l-%02d", i), 10, enums.CategoryPainting, enums.StatusAvailable, mainLocation(1, 2, 1, i+1))
	}

	got, err := svc.Utilization(context.Background(), UtilizationInput{})
	if err != nil {
		t.Fatalf("utilization: %v", err)
	}
	if got.OccupiedShelves != 2 || got.TotalArtworks != 50 {
		t.Fatalf("expected 2 shelves / 50 artworks, got %d / %d", got.OccupiedShelves, got.TotalArtworks)
	}

	high := got.Shelves[0]
	if high.Shelf != 1 || !high.High || high.Low {
		t.Fatalf("expected shelf 1 flagged high, got %+v", high)
	}
	if high.UtilizationPct != 90 {
		t.Fatalf("expected 90%% utilization, got %v", high.UtilizationPct)
	}

	low := got.Shelves[1]
	if low.Shelf != 2 || low.High || !low.Low {
		t.Fatalf("expected shelf 2 flagged low, got %+v", low)
	}
}

func TestUtilizationWarehouseFilter(t *testing.T) {
	svc, client := newTestService(t, nil)

	seedArtwork(t, client, "ART-1-a", 10, enums.CategoryPainting, enums.StatusAvailable, mainLocation(1, 1, 1, 1))
	vault := models.Location{Warehouse: enums.WarehouseVault, Floor: 1, Shelf: 1, Box: 1, Folder: 1}
	seedArtwork(t, client, "ART-2-b", 10, enums.CategoryPainting, enums.StatusAvailable, vault)

	warehouse := enums.WarehouseVault
	got, err := svc.Utilization(context.Background(), UtilizationInput{Warehouse: &warehouse})
	if err != nil {
		t.Fatalf("utilization: %v", err)
	}
	if got.OccupiedShelves != 1 || got.Shelves[0].Warehouse != enums.WarehouseVault {
		t.Fatalf("expected only the vault shelf, got %+v", got.Shelves)
	}
}

func TestActivityBucketsAndBusiestDay(t *testing.T) {
	svc, client := newTestService(t, nil)
	base := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)

	seedMovementAt(t, client, "MOV-1", enums.WarehouseMain, base)
	seedMovementAt(t, client, "MOV-2", enums.WarehouseMain, base.Add(2*time.Hour))
	seedMovementAt(t, client, "MOV-3", enums.WarehouseVault, base.Add(24*time.Hour))
	seedMovementAt(t, client, "MOV-4", enums.WarehouseMain, base.Add(-40*24*time.Hour)) // outside window

	since := base.Add(-24 * time.Hour)
	until := base.Add(72 * time.Hour)
	got, err := svc.Activity(context.Background(), ActivityInput{Since: &since, Until: &until})
	if err != nil {
		t.Fatalf("activity: %v", err)
	}
	if got.TotalMovements != 3 {
		t.Fatalf("expected 3 movements in window, got %d", got.TotalMovements)
	}
	if len(got.PerDay) != 2 {
		t.Fatalf("expected 2 day buckets, got %d", len(got.PerDay))
	}
	if got.BusiestDay == nil || got.BusiestDay.Day != "2026-08-10" || got.BusiestDay.Count != 2 {
		t.Fatalf("expected busiest day 2026-08-10 with 2 moves, got %+v", got.BusiestDay)
	}

	warehouse := enums.WarehouseVault
	filtered, err := svc.Activity(context.Background(), ActivityInput{Since: &since, Until: &until, Warehouse: &warehouse})
	if err != nil {
		t.Fatalf("filtered activity: %v", err)
	}
	if filtered.TotalMovements != 1 {
		t.Fatalf("expected 1 vault movement, got %d", filtered.TotalMovements)
	}
}

func TestActivityRejectsInvertedWindow(t *testing.T) {
	svc, _ := newTestService(t, nil)

	since := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	until := since.Add(-time.Hour)
	if _, err := svc.Activity(context.Background(), ActivityInput{Since: &since, Until: &until}); err == nil {
		t.Fatal("expected inverted window to fail")
	}
}

func TestDistributions(t *testing.T) {
	svc, client := newTestService(t, nil)

	seedArtwork(t, client, "ART-1-a", 10, enums.CategoryPainting, enums.StatusAvailable, mainLocation(1, 1, 1, 1))
	seedArtwork(t, client, "ART-2-b", 10, enums.CategoryPainting, enums.StatusSold, mainLocation(1, 1, 1, 2))
	seedArtwork(t, client, "ART-3-c", 10, enums.CategorySculpture, enums.StatusAvailable, mainLocation(1, 1, 2, 1))

	got, err := svc.Distributions(context.Background())
	if err != nil {
		t.Fatalf("distributions: %v", err)
	}
	if got.ByCategory["painting"] != 2 || got.ByCategory["sculpture"] != 1 {
		t.Fatalf("unexpected category distribution: %+v", got.ByCategory)
	}
	if got.ByStatus["available"] != 2 || got.ByStatus["sold"] != 1 {
		t.Fatalf("unexpected status distribution: %+v", got.ByStatus)
	}
	if got.ByCondition["good"] != 3 {
		t.Fatalf("unexpected condition distribution: %+v", got.ByCondition)
	}
}

// fakeCache records report cache traffic in memory.
type fakeCache struct {
	store map[string]string
	sets  int
	gets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	f.gets++
	if v, ok := f.store[key]; ok {
		return v, nil
	}
	return "", fmt.Errorf("cache miss")
}

func (f *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.sets++
	f.store[key] = fmt.Sprintf("%v", value)
	return nil
}

func (f *fakeCache) ReportKey(name, variant string) string {
	return "as:report:" + name + ":" + variant
}

func TestValuationUsesCache(t *testing.T) {
	cache := newFakeCache()
	svc, client := newTestService(t, cache)

	seedArtwork(t, client, "ART-1-a", 100, enums.CategoryPainting, enums.StatusAvailable, mainLocation(1, 1, 1, 1))

	first, err := svc.Valuation(context.Background(), ValuationInput{})
	if err != nil {
		t.Fatalf("first valuation: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	// A second identical request must be served from the cache even though the
	// underlying data changed.
	seedArtwork(t, client, "ART-2-b", 900, enums.CategoryPainting, enums.StatusAvailable, mainLocation(1, 1, 1, 2))
	second, err := svc.Valuation(context.Background(), ValuationInput{})
	if err != nil {
		t.Fatalf("second valuation: %v", err)
	}
	if second.Count != first.Count {
		t.Fatalf("expected cached count %d, got %d", first.Count, second.Count)
	}
}
