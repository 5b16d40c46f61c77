package artwork

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	movement "github.com/galleryops/artstore-backend/internal/movements"
	"github.com/galleryops/artstore-backend/internal/testdb"
	"github.com/galleryops/artstore-backend/pkg/db"
	"github.com/galleryops/artstore-backend/pkg/db/models"
	"github.com/galleryops/artstore-backend/pkg/enums"
	pkgerrors "github.com/galleryops/artstore-backend/pkg/errors"
)

type testEnv struct {
	svc       Service
	client    *db.Client
	repo      *Repository
	movements *movement.Repository
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	client := testdb.Open(t)
	repo := NewRepository(client.DB())
	movements := movement.NewRepository(client.DB())
	svc, err := NewService(repo, movements, client, nil)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return testEnv{svc: svc, client: client, repo: repo, movements: movements}
}

func validCreateInput() CreateArtworkInput {
	return CreateArtworkInput{
		Title:  "Nighthawks Study",
		Artist: "E. Hopper",
		Value:  decimal.NewFromInt(1200),
		Location: models.Location{
			Warehouse: enums.WarehouseMain,
			Floor:     1,
			Shelf:     4,
			Box:       2,
			Folder:    1,
		},
		Tags: []string{"oil", "study"},
	}
}

func mustCreate(t *testing.T, svc Service, input CreateArtworkInput) *ArtworkDTO {
	t.Helper()
	dto, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create artwork: %v", err)
	}
	return dto
}

func assertCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected coded error %s, got %v", code, err)
	}
	if typed.Code() != code {
		t.Fatalf("expected code %s, got %s (%v)", code, typed.Code(), err)
	}
}

func TestCreateAppliesDefaultsAndGeneratesID(t *testing.T) {
	env := newTestEnv(t)

	dto := mustCreate(t, env.svc, validCreateInput())

	if dto.ID == "" {
		t.Fatal("expected generated id")
	}
	if dto.Category != enums.CategoryPainting {
		t.Fatalf("expected default category painting, got %s", dto.Category)
	}
	if dto.Condition != enums.ConditionGood {
		t.Fatalf("expected default condition good, got %s", dto.Condition)
	}
	if dto.Status != enums.StatusAvailable {
		t.Fatalf("expected default status available, got %s", dto.Status)
	}
	if dto.DateAdded.IsZero() || dto.LastMoved.IsZero() {
		t.Fatal("expected dateAdded and lastMoved to be set")
	}
}

func TestCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name   string
		mutate func(*CreateArtworkInput)
	}{
		{"missing title", func(in *CreateArtworkInput) { in.Title = "  " }},
		{"missing artist", func(in *CreateArtworkInput) { in.Artist = "" }},
		{"negative value", func(in *CreateArtworkInput) { in.Value = decimal.NewFromInt(-1) }},
		{"bad category", func(in *CreateArtworkInput) { in.Category = "pottery" }},
		{"bad status", func(in *CreateArtworkInput) { in.Status = "lost" }},
		{"incomplete location", func(in *CreateArtworkInput) { in.Location.Folder = 0 }},
		{"floor out of range", func(in *CreateArtworkInput) { in.Location.Floor = 4 }},
		{"shelf out of range", func(in *CreateArtworkInput) { in.Location.Shelf = 31 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreateInput()
			tc.mutate(&input)
			_, err := env.svc.Create(context.Background(), input)
			assertCode(t, err, pkgerrors.CodeValidation)
		})
	}
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	env := newTestEnv(t)

	input := validCreateInput()
	input.ID = "ART-123-fixed"
	mustCreate(t, env.svc, input)

	_, err := env.svc.Create(context.Background(), input)
	assertCode(t, err, pkgerrors.CodeConflict)
}

func TestGetNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Get(context.Background(), "ART-404-missing")
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestUpdateMutatesFieldsButNotLocation(t *testing.T) {
	env := newTestEnv(t)
	created := mustCreate(t, env.svc, validCreateInput())

	title := "Nighthawks, Final"
	status := enums.StatusOnLoan
	value := decimal.NewFromFloat(2500.50)
	updated, err := env.svc.Update(context.Background(), created.ID, UpdateArtworkInput{
		Title:  &title,
		Status: &status,
		Value:  &value,
	})
	if err != nil {
		t.Fatalf("update artwork: %v", err)
	}

	if updated.Title != title {
		t.Fatalf("expected title %q, got %q", title, updated.Title)
	}
	if updated.Status != status {
		t.Fatalf("expected status %s, got %s", status, updated.Status)
	}
	if !updated.Value.Equal(value) {
		t.Fatalf("expected value %s, got %s", value, updated.Value)
	}
	if updated.Location != created.Location {
		t.Fatal("update must not change location")
	}
	if !updated.DateAdded.Equal(created.DateAdded) {
		t.Fatal("update must not change dateAdded")
	}
}

func TestUpdateRejectsEmptyTitle(t *testing.T) {
	env := newTestEnv(t)
	created := mustCreate(t, env.svc, validCreateInput())

	empty := "   "
	_, err := env.svc.Update(context.Background(), created.ID, UpdateArtworkInput{Title: &empty})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestDeleteCascadesMovements(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := mustCreate(t, env.svc, validCreateInput())

	if _, err := env.svc.Relocate(ctx, created.ID, RelocateInput{Target: otherLocation(created.Location)}); err != nil {
		t.Fatalf("relocate: %v", err)
	}

	if err := env.svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete artwork: %v", err)
	}

	if _, err := env.svc.Get(ctx, created.ID); pkgerrors.As(err) == nil || pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected artwork gone, got %v", err)
	}
	count, err := env.movements.CountByArtwork(ctx, created.ID)
	if err != nil {
		t.Fatalf("count movements: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected movement history deleted, found %d rows", count)
	}
}

func TestDeleteNotFound(t *testing.T) {
	env := newTestEnv(t)
	err := env.svc.Delete(context.Background(), "ART-404-missing")
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func otherLocation(l models.Location) models.Location {
	out := l
	out.Shelf = l.Shelf%models.MaxShelf + 1
	return out
}

func TestRelocateRecordsMovementAndUpdatesArtwork(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := mustCreate(t, env.svc, validCreateInput())

	target := models.Location{Warehouse: enums.WarehouseVault, Floor: 2, Shelf: 10, Box: 3, Folder: 5}
	moved, err := env.svc.Relocate(ctx, created.ID, RelocateInput{Target: target, MovedBy: "curator", Notes: "insurance audit"})
	if err != nil {
		t.Fatalf("relocate: %v", err)
	}

	if moved.Location != target {
		t.Fatalf("expected location %s, got %s", target, moved.Location)
	}
	if !moved.LastMoved.After(created.LastMoved) {
		t.Fatal("expected lastMoved to advance")
	}

	rows, err := env.movements.ListPage(ctx, movement.ListQuery{ArtworkID: created.ID, Limit: 10})
	if err != nil {
		t.Fatalf("list movements: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(rows))
	}
	record := rows[0]
	if record.From != created.Location || record.To != target {
		t.Fatalf("unexpected movement endpoints: from %s to %s", record.From, record.To)
	}
	if record.ArtworkTitle != created.Title {
		t.Fatalf("expected title snapshot %q, got %q", created.Title, record.ArtworkTitle)
	}
	if record.MovedBy != "curator" {
		t.Fatalf("expected movedBy curator, got %q", record.MovedBy)
	}
}

func TestRelocateDefaultsActorToSystem(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := mustCreate(t, env.svc, validCreateInput())

	if _, err := env.svc.Relocate(ctx, created.ID, RelocateInput{Target: otherLocation(created.Location)}); err != nil {
		t.Fatalf("relocate: %v", err)
	}
	rows, err := env.movements.ListPage(ctx, movement.ListQuery{ArtworkID: created.ID, Limit: 1})
	if err != nil {
		t.Fatalf("list movements: %v", err)
	}
	if rows[0].MovedBy != models.DefaultMovedBy {
		t.Fatalf("expected movedBy %q, got %q", models.DefaultMovedBy, rows[0].MovedBy)
	}
}

func TestRelocateSameLocationRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := mustCreate(t, env.svc, validCreateInput())

	_, err := env.svc.Relocate(ctx, created.ID, RelocateInput{Target: created.Location})
	assertCode(t, err, pkgerrors.CodeStateConflict)

	count, err := env.movements.CountByArtwork(ctx, created.ID)
	if err != nil {
		t.Fatalf("count movements: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected move must not write audit records, found %d", count)
	}
}

func TestRelocateInvalidTarget(t *testing.T) {
	env := newTestEnv(t)
	created := mustCreate(t, env.svc, validCreateInput())

	target := created.Location
	target.Box = models.MaxBox + 1
	_, err := env.svc.Relocate(context.Background(), created.ID, RelocateInput{Target: target})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestRelocateUnknownArtwork(t *testing.T) {
	env := newTestEnv(t)
	input := validCreateInput()
	_, err := env.svc.Relocate(context.Background(), "ART-404-missing", RelocateInput{Target: input.Location})
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestRelocateRollsBackWhenAuditWriteFails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	created := mustCreate(t, env.svc, validCreateInput())

	// Force the movement insert to fail mid-transaction.
	if err := env.client.DB().Migrator().DropTable(&models.Movement{}); err != nil {
		t.Fatalf("drop movements table: %v", err)
	}

	_, err := env.svc.Relocate(ctx, created.ID, RelocateInput{Target: otherLocation(created.Location)})
	if err == nil {
		t.Fatal("expected relocation to fail")
	}

	reloaded, err := env.svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("reload artwork: %v", err)
	}
	if reloaded.Location != created.Location {
		t.Fatal("failed relocation must leave the artwork where it was")
	}
	if !reloaded.LastMoved.Equal(created.LastMoved) {
		t.Fatal("failed relocation must not touch lastMoved")
	}
}

func TestBulkRelocateBestEffort(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := mustCreate(t, env.svc, validCreateInput())
	secondInput := validCreateInput()
	secondInput.Title = "Second Study"
	second := mustCreate(t, env.svc, secondInput)

	target := models.Location{Warehouse: enums.WarehouseAnnex, Floor: 3, Shelf: 1, Box: 1, Folder: 2}
	result, err := env.svc.BulkRelocate(ctx, BulkRelocateInput{
		ArtworkIDs: []string{first.ID, "ART-404-missing", second.ID},
		Target:     target,
	})
	if err != nil {
		t.Fatalf("bulk relocate: %v", err)
	}

	if result.Moved != 2 || result.Failed != 1 {
		t.Fatalf("expected 2 moved / 1 failed, got %d / %d", result.Moved, result.Failed)
	}
	if len(result.Results) != 3 {
		t.Fatalf("expected 3 item results, got %d", len(result.Results))
	}
	if result.Results[1].Success || result.Results[1].Error == "" {
		t.Fatalf("expected failure detail for missing artwork, got %+v", result.Results[1])
	}

	for _, id := range []string{first.ID, second.ID} {
		dto, err := env.svc.Get(ctx, id)
		if err != nil {
			t.Fatalf("reload %s: %v", id, err)
		}
		if dto.Location != target {
			t.Fatalf("expected %s at %s, got %s", id, target, dto.Location)
		}
	}
}

func TestBulkRelocateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.BulkRelocate(ctx, BulkRelocateInput{Target: validCreateInput().Location})
	assertCode(t, err, pkgerrors.CodeValidation)

	_, err = env.svc.BulkRelocate(ctx, BulkRelocateInput{
		ArtworkIDs: []string{"ART-1"},
		Target:     models.Location{Warehouse: "nowhere", Floor: 1, Shelf: 1, Box: 1, Folder: 1},
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestGetByLocationPrefixFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a := validCreateInput()
	a.Title = "Alpha"
	mustCreate(t, env.svc, a)

	b := validCreateInput()
	b.Title = "Beta"
	b.Location.Floor = 2
	mustCreate(t, env.svc, b)

	c := validCreateInput()
	c.Title = "Gamma"
	c.Location.Warehouse = enums.WarehouseEast
	mustCreate(t, env.svc, c)

	warehouse := enums.WarehouseMain
	floor := 1
	got, err := env.svc.GetByLocation(ctx, LocationFilter{Warehouse: &warehouse, Floor: &floor})
	if err != nil {
		t.Fatalf("get by location: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Alpha" {
		t.Fatalf("expected only Alpha on main/F1, got %d rows", len(got))
	}

	got, err = env.svc.GetByLocation(ctx, LocationFilter{Warehouse: &warehouse})
	if err != nil {
		t.Fatalf("get by warehouse: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 artworks in main, got %d", len(got))
	}
	if got[0].Title != "Alpha" || got[1].Title != "Beta" {
		t.Fatalf("expected title-ascending order, got %s, %s", got[0].Title, got[1].Title)
	}
}

func TestGetByLocationEnforcesPrefixRule(t *testing.T) {
	env := newTestEnv(t)

	shelf := 4
	_, err := env.svc.GetByLocation(context.Background(), LocationFilter{Shelf: &shelf})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestSearchTermAndFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a := validCreateInput()
	a.Title = "Harbor at Dusk"
	a.Artist = "M. Rivera"
	a.Value = decimal.NewFromInt(500)
	a.Tags = []string{"seascape"}
	mustCreate(t, env.svc, a)

	b := validCreateInput()
	b.Title = "City Lights"
	b.Artist = "A. Harborne"
	b.Value = decimal.NewFromInt(3000)
	b.Tags = []string{"urban"}
	mustCreate(t, env.svc, b)

	// Term matches title of one and artist of the other.
	got, err := env.svc.Search(ctx, SearchInput{Term: "harbor"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for %q, got %d", "harbor", len(got))
	}

	got, err = env.svc.Search(ctx, SearchInput{Term: "seascape"})
	if err != nil {
		t.Fatalf("search by tag: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Harbor at Dusk" {
		t.Fatalf("expected tag match on Harbor at Dusk, got %d rows", len(got))
	}

	min := decimal.NewFromInt(1000)
	got, err = env.svc.Search(ctx, SearchInput{MinValue: &min})
	if err != nil {
		t.Fatalf("search by value: %v", err)
	}
	if len(got) != 1 || got[0].Title != "City Lights" {
		t.Fatalf("expected only City Lights above 1000, got %d rows", len(got))
	}
}

func TestSearchValueRangeValidation(t *testing.T) {
	env := newTestEnv(t)

	min := decimal.NewFromInt(100)
	max := decimal.NewFromInt(50)
	_, err := env.svc.Search(context.Background(), SearchInput{MinValue: &min, MaxValue: &max})
	assertCode(t, err, pkgerrors.CodeValidation)

	neg := decimal.NewFromInt(-5)
	_, err = env.svc.Search(context.Background(), SearchInput{MinValue: &neg})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestListNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three"} {
		in := validCreateInput()
		in.Title = title
		mustCreate(t, env.svc, in)
	}

	got, err := env.svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 artworks, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].DateAdded.After(got[i-1].DateAdded) {
			t.Fatal("expected newest-first ordering")
		}
	}
}
