package models

import (
	"strings"
	"testing"

	"github.com/galleryops/artstore-backend/pkg/enums"
)

func validLocation() Location {
	return Location{
		Warehouse: enums.WarehouseMain,
		Floor:     2,
		Shelf:     14,
		Box:       3,
		Folder:    1,
	}
}

func TestLocationValidate(t *testing.T) {
	if err := validLocation().Validate(); err != nil {
		t.Fatalf("expected valid location, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Location)
	}{
		{"missing warehouse", func(l *Location) { l.Warehouse = "" }},
		{"unknown warehouse", func(l *Location) { l.Warehouse = "basement" }},
		{"floor unset", func(l *Location) { l.Floor = 0 }},
		{"floor too high", func(l *Location) { l.Floor = 4 }},
		{"shelf too high", func(l *Location) { l.Shelf = 31 }},
		{"box unset", func(l *Location) { l.Box = 0 }},
		{"folder too high", func(l *Location) { l.Folder = 6 }},
	}
	for _, tc := range cases {
		loc := validLocation()
		tc.mutate(&loc)
		if err := loc.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestLocationEqual(t *testing.T) {
	a := validLocation()
	b := validLocation()
	if !a.Equal(b) {
		t.Fatal("identical locations should be equal")
	}
	b.Folder = 2
	if a.Equal(b) {
		t.Fatal("different folders should not be equal")
	}
}

func TestLocationString(t *testing.T) {
	got := validLocation().String()
	if got != "main/F2/S14/B3/P1" {
		t.Fatalf("unexpected rendering %q", got)
	}
}

func TestIDGenerators(t *testing.T) {
	artID := NewArtworkID()
	if !strings.HasPrefix(artID, "ART-") {
		t.Fatalf("unexpected artwork id %q", artID)
	}
	movID := NewMovementID()
	if !strings.HasPrefix(movID, "MOV-") {
		t.Fatalf("unexpected movement id %q", movID)
	}
	if NewMovementID() == NewMovementID() {
		t.Fatal("expected movement ids to be unique")
	}
}
