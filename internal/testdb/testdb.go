// Package testdb provisions isolated databases for repository and service
// tests. Each test gets its own shared-cache in-memory sqlite database with
// the schema auto-migrated; live postgres coverage is opt-in through the
// ARTSTORE_DB_DSN variable checked by the individual test files.
package testdb

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/galleryops/artstore-backend/pkg/config"
	"github.com/galleryops/artstore-backend/pkg/db"
	"github.com/galleryops/artstore-backend/pkg/db/models"
)

// Open returns a migrated client backed by an in-memory database scoped to
// the test name. The connection pool is closed when the test finishes.
func Open(t *testing.T) *db.Client {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	client, err := db.New(context.Background(), config.DBConfig{
		Driver: config.DriverSQLite,
		DSN:    dsn,
	}, nil)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	if err := client.DB().AutoMigrate(&models.Artwork{}, &models.Movement{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return client
}
