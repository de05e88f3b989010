package testutil

import (
	"fmt"
	"testing"

	"rusty/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewDB opens an isolated in-memory SQLite database with the schema migrated
// and default roles seeded. It is closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := database.Open("sqlite", dsn, nil)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	if err := database.SeedRoles(db); err != nil {
		t.Fatalf("seed test database: %v", err)
	}
	return db
}
