package helpers

import (
	"testing"

	"gorm.io/gorm"

	"github.com/andrescamacho/outpost-go/internal/infrastructure/database"
)

// NewTestDB returns a private, migrated in-memory database closed with the test
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.NewTestConnection()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
