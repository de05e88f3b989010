package repositories

import (
	"context"

	"rusty/internal/models"
)

// RustaceanRepository defines the interface for rustacean data access.
type RustaceanRepository interface {
	FindMultiple(ctx context.Context, limit int) ([]models.Rustacean, error)
	Find(ctx context.Context, id int) (*models.Rustacean, error)
	Create(ctx context.Context, newRustacean models.NewRustacean) (*models.Rustacean, error)
	Update(ctx context.Context, id int, rustacean models.Rustacean) (*models.Rustacean, error)
	// Delete refuses to remove a rustacean that still owns crates.
	Delete(ctx context.Context, id int) error
}
