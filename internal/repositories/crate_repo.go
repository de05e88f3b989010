package repositories

import (
	"context"

	"rusty/internal/models"
)

// CrateRepository defines the interface for crate data access.
type CrateRepository interface {
	FindMultiple(ctx context.Context, limit int) ([]models.Crate, error)
	Find(ctx context.Context, id int) (*models.Crate, error)
	FindByRustacean(ctx context.Context, rustaceanID int) ([]models.Crate, error)
	Create(ctx context.Context, newCrate models.NewCrate) (*models.Crate, error)
	Update(ctx context.Context, id int, crate models.Crate) (*models.Crate, error)
	Delete(ctx context.Context, id int) error
}
