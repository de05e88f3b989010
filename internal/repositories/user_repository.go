package repositories

import (
	"context"

	"rusty/internal/models"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create inserts the user and links it to the roles named by roleCodes
	// atomically. An unknown role code leaves nothing persisted.
	Create(ctx context.Context, newUser models.NewUser, roleCodes []string) (*models.User, error)
	FindWithRoles(ctx context.Context) ([]models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Delete(ctx context.Context, id int) error
}
