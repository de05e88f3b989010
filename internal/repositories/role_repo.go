package repositories

import (
	"context"

	"rusty/internal/models"
)

// RoleRepository defines the interface for role data access.
type RoleRepository interface {
	FindByUser(ctx context.Context, user *models.User) ([]models.Role, error)
	FindByCodes(ctx context.Context, codes []string) ([]models.Role, error)
}
