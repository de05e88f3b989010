package repositories

import (
	"context"
	"sort"
	"strings"

	"rusty/internal/apperrors"
	"rusty/internal/models"

	"gorm.io/gorm"
)

// GORMRoleRepository is a GORM implementation of RoleRepository.
type GORMRoleRepository struct {
	db *gorm.DB
}

// NewGORMRoleRepository creates a new instance of GORMRoleRepository.
func NewGORMRoleRepository(db *gorm.DB) *GORMRoleRepository {
	return &GORMRoleRepository{
		db: db,
	}
}

// FindByUser returns the roles assigned to user through user_roles.
func (r *GORMRoleRepository) FindByUser(ctx context.Context, user *models.User) ([]models.Role, error) {
	roles := make([]models.Role, 0)
	err := r.db.WithContext(ctx).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", user.ID).
		Order("roles.id").
		Find(&roles).Error
	if err != nil {
		return nil, dbError("find roles by user", err)
	}
	return roles, nil
}

// FindByCodes resolves role codes, failing when any code is unknown.
func (r *GORMRoleRepository) FindByCodes(ctx context.Context, codes []string) ([]models.Role, error) {
	return findRolesByCodes(r.db.WithContext(ctx), codes)
}

func findRolesByCodes(db *gorm.DB, codes []string) ([]models.Role, error) {
	unique := make([]string, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		unique = append(unique, code)
	}

	roles := make([]models.Role, 0, len(unique))
	if len(unique) == 0 {
		return roles, nil
	}
	if err := db.Where("code IN ?", unique).Order("id").Find(&roles).Error; err != nil {
		return nil, dbError("find roles", err)
	}

	if len(roles) != len(unique) {
		for _, role := range roles {
			delete(seen, role.Code)
		}
		missing := make([]string, 0, len(seen))
		for code := range seen {
			missing = append(missing, code)
		}
		sort.Strings(missing)
		return nil, apperrors.Errorf(apperrors.Validation, "find roles", "unknown role code(s): %s", strings.Join(missing, ", "))
	}
	return roles, nil
}
