package repositories

import (
	"context"
	"errors"

	"rusty/internal/apperrors"
	"rusty/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a user and its role assignments in one transaction.
func (r *GORMUserRepository) Create(ctx context.Context, newUser models.NewUser, roleCodes []string) (*models.User, error) {
	user := models.User{
		Username: newUser.Username,
		Password: newUser.Password,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if isUniqueViolation(err) {
				return apperrors.Errorf(apperrors.Conflict, "create user", "username %q already taken", newUser.Username)
			}
			return dbError("create user", err)
		}

		roles, err := findRolesByCodes(tx, roleCodes)
		if err != nil {
			return err
		}

		if len(roles) > 0 {
			links := make([]models.UserRole, 0, len(roles))
			for _, role := range roles {
				links = append(links, models.UserRole{UserID: user.ID, RoleID: role.ID})
			}
			if err := tx.Create(&links).Error; err != nil {
				return dbError("assign roles", err)
			}
		}
		user.Roles = roles
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindWithRoles returns every user with its roles, ordered by ID.
func (r *GORMUserRepository) FindWithRoles(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	err := r.db.WithContext(ctx).
		Preload("Roles", orderRoles).
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, dbError("find users", err)
	}
	return users, nil
}

// FindByUsername retrieves a user and its roles by username.
func (r *GORMUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Roles", orderRoles).
		First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Errorf(apperrors.NotFound, "find user", "user with username %s not found", username)
		}
		return nil, dbError("find user", err)
	}
	return &user, nil
}

// Delete removes a user together with its role assignments.
func (r *GORMUserRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.UserRole{}).Error; err != nil {
			return dbError("delete user roles", err)
		}

		res := tx.Delete(&models.User{}, id)
		if res.Error != nil {
			return dbError("delete user", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.Errorf(apperrors.NotFound, "delete user", "user with ID %d not found", id)
		}
		return nil
	})
}

func orderRoles(db *gorm.DB) *gorm.DB {
	return db.Order("roles.id")
}
