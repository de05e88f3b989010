package repositories

import (
	"context"
	"errors"

	"rusty/internal/apperrors"
	"rusty/internal/models"

	"gorm.io/gorm"
)

// GORMRustaceanRepository is a GORM implementation of RustaceanRepository.
type GORMRustaceanRepository struct {
	db *gorm.DB
}

// NewGORMRustaceanRepository creates a new instance of GORMRustaceanRepository.
func NewGORMRustaceanRepository(db *gorm.DB) *GORMRustaceanRepository {
	return &GORMRustaceanRepository{
		db: db,
	}
}

// FindMultiple returns up to limit rustaceans ordered by ID.
func (r *GORMRustaceanRepository) FindMultiple(ctx context.Context, limit int) ([]models.Rustacean, error) {
	rustaceans := make([]models.Rustacean, 0)
	if err := r.db.WithContext(ctx).Order("id").Limit(limit).Find(&rustaceans).Error; err != nil {
		return nil, dbError("find rustaceans", err)
	}
	return rustaceans, nil
}

// Find retrieves a single rustacean by its ID.
func (r *GORMRustaceanRepository) Find(ctx context.Context, id int) (*models.Rustacean, error) {
	return findRustacean(r.db.WithContext(ctx), id)
}

// Create inserts a rustacean and returns it with its generated ID and timestamp.
func (r *GORMRustaceanRepository) Create(ctx context.Context, newRustacean models.NewRustacean) (*models.Rustacean, error) {
	rustacean := models.Rustacean{
		Name:  newRustacean.Name,
		Email: newRustacean.Email,
	}
	if err := r.db.WithContext(ctx).Create(&rustacean).Error; err != nil {
		return nil, dbError("create rustacean", err)
	}
	return &rustacean, nil
}

// Update overwrites the name and email of an existing rustacean.
func (r *GORMRustaceanRepository) Update(ctx context.Context, id int, rustacean models.Rustacean) (*models.Rustacean, error) {
	var updated *models.Rustacean
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findRustacean(tx, id); err != nil {
			return err
		}
		res := tx.Model(&models.Rustacean{}).Where("id = ?", id).Updates(map[string]any{
			"name":  rustacean.Name,
			"email": rustacean.Email,
		})
		if res.Error != nil {
			return dbError("update rustacean", res.Error)
		}

		var err error
		updated, err = findRustacean(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a rustacean that owns no crates.
func (r *GORMRustaceanRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findRustacean(tx, id); err != nil {
			return err
		}

		var owned int64
		if err := tx.Model(&models.Crate{}).Where("rustacean_id = ?", id).Count(&owned).Error; err != nil {
			return dbError("count crates", err)
		}
		if owned > 0 {
			return apperrors.Errorf(apperrors.Conflict, "delete rustacean",
				"rustacean with ID %d still owns %d crate(s)", id, owned)
		}

		if err := tx.Delete(&models.Rustacean{}, id).Error; err != nil {
			return dbError("delete rustacean", err)
		}
		return nil
	})
}

func findRustacean(db *gorm.DB, id int) (*models.Rustacean, error) {
	var rustacean models.Rustacean
	if err := db.First(&rustacean, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Errorf(apperrors.NotFound, "find rustacean", "rustacean with ID %d not found", id)
		}
		return nil, dbError("find rustacean", err)
	}
	return &rustacean, nil
}
