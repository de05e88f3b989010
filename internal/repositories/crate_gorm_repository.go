package repositories

import (
	"context"
	"errors"

	"rusty/internal/apperrors"
	"rusty/internal/models"

	"gorm.io/gorm"
)

// GORMCrateRepository is a GORM implementation of CrateRepository.
type GORMCrateRepository struct {
	db *gorm.DB
}

// NewGORMCrateRepository creates a new instance of GORMCrateRepository.
func NewGORMCrateRepository(db *gorm.DB) *GORMCrateRepository {
	return &GORMCrateRepository{
		db: db,
	}
}

// FindMultiple returns up to limit crates ordered by ID.
func (r *GORMCrateRepository) FindMultiple(ctx context.Context, limit int) ([]models.Crate, error) {
	crates := make([]models.Crate, 0)
	if err := r.db.WithContext(ctx).Order("id").Limit(limit).Find(&crates).Error; err != nil {
		return nil, dbError("find crates", err)
	}
	return crates, nil
}

// Find retrieves a single crate by its ID.
func (r *GORMCrateRepository) Find(ctx context.Context, id int) (*models.Crate, error) {
	return findCrate(r.db.WithContext(ctx), id)
}

// FindByRustacean returns the crates owned by a rustacean.
func (r *GORMCrateRepository) FindByRustacean(ctx context.Context, rustaceanID int) ([]models.Crate, error) {
	db := r.db.WithContext(ctx)
	if _, err := findRustacean(db, rustaceanID); err != nil {
		return nil, err
	}

	crates := make([]models.Crate, 0)
	if err := db.Where("rustacean_id = ?", rustaceanID).Order("id").Find(&crates).Error; err != nil {
		return nil, dbError("find crates by rustacean", err)
	}
	return crates, nil
}

// Create inserts a crate owned by an existing rustacean.
func (r *GORMCrateRepository) Create(ctx context.Context, newCrate models.NewCrate) (*models.Crate, error) {
	crate := models.Crate{
		RustaceanID: newCrate.RustaceanID,
		Code:        newCrate.Code,
		Name:        newCrate.Name,
		Version:     newCrate.Version,
		Description: newCrate.Description,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureOwner(tx, "create crate", crate.RustaceanID); err != nil {
			return err
		}
		if err := tx.Create(&crate).Error; err != nil {
			return dbError("create crate", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &crate, nil
}

// Update overwrites every mutable field of a crate, owner included.
func (r *GORMCrateRepository) Update(ctx context.Context, id int, crate models.Crate) (*models.Crate, error) {
	var updated *models.Crate
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findCrate(tx, id); err != nil {
			return err
		}
		if err := ensureOwner(tx, "update crate", crate.RustaceanID); err != nil {
			return err
		}

		res := tx.Model(&models.Crate{}).Where("id = ?", id).Updates(map[string]any{
			"rustacean_id": crate.RustaceanID,
			"code":         crate.Code,
			"name":         crate.Name,
			"version":      crate.Version,
			"description":  crate.Description,
		})
		if res.Error != nil {
			return dbError("update crate", res.Error)
		}

		var err error
		updated, err = findCrate(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a crate by its ID.
func (r *GORMCrateRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&models.Crate{}, id)
	if res.Error != nil {
		return dbError("delete crate", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.Errorf(apperrors.NotFound, "delete crate", "crate with ID %d not found", id)
	}
	return nil
}

func findCrate(db *gorm.DB, id int) (*models.Crate, error) {
	var crate models.Crate
	if err := db.First(&crate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Errorf(apperrors.NotFound, "find crate", "crate with ID %d not found", id)
		}
		return nil, dbError("find crate", err)
	}
	return &crate, nil
}

// ensureOwner rejects a rustacean_id that does not reference an existing rustacean.
func ensureOwner(tx *gorm.DB, op string, rustaceanID int) error {
	var count int64
	if err := tx.Model(&models.Rustacean{}).Where("id = ?", rustaceanID).Count(&count).Error; err != nil {
		return dbError(op, err)
	}
	if count == 0 {
		return apperrors.Errorf(apperrors.Validation, op, "rustacean with ID %d does not exist", rustaceanID)
	}
	return nil
}
