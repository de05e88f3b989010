package services

import (
	"context"

	"rusty/internal/models"
	"rusty/internal/repositories"

	"go.uber.org/zap"
)

// CrateService handles business logic related to crates.
type CrateService struct {
	repo repositories.CrateRepository
	notifier
}

// NewCrateService creates a new CrateService. publisher may be nil.
func NewCrateService(repo repositories.CrateRepository, publisher EventPublisher, logger *zap.Logger) *CrateService {
	return &CrateService{
		repo:     repo,
		notifier: notifier{publisher: publisher, logger: logger},
	}
}

// GetCrates retrieves up to limit crates.
func (s *CrateService) GetCrates(ctx context.Context, limit int) ([]models.Crate, error) {
	return s.repo.FindMultiple(ctx, limit)
}

// GetCrateByID retrieves a single crate.
func (s *CrateService) GetCrateByID(ctx context.Context, id int) (*models.Crate, error) {
	return s.repo.Find(ctx, id)
}

// GetCratesByRustacean retrieves the crates owned by a rustacean.
func (s *CrateService) GetCratesByRustacean(ctx context.Context, rustaceanID int) ([]models.Crate, error) {
	return s.repo.FindByRustacean(ctx, rustaceanID)
}

// CreateCrate creates a new crate.
func (s *CrateService) CreateCrate(ctx context.Context, newCrate models.NewCrate) (*models.Crate, error) {
	crate, err := s.repo.Create(ctx, newCrate)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, models.EventCrateCreated, crate.ID)
	return crate, nil
}

// UpdateCrate overwrites an existing crate, possibly moving it to another owner.
func (s *CrateService) UpdateCrate(ctx context.Context, id int, crate models.Crate) (*models.Crate, error) {
	updated, err := s.repo.Update(ctx, id, crate)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, models.EventCrateUpdated, updated.ID)
	return updated, nil
}

// DeleteCrate deletes a crate.
func (s *CrateService) DeleteCrate(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, models.EventCrateDeleted, id)
	return nil
}
