package services

import (
	"context"

	"rusty/internal/models"
	"rusty/internal/repositories"

	"go.uber.org/zap"
)

// RustaceanService handles business logic related to rustaceans.
type RustaceanService struct {
	repo repositories.RustaceanRepository
	notifier
}

// NewRustaceanService creates a new RustaceanService. publisher may be nil.
func NewRustaceanService(repo repositories.RustaceanRepository, publisher EventPublisher, logger *zap.Logger) *RustaceanService {
	return &RustaceanService{
		repo:     repo,
		notifier: notifier{publisher: publisher, logger: logger},
	}
}

// GetRustaceans retrieves up to limit rustaceans.
func (s *RustaceanService) GetRustaceans(ctx context.Context, limit int) ([]models.Rustacean, error) {
	return s.repo.FindMultiple(ctx, limit)
}

// GetRustaceanByID retrieves a single rustacean.
func (s *RustaceanService) GetRustaceanByID(ctx context.Context, id int) (*models.Rustacean, error) {
	return s.repo.Find(ctx, id)
}

// CreateRustacean creates a new rustacean.
func (s *RustaceanService) CreateRustacean(ctx context.Context, newRustacean models.NewRustacean) (*models.Rustacean, error) {
	rustacean, err := s.repo.Create(ctx, newRustacean)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, models.EventRustaceanCreated, rustacean.ID)
	return rustacean, nil
}

// UpdateRustacean overwrites an existing rustacean.
func (s *RustaceanService) UpdateRustacean(ctx context.Context, id int, rustacean models.Rustacean) (*models.Rustacean, error) {
	updated, err := s.repo.Update(ctx, id, rustacean)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, models.EventRustaceanUpdated, updated.ID)
	return updated, nil
}

// DeleteRustacean deletes a rustacean that owns no crates.
func (s *RustaceanService) DeleteRustacean(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notify(ctx, models.EventRustaceanDeleted, id)
	return nil
}
