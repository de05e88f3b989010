package services_test

import (
	"context"

	"rusty/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockRustaceanRepository is a mock implementation of repositories.RustaceanRepository
type MockRustaceanRepository struct {
	mock.Mock
}

func (m *MockRustaceanRepository) FindMultiple(ctx context.Context, limit int) ([]models.Rustacean, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rustacean), args.Error(1)
}

func (m *MockRustaceanRepository) Find(ctx context.Context, id int) (*models.Rustacean, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rustacean), args.Error(1)
}

func (m *MockRustaceanRepository) Create(ctx context.Context, newRustacean models.NewRustacean) (*models.Rustacean, error) {
	args := m.Called(ctx, newRustacean)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rustacean), args.Error(1)
}

func (m *MockRustaceanRepository) Update(ctx context.Context, id int, rustacean models.Rustacean) (*models.Rustacean, error) {
	args := m.Called(ctx, id, rustacean)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rustacean), args.Error(1)
}

func (m *MockRustaceanRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCrateRepository is a mock implementation of repositories.CrateRepository
type MockCrateRepository struct {
	mock.Mock
}

func (m *MockCrateRepository) FindMultiple(ctx context.Context, limit int) ([]models.Crate, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Crate), args.Error(1)
}

func (m *MockCrateRepository) Find(ctx context.Context, id int) (*models.Crate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Crate), args.Error(1)
}

func (m *MockCrateRepository) FindByRustacean(ctx context.Context, rustaceanID int) ([]models.Crate, error) {
	args := m.Called(ctx, rustaceanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Crate), args.Error(1)
}

func (m *MockCrateRepository) Create(ctx context.Context, newCrate models.NewCrate) (*models.Crate, error) {
	args := m.Called(ctx, newCrate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Crate), args.Error(1)
}

func (m *MockCrateRepository) Update(ctx context.Context, id int, crate models.Crate) (*models.Crate, error) {
	args := m.Called(ctx, id, crate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Crate), args.Error(1)
}

func (m *MockCrateRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, newUser models.NewUser, roleCodes []string) (*models.User, error) {
	args := m.Called(ctx, newUser, roleCodes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindWithRoles(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRoleRepository is a mock implementation of repositories.RoleRepository
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindByUser(ctx context.Context, user *models.User) ([]models.Role, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByCodes(ctx context.Context, codes []string) ([]models.Role, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Role), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishEvent(ctx context.Context, event models.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func eventOfType(eventType string, entityID int) interface{} {
	return mock.MatchedBy(func(e models.Event) bool {
		return e.Type == eventType && e.EntityID == entityID && e.ID != "" && !e.OccurredAt.IsZero()
	})
}
