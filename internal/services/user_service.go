package services

import (
	"context"
	"fmt"

	"rusty/internal/apperrors"
	"rusty/internal/models"
	"rusty/internal/repositories"
	"rusty/pkg/password"

	"github.com/go-playground/validator/v10"
)

// UserService manages operator accounts.
type UserService struct {
	users    repositories.UserRepository
	roles    repositories.RoleRepository
	hash     func(string) (string, error)
	validate *validator.Validate
}

// NewUserService creates a new UserService hashing passwords with argon2id.
func NewUserService(users repositories.UserRepository, roles repositories.RoleRepository) *UserService {
	return &UserService{
		users:    users,
		roles:    roles,
		hash:     password.Hash,
		validate: validator.New(),
	}
}

// WithHasher replaces the password hash function. Used to lower argon2 cost in tests.
func (s *UserService) WithHasher(hash func(string) (string, error)) *UserService {
	s.hash = hash
	return s
}

// CreateUser hashes the password, stores the user with its roles and returns
// the user together with the roles read back from the database.
func (s *UserService) CreateUser(ctx context.Context, username, plain string, roleCodes []string) (*models.User, []models.Role, error) {
	newUser := models.NewUser{Username: username, Password: plain}
	if err := s.validate.Struct(newUser); err != nil {
		return nil, nil, apperrors.E(apperrors.Validation, "create user", err)
	}

	hashed, err := s.hash(plain)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}
	newUser.Password = hashed

	user, err := s.users.Create(ctx, newUser, roleCodes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	roles, err := s.roles.FindByUser(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load roles for user %d: %w", user.ID, err)
	}
	return user, roles, nil
}

// ListUsers returns every user with its roles.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindWithRoles(ctx)
}

// DeleteUser deletes a user and its role assignments.
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
