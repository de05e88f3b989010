package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rusty/internal/repositories"
	"rusty/pkg/password"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned for any failed login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles authentication and token issuing.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    *zap.Logger

	// verifyMissing runs for unknown usernames in place of a real verification.
	verifyMissing func(plain string)
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  24 * time.Hour,
		logger:    logger,

		verifyMissing: password.VerifyDummy,
	}
}

// LoginUser checks the credentials and returns a signed JWT carrying the user's role codes.
func (s *AuthService) LoginUser(ctx context.Context, username, plain string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		// Do not reveal whether the username exists.
		s.logger.Debug("login lookup failed", zap.String("username", username), zap.Error(err))
		s.verifyMissing(plain)
		return "", ErrInvalidCredentials
	}

	ok, err := password.Verify(plain, user.Password)
	if err != nil || !ok {
		return "", ErrInvalidCredentials
	}

	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, role.Code)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"roles":    roles,
		"exp":      now.Add(s.tokenTTL).Unix(),
		"iat":      now.Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// ClaimRoles extracts the role codes from token claims.
func ClaimRoles(claims jwt.MapClaims) []string {
	raw, ok := claims["roles"].([]interface{})
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if code, ok := r.(string); ok {
			roles = append(roles, code)
		}
	}
	return roles
}
