package repositories

import (
	"errors"
	"strings"

	"rusty/internal/apperrors"

	"gorm.io/gorm"
)

// dbError classifies a GORM error. Errors that are already classified pass through.
func dbError(op string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.E(apperrors.NotFound, op, err)
	case isUniqueViolation(err):
		return apperrors.E(apperrors.Conflict, op, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed"):
		return apperrors.E(apperrors.Validation, op, err)
	default:
		return apperrors.E(apperrors.Internal, op, err)
	}
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
