package repository

import (
	"errors"

	apperrors "volunteer-scheduler-backend/internal/errors"

	"gorm.io/gorm"
)

// translate maps a gorm error to the application taxonomy. Missing rows
// become notFound (when given), duplicate keys carry exists (when given),
// and everything else is a BackendError for op.
func translate(op string, err error, notFound, exists error) error {
	if err == nil {
		return nil
	}
	if notFound != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		if exists != nil {
			return apperrors.NewBackendError(op, exists)
		}
	}
	return apperrors.NewBackendError(op, err)
}
