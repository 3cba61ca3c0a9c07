package usecase

import (
	"errors"

	"snapblog/internal/apperr"

	"gorm.io/gorm"
)

// notFoundOr turns a gorm missing-record error into a 404-kind error
// with a resource-specific message, and passes everything else through.
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.KindNotFound, message)
	}
	return err
}
