package v1

import (
	"errors"
	"net/http"

	"github.com/card-ledger/backend/internal/auth"
	"github.com/card-ledger/backend/internal/models"
)

// status returns the HTTP status for an error.
func status(err error) int {
	if errors.Is(err, auth.ErrUnauthorized) || errors.Is(err, auth.ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, models.ErrGeneral) || errors.Is(err, models.ErrTransaction) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
