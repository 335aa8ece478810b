package http

import (
	"errors"
	"net/http"

	"github.com/olekhv/vaultkeep/internal/service"
	"github.com/olekhv/vaultkeep/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrNotAllowedToRegister: http.StatusUnauthorized,
	service.ErrWrongPassword:        http.StatusUnauthorized,
	service.ErrTokenIsExpired:       http.StatusUnauthorized,
	service.ErrEncodingPayload:      http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrCipherNotFound:     http.StatusNotFound,
	store.ErrFolderNotFound:     http.StatusNotFound,
	store.ErrNothingToUpdate:    http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
