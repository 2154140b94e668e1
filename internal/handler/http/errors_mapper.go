package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-faved-comments/internal/adapter"
	"github.com/MKhiriev/go-faved-comments/internal/service"
	"github.com/MKhiriev/go-faved-comments/internal/store"
	"github.com/MKhiriev/go-faved-comments/models"
)

var errorStatusMap = map[error]int{
	context.DeadlineExceeded: http.StatusGatewayTimeout,
	context.Canceled:         http.StatusServiceUnavailable,

	models.ErrUnknownContentType: http.StatusBadRequest,
	ErrInvalidCommentID:          http.StatusBadRequest,
	ErrEmptySessionToken:         http.StatusBadRequest,

	service.ErrNoCredential:          http.StatusUnauthorized,
	service.ErrNoCache:               http.StatusServiceUnavailable,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	adapter.ErrBadRequest:          http.StatusBadRequest,
	adapter.ErrUnauthorized:        http.StatusUnauthorized,
	adapter.ErrForbidden:           http.StatusForbidden,
	adapter.ErrNotFound:            http.StatusNotFound,
	adapter.ErrConflict:            http.StatusConflict,
	adapter.ErrBadGateway:          http.StatusBadGateway,
	adapter.ErrInternalServerError: http.StatusBadGateway,
	adapter.ErrEmptyCredential:     http.StatusUnauthorized,

	store.ErrEmptyOwner:           http.StatusUnauthorized,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
