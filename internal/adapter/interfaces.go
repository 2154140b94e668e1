// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the remote comment favorites
// service.
//
// The primary abstraction is [FavoritesAdapter], which decouples the
// synchronizer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPFavoritesAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-faved-comments/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/favorites_adapter_mock.go -package=mock

// FavoritesAdapter talks to the remote favorites service. Every call is
// addressed by the opaque user credential; implementations never cache it.
type FavoritesAdapter interface {
	// List fetches all favorites of the user whose parent post matches any
	// rating bit in flags.
	List(ctx context.Context, credential string, flags models.ContentType) ([]models.FavedComment, error)

	// Save stores comment as a favorite of the user.
	Save(ctx context.Context, credential string, comment models.FavedComment) error

	// Delete removes the favorite with commentID. Deleting an unknown id is
	// not an error on the service side.
	Delete(ctx context.Context, credential string, commentID int64) error
}
