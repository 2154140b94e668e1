// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-faved-comments/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FavedCommentRepository is the local cache of full favorite records. Records
// are partitioned by owner (a digest of the session credential) and by the
// content-type filter they were fetched with.
type FavedCommentRepository interface {
	// ReplaceComments atomically replaces the cached records of the
	// (owner, flags) partition with comments.
	ReplaceComments(ctx context.Context, owner string, flags models.ContentType, comments []models.FavedComment) error

	// GetComments returns the cached records of the (owner, flags)
	// partition ordered by creation time, newest first. An empty partition
	// yields an empty slice.
	GetComments(ctx context.Context, owner string, flags models.ContentType) ([]models.FavedComment, error)
}
