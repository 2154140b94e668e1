// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for malformed local API requests. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidCommentID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidCommentID = errors.New("invalid comment id")

	// ErrEmptySessionToken is returned by PUT /api/session when the body has
	// no token.
	ErrEmptySessionToken = errors.New("empty session token")
)
