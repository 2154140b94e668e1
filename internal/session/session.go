// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session tracks the opaque credential of the logged-in user.
//
// The credential addresses user-scoped endpoints of the favorites service.
// An empty credential means nobody is logged in. [Holder] is the in-process
// implementation of [Provider]; the UI shell feeds it on login and logout.
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/MKhiriev/go-faved-comments/internal/broadcast"
)

// Credential is an opaque per-user session token. The zero value is absent.
type Credential string

// Present reports whether the credential identifies a user.
func (c Credential) Present() bool {
	return c != ""
}

// Owner returns a stable, non-reversible key for the credential, suitable
// for persisting data that belongs to the user without storing the token.
// Returns an empty string for an absent credential.
func (c Credential) Owner() string {
	if !c.Present() {
		return ""
	}
	sum := sha256.Sum256([]byte(c))
	return hex.EncodeToString(sum[:])
}

//go:generate mockgen -source=session.go -destination=../mock/session_provider_mock.go -package=mock

// Provider supplies the changing, possibly absent session credential.
type Provider interface {
	// Credential returns the current credential and whether it is present.
	Credential() (Credential, bool)

	// Changes yields the current credential immediately and then every
	// distinct value after it. The channel is closed when ctx is done.
	Changes(ctx context.Context) <-chan Credential

	// Await blocks until a present credential is available and returns it.
	// It only fails with ctx's error.
	Await(ctx context.Context) (Credential, error)
}

// Holder is an in-memory [Provider].
type Holder struct {
	mu      sync.Mutex
	current Credential
	latest  *broadcast.Latest[Credential]
}

// NewHolder returns a Holder seeded with initial (may be empty).
func NewHolder(initial Credential) *Holder {
	initial = normalize(initial)
	return &Holder{
		current: initial,
		latest:  broadcast.NewLatest(initial),
	}
}

func normalize(c Credential) Credential {
	return Credential(strings.TrimSpace(string(c)))
}

// Set replaces the current credential. Setting the same value again does not
// notify subscribers.
func (h *Holder) Set(c Credential) {
	c = normalize(c)

	h.mu.Lock()
	defer h.mu.Unlock()

	if c == h.current {
		return
	}
	h.current = c
	h.latest.Publish(c)
}

// Clear logs the user out.
func (h *Holder) Clear() {
	h.Set("")
}

// Credential implements [Provider].
func (h *Holder) Credential() (Credential, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current, h.current.Present()
}

// Changes implements [Provider].
func (h *Holder) Changes(ctx context.Context) <-chan Credential {
	return h.latest.Subscribe(ctx)
}

// Await implements [Provider].
func (h *Holder) Await(ctx context.Context) (Credential, error) {
	if c, ok := h.Credential(); ok {
		return c, nil
	}

	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	changes := h.Changes(subCtx)
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case c, ok := <-changes:
			if !ok {
				return "", ctx.Err()
			}
			if c.Present() {
				return c, nil
			}
		}
	}
}
