// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// FavedComment is a comment the user has marked as favorite, as stored by the
// remote favorites service. The record is richer than the id-only cache kept
// by the synchronizer and is returned verbatim by list calls.
type FavedComment struct {
	// ID is the comment identifier. It is also the key of the favorite.
	ID int64 `json:"id"`

	// ItemID is the id of the post the comment was written under.
	ItemID int64 `json:"itemId"`

	// Name is the author's user name.
	Name string `json:"name"`

	// Content is the comment text.
	Content string `json:"content"`

	// Up and Down are the vote counters at the time the comment was faved.
	Up   int `json:"up"`
	Down int `json:"down"`

	// Thumb is the thumbnail of the parent post. The service may return it
	// as an absolute URL; use [NormalizeThumbnail] before displaying.
	Thumb string `json:"thumb"`

	// Created is the creation time of the comment.
	Created Timestamp `json:"created"`

	// Mark is the author's rank mark.
	Mark int `json:"mark"`

	// Flags is the content rating of the parent post.
	Flags ContentType `json:"flags"`
}

// Score returns up minus down votes.
func (c FavedComment) Score() int {
	return c.Up - c.Down
}

// Timestamp is a time.Time encoded as unix seconds on the wire.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// UnmarshalJSON accepts unix seconds (integer or float) and RFC 3339 strings.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case float64:
		sec := int64(value)
		nsec := int64((value - float64(sec)) * float64(time.Second))
		t.Time = time.Unix(sec, nsec).UTC()
		return nil
	case string:
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	default:
		return fmt.Errorf("unsupported timestamp value %s", string(b))
	}
}

// MarshalJSON writes unix seconds.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("0"), nil
	}
	return json.Marshal(t.Unix())
}
