// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"regexp"
)

// ErrUnknownContentType is returned by [ParseContentTypes] for unknown names.
var ErrUnknownContentType = errors.New("unknown content type")

var thumbnailHostPrefix = regexp.MustCompile(`^.*pr0gramm.com/`)

// Message is the inbox representation of a faved comment.
type Message struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"itemId"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Score     int       `json:"score"`
	Thumbnail string    `json:"thumbnail"`
	Created   Timestamp `json:"created"`
	Mark      int       `json:"mark"`

	// SenderID is always zero: the favorites service does not know the sender.
	SenderID int64 `json:"senderId"`
}

// NormalizeThumbnail strips everything up to and including the platform's
// domain root, leaving a root-relative path.
//
//	https://pr0gramm.com/media/abc.jpg -> /media/abc.jpg
func NormalizeThumbnail(thumb string) string {
	loc := thumbnailHostPrefix.FindStringIndex(thumb)
	if loc == nil {
		return thumb
	}
	return "/" + thumb[loc[1]:]
}

// CommentToMessage converts a faved comment into an inbox message.
func CommentToMessage(comment FavedComment) Message {
	return Message{
		ID:        comment.ID,
		ItemID:    comment.ItemID,
		Name:      comment.Name,
		Message:   comment.Content,
		Score:     comment.Score(),
		Thumbnail: NormalizeThumbnail(comment.Thumb),
		Created:   comment.Created,
		Mark:      comment.Mark,
	}
}

// CommentsToMessages converts every comment with [CommentToMessage].
func CommentsToMessages(comments []FavedComment) []Message {
	messages := make([]Message, 0, len(comments))
	for _, c := range comments {
		messages = append(messages, CommentToMessage(c))
	}
	return messages
}
