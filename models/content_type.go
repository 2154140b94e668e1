// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ContentType is a bitmask of content ratings used to filter favorites.
type ContentType int

const (
	ContentTypeSFW  ContentType = 1
	ContentTypeNSFW ContentType = 2
	ContentTypeNSFL ContentType = 4
	ContentTypeNSFP ContentType = 8
	ContentTypePOL  ContentType = 16
)

// AllContentTypes has every known rating bit set.
const AllContentTypes = ContentTypeSFW | ContentTypeNSFW | ContentTypeNSFL | ContentTypeNSFP | ContentTypePOL

var contentTypeNames = []struct {
	name string
	flag ContentType
}{
	{"sfw", ContentTypeSFW},
	{"nsfw", ContentTypeNSFW},
	{"nsfl", ContentTypeNSFL},
	{"nsfp", ContentTypeNSFP},
	{"pol", ContentTypePOL},
}

// CombineContentTypes ORs the given ratings into a single bitmask.
func CombineContentTypes(types ...ContentType) ContentType {
	var combined ContentType
	for _, t := range types {
		combined |= t
	}
	return combined
}

// Has reports whether every bit of other is set in c.
func (c ContentType) Has(other ContentType) bool {
	return c&other == other
}

// String renders the bitmask as a comma separated list of names.
func (c ContentType) String() string {
	var names []string
	for _, n := range contentTypeNames {
		if c&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseContentTypes parses a comma separated list of rating names
// ("sfw,nsfw"), a numeric bitmask ("3") or the keyword "all". An empty string
// yields [AllContentTypes].
func ParseContentTypes(s string) (ContentType, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "all" {
		return AllContentTypes, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		flags := ContentType(n)
		if flags <= 0 || flags&^AllContentTypes != 0 {
			return 0, fmt.Errorf("%w: %d", ErrUnknownContentType, n)
		}
		return flags, nil
	}

	var combined ContentType
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		found := false
		for _, n := range contentTypeNames {
			if n.name == part {
				combined |= n.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %q", ErrUnknownContentType, part)
		}
	}

	if combined == 0 {
		return AllContentTypes, nil
	}
	return combined, nil
}
