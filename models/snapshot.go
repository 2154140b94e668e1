// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// FavoriteSnapshot is an immutable copy of the favorite comment ids at one
// point in time. Generation increases by one with every published snapshot.
type FavoriteSnapshot struct {
	generation uint64
	ids        map[int64]struct{}
}

// NewFavoriteSnapshot copies ids into a new snapshot.
func NewFavoriteSnapshot(generation uint64, ids map[int64]struct{}) FavoriteSnapshot {
	cp := make(map[int64]struct{}, len(ids))
	for id := range ids {
		cp[id] = struct{}{}
	}
	return FavoriteSnapshot{generation: generation, ids: cp}
}

// Generation returns the publish sequence number of the snapshot.
func (s FavoriteSnapshot) Generation() uint64 {
	return s.generation
}

// Contains reports whether id is favorited in this snapshot.
func (s FavoriteSnapshot) Contains(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of favorited ids.
func (s FavoriteSnapshot) Len() int {
	return len(s.ids)
}

// IDs returns the favorited ids in ascending order.
func (s FavoriteSnapshot) IDs() []int64 {
	ids := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// SnapshotResponse is the JSON form of a snapshot served to UI consumers.
type SnapshotResponse struct {
	Generation uint64  `json:"generation"`
	IDs        []int64 `json:"ids"`
	Length     int     `json:"length"`
}

// ToResponse converts the snapshot into its JSON form.
func (s FavoriteSnapshot) ToResponse() SnapshotResponse {
	ids := s.IDs()
	return SnapshotResponse{Generation: s.generation, IDs: ids, Length: len(ids)}
}
