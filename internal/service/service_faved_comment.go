package service

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/MKhiriev/go-faved-comments/internal/adapter"
	"github.com/MKhiriev/go-faved-comments/internal/broadcast"
	"github.com/MKhiriev/go-faved-comments/internal/config"
	"github.com/MKhiriev/go-faved-comments/internal/logger"
	"github.com/MKhiriev/go-faved-comments/internal/metrics"
	"github.com/MKhiriev/go-faved-comments/internal/session"
	"github.com/MKhiriev/go-faved-comments/internal/store"
	"github.com/MKhiriev/go-faved-comments/models"
)

const (
	operationSave   = "save"
	operationDelete = "delete"
)

type favedCommentService struct {
	adapter adapter.FavoritesAdapter
	session session.Provider
	cache   store.FavedCommentRepository

	keepOnRefreshError bool

	// mu guards ids and generation. Snapshots are published while it is
	// held so their order matches the order of mutations.
	mu         sync.Mutex
	ids        map[int64]struct{}
	generation uint64
	snapshots  *broadcast.Latest[models.FavoriteSnapshot]

	refreshRequests chan struct{}

	credMu         sync.Mutex
	lastCredential session.Credential

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewFavedCommentService returns the synchronizer. cache and m may be nil;
// without a cache CachedMessages fails with [ErrNoCache] and List results
// are not persisted.
func NewFavedCommentService(
	favoritesAdapter adapter.FavoritesAdapter,
	provider session.Provider,
	cache store.FavedCommentRepository,
	cfg config.Workers,
	m *metrics.Metrics,
	log *logger.Logger,
) FavedCommentService {
	ids := make(map[int64]struct{})
	return &favedCommentService{
		adapter:            favoritesAdapter,
		session:            provider,
		cache:              cache,
		keepOnRefreshError: cfg.KeepOnRefreshError,
		ids:                ids,
		snapshots:          broadcast.NewLatest(models.NewFavoriteSnapshot(0, ids)),
		refreshRequests:    make(chan struct{}, 1),
		metrics:            m,
		logger:             log.Named("faved-comments"),
	}
}

func (s *favedCommentService) Subscribe(ctx context.Context) <-chan models.FavoriteSnapshot {
	return s.snapshots.Subscribe(ctx)
}

func (s *favedCommentService) Current() models.FavoriteSnapshot {
	return s.snapshots.Value()
}

func (s *favedCommentService) ForceRefresh() {
	select {
	case s.refreshRequests <- struct{}{}:
	default:
		// a refresh is already pending
	}
}

// Save adds comment.ID to the local set and publishes, then waits for a
// credential and stores the favorite remotely. The local change is kept even
// when the remote call fails or ctx ends first.
func (s *favedCommentService) Save(ctx context.Context, comment models.FavedComment) error {
	s.logger.Info().Int64("comment_id", comment.ID).Msg("save comment-fav")

	s.mutate(func(ids map[int64]struct{}) bool {
		if _, ok := ids[comment.ID]; ok {
			return false
		}
		ids[comment.ID] = struct{}{}
		return true
	})

	credential, err := s.session.Await(ctx)
	if err != nil {
		return err
	}

	err = s.adapter.Save(ctx, string(credential), comment)
	s.metrics.ObserveMutation(operationSave, err)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "favedCommentService.Save").
			Int64("comment_id", comment.ID).
			Msg("remote save failed, local favorite kept")
		return fmt.Errorf("save favorite %d: %w", comment.ID, err)
	}

	return nil
}

// Delete removes commentID from the local set and publishes, then waits for
// a credential and deletes the favorite remotely. The local change is kept
// even when the remote call fails or ctx ends first.
func (s *favedCommentService) Delete(ctx context.Context, commentID int64) error {
	s.logger.Info().Int64("comment_id", commentID).Msg("delete comment-fav")

	s.mutate(func(ids map[int64]struct{}) bool {
		if _, ok := ids[commentID]; !ok {
			return false
		}
		delete(ids, commentID)
		return true
	})

	credential, err := s.session.Await(ctx)
	if err != nil {
		return err
	}

	err = s.adapter.Delete(ctx, string(credential), commentID)
	s.metrics.ObserveMutation(operationDelete, err)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "favedCommentService.Delete").
			Int64("comment_id", commentID).
			Msg("remote delete failed, local removal kept")
		return fmt.Errorf("delete favorite %d: %w", commentID, err)
	}

	return nil
}

func (s *favedCommentService) List(ctx context.Context, flags models.ContentType) ([]models.FavedComment, error) {
	s.ForceRefresh()

	credential, err := s.session.Await(ctx)
	if err != nil {
		return nil, err
	}

	comments, err := s.adapter.List(ctx, string(credential), flags)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	if s.cache != nil {
		if cacheErr := s.cache.ReplaceComments(ctx, credential.Owner(), flags, comments); cacheErr != nil {
			logger.FromContext(ctx).Err(cacheErr).
				Str("func", "favedCommentService.List").
				Int("flags", int(flags)).
				Msg("failed to write favorites through to the local cache")
		}
	}

	return comments, nil
}

func (s *favedCommentService) ListMessages(ctx context.Context, flags models.ContentType) ([]models.Message, error) {
	comments, err := s.List(ctx, flags)
	if err != nil {
		return nil, err
	}
	return models.CommentsToMessages(comments), nil
}

func (s *favedCommentService) CachedMessages(ctx context.Context, flags models.ContentType) ([]models.Message, error) {
	if s.cache == nil {
		return nil, ErrNoCache
	}

	credential, ok := s.session.Credential()
	if !ok {
		return nil, ErrNoCredential
	}

	comments, err := s.cache.GetComments(ctx, credential.Owner(), flags)
	if err != nil {
		return nil, fmt.Errorf("read cached favorites: %w", err)
	}
	return models.CommentsToMessages(comments), nil
}

// mutate applies fn to the set under the lock and publishes when fn reports
// a change.
func (s *favedCommentService) mutate(fn func(ids map[int64]struct{}) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fn(s.ids) {
		s.publishLocked()
	}
}

// replace swaps the whole set and publishes unless ctx is already done.
// Returns whether the set was replaced.
func (s *favedCommentService) replace(ctx context.Context, ids map[int64]struct{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	// a newer refresh superseded this one
	if ctx.Err() != nil {
		return false
	}

	s.ids = maps.Clone(ids)
	if s.ids == nil {
		s.ids = make(map[int64]struct{})
	}
	s.publishLocked()
	return true
}

func (s *favedCommentService) publishLocked() {
	s.generation++
	snapshot := models.NewFavoriteSnapshot(s.generation, s.ids)
	s.snapshots.Publish(snapshot)
	s.metrics.ObserveSnapshot(snapshot.Generation(), snapshot.Len())
}

func (s *favedCommentService) setLastCredential(c session.Credential) {
	s.credMu.Lock()
	defer s.credMu.Unlock()
	s.lastCredential = c
}

func (s *favedCommentService) getLastCredential() session.Credential {
	s.credMu.Lock()
	defer s.credMu.Unlock()
	return s.lastCredential
}
