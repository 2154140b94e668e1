package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-faved-comments/internal/metrics"
	"github.com/MKhiriev/go-faved-comments/internal/session"
	"github.com/MKhiriev/go-faved-comments/internal/utils"
	"github.com/MKhiriev/go-faved-comments/models"
)

// Run watches credential changes and refresh requests. Every distinct
// credential and every request starts a fetch; a newer trigger cancels the
// fetch still in flight so only the latest one can replace the set.
func (s *favedCommentService) Run(ctx context.Context) error {
	s.logger.Info().Msg("favorites refresh loop started")
	defer s.logger.Info().Msg("favorites refresh loop stopped")

	changes := s.session.Changes(ctx)

	var (
		wg          sync.WaitGroup
		cancelFetch context.CancelFunc = func() {}
		seen        bool
		last        session.Credential
	)
	defer func() {
		cancelFetch()
		wg.Wait()
	}()

	start := func(credential session.Credential) {
		cancelFetch()

		fetchCtx, cancel := context.WithCancel(ctx)
		fetchCtx = utils.WithTraceID(fetchCtx, utils.NewTraceID())
		cancelFetch = cancel

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer cancel()
			s.refresh(fetchCtx, credential)
		}()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case credential, ok := <-changes:
			if !ok {
				return nil
			}
			if seen && credential == last {
				continue
			}
			seen, last = true, credential
			s.setLastCredential(credential)
			start(credential)
		case <-s.refreshRequests:
			start(s.getLastCredential())
		}
	}
}

// refresh fetches all favorites for credential and replaces the set. An
// absent credential yields an empty set without a remote call. A failed
// fetch is never reported to subscribers: it yields an empty set, or keeps
// the current one when keepOnRefreshError is set.
func (s *favedCommentService) refresh(ctx context.Context, credential session.Credential) {
	if !credential.Present() {
		if s.replace(ctx, nil) {
			s.metrics.ObserveRefresh(metrics.ResultSkipped, 0)
		}
		return
	}

	started := time.Now()
	comments, err := s.adapter.List(ctx, string(credential), models.AllContentTypes)
	took := time.Since(started)

	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			return
		}

		s.metrics.ObserveRefresh(metrics.ResultError, took)
		s.logger.Warn().Err(err).
			Bool("keep_last_known", s.keepOnRefreshError).
			Msg("failed to refresh favorites")

		if s.keepOnRefreshError {
			return
		}
		comments = nil
	} else {
		s.metrics.ObserveRefresh(metrics.ResultOK, took)
	}

	ids := make(map[int64]struct{}, len(comments))
	for _, comment := range comments {
		ids[comment.ID] = struct{}{}
	}

	if s.replace(ctx, ids) {
		s.logger.Info().Int("count", len(ids)).Msg("updating comment cache")
	}
}
