// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-faved-comments/internal/adapter"
	"github.com/MKhiriev/go-faved-comments/internal/config"
	"github.com/MKhiriev/go-faved-comments/internal/logger"
	"github.com/MKhiriev/go-faved-comments/internal/metrics"
	"github.com/MKhiriev/go-faved-comments/internal/mock"
	"github.com/MKhiriev/go-faved-comments/internal/session"
	"github.com/MKhiriev/go-faved-comments/internal/store"
	"github.com/MKhiriev/go-faved-comments/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const waitTimeout = 2 * time.Second

type testSvc struct {
	svc     *favedCommentService
	adapter *mock.MockFavoritesAdapter
	cache   *mock.MockFavedCommentRepository
	holder  *session.Holder
	metrics *metrics.Metrics
}

// newTestFavedCommentSvc builds a favedCommentService with a mocked adapter
// and cache and a real session holder seeded with credential.
func newTestFavedCommentSvc(t *testing.T, ctrl *gomock.Controller, credential session.Credential, cfg config.Workers) testSvc {
	t.Helper()
	mockAdapter := mock.NewMockFavoritesAdapter(ctrl)
	mockCache := mock.NewMockFavedCommentRepository(ctrl)
	holder := session.NewHolder(credential)
	m := metrics.New()

	svc := NewFavedCommentService(mockAdapter, holder, mockCache, cfg, m, logger.Nop()).(*favedCommentService)

	return testSvc{svc: svc, adapter: mockAdapter, cache: mockCache, holder: holder, metrics: m}
}

// runService starts Run and returns a func that stops it and waits for it to
// return.
func runService(t *testing.T, svc FavedCommentService) func() {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			cancel()
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(waitTimeout):
				t.Error("Run did not stop")
			}
		})
	}
	t.Cleanup(stop)
	return stop
}

// waitSnapshot reads from ch until pred holds.
func waitSnapshot(t *testing.T, ch <-chan models.FavoriteSnapshot, pred func(models.FavoriteSnapshot) bool) models.FavoriteSnapshot {
	t.Helper()
	timeout := time.After(waitTimeout)
	for {
		select {
		case s, ok := <-ch:
			require.True(t, ok, "subscription closed")
			if pred(s) {
				return s
			}
		case <-timeout:
			t.Fatal("timed out waiting for snapshot")
			return models.FavoriteSnapshot{}
		}
	}
}

func comments(ids ...int64) []models.FavedComment {
	out := make([]models.FavedComment, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.FavedComment{ID: id})
	}
	return out
}

// ── Construction / Subscribe ────────────────────────────────────────────────

func TestFavedCommentService_InitialSnapshotIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "", config.Workers{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := <-ts.svc.Subscribe(ctx)
	assert.Equal(t, uint64(0), first.Generation())
	assert.Zero(t, first.Len())
	assert.Equal(t, first, ts.svc.Current())
}

func TestFavedCommentService_SubscribeClosedOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "", config.Workers{})

	ctx, cancel := context.WithCancel(context.Background())
	ch := ts.svc.Subscribe(ctx)
	<-ch
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(waitTimeout):
		t.Fatal("subscription not closed")
	}
}

// ── Save / Delete ───────────────────────────────────────────────────────────

func TestFavedCommentService_Save_PublishesBeforeRemoteCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})
	comment := models.FavedComment{ID: 42, ItemID: 7}

	ts.adapter.EXPECT().
		Save(gomock.Any(), "tok", comment).
		DoAndReturn(func(context.Context, string, models.FavedComment) error {
			// the local set already contains the id when the remote call runs
			assert.True(t, ts.svc.Current().Contains(42))
			return nil
		})

	err := ts.svc.Save(context.Background(), comment)

	require.NoError(t, err)
	assert.Equal(t, uint64(1), ts.svc.Current().Generation())
	assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.MutationsTotal.WithLabelValues(operationSave, metrics.ResultOK)))
}

func TestFavedCommentService_Save_IdempotentPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})

	ts.adapter.EXPECT().Save(gomock.Any(), "tok", gomock.Any()).Return(nil).Times(2)

	require.NoError(t, ts.svc.Save(context.Background(), models.FavedComment{ID: 1}))
	require.NoError(t, ts.svc.Save(context.Background(), models.FavedComment{ID: 1}))

	assert.Equal(t, uint64(1), ts.svc.Current().Generation(), "second add must not publish")
	assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.SnapshotsPublished))
	assert.Equal(t, []int64{1}, ts.svc.Current().IDs())
}

func TestFavedCommentService_Delete_AbsentIDDoesNotPublish(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})

	ts.adapter.EXPECT().Delete(gomock.Any(), "tok", int64(9)).Return(nil)

	require.NoError(t, ts.svc.Delete(context.Background(), 9))

	assert.Equal(t, uint64(0), ts.svc.Current().Generation())
	assert.Zero(t, testutil.ToFloat64(ts.metrics.SnapshotsPublished))
}

func TestFavedCommentService_Delete_RemovesAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})

	ts.adapter.EXPECT().Save(gomock.Any(), "tok", gomock.Any()).Return(nil)
	ts.adapter.EXPECT().Delete(gomock.Any(), "tok", int64(3)).Return(nil)

	require.NoError(t, ts.svc.Save(context.Background(), models.FavedComment{ID: 3}))
	require.NoError(t, ts.svc.Delete(context.Background(), 3))

	current := ts.svc.Current()
	assert.Equal(t, uint64(2), current.Generation())
	assert.False(t, current.Contains(3))
}

func TestFavedCommentService_Save_RemoteErrorKeepsLocalChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})

	ts.adapter.EXPECT().Save(gomock.Any(), "tok", gomock.Any()).Return(adapter.ErrBadGateway)

	err := ts.svc.Save(context.Background(), models.FavedComment{ID: 5})

	assert.ErrorIs(t, err, adapter.ErrBadGateway)
	assert.True(t, ts.svc.Current().Contains(5), "no rollback on remote failure")
	assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.MutationsTotal.WithLabelValues(operationSave, metrics.ResultError)))
}

func TestFavedCommentService_Delete_RemoteErrorKeepsLocalChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})

	ts.adapter.EXPECT().Save(gomock.Any(), "tok", gomock.Any()).Return(nil)
	ts.adapter.EXPECT().Delete(gomock.Any(), "tok", int64(5)).Return(adapter.ErrUnauthorized)

	require.NoError(t, ts.svc.Save(context.Background(), models.FavedComment{ID: 5}))
	err := ts.svc.Delete(context.Background(), 5)

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.False(t, ts.svc.Current().Contains(5))
}

func TestFavedCommentService_Save_WithoutCredentialBlocksUntilCtxDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "", config.Workers{})
	// no adapter expectations: any remote call fails the test

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := ts.svc.Save(ctx, models.FavedComment{ID: 11})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, ts.svc.Current().Contains(11))
}

func TestFavedCommentService_Delete_WithoutCredentialBlocksUntilCtxDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "", config.Workers{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ts.svc.Delete(ctx, 11)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFavedCommentService_Save_CompletesOnceCredentialArrives(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "", config.Workers{})
	comment := models.FavedComment{ID: 7}

	ts.adapter.EXPECT().Save(gomock.Any(), "late-token", comment).Return(nil)

	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()

	result := make(chan error, 1)
	go func() { result <- ts.svc.Save(ctx, comment) }()

	require.Eventually(t, func() bool { return ts.svc.Current().Contains(7) }, waitTimeout, time.Millisecond)

	ts.holder.Set("late-token")

	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(waitTimeout):
		t.Fatal("Save did not complete after login")
	}
}

func TestFavedCommentService_SetAlgebra(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})

	ts.adapter.EXPECT().Save(gomock.Any(), "tok", gomock.Any()).Return(nil).AnyTimes()
	ts.adapter.EXPECT().Delete(gomock.Any(), "tok", gomock.Any()).Return(nil).AnyTimes()

	rng := rand.New(rand.NewPCG(1, 2))
	expected := make(map[int64]struct{})
	publishes := uint64(0)

	for range 500 {
		id := rng.Int64N(20)
		if rng.IntN(2) == 0 {
			if _, ok := expected[id]; !ok {
				publishes++
			}
			expected[id] = struct{}{}
			require.NoError(t, ts.svc.Save(context.Background(), models.FavedComment{ID: id}))
		} else {
			if _, ok := expected[id]; ok {
				publishes++
			}
			delete(expected, id)
			require.NoError(t, ts.svc.Delete(context.Background(), id))
		}
	}

	current := ts.svc.Current()
	assert.Equal(t, models.NewFavoriteSnapshot(publishes, expected).IDs(), current.IDs())
	assert.Equal(t, publishes, current.Generation())
}

func TestFavedCommentService_GenerationsAreMonotonic(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})

	ts.adapter.EXPECT().Save(gomock.Any(), "tok", gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := ts.svc.Subscribe(ctx)

	const n = 50
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = ts.svc.Save(context.Background(), models.FavedComment{ID: int64(i)})
		}()
	}

	var last uint64
	seenFirst := false
	for {
		s := <-ch
		if seenFirst {
			assert.Greater(t, s.Generation(), last)
		}
		seenFirst = true
		last = s.Generation()
		// a snapshot's size never exceeds its generation here since every
		// publish added exactly one id
		assert.Equal(t, int(s.Generation()), s.Len())
		if s.Len() == n {
			break
		}
	}
	wg.Wait()
}

func TestFavedCommentService_LateSubscriberSeesAllMutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})

	ts.adapter.EXPECT().Save(gomock.Any(), "tok", gomock.Any()).Return(nil).Times(2)
	ts.adapter.EXPECT().Delete(gomock.Any(), "tok", int64(1)).Return(nil)

	require.NoError(t, ts.svc.Save(context.Background(), models.FavedComment{ID: 1}))
	require.NoError(t, ts.svc.Save(context.Background(), models.FavedComment{ID: 2}))
	require.NoError(t, ts.svc.Delete(context.Background(), 1))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := <-ts.svc.Subscribe(ctx)
	assert.Equal(t, []int64{2}, first.IDs())
	assert.Equal(t, uint64(3), first.Generation())
}

// ── Run / refresh ───────────────────────────────────────────────────────────

func TestFavedCommentService_Run_FetchesOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})

	ts.adapter.EXPECT().List(gomock.Any(), "tok", models.AllContentTypes).Return(comments(1, 2, 3), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := ts.svc.Subscribe(ctx)

	stop := runService(t, ts.svc)
	got := waitSnapshot(t, ch, func(s models.FavoriteSnapshot) bool { return s.Len() == 3 })
	stop()

	assert.Equal(t, []int64{1, 2, 3}, got.IDs())
	assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.RefreshesTotal.WithLabelValues(metrics.ResultOK)))
}

func TestFavedCommentService_Run_AbsentCredentialYieldsEmptySet(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "", config.Workers{})
	// no List expectation: an absent credential never reaches the remote

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := ts.svc.Subscribe(ctx)

	stop := runService(t, ts.svc)
	got := waitSnapshot(t, ch, func(s models.FavoriteSnapshot) bool { return s.Generation() >= 1 })
	stop()

	assert.Zero(t, got.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.RefreshesTotal.WithLabelValues(metrics.ResultSkipped)))
}

func TestFavedCommentService_Run_RefreshReplacesInsteadOfMerging(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})

	gomock.InOrder(
		ts.adapter.EXPECT().List(gomock.Any(), "tok", models.AllContentTypes).Return(comments(1), nil),
		ts.adapter.EXPECT().List(gomock.Any(), "tok", models.AllContentTypes).Return(comments(1, 2), nil),
	)
	ts.adapter.EXPECT().Save(gomock.Any(), "tok", gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := ts.svc.Subscribe(ctx)

	stop := runService(t, ts.svc)
	waitSnapshot(t, ch, func(s models.FavoriteSnapshot) bool { return s.Contains(1) })

	require.NoError(t, ts.svc.Save(context.Background(), models.FavedComment{ID: 5}))
	assert.True(t, ts.svc.Current().Contains(5))

	ts.svc.ForceRefresh()
	got := waitSnapshot(t, ch, func(s models.FavoriteSnapshot) bool { return s.Contains(2) })
	stop()

	assert.Equal(t, []int64{1, 2}, got.IDs(), "local-only id 5 must be dropped by a refresh")
}

func TestFavedCommentService_Run_RefreshErrorYieldsEmptySet(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})

	gomock.InOrder(
		ts.adapter.EXPECT().List(gomock.Any(), "tok", models.AllContentTypes).Return(comments(1, 2), nil),
		ts.adapter.EXPECT().List(gomock.Any(), "tok", models.AllContentTypes).Return(nil, adapter.ErrBadGateway),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := ts.svc.Subscribe(ctx)

	stop := runService(t, ts.svc)
	first := waitSnapshot(t, ch, func(s models.FavoriteSnapshot) bool { return s.Len() == 2 })

	ts.svc.ForceRefresh()
	got := waitSnapshot(t, ch, func(s models.FavoriteSnapshot) bool { return s.Generation() > first.Generation() })
	stop()

	assert.Zero(t, got.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.RefreshesTotal.WithLabelValues(metrics.ResultError)))
}

func TestFavedCommentService_Run_RefreshErrorKeepsLastKnown(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{KeepOnRefreshError: true})

	gomock.InOrder(
		ts.adapter.EXPECT().List(gomock.Any(), "tok", models.AllContentTypes).Return(comments(1, 2), nil),
		ts.adapter.EXPECT().List(gomock.Any(), "tok", models.AllContentTypes).Return(nil, adapter.ErrBadGateway),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := ts.svc.Subscribe(ctx)

	stop := runService(t, ts.svc)
	first := waitSnapshot(t, ch, func(s models.FavoriteSnapshot) bool { return s.Len() == 2 })

	ts.svc.ForceRefresh()
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(ts.metrics.RefreshesTotal.WithLabelValues(metrics.ResultError)) == 1
	}, waitTimeout, time.Millisecond)
	stop()

	assert.Equal(t, first, ts.svc.Current())
}

func TestFavedCommentService_Run_CredentialChangeRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "alice", config.Workers{})

	ts.adapter.EXPECT().List(gomock.Any(), "alice", models.AllContentTypes).Return(comments(1), nil)
	ts.adapter.EXPECT().List(gomock.Any(), "bob", models.AllContentTypes).Return(comments(2, 3), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := ts.svc.Subscribe(ctx)

	stop := runService(t, ts.svc)
	waitSnapshot(t, ch, func(s models.FavoriteSnapshot) bool { return s.Contains(1) })

	ts.holder.Set("bob")
	got := waitSnapshot(t, ch, func(s models.FavoriteSnapshot) bool { return s.Contains(2) })
	assert.Equal(t, []int64{2, 3}, got.IDs())

	ts.holder.Clear()
	got = waitSnapshot(t, ch, func(s models.FavoriteSnapshot) bool { return s.Len() == 0 })
	stop()

	assert.Zero(t, got.Len())
}

func TestFavedCommentService_Run_DistinctCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockFavoritesAdapter(ctrl)
	provider := mock.NewMockProvider(ctrl)

	changes := make(chan session.Credential, 3)
	changes <- "alice"
	changes <- "alice"
	changes <- "bob"

	provider.EXPECT().Changes(gomock.Any()).Return((<-chan session.Credential)(changes))
	mockAdapter.EXPECT().List(gomock.Any(), "alice", models.AllContentTypes).Return(comments(1), nil).Times(1)
	mockAdapter.EXPECT().List(gomock.Any(), "bob", models.AllContentTypes).Return(comments(2), nil).Times(1)

	svc := NewFavedCommentService(mockAdapter, provider, nil, config.Workers{}, nil, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := svc.Subscribe(ctx)

	stop := runService(t, svc)
	waitSnapshot(t, ch, func(s models.FavoriteSnapshot) bool { return s.Contains(2) })
	stop()
}

func TestFavedCommentService_Run_NewerTriggerCancelsInFlightFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "alice", config.Workers{})

	started := make(chan struct{})
	canceled := make(chan struct{})

	ts.adapter.EXPECT().
		List(gomock.Any(), "alice", models.AllContentTypes).
		DoAndReturn(func(ctx context.Context, _ string, _ models.ContentType) ([]models.FavedComment, error) {
			close(started)
			<-ctx.Done()
			close(canceled)
			return comments(100), ctx.Err()
		})
	ts.adapter.EXPECT().List(gomock.Any(), "bob", models.AllContentTypes).Return(comments(2), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := ts.svc.Subscribe(ctx)

	stop := runService(t, ts.svc)

	select {
	case <-started:
	case <-time.After(waitTimeout):
		t.Fatal("first fetch not started")
	}

	ts.holder.Set("bob")

	got := waitSnapshot(t, ch, func(s models.FavoriteSnapshot) bool { return s.Generation() >= 1 })
	select {
	case <-canceled:
	case <-time.After(waitTimeout):
		t.Fatal("first fetch was not canceled")
	}
	stop()

	assert.Equal(t, []int64{2}, got.IDs(), "superseded fetch must not publish")
	assert.Equal(t, []int64{2}, ts.svc.Current().IDs())
	assert.Zero(t, testutil.ToFloat64(ts.metrics.RefreshesTotal.WithLabelValues(metrics.ResultError)))
}

func TestFavedCommentService_ForceRefresh_NeverBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "", config.Workers{})

	done := make(chan struct{})
	go func() {
		for range 100 {
			ts.svc.ForceRefresh()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("ForceRefresh blocked without a running loop")
	}
	assert.Len(t, ts.svc.refreshRequests, 1)
}

// ── List / ListMessages / CachedMessages ────────────────────────────────────

func TestFavedCommentService_List_WritesThroughToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})
	flags := models.ContentTypeSFW | models.ContentTypeNSFW
	records := []models.FavedComment{{ID: 1, Content: "a"}, {ID: 2, Content: "b"}}

	ts.adapter.EXPECT().List(gomock.Any(), "tok", flags).Return(records, nil)
	ts.cache.EXPECT().ReplaceComments(gomock.Any(), session.Credential("tok").Owner(), flags, records).Return(nil)

	got, err := ts.svc.List(context.Background(), flags)

	require.NoError(t, err)
	assert.Equal(t, records, got)
	assert.Len(t, ts.svc.refreshRequests, 1, "List schedules a refresh")
	assert.Zero(t, ts.svc.Current().Len(), "List does not touch the id set")
}

func TestFavedCommentService_List_CacheErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})

	ts.adapter.EXPECT().List(gomock.Any(), "tok", models.ContentTypeSFW).Return(comments(1), nil)
	ts.cache.EXPECT().ReplaceComments(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrCommitingTransaction)

	got, err := ts.svc.List(context.Background(), models.ContentTypeSFW)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestFavedCommentService_List_RemoteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})

	ts.adapter.EXPECT().List(gomock.Any(), "tok", models.ContentTypeSFW).Return(nil, adapter.ErrNotFound)

	_, err := ts.svc.List(context.Background(), models.ContentTypeSFW)

	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestFavedCommentService_List_WaitsForCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "", config.Workers{})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := ts.svc.List(ctx, models.AllContentTypes)

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestFavedCommentService_ListMessages_MapsComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})

	records := []models.FavedComment{{
		ID:      1,
		ItemID:  10,
		Name:    "alice",
		Content: "hello",
		Up:      10,
		Down:    3,
		Thumb:   "https://thumb.pr0gramm.com/2020/a.jpg",
		Mark:    2,
	}}
	ts.adapter.EXPECT().List(gomock.Any(), "tok", models.AllContentTypes).Return(records, nil)
	ts.cache.EXPECT().ReplaceComments(gomock.Any(), gomock.Any(), models.AllContentTypes, records).Return(nil)

	got, err := ts.svc.ListMessages(context.Background(), models.AllContentTypes)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "hello", got[0].Message)
	assert.Equal(t, 7, got[0].Score)
	assert.Equal(t, "/2020/a.jpg", got[0].Thumbnail)
	assert.Equal(t, int64(0), got[0].SenderID)
}

func TestFavedCommentService_CachedMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})

	ts.cache.EXPECT().
		GetComments(gomock.Any(), session.Credential("tok").Owner(), models.ContentTypeNSFW).
		Return([]models.FavedComment{{ID: 4, Content: "cached", Up: 1}}, nil)

	got, err := ts.svc.CachedMessages(context.Background(), models.ContentTypeNSFW)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(4), got[0].ID)
	assert.Equal(t, "cached", got[0].Message)
}

func TestFavedCommentService_CachedMessages_NoCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "", config.Workers{})

	_, err := ts.svc.CachedMessages(context.Background(), models.AllContentTypes)

	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestFavedCommentService_CachedMessages_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockFavoritesAdapter(ctrl)
	svc := NewFavedCommentService(mockAdapter, session.NewHolder("tok"), nil, config.Workers{}, nil, logger.Nop())

	_, err := svc.CachedMessages(context.Background(), models.AllContentTypes)

	assert.ErrorIs(t, err, ErrNoCache)
}

func TestFavedCommentService_CachedMessages_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	ts := newTestFavedCommentSvc(t, ctrl, "tok", config.Workers{})

	ts.cache.EXPECT().GetComments(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := ts.svc.CachedMessages(context.Background(), models.AllContentTypes)

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}
