// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IndependentRegistries(t *testing.T) {
	first := New()
	second := New()

	first.SnapshotsPublished.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(first.SnapshotsPublished))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.SnapshotsPublished))
}

func TestObserveSnapshot(t *testing.T) {
	m := New()

	m.ObserveSnapshot(3, 7)
	m.ObserveSnapshot(4, 6)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SnapshotsPublished))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.SnapshotGeneration))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.FavoritesSize))
}

func TestObserveRefresh(t *testing.T) {
	m := New()

	m.ObserveRefresh(ResultOK, 10*time.Millisecond)
	m.ObserveRefresh(ResultError, 5*time.Millisecond)
	m.ObserveRefresh(ResultSkipped, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RefreshesTotal.WithLabelValues(ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RefreshesTotal.WithLabelValues(ResultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RefreshesTotal.WithLabelValues(ResultSkipped)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RefreshDuration))
}

func TestObserveMutation(t *testing.T) {
	m := New()

	m.ObserveMutation("save", nil)
	m.ObserveMutation("save", errors.New("boom"))
	m.ObserveMutation("delete", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.MutationsTotal.WithLabelValues("save", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MutationsTotal.WithLabelValues("save", ResultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MutationsTotal.WithLabelValues("delete", ResultOK)))
}

func TestNilMetrics_NoPanic(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveSnapshot(1, 1)
		m.ObserveRefresh(ResultOK, time.Second)
		m.ObserveMutation("save", nil)
		m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	})
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveSnapshot(1, 2)
	m.ObserveHTTP(http.MethodGet, "/api/favorites/ids", http.StatusOK, time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "favsync_favorites 2")
	assert.Contains(t, string(body), `favsync_http_requests_total{method="GET",path="/api/favorites/ids",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
