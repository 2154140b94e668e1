package service

import (
	"fmt"

	"github.com/MKhiriev/go-faved-comments/internal/adapter"
	"github.com/MKhiriev/go-faved-comments/internal/config"
	"github.com/MKhiriev/go-faved-comments/internal/logger"
	"github.com/MKhiriev/go-faved-comments/internal/metrics"
	"github.com/MKhiriev/go-faved-comments/internal/session"
	"github.com/MKhiriev/go-faved-comments/internal/store"
	"github.com/MKhiriev/go-faved-comments/models"
)

// Services groups the service layer.
type Services struct {
	FavedCommentService FavedCommentService
	AppInfoService      AppInfoService
	RefreshJob          RefreshJob
}

// NewServices wires the service layer. storages may be nil, in which case
// favorites are not cached locally.
func NewServices(
	storages *store.Storages,
	favoritesAdapter adapter.FavoritesAdapter,
	provider session.Provider,
	cfg config.StructuredConfig,
	build models.AppBuildInfo,
	m *metrics.Metrics,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	var cache store.FavedCommentRepository
	if storages != nil {
		cache = storages.FavedCommentRepository
	}

	favedCommentService := NewFavedCommentService(favoritesAdapter, provider, cache, cfg.Workers, m, logger)

	return &Services{
		FavedCommentService: favedCommentService,
		AppInfoService:      appInfoService,
		RefreshJob:          NewRefreshJob(favedCommentService),
	}, nil
}
