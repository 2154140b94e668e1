package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-faved-comments/models"
)

// FavedCommentService keeps the set of favorite comment ids of the current
// user in sync with the remote favorites service and publishes immutable
// snapshots of it to subscribers.
//
// Mutations are optimistic: the local set changes and a snapshot is
// published before the remote call is made, and a failed remote call is
// never rolled back. Calls that need a credential block until one is present
// or ctx is done.
type FavedCommentService interface {
	// Subscribe yields the current snapshot immediately and every later one.
	// A slow receiver skips to the newest snapshot. The channel is closed
	// when ctx is done.
	Subscribe(ctx context.Context) <-chan models.FavoriteSnapshot

	// Current returns the latest published snapshot.
	Current() models.FavoriteSnapshot

	// Run drives the refresh loop until ctx is done.
	Run(ctx context.Context) error

	// ForceRefresh requests a re-fetch with the last known credential. It
	// never blocks.
	ForceRefresh()

	// Save adds comment to the favorites.
	Save(ctx context.Context, comment models.FavedComment) error

	// Delete removes commentID from the favorites.
	Delete(ctx context.Context, commentID int64) error

	// List fetches the full favorite records matching flags. It also
	// schedules a refresh of the id set.
	List(ctx context.Context, flags models.ContentType) ([]models.FavedComment, error)

	// ListMessages is List mapped to inbox messages.
	ListMessages(ctx context.Context, flags models.ContentType) ([]models.Message, error)

	// CachedMessages returns the records stored by the last successful List
	// of the current user, mapped to inbox messages.
	CachedMessages(ctx context.Context, flags models.ContentType) ([]models.Message, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionResponse
}

// RefreshJob periodically asks a [FavedCommentService] to refresh.
type RefreshJob interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
