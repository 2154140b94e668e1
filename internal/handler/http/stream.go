package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-faved-comments/internal/logger"
	"github.com/MKhiriev/go-faved-comments/models"
)

// streamFavorites serves snapshots as server-sent events. The first event is
// the current snapshot; each following one is a newer generation.
func (h *Handler) streamFavorites(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	snapshots := h.services.FavedCommentService.Subscribe(ctx)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	keepAlive := time.NewTicker(h.streamKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("favorites stream closed by client")
			return
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case snapshot, open := <-snapshots:
			if !open {
				return
			}
			if err := writeSnapshotEvent(w, snapshot); err != nil {
				log.Err(err).Str("func", "*Handler.streamFavorites").Msg("error writing snapshot event")
				return
			}
			flusher.Flush()
		}
	}
}

func writeSnapshotEvent(w http.ResponseWriter, snapshot models.FavoriteSnapshot) error {
	data, err := json.Marshal(snapshot.ToResponse())
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = fmt.Fprintf(w, "id: %d\nevent: snapshot\ndata: %s\n\n", snapshot.Generation(), data)
	return err
}
