package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-faved-comments/internal/logger"
	"github.com/MKhiriev/go-faved-comments/internal/utils"
	"github.com/MKhiriev/go-faved-comments/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getFavoriteIDs(w http.ResponseWriter, r *http.Request) {
	snapshot := h.services.FavedCommentService.Current()
	utils.WriteJSON(w, snapshot.ToResponse(), http.StatusOK)
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	flags, err := models.ParseContentTypes(r.URL.Query().Get("flags"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	comments, err := h.services.FavedCommentService.List(ctx, flags)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listFavorites").Msg("error listing favorites")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	flags, err := models.ParseContentTypes(r.URL.Query().Get("flags"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	messages, err := h.services.FavedCommentService.ListMessages(ctx, flags)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listMessages").Msg("error listing favorite messages")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) listCachedMessages(w http.ResponseWriter, r *http.Request) {
	flags, err := models.ParseContentTypes(r.URL.Query().Get("flags"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	messages, err := h.services.FavedCommentService.CachedMessages(r.Context(), flags)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listCachedMessages").Msg("error reading cached favorites")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

// saveFavorite accepts an optional FavedComment body. The id in the path
// always wins over the one in the body.
func (h *Handler) saveFavorite(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	commentID, err := commentIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var comment models.FavedComment
	if err = json.NewDecoder(r.Body).Decode(&comment); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "*Handler.saveFavorite").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	comment.ID = commentID

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	if err = h.services.FavedCommentService.Save(ctx, comment); err != nil {
		log.Err(err).Str("func", "*Handler.saveFavorite").Int64("comment_id", commentID).Msg("error saving favorite")
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteFavorite(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	commentID, err := commentIDFromPath(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	if err = h.services.FavedCommentService.Delete(ctx, commentID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteFavorite").Int64("comment_id", commentID).Msg("error deleting favorite")
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) refreshFavorites(w http.ResponseWriter, r *http.Request) {
	h.services.FavedCommentService.ForceRefresh()
	w.WriteHeader(http.StatusAccepted)
}

func commentIDFromPath(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCommentID, raw)
	}
	return id, nil
}

// writeError maps err to a status code and writes it as plain text.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Warn().Err(err).Int("status", status).Msg("request failed")
	}
	http.Error(w, http.StatusText(status), status)
}
