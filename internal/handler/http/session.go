package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-faved-comments/internal/logger"
	"github.com/MKhiriev/go-faved-comments/internal/session"
	"github.com/MKhiriev/go-faved-comments/models"
)

func (h *Handler) setSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.setSession").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	token := strings.TrimSpace(request.Token)
	if token == "" {
		log.Warn().Str("func", "*Handler.setSession").Msg(ErrEmptySessionToken.Error())
		http.Error(w, ErrEmptySessionToken.Error(), http.StatusBadRequest)
		return
	}

	h.sessions.Set(session.Credential(token))
	log.Info().Msg("session credential set")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearSession(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear()
	logger.FromRequest(r).Info().Msg("session credential cleared")
	w.WriteHeader(http.StatusNoContent)
}
