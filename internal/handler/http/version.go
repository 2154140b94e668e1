package http

import (
	"net/http"

	"github.com/MKhiriev/go-faved-comments/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetVersionInfo(r.Context())
	utils.WriteJSON(w, info, http.StatusOK)
}
