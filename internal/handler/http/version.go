package http

import (
	"net/http"

	"github.com/MKhiriev/proxy-desk-bot/internal/utils"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.buildInfo.AsMap(), http.StatusOK)
}
