package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/proxy-desk-bot/internal/logger"
	"github.com/MKhiriev/proxy-desk-bot/internal/utils"
)

const pingTimeout = 2 * time.Second

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("database ping failed")
		utils.WriteJSON(w, map[string]string{"status": "unavailable", "database": "down"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "ok", "database": "up"}, http.StatusOK)
}
