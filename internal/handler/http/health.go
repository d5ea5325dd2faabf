package http

import (
	"net/http"

	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/internal/utils"
)

type healthStatus struct {
	Status string `json:"status"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("database ping failed")
		utils.WriteJSON(w, healthStatus{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, healthStatus{Status: "ok"}, http.StatusOK)
}
