package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-catalog/internal/utils"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// health reports whether the database answers.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := healthResponse{Status: "ok", Version: h.services.AppInfoService.GetAppVersion(ctx)}

	if err := h.services.AppInfoService.CheckHealth(ctx); err != nil {
		resp.Status = "unavailable"
		utils.WriteJSON(w, resp, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
