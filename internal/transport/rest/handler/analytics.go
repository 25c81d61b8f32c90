package handler

import (
	"encoding/json"
	"net/http"

	"envrt-site/internal/model"
	"envrt-site/internal/service"
)

// AnalyticsHandler ingests website beacon batches
type AnalyticsHandler struct {
	analyticsSvc *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsSvc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// Ingest handles POST /v1/analytics/events. The beacon fires on page unload
// via sendBeacon, so the response is a bare 202 and malformed input is
// dropped rather than reported.
func (h *AnalyticsHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var batch model.BeaconBatch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	h.analyticsSvc.Ingest(r.Context(), &batch)
	w.WriteHeader(http.StatusAccepted)
}
