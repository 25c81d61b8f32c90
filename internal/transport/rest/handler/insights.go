package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"envrt-site/internal/service"
)

// InsightsHandler serves the insights blog content
type InsightsHandler struct {
	insightsSvc *service.InsightsService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(insightsSvc *service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsSvc: insightsSvc}
}

// List handles GET /v1/insights?tag=
func (h *InsightsHandler) List(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"posts": h.insightsSvc.List(tag),
	})
}

// Get handles GET /v1/insights/{slug}
func (h *InsightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	post := h.insightsSvc.Get(slug)
	if post == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Tags handles GET /v1/insights/tags
func (h *InsightsHandler) Tags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tags": h.insightsSvc.Tags(),
	})
}
