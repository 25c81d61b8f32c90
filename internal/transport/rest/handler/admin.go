package handler

import (
	"net/http"
	"strconv"
	"time"

	"envrt-site/internal/model"
	"envrt-site/internal/repository"
	"envrt-site/internal/service"
)

const defaultLeadPageSize = 100

// AdminHandler serves the authenticated dashboard endpoints
type AdminHandler struct {
	leadRepo     repository.LeadRepository
	analyticsSvc *service.AnalyticsService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(leadRepo repository.LeadRepository, analyticsSvc *service.AnalyticsService) *AdminHandler {
	return &AdminHandler{
		leadRepo:     leadRepo,
		analyticsSvc: analyticsSvc,
	}
}

// Leads handles GET /v1/admin/leads?kind=&limit=
func (h *AdminHandler) Leads(w http.ResponseWriter, r *http.Request) {
	kind := model.LeadKind(r.URL.Query().Get("kind"))
	switch kind {
	case "", model.LeadKindAssessment, model.LeadKindROI, model.LeadKindContact:
	default:
		writeError(w, http.StatusBadRequest, "unknown lead kind")
		return
	}

	limit := int64(defaultLeadPageSize)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	leads, err := h.leadRepo.List(r.Context(), kind, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list leads")
		return
	}
	if leads == nil {
		leads = []*model.Lead{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"leads": leads,
	})
}

// AnalyticsSummary handles GET /v1/admin/analytics/summary?date=YYYY-MM-DD
func (h *AdminHandler) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	day := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		day = parsed
	}

	summary, err := h.analyticsSvc.DailySummary(r.Context(), day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load summary")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
