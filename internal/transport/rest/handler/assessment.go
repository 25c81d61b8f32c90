package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"envrt-site/internal/model"
	"envrt-site/internal/service"
)

// AssessmentHandler handles the readiness questionnaire, scoring and the
// assessment lead-capture endpoint
type AssessmentHandler struct {
	scoringSvc *service.ScoringService
	leadSvc    *service.LeadService
	mailer     service.Mailer
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(scoringSvc *service.ScoringService, leadSvc *service.LeadService, mailer service.Mailer) *AssessmentHandler {
	return &AssessmentHandler{
		scoringSvc: scoringSvc,
		leadSvc:    leadSvc,
		mailer:     mailer,
	}
}

// Questions handles GET /v1/assessment/questions
func (h *AssessmentHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sections": h.scoringSvc.Questionnaire(),
	})
}

// Score handles POST /v1/assessment/score
func (h *AssessmentHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answers model.Answers `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Answers == nil {
		req.Answers = model.Answers{}
	}

	writeJSON(w, http.StatusOK, h.scoringSvc.BuildReport(req.Answers))
}

// Lead handles POST /v1/leads/assessment. The mailer check runs before the
// body is touched: without a provider there is nothing this endpoint can do.
func (h *AssessmentHandler) Lead(w http.ResponseWriter, r *http.Request) {
	if !h.mailer.IsEnabled() {
		writeError(w, http.StatusInternalServerError, "Email service not configured")
		return
	}

	var lead model.AssessmentLead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.leadSvc.SubmitAssessmentLead(r.Context(), &lead); err != nil {
		if errors.Is(err, service.ErrInvalidLead) {
			writeError(w, http.StatusBadRequest, "email and firstName are required")
			return
		}
		log.Printf("[assessment] lead dispatch failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
