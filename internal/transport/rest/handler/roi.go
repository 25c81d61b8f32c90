package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"envrt-site/internal/model"
	"envrt-site/internal/service"
)

// ROIHandler handles the ROI calculator and its lead-capture endpoint
type ROIHandler struct {
	roiSvc  *service.ROIService
	leadSvc *service.LeadService
	mailer  service.Mailer
}

// NewROIHandler creates a new ROI handler
func NewROIHandler(roiSvc *service.ROIService, leadSvc *service.LeadService, mailer service.Mailer) *ROIHandler {
	return &ROIHandler{
		roiSvc:  roiSvc,
		leadSvc: leadSvc,
		mailer:  mailer,
	}
}

// Calculate handles POST /v1/roi/calculate
func (h *ROIHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var inputs model.ROIInputs
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, http.StatusOK, h.roiSvc.CalculateROI(inputs))
}

// Lead handles POST /v1/leads/roi
func (h *ROIHandler) Lead(w http.ResponseWriter, r *http.Request) {
	if !h.mailer.IsEnabled() {
		writeError(w, http.StatusInternalServerError, "Email service not configured")
		return
	}

	var lead model.ROILead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.leadSvc.SubmitROILead(r.Context(), &lead); err != nil {
		if errors.Is(err, service.ErrInvalidLead) {
			writeError(w, http.StatusBadRequest, "email and firstName are required")
			return
		}
		log.Printf("[roi] lead dispatch failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
