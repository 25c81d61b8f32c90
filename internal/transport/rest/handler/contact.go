package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"envrt-site/internal/model"
	"envrt-site/internal/service"
)

// ContactHandler handles the contact-form lead endpoint
type ContactHandler struct {
	leadSvc *service.LeadService
	mailer  service.Mailer
}

// NewContactHandler creates a new contact handler
func NewContactHandler(leadSvc *service.LeadService, mailer service.Mailer) *ContactHandler {
	return &ContactHandler{
		leadSvc: leadSvc,
		mailer:  mailer,
	}
}

// Lead handles POST /v1/leads/contact
func (h *ContactHandler) Lead(w http.ResponseWriter, r *http.Request) {
	if !h.mailer.IsEnabled() {
		writeError(w, http.StatusInternalServerError, "Email service not configured")
		return
	}

	var lead model.ContactLead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.leadSvc.SubmitContactLead(r.Context(), &lead); err != nil {
		if errors.Is(err, service.ErrInvalidLead) {
			writeError(w, http.StatusBadRequest, "email and firstName are required")
			return
		}
		log.Printf("[contact] lead dispatch failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
