package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"envrt-site/internal/config"
	"envrt-site/internal/model"
	"envrt-site/internal/repository"
)

// ErrInvalidLead marks a lead payload the caller should reject with 400
var ErrInvalidLead = errors.New("invalid lead payload")

// LeadService validates lead submissions, dispatches the transactional
// emails and records the lead. Email dispatch is the primary effect:
// persistence and broadcast failures are logged, never surfaced.
type LeadService struct {
	mailer      Mailer
	mailerCfg   *config.MailerConfig
	leadRepo    repository.LeadRepository
	broadcaster Broadcaster
}

// NewLeadService creates a new lead service
func NewLeadService(mailer Mailer, mailerCfg *config.MailerConfig, leadRepo repository.LeadRepository) *LeadService {
	return &LeadService{
		mailer:    mailer,
		mailerCfg: mailerCfg,
		leadRepo:  leadRepo,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket lead events
func (s *LeadService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// SubmitAssessmentLead emails the respondent their score card and records
// the lead. Returns ErrInvalidLead on a bad payload; any other error means
// the respondent email could not be sent.
func (s *LeadService) SubmitAssessmentLead(ctx context.Context, lead *model.AssessmentLead) error {
	if lead.Email == "" || lead.FirstName == "" {
		return fmt.Errorf("%w: email and firstName are required", ErrInvalidLead)
	}

	html, err := RenderAssessmentEmail(lead)
	if err != nil {
		return err
	}
	err = s.mailer.Send(ctx, Email{
		From:    s.mailerCfg.FromAssessment,
		To:      lead.Email,
		Subject: fmt.Sprintf("Your DPP Readiness Score: %d/100 - %s", lead.Overall, lead.Band),
		HTML:    html,
	})
	if err != nil {
		return err
	}

	s.record(ctx, &model.Lead{
		Kind:             model.LeadKindAssessment,
		FirstName:        lead.FirstName,
		BrandName:        lead.BrandName,
		Email:            lead.Email,
		MarketingConsent: lead.MarketingConsent,
		Assessment:       lead,
	})
	return nil
}

// SubmitROILead emails the respondent their cost comparison, notifies the
// internal sales address and records the lead. The internal notification is
// attempted even when the respondent email fails, but only a respondent
// email failure fails the submission.
func (s *LeadService) SubmitROILead(ctx context.Context, lead *model.ROILead) error {
	if lead.Email == "" || lead.FirstName == "" {
		return fmt.Errorf("%w: email and firstName are required", ErrInvalidLead)
	}

	userHTML, err := RenderROIEmail(lead)
	if err != nil {
		return err
	}
	userErr := s.mailer.Send(ctx, Email{
		From:    s.mailerCfg.FromCalculator,
		To:      lead.Email,
		Subject: fmt.Sprintf("Your DPP Compliance Savings: %s/yr with ENVRT", formatGBP(lead.MaxSaving)),
		HTML:    userHTML,
	})

	if internalHTML, renderErr := RenderROIInternalEmail(lead); renderErr != nil {
		log.Printf("[lead] roi internal render failed: %v", renderErr)
	} else if notifyErr := s.mailer.Send(ctx, Email{
		From:    s.mailerCfg.FromCalculator,
		To:      s.mailerCfg.InternalNotify,
		Subject: fmt.Sprintf("ROI Lead: %s @ %s (%s saving)", lead.FirstName, lead.BrandName, formatGBP(lead.MaxSaving)),
		HTML:    internalHTML,
	}); notifyErr != nil {
		log.Printf("[lead] roi internal notify failed: %v", notifyErr)
	}

	if userErr != nil {
		return userErr
	}

	s.record(ctx, &model.Lead{
		Kind:             model.LeadKindROI,
		FirstName:        lead.FirstName,
		BrandName:        lead.BrandName,
		Email:            lead.Email,
		MarketingConsent: lead.MarketingConsent,
		ROI:              lead,
	})
	return nil
}

// SubmitContactLead notifies the internal sales address and records the lead
func (s *LeadService) SubmitContactLead(ctx context.Context, lead *model.ContactLead) error {
	if lead.Email == "" || lead.FirstName == "" {
		return fmt.Errorf("%w: email and firstName are required", ErrInvalidLead)
	}

	html, err := RenderContactInternalEmail(lead)
	if err != nil {
		return err
	}
	err = s.mailer.Send(ctx, Email{
		From:    s.mailerCfg.FromAssessment,
		To:      s.mailerCfg.InternalNotify,
		Subject: fmt.Sprintf("Contact Lead: %s @ %s", lead.FirstName, lead.BrandName),
		HTML:    html,
	})
	if err != nil {
		return err
	}

	s.record(ctx, &model.Lead{
		Kind:             model.LeadKindContact,
		FirstName:        lead.FirstName,
		BrandName:        lead.BrandName,
		Email:            lead.Email,
		MarketingConsent: lead.MarketingConsent,
		Message:          lead.Message,
	})
	return nil
}

// record persists the lead and pushes it to the admin feed. Best effort:
// the respondent already has their email at this point.
func (s *LeadService) record(ctx context.Context, lead *model.Lead) {
	lead.ID = uuid.New().String()
	lead.CapturedAt = time.Now().UTC()

	if s.leadRepo != nil {
		if err := s.leadRepo.Create(ctx, lead); err != nil {
			log.Printf("[lead] persist failed for %s lead: %v", lead.Kind, err)
		}
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastLead(lead)
	}
}
