package model

import "time"

// LeadKind distinguishes the capture flow a lead came through
type LeadKind string

const (
	LeadKindAssessment LeadKind = "assessment"
	LeadKindROI        LeadKind = "roi"
	LeadKindContact    LeadKind = "contact"
)

// Lead is the stored lead record. It captures exactly what was forwarded
// into the outbound email payload plus consent; raw quiz answer sets are
// never persisted.
type Lead struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	Kind             LeadKind  `json:"kind" bson:"kind"`
	FirstName        string    `json:"firstName" bson:"firstName"`
	BrandName        string    `json:"brandName" bson:"brandName"`
	Email            string    `json:"email" bson:"email"`
	MarketingConsent bool      `json:"marketingConsent" bson:"marketingConsent"`
	CapturedAt       time.Time `json:"capturedAt" bson:"capturedAt"`

	// Assessment flow
	Assessment *AssessmentLead `json:"assessment,omitempty" bson:"assessment,omitempty"`

	// ROI flow
	ROI *ROILead `json:"roi,omitempty" bson:"roi,omitempty"`

	// Contact flow
	Message string `json:"message,omitempty" bson:"message,omitempty"`
}

// ContactLead is the contact-form request body
type ContactLead struct {
	FirstName        string `json:"firstName"`
	BrandName        string `json:"brandName"`
	Email            string `json:"email"`
	Message          string `json:"message"`
	MarketingConsent bool   `json:"marketingConsent"`
}
