package config

import "os"

// MailerConfig holds all Resend-related configuration
type MailerConfig struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl"`
	TimeoutMS int    `json:"timeoutMs"`

	// FromAssessment is the sender identity for assessment result emails
	FromAssessment string `json:"fromAssessment"`

	// FromCalculator is the sender identity for ROI calculator emails
	FromCalculator string `json:"fromCalculator"`

	// InternalNotify receives sales notifications for ROI and contact leads
	InternalNotify string `json:"internalNotify"`
}

// DefaultMailerConfig returns the default mailer configuration
func DefaultMailerConfig() *MailerConfig {
	return &MailerConfig{
		APIKey:         os.Getenv("RESEND_API_KEY"),
		BaseURL:        "https://api.resend.com",
		TimeoutMS:      10000, // 10 second default timeout
		FromAssessment: getEnvOrDefault("MAIL_FROM_ASSESSMENT", "ENVRT Assessment <results@envrt.com>"),
		FromCalculator: getEnvOrDefault("MAIL_FROM_CALCULATOR", "ENVRT Calculator <results@envrt.com>"),
		InternalNotify: getEnvOrDefault("MAIL_INTERNAL_NOTIFY", "info@envrt.com"),
	}
}

// IsEnabled returns true if the email provider is configured
func (c *MailerConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// SendEndpoint returns the full endpoint for sending an email
func (c *MailerConfig) SendEndpoint() string {
	return c.BaseURL + "/emails"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
