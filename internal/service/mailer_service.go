package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"envrt-site/internal/config"
)

// Email is one outbound transactional email
type Email struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Mailer sends transactional email. Satisfied by ResendClient; handlers and
// tests can substitute their own.
type Mailer interface {
	IsEnabled() bool
	Send(ctx context.Context, email Email) error
}

// ResendClient wraps the Resend transactional email API
type ResendClient struct {
	config     *config.MailerConfig
	httpClient *http.Client
}

// NewResendClient creates a new Resend API client
func NewResendClient(cfg *config.MailerConfig) *ResendClient {
	return &ResendClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// IsEnabled returns true if the provider API key is configured
func (c *ResendClient) IsEnabled() bool {
	return c.config.IsEnabled()
}

// Send submits one email to the provider. The returned error carries provider
// detail for server-side logging; callers must not forward it to clients.
func (c *ResendClient) Send(ctx context.Context, email Email) error {
	body, err := json.Marshal(map[string]interface{}{
		"from":    email.From,
		"to":      []string{email.To},
		"subject": email.Subject,
		"html":    email.HTML,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.config.SendEndpoint(), bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("resend: status %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
