package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"envrt-site/internal/config"
)

func testMailerConfig(apiKey, baseURL string) *config.MailerConfig {
	return &config.MailerConfig{
		APIKey:         apiKey,
		BaseURL:        baseURL,
		TimeoutMS:      2000,
		FromAssessment: "ENVRT Assessment <results@envrt.com>",
		FromCalculator: "ENVRT Calculator <results@envrt.com>",
		InternalNotify: "info@envrt.com",
	}
}

func TestResendClientSend(t *testing.T) {
	var got struct {
		From    string   `json:"from"`
		To      []string `json:"to"`
		Subject string   `json:"subject"`
		HTML    string   `json:"html"`
	}
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/emails" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	client := NewResendClient(testMailerConfig("re_test_key", srv.URL))
	err := client.Send(context.Background(), Email{
		From:    "ENVRT Assessment <results@envrt.com>",
		To:      "jane@brand.com",
		Subject: "Your DPP Readiness Score: 72/100 - COMPLIANCE READY",
		HTML:    "<p>hi</p>",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if auth != "Bearer re_test_key" {
		t.Errorf("auth header = %q", auth)
	}
	if len(got.To) != 1 || got.To[0] != "jane@brand.com" {
		t.Errorf("to = %v", got.To)
	}
	if got.From != "ENVRT Assessment <results@envrt.com>" || got.HTML != "<p>hi</p>" {
		t.Errorf("payload = %+v", got)
	}
}

func TestResendClientSendProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	client := NewResendClient(testMailerConfig("re_test_key", srv.URL))
	err := client.Send(context.Background(), Email{To: "jane@brand.com"})
	if err == nil {
		t.Fatal("expected error on 422")
	}
	if !strings.Contains(err.Error(), "422") {
		t.Errorf("error should carry the status for logging, got %v", err)
	}
}

func TestResendClientIsEnabled(t *testing.T) {
	if NewResendClient(testMailerConfig("", "https://api.resend.com")).IsEnabled() {
		t.Error("empty key should disable the mailer")
	}
	if !NewResendClient(testMailerConfig("re_x", "https://api.resend.com")).IsEnabled() {
		t.Error("configured key should enable the mailer")
	}
}
