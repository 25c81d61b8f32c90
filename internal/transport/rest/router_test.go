package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"envrt-site/internal/config"
	"envrt-site/internal/model"
	"envrt-site/internal/service"
	"envrt-site/internal/transport/ws"
)

type stubMailer struct {
	enabled bool
	fail    bool
	sent    []service.Email
}

func (m *stubMailer) IsEnabled() bool { return m.enabled }

func (m *stubMailer) Send(_ context.Context, email service.Email) error {
	if m.fail {
		return errors.New("resend: status 500: upstream broken")
	}
	m.sent = append(m.sent, email)
	return nil
}

type stubLeadRepo struct {
	leads []*model.Lead
}

func (r *stubLeadRepo) Create(_ context.Context, lead *model.Lead) error {
	r.leads = append(r.leads, lead)
	return nil
}

func (r *stubLeadRepo) GetByID(_ context.Context, id string) (*model.Lead, error) {
	for _, l := range r.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (r *stubLeadRepo) List(_ context.Context, kind model.LeadKind, limit int64) ([]*model.Lead, error) {
	var out []*model.Lead
	for _, l := range r.leads {
		if kind == "" || l.Kind == kind {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubLeadRepo) CountByKind(_ context.Context, kind model.LeadKind) (int64, error) {
	leads, _ := r.List(context.Background(), kind, 0)
	return int64(len(leads)), nil
}

type stubEventRepo struct {
	events []*model.BeaconEvent
}

func (r *stubEventRepo) InsertBatch(_ context.Context, events []*model.BeaconEvent) error {
	r.events = append(r.events, events...)
	return nil
}

func (r *stubEventRepo) ListByDay(context.Context, time.Time, int64) ([]*model.BeaconEvent, error) {
	return r.events, nil
}

func (r *stubEventRepo) CountByType(context.Context, model.EventType, time.Time) (int64, error) {
	return int64(len(r.events)), nil
}

type stubRateLimiter struct {
	counts map[string]int
}

func (c *stubRateLimiter) Hit(_ context.Context, scope, clientKey string, limit int) (bool, error) {
	if c.counts == nil {
		c.counts = map[string]int{}
	}
	key := scope + "|" + clientKey
	c.counts[key]++
	return c.counts[key] <= limit, nil
}

type stubStatsCache struct {
	recorded int
}

func (c *stubStatsCache) RecordEvent(context.Context, *model.BeaconEvent) error {
	c.recorded++
	return nil
}

func (c *stubStatsCache) GetDailySummary(_ context.Context, day time.Time) (*model.DailySummary, error) {
	return &model.DailySummary{Date: day.UTC().Format("2006-01-02")}, nil
}

type testEnv struct {
	router    http.Handler
	mailer    *stubMailer
	leadRepo  *stubLeadRepo
	eventRepo *stubEventRepo
}

func newTestEnv(t *testing.T, mailerEnabled bool) *testEnv {
	t.Helper()
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "test-secret")

	mailer := &stubMailer{enabled: mailerEnabled}
	leadRepo := &stubLeadRepo{}
	eventRepo := &stubEventRepo{}
	statsCache := &stubStatsCache{}

	mailerCfg := &config.MailerConfig{
		FromAssessment: "ENVRT Assessment <results@envrt.com>",
		FromCalculator: "ENVRT Calculator <results@envrt.com>",
		InternalNotify: "info@envrt.com",
	}
	leadSvc := service.NewLeadService(mailer, mailerCfg, leadRepo)

	router := NewRouter(&Container{
		AuthService:      service.NewAuthService(),
		ScoringService:   service.NewScoringService(),
		ROIService:       service.NewROIService(),
		LeadService:      leadSvc,
		InsightsService:  service.NewInsightsService(t.TempDir(), false),
		AnalyticsService: service.NewAnalyticsService(eventRepo, statsCache),
		Mailer:           mailer,
		LeadRepo:         leadRepo,
		RateLimit:        &stubRateLimiter{},
		WSHub:            ws.NewHub(),
	})

	return &testEnv{router: router, mailer: mailer, leadRepo: leadRepo, eventRepo: eventRepo}
}

func (e *testEnv) do(method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

const validAssessmentLead = `{
	"firstName": "Jane",
	"brandName": "Acme Apparel",
	"email": "jane@brand.com",
	"overall": 72,
	"band": "COMPLIANCE READY",
	"headline": "Strong foundations.",
	"summary": "Well positioned.",
	"dimensions": [{"label": "Supply Chain Traceability", "score": 95}],
	"actions": ["Map your supply chain."],
	"timelineRisk": "Window approaching."
}`

func TestLeadEndpointContract(t *testing.T) {
	t.Run("mailer not configured", func(t *testing.T) {
		env := newTestEnv(t, false)
		rec := env.do("POST", "/v1/leads/assessment", validAssessmentLead, nil)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Email service not configured") {
			t.Errorf("body = %s", rec.Body.String())
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		env := newTestEnv(t, true)
		rec := env.do("POST", "/v1/leads/assessment", "{not json", nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		env := newTestEnv(t, true)
		rec := env.do("POST", "/v1/leads/assessment", `{"brandName":"Acme"}`, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("provider failure is not leaked", func(t *testing.T) {
		env := newTestEnv(t, true)
		env.mailer.fail = true
		rec := env.do("POST", "/v1/leads/assessment", validAssessmentLead, nil)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "Failed to send email") {
			t.Errorf("body = %s", body)
		}
		if strings.Contains(body, "upstream") || strings.Contains(body, "resend") {
			t.Errorf("provider detail leaked to client: %s", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t, true)
		rec := env.do("POST", "/v1/leads/assessment", validAssessmentLead, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var resp map[string]bool
		json.Unmarshal(rec.Body.Bytes(), &resp)
		if !resp["success"] {
			t.Errorf("body = %s", rec.Body.String())
		}
		if len(env.mailer.sent) != 1 {
			t.Errorf("sent %d emails", len(env.mailer.sent))
		}
		if len(env.leadRepo.leads) != 1 {
			t.Errorf("stored %d leads", len(env.leadRepo.leads))
		}
	})

	t.Run("wrong method", func(t *testing.T) {
		env := newTestEnv(t, true)
		rec := env.do("GET", "/v1/leads/assessment", "", nil)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	})
}

func TestScoreAndQuestionsEndpoints(t *testing.T) {
	env := newTestEnv(t, true)

	rec := env.do("POST", "/v1/assessment/score", `{"answers":{"q6":"tier3+","q7":"all","q8":"all","q9":["gots","grs"],"q10":"formal-all"}}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("score status = %d", rec.Code)
	}
	var report model.AssessmentReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Scores.SupplyChain != 95 {
		t.Errorf("supplyChain = %d, want 95", report.Scores.SupplyChain)
	}
	if report.Band.Label == "" || len(report.Actions) == 0 {
		t.Errorf("report narrative incomplete: %+v", report)
	}

	rec = env.do("GET", "/v1/assessment/questions", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("questions status = %d", rec.Code)
	}
	var q struct {
		Sections []model.Section `json:"sections"`
	}
	json.Unmarshal(rec.Body.Bytes(), &q)
	if len(q.Sections) != 5 {
		t.Errorf("got %d sections, want 5", len(q.Sections))
	}
}

func TestROICalculateEndpoint(t *testing.T) {
	env := newTestEnv(t, true)
	rec := env.do("POST", "/v1/roi/calculate", `{"skuCount":25,"hoursPerProduct":4,"market":"both","approach":"consultant","teamSize":"small"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var res model.ROIResults
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.EnvrtCost != 1788 || res.HoursSaved != 75 || res.DaysSaved != 9 {
		t.Errorf("results = %+v", res)
	}
}

func TestAnalyticsIngestEndpoint(t *testing.T) {
	env := newTestEnv(t, true)

	rec := env.do("POST", "/v1/analytics/events", `{"events":[{"type":"pageview","path":"/"},{"type":"bogus","path":"/x"}]}`, nil)
	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want 202", rec.Code)
	}
	if len(env.eventRepo.events) != 1 {
		t.Errorf("stored %d events, want the pageview only", len(env.eventRepo.events))
	}

	// Garbage still gets a 202; the beacon client never retries
	rec = env.do("POST", "/v1/analytics/events", "not json", nil)
	if rec.Code != http.StatusAccepted {
		t.Errorf("garbage status = %d, want 202", rec.Code)
	}
}

func TestAdminEndpointsRequireAuth(t *testing.T) {
	env := newTestEnv(t, true)

	rec := env.do("GET", "/v1/admin/leads", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", rec.Code)
	}

	rec = env.do("POST", "/v1/auth/login", `{"username":"admin","password":"wrong"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad login status = %d, want 401", rec.Code)
	}

	rec = env.do("POST", "/v1/auth/login", `{"username":"admin","password":"secret"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d", rec.Code)
	}
	var login model.LoginResponse
	json.Unmarshal(rec.Body.Bytes(), &login)
	if login.Token == "" {
		t.Fatal("empty token")
	}

	auth := map[string]string{"Authorization": "Bearer " + login.Token}

	env.do("POST", "/v1/leads/assessment", validAssessmentLead, nil)
	rec = env.do("GET", "/v1/admin/leads?kind=assessment", "", auth)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin leads status = %d", rec.Code)
	}
	var resp struct {
		Leads []*model.Lead `json:"leads"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Leads) != 1 || resp.Leads[0].Kind != model.LeadKindAssessment {
		t.Errorf("leads = %+v", resp.Leads)
	}

	rec = env.do("GET", "/v1/admin/analytics/summary?date=2026-02-17", "", auth)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "2026-02-17") {
		t.Errorf("summary body = %s", rec.Body.String())
	}
}

func TestInsightsEndpoints(t *testing.T) {
	env := newTestEnv(t, true)

	rec := env.do("GET", "/v1/insights", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("list status = %d", rec.Code)
	}

	rec = env.do("GET", "/v1/insights/does-not-exist", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing slug status = %d, want 404", rec.Code)
	}
}

func TestLeadAndBeaconRoutesAreRateLimited(t *testing.T) {
	env := newTestEnv(t, true)

	// Lead routes allow 10 per window, then reject
	for i := 1; i <= 10; i++ {
		rec := env.do("POST", "/v1/leads/assessment", validAssessmentLead, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}
	rec := env.do("POST", "/v1/leads/assessment", validAssessmentLead, nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("11th lead request: status = %d, want 429", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "too many requests") {
		t.Errorf("429 body = %s", rec.Body.String())
	}

	// The beacon carries its own, far higher ceiling: the exhausted lead
	// window must not bleed into it
	rec = env.do("POST", "/v1/analytics/events", `{"events":[{"type":"pageview","path":"/"}]}`, nil)
	if rec.Code != http.StatusAccepted {
		t.Errorf("beacon status = %d, want 202", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t, true)
	rec := env.do("GET", "/health", "", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("health = %d %s", rec.Code, rec.Body.String())
	}
}
