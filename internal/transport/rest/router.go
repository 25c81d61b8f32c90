package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"envrt-site/internal/cache"
	"envrt-site/internal/repository"
	"envrt-site/internal/service"
	"envrt-site/internal/transport/rest/handler"
	"envrt-site/internal/transport/rest/middleware"
	"envrt-site/internal/transport/ws"
)

// Per-client requests per window. The beacon fires on every page
// interaction, so its ceiling sits far above the lead forms.
const (
	leadRateLimit   = 10
	beaconRateLimit = 120
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	ScoringService   *service.ScoringService
	ROIService       *service.ROIService
	LeadService      *service.LeadService
	InsightsService  *service.InsightsService
	AnalyticsService *service.AnalyticsService
	Mailer           service.Mailer
	LeadRepo         repository.LeadRepository
	RateLimit        cache.RateLimitCache
	WSHub            *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	assessmentHandler := handler.NewAssessmentHandler(c.ScoringService, c.LeadService, c.Mailer)
	roiHandler := handler.NewROIHandler(c.ROIService, c.LeadService, c.Mailer)
	contactHandler := handler.NewContactHandler(c.LeadService, c.Mailer)
	insightsHandler := handler.NewInsightsHandler(c.InsightsService)
	analyticsHandler := handler.NewAnalyticsHandler(c.AnalyticsService)
	adminHandler := handler.NewAdminHandler(c.LeadRepo, c.AnalyticsService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)
	rlMW := middleware.NewRateLimitMiddleware(c.RateLimit)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	v1.HandleFunc("/assessment/questions", assessmentHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessment/score", assessmentHandler.Score).Methods("POST", "OPTIONS")
	v1.HandleFunc("/roi/calculate", roiHandler.Calculate).Methods("POST", "OPTIONS")

	v1.HandleFunc("/leads/assessment", rlMW.Limit("lead-assessment", leadRateLimit, assessmentHandler.Lead)).Methods("POST", "OPTIONS")
	v1.HandleFunc("/leads/roi", rlMW.Limit("lead-roi", leadRateLimit, roiHandler.Lead)).Methods("POST", "OPTIONS")
	v1.HandleFunc("/leads/contact", rlMW.Limit("lead-contact", leadRateLimit, contactHandler.Lead)).Methods("POST", "OPTIONS")

	v1.HandleFunc("/insights", insightsHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/insights/tags", insightsHandler.Tags).Methods("GET", "OPTIONS")
	v1.HandleFunc("/insights/{slug}", insightsHandler.Get).Methods("GET", "OPTIONS")

	v1.HandleFunc("/analytics/events", rlMW.Limit("beacon", beaconRateLimit, analyticsHandler.Ingest)).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/leads", wsHandler.LeadsWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes (require admin auth)
	adminRoutes := v1.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/leads", adminHandler.Leads).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/analytics/summary", adminHandler.AnalyticsSummary).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
