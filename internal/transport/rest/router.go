package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"climatewise/internal/cache"
	"climatewise/internal/service"
	"climatewise/internal/transport/rest/handler"
	"climatewise/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService           *service.AuthService
	AccountService        *service.AccountService
	SessionService        *service.SessionService
	CertificateService    *service.CertificateService
	RecommendationService *service.RecommendationService
	Leaderboard           cache.LeaderboardCache
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	profileHandler := handler.NewProfileHandler(c.AuthService, c.AccountService)
	surveyHandler := handler.NewSurveyHandler(c.SessionService, c.AuthService)
	certHandler := handler.NewCertificateHandler(c.CertificateService)
	contentHandler := handler.NewContentHandler(c.RecommendationService, c.SessionService, c.AuthService)
	dashboardHandler := handler.NewDashboardHandler(c.AuthService, c.RecommendationService, c.Leaderboard)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/certificates/verify/{code}", certHandler.Verify).Methods("GET", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/profile", profileHandler.Get).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/profile", profileHandler.Update).Methods("PUT", "OPTIONS")
	userRoutes.HandleFunc("/account", profileHandler.DeleteAccount).Methods("DELETE", "OPTIONS")

	userRoutes.HandleFunc("/survey/start", surveyHandler.Start).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/survey/sessions", surveyHandler.History).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/survey/{sessionId}/answers/{questionId}", surveyHandler.Answer).Methods("PUT", "OPTIONS")
	userRoutes.HandleFunc("/survey/{sessionId}/complete", surveyHandler.Complete).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/survey/{sessionId}", surveyHandler.Abandon).Methods("DELETE", "OPTIONS")

	userRoutes.HandleFunc("/certificates", certHandler.List).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/recommendations", contentHandler.Recommendations).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/facts/random", contentHandler.RandomFact).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/facts", contentHandler.Facts).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/dashboard", dashboardHandler.Get).Methods("GET", "OPTIONS")

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
