package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"skillbridge/internal/service"
	"skillbridge/internal/transport/rest/handler"
	"skillbridge/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	AssessmentService *service.AssessmentService
	JobService        *service.JobService
	LearningService   *service.LearningService
	Logger            *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService, c.Logger)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService, c.Logger)
	insightsHandler := handler.NewInsightsHandler(c.JobService, c.LearningService, c.Logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)
	if c.Logger != nil {
		r.Use(middleware.RequestLogger(c.Logger))
	}

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/assessment/current", assessmentHandler.Current).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/assessment/answers", assessmentHandler.SubmitAnswer).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/assessment/result", assessmentHandler.Result).Methods("GET", "OPTIONS")

	userRoutes.HandleFunc("/jobs/matches", insightsHandler.JobMatches).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/jobs/description", insightsHandler.JobDescription).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/learning/modules", insightsHandler.LearningModules).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/learning/path", insightsHandler.LearningPath).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
