package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/Hawkpraveen/Survey-BE/internal/service"
	"github.com/Hawkpraveen/Survey-BE/internal/transport/rest/handler"
	"github.com/Hawkpraveen/Survey-BE/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService   *service.AuthService
	SurveyService *service.SurveyService
	AnswerService *service.AnswerService
	ReportService *service.ReportService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	surveyHandler := handler.NewSurveyHandler(c.SurveyService)
	answerHandler := handler.NewAnswerHandler(c.AnswerService)
	reportHandler := handler.NewReportHandler(c.ReportService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(corsMiddleware, middleware.RequestLogger)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/users/register", authHandler.Register).Methods("POST", "OPTIONS")
	api.HandleFunc("/users/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Admin routes (owner checks happen in the services)
	adminRoutes := api.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireUser, authMW.RequireAdmin)

	adminRoutes.HandleFunc("/surveys", surveyHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/mine", surveyHandler.Mine).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}", surveyHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}", surveyHandler.Delete).Methods("DELETE", "OPTIONS")

	adminRoutes.HandleFunc("/surveys/{surveyId}/answers", reportHandler.Listing).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}/ratings/histogram", reportHandler.Histogram).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}/ratings/rollup", reportHandler.Rollup).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/surveys/{surveyId}/ratings/respondents", reportHandler.Respondents).Methods("GET", "OPTIONS")

	// Authenticated routes
	authRoutes := api.NewRoute().Subrouter()
	authRoutes.Use(authMW.RequireUser)

	authRoutes.HandleFunc("/surveys/answered", surveyHandler.Answered).Methods("GET", "OPTIONS")
	authRoutes.HandleFunc("/surveys/{surveyId}", surveyHandler.Get).Methods("GET", "OPTIONS")
	authRoutes.HandleFunc("/surveys/{surveyId}/answers", answerHandler.Submit).Methods("POST", "OPTIONS")

	// Public survey listing
	api.HandleFunc("/surveys", surveyHandler.List).Methods("GET", "OPTIONS")

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
