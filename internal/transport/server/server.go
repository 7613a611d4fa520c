package server

import (
	"context"
	"log"
	"net/http"
	"runtime/debug"
	"sync"

	"github.com/gorilla/mux"

	"github.com/pep299/vc-briefing/internal/application"
	"github.com/pep299/vc-briefing/internal/config"
	"github.com/pep299/vc-briefing/internal/transport/middleware"
)

// CreateHandler creates the main HTTP handler for the application
func CreateHandler(app *application.Application) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(app.Config.AllowedOrigins))

	// API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Timeout(app.RequestTimeout()))
	api.Handle("/generate", app.GenerateHandler).Methods("POST", "OPTIONS")
	api.Handle("/health", app.HealthHandler).Methods("GET")

	// Browser page
	r.Handle("/", app.PageHandler).Methods("GET")

	return r
}

var (
	mu      sync.Mutex
	handler http.Handler
)

// loadHandler builds the handler from the environment once and reuses it
// for every later request. A failed build is retried on the next request.
func loadHandler() (http.Handler, error) {
	mu.Lock()
	defer mu.Unlock()

	if handler != nil {
		return handler, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	app, err := application.New(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	handler = CreateHandler(app)
	return handler, nil
}

// HandleRequest handles a single HTTP request (for Cloud Functions)
func HandleRequest(w http.ResponseWriter, r *http.Request) {
	h, err := loadHandler()
	if err != nil {
		log.Printf("Failed to create handler: %v\nStack:\n%s", err, debug.Stack())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.ServeHTTP(w, r)
}
