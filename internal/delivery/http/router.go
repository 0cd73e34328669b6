package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "eventcheckin/docs"
	"eventcheckin/internal/delivery/http/controllers"
	"eventcheckin/internal/delivery/http/middleware"
	"eventcheckin/internal/metrics"
)

// RouterOptions carries everything NewRouter wires together.
type RouterOptions struct {
	Logger      *slog.Logger
	Health      *controllers.HealthController
	Events      *controllers.EventController
	Attendees   *controllers.AttendeeController
	Metrics     *metrics.Metrics
	Auth        middleware.AuthOptions
	CORSOrigins []string
}

// NewRouter initializes the HTTP router with all application routes and
// wraps it in the middleware chain. The shared-secret gate runs before
// routing, so it covers every path.
func NewRouter(opts RouterOptions) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", opts.Health.Health)

	// API Routes
	mux.HandleFunc("GET /events", opts.Events.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", opts.Events.GetEvent)
	mux.HandleFunc("GET /events/{eventID}/attendees", opts.Attendees.ListAttendees)
	mux.HandleFunc("POST /events/{eventID}/checkin", opts.Attendees.CheckIn)

	mux.Handle("GET /metrics", opts.Metrics.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("/", controllers.NotFound)

	var handler http.Handler = middleware.Metrics(opts.Metrics, mux)
	handler = middleware.RequireSharedSecret(opts.Auth, opts.Logger)(handler)
	handler = middleware.CORS(opts.CORSOrigins, handler)
	handler = middleware.LoggingMiddleware(opts.Logger, handler)
	return middleware.RequestID(handler)
}
