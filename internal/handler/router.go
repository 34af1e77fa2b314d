package handler

import (
	"database/sql"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tlv300/whois-be/internal/repository"
	"github.com/tlv300/whois-be/internal/service"
)

// SetupRouter creates the main Chi router for the application, injecting the
// services and the lookup-history sink into the handlers. db may be nil when
// no sink is configured.
func SetupRouter(whoisService service.IWhoisService, authService service.IAuthService, lookups repository.ILookupRepository, db *sql.DB, logger *log.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Logger: request details (method, path, latency, status).
	r.Use(middleware.Logger)
	// Panics become a 500 in the API's JSON error shape instead of crashing
	// the process.
	r.Use(recoverJSON(logger))

	// CORS for the browser frontend. Lock AllowedOrigins down to the deployed
	// frontend's domain in production.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	whoisHandler := NewWhoisHandler(whoisService, lookups, logger)
	authHandler := NewAuthHandler(authService, logger)
	authMiddleware := NewAuthMiddleware(authService, logger)
	historyHandler := NewHistoryHandler(lookups, logger)
	healthHandler := NewHealthHandler(db, logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/whois", whoisHandler.Lookup)
		r.Get("/health", healthHandler.Check)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Get("/lookups", historyHandler.List)
			})
		})
	})

	return r
}

// recoverJSON catches handler panics and answers with the same
// {"error": "..."} shape the rest of the API speaks.
func recoverJSON(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Printf("ERROR: panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
					respondWithError(w, http.StatusInternalServerError, "Unexpected server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
