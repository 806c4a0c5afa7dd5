package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vidyut-veedgav/Call-Beta/internal/claim"
	"github.com/vidyut-veedgav/Call-Beta/internal/database"
	"github.com/vidyut-veedgav/Call-Beta/internal/handler"
	"github.com/vidyut-veedgav/Call-Beta/internal/logger"
	"github.com/vidyut-veedgav/Call-Beta/internal/market"
	"github.com/vidyut-veedgav/Call-Beta/internal/metrics"
	"github.com/vidyut-veedgav/Call-Beta/internal/ranking"
	"github.com/vidyut-veedgav/Call-Beta/internal/resolution"
	"github.com/vidyut-veedgav/Call-Beta/internal/user"
)

type Server struct {
	httpServer *http.Server
}

// NewServer wires the ledger services into a chi router. The pool may be
// nil when the ledger is backed by the in-memory store.
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, userService user.Service, claimService claim.Service, marketService market.Service, resolutionService resolution.Service, rankingService ranking.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	claimHandler := handler.NewClaimHandler(claimService)
	betHandler := handler.NewBetHandler(marketService)
	resolutionHandler := handler.NewResolutionHandler(resolutionService)
	userHandler := handler.NewUserHandler(userService, rankingService)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Claim registry routes
		r.Route("/claims", func(r chi.Router) {
			r.Post("/", claimHandler.HandleCreateClaim)
			r.Get("/", claimHandler.HandleListClaims)
			r.Get("/active", claimHandler.HandleListActiveClaims)
			r.Get("/expired", claimHandler.HandleListExpiredClaims)
			r.Get("/{id}", claimHandler.HandleGetClaim)
			r.Get("/{claimID}/bets", betHandler.HandleGetClaimBets)
			r.Get("/{claimID}/resolutions", resolutionHandler.HandleListResolutions)
		})

		// Betting market routes
		r.Post("/bets", betHandler.HandlePlaceBet)

		// Resolution voting routes
		r.Route("/resolutions", func(r chi.Router) {
			r.Post("/", resolutionHandler.HandleProposeResolution)
			r.Post("/{resolutionID}/vote", resolutionHandler.HandleVote)
		})

		// User and leaderboard routes
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", userHandler.HandleRegisterUser)
			r.Get("/{userID}/bets", betHandler.HandleGetUserBets)
		})
		r.Get("/user/current", userHandler.HandleCurrentUser)
		r.Get("/leaderboard", userHandler.HandleLeaderboard)

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Post("/claims/expire", claimHandler.HandleExpireOverdue)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, "Authorization") {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
