package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/cvkit/internal/cv"
	"github.com/jonathan/cvkit/internal/server/middleware"
	"github.com/jonathan/cvkit/internal/server/ratelimit"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds how long in-flight requests may take after a stop signal
const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	svc         *cv.Service
	rateLimiter *ratelimit.Limiter
	recentCount int
}

// Config holds server configuration
type Config struct {
	Port        int
	Service     *cv.Service
	RateLimit   *ratelimit.Config // nil loads RATE_LIMIT_* from the environment
	RecentCount int               // default for /experience/recent without ?count=
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Service == nil {
		return nil, errors.New("server requires a CV service")
	}

	rlConfig := cfg.RateLimit
	if rlConfig == nil {
		rlConfig = ratelimit.LoadConfig()
	}

	recent := cfg.RecentCount
	if recent <= 0 {
		recent = cv.DefaultRecentCount
	}

	s := &Server{
		svc:         cfg.Service,
		rateLimiter: ratelimit.NewLimiter(rlConfig),
		recentCount: recent,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /cv", s.handleCV)

	// Literal segments take precedence over {id}
	mux.HandleFunc("GET /experience/recent", s.handleRecentExperience)
	mux.HandleFunc("GET /experience/current", s.handleCurrentPosition)
	mux.HandleFunc("GET /experience/years", s.handleYears)
	mux.HandleFunc("GET /experience/by-country", s.handleByCountry)
	mux.HandleFunc("GET /experience/timeline", s.handleTimeline)
	mux.HandleFunc("GET /experience/{id}", s.handleExperience)

	mux.HandleFunc("GET /projects/featured", s.handleFeaturedProjects)
	mux.HandleFunc("GET /projects/{id}", s.handleProject)

	mux.HandleFunc("GET /dates/format", s.handleFormatDate)
	mux.HandleFunc("GET /dates/duration", s.handleDuration)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      middleware.RequestID(s.withRateLimit(s.withLogging(s.withCORS(mux)))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	defer s.rateLimiter.Stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit rejects clients that exceed their token bucket
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path)

		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		id := middleware.GetRequestID(r)

		log.Printf("[%s] %s %s id=%s", r.Method, r.URL.Path, r.RemoteAddr, id)
		next.ServeHTTP(rec, r)
		log.Printf("[%s] %s %d completed in %v id=%s", r.Method, r.URL.Path, rec.status, time.Since(start), id)
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps err to a status code and writes it
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[error] %s %s id=%s: %v", r.Method, r.URL.Path, middleware.GetRequestID(r), err)
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// extractClientID returns the client IP from RemoteAddr.
// Forwarded headers are ignored since they are trivially spoofed without a trusted proxy.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		seconds := int(info.RetryAfter.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
	}

	log.Printf("[rate-limit] client=%s path=%s limit=%d reset=%s",
		extractClientID(r), r.URL.Path, info.Limit, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
