// Package server implements the HTTP API: auth, resume analysis, stored
// scores, and job matching.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/jobsearch"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/server/middleware"
	"github.com/jonathan/resume-analyzer/internal/server/ratelimit"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/vocab"
)

// JobSearcher runs an upstream job search. *jobsearch.Client satisfies it;
// tests substitute a fake.
type JobSearcher interface {
	Search(ctx context.Context, params types.JobSearchParams) ([]types.Job, error)
}

// ScoreStore persists analysis results. *db.DB satisfies it.
type ScoreStore interface {
	UpsertResumeScore(ctx context.Context, resumeID, userID uuid.UUID, score types.ATSScore) error
	GetResumeScore(ctx context.Context, resumeID uuid.UUID) (*db.ResumeScore, error)
	ReplaceJobMatches(ctx context.Context, resumeID uuid.UUID, matches []types.JobMatch) error
}

// Server is the HTTP server with all its collaborators.
type Server struct {
	httpServer  *http.Server
	database    *db.DB
	scores      ScoreStore
	jobs        JobSearcher
	llmClient   llm.Client
	vocabulary  *vocab.Vocabulary
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	authHandler *AuthHandler
	verbose     bool
}

// New creates a server from configuration, connecting to the database and
// wiring optional collaborators (job search, LLM polish) when configured.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	vocabulary := vocab.Default()
	if cfg.VocabularyPath != "" {
		vocabulary, err = vocab.LoadFromFile(cfg.VocabularyPath)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, err
	}
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, err
	}

	var jobs JobSearcher
	if cfg.JobSearchAppID != "" && cfg.JobSearchAppKey != "" {
		jobs = jobsearch.NewClient(jobsearch.Config{
			BaseURL:  cfg.JobSearchBaseURL,
			AppID:    cfg.JobSearchAppID,
			AppKey:   cfg.JobSearchAppKey,
			Country:  cfg.JobSearchCountry,
			CacheTTL: time.Duration(cfg.CacheTTLMinutes) * time.Minute,
		})
	}

	var llmClient llm.Client
	if cfg.APIKey != "" {
		llmClient, err = llm.NewClient(ctx, nil, cfg.APIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	}

	jwtService := NewJWTService(jwtConfig)
	userService := NewUserService(database, jwtService, passwordConfig)

	s := &Server{
		database:    database,
		scores:      database,
		jobs:        jobs,
		llmClient:   llmClient,
		vocabulary:  vocabulary,
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		jwtService:  jwtService,
		authHandler: NewAuthHandler(userService),
		verbose:     cfg.Verbose,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// routes builds the route mux. Resume routes require authentication.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	mux.Handle("POST /resumes/{id}/analyze", auth(http.HandlerFunc(s.handleAnalyzeResume)))
	mux.Handle("GET /resumes/{id}/score", auth(http.HandlerFunc(s.handleGetResumeScore)))
	mux.Handle("POST /resumes/{id}/matches", auth(http.HandlerFunc(s.handleMatchJobs)))

	return mux
}

// Start runs the server until the context is cancelled or an interrupt
// signal arrives, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.Close()
	return err
}

// Close releases server resources without serving.
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	if s.database != nil {
		s.database.Close()
	}
}

// withCORS adds permissive CORS headers and answers preflight requests.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with method, path, and duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if s.verbose {
			log.Printf("%s %s (%v)", r.Method, r.URL.Path, time.Since(start))
		}
	})
}

// withRateLimit enforces per-client, per-endpoint rate limits.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		setRateLimitHeaders(w, info)
		if !allowed {
			rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractClientID identifies the client for rate limiting, preferring
// proxy-forwarded addresses over the direct peer address.
func extractClientID(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx != -1 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return strings.TrimSpace(forwarded)
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}

	// RemoteAddr includes the port; strip it
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit <= 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
}

func rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	retryAfter := int(info.RetryAfter.Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded; try again later")
}

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// errorResponse writes a JSON error response.
func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}
