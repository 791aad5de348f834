// Package server provides the JSON HTTP API for vocabulary lookups, study sessions and user accounts.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/vocabstudy/internal/config"
	"github.com/at-ishikawa/vocabstudy/internal/dictionary"
	"github.com/at-ishikawa/vocabstudy/internal/user"
)

// VocabularyService is what the API needs from the vocabulary core.
type VocabularyService interface {
	Categories() []string
	GetWordDetails(ctx context.Context, word string) (dictionary.WordRecord, bool)
	GetCategoryWords(ctx context.Context, category string, limit int) []dictionary.WordRecord
	GenerateStudySession(ctx context.Context, category string, wordCount int) []dictionary.WordRecord
}

// UserService is what the API needs from user management.
type UserService interface {
	CreateUser(ctx context.Context, username, email, password string) (user.User, error)
	Authenticate(ctx context.Context, identifier, password string) (user.User, error)
	GetUser(ctx context.Context, id int64) (user.User, error)
}

type Server struct {
	vocabulary VocabularyService
	// users and sessions are nil when no database is configured
	users    UserService
	sessions *SessionManager

	allowedOrigins    []string
	defaultWordCount  int
	apiWordCount      int
	categoryWordLimit int
	maxWordCount      int

	validate *validator.Validate
}

type Option func(*Server)

// WithUsers enables the account routes
func WithUsers(users UserService, sessions *SessionManager) Option {
	return func(s *Server) {
		s.users = users
		s.sessions = sessions
	}
}

func NewServer(cfg *config.Config, vocabulary VocabularyService, opts ...Option) *Server {
	s := &Server{
		vocabulary:        vocabulary,
		allowedOrigins:    cfg.Server.CORS.AllowedOrigins,
		defaultWordCount:  cfg.Vocabulary.DefaultWordCount,
		apiWordCount:      cfg.Vocabulary.APIWordCount,
		categoryWordLimit: cfg.Vocabulary.CategoryWordLimit,
		maxWordCount:      cfg.Vocabulary.MaxWordCount,
		validate:          validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed API with its middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(s.cors)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Default().Error("Failed to write health check response", "error", err)
		}
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", s.handleCategories)
		r.Get("/vocab/{category}", s.handleCategoryWords)
		r.Get("/study", s.handleStudySession)
		r.Get("/random_words", s.handleRandomWords)
		r.Get("/words/{word}", s.handleWord)

		r.Group(func(r chi.Router) {
			r.Use(s.requireUsers)
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.Post("/logout", s.handleLogout)
			r.With(s.requireSession).Get("/me", s.handleMe)
		})
	})

	return r
}

// NewHTTPServer serves handler on addr, accepting HTTP/2 without TLS.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.Default().Info("http request",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && slices.Contains(s.allowedOrigins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "3600")
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("Failed to write JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
