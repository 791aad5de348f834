package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/at-ishikawa/vocabstudy/internal/user"
)

type contextKey string

const userIDContextKey contextKey = "user_id"

type registerRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type userResponse struct {
	User user.User `json:"user"`
}

func (s *Server) requireUsers(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.users == nil || s.sessions == nil {
			writeError(w, http.StatusServiceUnavailable, "user accounts are not configured")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "login required")
			return
		}
		userID, err := s.sessions.Verify(cookie.Value)
		if err != nil {
			slog.Default().Debug("rejected session", "error", err)
			writeError(w, http.StatusUnauthorized, "login required")
			return
		}
		ctx := context.WithValue(r.Context(), userIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	created, err := s.users.CreateUser(r.Context(), req.Username, req.Email, req.Password)
	switch {
	case errors.Is(err, user.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, user.ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		slog.Default().Error("failed to create user", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	if !s.setSessionCookie(w, r, created.ID) {
		return
	}
	writeJSON(w, http.StatusCreated, userResponse{User: created})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	authenticated, err := s.users.Authenticate(r.Context(), req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		slog.Default().Error("failed to authenticate user", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	if !s.setSessionCookie(w, r, authenticated.ID) {
		return
	}
	writeJSON(w, http.StatusOK, userResponse{User: authenticated})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(userIDContextKey).(int64)
	current, err := s.users.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "login required")
			return
		}
		slog.Default().Error("failed to load user", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load user")
		return
	}
	writeJSON(w, http.StatusOK, userResponse{User: current})
}

func (s *Server) setSessionCookie(w http.ResponseWriter, r *http.Request, userID int64) bool {
	token, expiresAt, err := s.sessions.Issue(userID)
	if err != nil {
		slog.Default().Error("failed to issue session", "user_id", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to start session")
		return false
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return true
}

func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				fields = append(fields, strings.ToLower(fieldErr.Field())+" "+fieldErr.Tag())
			}
			writeError(w, http.StatusBadRequest, "invalid fields: "+strings.Join(fields, ", "))
			return false
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
