package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"BakeShop/pkg/kit"
)

const (
	tokenTTL    = 15 * time.Minute
	minPassword = 8

	loginLimitPerMin    = 5
	registerLimitPerMin = 3
)

type Server struct {
	Log   *zap.Logger
	Store UserStore
	JWT   *TokenMaker
}

// Routes returns the auth endpoints, mounted under /auth. Register
// and login get their own rate limits since they are brute-forceable.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	loginLimiter := kit.NewIPRateLimiter(loginLimitPerMin, time.Minute)
	registerLimiter := kit.NewIPRateLimiter(registerLimitPerMin, time.Minute)

	r.With(registerLimiter.Middleware).Post("/register", s.handleRegister)
	r.With(loginLimiter.Middleware).Post("/login", s.handleLogin)
	r.Get("/me", s.handleMe)

	return r
}

type registerReq struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Password = strings.TrimSpace(req.Password)
	req.DisplayName = strings.TrimSpace(req.DisplayName)

	if req.Email == "" || req.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "email/password required", nil)
		return
	}
	if len(req.Password) < minPassword {
		kit.WriteError(w, r, http.StatusBadRequest, "password too short", map[string]any{"min_len": minPassword})
		return
	}

	id := "u_" + uuid.NewString()

	if err := s.Store.Create(r.Context(), id, req.Email, req.DisplayName, req.Password); err != nil {
		if err == ErrEmailExists {
			kit.WriteError(w, r, http.StatusConflict, err.Error(), nil)
			return
		}
		s.Log.Error("create user failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	AccessToken string `json:"access_token"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Password = strings.TrimSpace(req.Password)

	if req.Email == "" || req.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "email/password required", nil)
		return
	}

	u, err := s.Store.Verify(r.Context(), req.Email, req.Password)
	if err != nil {
		if err != ErrInvalidCredentials {
			s.Log.Error("verify user failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	tok, err := s.JWT.New(u, tokenTTL)
	if err != nil {
		s.Log.Error("token issue", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, loginResp{AccessToken: tok})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		kit.WriteError(w, r, http.StatusUnauthorized, "missing token", nil)
		return
	}

	claims, err := s.JWT.Parse(strings.TrimPrefix(authz, "Bearer "))
	if err != nil {
		kit.WriteError(w, r, http.StatusUnauthorized, "invalid token", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"uid":          claims.UserID,
		"email":        claims.Email,
		"display_name": claims.DisplayName,
	})
}
