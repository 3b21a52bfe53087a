package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/levelup/internal/service"
	"github.com/limbo/levelup/pkg/httputil"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID string `json:"uid"`
	Token  string `json:"token"`
	*service.Session
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, logger, "registration", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid":  user.ID.String(),
		"user": user,
	})
	logger.Info("successful registration", slog.String("uid", user.ID.String()))
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	session, err := s.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(session.User)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	s.metrics.ObserveLogin(session.Login.Sweep.MissedHabits)
	httputil.WriteJSONResponse(w, http.StatusOK, LoginResponse{
		UserID:  session.User.ID.String(),
		Token:   token,
		Session: session,
	})
	logger.Info("successful login", slog.String("uid", session.User.ID.String()),
		slog.Int("streak", session.User.Streak))
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// AdminProbe answers only to administrators. Clients use it to find out
// whether to show admin controls.
func (s *Server) AdminProbe(w http.ResponseWriter, r *http.Request) {
	actor, _ := GetActorFromContext(r)
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":      actor.ID.String(),
		"is_admin": true,
		"method":   r.Method,
	})
}
