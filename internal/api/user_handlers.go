package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/limbo/levelup/pkg/entity"
	"github.com/limbo/levelup/pkg/httputil"
)

type GetUsersResponse struct {
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Users []*entity.User `json:"users"`
}

func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	page, opts := pagination(r)
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	users, err := s.userService.List(ctx, opts)
	if err != nil {
		writeServiceError(w, logger, "listing users", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetUsersResponse{
		Page:  page,
		Limit: opts.Limit,
		Users: users,
	})
}

func (s *Server) Leaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	users, err := s.userService.Leaderboard(ctx, limit)
	if err != nil {
		writeServiceError(w, logger, "getting leaderboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, users)
}

func (s *Server) GetMe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	a, ok := actor(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.GetByID(ctx, a.ID)
	if err != nil {
		writeServiceError(w, logger, "getting current user", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.GetByID(ctx, id)
	if err != nil {
		writeServiceError(w, logger, "getting user", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

func (s *Server) UpdateUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	a, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var patch entity.UserPatch
	if err := httputil.DecodeJSON(r, &patch); err != nil {
		logger.Error("user update error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	user, err := s.userService.Update(ctx, a, id, patch)
	if err != nil {
		writeServiceError(w, logger, "updating user", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("user updated")
}

func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	a, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.userService.Delete(ctx, a, id); err != nil {
		writeServiceError(w, logger, "deleting user", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("user deleted")
}
