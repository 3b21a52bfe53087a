package api

import (
	"context"
	"net/http"

	"github.com/limbo/levelup/internal/service"
	"github.com/limbo/levelup/pkg/entity"
	"github.com/limbo/levelup/pkg/httputil"
)

type CreatePresetHabitRequest struct {
	Description  string  `json:"description"`
	CategoryName *string `json:"category_name"`
}

type CreateCustomHabitRequest struct {
	Description string `json:"description"`
}

func (s *Server) ListPresetHabits(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habits, err := s.presetHabitService.List(ctx)
	if err != nil {
		writeServiceError(w, GetLoggerFromCtx(r.Context()), "listing preset habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habits)
}

func (s *Server) GetPresetHabit(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.presetHabitService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, GetLoggerFromCtx(r.Context()), "getting preset habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) CreatePresetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	a, ok := actor(w, r)
	if !ok {
		return
	}
	var req CreatePresetHabitRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create preset habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.presetHabitService.Create(ctx, a, service.CreatePresetHabitRequest{
		Description:  req.Description,
		CategoryName: req.CategoryName,
	})
	if err != nil {
		writeServiceError(w, logger, "creating preset habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("preset habit created")
}

func (s *Server) UpdatePresetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	a, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var patch entity.PresetHabitPatch
	if err := httputil.DecodeJSON(r, &patch); err != nil {
		logger.Error("preset habit update error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.presetHabitService.Update(ctx, a, id, patch)
	if err != nil {
		writeServiceError(w, logger, "updating preset habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) DeletePresetHabit(w http.ResponseWriter, r *http.Request) {
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
	if err := s.presetHabitService.Delete(ctx, a, id); err != nil {
		writeServiceError(w, logger, "deleting preset habit", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("preset habit deleted")
}

func (s *Server) ListCustomHabits(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habits, err := s.customHabitService.List(ctx, a)
	if err != nil {
		writeServiceError(w, GetLoggerFromCtx(r.Context()), "listing custom habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habits)
}

func (s *Server) ListOwnCustomHabits(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habits, err := s.customHabitService.ListOwn(ctx, a)
	if err != nil {
		writeServiceError(w, GetLoggerFromCtx(r.Context()), "listing user's custom habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habits)
}

func (s *Server) GetCustomHabit(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.customHabitService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, GetLoggerFromCtx(r.Context()), "getting custom habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) CreateCustomHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	a, ok := actor(w, r)
	if !ok {
		return
	}
	var req CreateCustomHabitRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create custom habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.customHabitService.Create(ctx, a, service.CreateCustomHabitRequest{Description: req.Description})
	if err != nil {
		writeServiceError(w, logger, "creating custom habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("custom habit created")
}

func (s *Server) UpdateCustomHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	a, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var patch entity.CustomHabitPatch
	if err := httputil.DecodeJSON(r, &patch); err != nil {
		logger.Error("custom habit update error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habit, err := s.customHabitService.Update(ctx, a, id, patch)
	if err != nil {
		writeServiceError(w, logger, "updating custom habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) DeleteCustomHabit(w http.ResponseWriter, r *http.Request) {
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
	if err := s.customHabitService.Delete(ctx, a, id); err != nil {
		writeServiceError(w, logger, "deleting custom habit", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("custom habit deleted")
}
