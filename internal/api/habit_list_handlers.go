package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/limbo/levelup/internal/service"
	"github.com/limbo/levelup/pkg/entity"
	"github.com/limbo/levelup/pkg/httputil"
)

type CreateHabitListRequest struct {
	Name string `json:"name"`
}

type AddPresetHabitsRequest struct {
	PresetHabitIDs []uuid.UUID `json:"preset_habit_ids"`
}

type AddCustomHabitsRequest struct {
	CustomHabitIDs []uuid.UUID `json:"custom_habit_ids"`
}

type AddHabitsResponse struct {
	HabitListID string                  `json:"habit_list_id"`
	Added       []*entity.HabitListItem `json:"added"`
}

func (s *Server) ListHabitLists(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	lists, err := s.habitListService.List(ctx, a)
	if err != nil {
		writeServiceError(w, GetLoggerFromCtx(r.Context()), "listing habit lists", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, lists)
}

func (s *Server) ListOwnHabitLists(w http.ResponseWriter, r *http.Request) {
	a, ok := actor(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	lists, err := s.habitListService.ListOwn(ctx, a)
	if err != nil {
		writeServiceError(w, GetLoggerFromCtx(r.Context()), "listing user's habit lists", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, lists)
}

func (s *Server) CreateHabitList(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	a, ok := actor(w, r)
	if !ok {
		return
	}
	var req CreateHabitListRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create habit list error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	list, err := s.habitListService.Create(ctx, a, service.CreateHabitListRequest{Name: req.Name})
	if err != nil {
		writeServiceError(w, logger, "creating habit list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, list)
	logger.Info("habit list created", slog.String("habit_list_id", list.ID.String()))
}

func (s *Server) GetHabitList(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	view, err := s.habitListService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, GetLoggerFromCtx(r.Context()), "getting habit list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

func (s *Server) UpdateHabitList(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	a, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var patch entity.HabitListPatch
	if err := httputil.DecodeJSON(r, &patch); err != nil {
		logger.Error("habit list update error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	list, err := s.habitListService.Update(ctx, a, id, patch)
	if err != nil {
		writeServiceError(w, logger, "updating habit list", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, list)
}

func (s *Server) DeleteHabitList(w http.ResponseWriter, r *http.Request) {
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
	if err := s.habitListService.Delete(ctx, a, id); err != nil {
		writeServiceError(w, logger, "deleting habit list", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("habit list deleted", slog.String("habit_list_id", id.String()))
}

func (s *Server) GetHabitListItems(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	items, err := s.habitListService.Items(ctx, id)
	if err != nil {
		writeServiceError(w, GetLoggerFromCtx(r.Context()), "getting habit list items", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, items)
}

func (s *Server) GetHabitListPresetHabits(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habits, err := s.habitListService.PresetHabits(ctx, id)
	if err != nil {
		writeServiceError(w, GetLoggerFromCtx(r.Context()), "getting habit list preset habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habits)
}

func (s *Server) GetHabitListCustomHabits(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habits, err := s.habitListService.CustomHabits(ctx, id)
	if err != nil {
		writeServiceError(w, GetLoggerFromCtx(r.Context()), "getting habit list custom habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habits)
}

func (s *Server) AddPresetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	a, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req AddPresetHabitsRequest
	if err := httputil.DecodeJSON(r, &req); err != nil || len(req.PresetHabitIDs) == 0 {
		logger.Error("adding preset habits error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "preset_habit_ids must be a non-empty list of ids", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	added, err := s.habitListService.AddPresetHabits(ctx, a, id, req.PresetHabitIDs)
	if err != nil {
		writeServiceError(w, logger, "adding preset habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AddHabitsResponse{HabitListID: id.String(), Added: added})
	logger.Info("preset habits added", slog.Int("added", len(added)))
}

func (s *Server) AddCustomHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	a, ok := actor(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req AddCustomHabitsRequest
	if err := httputil.DecodeJSON(r, &req); err != nil || len(req.CustomHabitIDs) == 0 {
		logger.Error("adding custom habits error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "custom_habit_ids must be a non-empty list of ids", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	added, err := s.habitListService.AddCustomHabits(ctx, a, id, req.CustomHabitIDs)
	if err != nil {
		writeServiceError(w, logger, "adding custom habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AddHabitsResponse{HabitListID: id.String(), Added: added})
	logger.Info("custom habits added", slog.Int("added", len(added)))
}

func (s *Server) CompletePresetHabit(w http.ResponseWriter, r *http.Request) {
	s.completeHabit(w, r, entity.HabitKindPreset, s.habitListService.CompletePresetHabit)
}

func (s *Server) CompleteCustomHabit(w http.ResponseWriter, r *http.Request) {
	s.completeHabit(w, r, entity.HabitKindCustom, s.habitListService.CompleteCustomHabit)
}

type completeFunc func(ctx context.Context, actor service.Actor, listID, habitID uuid.UUID) (*service.CompletionResult, error)

func (s *Server) completeHabit(w http.ResponseWriter, r *http.Request, kind entity.HabitKind, complete completeFunc) {
	logger := GetLoggerFromCtx(r.Context())
	a, ok := actor(w, r)
	if !ok {
		return
	}
	listID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	habitID, ok := uuidParam(w, r, "habitID")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res, err := complete(ctx, a, listID, habitID)
	if err != nil {
		writeServiceError(w, logger, "completing habit", err)
		return
	}
	s.metrics.ObserveCompletion(string(kind), res.Late, res.LevelsGained)
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	logger.Info("habit completed", slog.String("habit_id", habitID.String()),
		slog.Bool("late", res.Late), slog.Int("xp", res.XPAwarded))
}
