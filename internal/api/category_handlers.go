package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/limbo/levelup/internal/service"
	"github.com/limbo/levelup/pkg/httputil"
)

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	categories, err := s.categoryService.List(ctx)
	if err != nil {
		writeServiceError(w, GetLoggerFromCtx(r.Context()), "listing categories", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, categories)
}

func (s *Server) GetCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	category, err := s.categoryService.Get(ctx, chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, GetLoggerFromCtx(r.Context()), "getting category", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, category)
}

func (s *Server) GetCategoryHabits(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	habits, err := s.categoryService.PresetHabits(ctx, chi.URLParam(r, "name"))
	if err != nil {
		writeServiceError(w, GetLoggerFromCtx(r.Context()), "getting category habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habits)
}

func (s *Server) CreateCategory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	a, ok := actor(w, r)
	if !ok {
		return
	}
	var req CreateCategoryRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create category error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	category, err := s.categoryService.Create(ctx, a, service.CreateCategoryRequest{Name: req.Name})
	if err != nil {
		writeServiceError(w, logger, "creating category", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, category)
	logger.Info("category created")
}

func (s *Server) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	a, ok := actor(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.categoryService.Delete(ctx, a, chi.URLParam(r, "name")); err != nil {
		writeServiceError(w, logger, "deleting category", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("category deleted")
}
