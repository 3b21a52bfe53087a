package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/pkg/httputil"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{errorvalues.ErrUserNotFound, http.StatusNotFound},
	{errorvalues.ErrCategoryNotFound, http.StatusNotFound},
	{errorvalues.ErrPresetHabitNotFound, http.StatusNotFound},
	{errorvalues.ErrCustomHabitNotFound, http.StatusNotFound},
	{errorvalues.ErrHabitListNotFound, http.StatusNotFound},
	{errorvalues.ErrHabitNotInList, http.StatusNotFound},
	{errorvalues.ErrHabitAlreadyCompleted, http.StatusConflict},
	{errorvalues.ErrUserExists, http.StatusConflict},
	{errorvalues.ErrCategoryExists, http.StatusConflict},
	{errorvalues.ErrWrongOwner, http.StatusForbidden},
	{errorvalues.ErrAdminRequired, http.StatusForbidden},
	{errorvalues.ErrWrongCredentials, http.StatusUnauthorized},
	{errorvalues.ErrInvalidToken, http.StatusUnauthorized},
	{errorvalues.ErrValidation, http.StatusBadRequest},
	{errorvalues.ErrEmptyPatch, http.StatusBadRequest},
}

// StatusFor maps a service error to its HTTP status. Unknown errors are 500.
func StatusFor(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with its status. Internal failures
// get a generic message so storage details never reach the client.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	status := StatusFor(err)
	switch {
	case status == http.StatusInternalServerError:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, status, "internal error during "+op, nil)
	case status == http.StatusBadRequest:
		logger.Error(op+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, status, "invalid request", err)
	default:
		logger.Error(op+" error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, status, sentinelMessage(err), nil)
	}
}

func sentinelMessage(err error) string {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.err.Error()
		}
	}
	return err.Error()
}
