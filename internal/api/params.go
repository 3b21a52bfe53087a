package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/limbo/levelup/internal/service"
	"github.com/limbo/levelup/pkg/httputil"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// uuidParam parses a path parameter and answers 400 itself when it is not a uuid.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error("invalid " + name + " in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid "+name+" in path value", nil)
		return uuid.Nil, false
	}
	return id, true
}

// actor answers 401 itself when the request carries no authenticated caller.
func actor(w http.ResponseWriter, r *http.Request) (service.Actor, bool) {
	a, err := GetActorFromContext(r)
	if err != nil {
		GetLoggerFromCtx(r.Context()).Error("unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return service.Actor{}, false
	}
	return a, true
}

func pagination(r *http.Request) (page int, opts service.PaginationOpts) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}
	page, err = strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return page, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
