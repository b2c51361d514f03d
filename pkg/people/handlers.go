// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package people

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/rentdesk/people-service/internal/http/types"
	"github.com/rentdesk/people-service/internal/logging"
	"github.com/rentdesk/people-service/internal/storage"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: httptypes.NewValidator(),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/people", a.list)
	mux.Get("/api/v0/people/search", a.search)
	mux.Get("/api/v0/people/{id:[0-9]+}", a.detail)
	mux.Put("/api/v0/people/{id:[0-9]+}", a.update)
	mux.Delete("/api/v0/people/{id:[0-9]+}", a.remove)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.ParseInt(q.Get("size"), 10, 64)
	if size <= 0 {
		size = 10
	}

	// active defaults to true; the inactive listing is the recovery view
	active := q.Get("active") != "false"

	rows, pagination, err := a.service.ListPersons(r.Context(), page, uint64(size), q.Get("search"), active)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, &httptypes.Response{
		Data:   rows,
		Meta:   pagination,
		Status: http.StatusOK,
	})
}

func (a *API) search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		a.writeJSON(w, http.StatusBadRequest, &httptypes.Response{
			Message: "name query parameter is required",
			Status:  http.StatusBadRequest,
		})
		return
	}

	persons, err := a.service.SearchPersonsByName(r.Context(), name)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, &httptypes.Response{
		Data:   persons,
		Status: http.StatusOK,
	})
}

func (a *API) detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.writeJSON(w, http.StatusBadRequest, &httptypes.Response{
			Message: "invalid person id",
			Status:  http.StatusBadRequest,
		})
		return
	}

	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	detail, err := a.service.GetPerson(r.Context(), id, includeInactive)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, &httptypes.Response{
		Data:   detail,
		Status: http.StatusOK,
	})
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.writeJSON(w, http.StatusBadRequest, &httptypes.Response{
			Message: "invalid person id",
			Status:  http.StatusBadRequest,
		})
		return
	}

	var payload httptypes.PersonPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		a.logger.Errorf("failed to decode person payload: %v", err)
		a.writeJSON(w, http.StatusBadRequest, &httptypes.Response{
			Message: "invalid request body",
			Status:  http.StatusBadRequest,
		})
		return
	}

	if err := a.validate.Struct(&payload); err != nil {
		a.writeJSON(w, http.StatusBadRequest, &httptypes.Response{
			Message: err.Error(),
			Status:  http.StatusBadRequest,
		})
		return
	}

	person := payload.ToPerson()
	person.ID = id

	updated, err := a.service.UpdatePerson(r.Context(), person)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, &httptypes.Response{
		Data:   updated,
		Status: http.StatusOK,
	})
}

func (a *API) remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.writeJSON(w, http.StatusBadRequest, &httptypes.Response{
			Message: "invalid person id",
			Status:  http.StatusBadRequest,
		})
		return
	}

	if err := a.service.DeactivatePerson(r.Context(), id); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, &httptypes.Response{
		Message: "person deactivated",
		Status:  http.StatusOK,
	})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		a.writeJSON(w, http.StatusNotFound, &httptypes.Response{
			Message: "person not found",
			Status:  http.StatusNotFound,
		})
	case errors.Is(err, storage.ErrDuplicateKey):
		a.writeJSON(w, http.StatusConflict, &httptypes.Response{
			Message: err.Error(),
			Status:  http.StatusConflict,
		})
	case errors.Is(err, storage.ErrNotSupported):
		a.writeJSON(w, http.StatusMethodNotAllowed, &httptypes.Response{
			Message: err.Error(),
			Status:  http.StatusMethodNotAllowed,
		})
	default:
		a.logger.Errorf("people API error: %v", err)
		a.writeJSON(w, http.StatusInternalServerError, &httptypes.Response{
			Message: "internal server error",
			Status:  http.StatusInternalServerError,
		})
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, resp *httptypes.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
