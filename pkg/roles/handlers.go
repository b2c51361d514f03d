// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"encoding/json"
	"errors"
	"fmt"
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

// base returns the mount point derived from the role name, e.g. /api/v0/owners.
func (a *API) base() string {
	return fmt.Sprintf("/api/v0/%ss", a.service.Role().Name)
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	base := a.base()

	mux.Get(base, a.list)
	mux.Post(base, a.create)
	mux.Post(base+"/grant", a.grant)
	mux.Get(base+"/{id:[0-9]+}", a.detail)
	mux.Delete(base+"/{id:[0-9]+}", a.revoke)
	mux.Delete(base+"/by-person/{personId:[0-9]+}", a.revokeByPerson)
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

	persons, pagination, err := a.service.List(r.Context(), page, uint64(size), q.Get("search"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, &httptypes.Response{
		Data:   persons,
		Meta:   pagination,
		Status: http.StatusOK,
	})
}

func (a *API) detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.writeJSON(w, http.StatusBadRequest, &httptypes.Response{
			Message: "invalid membership id",
			Status:  http.StatusBadRequest,
		})
		return
	}

	detail, err := a.service.Get(r.Context(), id)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, &httptypes.Response{
		Data:   detail,
		Status: http.StatusOK,
	})
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
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

	detail, err := a.service.CreateWithPerson(r.Context(), payload.ToPerson())
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, &httptypes.Response{
		Data:   detail,
		Status: http.StatusCreated,
	})
}

func (a *API) grant(w http.ResponseWriter, r *http.Request) {
	var payload httptypes.GrantPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		a.logger.Errorf("failed to decode grant payload: %v", err)
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

	membershipID, err := a.service.GrantToPerson(r.Context(), payload.PersonID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, &httptypes.Response{
		Data: map[string]int64{
			"membership_id": membershipID,
			"person_id":     payload.PersonID,
		},
		Status: http.StatusCreated,
	})
}

func (a *API) revoke(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		a.writeJSON(w, http.StatusBadRequest, &httptypes.Response{
			Message: "invalid membership id",
			Status:  http.StatusBadRequest,
		})
		return
	}

	if err := a.service.Revoke(r.Context(), id); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, &httptypes.Response{
		Message: fmt.Sprintf("%s membership revoked", a.service.Role().Name),
		Status:  http.StatusOK,
	})
}

func (a *API) revokeByPerson(w http.ResponseWriter, r *http.Request) {
	personID, err := strconv.ParseInt(chi.URLParam(r, "personId"), 10, 64)
	if err != nil {
		a.writeJSON(w, http.StatusBadRequest, &httptypes.Response{
			Message: "invalid person id",
			Status:  http.StatusBadRequest,
		})
		return
	}

	if err := a.service.RevokeFromPerson(r.Context(), personID); err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, &httptypes.Response{
		Message: fmt.Sprintf("%s membership revoked", a.service.Role().Name),
		Status:  http.StatusOK,
	})
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrRoleAlreadyHeld):
		a.writeJSON(w, http.StatusConflict, &httptypes.Response{
			Message: err.Error(),
			Status:  http.StatusConflict,
		})
	case errors.Is(err, storage.ErrNotFound):
		a.writeJSON(w, http.StatusNotFound, &httptypes.Response{
			Message: "resource not found",
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
		a.logger.Errorf("%s API error: %v", a.service.Role().Name, err)
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
