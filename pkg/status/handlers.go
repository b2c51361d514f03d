// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/rentdesk/people-service/internal/http/types"
	"github.com/rentdesk/people-service/internal/logging"
	"github.com/rentdesk/people-service/internal/tracing"
	"github.com/rentdesk/people-service/internal/version"
)

type API struct {
	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.tracer = tracer
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	a.writeJSON(w, http.StatusOK, &httptypes.Response{
		Message: "ok",
		Status:  http.StatusOK,
	})
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.version")
	defer span.End()

	a.writeJSON(w, http.StatusOK, &httptypes.Response{
		Data: map[string]string{
			"version": version.Version,
		},
		Status: http.StatusOK,
	})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, resp *httptypes.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
