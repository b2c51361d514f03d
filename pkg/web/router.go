// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rentdesk/people-service/internal/db"
	"github.com/rentdesk/people-service/internal/logging"
	"github.com/rentdesk/people-service/internal/monitoring"
	"github.com/rentdesk/people-service/internal/storage"
	"github.com/rentdesk/people-service/internal/tracing"
	"github.com/rentdesk/people-service/internal/types"
	"github.com/rentdesk/people-service/pkg/metrics"
	"github.com/rentdesk/people-service/pkg/people"
	"github.com/rentdesk/people-service/pkg/roles"
	"github.com/rentdesk/people-service/pkg/status"
)

func NewRouter(
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := chi.Chain(
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	personStore := storage.NewPersonStore(dbClient, tracer, monitor, logger)

	roleStores := make([]storage.RoleStoreInterface, 0, len(types.Roles))
	for _, role := range types.Roles {
		roleStores = append(roleStores, storage.NewRoleStore(role, dbClient, tracer, monitor, logger))
	}

	status.NewAPI(tracer, logger).RegisterEndpoints(router)
	metrics.NewAPI(logger).RegisterEndpoints(router)

	peopleSvc := people.NewService(personStore, roleStores, tracer, monitor, logger)
	people.NewAPI(peopleSvc, logger).RegisterEndpoints(router)

	for _, store := range roleStores {
		roleSvc := roles.NewService(store, personStore, tracer, monitor, logger)
		roles.NewAPI(roleSvc, logger).RegisterEndpoints(router)
	}

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
