// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

// SecurityLogger emits the audit-grade lifecycle events, each tagged with a
// unique event id so downstream collectors can deduplicate.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.event("system_startup")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("system_shutdown")
}

func (s *SecurityLogger) event(name string) {
	s.l.Info("security event",
		zap.String("event", name),
		zap.String("event_id", uuid.NewString()),
	)
}
