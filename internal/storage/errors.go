// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicateKey = errors.New("duplicate key violation")
	ErrNotSupported = errors.New("operation not supported")

	// Field-level duplicates, both unwrap to ErrDuplicateKey so callers can
	// match the class or the exact field.
	ErrDuplicateNationalID = fmt.Errorf("national id already registered: %w", ErrDuplicateKey)
	ErrDuplicateEmail      = fmt.Errorf("email already registered: %w", ErrDuplicateKey)
)
