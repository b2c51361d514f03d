// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package types

import "testing"

func TestNewPagination(t *testing.T) {
	testCases := []struct {
		name         string
		page         int64
		pageSize     uint64
		total        int64
		expectedPage int64
		totalPages   int64
		hasPrevious  bool
		hasNext      bool
	}{
		{
			name:         "single page",
			page:         1,
			pageSize:     10,
			total:        7,
			expectedPage: 1,
			totalPages:   1,
		},
		{
			name:         "partial last page rounds up",
			page:         1,
			pageSize:     10,
			total:        25,
			expectedPage: 1,
			totalPages:   3,
			hasNext:      true,
		},
		{
			name:         "middle page",
			page:         2,
			pageSize:     10,
			total:        25,
			expectedPage: 2,
			totalPages:   3,
			hasPrevious:  true,
			hasNext:      true,
		},
		{
			name:         "last page",
			page:         3,
			pageSize:     10,
			total:        25,
			expectedPage: 3,
			totalPages:   3,
			hasPrevious:  true,
		},
		{
			name:         "empty result set",
			page:         1,
			pageSize:     10,
			total:        0,
			expectedPage: 1,
			totalPages:   0,
		},
		{
			name:         "non-positive page is clamped",
			page:         0,
			pageSize:     10,
			total:        5,
			expectedPage: 1,
			totalPages:   1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.pageSize, tc.total, "")

			if p.Page != tc.expectedPage {
				t.Errorf("expected page %d, got %d", tc.expectedPage, p.Page)
			}
			if p.TotalPages != tc.totalPages {
				t.Errorf("expected %d total pages, got %d", tc.totalPages, p.TotalPages)
			}
			if p.HasPrevious != tc.hasPrevious {
				t.Errorf("expected has_previous %v, got %v", tc.hasPrevious, p.HasPrevious)
			}
			if p.HasNext != tc.hasNext {
				t.Errorf("expected has_next %v, got %v", tc.hasNext, p.HasNext)
			}
		})
	}
}

func TestValidatorNameRule(t *testing.T) {
	v := NewValidator()

	testCases := []struct {
		name        string
		payload     PersonPayload
		expectedErr bool
	}{
		{
			name: "valid payload",
			payload: PersonPayload{
				NationalID: "30111222",
				LastName:   "Garcia",
				FirstName:  "Maria Ana",
				Phone:      "555-0101",
				Email:      "maria@example.com",
			},
		},
		{
			name: "digits in name",
			payload: PersonPayload{
				NationalID: "30111222",
				LastName:   "Garc1a",
				FirstName:  "Maria",
				Phone:      "555-0101",
				Email:      "maria@example.com",
			},
			expectedErr: true,
		},
		{
			name: "dni too short",
			payload: PersonPayload{
				NationalID: "301",
				LastName:   "Garcia",
				FirstName:  "Maria",
				Phone:      "555-0101",
				Email:      "maria@example.com",
			},
			expectedErr: true,
		},
		{
			name: "invalid email",
			payload: PersonPayload{
				NationalID: "30111222",
				LastName:   "Garcia",
				FirstName:  "Maria",
				Phone:      "555-0101",
				Email:      "not-an-email",
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(&tc.payload)

			if tc.expectedErr && err == nil {
				t.Error("expected validation error but got none")
			}
			if !tc.expectedErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
