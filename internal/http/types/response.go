// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package types

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Meta    *Pagination `json:"_meta,omitempty"`
	Message string      `json:"message,omitempty"`
	Status  int         `json:"status"`
}

// Pagination carries the listing metadata the views render pagers from.
type Pagination struct {
	Page        int64  `json:"page"`
	PageSize    uint64 `json:"page_size"`
	Total       int64  `json:"total"`
	TotalPages  int64  `json:"total_pages"`
	HasPrevious bool   `json:"has_previous"`
	HasNext     bool   `json:"has_next"`
	Search      string `json:"search,omitempty"`
}

// NewPagination computes the derived pager fields. Total is independent of
// the page requested.
func NewPagination(page int64, pageSize uint64, total int64, search string) *Pagination {
	if page <= 0 {
		page = 1
	}

	totalPages := int64(0)
	if pageSize > 0 {
		totalPages = (total + int64(pageSize) - 1) / int64(pageSize)
	}

	return &Pagination{
		Page:        page,
		PageSize:    pageSize,
		Total:       total,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
		Search:      search,
	}
}
