// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package people

import (
	"context"

	httptypes "github.com/rentdesk/people-service/internal/http/types"
	"github.com/rentdesk/people-service/internal/types"
)

type ServiceInterface interface {
	ListPersons(ctx context.Context, page int64, pageSize uint64, search string, active bool) ([]*PersonRow, *httptypes.Pagination, error)
	GetPerson(ctx context.Context, id int64, includeInactive bool) (*PersonDetail, error)
	SearchPersonsByName(ctx context.Context, name string) ([]*types.Person, error)
	UpdatePerson(ctx context.Context, person *types.Person) (*types.Person, error)
	DeactivatePerson(ctx context.Context, id int64) error
}
