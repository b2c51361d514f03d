// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"

	httptypes "github.com/rentdesk/people-service/internal/http/types"
	"github.com/rentdesk/people-service/internal/types"
)

type ServiceInterface interface {
	Role() types.Role
	List(ctx context.Context, page int64, pageSize uint64, search string) ([]*types.Person, *httptypes.Pagination, error)
	Get(ctx context.Context, membershipID int64) (*MembershipDetail, error)
	CreateWithPerson(ctx context.Context, person *types.Person) (*MembershipDetail, error)
	GrantToPerson(ctx context.Context, personID int64) (int64, error)
	Revoke(ctx context.Context, membershipID int64) error
	RevokeFromPerson(ctx context.Context, personID int64) error
}
