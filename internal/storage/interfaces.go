// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/rentdesk/people-service/internal/types"
)

type PersonStoreInterface interface {
	CreatePerson(ctx context.Context, p *types.Person) (*types.Person, error)
	GetPersonByID(ctx context.Context, id int64) (*types.Person, error)
	GetAnyPersonByID(ctx context.Context, id int64) (*types.Person, error)
	UpdatePerson(ctx context.Context, p *types.Person) error
	DeactivatePerson(ctx context.Context, id int64) (int64, error)
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SearchPersonsByName(ctx context.Context, name string) ([]*types.Person, error)
	ListPersonsPaged(ctx context.Context, page int64, pageSize uint64, search string, active bool) ([]*types.PersonWithRoles, int64, error)
}

type RoleStoreInterface interface {
	Role() types.Role
	Grant(ctx context.Context, personID int64) (int64, error)
	Revoke(ctx context.Context, membershipID int64) (int64, error)
	GetByID(ctx context.Context, membershipID int64) (*types.Membership, error)
	GetByPersonID(ctx context.Context, personID int64) (*types.Membership, int, error)
	ListPaged(ctx context.Context, page int64, pageSize uint64, search string) ([]*types.Person, int64, error)
	Update(ctx context.Context, m *types.Membership) error
	ListAll(ctx context.Context) ([]*types.Membership, error)
}
