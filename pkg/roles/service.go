// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"
	"errors"
	"fmt"

	httptypes "github.com/rentdesk/people-service/internal/http/types"
	"github.com/rentdesk/people-service/internal/logging"
	"github.com/rentdesk/people-service/internal/monitoring"
	"github.com/rentdesk/people-service/internal/storage"
	"github.com/rentdesk/people-service/internal/tracing"
	"github.com/rentdesk/people-service/internal/types"
)

// ErrRoleAlreadyHeld signals a grant attempt for a person whose membership
// is already active. Surfaced as a field-level validation error, not a fault.
var ErrRoleAlreadyHeld = errors.New("person already holds this role")

// MembershipDetail is the single-membership view joined with person data.
type MembershipDetail struct {
	MembershipID int64        `json:"membership_id"`
	Role         string       `json:"role"`
	Active       bool         `json:"active"`
	Person       types.Person `json:"person"`
	FullName     string       `json:"full_name"`
}

var _ ServiceInterface = (*Service)(nil)

// Service implements one role's workflows. Three instances are wired at
// startup, one per role descriptor; the logic is identical across them.
type Service struct {
	memberships storage.RoleStoreInterface
	persons     storage.PersonStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	memberships storage.RoleStoreInterface,
	persons storage.PersonStoreInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		memberships: memberships,
		persons:     persons,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

func (s *Service) Role() types.Role {
	return s.memberships.Role()
}

func (s *Service) List(ctx context.Context, page int64, pageSize uint64, search string) ([]*types.Person, *httptypes.Pagination, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.List")
	defer span.End()

	persons, total, err := s.memberships.ListPaged(ctx, page, pageSize, search)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list %s memberships: %w", s.Role().Name, err)
	}

	return persons, httptypes.NewPagination(page, pageSize, total, search), nil
}

func (s *Service) Get(ctx context.Context, membershipID int64) (*MembershipDetail, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.Get")
	defer span.End()

	membership, err := s.memberships.GetByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}

	person, err := s.persons.GetPersonByID(ctx, membership.PersonID)
	if err != nil {
		return nil, err
	}

	return &MembershipDetail{
		MembershipID: membership.ID,
		Role:         s.Role().Name,
		Active:       membership.Active,
		Person:       *person,
		FullName:     person.FullName(),
	}, nil
}

// CreateWithPerson registers a brand new person and grants them the role in
// one workflow. This is the only path that creates person records.
func (s *Service) CreateWithPerson(ctx context.Context, person *types.Person) (*MembershipDetail, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.CreateWithPerson")
	defer span.End()

	created, err := s.persons.CreatePerson(ctx, person)
	if err != nil {
		return nil, err
	}

	membershipID, err := s.memberships.Grant(ctx, created.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to grant %s role: %w", s.Role().Name, err)
	}

	return &MembershipDetail{
		MembershipID: membershipID,
		Role:         s.Role().Name,
		Active:       true,
		Person:       *created,
		FullName:     created.FullName(),
	}, nil
}

// GrantToPerson grants the role to an existing active person. The membership
// check and the grant are two separate reads and writes, same as they have
// always been; the store's reactivate-or-insert keeps the table duplicate-free.
func (s *Service) GrantToPerson(ctx context.Context, personID int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.GrantToPerson")
	defer span.End()

	if _, err := s.persons.GetPersonByID(ctx, personID); err != nil {
		return 0, err
	}

	membership, estado, err := s.memberships.GetByPersonID(ctx, personID)
	if err != nil {
		return 0, err
	}
	if membership != nil && estado == 1 {
		return 0, ErrRoleAlreadyHeld
	}

	membershipID, err := s.memberships.Grant(ctx, personID)
	if err != nil {
		return 0, fmt.Errorf("failed to grant %s role: %w", s.Role().Name, err)
	}

	return membershipID, nil
}

func (s *Service) Revoke(ctx context.Context, membershipID int64) error {
	ctx, span := s.tracer.Start(ctx, "roles.Service.Revoke")
	defer span.End()

	rows, err := s.memberships.Revoke(ctx, membershipID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// RevokeFromPerson revokes via the person id, for callers that never learned
// the membership id (the role listings drop it).
func (s *Service) RevokeFromPerson(ctx context.Context, personID int64) error {
	ctx, span := s.tracer.Start(ctx, "roles.Service.RevokeFromPerson")
	defer span.End()

	membership, _, err := s.memberships.GetByPersonID(ctx, personID)
	if err != nil {
		return err
	}
	if membership == nil {
		return storage.ErrNotFound
	}

	if _, err := s.memberships.Revoke(ctx, membership.ID); err != nil {
		return err
	}

	return nil
}
