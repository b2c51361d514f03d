// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package people

import (
	"context"
	"fmt"
	"strings"

	httptypes "github.com/rentdesk/people-service/internal/http/types"
	"github.com/rentdesk/people-service/internal/logging"
	"github.com/rentdesk/people-service/internal/monitoring"
	"github.com/rentdesk/people-service/internal/storage"
	"github.com/rentdesk/people-service/internal/tracing"
	"github.com/rentdesk/people-service/internal/types"
)

// NoRoleAssigned is rendered for persons holding no active role. The string
// is part of the listing contract.
const NoRoleAssigned = "no role assigned"

// PersonRow is one row of the paged person listing.
type PersonRow struct {
	types.PersonWithRoles
	FullName   string `json:"full_name"`
	RolesLabel string `json:"roles_label"`
}

// PersonDetail is the single-person view with aggregated roles.
type PersonDetail struct {
	types.Person
	FullName   string   `json:"full_name"`
	Roles      []string `json:"roles"`
	RolesLabel string   `json:"roles_label"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	persons storage.PersonStoreInterface
	roles   []storage.RoleStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	persons storage.PersonStoreInterface,
	roles []storage.RoleStoreInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		persons: persons,
		roles:   roles,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) ListPersons(ctx context.Context, page int64, pageSize uint64, search string, active bool) ([]*PersonRow, *httptypes.Pagination, error) {
	ctx, span := s.tracer.Start(ctx, "people.Service.ListPersons")
	defer span.End()

	persons, total, err := s.persons.ListPersonsPaged(ctx, page, pageSize, search, active)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list persons: %w", err)
	}

	rows := make([]*PersonRow, len(persons))
	for i, p := range persons {
		rows[i] = &PersonRow{
			PersonWithRoles: *p,
			FullName:        p.FullName(),
			RolesLabel:      rolesLabel(roleFlags(p)),
		}
	}

	return rows, httptypes.NewPagination(page, pageSize, total, search), nil
}

// GetPerson returns the person with roles aggregated across the three
// membership stores. Inactive persons are only visible when includeInactive
// is set; that is the recovery workflow's read path.
func (s *Service) GetPerson(ctx context.Context, id int64, includeInactive bool) (*PersonDetail, error) {
	ctx, span := s.tracer.Start(ctx, "people.Service.GetPerson")
	defer span.End()

	var person *types.Person
	var err error
	if includeInactive {
		person, err = s.persons.GetAnyPersonByID(ctx, id)
	} else {
		person, err = s.persons.GetPersonByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	held := make(map[string]bool, len(s.roles))
	for _, store := range s.roles {
		membership, estado, err := store.GetByPersonID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s membership: %w", store.Role().Name, err)
		}
		held[store.Role().Name] = membership != nil && estado == 1
	}

	roles := heldLabels(held)

	return &PersonDetail{
		Person:     *person,
		FullName:   person.FullName(),
		Roles:      roles,
		RolesLabel: joinLabels(roles),
	}, nil
}

func (s *Service) SearchPersonsByName(ctx context.Context, name string) ([]*types.Person, error) {
	ctx, span := s.tracer.Start(ctx, "people.Service.SearchPersonsByName")
	defer span.End()

	return s.persons.SearchPersonsByName(ctx, name)
}

// UpdatePerson rewrites the person's fields. The write always reactivates the
// row, so updating a soft-deleted person doubles as recovery.
func (s *Service) UpdatePerson(ctx context.Context, person *types.Person) (*types.Person, error) {
	ctx, span := s.tracer.Start(ctx, "people.Service.UpdatePerson")
	defer span.End()

	if err := s.persons.UpdatePerson(ctx, person); err != nil {
		return nil, err
	}

	updated, err := s.persons.GetPersonByID(ctx, person.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated person: %w", err)
	}

	return updated, nil
}

// DeactivatePerson soft-deletes the person. Memberships are deliberately not
// touched: a deactivated person keeps their role rows as they are.
func (s *Service) DeactivatePerson(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "people.Service.DeactivatePerson")
	defer span.End()

	rows, err := s.persons.DeactivatePerson(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func roleFlags(p *types.PersonWithRoles) map[string]bool {
	return map[string]bool{
		types.RoleOwner.Name:    p.IsOwner,
		types.RoleTenant.Name:   p.IsTenant,
		types.RoleEmployee.Name: p.IsEmployee,
	}
}

// heldLabels keeps the fixed Owner, Tenant, Employee order regardless of how
// the flags were gathered.
func heldLabels(held map[string]bool) []string {
	var labels []string
	for _, role := range types.Roles {
		if held[role.Name] {
			labels = append(labels, role.Label)
		}
	}
	return labels
}

func joinLabels(labels []string) string {
	if len(labels) == 0 {
		return NoRoleAssigned
	}
	return strings.Join(labels, ", ")
}

func rolesLabel(held map[string]bool) string {
	return joinLabels(heldLabels(held))
}
