// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/rentdesk/people-service/internal/db"
	"github.com/rentdesk/people-service/internal/logging"
	"github.com/rentdesk/people-service/internal/monitoring"
	"github.com/rentdesk/people-service/internal/tracing"
	"github.com/rentdesk/people-service/internal/types"
)

var _ RoleStoreInterface = (*RoleStore)(nil)

// RoleStore is the single membership store implementation. The three role
// tables are structurally identical, so one store parameterized by the role
// descriptor serves owners, tenants and employees alike.
type RoleStore struct {
	role types.Role

	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewRoleStore(role types.Role, c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *RoleStore {
	s := new(RoleStore)

	s.role = role
	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *RoleStore) Role() types.Role {
	return s.role
}

// Grant establishes the role for a person. If a membership row already
// exists, in whatever state, it is reactivated and its id returned; only a
// person with no prior row gets a fresh insert. A person therefore never
// accumulates more than one row per role table, and revoking then granting
// again restores the original membership id.
//
// The lookup and the write are two separate statements, so concurrent grants
// for the same person can race. The reactivation path converges on the same
// row either way; the tables are assumed to see single-user admin traffic.
func (s *RoleStore) Grant(ctx context.Context, personID int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RoleStore.Grant")
	defer span.End()

	existing, _, err := s.GetByPersonID(ctx, personID)
	if err != nil {
		return 0, err
	}

	if existing != nil {
		_, err := s.db.Statement(ctx).
			Update(s.role.Table).
			Set("estado", 1).
			Where(sq.Eq{s.role.IDColumn: existing.ID}).
			ExecContext(ctx)

		if err != nil {
			return 0, fmt.Errorf("failed to reactivate %s membership: %w", s.role.Name, err)
		}

		return existing.ID, nil
	}

	var id int64
	err = s.db.Statement(ctx).
		Insert(s.role.Table).
		Columns("id_persona", "estado").
		Values(personID, 1).
		Suffix("RETURNING " + s.role.IDColumn).
		QueryRowContext(ctx).
		Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to insert %s membership: %w", s.role.Name, err)
	}

	return id, nil
}

// Revoke soft-deletes a membership. A zero affected-row count means nothing
// changed; that is reported, not treated as an error.
func (s *RoleStore) Revoke(ctx context.Context, membershipID int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RoleStore.Revoke")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update(s.role.Table).
		Set("estado", 0).
		Where(sq.Eq{s.role.IDColumn: membershipID}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to revoke %s membership: %w", s.role.Name, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}

// GetByID returns a membership in any state, or ErrNotFound.
func (s *RoleStore) GetByID(ctx context.Context, membershipID int64) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RoleStore.GetByID")
	defer span.End()

	var m types.Membership
	var estado int16

	err := s.db.Statement(ctx).
		Select(s.role.IDColumn, "id_persona", "estado").
		From(s.role.Table).
		Where(sq.Eq{s.role.IDColumn: membershipID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.PersonID, &estado)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s membership: %w", s.role.Name, err)
	}

	m.Active = estado == 1
	return &m, nil
}

// GetByPersonID returns the membership row for a person together with its
// estado, including revoked rows. (nil, 0) means the person never held the
// role; a non-nil membership with estado 0 means it was revoked.
func (s *RoleStore) GetByPersonID(ctx context.Context, personID int64) (*types.Membership, int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RoleStore.GetByPersonID")
	defer span.End()

	var m types.Membership
	var estado int16

	err := s.db.Statement(ctx).
		Select(s.role.IDColumn, "id_persona", "estado").
		From(s.role.Table).
		Where(sq.Eq{"id_persona": personID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.PersonID, &estado)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to get %s membership by person: %w", s.role.Name, err)
	}

	m.Active = estado == 1
	return &m, int(estado), nil
}

// ListPaged returns one page of persons holding the role actively, plus the
// total count for the filter. The result deliberately carries person fields
// only; the membership's own id and estado are not part of this listing.
func (s *RoleStore) ListPaged(ctx context.Context, page int64, pageSize uint64, search string) ([]*types.Person, int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RoleStore.ListPaged")
	defer span.End()

	filter := sq.And{sq.Eq{"r.estado": 1}}
	if search != "" {
		pattern := "%" + search + "%"
		filter = append(filter, sq.Or{
			sq.ILike{"p.dni": pattern},
			sq.ILike{"p.apellido": pattern},
			sq.ILike{"p.nombre": pattern},
		})
	}

	from := s.role.Table + " r"

	var total int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From(from).
		Join("personas p ON p.id_persona = r.id_persona").
		Where(filter).
		QueryRowContext(ctx).
		Scan(&total)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to count %s memberships: %w", s.role.Name, err)
	}

	rows, err := s.db.Statement(ctx).
		Select("p.id_persona", "p.dni", "p.apellido", "p.nombre", "p.telefono", "p.email", "p.estado").
		From(from).
		Join("personas p ON p.id_persona = r.id_persona").
		Where(filter).
		OrderBy("p.apellido", "p.nombre").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize)).
		QueryContext(ctx)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s memberships: %w", s.role.Name, err)
	}
	defer rows.Close()

	var persons []*types.Person
	for rows.Next() {
		var p types.Person
		var estado int16
		if err := rows.Scan(&p.ID, &p.NationalID, &p.LastName, &p.FirstName, &p.Phone, &p.Email, &estado); err != nil {
			return nil, 0, fmt.Errorf("failed to scan person row: %w", err)
		}
		p.Active = estado == 1
		persons = append(persons, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return persons, total, nil
}

// Update is intentionally unsupported. A membership only links a person to a
// role, and repointing that link is never a legitimate operation.
func (s *RoleStore) Update(ctx context.Context, m *types.Membership) error {
	_, span := s.tracer.Start(ctx, "storage.RoleStore.Update")
	defer span.End()

	return fmt.Errorf("%s membership update: %w", s.role.Name, ErrNotSupported)
}

// ListAll is intentionally unsupported. A bare membership list without person
// data is useless; use ListPaged.
func (s *RoleStore) ListAll(ctx context.Context) ([]*types.Membership, error) {
	_, span := s.tracer.Start(ctx, "storage.RoleStore.ListAll")
	defer span.End()

	return nil, fmt.Errorf("%s membership list: %w", s.role.Name, ErrNotSupported)
}
