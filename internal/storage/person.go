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

var _ PersonStoreInterface = (*PersonStore)(nil)

type PersonStore struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewPersonStore(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *PersonStore {
	s := new(PersonStore)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// CreatePerson inserts a new active person. National id and email uniqueness
// is probed here rather than enforced by the schema, so duplicates surface as
// field-level errors instead of constraint violations.
func (s *PersonStore) CreatePerson(ctx context.Context, p *types.Person) (*types.Person, error) {
	ctx, span := s.tracer.Start(ctx, "storage.PersonStore.CreatePerson")
	defer span.End()

	exists, err := s.ExistsByNationalID(ctx, p.NationalID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateNationalID
	}

	exists, err = s.ExistsByEmail(ctx, p.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	var id int64
	err = s.db.Statement(ctx).
		Insert("personas").
		Columns("dni", "apellido", "nombre", "telefono", "email", "estado").
		Values(p.NationalID, p.LastName, p.FirstName, p.Phone, p.Email, 1).
		Suffix("RETURNING id_persona").
		QueryRowContext(ctx).
		Scan(&id)

	if err != nil {
		return nil, fmt.Errorf("failed to insert person: %w", err)
	}

	created := *p
	created.ID = id
	created.Active = true

	return &created, nil
}

// GetPersonByID returns an active person or ErrNotFound.
func (s *PersonStore) GetPersonByID(ctx context.Context, id int64) (*types.Person, error) {
	ctx, span := s.tracer.Start(ctx, "storage.PersonStore.GetPersonByID")
	defer span.End()

	return s.getPerson(ctx, sq.Eq{"id_persona": id, "estado": 1})
}

// GetAnyPersonByID returns a person regardless of estado. Only the recovery
// workflow reads soft-deleted persons.
func (s *PersonStore) GetAnyPersonByID(ctx context.Context, id int64) (*types.Person, error) {
	ctx, span := s.tracer.Start(ctx, "storage.PersonStore.GetAnyPersonByID")
	defer span.End()

	return s.getPerson(ctx, sq.Eq{"id_persona": id})
}

func (s *PersonStore) getPerson(ctx context.Context, where sq.Eq) (*types.Person, error) {
	var p types.Person
	var estado int16

	err := s.db.Statement(ctx).
		Select("id_persona", "dni", "apellido", "nombre", "telefono", "email", "estado").
		From("personas").
		Where(where).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.NationalID, &p.LastName, &p.FirstName, &p.Phone, &p.Email, &estado)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	p.Active = estado == 1
	return &p, nil
}

// UpdatePerson rewrites all person fields and unconditionally flips estado
// back to 1. Editing a soft-deleted person is how it gets recovered.
func (s *PersonStore) UpdatePerson(ctx context.Context, p *types.Person) error {
	ctx, span := s.tracer.Start(ctx, "storage.PersonStore.UpdatePerson")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("personas").
		Set("dni", p.NationalID).
		Set("apellido", p.LastName).
		Set("nombre", p.FirstName).
		Set("telefono", p.Phone).
		Set("email", p.Email).
		Set("estado", 1).
		Where(sq.Eq{"id_persona": p.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// DeactivatePerson soft-deletes a person. Role memberships are left as they
// are, a deactivated person keeps whatever roles were active.
func (s *PersonStore) DeactivatePerson(ctx context.Context, id int64) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.PersonStore.DeactivatePerson")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("personas").
		Set("estado", 0).
		Where(sq.Eq{"id_persona": id}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to deactivate person: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}

// ExistsByNationalID probes for a national id, ignoring estado.
func (s *PersonStore) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.PersonStore.ExistsByNationalID")
	defer span.End()

	return s.exists(ctx, sq.Eq{"dni": nationalID})
}

// ExistsByEmail probes for an email, ignoring estado.
func (s *PersonStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.PersonStore.ExistsByEmail")
	defer span.End()

	return s.exists(ctx, sq.Eq{"email": email})
}

func (s *PersonStore) exists(ctx context.Context, where sq.Eq) (bool, error) {
	var count int64

	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("personas").
		Where(where).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to check person existence: %w", err)
	}

	return count > 0, nil
}

// SearchPersonsByName returns active persons whose first or last name
// contains the given text, case-insensitively.
func (s *PersonStore) SearchPersonsByName(ctx context.Context, name string) ([]*types.Person, error) {
	ctx, span := s.tracer.Start(ctx, "storage.PersonStore.SearchPersonsByName")
	defer span.End()

	pattern := "%" + name + "%"

	rows, err := s.db.Statement(ctx).
		Select("id_persona", "dni", "apellido", "nombre", "telefono", "email", "estado").
		From("personas").
		Where(sq.And{
			sq.Or{
				sq.ILike{"nombre": pattern},
				sq.ILike{"apellido": pattern},
			},
			sq.Eq{"estado": 1},
		}).
		OrderBy("apellido", "nombre").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to search persons: %w", err)
	}
	defer rows.Close()

	var persons []*types.Person
	for rows.Next() {
		var p types.Person
		var estado int16
		if err := rows.Scan(&p.ID, &p.NationalID, &p.LastName, &p.FirstName, &p.Phone, &p.Email, &estado); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		p.Active = estado == 1
		persons = append(persons, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return persons, nil
}

// ListPersonsPaged returns one page of persons with computed role flags plus
// the total row count for the filter. Count and page are two separate
// queries, matching how the listings have always worked.
func (s *PersonStore) ListPersonsPaged(ctx context.Context, page int64, pageSize uint64, search string, active bool) ([]*types.PersonWithRoles, int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.PersonStore.ListPersonsPaged")
	defer span.End()

	estado := 0
	if active {
		estado = 1
	}

	filter := sq.And{sq.Eq{"p.estado": estado}}
	if search != "" {
		pattern := "%" + search + "%"
		filter = append(filter, sq.Or{
			sq.ILike{"p.dni": pattern},
			sq.ILike{"p.apellido": pattern},
			sq.ILike{"p.nombre": pattern},
		})
	}

	var total int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("personas p").
		LeftJoin("propietarios prop ON p.id_persona = prop.id_persona").
		LeftJoin("inquilinos inq ON p.id_persona = inq.id_persona").
		LeftJoin("empleados emp ON p.id_persona = emp.id_persona").
		Where(filter).
		QueryRowContext(ctx).
		Scan(&total)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to count persons: %w", err)
	}

	rows, err := s.db.Statement(ctx).
		Select(
			"p.id_persona", "p.dni", "p.apellido", "p.nombre", "p.telefono", "p.email", "p.estado",
			"CASE WHEN prop.id_propietario IS NOT NULL AND prop.estado = 1 THEN 1 ELSE 0 END AS es_propietario",
			"CASE WHEN inq.id_inquilino IS NOT NULL AND inq.estado = 1 THEN 1 ELSE 0 END AS es_inquilino",
			"CASE WHEN emp.id_empleado IS NOT NULL AND emp.estado = 1 THEN 1 ELSE 0 END AS es_empleado",
		).
		From("personas p").
		LeftJoin("propietarios prop ON p.id_persona = prop.id_persona").
		LeftJoin("inquilinos inq ON p.id_persona = inq.id_persona").
		LeftJoin("empleados emp ON p.id_persona = emp.id_persona").
		Where(filter).
		OrderBy("p.apellido", "p.nombre").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize)).
		QueryContext(ctx)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list persons: %w", err)
	}
	defer rows.Close()

	var persons []*types.PersonWithRoles
	for rows.Next() {
		var p types.PersonWithRoles
		var estado, owner, tenant, employee int16
		if err := rows.Scan(&p.ID, &p.NationalID, &p.LastName, &p.FirstName, &p.Phone, &p.Email, &estado, &owner, &tenant, &employee); err != nil {
			return nil, 0, fmt.Errorf("failed to scan person row: %w", err)
		}
		p.Active = estado == 1
		p.IsOwner = owner == 1
		p.IsTenant = tenant == 1
		p.IsEmployee = employee == 1
		persons = append(persons, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return persons, total, nil
}
