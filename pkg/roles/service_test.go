// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/rentdesk/people-service/internal/storage"
	"github.com/rentdesk/people-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_roles.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_storage.go -source=../../internal/storage/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestPerson(id int64) types.Person {
	return types.Person{
		ID:         id,
		NationalID: "30111222",
		LastName:   "Garcia",
		FirstName:  "Ana",
		Phone:      "555-0101",
		Email:      "ana.garcia@example.com",
		Active:     true,
	}
}

type serviceMocks struct {
	memberships *MockRoleStoreInterface
	persons     *MockPersonStoreInterface
	tracer      *MockTracingInterface
	monitor     *MockMonitorInterface
	logger      *MockLoggerInterface
}

func setupServiceTest(t *testing.T, role types.Role) (*Service, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &serviceMocks{
		memberships: NewMockRoleStoreInterface(ctrl),
		persons:     NewMockPersonStoreInterface(ctrl),
		tracer:      NewMockTracingInterface(ctrl),
		monitor:     NewMockMonitorInterface(ctrl),
		logger:      NewMockLoggerInterface(ctrl),
	}

	m.memberships.EXPECT().Role().Return(role).AnyTimes()

	s := NewService(m.memberships, m.persons, m.tracer, m.monitor, m.logger)

	return s, m
}

func expectSpan(m *serviceMocks, name string) {
	m.tracer.EXPECT().Start(gomock.Any(), name).
		Return(context.Background(), trace.SpanFromContext(context.Background()))
}

func TestService_GrantToPerson(t *testing.T) {
	person := newTestPerson(7)

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedID  int64
		expectedErr error
	}{
		{
			name: "first grant inserts",
			setupMocks: func(m *serviceMocks) {
				m.persons.EXPECT().GetPersonByID(gomock.Any(), person.ID).Return(&person, nil)
				m.memberships.EXPECT().GetByPersonID(gomock.Any(), person.ID).Return(nil, 0, nil)
				m.memberships.EXPECT().Grant(gomock.Any(), person.ID).Return(int64(31), nil)
			},
			expectedID: 31,
		},
		{
			name: "regrant after revoke reuses the membership id",
			setupMocks: func(m *serviceMocks) {
				m.persons.EXPECT().GetPersonByID(gomock.Any(), person.ID).Return(&person, nil)
				m.memberships.EXPECT().GetByPersonID(gomock.Any(), person.ID).
					Return(&types.Membership{ID: 31, PersonID: person.ID, Active: false}, 0, nil)
				m.memberships.EXPECT().Grant(gomock.Any(), person.ID).Return(int64(31), nil)
			},
			expectedID: 31,
		},
		{
			name: "active membership is refused",
			setupMocks: func(m *serviceMocks) {
				m.persons.EXPECT().GetPersonByID(gomock.Any(), person.ID).Return(&person, nil)
				m.memberships.EXPECT().GetByPersonID(gomock.Any(), person.ID).
					Return(&types.Membership{ID: 31, PersonID: person.ID, Active: true}, 1, nil)
			},
			expectedErr: ErrRoleAlreadyHeld,
		},
		{
			name: "person not found",
			setupMocks: func(m *serviceMocks) {
				m.persons.EXPECT().GetPersonByID(gomock.Any(), person.ID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := setupServiceTest(t, types.RoleOwner)

			expectSpan(m, "roles.Service.GrantToPerson")
			tc.setupMocks(m)

			membershipID, err := s.GrantToPerson(context.Background(), person.ID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if membershipID != tc.expectedID {
				t.Errorf("expected membership id %d, got %d", tc.expectedID, membershipID)
			}
		})
	}
}

func TestService_CreateWithPerson(t *testing.T) {
	person := newTestPerson(0)
	created := newTestPerson(12)

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.persons.EXPECT().CreatePerson(gomock.Any(), &person).Return(&created, nil)
				m.memberships.EXPECT().Grant(gomock.Any(), created.ID).Return(int64(44), nil)
			},
		},
		{
			name: "duplicate dni",
			setupMocks: func(m *serviceMocks) {
				m.persons.EXPECT().CreatePerson(gomock.Any(), &person).Return(nil, storage.ErrDuplicateNationalID)
			},
			expectedErr: storage.ErrDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := setupServiceTest(t, types.RoleTenant)

			expectSpan(m, "roles.Service.CreateWithPerson")
			tc.setupMocks(m)

			detail, err := s.CreateWithPerson(context.Background(), &person)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if detail.MembershipID != 44 {
				t.Errorf("expected membership id 44, got %d", detail.MembershipID)
			}
			if detail.Role != "tenant" {
				t.Errorf("expected role tenant, got %s", detail.Role)
			}
			if !detail.Active {
				t.Error("expected an active membership")
			}
			if detail.Person.ID != created.ID {
				t.Errorf("expected person %d, got %d", created.ID, detail.Person.ID)
			}
		})
	}
}

func TestService_Get(t *testing.T) {
	person := newTestPerson(7)

	s, m := setupServiceTest(t, types.RoleEmployee)

	expectSpan(m, "roles.Service.Get")
	m.memberships.EXPECT().GetByID(gomock.Any(), int64(3)).
		Return(&types.Membership{ID: 3, PersonID: person.ID, Active: true}, nil)
	m.persons.EXPECT().GetPersonByID(gomock.Any(), person.ID).Return(&person, nil)

	detail, err := s.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Role != "employee" {
		t.Errorf("expected role employee, got %s", detail.Role)
	}
	if detail.FullName != "Garcia, Ana" {
		t.Errorf("expected full name %q, got %q", "Garcia, Ana", detail.FullName)
	}
}

func TestService_Revoke(t *testing.T) {
	testCases := []struct {
		name        string
		rows        int64
		storeErr    error
		expectedErr error
	}{
		{
			name: "success",
			rows: 1,
		},
		{
			name:        "membership not found",
			rows:        0,
			expectedErr: storage.ErrNotFound,
		},
		{
			name:        "store error",
			storeErr:    errors.New("connection refused"),
			expectedErr: errors.New("connection refused"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := setupServiceTest(t, types.RoleOwner)

			expectSpan(m, "roles.Service.Revoke")
			m.memberships.EXPECT().Revoke(gomock.Any(), int64(9)).Return(tc.rows, tc.storeErr)

			err := s.Revoke(context.Background(), 9)

			if tc.expectedErr != nil {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_RevokeFromPerson(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.memberships.EXPECT().GetByPersonID(gomock.Any(), int64(7)).
					Return(&types.Membership{ID: 31, PersonID: 7, Active: true}, 1, nil)
				m.memberships.EXPECT().Revoke(gomock.Any(), int64(31)).Return(int64(1), nil)
			},
		},
		{
			name: "no membership row",
			setupMocks: func(m *serviceMocks) {
				m.memberships.EXPECT().GetByPersonID(gomock.Any(), int64(7)).Return(nil, 0, nil)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := setupServiceTest(t, types.RoleTenant)

			expectSpan(m, "roles.Service.RevokeFromPerson")
			tc.setupMocks(m)

			err := s.RevokeFromPerson(context.Background(), 7)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
