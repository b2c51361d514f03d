// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package people

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/rentdesk/people-service/internal/storage"
	"github.com/rentdesk/people-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package people -destination ./mock_people.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package people -destination ./mock_storage.go -source=../../internal/storage/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package people -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package people -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package people -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

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

func newRoleStoreMocks(ctrl *gomock.Controller) []*MockRoleStoreInterface {
	mocks := make([]*MockRoleStoreInterface, 0, len(types.Roles))
	for _, role := range types.Roles {
		m := NewMockRoleStoreInterface(ctrl)
		m.EXPECT().Role().Return(role).AnyTimes()
		mocks = append(mocks, m)
	}
	return mocks
}

func asRoleStores(mocks []*MockRoleStoreInterface) []storage.RoleStoreInterface {
	stores := make([]storage.RoleStoreInterface, len(mocks))
	for i, m := range mocks {
		stores[i] = m
	}
	return stores
}

func TestService_ListPersons(t *testing.T) {
	testCases := []struct {
		name           string
		page           int64
		pageSize       uint64
		search         string
		persons        []*types.PersonWithRoles
		total          int64
		storeErr       error
		expectedErr    bool
		expectedLabels []string
		validateMeta   func(*testing.T, int64, int64, bool, bool)
	}{
		{
			name:     "labels keep the fixed order",
			page:     1,
			pageSize: 10,
			persons: []*types.PersonWithRoles{
				{Person: newTestPerson(1), IsOwner: true, IsEmployee: true},
				{Person: newTestPerson(2), IsTenant: true},
				{Person: newTestPerson(3)},
			},
			total:          3,
			expectedLabels: []string{"Owner, Employee", "Tenant", "no role assigned"},
		},
		{
			name:     "pagination meta for a middle page",
			page:     2,
			pageSize: 10,
			persons:  []*types.PersonWithRoles{{Person: newTestPerson(11), IsOwner: true}},
			total:    25,
			expectedLabels: []string{"Owner"},
			validateMeta: func(t *testing.T, totalPages, total int64, hasPrev, hasNext bool) {
				if totalPages != 3 {
					t.Errorf("expected 3 total pages, got %d", totalPages)
				}
				if total != 25 {
					t.Errorf("expected total 25, got %d", total)
				}
				if !hasPrev || !hasNext {
					t.Errorf("expected both neighbour pages, got prev=%v next=%v", hasPrev, hasNext)
				}
			},
		},
		{
			name:        "store error",
			page:        1,
			pageSize:    10,
			storeErr:    errors.New("connection refused"),
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPersons := NewMockPersonStoreInterface(ctrl)
			mockRoles := newRoleStoreMocks(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "people.Service.ListPersons").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockPersons.EXPECT().ListPersonsPaged(gomock.Any(), tc.page, tc.pageSize, tc.search, true).
				Return(tc.persons, tc.total, tc.storeErr)

			s := NewService(mockPersons, asRoleStores(mockRoles), mockTracer, mockMonitor, mockLogger)

			rows, pagination, err := s.ListPersons(context.Background(), tc.page, tc.pageSize, tc.search, true)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(rows) != len(tc.expectedLabels) {
				t.Fatalf("expected %d rows, got %d", len(tc.expectedLabels), len(rows))
			}
			for i, label := range tc.expectedLabels {
				if rows[i].RolesLabel != label {
					t.Errorf("row %d: expected label %q, got %q", i, label, rows[i].RolesLabel)
				}
			}

			if tc.validateMeta != nil {
				tc.validateMeta(t, pagination.TotalPages, pagination.Total, pagination.HasPrevious, pagination.HasNext)
			}
		})
	}
}

func TestService_GetPerson(t *testing.T) {
	person := newTestPerson(7)

	testCases := []struct {
		name            string
		includeInactive bool
		held            []bool
		expectedRoles   []string
		expectedLabel   string
	}{
		{
			name:          "owner and employee",
			held:          []bool{true, false, true},
			expectedRoles: []string{"Owner", "Employee"},
			expectedLabel: "Owner, Employee",
		},
		{
			name:          "no active memberships",
			held:          []bool{false, false, false},
			expectedRoles: nil,
			expectedLabel: "no role assigned",
		},
		{
			name:            "inactive person visible in recovery view",
			includeInactive: true,
			held:            []bool{false, true, false},
			expectedRoles:   []string{"Tenant"},
			expectedLabel:   "Tenant",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPersons := NewMockPersonStoreInterface(ctrl)
			mockRoles := newRoleStoreMocks(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "people.Service.GetPerson").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			if tc.includeInactive {
				mockPersons.EXPECT().GetAnyPersonByID(gomock.Any(), person.ID).Return(&person, nil)
			} else {
				mockPersons.EXPECT().GetPersonByID(gomock.Any(), person.ID).Return(&person, nil)
			}

			for i, m := range mockRoles {
				if tc.held[i] {
					m.EXPECT().GetByPersonID(gomock.Any(), person.ID).
						Return(&types.Membership{ID: int64(100 + i), PersonID: person.ID, Active: true}, 1, nil)
				} else {
					m.EXPECT().GetByPersonID(gomock.Any(), person.ID).Return(nil, 0, nil)
				}
			}

			s := NewService(mockPersons, asRoleStores(mockRoles), mockTracer, mockMonitor, mockLogger)

			detail, err := s.GetPerson(context.Background(), person.ID, tc.includeInactive)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if detail.RolesLabel != tc.expectedLabel {
				t.Errorf("expected label %q, got %q", tc.expectedLabel, detail.RolesLabel)
			}
			if len(detail.Roles) != len(tc.expectedRoles) {
				t.Fatalf("expected %d roles, got %d", len(tc.expectedRoles), len(detail.Roles))
			}
			for i, role := range tc.expectedRoles {
				if detail.Roles[i] != role {
					t.Errorf("role %d: expected %q, got %q", i, role, detail.Roles[i])
				}
			}
			if detail.FullName != "Garcia, Ana" {
				t.Errorf("expected full name %q, got %q", "Garcia, Ana", detail.FullName)
			}
		})
	}
}

func TestService_GetPersonRevokedMembershipDoesNotCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	person := newTestPerson(9)

	mockPersons := NewMockPersonStoreInterface(ctrl)
	mockRoles := newRoleStoreMocks(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "people.Service.GetPerson").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockPersons.EXPECT().GetPersonByID(gomock.Any(), person.ID).Return(&person, nil)

	// a revoked membership row exists but estado is 0
	mockRoles[0].EXPECT().GetByPersonID(gomock.Any(), person.ID).
		Return(&types.Membership{ID: 41, PersonID: person.ID, Active: false}, 0, nil)
	mockRoles[1].EXPECT().GetByPersonID(gomock.Any(), person.ID).Return(nil, 0, nil)
	mockRoles[2].EXPECT().GetByPersonID(gomock.Any(), person.ID).Return(nil, 0, nil)

	s := NewService(mockPersons, asRoleStores(mockRoles), mockTracer, mockMonitor, mockLogger)

	detail, err := s.GetPerson(context.Background(), person.ID, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.RolesLabel != NoRoleAssigned {
		t.Errorf("expected %q, got %q", NoRoleAssigned, detail.RolesLabel)
	}
}

func TestService_UpdatePerson(t *testing.T) {
	testCases := []struct {
		name        string
		updateErr   error
		expectedErr error
	}{
		{
			name: "success",
		},
		{
			name:        "person not found",
			updateErr:   storage.ErrNotFound,
			expectedErr: storage.ErrNotFound,
		},
		{
			name:        "duplicate dni",
			updateErr:   storage.ErrDuplicateNationalID,
			expectedErr: storage.ErrDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			person := newTestPerson(4)

			mockPersons := NewMockPersonStoreInterface(ctrl)
			mockRoles := newRoleStoreMocks(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "people.Service.UpdatePerson").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockPersons.EXPECT().UpdatePerson(gomock.Any(), &person).Return(tc.updateErr)
			if tc.updateErr == nil {
				mockPersons.EXPECT().GetPersonByID(gomock.Any(), person.ID).Return(&person, nil)
			}

			s := NewService(mockPersons, asRoleStores(mockRoles), mockTracer, mockMonitor, mockLogger)

			updated, err := s.UpdatePerson(context.Background(), &person)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if updated.ID != person.ID {
				t.Errorf("expected person %d, got %d", person.ID, updated.ID)
			}
		})
	}
}

func TestService_DeactivatePerson(t *testing.T) {
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
			name:        "person not found",
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
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPersons := NewMockPersonStoreInterface(ctrl)
			// no expectations on the role stores: deactivation must not
			// cascade into memberships
			mockRoles := newRoleStoreMocks(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "people.Service.DeactivatePerson").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockPersons.EXPECT().DeactivatePerson(gomock.Any(), int64(5)).Return(tc.rows, tc.storeErr)

			s := NewService(mockPersons, asRoleStores(mockRoles), mockTracer, mockMonitor, mockLogger)

			err := s.DeactivatePerson(context.Background(), 5)

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
