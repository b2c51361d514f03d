// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/rentdesk/people-service/internal/http/types"
	"github.com/rentdesk/people-service/internal/storage"
	"github.com/rentdesk/people-service/internal/types"
)

func setupAPITest(t *testing.T, role types.Role) (*MockServiceInterface, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().Role().Return(role).AnyTimes()
	mockLogger := NewMockLoggerInterface(ctrl)
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	mux := chi.NewMux()
	NewAPI(mockService, mockLogger).RegisterEndpoints(mux)

	return mockService, mux
}

func TestHandleList(t *testing.T) {
	mockService, mux := setupAPITest(t, types.RoleOwner)

	person := newTestPerson(1)
	mockService.EXPECT().
		List(gomock.Any(), int64(1), uint64(10), "").
		Return([]*types.Person{&person}, httptypes.NewPagination(1, 10, 1, ""), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/owners", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestHandleGrant(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"person_id":7}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().GrantToPerson(gomock.Any(), int64(7)).Return(int64(31), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "role already held",
			body: `{"person_id":7}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().GrantToPerson(gomock.Any(), int64(7)).Return(int64(0), ErrRoleAlreadyHeld)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "person not found",
			body: `{"person_id":99}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().GrantToPerson(gomock.Any(), int64(99)).Return(int64(0), storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing person id",
			body:           `{}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid body",
			body:           "{",
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, mux := setupAPITest(t, types.RoleTenant)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/grant", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandleCreate(t *testing.T) {
	validBody := `{"dni":"30111222","apellido":"Garcia","nombre":"Anabel","telefono":"555-0101","email":"ana.garcia@example.com"}`

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			body: validBody,
			setupMocks: func(m *MockServiceInterface) {
				person := newTestPerson(12)
				m.EXPECT().CreateWithPerson(gomock.Any(), gomock.Any()).Return(&MembershipDetail{
					MembershipID: 44,
					Role:         "employee",
					Active:       true,
					Person:       person,
					FullName:     person.FullName(),
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate dni",
			body: validBody,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().CreateWithPerson(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateNationalID)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "validation failure - short dni",
			body:           `{"dni":"301","apellido":"Garcia","nombre":"Anabel","telefono":"555-0101","email":"ana.garcia@example.com"}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, mux := setupAPITest(t, types.RoleEmployee)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/employees", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandleRevoke(t *testing.T) {
	testCases := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{
			name:           "success",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "membership not found",
			serviceErr:     storage.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, mux := setupAPITest(t, types.RoleOwner)
			mockService.EXPECT().Revoke(gomock.Any(), int64(31)).Return(tc.serviceErr)

			req := httptest.NewRequest(http.MethodDelete, "/api/v0/owners/31", nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, w.Code)
			}
		})
	}
}

func TestHandleRevokeByPerson(t *testing.T) {
	mockService, mux := setupAPITest(t, types.RoleTenant)
	mockService.EXPECT().RevokeFromPerson(gomock.Any(), int64(7)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/tenants/by-person/7", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}
