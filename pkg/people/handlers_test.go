// Copyright 2026 Rentdesk Ltd
// SPDX-License-Identifier: AGPL-3.0

package people

import (
	"encoding/json"
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

func setupAPITest(t *testing.T) (*MockServiceInterface, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	mux := chi.NewMux()
	NewAPI(mockService, mockLogger).RegisterEndpoints(mux)

	return mockService, mux
}

func TestHandleList(t *testing.T) {
	mockService, mux := setupAPITest(t)

	rows := []*PersonRow{
		{
			PersonWithRoles: types.PersonWithRoles{Person: newTestPerson(1), IsOwner: true},
			FullName:        "Garcia, Ana",
			RolesLabel:      "Owner",
		},
	}
	pagination := httptypes.NewPagination(2, 10, 25, "gar")

	mockService.EXPECT().
		ListPersons(gomock.Any(), int64(2), uint64(10), "gar", true).
		Return(rows, pagination, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/people?page=2&size=10&search=gar", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp httptypes.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Meta == nil {
		t.Fatal("expected pagination meta")
	}
	if resp.Meta.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", resp.Meta.TotalPages)
	}
}

func TestHandleListInactiveView(t *testing.T) {
	mockService, mux := setupAPITest(t)

	mockService.EXPECT().
		ListPersons(gomock.Any(), int64(1), uint64(10), "", false).
		Return([]*PersonRow{}, httptypes.NewPagination(1, 10, 0, ""), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/people?active=false", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestHandleDetail(t *testing.T) {
	testCases := []struct {
		name           string
		id             string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			id:   "7",
			setupMocks: func(m *MockServiceInterface) {
				person := newTestPerson(7)
				m.EXPECT().GetPerson(gomock.Any(), int64(7), false).Return(&PersonDetail{
					Person:     person,
					FullName:   person.FullName(),
					Roles:      []string{"Owner"},
					RolesLabel: "Owner",
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "99",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().GetPerson(gomock.Any(), int64(99), false).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, mux := setupAPITest(t)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/people/"+tc.id, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, w.Code)
			}
		})
	}
}

func TestHandleSearchRequiresName(t *testing.T) {
	_, mux := setupAPITest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/people/search", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestHandleUpdate(t *testing.T) {
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
				person := newTestPerson(4)
				m.EXPECT().UpdatePerson(gomock.Any(), gomock.Any()).Return(&person, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid body",
			body:           "{",
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "validation failure - dni not numeric",
			body:           `{"dni":"3011a222","apellido":"Garcia","nombre":"Anabel","telefono":"555-0101","email":"ana.garcia@example.com"}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			body: validBody,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().UpdatePerson(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateEmail)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, mux := setupAPITest(t)
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPut, "/api/v0/people/4", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestHandleRemove(t *testing.T) {
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
			name:           "not found",
			serviceErr:     storage.ErrNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService, mux := setupAPITest(t)
			mockService.EXPECT().DeactivatePerson(gomock.Any(), int64(5)).Return(tc.serviceErr)

			req := httptest.NewRequest(http.MethodDelete, "/api/v0/people/5", nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, w.Code)
			}
		})
	}
}
