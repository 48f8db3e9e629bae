package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kidlit/library-service/config"
	"github.com/kidlit/library-service/internal/errs"
	"github.com/kidlit/library-service/internal/handler"
	"github.com/kidlit/library-service/internal/model"
	"github.com/kidlit/library-service/pkg/validate"

	service_mocks "github.com/kidlit/library-service/internal/handler/mocks"
)

func intPtr(n int) *int { return &n }

func TestHandler_ListStudents(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockService)

	ts := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().
					ListStudents(context.Background()).
					Return([]model.Student{
						{
							ID:        "9d3f0b77-52f5-4f24-9a49-0badf6aec55a",
							FullName:  "Asha Rao",
							Email:     "asha.rao@kids-paradise.com",
							Grade:     intPtr(4),
							Role:      model.RoleStudent,
							CreatedAt: ts,
							UpdatedAt: ts,
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"count":1,"data":[{"id":"9d3f0b77-52f5-4f24-9a49-0badf6aec55a","full_name":"Asha Rao","email":"asha.rao@kids-paradise.com","grade":4,"role":"student","created_at":"2026-01-15T10:00:00Z","updated_at":"2026-01-15T10:00:00Z"}]}`,
			},
			wantErr: false,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().
					ListStudents(context.Background()).
					Return(nil, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"success":false,"error":"failed to fetch students"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, config.CORS{}, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/students", h.ListStudents)

			r := httptest.NewRequest(http.MethodGet, "/api/students", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateStudent(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockService)

	ts := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: `{"name":"Asha Rao","grade":"4"}`,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().
					CreateStudent(context.Background(), model.CreateStudentRequest{
						Name:  "Asha Rao",
						Grade: "4",
					}).
					Return(model.Student{
						ID:        "9d3f0b77-52f5-4f24-9a49-0badf6aec55a",
						FullName:  "Asha Rao",
						Email:     "asha.rao@kids-paradise.com",
						Grade:     intPtr(4),
						Role:      model.RoleStudent,
						CreatedAt: ts,
						UpdatedAt: ts,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"success":true,"data":{"id":"9d3f0b77-52f5-4f24-9a49-0badf6aec55a","full_name":"Asha Rao","email":"asha.rao@kids-paradise.com","grade":4,"role":"student","created_at":"2026-01-15T10:00:00Z","updated_at":"2026-01-15T10:00:00Z"}}`,
			},
			wantErr: false,
		},
		{
			name:         "err. name required",
			body:         `{"grade":"4"}`,
			mockBehavior: func(r *service_mocks.MockService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"error":"missing required fields","fields":["name"]}`,
			},
			wantErr: true,
		},
		{
			name: "err. duplicate email",
			body: `{"name":"Asha Rao","email":"asha.rao@kids-paradise.com"}`,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().
					CreateStudent(context.Background(), model.CreateStudentRequest{
						Name:  "Asha Rao",
						Email: "asha.rao@kids-paradise.com",
					}).
					Return(model.Student{}, errs.ErrDuplicateEmail)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"success":false,"error":"email already registered"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, config.CORS{}, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/students", h.CreateStudent)

			r := httptest.NewRequest(http.MethodPost, "/api/students", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
