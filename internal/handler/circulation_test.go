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
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kidlit/library-service/config"
	"github.com/kidlit/library-service/internal/errs"
	"github.com/kidlit/library-service/internal/handler"
	"github.com/kidlit/library-service/internal/model"
	"github.com/kidlit/library-service/pkg/validate"

	service_mocks "github.com/kidlit/library-service/internal/handler/mocks"
)

const (
	studentUID = "9d3f0b77-52f5-4f24-9a49-0badf6aec55a"
	bookUID    = "83575e12-7ce0-48ee-9931-51919ff3c9ee"
	issueUID   = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
)

func TestHandler_IssueBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockService)

	issuedAt := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	dueDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: `{"studentId":"` + studentUID + `","bookId":"` + bookUID + `","dueDate":"2026-09-15T00:00:00Z"}`,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().
					IssueBook(context.Background(), model.IssueRequest{
						StudentID: studentUID,
						BookID:    bookUID,
						DueDate:   dueDate,
					}).
					Return(model.IssuedBook{
						ID:        issueUID,
						BookID:    bookUID,
						StudentID: studentUID,
						IssuedAt:  issuedAt,
						DueDate:   dueDate,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":"` + issueUID + `","bookId":"` + bookUID + `","studentId":"` + studentUID + `","issuedBy":"","issuedAt":"2026-09-01T09:00:00Z","dueDate":"2026-09-15T00:00:00Z","returnedAt":null,"fineAmount":null}`,
			},
			wantErr: false,
		},
		{
			name: "err. no copies",
			body: `{"studentId":"` + studentUID + `","bookId":"` + bookUID + `","dueDate":"2026-09-15T00:00:00Z"}`,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().
					IssueBook(context.Background(), model.IssueRequest{
						StudentID: studentUID,
						BookID:    bookUID,
						DueDate:   dueDate,
					}).
					Return(model.IssuedBook{}, errs.ErrNoCopies)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"no copies available"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. bookId is not uuid",
			body:         `{"studentId":"` + studentUID + `","bookId":"42","dueDate":"2026-09-15T00:00:00Z"}`,
			mockBehavior: func(r *service_mocks.MockService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
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
			e.POST("/api/v1/issues", h.IssueBook)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/issues", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ReturnBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockService)

	issuedAt := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	dueDate := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	returnedAt := time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)
	fine := 10

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok. overdue with fine",
			body: `{"studentId":"` + studentUID + `","bookId":"` + bookUID + `"}`,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().
					ReturnBook(context.Background(), model.ReturnRequest{
						StudentID: studentUID,
						BookID:    bookUID,
					}).
					Return(model.ReturnResponse{
						IssuedBook: model.IssuedBook{
							ID:         issueUID,
							BookID:     bookUID,
							StudentID:  studentUID,
							IssuedAt:   issuedAt,
							DueDate:    dueDate,
							ReturnedAt: &returnedAt,
							FineAmount: &fine,
						},
						Overdue: true,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":"` + issueUID + `","bookId":"` + bookUID + `","studentId":"` + studentUID + `","issuedBy":"","issuedAt":"2026-08-01T09:00:00Z","dueDate":"2026-08-15T00:00:00Z","returnedAt":"2026-08-17T12:00:00Z","fineAmount":10,"overdue":true}`,
			},
			wantErr: false,
		},
		{
			name: "err. no open issue",
			body: `{"studentId":"` + studentUID + `","bookId":"` + bookUID + `"}`,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().
					ReturnBook(context.Background(), model.ReturnRequest{
						StudentID: studentUID,
						BookID:    bookUID,
					}).
					Return(model.ReturnResponse{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
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
			e.POST("/api/v1/issues/return", h.ReturnBook)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/issues/return", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}
