package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kidlit/library-service/config"
	"github.com/kidlit/library-service/internal/handler"
	"github.com/kidlit/library-service/internal/model"
	"github.com/kidlit/library-service/pkg/validate"

	service_mocks "github.com/kidlit/library-service/internal/handler/mocks"
)

func TestHandler_Dashboard(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockService)

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
					Dashboard(context.Background()).
					Return(model.DashboardStats{
						Students:   42,
						Books:      120,
						OpenIssues: 7,
						Overdue:    2,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"students":42,"books":120,"openIssues":7,"overdue":2}`,
			},
			wantErr: false,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().
					Dashboard(context.Background()).
					Return(model.DashboardStats{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
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
			e.GET("/api/v1/stats/dashboard", h.Dashboard)

			r := httptest.NewRequest(http.MethodGet, "/api/v1/stats/dashboard", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_RecentActivity(t *testing.T) {
	t.Parallel()

	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, config.CORS{}, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/api/v1/stats/activity", h.RecentActivity)

	t.Run("default limit", func(t *testing.T) {
		svc.EXPECT().
			RecentActivity(context.Background(), 10).
			Return([]model.Activity{}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/v1/stats/activity", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, `[]`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("invalid limit", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/stats/activity?limit=zero", http.NoBody)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
