package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			body: `{"email":"admin@kids-paradise.com","password":"secret","portal":"admin"}`,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().
					Login(context.Background(), model.LoginRequest{
						Email:    "admin@kids-paradise.com",
						Password: "secret",
						Portal:   model.RoleAdmin,
					}).
					Return(model.LoginResponse{
						AccessToken: "token",
						ExpiresIn:   1776816000,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"accessToken":"token","expiresIn":1776816000}`,
			},
			wantErr: false,
		},
		{
			name: "err. bad credentials",
			body: `{"email":"admin@kids-paradise.com","password":"wrong","portal":"admin"}`,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().
					Login(context.Background(), model.LoginRequest{
						Email:    "admin@kids-paradise.com",
						Password: "wrong",
						Portal:   model.RoleAdmin,
					}).
					Return(model.LoginResponse{}, errs.ErrBadCredentials)
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"invalid credentials"}`,
			},
			wantErr: true,
		},
		{
			name: "err. wrong portal",
			body: `{"email":"student@kids-paradise.com","password":"secret","portal":"admin"}`,
			mockBehavior: func(r *service_mocks.MockService) {
				r.EXPECT().
					Login(context.Background(), model.LoginRequest{
						Email:    "student@kids-paradise.com",
						Password: "secret",
						Portal:   model.RoleAdmin,
					}).
					Return(model.LoginResponse{}, errs.ErrRoleMismatch)
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"access denied for this portal"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. portal required",
			body:         `{"email":"admin@kids-paradise.com","password":"secret"}`,
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
			e.POST("/api/v1/auth/login", h.Login)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body))
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
