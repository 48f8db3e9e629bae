package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/kidlit/library-service/config"
	md "github.com/kidlit/library-service/pkg/middleware"

	"github.com/kidlit/library-service/pkg/metrics"
	"github.com/kidlit/library-service/pkg/validate"
)

type Handler struct {
	svc  Service
	cors config.CORS
	log  *zap.Logger
}

func New(svc Service, cors config.CORS, log *zap.Logger) *Handler {
	return &Handler{
		svc:  svc,
		cors: cors,
		log:  log,
	}
}

var localOrigin = regexp.MustCompile(`^https?://(localhost|127\.0\.0\.1)(:\d+)?$`)

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc:  h.allowOrigin,
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Use(metrics.Middleware())

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	e.Validator = validate.NewCustomValidator()

	legacy := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	legacy.GET("/health", h.HealthLegacy)
	legacy.GET("/students", h.ListStudents)
	legacy.POST("/students", h.CreateStudent)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.POST("/auth/login", h.Login)
	api.GET("/books", h.ListBooks)
	api.GET("/ebooks", h.ListEbooks)

	authed := api.Group("", md.JwtAuthentication)
	authed.GET("/issues", h.ListIssues)
	authed.GET("/messages", h.ListMessages)
	authed.POST("/messages", h.SendMessage)
	authed.GET("/students/:id/transactions", h.ListTransactions)

	admin := authed.Group("", md.RequireRole("admin"))
	admin.POST("/books", h.CreateBook)
	admin.PUT("/books/:id", h.UpdateBook)
	admin.DELETE("/books/:id", h.DeleteBook)
	admin.POST("/ebooks", h.CreateEbook)
	admin.POST("/issues", h.IssueBook)
	admin.POST("/issues/return", h.ReturnBook)
	admin.GET("/stats/dashboard", h.Dashboard)
	admin.GET("/stats/activity", h.RecentActivity)
	admin.GET("/reports/circulation", h.CirculationReport)
	admin.POST("/messages/:id/reply", h.ReplyMessage)

	return e
}

// allowOrigin accepts the configured allow-list plus any localhost
// origin and vercel preview deployments.
func (h *Handler) allowOrigin(origin string) (bool, error) {
	for _, allowed := range h.cors.AllowedOrigins {
		if origin == allowed {
			return true, nil
		}
	}
	if localOrigin.MatchString(origin) {
		return true, nil
	}
	if strings.HasPrefix(origin, "https://") && strings.HasSuffix(origin, ".vercel.app") {
		return true, nil
	}
	return false, nil
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) HealthLegacy(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
