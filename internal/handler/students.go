package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/kidlit/library-service/internal/errs"
	"github.com/kidlit/library-service/internal/model"
)

// ListStudents serves the legacy /api/students contract with its
// {success, count, data} envelope.
func (h *Handler) ListStudents(c echo.Context) error {
	students, err := h.svc.ListStudents(c.Request().Context())
	if err != nil {
		h.log.Error("list students", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "failed to fetch students"})
	}
	return c.JSON(http.StatusOK, model.StudentsResponse{
		Success: true,
		Count:   len(students),
		Data:    students,
	})
}

func (h *Handler) CreateStudent(c echo.Context) error {
	var req model.CreateStudentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error:  "missing required fields",
			Fields: []string{"name"},
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request"})
	}

	student, err := h.svc.CreateStudent(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateEmail) {
			return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: errs.ErrDuplicateEmail.Error()})
		}
		h.log.Error("create student", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "failed to create student"})
	}
	return c.JSON(http.StatusCreated, model.CreateStudentResponse{
		Success: true,
		Data:    student,
	})
}

func (h *Handler) ListTransactions(c echo.Context) error {
	studentID := c.Param("id")
	txs, err := h.svc.ListTransactions(c.Request().Context(), studentID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, txs)
}
