package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kidlit/library-service/internal/errs"
	"github.com/kidlit/library-service/internal/model"
	"github.com/kidlit/library-service/pkg/auth"
)

func (h *Handler) IssueBook(c echo.Context) error {
	var req model.IssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if adminID, ok := auth.UserID(c.Request().Context()); ok {
		req.IssuedBy = adminID
	}

	issued, err := h.svc.IssueBook(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrNoCopies):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, issued)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	var req model.ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	resp, err := h.svc.ReturnBook(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

// ListIssues returns the caller's open issues; admins may inspect any
// student via the studentId query param.
func (h *Handler) ListIssues(c echo.Context) error {
	ctx := c.Request().Context()

	studentID, _ := auth.UserID(ctx)
	if role, _ := auth.UserRole(ctx); role == "admin" {
		if qp := c.QueryParam("studentId"); qp != "" {
			studentID = qp
		}
	}

	openOnly := true
	if openParam := c.QueryParam("open"); openParam != "" {
		var err error
		if openOnly, err = strconv.ParseBool(openParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("open is invalid"))
		}
	}

	issues, err := h.svc.ListIssues(ctx, studentID, openOnly)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, issues)
}
