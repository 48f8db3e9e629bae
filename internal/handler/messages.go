package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kidlit/library-service/internal/errs"
	"github.com/kidlit/library-service/internal/model"
	"github.com/kidlit/library-service/pkg/auth"
)

// SendMessage creates a question to the librarian. Students always send
// as themselves regardless of the submitted studentId.
func (h *Handler) SendMessage(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if role, _ := auth.UserRole(ctx); role != "admin" {
		if id, ok := auth.UserID(ctx); ok {
			req.StudentID = id
		}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.svc.SendMessage(ctx, req)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, msg)
}

// ListMessages: admins see all threads, students only their own.
func (h *Handler) ListMessages(c echo.Context) error {
	ctx := c.Request().Context()

	var studentID string
	if role, _ := auth.UserRole(ctx); role == "admin" {
		studentID = c.QueryParam("studentId")
	} else {
		studentID, _ = auth.UserID(ctx)
	}

	msgs, err := h.svc.ListMessages(ctx, studentID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, msgs)
}

func (h *Handler) ReplyMessage(c echo.Context) error {
	id := c.Param("id")
	var req model.ReplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.svc.ReplyMessage(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, msg)
}
