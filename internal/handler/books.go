package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kidlit/library-service/internal/errs"
	"github.com/kidlit/library-service/internal/model"
)

func (h *Handler) ListBooks(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		err    error
		filter model.BookFilter
	)
	filter.Search = c.QueryParam("search")
	if gradeParam := c.QueryParam("grade"); gradeParam != "" {
		if filter.Grade, err = strconv.Atoi(gradeParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("grade is invalid"))
		}
	}
	if availableParam := c.QueryParam("available"); availableParam != "" {
		if filter.AvailableOnly, err = strconv.ParseBool(availableParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("available is invalid"))
		}
	}
	switch sort := model.BookSort(c.QueryParam("sort")); sort {
	case "", model.SortTitleAsc, model.SortTitleDesc:
		filter.Sort = sort
	default:
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("sort is invalid"))
	}

	books, err := h.svc.ListBooks(ctx, filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.svc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id := c.Param("id")
	var req model.UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.svc.UpdateBook(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id := c.Param("id")
	if err := h.svc.DeleteBook(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, errs.ErrHasIssues):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListEbooks(c echo.Context) error {
	ebooks, err := h.svc.ListEbooks(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ebooks)
}

func (h *Handler) CreateEbook(c echo.Context) error {
	var req model.CreateEbookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ebook, err := h.svc.CreateEbook(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, ebook)
}
