package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillbridge/skillbridge/internal/logging"
	"github.com/skillbridge/skillbridge/internal/service"
	"github.com/skillbridge/skillbridge/internal/transport"
	"github.com/skillbridge/skillbridge/internal/util"
)

type CourseHTTP struct {
	Svc *service.CourseService
}

func (h *CourseHTTP) GetCourses(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "course.list")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.List(ctx, offset, limit)
	if err != nil {
		return httpError(l, "course_list_error", err)
	}

	data := make([]transport.CourseResponse, len(items))
	for i := range items {
		data[i] = transport.CourseFrom(&items[i], false)
	}
	return pagedResponse(c, page, limit, offset, total, data)
}

func (h *CourseHTTP) SearchCourses(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "course.search")

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.Search(ctx, q, offset, limit)
	if err != nil {
		return httpError(l, "course_search_error", err)
	}

	data := make([]transport.CourseResponse, len(items))
	for i := range items {
		data[i] = transport.CourseFrom(&items[i], false)
	}
	return pagedResponse(c, page, limit, offset, total, data)
}

func (h *CourseHTTP) GetCourse(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "course.get")

	id, err := ParseID(c)
	if err != nil {
		return err
	}

	course, err := h.Svc.Get(ctx, id)
	if err != nil {
		return httpError(l, "course_get_error", err)
	}
	return c.JSON(http.StatusOK, transport.CourseFrom(course, true))
}

func (h *CourseHTTP) CreateCourse(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "course.create")

	var req transport.CourseRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("course_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	course, err := h.Svc.Create(ctx, req)
	if err != nil {
		return httpError(l, "course_create_error", err)
	}
	return c.JSON(http.StatusCreated, transport.CourseFrom(course, true))
}

func (h *CourseHTTP) UpdateCourse(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "course.update")

	id, err := ParseID(c)
	if err != nil {
		return err
	}

	var req transport.CourseRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("course_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Update(ctx, id, req); err != nil {
		return httpError(l, "course_update_error", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CourseHTTP) DeleteCourse(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "course.delete")

	id, err := ParseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return httpError(l, "course_delete_error", err)
	}
	return c.NoContent(http.StatusNoContent)
}
