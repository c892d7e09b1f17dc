package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillbridge/skillbridge/internal/logging"
	"github.com/skillbridge/skillbridge/internal/service"
	"github.com/skillbridge/skillbridge/internal/transport"
	"github.com/skillbridge/skillbridge/internal/util"
)

type JobPostingHTTP struct {
	Svc *service.JobPostingService
}

func (h *JobPostingHTTP) GetJobPostings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "job.list")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.List(ctx, offset, limit)
	if err != nil {
		return httpError(l, "job_list_error", err)
	}

	data := make([]transport.JobPostingResponse, len(items))
	for i := range items {
		data[i] = transport.JobPostingFrom(&items[i], false)
	}
	return pagedResponse(c, page, limit, offset, total, data)
}

func (h *JobPostingHTTP) GetJobPosting(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "job.get")

	id, err := ParseID(c)
	if err != nil {
		return err
	}

	job, err := h.Svc.Get(ctx, id)
	if err != nil {
		return httpError(l, "job_get_error", err)
	}
	return c.JSON(http.StatusOK, transport.JobPostingFrom(job, true))
}

func (h *JobPostingHTTP) CreateJobPosting(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "job.create")

	var req transport.JobPostingRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("job_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	job, err := h.Svc.Create(ctx, req)
	if err != nil {
		return httpError(l, "job_create_error", err)
	}
	return c.JSON(http.StatusCreated, transport.JobPostingFrom(job, true))
}

func (h *JobPostingHTTP) UpdateJobPosting(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "job.update")

	id, err := ParseID(c)
	if err != nil {
		return err
	}

	var req transport.JobPostingRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("job_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Update(ctx, id, req); err != nil {
		return httpError(l, "job_update_error", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *JobPostingHTTP) DeleteJobPosting(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "job.delete")

	id, err := ParseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return httpError(l, "job_delete_error", err)
	}
	return c.NoContent(http.StatusNoContent)
}
