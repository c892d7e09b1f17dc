package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillbridge/skillbridge/internal/logging"
	"github.com/skillbridge/skillbridge/internal/service"
	"github.com/skillbridge/skillbridge/internal/transport"
	"github.com/skillbridge/skillbridge/internal/util"
)

type CompanyHTTP struct {
	Svc *service.CompanyService
}

func (h *CompanyHTTP) GetCompanies(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "company.list")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.List(ctx, offset, limit)
	if err != nil {
		return httpError(l, "company_list_error", err)
	}

	data := make([]transport.CompanyResponse, len(items))
	for i := range items {
		data[i] = transport.CompanyFrom(&items[i], false)
	}
	return pagedResponse(c, page, limit, offset, total, data)
}

func (h *CompanyHTTP) GetCompany(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "company.get")

	id, err := ParseID(c)
	if err != nil {
		return err
	}

	company, err := h.Svc.Get(ctx, id)
	if err != nil {
		return httpError(l, "company_get_error", err)
	}
	return c.JSON(http.StatusOK, transport.CompanyFrom(company, true))
}

func (h *CompanyHTTP) CreateCompany(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "company.create")

	var req transport.CompanyRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("company_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	company, err := h.Svc.Create(ctx, req)
	if err != nil {
		return httpError(l, "company_create_error", err)
	}
	return c.JSON(http.StatusCreated, transport.CompanyFrom(company, true))
}

func (h *CompanyHTTP) UpdateCompany(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "company.update")

	id, err := ParseID(c)
	if err != nil {
		return err
	}

	var req transport.CompanyRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("company_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Update(ctx, id, req); err != nil {
		return httpError(l, "company_update_error", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CompanyHTTP) DeleteCompany(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "company.delete")

	id, err := ParseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return httpError(l, "company_delete_error", err)
	}
	return c.NoContent(http.StatusNoContent)
}
