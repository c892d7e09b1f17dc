package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillbridge/skillbridge/internal/logging"
	"github.com/skillbridge/skillbridge/internal/service"
	"github.com/skillbridge/skillbridge/internal/transport"
	"github.com/skillbridge/skillbridge/internal/util"
)

type CertificateHTTP struct {
	Svc *service.CertificateService
}

func (h *CertificateHTTP) GetCertificates(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "certificate.list")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.List(ctx, offset, limit)
	if err != nil {
		return httpError(l, "certificate_list_error", err)
	}

	data := make([]transport.CertificateResponse, len(items))
	for i := range items {
		data[i] = transport.CertificateFrom(&items[i], false)
	}
	return pagedResponse(c, page, limit, offset, total, data)
}

func (h *CertificateHTTP) GetCertificate(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "certificate.get")

	id, err := ParseID(c)
	if err != nil {
		return err
	}

	cert, err := h.Svc.Get(ctx, id)
	if err != nil {
		return httpError(l, "certificate_get_error", err)
	}
	return c.JSON(http.StatusOK, transport.CertificateFrom(cert, true))
}

func (h *CertificateHTTP) CreateCertificate(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "certificate.create")

	var req transport.CreateCertificateRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("certificate_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	cert, err := h.Svc.Create(ctx, req)
	if err != nil {
		return httpError(l, "certificate_create_error", err)
	}
	return c.JSON(http.StatusCreated, transport.CertificateFrom(cert, true))
}

func (h *CertificateHTTP) UpdateCertificate(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "certificate.update")

	id, err := ParseID(c)
	if err != nil {
		return err
	}

	var req transport.UpdateCertificateRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("certificate_update_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.Update(ctx, id, req); err != nil {
		return httpError(l, "certificate_update_error", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CertificateHTTP) DeleteCertificate(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "certificate.delete")

	id, err := ParseID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return httpError(l, "certificate_delete_error", err)
	}
	return c.NoContent(http.StatusNoContent)
}
