package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/skillbridge/skillbridge/internal/dberr"
	"github.com/skillbridge/skillbridge/internal/service"
)

// httpError maps service errors to HTTP responses. Conflicts and validation
// failures carry their specific message; anything unclassified is logged in
// full and surfaced only as a generic server failure.
func httpError(l *slog.Logger, op string, err error) error {
	var conflict *dberr.Conflict
	switch {
	case errors.Is(err, service.ErrValidation):
		l.Warn(op, "status", 400, "reason", "validation", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &conflict):
		l.Warn(op, "status", 400, "entity", conflict.Entity, "field", conflict.Field)
		return echo.NewHTTPError(http.StatusBadRequest, conflict.Message)
	case errors.Is(err, gorm.ErrRecordNotFound):
		l.Warn(op, "status", 404)
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	default:
		l.Error(op, "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

func pagedResponse(c echo.Context, page, limit, offset int, total int64, data any) error {
	return c.JSON(http.StatusOK, map[string]any{
		"data": data,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
			"has_prev":    page > 1,
			"has_next":    int64(offset+limit) < total,
		},
	})
}
