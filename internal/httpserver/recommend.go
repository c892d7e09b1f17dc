package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillbridge/skillbridge/internal/logging"
	"github.com/skillbridge/skillbridge/internal/recommend"
	"github.com/skillbridge/skillbridge/internal/util"
)

type RecommendHTTP struct {
	Client *recommend.Client
}

// GetRecommendations proxies the external recommendation service. The
// remote call is opaque: any failure comes back as a generic server error.
func (h *RecommendHTTP) GetRecommendations(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "recommendations.get")

	id, err := ParseID(c)
	if err != nil {
		return err
	}

	topN := util.ParseIntDefault(c.QueryParam("top_n"), 5)
	if topN < recommend.MinTopN || topN > recommend.MaxTopN {
		topN = 5
	}

	courses, err := h.Client.Recommendations(ctx, id, topN)
	if err != nil {
		l.Error("recommendations_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot generate recommendations")
	}

	l.Info("recommendations_generated", "user_id", id, "count", len(courses))
	return c.JSON(http.StatusOK, courses)
}
