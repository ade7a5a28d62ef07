package rest

import (
	"net/http"

	"hud/di"
	"hud/domain"

	"github.com/labstack/echo/v4"
)

func registerFeedRoutes(v1 *echo.Group, container *di.ApplicationComponents, authOptional echo.MiddlewareFunc) {
	v1.GET("/feed", handleGetFeed(container), authOptional)
	v1.POST("/sweep", handleSweep(container))
}

func handleGetFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := container.FetchFeedUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "get_feed")
		}

		if items == nil {
			items = []*domain.FeedItem{}
		}

		return c.JSON(http.StatusOK, FeedResponse{Items: items})
	}
}

func handleSweep(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		deleted, err := container.SweepUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "sweep_expired")
		}

		return c.JSON(http.StatusOK, SweepResponse{Cleaned: true, Deleted: deleted})
	}
}
