package rest

import (
	"errors"
	"net/http"

	"hud/di"
	"hud/domain"
	"hud/usecase/bookmark_usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func registerBookmarkRoutes(v1 *echo.Group, container *di.ApplicationComponents, authRequired echo.MiddlewareFunc) {
	bookmarks := v1.Group("/bookmarks", authRequired)

	bookmarks.GET("", handleListBookmarks(container))
	bookmarks.POST("", handleCreateBookmark(container))
	bookmarks.DELETE("", handleDeleteBookmark(container))
}

func handleListBookmarks(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := domain.GetUserFromContext(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Status: "error", Message: "unauthorized"})
		}

		items, err := container.BookmarkUsecase.List(c.Request().Context(), user.UserID)
		if err != nil {
			return handleError(c, err, "list_bookmarks")
		}

		if items == nil {
			items = []*bookmark_usecase.BookmarkedItem{}
		}

		return c.JSON(http.StatusOK, BookmarkListResponse{Bookmarks: items})
	}
}

func handleCreateBookmark(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := domain.GetUserFromContext(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Status: "error", Message: "unauthorized"})
		}

		itemID, err := bindItemID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Status: "error", Message: err.Error()})
		}

		bookmark, err := container.BookmarkUsecase.Create(c.Request().Context(), user.UserID, itemID)
		if err != nil {
			return handleError(c, err, "create_bookmark")
		}

		return c.JSON(http.StatusOK, map[string]any{"success": true, "bookmark": bookmark})
	}
}

func handleDeleteBookmark(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := domain.GetUserFromContext(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Status: "error", Message: "unauthorized"})
		}

		itemID, err := bindItemID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Status: "error", Message: err.Error()})
		}

		if err := container.BookmarkUsecase.Delete(c.Request().Context(), user.UserID, itemID); err != nil {
			if errors.Is(err, domain.ErrBookmarkNotFound) {
				return c.JSON(http.StatusNotFound, ErrorResponse{Status: "error", Message: "bookmark not found"})
			}
			return handleError(c, err, "delete_bookmark")
		}

		return c.JSON(http.StatusOK, map[string]any{"success": true})
	}
}

func bindItemID(c echo.Context) (uuid.UUID, error) {
	var req BookmarkRequest
	if err := c.Bind(&req); err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(req.ItemID)
}
