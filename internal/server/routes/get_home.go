package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ded-grl/substancesearch/internal/server/middleware"
)

func GetHomeHandler(c echo.Context) error {
	engine := c.(*middleware.AppContext).App.Engine

	return c.JSON(http.StatusOK, map[string]any{
		"categories":      engine.CategoryLabels(),
		"category_colors": engine.CategoryColors(),
		"theme":           fetchTheme(c),
	})
}
