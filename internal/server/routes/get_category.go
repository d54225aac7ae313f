package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ded-grl/substancesearch/internal/catalog"
	"github.com/ded-grl/substancesearch/internal/server/middleware"
)

func GetCategoryHandler(c echo.Context) error {
	slug := c.Param("slug")
	if ok, reason := catalog.ValidateIdentifier(slug); !ok {
		return c.String(http.StatusBadRequest, reason)
	}

	engine := c.(*middleware.AppContext).App.Engine
	label, substances, found := engine.LookupCategory(slug)
	if !found {
		return c.String(http.StatusNotFound, "Category not found")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"category_name": label,
		"substances":    substances,
		"theme":         fetchTheme(c),
	})
}
