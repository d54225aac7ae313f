package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ded-grl/substancesearch/internal/catalog"
	"github.com/ded-grl/substancesearch/internal/server/middleware"
)

func GetSubstanceHandler(c echo.Context) error {
	slug := c.Param("slug")
	if ok, reason := catalog.ValidateIdentifier(slug); !ok {
		return c.String(http.StatusBadRequest, reason)
	}

	engine := c.(*middleware.AppContext).App.Engine
	substance, found := engine.LookupSubstance(slug)
	if !found {
		return c.String(http.StatusNotFound, "Substance not found")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"substance": substance,
		"theme":     fetchTheme(c),
	})
}
