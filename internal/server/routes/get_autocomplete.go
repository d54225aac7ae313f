package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/ded-grl/substancesearch/internal/catalog"
	"github.com/ded-grl/substancesearch/internal/server/middleware"
)

func GetAutocompleteHandler(c echo.Context) error {
	type autocompleteParams struct {
		Query string `query:"query"`
		Limit int    `query:"limit" validate:"omitempty,min=1,max=50"`
	}

	params := new(autocompleteParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request params"})
	}
	if params.Limit == 0 {
		params.Limit = catalog.DefaultResultLimit
	}

	engine := c.(*middleware.AppContext).App.Engine
	results := engine.Autocomplete(params.Query, params.Limit)

	return c.JSON(http.StatusOK, results)
}
