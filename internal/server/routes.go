package server

import (
	"github.com/labstack/echo/v4"

	"github.com/ded-grl/substancesearch/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.GET("/", routes.GetHomeHandler)
	e.GET("/autocomplete", routes.GetAutocompleteHandler)
	e.GET("/substance/:slug", routes.GetSubstanceHandler)
	e.GET("/category/:slug", routes.GetCategoryHandler)
	e.GET("/leaderboard", routes.GetLeaderboardHandler)
}
