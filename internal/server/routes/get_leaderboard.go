package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ded-grl/substancesearch/internal/server/middleware"
)

func GetLeaderboardHandler(c echo.Context) error {
	board := c.(*middleware.AppContext).App.Leaderboard

	rows, err := board.Rows(c.Request().Context())
	if err != nil {
		return c.String(http.StatusInternalServerError, "Failed to load leaderboard")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"leaderboard": rows,
		"theme":       fetchTheme(c),
	})
}
