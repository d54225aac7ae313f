package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/ded-grl/substancesearch/internal/catalog"
	"github.com/ded-grl/substancesearch/internal/leaderboard"
)

// App holds the process-wide services handlers need: the frozen lookup
// engine and the leaderboard service. The engine is fully built before the
// server starts and never mutated, so handlers read it without locking.
type App struct {
	Engine      *catalog.Engine
	Leaderboard *leaderboard.Service
}

// AppContext wraps the echo context with the application services.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware attaches the shared App to every request context.
func AppContextMiddleware(engine *catalog.Engine, board *leaderboard.Service) echo.MiddlewareFunc {
	app := &App{
		Engine:      engine,
		Leaderboard: board,
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{c, app})
		}
	}
}
