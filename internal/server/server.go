package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ded-grl/substancesearch/internal/catalog"
	"github.com/ded-grl/substancesearch/internal/leaderboard"
	mid "github.com/ded-grl/substancesearch/internal/server/middleware"
	"github.com/ded-grl/substancesearch/internal/util"
	"github.com/ded-grl/substancesearch/pkg/logger"
)

const defaultContributorsURL = "https://api.github.com/repos/ded-grl/SubstanceSearch/contributors"

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The engine must be fully built before the first request is served;
	// handlers read it without locking afterwards.
	datasetPath := util.GetEnvString("SUBSTANCE_DATA", "data/substances.json")
	cat, err := catalog.LoadFile(datasetPath)
	if err != nil {
		logger.Fatal("Failed to load substance dataset", "path", datasetPath, "err", err)
	}
	engine := catalog.NewEngine(cat)
	logger.Info("Built substance index", "substances", cat.Len())

	board := leaderboard.NewService(leaderboard.ServiceParams{
		APIURL:       util.GetEnvString("CONTRIBUTORS_API_URL", defaultContributorsURL),
		AuthToken:    util.GetEnv("GITHUB_AUTH_TOKEN"),
		FallbackPath: util.GetEnvString("LEADERBOARD_CSV", "data/leaderboard.csv"),
	})

	e.Use(mid.AppContextMiddleware(engine, board))
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e)

	go func() {
		port := util.GetEnv("PORT")
		if port == "" {
			port = "8080"
		}
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
