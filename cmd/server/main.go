package main

import (
	"github.com/ded-grl/substancesearch/internal/server"
	"github.com/ded-grl/substancesearch/internal/util"
	"github.com/ded-grl/substancesearch/pkg/logger"
	"github.com/ded-grl/substancesearch/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
