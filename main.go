package main

import (
	"os"

	"github.com/envelope-zero/expense-parser/internal/config"
	"github.com/envelope-zero/expense-parser/internal/controllers/healthz"
	"github.com/envelope-zero/expense-parser/internal/controllers/process"
	"github.com/envelope-zero/expense-parser/internal/expense"
	"github.com/envelope-zero/expense-parser/internal/logging"
	"github.com/envelope-zero/expense-parser/internal/router"
	"github.com/envelope-zero/expense-parser/internal/textclf"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//	@title			Expense Parser
//	@description	Parses free text descriptions of purchases into item, amount and spending category.
//	@license.name	AGPL-3.0-or-later
//	@license.url	https://www.gnu.org/licenses/agpl-3.0.en.html
//	@BasePath		/
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	level := zerolog.InfoLevel
	if gin.IsDebugging() {
		level = zerolog.DebugLevel
	}
	logging.Configure(os.Stdout, cfg.LogFormat, level, gin.IsDebugging())

	// The model is loaded once, the server never starts without it
	pipeline, err := textclf.LoadFile(cfg.ModelPath)
	if err != nil {
		log.Fatal().Str("path", cfg.ModelPath).Msgf("could not load the model, train it with 'expensectl train' first: %s", err)
	}
	log.Info().Str("path", cfg.ModelPath).Strs("categories", pipeline.Classes()).Msg("model loaded")

	url, err := cfg.BaseURL()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(url)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(router.Controllers{
		Process: process.NewController(expense.NewParser(pipeline)),
		Healthz: healthz.NewController(func() error { return nil }),
	}, r.Group(url.Path))

	log.Info().Str("address", cfg.Address()).Msg("starting server")
	if err := r.Run(cfg.Address()); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
