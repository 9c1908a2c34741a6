// Package main is the entry point for the camp service.
//
// @title           Camp Service API
// @version         1.0.0
// @description     Back office API for planning diagnostic health camps and estimating their cost.
//
//	Companies, camps, package selections and test plans are priced into quotes,
//	cost sheets and billed summaries.
//
// @contact.name   API Support
// @contact.email  support@u4rad.com
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Access token as "Bearer <token>". Required when authentication is enabled.
//
// @tag.name        Companies
// @tag.description Client companies and their camps
//
// @tag.name        Selection
// @tag.description Package selection per company
//
// @tag.name        Costs
// @tag.description Per service cost details and package cost sheets
//
// @tag.name        Estimations
// @tag.description Quotes and estimate PDFs
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/u4rad/camp-service/docs" // swagger docs

	"github.com/rs/zerolog/log"
	"github.com/u4rad/camp-service/config"
	"github.com/u4rad/camp-service/internal/app"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.InitializeApp(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	if err := application.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
