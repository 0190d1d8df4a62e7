package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-contacts-book/internal/adapter"
	"github.com/MKhiriev/go-contacts-book/internal/logger"
	"github.com/MKhiriev/go-contacts-book/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "build-info" {
		fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	log := logger.NewClientLogger("contacts-client")

	cfg, err := loadClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.ServerAddress, cfg.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	tokens := tokenStore{path: cfg.TokenFile}
	pair, err := tokens.load()
	if err != nil {
		log.Warn().Err(err).Msg("stored tokens ignored")
	}
	serverAdapter.SetTokens(pair)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := run(ctx, serverAdapter, os.Args[1:], os.Stdout)

	if current := serverAdapter.Tokens(); current != pair {
		if err = tokens.save(current); err != nil {
			log.Err(err).Msg("saving tokens failed")
		}
	}

	if runErr != nil {
		log.Err(runErr).Str("command", commandName(os.Args[1:])).Msg("command failed")
		if !errors.Is(runErr, ErrUnknownCommand) {
			fmt.Fprintln(os.Stderr, "error:", runErr)
		}
		stop()
		os.Exit(1)
	}
}
