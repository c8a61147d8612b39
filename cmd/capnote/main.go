package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/capnote/capnote/internal/buildinfo"
	"github.com/capnote/capnote/internal/client/cli"
	"github.com/capnote/capnote/internal/client/config"
	"github.com/capnote/capnote/internal/client/localstore"
	"github.com/capnote/capnote/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	// a missing .env is fine, env vars may come from the shell
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	logger := newLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}

func newLogger() logging.Logger {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	logger := logging.NewZerologLogger(zl)

	if local, err := localstore.Open(); err == nil {
		if id, err := local.ClientID(); err == nil {
			return logger.With("client_id", id)
		}
	}
	return logger
}
