package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/seitarof/tado-env/internal/cli"
	"github.com/seitarof/tado-env/internal/extractor"
	"github.com/seitarof/tado-env/internal/fetcher"
	"github.com/seitarof/tado-env/internal/oauth"
	"github.com/seitarof/tado-env/internal/output"
	"github.com/seitarof/tado-env/internal/parser"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "tado-env/" + version
	}

	logger := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	slog.SetDefault(logger)

	httpClient := &http.Client{Timeout: cfg.Timeout}
	runner := cli.NewRunner(
		fetcher.New(httpClient, cfg.UserAgent),
		parser.New(),
		extractor.New(extractor.DefaultFields()...),
		oauth.NewFactory(httpClient),
		output.New(output.NewGoimportsFormatter(), output.NewFileWriter(), os.Stdout),
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runner.Run(ctx, cfg); err != nil {
		logger.Error("bootstrap failed", "error", err)
		stop()
		os.Exit(1)
	}
}
