package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/docbridge/docbridge/internal/app"
	"github.com/docbridge/docbridge/internal/cli"
	"github.com/docbridge/docbridge/internal/config"
	"github.com/docbridge/docbridge/internal/hcladapter"
	"github.com/docbridge/docbridge/internal/yamladapter"
)

// main is the entrypoint for the docbridge application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Pick up DOCBRIDGE_* settings from a local .env, if present.
	_ = godotenv.Load()

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here to provide
	// a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	var loader config.Loader
	if appConfig.Format == "yaml" {
		loader = yamladapter.NewLoader()
	} else {
		loader = hcladapter.NewLoader()
	}

	bridge := app.NewApp(outW, appConfig, loader)
	return bridge.Run(context.Background())
}
