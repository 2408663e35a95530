package main

import (
	"context"
	"io"

	"notes/internal/app"
	"notes/internal/client"
	"notes/internal/config"
	"notes/internal/logging"
	"notes/internal/session"
)

type configLoader func() (config.Config, error)

type apiFactory func(cfg config.Config, logger logging.Logger) (session.NotesAPI, error)

type uiRunner func(ctx context.Context, api session.NotesAPI, opts app.Options) error

func loadConfig() (config.Config, error) {
	return config.Load()
}

func newNotesAPI(cfg config.Config, logger logging.Logger) (session.NotesAPI, error) {
	return client.NewFromConfig(cfg, logger), nil
}

func runUI(ctx context.Context, api session.NotesAPI, opts app.Options) error {
	return app.Run(ctx, api, opts)
}

// commandEnv is what every note command needs to reach the API through a
// session controller.
type commandEnv struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	loadConfig configLoader
	newAPI     apiFactory
}

func (e commandEnv) config() (config.Config, error) {
	if e.loadConfig == nil {
		return config.Default(), nil
	}
	return e.loadConfig()
}

// controller loads config and returns a controller wired to a fresh client.
// Logs go to stderr; only warnings and up unless verbose.
func (e commandEnv) controller(verbose bool, opts ...session.Option) (*session.Controller, error) {
	cfg, err := e.config()
	if err != nil {
		return nil, err
	}
	logger := commandLogger(e.stderr, cfg, verbose)
	api, err := e.newAPI(cfg, logger)
	if err != nil {
		return nil, err
	}
	opts = append([]session.Option{session.WithLogger(logger)}, opts...)
	return session.New(api, opts...), nil
}

func commandLogger(stderr io.Writer, cfg config.Config, verbose bool) logging.Logger {
	if verbose {
		return logging.New(stderr, logging.Debug)
	}
	level := logging.ParseLevel(cfg.LogLevel())
	if level < logging.Warn {
		level = logging.Warn
	}
	return logging.New(stderr, level)
}
