package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"notes/internal/app"
	"notes/internal/config"
	"notes/internal/logging"
	"notes/internal/session"
)

type UICommand struct {
	env                commandEnv
	runUI              uiRunner
	configureUILogging func() io.Writer
}

func NewUICommand(env commandEnv, runUI uiRunner, configureUILogging func() io.Writer) *UICommand {
	return &UICommand{
		env:                env,
		runUI:              runUI,
		configureUILogging: configureUILogging,
	}
}

func (c *UICommand) Run(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(c.env.stderr)
	dark := fs.Bool("dark", false, "start with the dark theme")
	plain := fs.Bool("plain", false, "show note content without markdown rendering")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := c.env.config()
	if err != nil {
		return err
	}
	logger := logging.Nop()
	if c.configureUILogging != nil {
		if out := c.configureUILogging(); out != nil {
			logger = logging.New(out, logging.ParseLevel(cfg.LogLevel()))
		}
	}
	api, err := c.env.newAPI(cfg, logger)
	if err != nil {
		return err
	}

	theme := session.ThemeLight
	if *dark || cfg.DarkTheme() {
		theme = session.ThemeDark
	}
	opts := app.Options{
		Theme:          theme,
		RenderMarkdown: cfg.RenderMarkdown() && !*plain,
		SidebarWidth:   cfg.SidebarWidth(),
		BaseURL:        cfg.APIBaseURL(),
		Logger:         logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info("ui starting", logging.F("base_url", opts.BaseURL), logging.F("theme", opts.Theme))
	return c.runUI(ctx, api, opts)
}

// configureUILogging opens the ui log for appending. The terminal belongs to
// the UI, so a failure here just means no logs.
func configureUILogging() io.Writer {
	logPath, err := config.UILogPath()
	if err != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
		return nil
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil
	}
	return file
}
