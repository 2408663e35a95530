package main

import (
	"encoding/json"
	"errors"
	"flag"
	"io"
	"strings"

	"notes/internal/config"

	toml "github.com/pelletier/go-toml/v2"
)

type ConfigCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig configLoader
}

const (
	configFormatJSON = "json"
	configFormatTOML = "toml"
)

type configOutput struct {
	ConfigPath string                 `json:"config_path,omitempty" toml:"config_path,omitempty"`
	UILogPath  string                 `json:"ui_log_path,omitempty" toml:"ui_log_path,omitempty"`
	API        effectiveAPIConfig     `json:"api" toml:"api"`
	Logging    effectiveLoggingConfig `json:"logging" toml:"logging"`
	UI         effectiveUIConfig      `json:"ui" toml:"ui"`
}

type effectiveAPIConfig struct {
	BaseURL string `json:"base_url" toml:"base_url"`
	Timeout string `json:"timeout" toml:"timeout"`
}

type effectiveLoggingConfig struct {
	Level string `json:"level" toml:"level"`
}

type effectiveUIConfig struct {
	Theme          string `json:"theme" toml:"theme"`
	RenderMarkdown bool   `json:"render_markdown" toml:"render_markdown"`
	SidebarWidth   int    `json:"sidebar_width" toml:"sidebar_width"`
}

func NewConfigCommand(stdout, stderr io.Writer, loadConfig configLoader) *ConfigCommand {
	return &ConfigCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
	}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("default", false, "print default config values")
	format := fs.String("format", configFormatJSON, "output format: json|toml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resolvedFormat, err := resolveConfigFormat(*format)
	if err != nil {
		return err
	}
	cfg := config.Default()
	if !*defaults && c.loadConfig != nil {
		cfg, err = c.loadConfig()
		if err != nil {
			return err
		}
	}
	return writeConfigOutput(c.stdout, resolvedFormat, buildConfigOutput(cfg))
}

func buildConfigOutput(cfg config.Config) configOutput {
	out := configOutput{
		API: effectiveAPIConfig{
			BaseURL: cfg.APIBaseURL(),
			Timeout: cfg.APITimeout().String(),
		},
		Logging: effectiveLoggingConfig{
			Level: cfg.LogLevel(),
		},
		UI: effectiveUIConfig{
			Theme:          "light",
			RenderMarkdown: cfg.RenderMarkdown(),
			SidebarWidth:   cfg.SidebarWidth(),
		},
	}
	if cfg.DarkTheme() {
		out.UI.Theme = "dark"
	}
	if path, err := config.ConfigPath(); err == nil {
		out.ConfigPath = path
	}
	if path, err := config.UILogPath(); err == nil {
		out.UILogPath = path
	}
	return out
}

func writeConfigOutput(out io.Writer, format string, payload any) error {
	switch format {
	case configFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case configFormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	default:
		return errors.New("unsupported format")
	}
}

func resolveConfigFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", configFormatJSON:
		return configFormatJSON, nil
	case configFormatTOML:
		return configFormatTOML, nil
	default:
		return "", errors.New("invalid format: must be json or toml")
	}
}
