package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	// DefaultAPIBaseURL is the local development server.
	DefaultAPIBaseURL = "http://localhost:5000"
	APIURLEnvVar      = "NOTES_API_URL"

	defaultAPITimeout   = 10 * time.Second
	defaultSidebarWidth = 32
	minSidebarWidth     = 20
	maxSidebarWidth     = 60
)

type Config struct {
	API     APIConfig     `toml:"api"`
	Logging LoggingConfig `toml:"logging"`
	UI      UIConfig      `toml:"ui"`
}

type APIConfig struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

type UIConfig struct {
	Theme          string `toml:"theme"`
	RenderMarkdown *bool  `toml:"render_markdown"`
	SidebarWidth   int    `toml:"sidebar_width"`
}

func Default() Config {
	renderMarkdown := true
	return Config{
		API: APIConfig{
			BaseURL: DefaultAPIBaseURL,
			Timeout: defaultAPITimeout.String(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		UI: UIConfig{
			Theme:          "light",
			RenderMarkdown: &renderMarkdown,
			SidebarWidth:   defaultSidebarWidth,
		},
	}
}

// Load reads config.toml from the data dir and applies environment overrides.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	cfg, err := loadFromPath(path)
	if err != nil {
		return Config{}, err
	}
	cfg.applyEnv(os.Getenv)
	return cfg, nil
}

func loadFromPath(path string) (Config, error) {
	cfg := Default()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if raw := strings.TrimSpace(getenv(APIURLEnvVar)); raw != "" {
		c.API.BaseURL = raw
	}
}

// APIBaseURL returns the API base URL without a trailing slash. A value
// without a scheme is treated as http.
func (c Config) APIBaseURL() string {
	raw := strings.TrimSpace(c.API.BaseURL)
	if raw == "" {
		return DefaultAPIBaseURL
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	raw = strings.TrimRight(raw, "/")
	if _, err := url.Parse(raw); err != nil {
		return DefaultAPIBaseURL
	}
	return raw
}

func (c Config) APITimeout() time.Duration {
	raw := strings.TrimSpace(c.API.Timeout)
	if raw == "" {
		return defaultAPITimeout
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return defaultAPITimeout
	}
	return d
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return "info"
	}
	return strings.ToLower(level)
}

// DarkTheme reports whether the UI should start in the dark palette.
func (c Config) DarkTheme() bool {
	return strings.EqualFold(strings.TrimSpace(c.UI.Theme), "dark")
}

func (c Config) RenderMarkdown() bool {
	if c.UI.RenderMarkdown == nil {
		return true
	}
	return *c.UI.RenderMarkdown
}

func (c Config) SidebarWidth() int {
	width := c.UI.SidebarWidth
	if width <= 0 {
		return defaultSidebarWidth
	}
	return min(max(width, minSidebarWidth), maxSidebarWidth)
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}
