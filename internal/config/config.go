// Package config provides shared configuration constants and settings
// for the mod downloader application
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// Version is reported in the default User-Agent header
	Version = "0.2.0"

	// DefaultConfigFile is read from the working directory when no --config flag is provided
	DefaultConfigFile = "mdl.yaml"

	// ConfigFileDescription is the help text description for the config file flag
	ConfigFileDescription = "Path to YAML config file (default mdl.yaml if present)"

	// DefaultBaseURL is the site that is searched and downloaded from
	DefaultBaseURL = "https://minecraft.curseforge.com"

	// DefaultUserAgent identifies the client to the site
	DefaultUserAgent = "mdl/" + Version

	// DefaultDownloadDirectory is where downloaded files are written
	DefaultDownloadDirectory = "."

	// DefaultMaxRedirects bounds the redirect hops followed by a single download
	DefaultMaxRedirects = 10

	// DefaultLogLevel keeps the interactive output free of routine log lines
	DefaultLogLevel = "warn"

	// OutputDescription is the help text description for the download output flag
	OutputDescription = "Local file name (default: the file's display name)"
)

type Config struct {
	Site     Site     `yaml:"site"`
	Download Download `yaml:"download"`
	Log      Log      `yaml:"log"`
}

type Site struct {
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
}

type Download struct {
	Directory    string `yaml:"directory"`
	MaxRedirects int    `yaml:"max_redirects"`
}

type Log struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	Filename   string `yaml:"filename"`    // log file path, stderr when empty
	MaxSize    int    `yaml:"max_size"`    // megabytes
	MaxBackups int    `yaml:"max_backups"` // number of backups
	MaxAge     int    `yaml:"max_age"`     // days
	Compress   bool   `yaml:"compress"`    // compress rotated files
}

// Default returns the configuration used when no config file is present
func Default() *Config {
	return &Config{
		Site: Site{
			BaseURL:   DefaultBaseURL,
			UserAgent: DefaultUserAgent,
		},
		Download: Download{
			Directory:    DefaultDownloadDirectory,
			MaxRedirects: DefaultMaxRedirects,
		},
		Log: Log{
			Level:      DefaultLogLevel,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Load loads the configuration from path. An empty path reads DefaultConfigFile
// if it exists and falls back to defaults otherwise; an explicit path must exist.
// Fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be corrected silently
func (c *Config) Validate() error {
	u, err := url.Parse(c.Site.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("site.base_url must be an absolute http(s) URL, got %q", c.Site.BaseURL)
	}

	if c.Download.MaxRedirects < 0 {
		return fmt.Errorf("download.max_redirects must not be negative, got %d", c.Download.MaxRedirects)
	}
	if c.Download.Directory == "" {
		c.Download.Directory = DefaultDownloadDirectory
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	case "":
		c.Log.Level = DefaultLogLevel
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	return nil
}
