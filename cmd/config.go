package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tebeka/atexit"
	"gopkg.in/yaml.v3"

	"github.com/jesperkha/exprc/exprc"
)

type Config struct {
	Prompt          string `yaml:"prompt"`
	LogLevel        string `yaml:"log_level"`  // debug, info, warn or error
	LogFormat       string `yaml:"log_format"` // text or json
	LogFile         string `yaml:"log_file"`   // Stderr if empty
	TruncateNumbers bool   `yaml:"truncate_numbers"`
	ShowTokens      bool   `yaml:"show_tokens"`
	ShowAst         bool   `yaml:"show_ast"`
	Workers         int    `yaml:"workers"`
}

func defaultConfig() Config {
	return Config{
		Prompt:    ">>> ",
		LogLevel:  "warn",
		LogFormat: "text",
		Workers:   1,
	}
}

// loadConfig reads the yaml config at path over the defaults. An empty path
// gives the defaults. Unknown keys are an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return level, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// newLogger builds the logger described by c, writing to w unless a log file
// is configured. The log file is closed on exit.
func newLogger(c Config, w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}

		atexit.Register(func() { f.Close() })
		w = f
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func (c Config) options(logger *slog.Logger) []exprc.Option {
	opts := []exprc.Option{
		exprc.WithLogger(logger),
		exprc.WithWorkers(c.Workers),
	}

	if c.TruncateNumbers {
		opts = append(opts, exprc.WithTruncateNumbers())
	}

	return opts
}
