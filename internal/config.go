package internal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the options of a run, usually read from aprn.yaml
type Config struct {
	LogLevel            string `yaml:"log_level"`
	LogFormat           string `yaml:"log_format"`
	Color               bool   `yaml:"color"`
	DumpTokens          bool   `yaml:"dump_tokens"`
	DumpAST             bool   `yaml:"dump_ast"`
	CollectSyntaxErrors bool   `yaml:"collect_syntax_errors"`
	MaxDepth            int    `yaml:"max_depth"`
}

var errInvalidConfig = errors.New("Invalid configuration")

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() Config {
	return Config{
		LogLevel:  "warning",
		LogFormat: "text",
		Color:     true,
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	file, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && err != io.EOF {
		return config, fmt.Errorf("%s: %w", path, err)
	}

	return config, config.Validate()
}

// Validate checks values that yaml cannot check by itself
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: unknown log format %q", errInvalidConfig, c.LogFormat)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must not be negative", errInvalidConfig)
	}
	return nil
}

// NewLogger builds the logger described by the configuration
func (c Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	level, _ := logrus.ParseLevel(c.LogLevel)

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: !c.Color,
		})
	}
	return logger, nil
}
