package internal

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aprn.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
log_format: json
color: false
dump_tokens: true
dump_ast: true
collect_syntax_errors: true
max_depth: 64
`)
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	expected := Config{
		LogLevel:            "debug",
		LogFormat:           "json",
		Color:               false,
		DumpTokens:          true,
		DumpAST:             true,
		CollectSyntaxErrors: true,
		MaxDepth:            64,
	}
	if config != expected {
		t.Errorf("Expected %+v, found %+v", expected, config)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if config != DefaultConfig() {
		t.Errorf("An empty file should give the defaults, found %+v", config)
	}

	config, err = LoadConfig(writeConfig(t, "max_depth: 10\n"))
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if config.LogLevel != "warning" || !config.Color || config.MaxDepth != 10 {
		t.Errorf("Missing fields should keep their defaults, found %+v", config)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a not exist error, found %v", err)
	}

	_, err = LoadConfig(writeConfig(t, "log_levle: debug\n"))
	if err == nil || !strings.Contains(err.Error(), "log_levle") {
		t.Errorf("Unknown fields should be rejected, found %v", err)
	}

	_, err = LoadConfig(writeConfig(t, "log_level: loud\n"))
	if !errors.Is(err, errInvalidConfig) {
		t.Errorf("Expected %v, found %v", errInvalidConfig, err)
	}

	_, err = LoadConfig(writeConfig(t, "log_format: xml\n"))
	if !errors.Is(err, errInvalidConfig) {
		t.Errorf("Expected %v, found %v", errInvalidConfig, err)
	}

	_, err = LoadConfig(writeConfig(t, "max_depth: -1\n"))
	if !errors.Is(err, errInvalidConfig) {
		t.Errorf("Expected %v, found %v", errInvalidConfig, err)
	}
}

func TestNewLogger(t *testing.T) {
	config := DefaultConfig()
	config.LogLevel = "info"
	config.LogFormat = "json"

	out := &bytes.Buffer{}
	logger, err := config.NewLogger(out)
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level, found %s", logger.GetLevel())
	}
	logger.WithField("stage", "Scan").Info("hello")
	if !strings.Contains(out.String(), `"stage":"Scan"`) || !strings.Contains(out.String(), `"msg":"hello"`) {
		t.Errorf("Expected a JSON entry, found %s", out.String())
	}

	config.LogLevel = "nope"
	if _, err := config.NewLogger(out); !errors.Is(err, errInvalidConfig) {
		t.Errorf("Expected %v, found %v", errInvalidConfig, err)
	}
}
