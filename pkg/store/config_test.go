package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfigFromFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	cfgFile := "path: " + data + "\nlog_level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, ".daybook.yaml"), []byte(cfgFile), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DAYBOOK_CONFIG_PATH", dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != data {
		t.Fatalf("expected path %s, got %s", data, cfg.BasePath())
	}
	if cfg.LogLevel() != "debug" {
		t.Fatalf("expected debug, got %s", cfg.LogLevel())
	}
}

func TestLoadConfigRejectsUnknownLevel(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("DAYBOOK_CONFIG_PATH", t.TempDir())
	t.Setenv("DAYBOOK_PATH", t.TempDir())
	t.Setenv("DAYBOOK_LOG_LEVEL", "chatty")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadConfigExpandsHome(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("DAYBOOK_CONFIG_PATH", t.TempDir())
	t.Setenv("DAYBOOK_PATH", "~/journal")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if filepath.Base(cfg.BasePath()) != "journal" || cfg.BasePath()[0] == '~' {
		t.Fatalf("expected expanded home path, got %s", cfg.BasePath())
	}
}
