package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port  int    `env:"SNIPPETPAD_TEST_PORT" envDefault:"123"`
	Title string `env:"SNIPPETPAD_TEST_TITLE" envDefault:"Snippet Pad"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Title != "Snippet Pad" {
		t.Fatalf("expected default title, got %q", cfg.Title)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("SNIPPETPAD_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
