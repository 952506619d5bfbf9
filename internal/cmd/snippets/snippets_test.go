package snippets

import (
	"context"
	"flag"
	"strings"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("snippets", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8095" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8095")
	}
	if cfg.AssetBaseURL != "" {
		t.Fatalf("AssetBaseURL = %q, want empty", cfg.AssetBaseURL)
	}
	if cfg.PageTitle != "Snippet Pad" {
		t.Fatalf("PageTitle = %q, want %q", cfg.PageTitle, "Snippet Pad")
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("SNIPPETPAD_SNIPPETS_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("SNIPPETPAD_SNIPPETS_PAGE_TITLE", "Playground")

	fs := flag.NewFlagSet("snippets", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:9000")
	}
	if cfg.PageTitle != "Playground" {
		t.Fatalf("PageTitle = %q, want %q", cfg.PageTitle, "Playground")
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("SNIPPETPAD_SNIPPETS_HTTP_ADDR", "0.0.0.0:9000")

	fs := flag.NewFlagSet("snippets", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002", "-asset-base-url", "https://cdn.example.com/pad"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
	if cfg.AssetBaseURL != "https://cdn.example.com/pad" {
		t.Fatalf("AssetBaseURL = %q, want %q", cfg.AssetBaseURL, "https://cdn.example.com/pad")
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("snippets", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	if _, err := ParseConfig(fs, []string{"-game-addr", "x"}); err == nil {
		t.Fatal("expected unknown flag error")
	}
}

func TestRunRejectsInvalidAddress(t *testing.T) {
	t.Setenv("SNIPPETPAD_OTEL_ENDPOINT", "")

	err := Run(context.Background(), Config{HTTPAddr: ""})
	if err == nil || !strings.Contains(err.Error(), "init snippets server") {
		t.Fatalf("Run() error = %v, want init failure", err)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	t.Setenv("SNIPPETPAD_OTEL_ENDPOINT", "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Config{HTTPAddr: "127.0.0.1:0"})
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
