// Package snippets parses snippets service flags and launches the service.
package snippets

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/snippetpad/internal/platform/cmd"
	"github.com/louisbranch/snippetpad/internal/services/snippets"
)

// Config holds snippets command configuration.
type Config struct {
	HTTPAddr     string `env:"SNIPPETPAD_SNIPPETS_HTTP_ADDR" envDefault:"localhost:8095"`
	AssetBaseURL string `env:"SNIPPETPAD_SNIPPETS_ASSET_BASE_URL"`
	PageTitle    string `env:"SNIPPETPAD_SNIPPETS_PAGE_TITLE" envDefault:"Snippet Pad"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "Base URL for editor assets (default: embedded /static)")
	fs.StringVar(&cfg.PageTitle, "page-title", cfg.PageTitle, "Document title of the snippet page")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the snippets HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSnippets, func(ctx context.Context) error {
		server, err := snippets.NewServer(ctx, snippets.Config{
			HTTPAddr:     cfg.HTTPAddr,
			AssetBaseURL: cfg.AssetBaseURL,
			PageTitle:    cfg.PageTitle,
		})
		if err != nil {
			return fmt.Errorf("init snippets server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve snippets: %w", err)
		}
		return nil
	})
}
