// Package cli implements the visnet command-line interface.
//
// This package provides commands for rendering graph files as interactive
// HTML pages, previewing them over HTTP, exporting DOT, and managing the
// asset cache. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Generate an interactive HTML page from a graph file
//   - serve: Render and preview a graph over HTTP
//   - dot: Export a graph as Graphviz DOT or a static SVG
//   - cache: Manage the downloaded asset cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/visnet/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/matzehuels/visnet/pkg/cache"
	"github.com/matzehuels/visnet/pkg/config"
)

// appName is the application name used for directories and display.
const appName = "visnet"

// cacheDir returns the cache directory using XDG standard (~/.cache/visnet/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// newCache builds the asset cache selected by the config. Backend "none"
// or a failure to resolve the cache directory degrades to a null cache
// rather than failing the command.
func newCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache || cfg.Cache.Backend == "none" {
		return cache.NewNullCache(), nil
	}

	if cfg.Cache.Backend == "redis" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
	}

	dir := cfg.Cache.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	return cache.NewFileCache(dir)
}
