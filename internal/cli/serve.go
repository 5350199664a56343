package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/visnet/pkg/assets"
	"github.com/matzehuels/visnet/pkg/config"
	visneterrors "github.com/matzehuels/visnet/pkg/errors"
	"github.com/matzehuels/visnet/pkg/render"
)

// newServeCmd creates the serve command for previewing a graph over HTTP.
func newServeCmd() *cobra.Command {
	var o renderOpts
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <graph.json>",
		Short: "Render a graph and preview it over HTTP",
		Long: `Serve renders the graph with inlined resources and serves the page on a
local HTTP server. The server runs until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			net, err := buildNetwork(args[0], o)
			if err != nil {
				return err
			}

			store, err := newCache(ctx, cfg, o.noCache)
			if err != nil {
				return err
			}
			defer store.Close()

			// The page must be self-contained over HTTP.
			pc := pageConfig(cfg, o)
			pc.Resources = visneterrors.ResourcesInline

			spin := newSpinnerWithContext(ctx, "Rendering page")
			spin.Start()
			doc, err := render.New(pc, assets.NewFetcher(store, nil)).GenerateHTML(ctx, net)
			spin.Stop()
			if err != nil {
				return err
			}

			return servePage(ctx, logger, addr, doc)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	registerPageFlags(cmd, &o)
	cmd.Flags().StringVar(&o.optionsFile, "options", "", "raw vis-network options JSON file")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "bypass the asset cache")

	return cmd
}

// servePage serves doc until ctx is cancelled.
func servePage(ctx context.Context, logger *charmlog.Logger, addr, doc string) error {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(requestLogger(logger))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(doc))
	})

	srv := &http.Server{Addr: addr, Handler: router}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	printSuccess("Serving on http://%s", addr)
	printDetail("Press Ctrl+C to stop")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requestLogger logs each request with method, path, and duration.
func requestLogger(logger *charmlog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start).Round(time.Microsecond))
		})
	}
}
