package render

import (
	"context"

	"github.com/google/uuid"

	"github.com/matzehuels/visnet/pkg/assets"
	"github.com/matzehuels/visnet/pkg/errors"
)

// Config controls the look of generated pages.
type Config struct {
	// Height and Width size the canvas element, in any CSS unit.
	Height string
	Width  string

	// Heading is an optional page title rendered above the canvas.
	Heading string

	// BgColor fills the canvas background; FontColor, when set, is applied
	// to node labels at add time by the network layer and to the heading.
	BgColor   string
	FontColor string

	// Resources selects how the vis-network bundle reaches the page:
	// "remote" (CDN tags), "local" (files in ./lib next to the page) or
	// "in_line" (embedded into the document).
	Resources string

	// SelectMenu adds a node picker above the canvas.
	SelectMenu bool

	// FilterMenu adds an attribute filter above the canvas.
	FilterMenu bool

	// NeighborhoodHighlight dims everything but the clicked node and its
	// neighbors.
	NeighborhoodHighlight bool
}

// DefaultConfig returns the standard page configuration: a 600px tall,
// full-width canvas on a white background with local resources.
func DefaultConfig() Config {
	return Config{
		Height:    "600px",
		Width:     "100%",
		BgColor:   "#ffffff",
		Resources: errors.ResourcesLocal,
	}
}

// Renderer generates HTML documents from networks.
type Renderer struct {
	cfg     Config
	fetcher *assets.Fetcher
}

// New creates a Renderer. A nil fetcher gets a default one without
// caching; pass a configured fetcher to share a cache across renders.
func New(cfg Config, fetcher *assets.Fetcher) *Renderer {
	if fetcher == nil {
		fetcher = assets.NewFetcher(nil, nil)
	}
	return &Renderer{cfg: cfg, fetcher: fetcher}
}

// Config returns the renderer's page configuration.
func (r *Renderer) Config() Config { return r.cfg }

// validate checks the configuration before any work happens.
func (r *Renderer) validate() error {
	return errors.ValidateResourceMode(r.cfg.Resources)
}

// containerID returns a fresh element id for the canvas div so multiple
// documents can coexist on one page.
func containerID() string {
	return "visnet-" + uuid.NewString()
}

// bundle fetches the asset bundle when the resource mode needs it inline.
func (r *Renderer) bundle(ctx context.Context) (*assets.Bundle, error) {
	return r.fetcher.FetchBundle(ctx)
}
