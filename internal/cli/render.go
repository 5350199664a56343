package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/visnet/pkg/assets"
	"github.com/matzehuels/visnet/pkg/config"
	"github.com/matzehuels/visnet/pkg/graph"
	"github.com/matzehuels/visnet/pkg/network"
	"github.com/matzehuels/visnet/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output       string  // output HTML path
	heading      string  // page heading
	height       string  // canvas height (empty: config default)
	width        string  // canvas width (empty: config default)
	bgColor      string  // canvas background (empty: config default)
	fontColor    string  // label and heading color
	resources    string  // resource mode (empty: config default)
	hierarchical bool    // hierarchical layout
	selectMenu   bool    // node picker above the canvas
	filterMenu   bool    // label filter above the canvas
	highlight    bool    // neighborhood highlight on click
	buttons      bool    // physics configuration widget
	physics      bool    // physics simulation
	optionsFile  string  // raw vis-network options JSON file
	nodeSize     float64 // default node size for imported graphs
	edgeScaling  bool    // route edge weights to scaling values
	noCache      bool    // bypass the asset cache
}

// newRenderCmd creates the render command for generating HTML pages.
func newRenderCmd() *cobra.Command {
	var o renderOpts

	cmd := &cobra.Command{
		Use:   "render <graph.json>",
		Short: "Render a graph file as an interactive HTML page",
		Long: `Render reads a graph file (JSON with nodes, edges and a directed flag)
and writes a standalone HTML page. The page runs vis-network in the
browser for layout and physics.

The output name must end in .html. With --resources local (the default)
the vis-network files are placed in a lib/ directory next to the page.`,
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
			logger.Debug("network built", "nodes", net.NumNodes(), "edges", net.NumEdges())

			store, err := newCache(ctx, cfg, o.noCache)
			if err != nil {
				return err
			}
			defer store.Close()

			if o.noCache {
				printWarning("Asset cache disabled; downloads are not reused")
			}

			r := render.New(pageConfig(cfg, o), assets.NewFetcher(store, nil))

			prog := newProgress(logger)
			spin := newSpinnerWithContext(ctx, "Rendering "+o.output)
			spin.Start()
			err = r.WriteFile(ctx, net, o.output)
			spin.Stop()
			if err != nil {
				return err
			}

			prog.done(fmt.Sprintf("Rendered %d nodes, %d edges", net.NumNodes(), net.NumEdges()))
			printSuccess("Wrote %s", o.output)
			printFile(o.output)
			printStats(net.NumNodes(), net.NumEdges())
			printNextStep("Preview in browser", appName+" serve "+args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&o.output, "output", "o", "graph.html", "output HTML file")
	registerPageFlags(cmd, &o)
	cmd.Flags().StringVar(&o.optionsFile, "options", "", "raw vis-network options JSON file")
	cmd.Flags().Float64Var(&o.nodeSize, "node-size", 0, "default size for imported nodes")
	cmd.Flags().BoolVar(&o.edgeScaling, "edge-scaling", false, "map edge weights to scaling values instead of widths")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "bypass the asset cache")

	return cmd
}

// registerPageFlags wires the page appearance flags shared by render and
// serve.
func registerPageFlags(cmd *cobra.Command, o *renderOpts) {
	cmd.Flags().StringVar(&o.heading, "heading", "", "page heading")
	cmd.Flags().StringVar(&o.height, "height", "", "canvas height (default from config)")
	cmd.Flags().StringVar(&o.width, "width", "", "canvas width (default from config)")
	cmd.Flags().StringVar(&o.bgColor, "bgcolor", "", "canvas background color (default from config)")
	cmd.Flags().StringVar(&o.fontColor, "font-color", "", "node label color")
	cmd.Flags().StringVar(&o.resources, "resources", "", "resource mode: local, in_line or remote (default from config)")
	cmd.Flags().BoolVar(&o.hierarchical, "hierarchical", false, "use hierarchical layout")
	cmd.Flags().BoolVar(&o.selectMenu, "select-menu", false, "add a node picker to the page")
	cmd.Flags().BoolVar(&o.filterMenu, "filter-menu", false, "add a label filter to the page")
	cmd.Flags().BoolVar(&o.highlight, "highlight", false, "highlight the clicked node's neighborhood")
	cmd.Flags().BoolVar(&o.buttons, "buttons", false, "show the physics configuration widget")
	cmd.Flags().BoolVar(&o.physics, "physics", true, "enable the physics simulation")
}

// buildNetwork loads a graph file and assembles the network with the
// requested layout and options.
func buildNetwork(path string, o renderOpts) (*network.Network, error) {
	g, err := graph.ReadFile(path)
	if err != nil {
		return nil, err
	}

	net := network.NewWithLayout(g.Directed, o.hierarchical)
	if o.fontColor != "" {
		net.SetFontColor(o.fontColor)
	}

	if err := net.FromGraph(g, network.ImportOptions{
		DefaultNodeSize: o.nodeSize,
		EdgeScaling:     o.edgeScaling,
	}); err != nil {
		return nil, err
	}

	if !o.physics {
		net.TogglePhysics(false)
	}
	if o.buttons {
		net.ShowButtons(true)
	}
	if o.optionsFile != "" {
		raw, err := os.ReadFile(o.optionsFile)
		if err != nil {
			return nil, err
		}
		if err := net.SetOptions(string(raw)); err != nil {
			return nil, err
		}
	}
	return net, nil
}

// pageConfig layers flag values over the loaded config.
func pageConfig(cfg config.Config, o renderOpts) render.Config {
	pc := render.Config{
		Heading:               o.heading,
		Height:                cfg.Height,
		Width:                 cfg.Width,
		BgColor:               cfg.BgColor,
		FontColor:             cfg.FontColor,
		Resources:             cfg.Resources,
		SelectMenu:            o.selectMenu,
		FilterMenu:            o.filterMenu,
		NeighborhoodHighlight: o.highlight,
	}
	if o.height != "" {
		pc.Height = o.height
	}
	if o.width != "" {
		pc.Width = o.width
	}
	if o.bgColor != "" {
		pc.BgColor = o.bgColor
	}
	if o.fontColor != "" {
		pc.FontColor = o.fontColor
	}
	if o.resources != "" {
		pc.Resources = o.resources
	}
	return pc
}
