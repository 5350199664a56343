package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/visnet/pkg/errors"
	"github.com/matzehuels/visnet/pkg/graph"
	"github.com/matzehuels/visnet/pkg/network"
	"github.com/matzehuels/visnet/pkg/render"
)

// newDotCmd creates the dot command for Graphviz export.
func newDotCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dot <graph.json>",
		Short: "Export a graph as Graphviz DOT or a static SVG",
		Long: `Dot converts a graph file to Graphviz DOT format. With a .svg output
name the DOT is rendered to a static image via Graphviz; with .dot the
text is written as-is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			g, err := graph.ReadFile(args[0])
			if err != nil {
				return err
			}
			net := network.New(g.Directed)
			if err := net.FromGraph(g, network.ImportOptions{}); err != nil {
				return err
			}

			dot := render.ToDOT(net)

			var data []byte
			switch strings.ToLower(filepath.Ext(output)) {
			case ".dot", ".gv":
				data = []byte(dot)
			case ".svg":
				prog := newProgress(logger)
				data, err = render.RenderSVG(ctx, dot)
				if err != nil {
					return err
				}
				prog.done("Rendered SVG")
			default:
				return errors.New(errors.ErrCodeInvalidExtension,
					"output %q must end in .dot, .gv or .svg", output)
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}

			printSuccess("Wrote %s", output)
			printFile(output)
			printStats(net.NumNodes(), net.NumEdges())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "graph.dot", "output file (.dot, .gv or .svg)")

	return cmd
}
