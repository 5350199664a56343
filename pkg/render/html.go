package render

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/matzehuels/visnet/pkg/assets"
	"github.com/matzehuels/visnet/pkg/errors"
	"github.com/matzehuels/visnet/pkg/network"
)

//go:embed template.html
var pageTemplate string

var page = template.Must(template.New("page").Parse(pageTemplate))

// pageContext is the data handed to the page template.
type pageContext struct {
	Heading     string
	Height      string
	Width       string
	BgColor     string
	FontColor   string
	ContainerID string
	HeadTags    template.HTML

	UseDOT  bool
	DOT     template.JS
	Nodes   template.JS
	Edges   template.JS
	Options template.JS

	Widget         bool
	TooltipLink    bool
	PhysicsEnabled bool

	SelectMenu            bool
	FilterMenu            bool
	NeighborhoodHighlight bool
}

// GenerateHTML renders net into a complete HTML document. The inline
// resource mode downloads the vis-network bundle, so ctx bounds network
// I/O; remote and local modes never touch the network here.
func (r *Renderer) GenerateHTML(ctx context.Context, net *network.Network) (string, error) {
	if err := r.validate(); err != nil {
		return "", err
	}

	head, err := r.headTags(ctx)
	if err != nil {
		return "", err
	}

	pc := pageContext{
		Heading:               r.cfg.Heading,
		Height:                r.cfg.Height,
		Width:                 r.cfg.Width,
		BgColor:               r.cfg.BgColor,
		FontColor:             r.cfg.FontColor,
		ContainerID:           containerID(),
		HeadTags:              head,
		Widget:                net.Widget(),
		TooltipLink:           hasLinkTooltips(net),
		PhysicsEnabled:        net.Options().PhysicsEnabled(),
		SelectMenu:            r.cfg.SelectMenu,
		FilterMenu:            r.cfg.FilterMenu,
		NeighborhoodHighlight: r.cfg.NeighborhoodHighlight,
	}

	if useDOT, dot := net.DOT(); useDOT {
		pc.UseDOT = true
		pc.DOT = template.JS(`"` + dot + `"`)
		// The menu scripts walk the node DataSet, which does not exist
		// when the front end parses DOT itself.
		pc.SelectMenu = false
		pc.FilterMenu = false
		pc.NeighborhoodHighlight = false
	} else {
		nodes, err := json.Marshal(net.Nodes())
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize nodes")
		}
		edges, err := json.Marshal(net.Edges())
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize edges")
		}
		opts, err := json.Marshal(net.Options())
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize options")
		}
		pc.Nodes = template.JS(nodes)
		pc.Edges = template.JS(edges)
		pc.Options = template.JS(opts)
	}

	var sb strings.Builder
	if err := page.Execute(&sb, pc); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "execute page template")
	}
	return sb.String(), nil
}

// headTags builds the script and style includes for the configured
// resource mode.
func (r *Renderer) headTags(ctx context.Context) (template.HTML, error) {
	switch r.cfg.Resources {
	case errors.ResourcesRemote:
		return template.HTML(fmt.Sprintf(
			"    <script src=%q></script>\n    <link rel=\"stylesheet\" href=%q>",
			assets.ScriptURL, assets.StyleURL)), nil

	case errors.ResourcesLocal:
		return template.HTML(fmt.Sprintf(
			"    <script src=%q></script>\n    <link rel=\"stylesheet\" href=%q>",
			assets.LocalDir+"/"+assets.ScriptFile, assets.LocalDir+"/"+assets.StyleFile)), nil

	case errors.ResourcesInline:
		bundle, err := r.bundle(ctx)
		if err != nil {
			return "", err
		}
		return template.HTML(fmt.Sprintf(
			"    <script type=\"text/javascript\">\n%s\n    </script>\n    <style type=\"text/css\">\n%s\n    </style>",
			bundle.Script, bundle.Style)), nil

	default:
		return "", errors.New(errors.ErrCodeInvalidResourceMode, "unknown resource mode %q", r.cfg.Resources)
	}
}

// hasLinkTooltips reports whether any node title carries an anchor tag,
// which flips the page to interactive tooltips.
func hasLinkTooltips(net *network.Network) bool {
	for _, node := range net.Nodes() {
		if title, ok := node.Title(); ok && ContainsLink(title) {
			return true
		}
	}
	return false
}
