package options

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/visnet/pkg/errors"
)

// Interaction covers user interaction with the rendered network: mouse and
// touch events plus the drag behavior toggles.
type Interaction struct {
	DragNodes       bool `json:"dragNodes"`
	HideEdgesOnDrag bool `json:"hideEdgesOnDrag"`
	HideNodesOnDrag bool `json:"hideNodesOnDrag"`
}

// Configure controls the front end's interactive option editor.
// Filter narrows the editor to the named sections; it may be a bool, a
// string or a list of section names.
type Configure struct {
	Enabled bool `json:"enabled"`
	Filter  any  `json:"filter,omitempty"`
}

// Smooth configures edge curve drawing. With type "dynamic" each edge gets
// an invisible support node that takes part in the physics simulation.
type Smooth struct {
	Enabled bool   `json:"enabled"`
	Type    string `json:"type"`
}

// EdgeColor carries the edge color inheritance setting. Inherit may be a
// bool or the strings "from"/"to" selecting which endpoint's color to adopt.
type EdgeColor struct {
	Inherit any `json:"inherit"`
}

// EdgeOptions is the edges section of the tree: smoothing and color
// inheritance.
type EdgeOptions struct {
	Smooth Smooth    `json:"smooth"`
	Color  EdgeColor `json:"color"`
}

// SetSmoothType enables smoothing with the given curve style.
// Returns a validation error for styles outside the enumerated set.
func (e *EdgeOptions) SetSmoothType(t string) error {
	if err := errors.ValidateSmoothType(t); err != nil {
		return err
	}
	e.Smooth.Enabled = true
	e.Smooth.Type = t
	return nil
}

// InheritColors sets whether edges take on the color of the node they come
// from. true adopts the "from" behavior, false disables inheritance, and the
// strings "from"/"to" select an endpoint explicitly.
func (e *EdgeOptions) InheritColors(status any) {
	e.Color.Inherit = status
}

// Hierarchical is the hierarchical placement block of the layout section.
type Hierarchical struct {
	Enabled              bool   `json:"enabled"`
	LevelSeparation      int    `json:"levelSeparation"`
	TreeSpacing          int    `json:"treeSpacing"`
	BlockShifting        bool   `json:"blockShifting"`
	EdgeMinimization     bool   `json:"edgeMinimization"`
	ParentCentralization bool   `json:"parentCentralization"`
	SortMethod           string `json:"sortMethod"`
}

// Layout controls initial node placement.
type Layout struct {
	RandomSeed     int          `json:"randomSeed"`
	ImprovedLayout bool         `json:"improvedLayout"`
	Hierarchical   Hierarchical `json:"hierarchical"`
}

func defaultLayout() *Layout {
	return &Layout{
		ImprovedLayout: true,
		Hierarchical: Hierarchical{
			Enabled:              true,
			LevelSeparation:      150,
			TreeSpacing:          200,
			BlockShifting:        true,
			EdgeMinimization:     true,
			ParentCentralization: true,
			SortMethod:           "hubsize",
		},
	}
}

// SetSeparation sets the distance between the hierarchy levels.
func (l *Layout) SetSeparation(distance int) { l.Hierarchical.LevelSeparation = distance }

// SetTreeSpacing sets the distance between independent trees. This only
// affects the initial layout; with physics enabled the repulsion model takes
// over.
func (l *Layout) SetTreeSpacing(distance int) { l.Hierarchical.TreeSpacing = distance }

// SetEdgeMinimization toggles whitespace reduction along each node's free
// axis during the initial layout.
func (l *Layout) SetEdgeMinimization(status bool) { l.Hierarchical.EdgeMinimization = status }

// Options is the root of the configuration tree. Its JSON form is passed
// directly to the front-end framework.
type Options struct {
	Layout      *Layout // nil unless hierarchical layout was requested
	Interaction Interaction
	Configure   Configure
	Physics     Physics
	Edges       EdgeOptions

	// raw, when non-nil, replaces the structured tree wholesale in the
	// serialized output. Populated by Set.
	raw map[string]any
}

// New creates an options tree with the front end's defaults. When
// hierarchical is true the tree carries an enabled hierarchical layout
// block.
func New(hierarchical bool) *Options {
	o := &Options{
		Interaction: Interaction{DragNodes: true},
		Physics:     defaultPhysics(),
		Edges: EdgeOptions{
			Smooth: Smooth{Enabled: true, Type: "dynamic"},
			Color:  EdgeColor{Inherit: true},
		},
	}
	if hierarchical {
		o.Layout = defaultLayout()
	}
	return o
}

// Set replaces the tree's serialized representation with the parsed form of
// a raw, loosely-formatted text blob. Embedded whitespace and newlines are
// tolerated; everything before the first top-level '{' is discarded and the
// remainder is parsed as JSON. No schema validation is performed beyond
// parse success.
//
// In practice the blob is copied from the front end's option editor after
// experimenting with physics and layout settings in the browser.
func (o *Options) Set(text string) error {
	s := strings.ReplaceAll(text, "\n", "")
	s = strings.ReplaceAll(s, " ", "")
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "no object found in options text")
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(s[start:]), &parsed); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOptions, err, "parse options text")
	}
	o.raw = parsed
	return nil
}

// IsRaw reports whether a raw override from Set is active.
func (o *Options) IsRaw() bool { return o.raw != nil }

// PhysicsEnabled reports whether the physics simulation is on, consulting
// the raw override when one is active. Missing fields default to enabled.
func (o *Options) PhysicsEnabled() bool {
	if o.raw == nil {
		return o.Physics.Enabled
	}
	physics, ok := o.raw["physics"].(map[string]any)
	if !ok {
		return true
	}
	enabled, ok := physics["enabled"].(bool)
	if !ok {
		return true
	}
	return enabled
}

// MarshalJSON emits the raw override when set, otherwise the structured
// tree. The layout block is omitted unless hierarchical layout was
// requested.
func (o *Options) MarshalJSON() ([]byte, error) {
	if o.raw != nil {
		return json.Marshal(o.raw)
	}
	return json.Marshal(struct {
		Layout      *Layout     `json:"layout,omitempty"`
		Interaction Interaction `json:"interaction"`
		Configure   Configure   `json:"configure"`
		Physics     Physics     `json:"physics"`
		Edges       EdgeOptions `json:"edges"`
	}{o.Layout, o.Interaction, o.Configure, o.Physics, o.Edges})
}

// ToJSON serializes the tree for injection into the output document.
func (o *Options) ToJSON() (string, error) {
	data, err := json.MarshalIndent(o, "", "    ")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize options")
	}
	return string(data), nil
}
