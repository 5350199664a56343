package options

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/visnet/pkg/errors"
)

func TestNewDefaults(t *testing.T) {
	o := New(false)

	if !o.Interaction.DragNodes {
		t.Error("dragNodes should default to true")
	}
	if !o.Physics.Enabled {
		t.Error("physics should default to enabled")
	}
	if !o.Edges.Smooth.Enabled || o.Edges.Smooth.Type != "dynamic" {
		t.Errorf("smooth = %+v, want enabled dynamic", o.Edges.Smooth)
	}
	if o.Layout != nil {
		t.Error("layout block should be absent without hierarchical mode")
	}
}

func TestNewHierarchical(t *testing.T) {
	o := New(true)
	if o.Layout == nil {
		t.Fatal("hierarchical mode should carry a layout block")
	}
	h := o.Layout.Hierarchical
	if !h.Enabled || h.LevelSeparation != 150 || h.TreeSpacing != 200 || h.SortMethod != "hubsize" {
		t.Errorf("hierarchical = %+v", h)
	}
}

func TestLayoutSetters(t *testing.T) {
	o := New(true)
	o.Layout.SetSeparation(300)
	o.Layout.SetTreeSpacing(80)
	o.Layout.SetEdgeMinimization(false)

	h := o.Layout.Hierarchical
	if h.LevelSeparation != 300 || h.TreeSpacing != 80 || h.EdgeMinimization {
		t.Errorf("hierarchical after setters = %+v", h)
	}
}

func TestPhysicsPresetExclusivity(t *testing.T) {
	o := New(false)

	o.Physics.UseRepulsion(DefaultRepulsion())
	o.Physics.UseBarnesHut(DefaultBarnesHut())

	data, err := json.Marshal(&o.Physics)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"barnesHut"`) {
		t.Errorf("active preset missing: %s", s)
	}
	if strings.Contains(s, `"repulsion"`) {
		t.Errorf("replaced preset still serialized: %s", s)
	}
}

func TestPhysicsSolverField(t *testing.T) {
	tests := []struct {
		name       string
		apply      func(*Physics)
		wantSolver string
	}{
		{"barnesHut omits solver", func(p *Physics) { p.UseBarnesHut(DefaultBarnesHut()) }, ""},
		{"forceAtlas2Based", func(p *Physics) { p.UseForceAtlas2Based(DefaultForceAtlas2Based()) }, "forceAtlas2Based"},
		{"repulsion", func(p *Physics) { p.UseRepulsion(DefaultRepulsion()) }, "repulsion"},
		{"hierarchicalRepulsion", func(p *Physics) { p.UseHRepulsion(DefaultHRepulsion()) }, "hierarchicalRepulsion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New(false)
			tt.apply(&o.Physics)

			data, err := json.Marshal(&o.Physics)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			var m map[string]any
			if err := json.Unmarshal(data, &m); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}

			solver, _ := m["solver"].(string)
			if solver != tt.wantSolver {
				t.Errorf("solver = %q, want %q", solver, tt.wantSolver)
			}
		})
	}
}

func TestPhysicsWireFormat(t *testing.T) {
	o := New(false)
	o.Physics.UseBarnesHut(DefaultBarnesHut())

	data, err := json.Marshal(&o.Physics)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var m struct {
		Enabled       bool          `json:"enabled"`
		Stabilization Stabilization `json:"stabilization"`
		BarnesHut     struct {
			GravitationalConstant float64 `json:"gravitationalConstant"`
			SpringLength          float64 `json:"springLength"`
		} `json:"barnesHut"`
	}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !m.Enabled {
		t.Error("enabled flag lost")
	}
	if m.BarnesHut.GravitationalConstant != -80000 || m.BarnesHut.SpringLength != 250 {
		t.Errorf("barnesHut block = %+v", m.BarnesHut)
	}
	st := m.Stabilization
	if !st.Enabled || st.Iterations != 1000 || st.UpdateInterval != 50 || st.OnlyDynamicEdges || !st.Fit {
		t.Errorf("stabilization = %+v", st)
	}
}

func TestSetSmoothType(t *testing.T) {
	o := New(false)

	if err := o.Edges.SetSmoothType("continuous"); err != nil {
		t.Fatalf("SetSmoothType() error = %v", err)
	}
	if o.Edges.Smooth.Type != "continuous" {
		t.Errorf("Type = %q", o.Edges.Smooth.Type)
	}

	err := o.Edges.SetSmoothType("wavy")
	if !errors.Is(err, errors.ErrCodeInvalidSmoothType) {
		t.Fatalf("SetSmoothType(wavy) error = %v, want INVALID_SMOOTH_TYPE", err)
	}
	if o.Edges.Smooth.Type != "continuous" {
		t.Error("invalid type must not change the stored value")
	}
}

func TestSetRawOptions(t *testing.T) {
	o := New(false)

	text := "var options = {\n  \"physics\": {\"enabled\": false},\n  \"nodes\": {\"shape\": \"box\"}\n}"
	if err := o.Set(text); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !o.IsRaw() {
		t.Fatal("raw mode should be active")
	}
	if o.PhysicsEnabled() {
		t.Error("raw options should override physics state")
	}

	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"shape":"box"`) {
		t.Errorf("raw options not serialized wholesale: %s", s)
	}
	if strings.Contains(s, "interaction") {
		t.Errorf("structured tree should be replaced entirely: %s", s)
	}
}

func TestSetRejectsGarbage(t *testing.T) {
	tests := []string{
		"no braces here",
		"var options = {not json}",
		"",
	}
	for _, text := range tests {
		o := New(false)
		if err := o.Set(text); !errors.Is(err, errors.ErrCodeInvalidOptions) {
			t.Errorf("Set(%q) error = %v, want INVALID_OPTIONS", text, err)
		}
	}
}

func TestPhysicsEnabledDefaultsTrueInRaw(t *testing.T) {
	o := New(false)
	if err := o.Set(`{"nodes": {"shape": "box"}}`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !o.PhysicsEnabled() {
		t.Error("raw options without a physics block should report physics enabled")
	}
}

func TestToJSONRoundTrip(t *testing.T) {
	o := New(true)
	o.Physics.UseForceAtlas2Based(DefaultForceAtlas2Based())
	o.Edges.InheritColors(false)

	text, err := o.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(text), &m); err != nil {
		t.Fatalf("ToJSON() output is not valid JSON: %v", err)
	}
	for _, key := range []string{"layout", "interaction", "physics", "edges"} {
		if _, ok := m[key]; !ok {
			t.Errorf("ToJSON() missing %q section", key)
		}
	}

	// Feeding the serialized tree back through Set yields an equivalent
	// structure.
	o2 := New(false)
	if err := o2.Set(text); err != nil {
		t.Fatalf("Set(ToJSON()) error = %v", err)
	}
	reparsed, err := json.Marshal(o2)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var m2 map[string]any
	if err := json.Unmarshal(reparsed, &m2); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !reflect.DeepEqual(m, m2) {
		t.Errorf("round trip changed the tree:\nbefore %v\nafter  %v", m, m2)
	}
}

func TestConfigureFilterSerialization(t *testing.T) {
	o := New(false)
	o.Configure = Configure{Enabled: true, Filter: []string{"physics"}}

	data, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"filter":["physics"]`) {
		t.Errorf("filter not serialized: %s", data)
	}

	o.Configure = Configure{Enabled: false}
	data, err = json.Marshal(o)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), `"filter"`) {
		t.Errorf("empty filter should be omitted: %s", data)
	}
}
