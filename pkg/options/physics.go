package options

import "encoding/json"

// Solver names the mutually exclusive physics presets understood by the
// front end.
type Solver string

// Physics solver presets.
const (
	SolverBarnesHut             Solver = "barnesHut"
	SolverForceAtlas2Based      Solver = "forceAtlas2Based"
	SolverRepulsion             Solver = "repulsion"
	SolverHierarchicalRepulsion Solver = "hierarchicalRepulsion"
)

// GravityParams parameterizes the field-agnostic gravity/spring solvers
// (barnesHut and forceAtlas2Based).
type GravityParams struct {
	Gravity        float64 // more negative = stronger repulsion
	CentralGravity float64 // pull of the whole network towards the center
	SpringLength   float64 // rest length of the edges
	SpringStrength float64 // spring constant of the edges
	Damping        float64 // velocity carry-over between iterations, 0..1
	Overlap        float64 // >0 takes node size into account, 1 = max avoidance
}

// RepulsionParams parameterizes the node-distance/central-gravity solvers
// (repulsion and hierarchicalRepulsion).
type RepulsionParams struct {
	NodeDistance   float64 // range of influence for the repulsion
	CentralGravity float64
	SpringLength   float64
	SpringStrength float64
	Damping        float64
}

// DefaultBarnesHut returns the stock parameters for the barnesHut preset.
func DefaultBarnesHut() GravityParams {
	return GravityParams{
		Gravity:        -80000,
		CentralGravity: 0.3,
		SpringLength:   250,
		SpringStrength: 0.001,
		Damping:        0.09,
	}
}

// DefaultForceAtlas2Based returns the stock parameters for the
// forceAtlas2Based preset.
func DefaultForceAtlas2Based() GravityParams {
	return GravityParams{
		Gravity:        -50,
		CentralGravity: 0.01,
		SpringLength:   100,
		SpringStrength: 0.08,
		Damping:        0.4,
	}
}

// DefaultRepulsion returns the stock parameters for the repulsion preset.
func DefaultRepulsion() RepulsionParams {
	return RepulsionParams{
		NodeDistance:   100,
		CentralGravity: 0.2,
		SpringLength:   200,
		SpringStrength: 0.05,
		Damping:        0.09,
	}
}

// DefaultHRepulsion returns the stock parameters for the
// hierarchicalRepulsion preset.
func DefaultHRepulsion() RepulsionParams {
	return RepulsionParams{
		NodeDistance:   120,
		CentralGravity: 0.0,
		SpringLength:   100,
		SpringStrength: 0.01,
		Damping:        0.09,
	}
}

// Stabilization makes the network stabilize on load.
type Stabilization struct {
	Enabled          bool `json:"enabled"`
	Iterations       int  `json:"iterations"`
	UpdateInterval   int  `json:"updateInterval"`
	OnlyDynamicEdges bool `json:"onlyDynamicEdges"`
	Fit              bool `json:"fit"`
}

func defaultStabilization() Stabilization {
	return Stabilization{
		Enabled:        true,
		Iterations:     1000,
		UpdateInterval: 50,
		Fit:            true,
	}
}

// Physics holds the physics section of the options tree. At most one solver
// preset is active; selecting a new one replaces the previous selection.
type Physics struct {
	Enabled       bool
	Stabilization Stabilization

	solver    Solver
	gravity   GravityParams   // barnesHut / forceAtlas2Based
	repulsion RepulsionParams // repulsion / hierarchicalRepulsion
}

func defaultPhysics() Physics {
	return Physics{Enabled: true, Stabilization: defaultStabilization()}
}

// Solver returns the active preset, or the empty string when the front end's
// default applies.
func (p *Physics) Solver() Solver { return p.solver }

// UseBarnesHut replaces the active preset with the quadtree-based gravity
// model.
func (p *Physics) UseBarnesHut(params GravityParams) {
	p.solver = SolverBarnesHut
	p.gravity = params
}

// UseForceAtlas2Based replaces the active preset with the forceAtlas2-based
// solver.
func (p *Physics) UseForceAtlas2Based(params GravityParams) {
	p.solver = SolverForceAtlas2Based
	p.gravity = params
}

// UseRepulsion replaces the active preset with the simplified-field
// repulsion solver.
func (p *Physics) UseRepulsion(params RepulsionParams) {
	p.solver = SolverRepulsion
	p.repulsion = params
}

// UseHRepulsion replaces the active preset with the hierarchical repulsion
// solver.
func (p *Physics) UseHRepulsion(params RepulsionParams) {
	p.solver = SolverHierarchicalRepulsion
	p.repulsion = params
}

// gravityBlock is the wire form of GravityParams.
type gravityBlock struct {
	GravitationalConstant float64 `json:"gravitationalConstant"`
	CentralGravity        float64 `json:"centralGravity"`
	SpringLength          float64 `json:"springLength"`
	SpringConstant        float64 `json:"springConstant"`
	Damping               float64 `json:"damping"`
	AvoidOverlap          float64 `json:"avoidOverlap"`
}

// repulsionBlock is the wire form of RepulsionParams.
type repulsionBlock struct {
	NodeDistance   float64 `json:"nodeDistance"`
	CentralGravity float64 `json:"centralGravity"`
	SpringLength   float64 `json:"springLength"`
	SpringConstant float64 `json:"springConstant"`
	Damping        float64 `json:"damping"`
}

// MarshalJSON emits the enabled flag, the stabilization block and the single
// active preset block. The solver field is written for every preset except
// barnesHut, which is the front end's own default.
func (p Physics) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"enabled":       p.Enabled,
		"stabilization": p.Stabilization,
	}
	switch p.solver {
	case SolverBarnesHut:
		m["barnesHut"] = gravityBlockOf(p.gravity)
	case SolverForceAtlas2Based:
		m["forceAtlas2Based"] = gravityBlockOf(p.gravity)
		m["solver"] = string(p.solver)
	case SolverRepulsion:
		m["repulsion"] = repulsionBlockOf(p.repulsion)
		m["solver"] = string(p.solver)
	case SolverHierarchicalRepulsion:
		m["hierarchicalRepulsion"] = repulsionBlockOf(p.repulsion)
		m["solver"] = string(p.solver)
	}
	return json.Marshal(m)
}

func gravityBlockOf(p GravityParams) gravityBlock {
	return gravityBlock{
		GravitationalConstant: p.Gravity,
		CentralGravity:        p.CentralGravity,
		SpringLength:          p.SpringLength,
		SpringConstant:        p.SpringStrength,
		Damping:               p.Damping,
		AvoidOverlap:          p.Overlap,
	}
}

func repulsionBlockOf(p RepulsionParams) repulsionBlock {
	return repulsionBlock{
		NodeDistance:   p.NodeDistance,
		CentralGravity: p.CentralGravity,
		SpringLength:   p.SpringLength,
		SpringConstant: p.SpringStrength,
		Damping:        p.Damping,
	}
}
