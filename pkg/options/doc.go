// Package options models the nested configuration tree handed to the
// front-end visualization library.
//
// The tree consists of independently toggleable subsections mapping to the
// front end's modules: physics, interaction, configure, edges and an
// optional hierarchical layout block. The JSON serialization of an
// [Options] value is passed verbatim to the front end.
//
// # Physics presets
//
// Exactly one physics solver preset is active at a time. Selecting a new
// preset replaces the previous selection, so the serialized tree only ever
// carries one solver parameter block:
//
//	opts := options.New(false)
//	opts.Physics.UseRepulsion(options.DefaultRepulsion())
//	opts.Physics.UseBarnesHut(options.DefaultBarnesHut()) // replaces repulsion
//
// # Raw overrides
//
// [Options.Set] accepts a loosely-formatted text blob (typically copied from
// the front end's option editor), parses everything from the first '{' as
// JSON and replaces the whole tree's serialized representation. No schema
// validation is performed beyond parse success.
package options
