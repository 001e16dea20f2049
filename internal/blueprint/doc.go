// Package blueprint loads declarative layout descriptions and builds them
// into layout trees.
//
// A blueprint names a root rectangle and an optional split. Each split picks
// an axis, lists constraints in the rayzer token language, optionally names
// the resulting children, and may carry nested splits that target a child by
// name, by index, or as "remaining".
//
// Blueprints can be written in YAML, JSON with comments, or HCL; [Load]
// picks the decoder from the file extension.
package blueprint
