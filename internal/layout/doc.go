// Package layout implements a constraint-based layout engine for
// character-cell user interfaces.
//
// The engine is independent of any concrete widget tree: callers implement
// the Tree interface over their own node storage and drive the engine through
// ComputeRoot. Nodes are addressed by NodeID, styles select a display mode
// (flex, grid, block, none), and leaf nodes are sized through a measurement
// callback. Layout results are cached per node, keyed by the exact inputs
// (known dimensions, available space, run mode), so repeated passes over a
// clean tree are cheap.
package layout
