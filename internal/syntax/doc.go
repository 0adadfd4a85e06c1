// Package syntax is the host-side frontend: a single-pass, forgiving
// scanner and statement parser for the Python GUI scripts the tool lints.
// It reduces each script to the node-visit event stream defined by
// internal/engine — imports, def-scope boundaries, and call expressions
// with their literal arguments.
//
// The frontend is intentionally shallow. It performs no name resolution,
// no control-flow analysis and no recovery: statements outside its small
// grammar are silently dropped, which the engine's contract permits
// (malformed host input is not the engine's responsibility).
package syntax
