// Package driver runs mpass commands on top of the core packages: it resolves
// word and symbol lists, turns typed errors into diagnostics, fans batch
// generation out over workers and records trace spans for every phase.
package driver
