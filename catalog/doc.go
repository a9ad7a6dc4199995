// Package catalog is the static reference table for the simulated smart home:
// device identifiers and their permitted value domains, the declared
// evaluation dimensions, and the difficulty tiers.
//
// The catalog is pure data plus advisory validation. The evaluation layer
// uses it to seed statistics buckets and silently ignores names it does not
// recognize; it is not a hard validation gate.
package catalog
