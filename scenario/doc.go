// Package scenario defines the ground-truth data model for smart-home agent
// evaluation: expected action sequences, expected partial final states, and
// the test cases that own them. Sets of test cases can be loaded from JSON or
// YAML files and filtered by dimension or difficulty.
//
// Scenario data is authored offline or produced by a question generator; this
// package only models and loads it.
package scenario
