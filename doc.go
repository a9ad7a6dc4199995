// Package sdk is the HomeBench SDK for evaluating autonomous agents that
// operate a simulated smart-home environment.
//
// The SDK is a library consumed by an examiner orchestration layer. It scores
// one interaction at a time against ground truth, aggregates outcomes into a
// per-dimension, per-difficulty, and per-device weakness profile, and exposes
// that profile so the next round of questions can target where the agent
// under test is weakest.
//
// Packages:
//
//   - catalog:  device identifiers, value domains, dimensions, difficulty tiers
//   - scenario: ground-truth data model and scenario-set loading
//   - eval:     turn scoring, weakness profiling, adaptive session evaluation
//   - store:    Redis-backed persistence of profiles and turn history
//
// See the eval package for the typical session workflow.
package sdk
