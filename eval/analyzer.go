package eval

import (
	"github.com/homebench-ai/sdk/catalog"
)

// WeaknessAnalyzer maintains the single live weakness profile for an
// evaluation session. It consumes one turn result plus its metadata per call
// and updates every relevant statistics bucket.
//
// The analyzer is not safe for concurrent use; a session is driven by one
// logical caller issuing turns one at a time. Hosts that parallelize across
// sessions must give each session its own analyzer.
type WeaknessAnalyzer struct {
	profile *Profile
}

// NewWeaknessAnalyzer creates an analyzer with an empty profile seeded with
// one bucket per catalog dimension, difficulty tier, and device.
func NewWeaknessAnalyzer() *WeaknessAnalyzer {
	profile := &Profile{
		ByDimension:   make(map[string]*Stats),
		ByDifficulty:  make(map[string]*Stats),
		ByDevice:      make(map[string]*Stats),
		BoundaryFound: make(map[string]string),
	}
	for _, dim := range catalog.Dimensions() {
		profile.ByDimension[dim.String()] = &Stats{}
	}
	for _, diff := range catalog.Difficulties() {
		profile.ByDifficulty[diff.String()] = &Stats{}
	}
	for _, device := range catalog.Devices() {
		profile.ByDevice[device] = &Stats{}
	}
	return &WeaknessAnalyzer{profile: profile}
}

// Update incrementally records a single turn outcome into the profile.
//
// The outcome is applied to the bucket for the metadata's dimension, the
// bucket for its difficulty, and the bucket for each involved device. Each
// bucket update is independent and reflects the same single outcome. Names
// not present in the catalog are silently skipped: the catalog is advisory
// for bucketing, not a validation gate. Failed turns are additionally
// appended to the profile's failed-case list.
func (a *WeaknessAnalyzer) Update(result TurnResult, metadata Metadata) {
	score := result.Score

	if dim := metadata.Dimension.String(); dim != "" {
		if stats, ok := a.profile.ByDimension[dim]; ok {
			stats.Record(score)
		}
	}

	if diff := metadata.Difficulty.String(); diff != "" {
		if stats, ok := a.profile.ByDifficulty[diff]; ok {
			stats.Record(score)
		}
	}

	for _, device := range metadata.InvolvedDevices {
		if stats, ok := a.profile.ByDevice[device]; ok {
			stats.Record(score)
		}
	}

	if !result.Passed() {
		a.profile.FailedCases = append(a.profile.FailedCases, FailedCase{
			Index:    len(a.profile.FailedCases),
			Result:   result,
			Metadata: metadata,
		})
	}
}

// MarkBoundary records the difficulty tier at which the agent's performance
// was confirmed to degrade for a dimension. The analyzer tracks boundaries on
// behalf of the host loop; it never computes them itself. Unrecognized names
// are ignored.
func (a *WeaknessAnalyzer) MarkBoundary(dim catalog.Dimension, diff catalog.Difficulty) {
	if !dim.IsValid() || !diff.IsValid() {
		return
	}
	a.profile.BoundaryFound[dim.String()] = diff.String()
}

// Profile returns the live weakness profile. Callers must treat the returned
// profile as read-only; only the analyzer mutates it.
func (a *WeaknessAnalyzer) Profile() *Profile {
	return a.profile
}
