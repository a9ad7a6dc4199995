package eval

import "sort"

// FailedCase records one failed turn for later inspection or for targeting
// the next round of question generation.
type FailedCase struct {
	// Index is the zero-based position of the record in the failed-case list.
	Index int `json:"index" yaml:"index"`

	// Result is the failing turn outcome.
	Result TurnResult `json:"result" yaml:"result"`

	// Metadata is the resolved classification of the failed turn.
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Profile aggregates dimension statistics across an evaluation session to
// reveal where the agent under test systematically underperforms. One Profile
// exists per session; it is created empty at session start and only ever
// grows.
type Profile struct {
	// ByDimension holds one bucket per declared evaluation dimension.
	ByDimension map[string]*Stats `json:"by_dimension" yaml:"by_dimension"`

	// ByDifficulty holds one bucket per declared difficulty tier.
	ByDifficulty map[string]*Stats `json:"by_difficulty" yaml:"by_difficulty"`

	// ByDevice holds one bucket per declared device identifier.
	ByDevice map[string]*Stats `json:"by_device" yaml:"by_device"`

	// FailedCases is the growing list of failed turn records, in call order.
	FailedCases []FailedCase `json:"failed_cases" yaml:"failed_cases"`

	// BoundaryFound maps a dimension to the difficulty tier at which the
	// agent's performance was confirmed to degrade. Tracked, not computed:
	// the host loop decides when a boundary is confirmed.
	BoundaryFound map[string]string `json:"boundary_found" yaml:"boundary_found"`
}

// weakBucket pairs a bucket name with its weakness score for sorting.
type weakBucket struct {
	name  string
	score float64
}

// WeakDimensions returns the dimensions whose weakness score is at or above
// the threshold, weakest first. Only buckets with at least one recorded
// outcome are considered.
func (p *Profile) WeakDimensions(threshold float64) []string {
	return weakest(p.ByDimension, threshold)
}

// WeakDevices returns the devices whose weakness score is at or above the
// threshold, weakest first. Only buckets with at least one recorded outcome
// are considered.
func (p *Profile) WeakDevices(threshold float64) []string {
	return weakest(p.ByDevice, threshold)
}

func weakest(buckets map[string]*Stats, threshold float64) []string {
	var weak []weakBucket
	for name, stats := range buckets {
		if stats.Total == 0 {
			continue
		}
		if score := stats.WeaknessScore(); score >= threshold {
			weak = append(weak, weakBucket{name: name, score: score})
		}
	}

	sort.Slice(weak, func(i, j int) bool {
		if weak[i].score != weak[j].score {
			return weak[i].score > weak[j].score
		}
		return weak[i].name < weak[j].name
	})

	names := make([]string, len(weak))
	for i, w := range weak {
		names[i] = w.name
	}
	return names
}
