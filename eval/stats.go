package eval

// Stats is a mutable accumulator of pass/fail counts and score sums for one
// named bucket: a dimension, a difficulty tier, or a device. It is mutated
// only through Record and is never reset or decremented.
type Stats struct {
	// Total counts every outcome recorded into the bucket.
	Total int `json:"total" yaml:"total"`

	// Passed counts outcomes with full score.
	Passed int `json:"passed" yaml:"passed"`

	// Failed counts outcomes with any other score.
	Failed int `json:"failed" yaml:"failed"`

	// TotalScore accumulates the raw scores.
	TotalScore float64 `json:"total_score" yaml:"total_score"`

	// MaxPossibleScore accumulates the maximum attainable score, one per turn.
	MaxPossibleScore float64 `json:"max_possible_score" yaml:"max_possible_score"`
}

// Record applies one turn outcome to the bucket. A score of 1 counts as
// passed, anything else as failed. Each call adds exactly one to Total and
// to MaxPossibleScore, keeping Total == Passed + Failed and
// TotalScore <= MaxPossibleScore.
func (s *Stats) Record(score int) {
	s.Total++
	s.TotalScore += float64(score)
	s.MaxPossibleScore++
	if score == 1 {
		s.Passed++
	} else {
		s.Failed++
	}
}

// PassRate is the fraction of recorded outcomes that passed.
// An empty bucket reports 0.
func (s *Stats) PassRate() float64 {
	return float64(s.Passed) / max1(s.Total)
}

// AvgScore is the fraction of attainable score actually earned.
// An empty bucket reports 0.
func (s *Stats) AvgScore() float64 {
	return s.TotalScore / max1f(s.MaxPossibleScore)
}

// WeaknessScore is 1 - AvgScore: higher means weaker, in [0, 1].
// An empty bucket reports 1, the weakest possible, since no evidence of
// competence exists yet.
func (s *Stats) WeaknessScore() float64 {
	return 1.0 - s.AvgScore()
}

func max1(n int) float64 {
	if n < 1 {
		return 1
	}
	return float64(n)
}

func max1f(f float64) float64 {
	if f < 1 {
		return 1
	}
	return f
}
