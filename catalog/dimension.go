package catalog

import "fmt"

// Dimension represents a named category of agent-behavior challenge.
// Each evaluation turn is tagged with the dimension it probes.
type Dimension string

const (
	// DimensionPrecision tests whether the agent executes exact instructions exactly.
	// Examples: "set the AC to 24 degrees", "turn the bedroom light off"
	DimensionPrecision Dimension = "precision"

	// DimensionAmbiguous tests how the agent resolves underspecified instructions.
	// Examples: "make it cozy in here", "it is too loud"
	DimensionAmbiguous Dimension = "ambiguous"

	// DimensionConflict tests handling of contradictory requirements.
	// Examples: "turn everything off but keep the music playing"
	DimensionConflict Dimension = "conflict"

	// DimensionMemory tests recall of earlier turns in the same scenario.
	// Examples: "set it back to what it was before"
	DimensionMemory Dimension = "memory"

	// DimensionNoise tests robustness to irrelevant or distracting content.
	// Examples: instructions embedded in unrelated chatter
	DimensionNoise Dimension = "noise"
)

// Dimensions returns all declared evaluation dimensions in catalog order.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionPrecision,
		DimensionAmbiguous,
		DimensionConflict,
		DimensionMemory,
		DimensionNoise,
	}
}

// IsValid returns true if the dimension is declared in the catalog.
func (d Dimension) IsValid() bool {
	switch d {
	case DimensionPrecision, DimensionAmbiguous, DimensionConflict, DimensionMemory, DimensionNoise:
		return true
	default:
		return false
	}
}

// String returns the string representation of the dimension.
func (d Dimension) String() string {
	return string(d)
}

// ParseDimension parses a string into a Dimension value.
// Returns an error if the string is not a declared dimension.
func ParseDimension(s string) (Dimension, error) {
	dim := Dimension(s)
	if !dim.IsValid() {
		return "", fmt.Errorf("invalid dimension: %s", s)
	}
	return dim, nil
}
