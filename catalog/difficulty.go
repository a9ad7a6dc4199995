package catalog

import "fmt"

// Difficulty represents the tier of challenge posed by a test case.
type Difficulty string

const (
	// DifficultyEasy covers single-device, single-step instructions.
	DifficultyEasy Difficulty = "easy"

	// DifficultyMedium covers multi-device or multi-step instructions.
	DifficultyMedium Difficulty = "medium"

	// DifficultyDifficult covers instructions requiring inference,
	// conflict resolution, or recall across turns.
	DifficultyDifficult Difficulty = "difficult"
)

// difficultyRanks orders tiers from easiest to hardest for boundary reporting.
var difficultyRanks = map[Difficulty]int{
	DifficultyEasy:      1,
	DifficultyMedium:    2,
	DifficultyDifficult: 3,
}

// Difficulties returns all declared difficulty tiers from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyDifficult}
}

// IsValid returns true if the difficulty tier is declared in the catalog.
func (d Difficulty) IsValid() bool {
	_, ok := difficultyRanks[d]
	return ok
}

// Rank returns the numeric position of the tier, easiest first.
// Returns 0 for invalid tiers.
func (d Difficulty) Rank() int {
	return difficultyRanks[d]
}

// String returns the string representation of the difficulty.
func (d Difficulty) String() string {
	return string(d)
}

// ParseDifficulty parses a string into a Difficulty value.
// Returns an error if the string is not a declared tier.
func ParseDifficulty(s string) (Difficulty, error) {
	diff := Difficulty(s)
	if !diff.IsValid() {
		return "", fmt.Errorf("invalid difficulty: %s", s)
	}
	return diff, nil
}

// CompareDifficulty compares two difficulty tiers.
// Returns:
//   - negative if d1 is easier than d2
//   - zero if equal
//   - positive if d1 is harder than d2
func CompareDifficulty(d1, d2 Difficulty) int {
	return d1.Rank() - d2.Rank()
}
