package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/homebench-ai/sdk/catalog"
)

// LoadSet loads a scenario set from a file.
// The format is detected by file extension (.json, .yaml, .yml).
// The loaded set is validated before being returned.
func LoadSet(path string) (*Set, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("scenario set file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario set file: %w", err)
	}

	ext := filepath.Ext(path)
	var set Set

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("failed to parse JSON scenario set: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &set); err != nil {
			return nil, fmt.Errorf("failed to parse YAML scenario set: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported scenario set format: %s (supported: .json, .yaml, .yml)", ext)
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("scenario set validation failed: %w", err)
	}

	return &set, nil
}

// Validate checks the set structure for correctness: unique scenario IDs,
// recognized dimensions and difficulty tiers, and non-empty turn lists.
func (s *Set) Validate() error {
	seenIDs := make(map[string]bool)

	for i, tc := range s.Cases {
		if tc.ScenarioID == "" {
			return fmt.Errorf("test case at index %d is missing required field 'scenario_id'", i)
		}
		if seenIDs[tc.ScenarioID] {
			return fmt.Errorf("duplicate scenario ID found: %s", tc.ScenarioID)
		}
		seenIDs[tc.ScenarioID] = true

		if !tc.Dimension.IsValid() {
			return fmt.Errorf("test case %s has unknown dimension: %s", tc.ScenarioID, tc.Dimension)
		}
		if !tc.Difficulty.IsValid() {
			return fmt.Errorf("test case %s has unknown difficulty: %s", tc.ScenarioID, tc.Difficulty)
		}
		if len(tc.Turns) == 0 {
			return fmt.Errorf("test case %s has no turns", tc.ScenarioID)
		}
	}

	return nil
}

// FilterByDimension returns a new Set containing only cases probing the given
// dimension. The original Set is not modified.
func (s *Set) FilterByDimension(dim catalog.Dimension) *Set {
	filtered := s.emptyCopy()
	for _, tc := range s.Cases {
		if tc.Dimension == dim {
			filtered.Cases = append(filtered.Cases, tc)
		}
	}
	return filtered
}

// FilterByDifficulty returns a new Set containing only cases of the given
// difficulty tier. The original Set is not modified.
func (s *Set) FilterByDifficulty(diff catalog.Difficulty) *Set {
	filtered := s.emptyCopy()
	for _, tc := range s.Cases {
		if tc.Difficulty == diff {
			filtered.Cases = append(filtered.Cases, tc)
		}
	}
	return filtered
}

// emptyCopy creates a Set with the same metadata and no cases.
func (s *Set) emptyCopy() *Set {
	return &Set{
		Name:     s.Name,
		Version:  s.Version,
		Metadata: s.Metadata,
		Cases:    make([]TestCase, 0),
	}
}
