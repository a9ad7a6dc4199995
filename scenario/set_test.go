package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homebench-ai/sdk/catalog"
)

func TestLoadSet_JSON(t *testing.T) {
	tmpDir := t.TempDir()
	jsonPath := filepath.Join(tmpDir, "set.json")

	jsonContent := `{
		"name": "smoke-set",
		"version": "1.0.0",
		"test_cases": [
			{
				"scenario_id": "sc-001",
				"difficulty": "easy",
				"dimension": "precision",
				"description": "single light toggle",
				"initial_state": {"living_room_light": "off"},
				"turns": [
					{
						"turn_id": 1,
						"instruction": "Turn on the living room light.",
						"expected_actions": [
							{"action": "update", "key": "living_room_light", "value": "on"}
						],
						"expected_final_state": {"living_room_light": "on"}
					}
				]
			}
		],
		"metadata": {"author": "bench-team"}
	}`

	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonContent), 0644))

	set, err := LoadSet(jsonPath)
	require.NoError(t, err)

	assert.Equal(t, "smoke-set", set.Name)
	require.Len(t, set.Cases, 1)
	tc := set.Cases[0]
	assert.Equal(t, "sc-001", tc.ScenarioID)
	assert.Equal(t, catalog.DimensionPrecision, tc.Dimension)
	assert.Equal(t, catalog.DifficultyEasy, tc.Difficulty)
	require.Len(t, tc.Turns, 1)
	assert.Equal(t, "living_room_light", tc.Turns[0].ExpectedActions[0].Key)
	assert.Equal(t, "on", tc.Turns[0].ExpectedFinalState["living_room_light"])
	assert.Equal(t, "bench-team", set.Metadata["author"])
}

func TestLoadSet_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "set.yaml")

	yamlContent := `name: smoke-set
version: 1.0.0
test_cases:
  - scenario_id: sc-001
    difficulty: medium
    dimension: ambiguous
    turns:
      - turn_id: 1
        instruction: Make the bedroom cozy.
        expected_actions:
          - action: update
            key: bedroom_color
            value: warm
        expected_final_state:
          bedroom_color: warm
`

	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlContent), 0644))

	set, err := LoadSet(yamlPath)
	require.NoError(t, err)

	require.Len(t, set.Cases, 1)
	assert.Equal(t, catalog.DimensionAmbiguous, set.Cases[0].Dimension)
	assert.Equal(t, "warm", set.Cases[0].Turns[0].ExpectedFinalState["bedroom_color"])
}

func TestLoadSet_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("file not found", func(t *testing.T) {
		_, err := LoadSet(filepath.Join(tmpDir, "missing.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(tmpDir, "set.toml")
		require.NoError(t, os.WriteFile(path, []byte("name = 'x'"), 0644))
		_, err := LoadSet(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported scenario set format")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(tmpDir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
		_, err := LoadSet(path)
		require.Error(t, err)
	})
}

func validCase(id string) TestCase {
	return TestCase{
		ScenarioID: id,
		Difficulty: catalog.DifficultyEasy,
		Dimension:  catalog.DimensionPrecision,
		Turns: []Turn{
			{TurnID: 1, ExpectedFinalState: map[string]any{"ac": "on"}},
		},
	}
}

func TestSet_Validate(t *testing.T) {
	t.Run("valid set", func(t *testing.T) {
		set := Set{Cases: []TestCase{validCase("a"), validCase("b")}}
		require.NoError(t, set.Validate())
	})

	t.Run("missing scenario ID", func(t *testing.T) {
		set := Set{Cases: []TestCase{validCase("")}}
		assert.ErrorContains(t, set.Validate(), "scenario_id")
	})

	t.Run("duplicate scenario ID", func(t *testing.T) {
		set := Set{Cases: []TestCase{validCase("a"), validCase("a")}}
		assert.ErrorContains(t, set.Validate(), "duplicate scenario ID")
	})

	t.Run("unknown dimension", func(t *testing.T) {
		tc := validCase("a")
		tc.Dimension = "telepathy"
		set := Set{Cases: []TestCase{tc}}
		assert.ErrorContains(t, set.Validate(), "unknown dimension")
	})

	t.Run("unknown difficulty", func(t *testing.T) {
		tc := validCase("a")
		tc.Difficulty = "impossible"
		set := Set{Cases: []TestCase{tc}}
		assert.ErrorContains(t, set.Validate(), "unknown difficulty")
	})

	t.Run("no turns", func(t *testing.T) {
		tc := validCase("a")
		tc.Turns = nil
		set := Set{Cases: []TestCase{tc}}
		assert.ErrorContains(t, set.Validate(), "no turns")
	})
}

func TestSet_Filters(t *testing.T) {
	easy := validCase("easy-precision")
	medium := validCase("medium-precision")
	medium.Difficulty = catalog.DifficultyMedium
	conflict := validCase("easy-conflict")
	conflict.Dimension = catalog.DimensionConflict

	set := Set{Name: "all", Cases: []TestCase{easy, medium, conflict}}

	byDim := set.FilterByDimension(catalog.DimensionPrecision)
	require.Len(t, byDim.Cases, 2)
	assert.Equal(t, "all", byDim.Name)

	byDiff := set.FilterByDifficulty(catalog.DifficultyMedium)
	require.Len(t, byDiff.Cases, 1)
	assert.Equal(t, "medium-precision", byDiff.Cases[0].ScenarioID)

	// The original set is unchanged.
	assert.Len(t, set.Cases, 3)
}
