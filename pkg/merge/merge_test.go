package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapsBasic(t *testing.T) {
	map1 := map[string]any{"foo": "bar"}
	map2 := map[string]any{"baz": "bat"}

	expected := map[string]any{"foo": "bar", "baz": "bat"}

	result := Maps(map1, map2)
	assert.Equal(t, expected, result)
}

func TestMapsEmptyOverrides(t *testing.T) {
	defaults := map[string]any{"foo": "bar", "nested": map[string]any{"a": 1}}

	result := Maps(defaults, map[string]any{})
	assert.Equal(t, defaults, result)
}

func TestMapsEmptyDefaults(t *testing.T) {
	overrides := map[string]any{"foo": "bar", "nested": map[string]any{"a": 1}}

	result := Maps(map[string]any{}, overrides)
	assert.Equal(t, overrides, result)
}

func TestMapsOverrideWinsAtLeaf(t *testing.T) {
	defaults := map[string]any{"foo": "bar", "baz": "bat"}
	overrides := map[string]any{"foo": "ood"}

	result := Maps(defaults, overrides)
	assert.Equal(t, map[string]any{"foo": "ood", "baz": "bat"}, result)
}

func TestMapsOverrideWinsWithEmptyValues(t *testing.T) {
	defaults := map[string]any{"retry_files_enabled": true, "forks": 50}
	overrides := map[string]any{"retry_files_enabled": false, "forks": ""}

	result := Maps(defaults, overrides)
	assert.Equal(t, map[string]any{"retry_files_enabled": false, "forks": ""}, result)
}

func TestMapsNestedMerge(t *testing.T) {
	defaults := map[string]any{
		"defaults": map[string]any{
			"retry_files_enabled": false,
			"roles_path":          "../../../../:$ANSIBLE_ROLES_PATH",
		},
	}
	overrides := map[string]any{
		"defaults": map[string]any{
			"fact_caching": "jsonfile",
		},
		"ssh_connection": map[string]any{
			"scp_if_ssh": true,
		},
	}

	result := Maps(defaults, overrides)

	expected := map[string]any{
		"defaults": map[string]any{
			"retry_files_enabled": false,
			"roles_path":          "../../../../:$ANSIBLE_ROLES_PATH",
			"fact_caching":        "jsonfile",
		},
		"ssh_connection": map[string]any{
			"scp_if_ssh": true,
		},
	}
	assert.Equal(t, expected, result)
}

func TestMapsTypeConflictTakesOverride(t *testing.T) {
	defaults := map[string]any{"key": map[string]any{"a": 1}}
	overrides := map[string]any{"key": "scalar"}

	result := Maps(defaults, overrides)
	assert.Equal(t, map[string]any{"key": "scalar"}, result)

	// And the reverse: scalar replaced by a mapping.
	result = Maps(overrides, defaults)
	assert.Equal(t, defaults, result)
}

func TestMapsDoesNotMutateInputs(t *testing.T) {
	defaults := map[string]any{
		"defaults": map[string]any{"retry_files_enabled": false},
	}
	overrides := map[string]any{
		"defaults": map[string]any{"retry_files_enabled": true},
	}

	result := Maps(defaults, overrides)

	// Mutating the result must not leak into either input.
	result["defaults"].(map[string]any)["retry_files_enabled"] = "mutated"
	result["new"] = "value"

	assert.Equal(t, false, defaults["defaults"].(map[string]any)["retry_files_enabled"])
	assert.Equal(t, true, overrides["defaults"].(map[string]any)["retry_files_enabled"])
	assert.NotContains(t, defaults, "new")
	assert.NotContains(t, overrides, "new")
}

func TestSectionMaps(t *testing.T) {
	defaults := map[string]map[string]any{
		"defaults": {"retry_files_enabled": false},
	}
	overrides := map[string]any{
		"defaults":       map[string]any{"fact_caching": "jsonfile"},
		"ssh_connection": map[string]any{"scp_if_ssh": true},
	}

	result, err := SectionMaps(defaults, overrides)
	require.NoError(t, err)

	expected := map[string]map[string]any{
		"defaults": {
			"retry_files_enabled": false,
			"fact_caching":        "jsonfile",
		},
		"ssh_connection": {"scp_if_ssh": true},
	}
	assert.Equal(t, expected, result)
}

func TestSectionMapsRejectsScalarSection(t *testing.T) {
	defaults := map[string]map[string]any{
		"defaults": {"retry_files_enabled": false},
	}
	overrides := map[string]any{
		"defaults": "not-a-mapping",
	}

	_, err := SectionMaps(defaults, overrides)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defaults")
}
