// Package merge implements the deep merge used for the provisioner's
// config_options and options mappings. Keys present only in the overrides are
// added, keys where both values are mappings are merged key-wise, and any
// other conflict takes the override value. Neither input is mutated.
package merge

import (
	"fmt"

	errUtils "github.com/molecule-go/molecule/errors"
	"github.com/molecule-go/molecule/pkg/perf"
)

// Maps deep-merges overrides into defaults and returns a new map.
// Both inputs are left unmodified; all nested maps in the result are copies.
func Maps(defaults map[string]any, overrides map[string]any) map[string]any {
	defer perf.Track(nil, "merge.Maps")()

	result := make(map[string]any, len(defaults)+len(overrides))
	for k, v := range defaults {
		result[k] = copyValue(v)
	}

	for k, v := range overrides {
		dstMap, dstIsMap := result[k].(map[string]any)
		srcMap, srcIsMap := v.(map[string]any)
		if dstIsMap && srcIsMap {
			result[k] = Maps(dstMap, srcMap)
			continue
		}
		// Leaf conflict or key only present in overrides: override wins,
		// including empty values (false, "", nil).
		result[k] = copyValue(v)
	}

	return result
}

// SectionMaps merges two-level section mappings (section -> key -> value),
// coercing loosely-typed override sections into nested maps. A section whose
// value is not a mapping is rejected.
func SectionMaps(defaults map[string]map[string]any, overrides map[string]any) (map[string]map[string]any, error) {
	defer perf.Track(nil, "merge.SectionMaps")()

	flatDefaults := make(map[string]any, len(defaults))
	for section, entries := range defaults {
		flatDefaults[section] = entries
	}

	merged := Maps(flatDefaults, overrides)

	result := make(map[string]map[string]any, len(merged))
	for section, entries := range merged {
		entriesMap, ok := entries.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: section %q is not a mapping", errUtils.ErrMerge, section)
		}
		result[section] = entriesMap
	}
	return result, nil
}

// copyValue deep-copies nested maps and slices; scalars are returned as-is.
func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = copyValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
