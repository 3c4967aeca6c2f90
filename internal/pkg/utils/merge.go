package utils

import (
	"bytes"

	"github.com/goccy/go-json"
)

// MergeFields overlays the top-level fields present in patch onto current and
// returns the result as a fresh value. An explicit null resets the field to its
// zero value. Keys listed in ignored are never taken from patch.
func MergeFields[T any](current *T, patch []byte, ignored ...string) (*T, error) {
	fields := map[string]json.RawMessage{}
	if current != nil {
		raw, err := json.Marshal(current)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
	}

	overlay, err := ParseJSONObject(patch)
	if err != nil {
		return nil, err
	}
	for _, key := range ignored {
		delete(overlay, key)
	}
	for key, value := range overlay {
		fields[key] = value
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	result := new(T)
	if err := json.Unmarshal(merged, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ParseJSONObject decodes payload as a JSON object, treating an empty body as {}.
func ParseJSONObject(payload []byte) (map[string]json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(payload)) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
