package resume

import "encoding/json"

// requiredCollections must be arrays for a value to count as a full export.
var requiredCollections = []string{"education", "experience", "skills"}

// Validate reports whether v, a value produced by decoding JSON into `any`,
// has the minimal shape of a full resume export: an object with a personalInfo
// object and education, experience and skills arrays. Element contents are not
// checked.
func Validate(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok || obj == nil {
		return false
	}

	if info, ok := obj["personalInfo"].(map[string]any); !ok || info == nil {
		return false
	}

	for _, key := range requiredCollections {
		if _, ok := obj[key].([]any); !ok {
			return false
		}
	}

	return true
}

// ValidateJSON decodes raw and validates the result. Invalid JSON is reported
// as false.
func ValidateJSON(raw []byte) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	return Validate(v)
}
