package services

import (
	"fmt"
	"strconv"
)

// ChangeSet projects a decoded request body onto the allowed attribute names,
// keeping only keys that are present with a non-null value. JSON numbers are
// reduced to their raw string form so "1" and 1 validate identically. An
// empty result signals that the request carried nothing to update.
func ChangeSet(body map[string]any, allowed []string) map[string]string {
	changes := make(map[string]string)
	for _, key := range allowed {
		value, ok := body[key]
		if !ok || value == nil {
			continue
		}
		changes[key] = stringify(value)
	}
	return changes
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
