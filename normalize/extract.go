package normalize

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Historical documents disagree on field shapes, so every read goes through
// these extractors instead of direct type assertions at the use site.

// AsString renders scalar values (strings and the numeric types the driver
// decodes to) as a string. Anything else yields "".
func AsString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.Itoa(int(t))
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// AsFloat reads any numeric representation, including numeric strings.
func AsFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f
	default:
		return 0
	}
}

// AsMap accepts the map shapes the driver and encoding/json produce.
func AsMap(v any) bson.M {
	switch t := v.(type) {
	case bson.M:
		return t
	case map[string]any:
		return bson.M(t)
	case bson.D:
		return t.Map()
	default:
		return nil
	}
}

// AsSlice accepts []any and the driver's bson.A.
func AsSlice(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case bson.A:
		return []any(t)
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}

// FieldString returns the trimmed string value of doc[key].
func FieldString(doc bson.M, key string) string {
	return strings.TrimSpace(AsString(doc[key]))
}

// FirstFloat applies candidate extractors in priority order and returns the
// first non-zero value.
func FirstFloat(candidates ...func() float64) float64 {
	for _, c := range candidates {
		if v := c(); v != 0 {
			return v
		}
	}
	return 0
}
