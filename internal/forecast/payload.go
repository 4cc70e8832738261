package forecast

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// dailyEntries reads locations[0].dailyFcst.daily. Absent or null levels yield an
// empty slice; values of the wrong JSON type are errors.
func dailyEntries(locations []any) ([]DayEntry, error) {
	location, ok := locations[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("location entry is %s, not an object", jsonType(locations[0]))
	}

	dailyFcst, err := optionalObject(location, "dailyFcst")
	if err != nil {
		return nil, err
	}

	daily, err := optionalArray(dailyFcst, "daily")
	if err != nil {
		return nil, err
	}

	entries := make([]DayEntry, 0, len(daily))
	for i, raw := range daily {
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("daily entry %d is %s, not an object", i, jsonType(raw))
		}
		entries = append(entries, DayEntry{
			Date:        stringField(obj, "date", unknownDate),
			PeriodLabel: stringField(obj, "periodLabel", ""),
			Text:        stringField(obj, "text", noForecastText),
		})
	}

	return entries, nil
}

func optionalObject(obj map[string]any, key string) (map[string]any, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s is %s, not an object", key, jsonType(v))
	}
	return m, nil
}

func optionalArray(obj map[string]any, key string) ([]any, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, nil
	}
	a, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is %s, not an array", key, jsonType(v))
	}
	return a, nil
}

// stringField returns obj[key] as text, or def when the key is absent or null.
func stringField(obj map[string]any, key, def string) string {
	v, ok := obj[key]
	if !ok || v == nil {
		return def
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "True"
		}
		return "False"
	}
	return fmt.Sprint(v)
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case float64:
		return "a number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
