package models

import "time"

// Documents round-trip through JSON, so numbers come back as float64 and
// timestamps as RFC3339 strings. These helpers tolerate both directions.

func fieldString(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func fieldInt(fields map[string]any, key string) int {
	switch v := fields[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func fieldTime(fields map[string]any, key string) time.Time {
	s := fieldString(fields, key)
	if s == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return ts
}
