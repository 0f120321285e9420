package sanitize

import "regexp"

// injectionPatterns are the operator shapes rejected by the request guard
// before any field-level sanitization takes place.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$where`),
	regexp.MustCompile(`(?i)\$ne`),
	regexp.MustCompile(`(?i)\$in`),
	regexp.MustCompile(`(?i)\$nin`),
	regexp.MustCompile(`(?i)\$gt`),
	regexp.MustCompile(`(?i)\$gte`),
	regexp.MustCompile(`(?i)\$lt`),
	regexp.MustCompile(`(?i)\$lte`),
	regexp.MustCompile(`(?i)\$exists`),
	regexp.MustCompile(`(?i)\$regex`),
	regexp.MustCompile(`(?i)\$expr`),
	regexp.MustCompile(`(?i)\$jsonSchema`),
	regexp.MustCompile(`(?i)\$or`),
	regexp.MustCompile(`(?i)\$and`),
	regexp.MustCompile(`(?i)\$not`),
	regexp.MustCompile(`(?i)\$nor`),
	regexp.MustCompile(`(?i)\{.*\$.*\}`),
	regexp.MustCompile(`(?i)\[.*\$.*\]`),
}

// ContainsOperator reports whether v, at any nesting depth, holds a string
// matching one of the known query-operator injection patterns.
func ContainsOperator(v any) bool {
	switch val := v.(type) {
	case string:
		for _, pattern := range injectionPatterns {
			if pattern.MatchString(val) {
				return true
			}
		}
		return false
	case []any:
		for _, item := range val {
			if ContainsOperator(item) {
				return true
			}
		}
		return false
	case map[string]any:
		for key, item := range val {
			if ContainsOperator(key) || ContainsOperator(item) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
