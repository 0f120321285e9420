// Package sanitize normalizes untrusted request data before it reaches the
// persistence layer. It removes tokens recognized as MongoDB query operators
// and prototype-pollution identifiers instead of rejecting the input outright.
//
// The denylist matches operator tokens anywhere inside a string, so legitimate
// text containing those substrings is stripped as well. A schema-validation
// allowlist at the boundary would be the principled replacement, but the
// stripping behavior is kept for parity with the deployed storefront.
package sanitize

import (
	"regexp"
	"strings"
)

// operatorToken matches a "$"-prefixed token up to the next word boundary.
var operatorToken = regexp.MustCompile(`\$.*?\b`)

// pollutionIdents are stripped from strings and block map keys outright.
var pollutionIdents = []*regexp.Regexp{
	regexp.MustCompile(`(?i)__proto__`),
	regexp.MustCompile(`(?i)constructor`),
	regexp.MustCompile(`(?i)prototype`),
}

var blockedKeys = map[string]struct{}{
	"__proto__":   {},
	"constructor": {},
	"prototype":   {},
}

// String strips operator tokens and pollution identifiers from s and trims
// surrounding whitespace. It is total: the worst case is an empty string.
func String(s string) string {
	s = operatorToken.ReplaceAllString(s, "")
	for _, ident := range pollutionIdents {
		s = ident.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}

// Value sanitizes an arbitrary decoded JSON value. Strings are passed through
// String, slices are sanitized element-wise with nils dropped and order
// preserved, maps have dangerous keys removed and their values sanitized
// recursively. Any other type (number, bool, nil) is returned unchanged.
func Value(v any) any {
	switch val := v.(type) {
	case string:
		return String(val)
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			if sanitized := Value(item); sanitized != nil {
				out = append(out, sanitized)
			}
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for key, item := range val {
			if strings.HasPrefix(key, "$") {
				continue
			}
			if _, blocked := blockedKeys[strings.ToLower(key)]; blocked {
				continue
			}
			if sanitized := Value(item); sanitized != nil {
				out[key] = sanitized
			}
		}
		return out
	default:
		return v
	}
}
