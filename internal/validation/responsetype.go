package validation

import (
	"sort"
	"strings"
)

// NormalizeResponseType canonicalizes a space-delimited response_type value so
// two values can be compared as token sets rather than as literal strings
// (per OIDC, "code id_token" and "id_token code" are the same response type).
//
// Tokens are split on runs of whitespace, lower-cased, sorted
// lexicographically and rejoined with a single space. Empty or
// whitespace-only input yields "".
func NormalizeResponseType(responseType string) string {
	parts := strings.Fields(responseType)
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}

// SplitScopes splits a space-delimited scope value into lower-cased tokens.
// Request order (and duplicates) are preserved.
func SplitScopes(scope string) []string {
	parts := strings.Fields(scope)
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return parts
}
