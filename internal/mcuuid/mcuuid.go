// Package mcuuid canonicalizes Minecraft player UUIDs.
//
// The canonical form is 32 lowercase hex characters with no separators.
// Input arrives in many shapes (dashed, mixed case, filenames), so
// normalization is best-effort and never fails outright.
package mcuuid

import "strings"

// Normalize cleans a raw UUID-like string: lower-cased, everything outside
// [0-9a-f-] stripped, dashes removed. If the result is exactly 32 hex
// characters it is canonical; otherwise the cleaned string is returned
// as-is and callers must check IsCanonical before trusting it.
func Normalize(raw string) string {
	cleaned := clean(strings.TrimSpace(raw))
	noDashes := strings.ReplaceAll(cleaned, "-", "")
	if isHex32(noDashes) {
		return noDashes
	}
	return cleaned
}

// FromFilename extracts a canonical UUID from a stats filename such as
// "3f9a...c2.json". Returns ok=false when the name does not contain a
// valid UUID.
func FromFilename(name string) (string, bool) {
	base := name
	if len(base) >= len(".json") && strings.EqualFold(base[len(base)-len(".json"):], ".json") {
		base = base[:len(base)-len(".json")]
	}
	normalized := strings.ReplaceAll(Normalize(base), "-", "")
	if !isHex32(normalized) {
		return "", false
	}
	return normalized, true
}

// IsCanonical reports whether s is already in canonical form
func IsCanonical(s string) bool {
	return isHex32(s)
}

func clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isHex32(s string) bool {
	if len(s) != 32 {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
