package normalize

import "strings"

// TrimEach returns a copy of items with every element trimmed. Order and
// length are preserved so validators can still reject empty elements.
func TrimEach(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = strings.TrimSpace(item)
	}
	return out
}

// Dedupe removes duplicate elements while preserving first-seen order.
func Dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))

	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}

	return out
}

// AllNonEmpty reports whether items is a non-empty slice whose every element
// is non-empty after trimming.
func AllNonEmpty(items []string) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			return false
		}
	}
	return true
}
