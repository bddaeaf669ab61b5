// Package utils contains general helpers shared across ptree.
package utils

// DeduplicatePatterns removes duplicate entries from a slice while preserving order.
// The first occurrence of each unique entry is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}
