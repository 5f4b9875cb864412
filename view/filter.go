package view

import "strings"

// Filter narrows items to those whose declared text fields contain the
// query, case-insensitively. It is a pure function of its inputs: an
// empty query returns the items unchanged and in order, and filtering
// an already-filtered result with the same query is a no-op. It never
// touches the network.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	if query == "" {
		return items
	}
	needle := strings.ToLower(query)
	matched := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}
