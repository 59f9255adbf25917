package filterview

import "strings"

// Package filterview filters already-loaded collections in memory. The
// backend has no pagination and collections stay small, so every list
// page loads once and narrows locally on each input change.

// All is the status selector value that matches every item.
const All = "all"

// Filter returns the items matching both predicates: a case-insensitive
// substring match of query against any of the item's text fields, and
// an exact match of status against the item's status field. An empty
// query matches everything; an empty or "all" status matches every
// status. Fields may be missing on backend records, so empty strings
// are tolerated throughout.
func Filter[T any](items []T, query, status string, textFields func(T) []string, statusOf func(T) string) (matched []T) {
	query = strings.ToLower(strings.TrimSpace(query))
	matched = make([]T, 0, len(items))

	for _, item := range items {
		if !statusMatches(status, statusOf(item)) {
			continue
		}
		if query != "" && !textMatches(query, textFields(item)) {
			continue
		}
		matched = append(matched, item)
	}

	return matched
}

func statusMatches(selector, status string) (ok bool) {
	if selector == "" || selector == All {
		ok = true
		return ok
	}
	ok = selector == status
	return ok
}

func textMatches(query string, fields []string) (ok bool) {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			ok = true
			return ok
		}
	}
	ok = false
	return ok
}
