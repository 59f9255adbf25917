package filterview

import (
	"sort"
	"strings"
)

// relevanceThreshold is the minimum fraction of query tokens an item
// must match to count as a result.
const relevanceThreshold = 0.3

// scored pairs an item index with its relevance score.
type scored struct {
	index int
	score float64
}

// Search ranks items by keyword relevance to query: the query is
// tokenized, each item scores the fraction of tokens found in its text
// fields (the first field, typically the name, weighs double), and
// items below the threshold drop out. Results come back most relevant
// first.
func Search[T any](items []T, query string, textFields func(T) []string) (results []T) {
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return results
	}

	var hits []scored
	for i, item := range items {
		score := scoreFields(tokens, textFields(item))
		if score >= relevanceThreshold {
			hits = append(hits, scored{index: i, score: score})
		}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].score > hits[b].score
	})

	results = make([]T, 0, len(hits))
	for _, hit := range hits {
		results = append(results, items[hit.index])
	}
	return results
}

func tokenize(query string) (tokens []string) {
	for _, word := range strings.Fields(strings.ToLower(query)) {
		word = strings.Trim(word, ".,;:!?\"'()")
		if len(word) > 1 {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func scoreFields(tokens []string, fields []string) (score float64) {
	if len(fields) == 0 {
		return score
	}

	joined := strings.ToLower(strings.Join(fields, " "))
	primary := strings.ToLower(fields[0])

	matched := 0.0
	for _, token := range tokens {
		if strings.Contains(primary, token) {
			matched += 2
			continue
		}
		if strings.Contains(joined, token) {
			matched++
		}
	}

	score = matched / float64(len(tokens)*2)
	return score
}
