package commands

import (
	"sort"
	"strings"
)

// SearchResult wraps a FieldRef with a relevance score
type SearchResult struct {
	FieldRef
	Score int
}

// SearchCommand finds editable fields whose key or value matches a query
type SearchCommand struct {
	store DocumentStore
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(store DocumentStore, query string) *SearchCommand {
	return &SearchCommand{
		store: store,
		Query: query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute() []SearchResult {
	if len(c.Query) < 2 {
		return nil
	}
	return FuzzySort(ListFields(c.store.Current()), c.Query)
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Check for exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '.' || target[i-1] == '[') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort keeps the fields matching query, best match first. Ties keep
// presentation order.
func FuzzySort(fields []FieldRef, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(fields))

	for _, f := range fields {
		best := max(FuzzyScore(f.Key, query), FuzzyScore(f.Text, query))
		if best > 0 {
			scored = append(scored, SearchResult{
				FieldRef: f,
				Score:    best,
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
