package search

import (
	"fmt"
	"sort"
	"strings"
)

// Engine ranks country names against a query. It backs the country picker:
// the caller feeds keystrokes in, the top results come back ordered by how
// well they match (exact, then prefix, then substring, ties broken by
// dataset order so results are stable).
type Engine struct {
	provider CountryProvider
}

// NewEngine creates a new search engine with the given country provider
func NewEngine(provider CountryProvider) *Engine {
	return &Engine{
		provider: provider,
	}
}

// Search performs a search and returns ranked results
func (e *Engine) Search(options SearchOptions) ([]SearchResult, error) {
	if options.Query == "" {
		return []SearchResult{}, nil
	}

	countries, err := e.provider.Countries()
	if err != nil {
		return nil, fmt.Errorf("failed to get countries: %w", err)
	}

	query := options.Query
	if !options.CaseSensitive {
		query = strings.ToLower(query)
	}

	var results []SearchResult
	for i, country := range countries {
		if result := e.matchCountry(country, i, query, options); result != nil {
			results = append(results, *result)
		}
	}

	// Sort by score (highest first), keeping dataset order within ties
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if options.MaxResults != nil && *options.MaxResults > 0 && len(results) > *options.MaxResults {
		results = results[:*options.MaxResults]
	}

	return results, nil
}

// matchCountry scores a single country name and returns a result if it matches
func (e *Engine) matchCountry(country string, index int, query string, options SearchOptions) *SearchResult {
	name := country
	if !options.CaseSensitive {
		name = strings.ToLower(name)
	}

	if name == query {
		return &SearchResult{Country: country, Index: index, Score: 1.0, MatchType: MatchExact}
	}
	if options.ExactMatch {
		return nil
	}
	if strings.HasPrefix(name, query) {
		return &SearchResult{Country: country, Index: index, Score: 0.8, MatchType: MatchPrefix}
	}
	if strings.Contains(name, query) {
		return &SearchResult{Country: country, Index: index, Score: 0.5, MatchType: MatchSubstring}
	}
	return nil
}
