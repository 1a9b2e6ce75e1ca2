package search

// SearchOptions configures country search behavior
type SearchOptions struct {
	// Query is the search term to look for
	Query string

	// CaseSensitive controls whether search is case-sensitive
	CaseSensitive bool

	// ExactMatch requires the entire country name to match the query.
	// When false, performs prefix/substring matching.
	ExactMatch bool

	// MaxResults limits the number of search results
	// nil means no limit
	MaxResults *int
}

// SearchResult represents a country match with ranking metadata
type SearchResult struct {
	// Country is the matched country name
	Country string

	// Index is the country's position in the dataset ordering
	Index int

	// Score represents match relevance (0.0 to 1.0, higher is better)
	Score float64

	// MatchType describes how the query matched the name
	MatchType MatchType
}

// MatchType indicates the type of match found
type MatchType string

const (
	// MatchExact means the whole name equals the query
	MatchExact MatchType = "exact"
	// MatchPrefix means the name starts with the query
	MatchPrefix MatchType = "prefix"
	// MatchSubstring means the query occurs inside the name
	MatchSubstring MatchType = "substring"
)

// CountryProvider supplies the searchable country names in dataset order
type CountryProvider interface {
	Countries() ([]string, error)
}
