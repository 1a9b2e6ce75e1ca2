package search

import (
	"errors"
	"testing"
)

type staticProvider struct {
	countries []string
	err       error
}

func (p staticProvider) Countries() ([]string, error) {
	return p.countries, p.err
}

func testEngine() *Engine {
	return NewEngine(staticProvider{countries: []string{
		"Niger", "Nigeria", "Norway", "New Zealand", "United States", "Chad",
	}})
}

func TestSearchEmptyQuery(t *testing.T) {
	results, err := testEngine().Search(SearchOptions{Query: ""})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestSearchRanking(t *testing.T) {
	results, err := testEngine().Search(SearchOptions{Query: "niger"})
	if err != nil {
		t.Fatal(err)
	}

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	// Exact match outranks the prefix match regardless of dataset order.
	if results[0].Country != "Niger" || results[0].MatchType != MatchExact {
		t.Errorf("results[0] = %+v, want exact match on Niger", results[0])
	}
	if results[1].Country != "Nigeria" || results[1].MatchType != MatchPrefix {
		t.Errorf("results[1] = %+v, want prefix match on Nigeria", results[1])
	}
}

func TestSearchSubstring(t *testing.T) {
	results, err := testEngine().Search(SearchOptions{Query: "land"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Country != "New Zealand" {
		t.Fatalf("results = %+v, want substring match on New Zealand", results)
	}
	if results[0].MatchType != MatchSubstring {
		t.Errorf("match type = %q, want %q", results[0].MatchType, MatchSubstring)
	}
}

func TestSearchCaseSensitive(t *testing.T) {
	results, err := testEngine().Search(SearchOptions{Query: "norway", CaseSensitive: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("case-sensitive search matched %d results, want 0", len(results))
	}
}

func TestSearchExactMatchOnly(t *testing.T) {
	results, err := testEngine().Search(SearchOptions{Query: "niger", ExactMatch: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Country != "Niger" {
		t.Errorf("results = %+v, want only Niger", results)
	}
}

func TestSearchMaxResults(t *testing.T) {
	limit := 1
	results, err := testEngine().Search(SearchOptions{Query: "n", MaxResults: &limit})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Errorf("len(results) = %d, want 1", len(results))
	}
}

func TestSearchProviderError(t *testing.T) {
	engine := NewEngine(staticProvider{err: errors.New("artifact unavailable")})
	if _, err := engine.Search(SearchOptions{Query: "n"}); err == nil {
		t.Error("Search() returned nil error, want provider error")
	}
}

func TestSearchResultIndexMatchesDatasetOrder(t *testing.T) {
	results, err := testEngine().Search(SearchOptions{Query: "chad"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Index != 5 {
		t.Errorf("results = %+v, want Chad at index 5", results)
	}
}
