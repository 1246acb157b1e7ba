package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSuggester(t *testing.T) *Suggester {
	t.Helper()
	s, err := NewSuggester()
	require.NoError(t, err)
	return s
}

func TestSuggestPriceGroup(t *testing.T) {
	s := newTestSuggester(t)

	got := s.Suggest("What is the price of Lipitor?")

	assert.Equal(t, []string{
		"What are the cheapest medications in this category?",
		"How does this price compare to similar medications?",
		"Are there any generic alternatives available?",
	}, got)
}

func TestSuggestConcatenatesGroupsInOrder(t *testing.T) {
	s := newTestSuggester(t)

	// Both the coverage and generic groups match; coverage comes first in
	// the catalog so its questions fill the cap.
	got := s.Suggest("insurance coverage for generics")

	assert.Equal(t, []string{
		"What are the coverage requirements?",
		"Which insurance type offers the best coverage?",
		"Are prior authorizations required?",
	}, got)
}

func TestSuggestNoMatch(t *testing.T) {
	s := newTestSuggester(t)

	assert.Nil(t, s.Suggest("What time is it?"))
}

func TestSuggestNeverExceedsCap(t *testing.T) {
	s := newTestSuggester(t)

	questions := []string{
		"price and cost and coverage and insurance and generic",
		"authorization requirements and generic cost",
		"insurance",
	}
	for _, q := range questions {
		assert.LessOrEqual(t, len(s.Suggest(q)), maxSuggestions, q)
	}
}

func TestSuggestCaseInsensitive(t *testing.T) {
	s := newTestSuggester(t)

	assert.NotEmpty(t, s.Suggest("AUTHORIZATION Requirements?"))
}
