package query

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed suggestions.yaml
var suggestionsYAML []byte

// maxSuggestions caps how many related questions are offered at once.
const maxSuggestions = 3

type suggestionGroup struct {
	Name      string   `yaml:"name"`
	Keywords  []string `yaml:"keywords"`
	Questions []string `yaml:"questions"`
}

type suggestionsFile struct {
	Groups []suggestionGroup `yaml:"groups"`
}

// Suggester offers follow-up questions keyed to the same keyword groups the
// intent router uses, in the same priority order.
type Suggester struct {
	groups []suggestionGroup
}

// NewSuggester parses the embedded suggestion catalog.
func NewSuggester() (*Suggester, error) {
	var file suggestionsFile
	if err := yaml.Unmarshal(suggestionsYAML, &file); err != nil {
		return nil, fmt.Errorf("parse suggestion catalog: %w", err)
	}
	if len(file.Groups) == 0 {
		return nil, fmt.Errorf("suggestion catalog is empty")
	}
	return &Suggester{groups: file.Groups}, nil
}

// Suggest returns up to three related questions. Candidates from every
// matching keyword group are concatenated in group order before truncation;
// a question matching no group yields nil.
func (s *Suggester) Suggest(question string) []string {
	lower := strings.ToLower(question)

	var suggestions []string
	for _, group := range s.groups {
		if containsAny(lower, group.Keywords) {
			suggestions = append(suggestions, group.Questions...)
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
