// Package query answers free-text questions about the pharmacy dataset. A
// keyword intent router dispatches to specialized analyzers; anything the
// analyzers cannot claim falls through to the external language model.
package query

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rxassist/rxassist/internal/domain"
	"github.com/rxassist/rxassist/internal/llm"
	"github.com/rxassist/rxassist/internal/logger"
	"github.com/rxassist/rxassist/internal/store"
)

// Engine routes questions to analyzers over the dataset store, falling back
// to a language-model completion seeded with a dataset digest.
type Engine struct {
	store   *store.Store
	client  llm.ChatClient
	timeout time.Duration
	digest  string
}

// NewEngine creates a query engine over a loaded store. The client may be
// nil; the fallback path then reports a generation error instead of calling
// out. The digest is computed once, the dataset being immutable after load.
func NewEngine(st *store.Store, client llm.ChatClient, timeout time.Duration) *Engine {
	e := &Engine{
		store:   st,
		client:  client,
		timeout: timeout,
	}
	if st.Loaded() {
		e.digest = buildDigest(st)
	}
	return e
}

// route pairs a keyword trigger group with its analyzer. A handler returns
// ok=false when its entity (medication or insurance type) is absent from
// the question, letting evaluation continue down the table.
type route struct {
	keywords []string
	handler  func(lowerQuestion string) (string, bool)
}

func (e *Engine) routes() []route {
	return []route{
		{keywords: []string{"price", "cost"}, handler: e.priceRoute},
		{keywords: []string{"coverage", "insurance"}, handler: e.coverageRoute},
		{keywords: []string{"generic"}, handler: e.genericRoute},
		{keywords: []string{"authorization", "requirements"}, handler: e.authorizationRoute},
	}
}

// Response answers a question. Routes are tried in strict priority order
// with first-match-wins semantics; no analyzer failure ever escapes to the
// caller, everything is normalized to a generation-error string.
func (e *Engine) Response(ctx context.Context, question string) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			logger.L().Errorw("analyzer panic", "question", question, "panic", r)
			answer = errorReply(fmt.Errorf("%v", r))
		}
	}()

	if !e.store.Loaded() {
		return errorReply(store.ErrNotLoaded)
	}

	lower := strings.ToLower(question)
	for _, rt := range e.routes() {
		if !containsAny(lower, rt.keywords) {
			continue
		}
		if reply, ok := rt.handler(lower); ok {
			return reply
		}
	}

	return e.modelResponse(ctx, question)
}

func (e *Engine) priceRoute(lower string) (string, bool) {
	med, ok := e.firstMedicationIn(lower)
	if !ok {
		return "", false
	}
	return e.analyzePrice(med), true
}

func (e *Engine) coverageRoute(lower string) (string, bool) {
	for _, it := range domain.InsuranceTypes {
		if strings.Contains(lower, strings.ToLower(string(it))) {
			return e.analyzeCoverage(string(it)), true
		}
	}
	return "", false
}

func (e *Engine) genericRoute(lower string) (string, bool) {
	med, ok := e.firstMedicationIn(lower)
	if !ok {
		return "", false
	}
	return e.genericAlternative(med), true
}

func (e *Engine) authorizationRoute(lower string) (string, bool) {
	med, ok := e.firstMedicationIn(lower)
	if !ok {
		return "", false
	}
	return e.authorizationRequirements(med), true
}

// firstMedicationIn scans medications in table order and returns the first
// whose name occurs as a substring of the lowercased question. Substring
// containment can shadow longer names that share a prefix; table order
// decides ties.
func (e *Engine) firstMedicationIn(lower string) (*domain.Medication, bool) {
	medications := e.store.Medications()
	for i := range medications {
		if strings.Contains(lower, strings.ToLower(medications[i].Name)) {
			return &medications[i], true
		}
	}
	return nil, false
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func errorReply(err error) string {
	return fmt.Sprintf("Error generating response: %v", err)
}

// modelResponse builds the single-shot prompt and delegates to the external
// model, with a bounded timeout. All failure modes collapse into the same
// generation-error string.
func (e *Engine) modelResponse(ctx context.Context, question string) string {
	if e.client == nil {
		return errorReply(fmt.Errorf("no language model configured"))
	}

	prompt := fmt.Sprintf(`Context:
%s

Question: %s

Please provide a detailed answer based on the data provided.
Include relevant statistics and comparisons when applicable.
If the question cannot be answered with the available data, please say so.`, e.digest, question)

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	completion, err := e.client.Chat(ctx, prompt)
	if err != nil {
		logger.L().Warnw("model completion failed", "err", err)
		return errorReply(err)
	}
	return completion
}

// buildDigest summarizes the dataset for the model: category list, price
// range per category, and covered-medication counts per insurance type.
func buildDigest(st *store.Store) string {
	summary, err := st.Summary()
	if err != nil {
		return ""
	}
	categoryPrices, err := st.CategoryPrices()
	if err != nil {
		return ""
	}
	crossTab, err := st.InsuranceCoverageCrossTab()
	if err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("You are a specialized pharmacy data analyst assistant. Use the following data to answer questions:\n\n")
	b.WriteString("Medications Database Summary:\n")
	fmt.Fprintf(&b, "Total Medications: %d\n", summary.TotalMedications)
	fmt.Fprintf(&b, "Categories: %s\n", joinCategories(summary.Categories))
	fmt.Fprintf(&b, "Therapeutic Classes: %s\n", strings.Join(summary.TherapeuticClasses, ", "))

	b.WriteString("\nPrice Ranges:\n")
	for _, cp := range categoryPrices {
		fmt.Fprintf(&b, "- %s: $%s to $%s\n", cp.Category, cp.MinPrice.StringFixed(2), cp.MaxPrice.StringFixed(2))
	}

	b.WriteString("\nCoverage Summary:\n")
	for _, row := range crossTab {
		covered := 0
		for _, c := range row.Counts {
			if c.Label == string(domain.StatusCovered) {
				covered = c.Count
			}
		}
		fmt.Fprintf(&b, "- %s: %d covered medications\n", row.Label, covered)
	}

	return b.String()
}

func joinCategories(categories []domain.Category) string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
