package integration

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxassist/rxassist/internal/query"
	"github.com/rxassist/rxassist/internal/store"
)

type staticChat struct {
	reply string
}

func (c *staticChat) Chat(ctx context.Context, prompt string) (string, error) {
	return c.reply, nil
}

// TestDatasetLifecycle tests the full seed, load, and query pipeline against
// a fresh data directory.
func TestDatasetLifecycle(t *testing.T) {
	dir := t.TempDir()
	st := store.NewStore(dir)

	t.Run("seed_and_load", func(t *testing.T) {
		require.NoError(t, st.Load(), "Should seed and load a fresh directory")
		require.True(t, st.Loaded())

		assert.Len(t, st.Medications(), 10, "Should load all sample medications")
		assert.Len(t, st.PriceRules(), 7, "Should load all sample price rules")
		assert.Len(t, st.Policies(), 3, "Should load all sample policies")
	})

	t.Run("summary", func(t *testing.T) {
		summary, err := st.Summary()
		require.NoError(t, err)

		assert.Equal(t, 10, summary.TotalMedications)
		assert.Equal(t, 3, summary.TotalPolicies)
		assert.Equal(t, "1113.99", summary.AverageBasePrice.StringFixed(2))
	})

	t.Run("analyzer_routes", func(t *testing.T) {
		engine := query.NewEngine(st, &staticChat{reply: "model reply"}, time.Second)
		ctx := context.Background()

		answer := engine.Response(ctx, "What is the price of Lipitor?")
		assert.True(t, strings.HasPrefix(answer, "Price Analysis for Lipitor:"), answer)

		answer = engine.Response(ctx, "How is Medicare coverage?")
		assert.True(t, strings.HasPrefix(answer, "Coverage Analysis for Medicare:"), answer)

		answer = engine.Response(ctx, "Is there a generic for Lipitor?")
		assert.Contains(t, answer, "Generic Alternative for Lipitor:")

		answer = engine.Response(ctx, "What are the authorization requirements for Humira?")
		assert.Contains(t, answer, "Prior Authorization Required")
	})

	t.Run("model_fallback", func(t *testing.T) {
		engine := query.NewEngine(st, &staticChat{reply: "model reply"}, time.Second)

		answer := engine.Response(context.Background(), "Which manufacturer appears most often?")
		assert.Equal(t, "model reply", answer)
	})

	t.Run("related_questions", func(t *testing.T) {
		suggester, err := query.NewSuggester()
		require.NoError(t, err)

		related := suggester.Suggest("What is the price of Lipitor?")
		require.Len(t, related, 3)
		assert.Equal(t, "What are the cheapest medications in this category?", related[0])
	})
}

// TestUnloadedStoreRefusal tests that queries fail closed when the dataset
// never loaded.
func TestUnloadedStoreRefusal(t *testing.T) {
	st := store.NewStore(t.TempDir())
	engine := query.NewEngine(st, &staticChat{reply: "model reply"}, time.Second)

	answer := engine.Response(context.Background(), "What is the price of Lipitor?")
	assert.Equal(t, "Error generating response: dataset not loaded", answer)

	_, err := st.Summary()
	assert.ErrorIs(t, err, store.ErrNotLoaded)
}

// TestSeedConsistency tests that repeated loads of the same directory see
// identical data.
func TestSeedConsistency(t *testing.T) {
	dir := t.TempDir()

	first := store.NewStore(dir)
	require.NoError(t, first.Load())

	second := store.NewStore(dir)
	require.NoError(t, second.Load())

	assert.Equal(t, first.Medications(), second.Medications(), "Medication tables should match")
	assert.Equal(t, first.PriceRules(), second.PriceRules(), "Price rule tables should match")
	assert.Equal(t, first.Policies(), second.Policies(), "Policy tables should match")
}
