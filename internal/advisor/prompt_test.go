package advisor

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/models"
)

func sampleSummary() models.Summary {
	return models.Summary{
		TotalSpent:  decimal.RequireFromString("661.00"),
		TotalIncome: decimal.RequireFromString("5200.00"),
		SavingsRate: decimal.RequireFromString("87.2885"),
		TopCategory: "Food & Dining",
		CategorySpending: map[string]decimal.Decimal{
			"Food & Dining":  decimal.RequireFromString("241.35"),
			"Transportation": decimal.RequireFromString("69.12"),
			"Shopping":       decimal.RequireFromString("324.55"),
			"Entertainment":  decimal.RequireFromString("25.98"),
		},
		CategoryOrder: []string{"Food & Dining", "Transportation", "Shopping", "Entertainment"},
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleSummary())

	assert.Contains(t, prompt, "Total Income: $5200.00")
	assert.Contains(t, prompt, "Total Spent: $661.00")
	assert.Contains(t, prompt, "Savings Rate: 87.3%")
	assert.Contains(t, prompt, "Top Spending Category: Food & Dining")
	assert.Contains(t, prompt, "Food & Dining: $241.35")
	assert.Contains(t, prompt, `"type": "savings|spending|investment"`)

	// Category lines appear in first-seen order.
	assert.Less(t,
		strings.Index(prompt, "Food & Dining: $"),
		strings.Index(prompt, "Shopping: $"))
}

func TestBuildPromptDeterministic(t *testing.T) {
	first := BuildPrompt(sampleSummary())
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, BuildPrompt(sampleSummary()))
	}
}

func TestCleanModelJSON(t *testing.T) {
	want := `{"advice":[],"trends":[],"goals":[]}`

	cases := map[string]string{
		"bare":             want,
		"json fence":       "```json\n" + want + "\n```",
		"plain fence":      "```\n" + want + "\n```",
		"leading chatter":  "Here is your analysis:\n" + want,
		"trailing chatter": want + "\nLet me know if you need more detail.",
		"whitespace":       "\n\n  " + want + "  \n",
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			cleaned := CleanModelJSON(raw)
			assert.Equal(t, want, cleaned)

			var payload models.InsightPayload
			require.NoError(t, json.Unmarshal([]byte(cleaned), &payload))
		})
	}
}
