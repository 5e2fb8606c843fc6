package advisor

import (
	"fmt"
	"strings"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/models"
)

// BuildPrompt renders a spending summary into the advisory prompt. Categories
// are listed in first-seen order so the same summary always renders the same
// prompt text.
func BuildPrompt(summary models.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "As a financial advisor, analyze this spending data and provide personalized advice:\n\n")
	fmt.Fprintf(&b, "Total Income: $%s\n", summary.TotalIncome.StringFixed(2))
	fmt.Fprintf(&b, "Total Spent: $%s\n", summary.TotalSpent.StringFixed(2))
	fmt.Fprintf(&b, "Savings Rate: %s%%\n", summary.SavingsRate.StringFixed(1))
	fmt.Fprintf(&b, "Top Spending Category: %s\n\n", summary.TopCategory)

	b.WriteString("Spending by Category:\n")
	for _, category := range summary.CategoryOrder {
		fmt.Fprintf(&b, "%s: $%s\n", category, summary.CategorySpending[category].StringFixed(2))
	}

	b.WriteString(`
Please provide:
1. 3 specific, actionable financial advice items with priority levels (high/medium/low)
2. 3 spending trends or observations
3. 3 financial goals with completion percentages

Format the response as JSON with this structure:
{
  "advice": [
    {
      "type": "savings|spending|investment",
      "title": "Brief title",
      "description": "Detailed description",
      "icon": "trending|alert|target",
      "priority": "high|medium|low"
    }
  ],
  "trends": [
    "Trend observation 1",
    "Trend observation 2",
    "Trend observation 3"
  ],
  "goals": [
    "Goal name: X% complete",
    "Goal name: X% complete",
    "Goal name: X% complete"
  ]
}`)

	return b.String()
}

// CleanModelJSON strips Markdown code fences and surrounding chatter that
// models sometimes wrap around JSON output, keeping the outermost object.
func CleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// If there is still junk around the JSON, keep only the first '{' through
	// the last '}'.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
