package models

import "errors"

// Advice item enumerations. These mirror the shape the advisory model is
// instructed to return; anything outside them is treated as unusable content.
const (
	AdviceTypeSavings    = "savings"
	AdviceTypeSpending   = "spending"
	AdviceTypeInvestment = "investment"

	AdviceIconTrending = "trending"
	AdviceIconAlert    = "alert"
	AdviceIconTarget   = "target"

	AdvicePriorityHigh   = "high"
	AdvicePriorityMedium = "medium"
	AdvicePriorityLow    = "low"
)

var (
	ErrNoAdvice      = errors.New("insight payload has no advice items")
	ErrNoTrends      = errors.New("insight payload has no trends")
	ErrNoGoals       = errors.New("insight payload has no goals")
	ErrInvalidAdvice = errors.New("advice item has missing or invalid fields")
)

// AdviceItem is a single actionable recommendation.
type AdviceItem struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Priority    string `json:"priority"`
}

// InsightPayload is the structured advice returned to callers. Regardless of
// how it was produced (model output or fallback) it always satisfies
// Validate.
type InsightPayload struct {
	Advice []AdviceItem `json:"advice"`
	Trends []string     `json:"trends"`
	Goals  []string     `json:"goals"`
}

// Validate checks that a payload matches the documented shape. Used to decide
// whether model output can be returned verbatim.
func (p *InsightPayload) Validate() error {
	if len(p.Advice) == 0 {
		return ErrNoAdvice
	}
	if len(p.Trends) == 0 {
		return ErrNoTrends
	}
	if len(p.Goals) == 0 {
		return ErrNoGoals
	}

	for _, item := range p.Advice {
		if item.Title == "" || item.Description == "" {
			return ErrInvalidAdvice
		}
		if !isValidAdviceType(item.Type) || !isValidAdviceIcon(item.Icon) || !isValidAdvicePriority(item.Priority) {
			return ErrInvalidAdvice
		}
	}

	return nil
}

func isValidAdviceType(adviceType string) bool {
	switch adviceType {
	case AdviceTypeSavings, AdviceTypeSpending, AdviceTypeInvestment:
		return true
	default:
		return false
	}
}

func isValidAdviceIcon(icon string) bool {
	switch icon {
	case AdviceIconTrending, AdviceIconAlert, AdviceIconTarget:
		return true
	default:
		return false
	}
}

func isValidAdvicePriority(priority string) bool {
	switch priority {
	case AdvicePriorityHigh, AdvicePriorityMedium, AdvicePriorityLow:
		return true
	default:
		return false
	}
}
