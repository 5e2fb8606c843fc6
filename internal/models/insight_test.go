package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPayload() InsightPayload {
	return InsightPayload{
		Advice: []AdviceItem{
			{Type: AdviceTypeSavings, Title: "Save more", Description: "Cut dining spend", Icon: AdviceIconTrending, Priority: AdvicePriorityHigh},
		},
		Trends: []string{"Dining is your largest expense"},
		Goals:  []string{"Emergency fund: 75% complete"},
	}
}

func TestInsightPayloadValidate(t *testing.T) {
	payload := validPayload()
	assert.NoError(t, payload.Validate())
}

func TestInsightPayloadValidate_EmptySections(t *testing.T) {
	payload := validPayload()
	payload.Advice = nil
	assert.ErrorIs(t, payload.Validate(), ErrNoAdvice)

	payload = validPayload()
	payload.Trends = []string{}
	assert.ErrorIs(t, payload.Validate(), ErrNoTrends)

	payload = validPayload()
	payload.Goals = nil
	assert.ErrorIs(t, payload.Validate(), ErrNoGoals)
}

func TestInsightPayloadValidate_EnumFields(t *testing.T) {
	payload := validPayload()
	payload.Advice[0].Type = "speculation"
	assert.ErrorIs(t, payload.Validate(), ErrInvalidAdvice)

	payload = validPayload()
	payload.Advice[0].Icon = "rocket"
	assert.ErrorIs(t, payload.Validate(), ErrInvalidAdvice)

	payload = validPayload()
	payload.Advice[0].Priority = "urgent"
	assert.ErrorIs(t, payload.Validate(), ErrInvalidAdvice)

	payload = validPayload()
	payload.Advice[0].Description = ""
	assert.ErrorIs(t, payload.Validate(), ErrInvalidAdvice)
}
