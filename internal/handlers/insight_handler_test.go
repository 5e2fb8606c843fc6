package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/dto"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/models"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/services"
)

// fakeInsightService returns a fixed result and records the summary it saw.
type fakeInsightService struct {
	result      services.InsightResult
	seenSummary models.Summary
}

func (f *fakeInsightService) GenerateInsights(ctx context.Context, summary models.Summary) services.InsightResult {
	f.seenSummary = summary
	return f.result
}

func localResult() services.InsightResult {
	return services.InsightResult{
		Payload: models.InsightPayload{
			Advice: []models.AdviceItem{
				{
					Type:        models.AdviceTypeSavings,
					Title:       "Increase Your Savings",
					Description: "Cut discretionary spending by 10%.",
					Icon:        models.AdviceIconTrending,
					Priority:    models.AdvicePriorityHigh,
				},
			},
			Trends: []string{"Spending is concentrated in one category"},
			Goals:  []string{"Emergency fund: 75% complete"},
		},
		Tier: services.InsightTierLocal,
	}
}

type InsightHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	repo     *fakeTransactionRepo
	insights *fakeInsightService
	handler  *InsightHandler
}

func (suite *InsightHandlerTestSuite) SetupTest() {
	suite.echo = echo.New()
	suite.repo = &fakeTransactionRepo{transactions: models.SeedTransactions()}
	suite.insights = &fakeInsightService{result: localResult()}
	suite.handler = NewInsightHandler(
		suite.repo,
		services.NewAnalysisService(),
		suite.insights,
		zerolog.Nop(),
	)
}

func (suite *InsightHandlerTestSuite) newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return suite.echo.NewContext(req, rec), rec
}

func (suite *InsightHandlerTestSuite) TestGenerate() {
	c, rec := suite.newContext("/api/insights")

	suite.NoError(suite.handler.Generate(c))
	suite.Equal(http.StatusOK, rec.Code)

	var resp dto.InsightResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))

	suite.Equal("local", resp.Tier)
	suite.Len(resp.Insights.Advice, 1)
	suite.NotEmpty(resp.GeneratedAt)
	suite.Empty(resp.Category)

	suite.InDelta(661.00, resp.Analysis.TotalSpent, 0.001)
	suite.InDelta(241.35, resp.Analysis.CategorySpending["Food & Dining"], 0.001)

	// The insight service is fed the full-set summary.
	suite.Equal("Food & Dining", suite.insights.seenSummary.TopCategory)
}

func (suite *InsightHandlerTestSuite) TestGenerateForCategory() {
	c, rec := suite.newContext("/api/insights/category/entertainment")
	c.SetParamNames("category")
	c.SetParamValues("entertainment")

	suite.NoError(suite.handler.GenerateForCategory(c))
	suite.Equal(http.StatusOK, rec.Code)

	var resp dto.InsightResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))

	suite.Equal("entertainment", resp.Category)
	suite.InDelta(25.98, resp.Analysis.TotalSpent, 0.001)
	suite.Equal("Entertainment", suite.insights.seenSummary.TopCategory)
}

func (suite *InsightHandlerTestSuite) TestGenerateForUnknownCategoryIs404() {
	c, rec := suite.newContext("/api/insights/category/gambling")
	c.SetParamNames("category")
	c.SetParamValues("gambling")

	suite.NoError(suite.handler.GenerateForCategory(c))
	suite.Equal(http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	suite.Equal("CATEGORY_001", resp.Error.Code)
}

func (suite *InsightHandlerTestSuite) TestGenerateStoreFailure() {
	suite.repo.err = errSimulatedStore
	c, rec := suite.newContext("/api/insights")

	suite.NoError(suite.handler.Generate(c))
	suite.Equal(http.StatusInternalServerError, rec.Code)
}

func TestInsightHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InsightHandlerTestSuite))
}
