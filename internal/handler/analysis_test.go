package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ravindraogg/DUHACKS/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type AnalysisSuite struct {
	suite.Suite
	router     *gin.Engine
	db         *gorm.DB
	aliceToken string
	bobToken   string
}

func (s *AnalysisSuite) SetupTest() {
	s.router, s.db = setupServer(s.T())
	s.aliceToken = registerUser(s.T(), s.router, "Alice", "alice@example.com", "pw123456")
	s.bobToken = registerUser(s.T(), s.router, "Bob", "bob@example.com", "pw123456")
}

func TestAnalysisSuite(t *testing.T) {
	suite.Run(t, new(AnalysisSuite))
}

func (s *AnalysisSuite) seedDailyExpenses(token string) {
	w := doJSON(s.T(), s.router, http.MethodPost, "/api/expenses", token, map[string]interface{}{
		"expenseType": models.TrackerDaily,
		"expenses": []map[string]interface{}{
			{"amount": 10.0, "category": "Food", "date": "2026-01-01"},
			{"amount": 20.0, "category": "Food", "date": "2026-01-02"},
			{"amount": 5.0, "category": "Transport", "date": "2026-01-03"},
		},
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
}

type aggregateRow struct {
	Category    string  `json:"_id"`
	TotalAmount float64 `json:"totalAmount"`
	Count       int64   `json:"count"`
}

func (s *AnalysisSuite) decodeAnalysis(w *httptest.ResponseRecorder) map[string]aggregateRow {
	var body struct {
		Success  bool           `json:"success"`
		Analysis []aggregateRow `json:"analysis"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	s.Require().True(body.Success)

	// group order is unspecified, key by category
	out := make(map[string]aggregateRow, len(body.Analysis))
	for _, row := range body.Analysis {
		out[row.Category] = row
	}
	return out
}

func (s *AnalysisSuite) TestAggregateSumsAndCountsPerCategory() {
	s.seedDailyExpenses(s.aliceToken)
	// a row under a different tracker type must not leak into the aggregate
	w := doJSON(s.T(), s.router, http.MethodPost, "/api/expenses", s.aliceToken, map[string]interface{}{
		"expenseType": models.TrackerBusiness,
		"expenses":    []map[string]interface{}{{"amount": 100.0, "category": "Food"}},
	})
	s.Require().Equal(http.StatusCreated, w.Code)

	w = doJSON(s.T(), s.router, http.MethodPost, "/api/expenses/analysis", s.aliceToken, map[string]interface{}{
		"expenseType": models.TrackerDaily,
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	rows := s.decodeAnalysis(w)
	s.Require().Len(rows, 2)
	s.Equal(30.0, rows["Food"].TotalAmount)
	s.Equal(int64(2), rows["Food"].Count)
	s.Equal(5.0, rows["Transport"].TotalAmount)
	s.Equal(int64(1), rows["Transport"].Count)
}

func (s *AnalysisSuite) TestAggregateScopedToAccount() {
	s.seedDailyExpenses(s.aliceToken)

	w := doJSON(s.T(), s.router, http.MethodPost, "/api/expenses/analysis", s.bobToken, map[string]interface{}{
		"expenseType": models.TrackerDaily,
	})
	s.Require().Equal(http.StatusOK, w.Code)
	s.Empty(s.decodeAnalysis(w))
}

func (s *AnalysisSuite) TestAggregateGetVariantMatchesPost() {
	s.seedDailyExpenses(s.aliceToken)

	path := "/api/expenses/analysis/" + url.PathEscape(models.TrackerDaily)
	w := doJSON(s.T(), s.router, http.MethodGet, path, s.aliceToken, nil)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	rows := s.decodeAnalysis(w)
	s.Equal(30.0, rows["Food"].TotalAmount)
	s.Equal(5.0, rows["Transport"].TotalAmount)
}

func (s *AnalysisSuite) TestAggregateUnknownType() {
	w := doJSON(s.T(), s.router, http.MethodPost, "/api/expenses/analysis", s.aliceToken, map[string]interface{}{
		"expenseType": "Quantum Tracker",
	})
	s.Equal(http.StatusBadRequest, w.Code)
}

// The insights endpoint is a pass-through: whatever the completion endpoint
// answers comes back verbatim under "insights".
func (s *AnalysisSuite) TestGenerateInsightsPassThrough() {
	completion := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "cmpl-test",
			"object": "chat.completion",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Cut down on Food spending."}, "finish_reason": "stop"}]
		}`))
	}))
	defer completion.Close()

	router, _ := setupServerWithAI(s.T(), completion.URL)
	token := registerUser(s.T(), router, "Carol", "carol@example.com", "pw123456")

	w := doJSON(s.T(), router, http.MethodPost, "/api/generate-insights", token, map[string]interface{}{
		"categories": []string{"Food", "Transport"},
		"amounts":    []float64{30, 5},
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("Cut down on Food spending.", decode(s.T(), w)["insights"])
}

func (s *AnalysisSuite) TestGenerateInsightsUpstreamFailure() {
	completion := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer completion.Close()

	router, _ := setupServerWithAI(s.T(), completion.URL)
	token := registerUser(s.T(), router, "Carol", "carol@example.com", "pw123456")

	w := doJSON(s.T(), router, http.MethodPost, "/api/generate-insights", token, map[string]interface{}{
		"categories": []string{"Food"},
		"amounts":    []float64{30},
	})
	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal(false, decode(s.T(), w)["success"])
}
