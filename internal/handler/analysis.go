package handler

import (
	"net/http"

	"github.com/ravindraogg/DUHACKS/internal/models"
	"github.com/ravindraogg/DUHACKS/internal/util"

	"github.com/gin-gonic/gin"
)

// categoryAggregate mirrors the wire shape the dashboard charts expect.
type categoryAggregate struct {
	Category    string  `json:"_id"`
	TotalAmount float64 `json:"totalAmount"`
	Count       int64   `json:"count"`
}

// aggregateByCategory groups the account's expenses of one tracker type by
// category, summing amounts and counting rows per group. Order between
// groups is whatever the store returns; consumers sort as they like.
func (h *ExpenseHandler) aggregateByCategory(userEmail, expenseType string) ([]categoryAggregate, error) {
	rows := make([]categoryAggregate, 0)
	err := h.DB.Model(&models.Expense{}).
		Select("category, SUM(amount) AS total_amount, COUNT(*) AS count").
		Where("user_email = ? AND expense_type = ?", userEmail, expenseType).
		Group("category").
		Scan(&rows).Error
	return rows, err
}

type analyzeReq struct {
	ExpenseType string        `json:"expenseType" binding:"required"`
	Expenses    []expenseItem `json:"expenses"` // accepted but recomputed server-side
}

// Analyze handles the submit-for-analysis form. The posted expense list is
// ignored; the aggregation always runs over what is actually stored.
func (h *ExpenseHandler) Analyze(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Fail(c, http.StatusUnauthorized, "No token provided")
		return
	}

	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, http.StatusBadRequest, "Invalid analysis request")
		return
	}

	expenseType, ok := util.NormalizeTrackerType(req.ExpenseType)
	if !ok {
		util.Fail(c, http.StatusBadRequest, "Invalid expense type")
		return
	}

	analysis, err := h.aggregateByCategory(user.Email, expenseType)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}

	util.OK(c, util.Response{
		"analysis": analysis,
		"message":  "Analysis completed successfully",
	})
}

// AnalyzeByType is the GET variant the analysis page fetches on load.
func (h *ExpenseHandler) AnalyzeByType(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Fail(c, http.StatusUnauthorized, "No token provided")
		return
	}

	expenseType, ok := util.NormalizeTrackerType(c.Param("expenseType"))
	if !ok {
		util.Fail(c, http.StatusBadRequest, "Invalid expense type")
		return
	}

	analysis, err := h.aggregateByCategory(user.Email, expenseType)
	if err != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}

	util.OK(c, util.Response{
		"analysis": analysis,
		"message":  "Analysis completed successfully",
	})
}
