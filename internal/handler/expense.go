package handler

import (
	"net/http"
	"strconv"

	"github.com/ravindraogg/DUHACKS/internal/models"
	"github.com/ravindraogg/DUHACKS/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ExpenseHandler owns expense CRUD and aggregation.
type ExpenseHandler struct {
	DB *gorm.DB
}

func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{DB: db}
}

// ---------- bulk add ----------

type expenseItem struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

type addExpensesReq struct {
	Expenses    []expenseItem `json:"expenses"`
	ExpenseType string        `json:"expenseType"`
}

// AddExpenses bulk-inserts the posted items. Each row is stamped with the
// authorized account's identity and a server timestamp; any identity fields
// the client sends are ignored.
func (h *ExpenseHandler) AddExpenses(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Fail(c, http.StatusUnauthorized, "No token provided")
		return
	}

	var req addExpensesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Fail(c, http.StatusBadRequest, "Invalid expenses data or missing expense type")
		return
	}
	if len(req.Expenses) == 0 || req.ExpenseType == "" {
		util.Fail(c, http.StatusBadRequest, "Invalid expenses data or missing expense type")
		return
	}

	expenseType, ok := util.NormalizeTrackerType(req.ExpenseType)
	if !ok {
		util.Fail(c, http.StatusBadRequest, "Invalid expense type")
		return
	}

	rows := make([]models.Expense, 0, len(req.Expenses))
	for _, item := range req.Expenses {
		if err := util.ValidateAmount(item.Amount); err != nil {
			util.Fail(c, http.StatusBadRequest, "Invalid expense amount")
			return
		}
		rows = append(rows, models.Expense{
			Username:    user.Name,
			UserEmail:   user.Email,
			Amount:      item.Amount,
			Category:    item.Category,
			Description: item.Description,
			Date:        item.Date,
			ExpenseType: expenseType,
		})
	}

	if err := h.DB.Create(&rows).Error; err != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}

	util.Created(c, util.Response{"message": "Expenses added successfully"})
}

// ---------- list by tracker type ----------

func (h *ExpenseHandler) ListByType(c *gin.Context) {
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

	expenses := make([]models.Expense, 0)
	if err := h.DB.
		Where("user_email = ? AND expense_type = ?", user.Email, expenseType).
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}

	util.OK(c, util.Response{"expenses": expenses})
}

// ---------- recent ----------

const recentLimit = 5

// ListRecent returns the newest insertions across all tracker types.
func (h *ExpenseHandler) ListRecent(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Fail(c, http.StatusUnauthorized, "No token provided")
		return
	}

	expenses := make([]models.Expense, 0, recentLimit)
	if err := h.DB.
		Where("user_email = ?", user.Email).
		Order("created_at DESC, id DESC").
		Limit(recentLimit).
		Find(&expenses).Error; err != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}

	util.OK(c, util.Response{"expenses": expenses})
}

// ---------- delete ----------

// Delete removes one expense. Ownership is part of the predicate, so an id
// belonging to another account reads as not found.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Fail(c, http.StatusUnauthorized, "No token provided")
		return
	}

	id, err := strconv.Atoi(c.Param("expenseId"))
	if err != nil || id <= 0 {
		util.Fail(c, http.StatusBadRequest, "Invalid expense id")
		return
	}

	res := h.DB.
		Where("id = ? AND user_email = ?", id, user.Email).
		Delete(&models.Expense{})
	if res.Error != nil {
		util.Fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	if res.RowsAffected == 0 {
		util.Fail(c, http.StatusNotFound, "Expense not found")
		return
	}

	util.OK(c, util.Response{"message": "Expense deleted successfully"})
}
