package models

import "time"

// Tracker types an expense can be filed under.
const (
	TrackerFull     = "Full Expense Tracker"
	TrackerBusiness = "Business Expense Tracker"
	TrackerPersonal = "Personal Expense Tracker"
	TrackerDaily    = "Daily Expense Tracker"
	TrackerOther    = "Other Expenses"
)

// TrackerTypes lists every valid tracker type in canonical form.
var TrackerTypes = []string{
	TrackerFull,
	TrackerBusiness,
	TrackerPersonal,
	TrackerDaily,
	TrackerOther,
}

// Expense is a single spend record.
// Username/UserEmail are stamped from the authorized account on insert;
// client-supplied identity fields are never trusted.
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"_id"`
	Username    string    `gorm:"size:64;not null" json:"username"`
	UserEmail   string    `gorm:"size:255;index;not null" json:"userEmail"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Category    string    `gorm:"size:64" json:"category"`
	Description string    `gorm:"size:255" json:"description"`
	Date        string    `gorm:"size:32" json:"date"` // free-form, as entered
	ExpenseType string    `gorm:"size:64;index;not null" json:"expenseType"`
	CreatedAt   time.Time `json:"createdAt"`
}
