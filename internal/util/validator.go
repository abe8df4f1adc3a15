package util

import (
	"fmt"
	"strings"

	"github.com/ravindraogg/DUHACKS/internal/models"
)

// NormalizeTrackerType matches s against the canonical tracker types,
// ignoring case and surrounding whitespace. Historic clients disagree on
// casing ("full expense tracker" vs "Full Expense Tracker"), so the
// canonical form is decided here at the boundary.
func NormalizeTrackerType(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, t := range models.TrackerTypes {
		if strings.EqualFold(s, t) {
			return t, true
		}
	}
	return "", false
}

// ValidateAmount rejects negative or absurdly large amounts.
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("amount must not be negative, got %f", amount)
	}
	if amount >= 10000000 {
		return fmt.Errorf("amount too large, got %f", amount)
	}
	return nil
}
