package model

import (
	"time"

	"github.com/google/uuid"
)

// Expense represents a single recorded transaction.
type Expense struct {
	Date        time.Time `json:"date"`
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Amount      float64   `json:"amount"`
}

// NewExpense creates an expense with a freshly assigned ID. The ID is the
// identity key for update and delete and never changes afterwards.
func NewExpense(amount float64, category Category, description string, date time.Time) Expense {
	return Expense{
		ID:          uuid.NewString(),
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}
}

// FormattedAmount renders the amount as a US dollar string, e.g. "$1,234.56".
// The filter's text match runs against this exact rendering.
func (e Expense) FormattedAmount() string {
	return FormatUSD(e.Amount)
}

// FormattedDate renders the date in medium format, e.g. "Jan 15, 2024".
func (e Expense) FormattedDate() string {
	return e.Date.Format("Jan 2, 2006")
}
