package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense records money spent on a program.
type Expense struct {
	ID           string
	ProgramID    string
	ProgramTitle string
	Description  string
	Amount       decimal.Decimal
	ExpenseDate  time.Time
	InvoiceURL   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
