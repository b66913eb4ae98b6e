package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is an account that can sign in. Admin access is granted solely by IsAdmin.
type User struct {
	ID           string
	Email        string
	FullName     string
	IsAdmin      bool
	PasswordHash string
	CreatedAt    time.Time
}

// DashboardTotals feeds the admin landing page. AmountRaised only includes
// Received money donations.
type DashboardTotals struct {
	Programs       int
	Donations      int
	Expenses       int
	AmountRaised   decimal.Decimal
	ExpensesAmount decimal.Decimal
}
