package handlers

import (
	"net/http"

	"society/internal/middleware"
)

func (a *App) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	totals, err := a.Dashboard.Summary(r.Context())
	if err != nil {
		a.fail(w, r, err, "load dashboard")
		return
	}
	tag := middleware.TagFromContext(r.Context())
	a.json(w, http.StatusOK, map[string]any{
		"total_programs":       totals.Programs,
		"total_donations":      totals.Donations,
		"total_expenses":       totals.Expenses,
		"total_amount_raised":  newAmount(totals.AmountRaised, tag),
		"total_expenses_spent": newAmount(totals.ExpensesAmount, tag),
	})
}
