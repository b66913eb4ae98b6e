package repo

import (
	"context"

	"github.com/shopspring/decimal"

	"society/internal/domain"
	"society/internal/infra"
	"society/internal/sqlinline"
)

// DashboardRepositoryPG serves the aggregate counters of the admin dashboard.
type DashboardRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewDashboardRepository(sql infra.SQLExecutor) *DashboardRepositoryPG {
	return &DashboardRepositoryPG{sql: sql}
}

func (r *DashboardRepositoryPG) CountPrograms(ctx context.Context) (int, error) {
	var n int
	if err := r.sql.QueryRow(ctx, sqlinline.QCountPrograms).Scan(&n); err != nil {
		return 0, mapErr(err)
	}
	return n, nil
}

// DonationTotals counts every donation and sums Received money donations.
func (r *DashboardRepositoryPG) DonationTotals(ctx context.Context) (int, decimal.Decimal, error) {
	var n int
	var raised string
	if err := r.sql.QueryRow(ctx, sqlinline.QDonationTotals).Scan(&n, &raised); err != nil {
		return 0, decimal.Zero, mapErr(err)
	}
	total, err := parseDecimal(raised)
	return n, total, err
}

func (r *DashboardRepositoryPG) ExpenseTotals(ctx context.Context) (int, decimal.Decimal, error) {
	var n int
	var amount string
	if err := r.sql.QueryRow(ctx, sqlinline.QExpenseTotals).Scan(&n, &amount); err != nil {
		return 0, decimal.Zero, mapErr(err)
	}
	total, err := parseDecimal(amount)
	return n, total, err
}

var _ domain.DashboardRepository = (*DashboardRepositoryPG)(nil)
