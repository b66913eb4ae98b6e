package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"society/internal/domain"
)

type DashboardService struct {
	repo domain.DashboardRepository
}

func NewDashboardService(repo domain.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// Summary gathers the dashboard counters concurrently.
func (s *DashboardService) Summary(ctx context.Context) (domain.DashboardTotals, error) {
	var totals domain.DashboardTotals
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.repo.CountPrograms(gctx)
		if err != nil {
			return fmt.Errorf("count programs: %w", err)
		}
		totals.Programs = n
		return nil
	})
	g.Go(func() error {
		n, raised, err := s.repo.DonationTotals(gctx)
		if err != nil {
			return fmt.Errorf("donation totals: %w", err)
		}
		totals.Donations, totals.AmountRaised = n, raised
		return nil
	})
	g.Go(func() error {
		n, spent, err := s.repo.ExpenseTotals(gctx)
		if err != nil {
			return fmt.Errorf("expense totals: %w", err)
		}
		totals.Expenses, totals.ExpensesAmount = n, spent
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.DashboardTotals{}, err
	}
	return totals, nil
}
