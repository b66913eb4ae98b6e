package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"society/internal/domain"
	"society/internal/money"
	"society/internal/progress"
)

// DonationInput is a donor's submission as entered on the donate form.
type DonationInput struct {
	DonorName    string
	DonorAddress string
	DonorContact string
	DonorCountry string
	ProgramID    string
	CategoryID   string
	Type         domain.DonationType
	Amount       string
	Items        []DonationItemInput
}

type DonationItemInput struct {
	GoodsItemID string
	Quantity    string
}

// DonationHistory lists Received donations with their totals.
type DonationHistory struct {
	Donations  []domain.Donation
	MoneyTotal decimal.Decimal
	GoodsCount int
}

// DonationCounts are the tab counters of the admin donations page.
type DonationCounts struct {
	All      int
	Pending  int
	Received int
}

type DonationService struct {
	donations domain.DonationRepository
	programs  domain.ProgramRepository
	catalog   domain.CatalogRepository
}

func NewDonationService(donations domain.DonationRepository, programs domain.ProgramRepository, catalog domain.CatalogRepository) *DonationService {
	return &DonationService{donations: donations, programs: programs, catalog: catalog}
}

// Submit validates a donation and stores it as Pending. Goods quantities must
// start with a number so they can later count toward progress.
func (s *DonationService) Submit(ctx context.Context, in DonationInput) (*domain.Donation, error) {
	d := &domain.Donation{
		DonorName:    strings.TrimSpace(in.DonorName),
		DonorAddress: strings.TrimSpace(in.DonorAddress),
		DonorContact: strings.TrimSpace(in.DonorContact),
		DonorCountry: strings.ToUpper(strings.TrimSpace(in.DonorCountry)),
		ProgramID:    strings.TrimSpace(in.ProgramID),
		Type:         in.Type,
		Status:       domain.DonationStatusPending,
	}
	if d.DonorName == "" || d.DonorAddress == "" || d.DonorContact == "" {
		return nil, fmt.Errorf("%w: name, address and contact are required", domain.ErrInvalidInput)
	}
	if d.ProgramID == "" {
		return nil, fmt.Errorf("%w: program is required", domain.ErrInvalidInput)
	}
	if !d.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown donation type %q", domain.ErrInvalidInput, in.Type)
	}

	program, err := s.programs.Get(ctx, d.ProgramID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: program does not exist", domain.ErrInvalidInput)
		}
		return nil, err
	}
	if !program.IsCharity() || program.Status != domain.ProgramStatusPublished {
		return nil, fmt.Errorf("%w: program does not accept donations", domain.ErrInvalidInput)
	}

	if categoryID := strings.TrimSpace(in.CategoryID); categoryID != "" {
		category, err := s.catalog.GetCategory(ctx, categoryID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: category does not exist", domain.ErrInvalidInput)
			}
			return nil, err
		}
		if category.ProgramID != program.ID {
			return nil, fmt.Errorf("%w: category belongs to another program", domain.ErrInvalidInput)
		}
		d.CategoryID = &category.ID
	}

	switch d.Type {
	case domain.DonationTypeMoney:
		amount, ok, err := money.Parse(in.Amount)
		if err != nil || !ok || !amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidInput)
		}
		d.Amount = &amount
	case domain.DonationTypeGoods:
		if d.CategoryID == nil {
			return nil, fmt.Errorf("%w: select a category for goods donations", domain.ErrInvalidInput)
		}
		items, err := s.goodsItems(ctx, *d.CategoryID, in.Items)
		if err != nil {
			return nil, err
		}
		d.Items = items
	}

	if err := s.donations.Create(ctx, d); err != nil {
		return nil, err
	}
	d.ProgramTitle = program.Title
	return d, nil
}

func (s *DonationService) goodsItems(ctx context.Context, categoryID string, in []DonationItemInput) ([]domain.DonationItem, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: select at least one item", domain.ErrInvalidInput)
	}
	catalog, err := s.catalog.ListGoodsItems(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(catalog))
	for _, g := range catalog {
		names[g.ID] = g.Name
	}

	seen := make(map[string]bool, len(in))
	items := make([]domain.DonationItem, 0, len(in))
	for _, it := range in {
		name, ok := names[it.GoodsItemID]
		if !ok {
			return nil, fmt.Errorf("%w: item %q is not in the selected category", domain.ErrInvalidInput, it.GoodsItemID)
		}
		if seen[it.GoodsItemID] {
			return nil, fmt.Errorf("%w: item %q listed twice", domain.ErrInvalidInput, name)
		}
		seen[it.GoodsItemID] = true

		qty := strings.TrimSpace(it.Quantity)
		if _, err := progress.ParseQuantity(qty); err != nil {
			return nil, fmt.Errorf("%w: quantity for %s: %w", domain.ErrInvalidInput, name, err)
		}
		items = append(items, domain.DonationItem{GoodsItemID: it.GoodsItemID, ItemName: name, Quantity: qty})
	}
	return items, nil
}

// History returns Received donations, newest first, with their goods lines.
func (s *DonationService) History(ctx context.Context) (*DonationHistory, error) {
	donations, err := s.withItems(ctx, domain.DonationFilter{Status: domain.DonationStatusReceived})
	if err != nil {
		return nil, err
	}
	h := &DonationHistory{Donations: donations, MoneyTotal: progress.RaisedTotal(donations)}
	for _, d := range donations {
		if d.Type == domain.DonationTypeGoods {
			h.GoodsCount++
		}
	}
	return h, nil
}

// AdminList returns donations filtered by status together with the counters
// of every status.
func (s *DonationService) AdminList(ctx context.Context, status domain.DonationStatus) ([]domain.Donation, DonationCounts, error) {
	if status != "" && !status.Valid() {
		return nil, DonationCounts{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	all, err := s.withItems(ctx, domain.DonationFilter{})
	if err != nil {
		return nil, DonationCounts{}, err
	}

	counts := DonationCounts{All: len(all)}
	filtered := make([]domain.Donation, 0, len(all))
	for _, d := range all {
		switch d.Status {
		case domain.DonationStatusPending:
			counts.Pending++
		case domain.DonationStatusReceived:
			counts.Received++
		}
		if status == "" || d.Status == status {
			filtered = append(filtered, d)
		}
	}
	return filtered, counts, nil
}

// SetStatus moves a donation between Pending and Received.
func (s *DonationService) SetStatus(ctx context.Context, id string, status domain.DonationStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	return s.donations.UpdateStatus(ctx, id, status)
}

func (s *DonationService) withItems(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error) {
	donations, err := s.donations.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, d := range donations {
		if d.Type == domain.DonationTypeGoods {
			ids = append(ids, d.ID)
		}
	}
	items, err := s.donations.ListItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	byDonation := make(map[string][]domain.DonationItem, len(ids))
	for _, it := range items {
		byDonation[it.DonationID] = append(byDonation[it.DonationID], it)
	}
	for i := range donations {
		donations[i].Items = byDonation[donations[i].ID]
	}
	return donations, nil
}
