package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"society/internal/domain"
)

type memPrograms struct {
	mu       sync.Mutex
	programs map[string]*domain.Program
	images   []domain.ProgramImage
	seq      int
}

func newMemPrograms(ps ...domain.Program) *memPrograms {
	m := &memPrograms{programs: map[string]*domain.Program{}}
	for i := range ps {
		p := ps[i]
		m.programs[p.ID] = &p
	}
	return m
}

func (m *memPrograms) next(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *memPrograms) List(_ context.Context, f domain.ProgramFilter) ([]domain.Program, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Program
	for _, p := range m.programs {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (m *memPrograms) Get(_ context.Context, id string) (*domain.Program, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.programs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memPrograms) Create(_ context.Context, p *domain.Program) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.next("p")
	cp := *p
	m.programs[p.ID] = &cp
	return nil
}

func (m *memPrograms) Update(_ context.Context, p *domain.Program) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.programs[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	m.programs[p.ID] = &cp
	return nil
}

func (m *memPrograms) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.programs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.programs, id)
	return nil
}

func (m *memPrograms) ListImages(_ context.Context, programID string) ([]domain.ProgramImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.ProgramImage
	for _, img := range m.images {
		if img.ProgramID == programID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (m *memPrograms) GetImage(_ context.Context, id string) (*domain.ProgramImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, img := range m.images {
		if img.ID == id {
			cp := img
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memPrograms) AddImage(_ context.Context, img *domain.ProgramImage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	img.ID = m.next("img")
	m.images = append(m.images, *img)
	return nil
}

func (m *memPrograms) DeleteImage(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, img := range m.images {
		if img.ID == id {
			m.images = append(m.images[:i], m.images[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memPrograms) NextGalleryOrder(_ context.Context, programID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := 1
	for _, img := range m.images {
		if img.ProgramID == programID && img.DisplayOrder >= next {
			next = img.DisplayOrder + 1
		}
	}
	return next, nil
}

type memCatalog struct {
	categories []domain.DonationCategory
	goods      []domain.GoodsItem
	required   map[string][]domain.RequiredItem
}

func (m *memCatalog) ListCategories(_ context.Context, programID string) ([]domain.DonationCategory, error) {
	var out []domain.DonationCategory
	for _, c := range m.categories {
		if programID == "" || c.ProgramID == programID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCatalog) GetCategory(_ context.Context, id string) (*domain.DonationCategory, error) {
	for _, c := range m.categories {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memCatalog) CreateCategory(context.Context, *domain.DonationCategory) error { return nil }
func (m *memCatalog) DeleteCategory(context.Context, string) error                   { return nil }

func (m *memCatalog) ListGoodsItems(_ context.Context, categoryID string) ([]domain.GoodsItem, error) {
	var out []domain.GoodsItem
	for _, g := range m.goods {
		if categoryID == "" || g.CategoryID == categoryID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memCatalog) CreateGoodsItem(context.Context, *domain.GoodsItem) error { return nil }
func (m *memCatalog) UpdateGoodsItem(context.Context, *domain.GoodsItem) error { return nil }
func (m *memCatalog) DeleteGoodsItem(context.Context, string) error            { return nil }

func (m *memCatalog) ListRequirements(context.Context, string) ([]domain.GoodsRequirement, error) {
	return nil, nil
}

func (m *memCatalog) CreateRequirement(context.Context, *domain.GoodsRequirement) error { return nil }
func (m *memCatalog) DeleteRequirement(context.Context, string) error                   { return nil }

func (m *memCatalog) RequiredItems(_ context.Context, programID string) ([]domain.RequiredItem, error) {
	return m.required[programID], nil
}

type memDonations struct {
	mu        sync.Mutex
	donations []domain.Donation
	created   []domain.Donation
}

func (m *memDonations) Create(_ context.Context, d *domain.Donation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.ID = fmt.Sprintf("d-%d", len(m.donations)+1)
	m.donations = append(m.donations, *d)
	m.created = append(m.created, *d)
	return nil
}

func (m *memDonations) List(_ context.Context, f domain.DonationFilter) ([]domain.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Donation
	for _, d := range m.donations {
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		if f.ProgramID != "" && d.ProgramID != f.ProgramID {
			continue
		}
		cp := d
		cp.Items = nil
		out = append(out, cp)
	}
	return out, nil
}

func (m *memDonations) ListItems(_ context.Context, ids []string) ([]domain.DonationItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []domain.DonationItem
	for _, d := range m.donations {
		if !want[d.ID] {
			continue
		}
		for _, it := range d.Items {
			it.DonationID = d.ID
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memDonations) UpdateStatus(_ context.Context, id string, status domain.DonationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.donations {
		if m.donations[i].ID == id {
			m.donations[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memDonations) ProgramStats(_ context.Context, programID string) (domain.ProgramDonationStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := domain.ProgramDonationStats{TotalRaised: decimal.Zero}
	for _, d := range m.donations {
		if d.ProgramID != programID || d.Status != domain.DonationStatusReceived {
			continue
		}
		switch d.Type {
		case domain.DonationTypeMoney:
			stats.DonationCount++
			stats.TotalRaised = stats.TotalRaised.Add(*d.Amount)
		case domain.DonationTypeGoods:
			stats.GoodsCount++
		}
	}
	return stats, nil
}

func (m *memDonations) GoodsContributions(_ context.Context, programID string) ([]domain.GoodsContribution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.GoodsContribution
	for _, d := range m.donations {
		if d.ProgramID != programID {
			continue
		}
		for _, it := range d.Items {
			out = append(out, domain.GoodsContribution{GoodsItemID: it.GoodsItemID, Quantity: it.Quantity, Status: d.Status})
		}
	}
	return out, nil
}

type memExpenses struct {
	totals map[string]decimal.Decimal
}

func (m *memExpenses) List(context.Context, string) ([]domain.Expense, error) { return nil, nil }
func (m *memExpenses) Get(context.Context, string) (*domain.Expense, error) {
	return nil, domain.ErrNotFound
}
func (m *memExpenses) Create(context.Context, *domain.Expense) error { return nil }
func (m *memExpenses) Update(context.Context, *domain.Expense) error { return nil }
func (m *memExpenses) Delete(context.Context, string) error          { return nil }
func (m *memExpenses) TotalForProgram(_ context.Context, id string) (decimal.Decimal, error) {
	return m.totals[id], nil
}

type memStore struct {
	mu       sync.Mutex
	uploaded []string
	deleted  []string
}

func (s *memStore) Upload(_ context.Context, bucket, filename string, _ []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	url := fmt.Sprintf("http://cdn.test/%s/%d-%s", bucket, len(s.uploaded)+1, filename)
	s.uploaded = append(s.uploaded, url)
	return url, nil
}

func (s *memStore) Delete(_ context.Context, _ string, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, url)
	return nil
}

type memTeam struct {
	members []domain.TeamMember
}

func (m *memTeam) List(_ context.Context, year string) ([]domain.TeamMember, error) {
	var out []domain.TeamMember
	for _, tm := range m.members {
		if year == "" || tm.Year == year {
			out = append(out, tm)
		}
	}
	return out, nil
}

func (m *memTeam) Get(_ context.Context, id string) (*domain.TeamMember, error) {
	for _, tm := range m.members {
		if tm.ID == id {
			cp := tm
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memTeam) Create(_ context.Context, tm *domain.TeamMember) error {
	tm.ID = fmt.Sprintf("m-%d", len(m.members)+1)
	m.members = append(m.members, *tm)
	return nil
}

func (m *memTeam) Update(_ context.Context, tm *domain.TeamMember) error {
	for i := range m.members {
		if m.members[i].ID == tm.ID {
			m.members[i] = *tm
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memTeam) Delete(_ context.Context, id string) error {
	for i := range m.members {
		if m.members[i].ID == id {
			m.members = append(m.members[:i], m.members[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memDashboard struct {
	err error
}

func (m memDashboard) CountPrograms(context.Context) (int, error) { return 4, m.err }

func (m memDashboard) DonationTotals(context.Context) (int, decimal.Decimal, error) {
	return 9, decimal.NewFromInt(250000), nil
}

func (m memDashboard) ExpenseTotals(context.Context) (int, decimal.Decimal, error) {
	return 3, decimal.NewFromInt(40000), nil
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
