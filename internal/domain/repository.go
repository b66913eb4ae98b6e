package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProgramRepository persists programs and their images.
type ProgramRepository interface {
	List(ctx context.Context, filter ProgramFilter) ([]Program, error)
	Get(ctx context.Context, id string) (*Program, error)
	Create(ctx context.Context, p *Program) error
	Update(ctx context.Context, p *Program) error
	Delete(ctx context.Context, id string) error
	ListImages(ctx context.Context, programID string) ([]ProgramImage, error)
	GetImage(ctx context.Context, id string) (*ProgramImage, error)
	AddImage(ctx context.Context, img *ProgramImage) error
	DeleteImage(ctx context.Context, id string) error
	NextGalleryOrder(ctx context.Context, programID string) (int, error)
}

// CatalogRepository persists donation categories, goods items and program requirements.
type CatalogRepository interface {
	ListCategories(ctx context.Context, programID string) ([]DonationCategory, error)
	GetCategory(ctx context.Context, id string) (*DonationCategory, error)
	CreateCategory(ctx context.Context, c *DonationCategory) error
	DeleteCategory(ctx context.Context, id string) error

	ListGoodsItems(ctx context.Context, categoryID string) ([]GoodsItem, error)
	CreateGoodsItem(ctx context.Context, item *GoodsItem) error
	UpdateGoodsItem(ctx context.Context, item *GoodsItem) error
	DeleteGoodsItem(ctx context.Context, id string) error

	ListRequirements(ctx context.Context, programID string) ([]GoodsRequirement, error)
	CreateRequirement(ctx context.Context, r *GoodsRequirement) error
	DeleteRequirement(ctx context.Context, id string) error
	RequiredItems(ctx context.Context, programID string) ([]RequiredItem, error)
}

// DonationRepository handles donation persistence.
type DonationRepository interface {
	Create(ctx context.Context, d *Donation) error
	List(ctx context.Context, filter DonationFilter) ([]Donation, error)
	ListItems(ctx context.Context, donationIDs []string) ([]DonationItem, error)
	UpdateStatus(ctx context.Context, id string, status DonationStatus) error
	ProgramStats(ctx context.Context, programID string) (ProgramDonationStats, error)
	GoodsContributions(ctx context.Context, programID string) ([]GoodsContribution, error)
}

// ExpenseRepository persists program expenses.
type ExpenseRepository interface {
	List(ctx context.Context, programID string) ([]Expense, error)
	Get(ctx context.Context, id string) (*Expense, error)
	Create(ctx context.Context, e *Expense) error
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id string) error
	TotalForProgram(ctx context.Context, programID string) (decimal.Decimal, error)
}

// TeamRepository persists team members.
type TeamRepository interface {
	List(ctx context.Context, year string) ([]TeamMember, error)
	Get(ctx context.Context, id string) (*TeamMember, error)
	Create(ctx context.Context, m *TeamMember) error
	Update(ctx context.Context, m *TeamMember) error
	Delete(ctx context.Context, id string) error
}

// UserRepository defines access methods for users.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, u *User) error
	SetAdmin(ctx context.Context, email string, isAdmin bool) error
}

// DashboardRepository serves aggregate counters for the admin panel.
type DashboardRepository interface {
	CountPrograms(ctx context.Context) (int, error)
	DonationTotals(ctx context.Context) (count int, raised decimal.Decimal, err error)
	ExpenseTotals(ctx context.Context) (count int, amount decimal.Decimal, err error)
}
