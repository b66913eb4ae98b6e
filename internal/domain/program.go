package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProgramCategory enumerates the kinds of society programs.
type ProgramCategory string

const (
	ProgramCategoryEvent   ProgramCategory = "event"
	ProgramCategoryProject ProgramCategory = "project"
	ProgramCategoryCharity ProgramCategory = "charity"
)

// Valid reports whether c is a known category.
func (c ProgramCategory) Valid() bool {
	switch c {
	case ProgramCategoryEvent, ProgramCategoryProject, ProgramCategoryCharity:
		return true
	}
	return false
}

// ProgramStatus is the publication state of a program.
type ProgramStatus string

const (
	ProgramStatusDraft     ProgramStatus = "draft"
	ProgramStatusPublished ProgramStatus = "published"
)

// Valid reports whether s is a known status.
func (s ProgramStatus) Valid() bool {
	return s == ProgramStatusDraft || s == ProgramStatusPublished
}

// Program is an event, project or charity fundraising initiative.
type Program struct {
	ID          string
	Title       string
	Category    ProgramCategory
	Description string
	Date        time.Time
	Location    string
	FundingGoal *decimal.Decimal
	Status      ProgramStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsCharity reports whether the program accepts donations.
func (p Program) IsCharity() bool {
	return p.Category == ProgramCategoryCharity
}

// ProgramImage is a stored picture attached to a program. Display order 0 is
// the feature image; the gallery starts at 1.
type ProgramImage struct {
	ID           string
	ProgramID    string
	ImageURL     string
	DisplayOrder int
	CreatedAt    time.Time
}

// FeatureImageOrder is the display order reserved for the feature image.
const FeatureImageOrder = 0

// ProgramFilter narrows program listings. Zero values mean "any".
type ProgramFilter struct {
	Category ProgramCategory
	Status   ProgramStatus
	Limit    int
}

// DonationCategory groups goods items under a charity program.
type DonationCategory struct {
	ID           string
	ProgramID    string
	ProgramTitle string
	Name         string
	CreatedAt    time.Time
}

// GoodsItem is a catalog entry donors can contribute in kind.
type GoodsItem struct {
	ID               string
	CategoryID       string
	CategoryName     string
	Name             string
	RequiredQuantity string
	CreatedAt        time.Time
}

// GoodsRequirement pins a required quantity of a goods item to a program.
type GoodsRequirement struct {
	ID               string
	ProgramID        string
	GoodsItemID      string
	ItemName         string
	CategoryName     string
	RequiredQuantity string
	CreatedAt        time.Time
}

// RequiredItem is the resolved target for one goods item of a program.
type RequiredItem struct {
	ItemID           string
	ItemName         string
	RequiredQuantity string
}
