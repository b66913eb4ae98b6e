package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DonationType distinguishes monetary from in-kind donations.
type DonationType string

const (
	DonationTypeMoney DonationType = "money"
	DonationTypeGoods DonationType = "goods"
)

// Valid reports whether t is a known donation type.
func (t DonationType) Valid() bool {
	return t == DonationTypeMoney || t == DonationTypeGoods
}

// DonationStatus is the lifecycle state of a donation. Only Received
// donations count toward public totals.
type DonationStatus string

const (
	DonationStatusPending  DonationStatus = "Pending"
	DonationStatusReceived DonationStatus = "Received"
)

// Valid reports whether s is a known status.
func (s DonationStatus) Valid() bool {
	return s == DonationStatusPending || s == DonationStatusReceived
}

// Donation is a supporter contribution record.
type Donation struct {
	ID           string
	DonorName    string
	DonorAddress string
	DonorContact string
	DonorCountry string
	ProgramID    string
	ProgramTitle string
	CategoryID   *string
	CategoryName string
	Type         DonationType
	Amount       *decimal.Decimal
	Status       DonationStatus
	DonationDate time.Time
	CreatedAt    time.Time
	Items        []DonationItem
}

// DonationItem is one goods line of an in-kind donation. Quantity is free text
// as entered by the donor.
type DonationItem struct {
	ID          string
	DonationID  string
	GoodsItemID string
	ItemName    string
	Quantity    string
}

// DonationFilter narrows donation listings. Zero values mean "any".
type DonationFilter struct {
	Status    DonationStatus
	ProgramID string
	Type      DonationType
}

// GoodsContribution is a donated goods quantity tagged with the status of the
// donation that carries it.
type GoodsContribution struct {
	GoodsItemID string
	Quantity    string
	Status      DonationStatus
}

// ProgramDonationStats summarises Received donations of one program.
type ProgramDonationStats struct {
	TotalRaised   decimal.Decimal
	DonationCount int
	GoodsCount    int
}
