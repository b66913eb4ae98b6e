package progress

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"society/internal/domain"
)

func TestPercent(t *testing.T) {
	cases := []struct {
		name        string
		part, total int64
		want        int
	}{
		{"zero required", 10, 0, 0},
		{"negative required", 10, -4, 0},
		{"nothing collected", 0, 100, 0},
		{"half", 50, 100, 50},
		{"rounds half up", 1, 8, 13},
		{"rounds down", 1, 3, 33},
		{"clamps at 100", 250, 100, 100},
		{"exact", 100, 100, 100},
		{"negative part", -5, 100, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Percent(tc.part, tc.total))
		})
	}
}

func TestFunding(t *testing.T) {
	goal := decimal.NewFromInt(500000)
	assert.Equal(t, 0, Funding(decimal.Zero, &goal))
	assert.Equal(t, 100, Funding(decimal.NewFromInt(500000), &goal))
	assert.Equal(t, 100, Funding(decimal.NewFromInt(600000), &goal))
	assert.Equal(t, 25, Funding(decimal.NewFromInt(125000), &goal))

	clampGoal := decimal.NewFromInt(100000)
	assert.Equal(t, 100, Funding(decimal.NewFromInt(150000), &clampGoal))

	zero := decimal.Zero
	assert.Equal(t, 0, Funding(decimal.NewFromInt(1000), &zero))
	assert.Equal(t, 0, Funding(decimal.NewFromInt(1000), nil))

	odd := decimal.NewFromInt(3)
	assert.Equal(t, 67, Funding(decimal.NewFromInt(2), &odd))
}

func TestRaisedTotalCountsReceivedMoneyOnly(t *testing.T) {
	amt := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	donations := []domain.Donation{
		{Type: domain.DonationTypeMoney, Status: domain.DonationStatusReceived, Amount: amt(1000)},
		{Type: domain.DonationTypeMoney, Status: domain.DonationStatusReceived, Amount: amt(2500)},
		{Type: domain.DonationTypeMoney, Status: domain.DonationStatusPending, Amount: amt(99999)},
		{Type: domain.DonationTypeGoods, Status: domain.DonationStatusReceived},
		{Type: domain.DonationTypeMoney, Status: domain.DonationStatusReceived},
	}
	assert.True(t, decimal.NewFromInt(3500).Equal(RaisedTotal(donations)))
	assert.True(t, decimal.Zero.Equal(RaisedTotal(nil)))
}

func TestGoodsExcludesPendingDonations(t *testing.T) {
	required := []domain.RequiredItem{{ItemID: "rice", ItemName: "Rice", RequiredQuantity: "100"}}
	contributions := []domain.GoodsContribution{
		{GoodsItemID: "rice", Quantity: "30", Status: domain.DonationStatusReceived},
		{GoodsItemID: "rice", Quantity: "25", Status: domain.DonationStatusReceived},
		{GoodsItemID: "rice", Quantity: "1000", Status: domain.DonationStatusPending},
	}

	got := Goods(required, contributions)
	require.Len(t, got, 1)
	assert.Equal(t, "100", got[0].Required)
	assert.Equal(t, int64(55), got[0].Collected)
	assert.Equal(t, 55, got[0].Percentage)
	assert.True(t, got[0].RequiredValid)
	assert.Zero(t, got[0].Invalid)
}

func TestGoodsPendingOnlyContributesNothing(t *testing.T) {
	required := []domain.RequiredItem{{ItemID: "books", ItemName: "Books", RequiredQuantity: "200"}}
	contributions := []domain.GoodsContribution{
		{GoodsItemID: "books", Quantity: "50", Status: domain.DonationStatusPending},
	}
	got := Goods(required, contributions)
	require.Len(t, got, 1)
	assert.Zero(t, got[0].Collected)
	assert.Zero(t, got[0].Percentage)
}

func TestGoodsUnitsAndInvalidQuantities(t *testing.T) {
	required := []domain.RequiredItem{
		{ItemID: "dhal", ItemName: "Dhal", RequiredQuantity: "10 kg"},
		{ItemID: "soap", ItemName: "Soap", RequiredQuantity: "plenty"},
		{ItemID: "pens", ItemName: "Pens", RequiredQuantity: "0"},
	}
	contributions := []domain.GoodsContribution{
		{GoodsItemID: "dhal", Quantity: "4 kg", Status: domain.DonationStatusReceived},
		{GoodsItemID: "dhal", Quantity: "a bag", Status: domain.DonationStatusReceived},
		{GoodsItemID: "dhal", Quantity: "20 kg", Status: domain.DonationStatusReceived},
		{GoodsItemID: "soap", Quantity: "12", Status: domain.DonationStatusReceived},
		{GoodsItemID: "pens", Quantity: "40", Status: domain.DonationStatusReceived},
		{GoodsItemID: "unknown", Quantity: "5", Status: domain.DonationStatusReceived},
	}

	got := Goods(required, contributions)
	require.Len(t, got, 3)

	assert.Equal(t, "dhal", got[0].ItemID)
	assert.Equal(t, int64(24), got[0].Collected)
	assert.Equal(t, 100, got[0].Percentage)
	assert.Equal(t, "kg", got[0].Unit)
	assert.Equal(t, 1, got[0].Invalid)

	assert.Equal(t, "soap", got[1].ItemID)
	assert.False(t, got[1].RequiredValid)
	assert.Equal(t, int64(12), got[1].Collected)
	assert.Zero(t, got[1].Percentage)

	assert.Equal(t, "pens", got[2].ItemID)
	assert.True(t, got[2].RequiredValid)
	assert.Zero(t, got[2].Percentage)
}

func TestGoodsEmptyRequirements(t *testing.T) {
	got := Goods(nil, []domain.GoodsContribution{{GoodsItemID: "x", Quantity: "1", Status: domain.DonationStatusReceived}})
	assert.Empty(t, got)
}

func TestGoodsHugeQuantitiesSaturate(t *testing.T) {
	required := []domain.RequiredItem{{ItemID: "rice", ItemName: "Rice", RequiredQuantity: "100"}}
	contributions := []domain.GoodsContribution{
		{GoodsItemID: "rice", Quantity: "9223372036854775807", Status: domain.DonationStatusReceived},
		{GoodsItemID: "rice", Quantity: "10", Status: domain.DonationStatusReceived},
	}

	got := Goods(required, contributions)
	require.Len(t, got, 1)
	assert.Equal(t, int64(math.MaxInt64), got[0].Collected)
	assert.Equal(t, 100, got[0].Percentage)
}
