// Package progress computes fundraising and goods-collection progress for
// charity programs. Only Received donations ever count.
package progress

import (
	"math"

	"github.com/shopspring/decimal"

	"society/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Percent returns min(100, round(100*part/total)). A non-positive total
// yields 0 and negative parts clamp to 0.
func Percent(part, total int64) int {
	if total <= 0 || part <= 0 {
		return 0
	}
	pct := math.Round(100 * float64(part) / float64(total))
	if pct > 100 {
		return 100
	}
	return int(pct)
}

// Funding returns the share of goal covered by raised as a 0-100 integer.
// A nil or non-positive goal yields 0.
func Funding(raised decimal.Decimal, goal *decimal.Decimal) int {
	if goal == nil || !goal.IsPositive() || !raised.IsPositive() {
		return 0
	}
	pct := raised.Mul(hundred).Div(*goal).Round(0)
	if pct.GreaterThan(hundred) {
		return 100
	}
	return int(pct.IntPart())
}

// RaisedTotal sums the amounts of Received money donations.
func RaisedTotal(donations []domain.Donation) decimal.Decimal {
	total := decimal.Zero
	for _, d := range donations {
		if d.Type != domain.DonationTypeMoney || d.Status != domain.DonationStatusReceived || d.Amount == nil {
			continue
		}
		total = total.Add(*d.Amount)
	}
	return total
}

// ItemProgress is the collection state of one required goods item.
type ItemProgress struct {
	ItemID        string
	ItemName      string
	Required      string
	RequiredValid bool
	Unit          string
	Collected     int64
	Percentage    int
	// Invalid counts Received contributions whose quantity could not be
	// parsed; they contribute zero to Collected.
	Invalid int
}

// Goods computes per-item progress. Results follow the order of required;
// contributions for items that are not required are ignored.
func Goods(required []domain.RequiredItem, contributions []domain.GoodsContribution) []ItemProgress {
	type tally struct {
		collected int64
		invalid   int
	}
	tallies := make(map[string]*tally, len(required))
	for _, r := range required {
		tallies[r.ItemID] = &tally{}
	}
	for _, c := range contributions {
		if c.Status != domain.DonationStatusReceived {
			continue
		}
		t, ok := tallies[c.GoodsItemID]
		if !ok {
			continue
		}
		q, err := ParseQuantity(c.Quantity)
		if err != nil {
			t.invalid++
			continue
		}
		t.collected = saturatingAdd(t.collected, q.Value)
	}

	out := make([]ItemProgress, 0, len(required))
	for _, r := range required {
		t := tallies[r.ItemID]
		item := ItemProgress{
			ItemID:    r.ItemID,
			ItemName:  r.ItemName,
			Required:  r.RequiredQuantity,
			Collected: t.collected,
			Invalid:   t.invalid,
		}
		if q, err := ParseQuantity(r.RequiredQuantity); err == nil {
			item.RequiredValid = true
			item.Unit = q.Unit
			item.Percentage = Percent(t.collected, q.Value)
		}
		out = append(out, item)
	}
	return out
}

// saturatingAdd adds two non-negative quantities, pinning at math.MaxInt64.
func saturatingAdd(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}
	return a + b
}
