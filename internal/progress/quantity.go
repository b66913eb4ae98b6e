package progress

import (
	"fmt"
	"strconv"
	"strings"

	"society/internal/domain"
)

// Quantity is a free-text amount split into its leading integer and the
// trailing unit label ("10 kg" is {10, "kg"}).
type Quantity struct {
	Value int64
	Unit  string
}

// ParseQuantity reads the leading non-negative integer of s. Anything after
// the digits is kept as the unit. Input without leading digits, a negative
// sign, or a value that overflows int64 yields ErrInvalidQuantity.
func ParseQuantity(s string) (Quantity, error) {
	trimmed := strings.TrimSpace(s)
	rest := strings.TrimPrefix(trimmed, "+")
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return Quantity{}, fmt.Errorf("%w: %q", domain.ErrInvalidQuantity, s)
	}
	v, err := strconv.ParseInt(rest[:end], 10, 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %q", domain.ErrInvalidQuantity, s)
	}
	return Quantity{Value: v, Unit: strings.TrimSpace(rest[end:])}, nil
}

// String renders the quantity back in "value unit" form.
func (q Quantity) String() string {
	if q.Unit == "" {
		return strconv.FormatInt(q.Value, 10)
	}
	return strconv.FormatInt(q.Value, 10) + " " + q.Unit
}
