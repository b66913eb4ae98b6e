package repo

import (
	"fmt"

	"github.com/shopspring/decimal"

	"society/internal/domain"
	"society/internal/infra"
)

type scanner interface {
	Scan(dest ...any) error
}

// mapErr converts driver errors into domain errors, keeping the driver
// message for the caller.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsNoRows(err):
		return domain.ErrNotFound
	case infra.IsUniqueViolation(err):
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	case infra.IsForeignKeyViolation(err), infra.IsInvalidInput(err):
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return err
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse numeric %q: %w", s, err)
	}
	return d, nil
}

func parseNullDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := parseDecimal(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// decimalArg encodes an optional amount as numeric text.
func decimalArg(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
