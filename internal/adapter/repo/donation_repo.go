package repo

import (
	"context"

	"society/internal/domain"
	"society/internal/infra"
	"society/internal/sqlinline"
)

// DonationRepositoryPG implements domain.DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	sql infra.TxExecutor
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(sql infra.TxExecutor) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sql}
}

// Create inserts the donation and its goods items in one transaction.
func (r *DonationRepositoryPG) Create(ctx context.Context, d *domain.Donation) error {
	return r.sql.InTx(ctx, func(tx infra.SQLExecutor) error {
		row := tx.QueryRow(ctx, sqlinline.QInsertDonation,
			d.DonorName,
			d.DonorAddress,
			d.DonorContact,
			d.DonorCountry,
			d.ProgramID,
			deref(d.CategoryID),
			string(d.Type),
			decimalArg(d.Amount),
			string(d.Status),
		)
		if err := row.Scan(&d.ID, &d.DonationDate, &d.CreatedAt); err != nil {
			return mapErr(err)
		}
		for i := range d.Items {
			item := &d.Items[i]
			item.DonationID = d.ID
			if err := tx.QueryRow(ctx, sqlinline.QInsertDonationItem, d.ID, item.GoodsItemID, item.Quantity).Scan(&item.ID); err != nil {
				return mapErr(err)
			}
		}
		return nil
	})
}

// List returns donations matching filter, newest first. Items are not loaded.
func (r *DonationRepositoryPG) List(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonations, string(filter.Status), filter.ProgramID, string(filter.Type))
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var items []domain.Donation
	for rows.Next() {
		var d domain.Donation
		var donationType, status string
		var amount *string
		if err := rows.Scan(
			&d.ID,
			&d.DonorName,
			&d.DonorAddress,
			&d.DonorContact,
			&d.DonorCountry,
			&d.ProgramID,
			&d.ProgramTitle,
			&d.CategoryID,
			&d.CategoryName,
			&donationType,
			&amount,
			&status,
			&d.DonationDate,
			&d.CreatedAt,
		); err != nil {
			return nil, mapErr(err)
		}
		d.Type = domain.DonationType(donationType)
		d.Status = domain.DonationStatus(status)
		if d.Amount, err = parseNullDecimal(amount); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}

// ListItems loads the goods lines of the given donations.
func (r *DonationRepositoryPG) ListItems(ctx context.Context, donationIDs []string) ([]domain.DonationItem, error) {
	if len(donationIDs) == 0 {
		return nil, nil
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListDonationItems, donationIDs)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var items []domain.DonationItem
	for rows.Next() {
		var it domain.DonationItem
		if err := rows.Scan(&it.ID, &it.DonationID, &it.GoodsItemID, &it.ItemName, &it.Quantity); err != nil {
			return nil, mapErr(err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}

func (r *DonationRepositoryPG) UpdateStatus(ctx context.Context, id string, status domain.DonationStatus) error {
	return execOne(ctx, r.sql, sqlinline.QUpdateDonationStatus, id, string(status))
}

// ProgramStats aggregates Received donations of a program.
func (r *DonationRepositoryPG) ProgramStats(ctx context.Context, programID string) (domain.ProgramDonationStats, error) {
	var stats domain.ProgramDonationStats
	var raised string
	if err := r.sql.QueryRow(ctx, sqlinline.QProgramDonationStats, programID).Scan(&raised, &stats.DonationCount, &stats.GoodsCount); err != nil {
		return stats, mapErr(err)
	}
	total, err := parseDecimal(raised)
	if err != nil {
		return stats, err
	}
	stats.TotalRaised = total
	return stats, nil
}

// GoodsContributions returns every donated goods line of a program with its
// donation status; callers decide which statuses count.
func (r *DonationRepositoryPG) GoodsContributions(ctx context.Context, programID string) ([]domain.GoodsContribution, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QGoodsContributions, programID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var items []domain.GoodsContribution
	for rows.Next() {
		var c domain.GoodsContribution
		var status string
		if err := rows.Scan(&c.GoodsItemID, &c.Quantity, &status); err != nil {
			return nil, mapErr(err)
		}
		c.Status = domain.DonationStatus(status)
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}

var _ domain.DonationRepository = (*DonationRepositoryPG)(nil)
