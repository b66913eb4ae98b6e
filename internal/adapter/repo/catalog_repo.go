package repo

import (
	"context"

	"society/internal/domain"
	"society/internal/infra"
	"society/internal/sqlinline"
)

// CatalogRepositoryPG stores donation categories, goods items and program
// goods requirements.
type CatalogRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewCatalogRepository(sql infra.SQLExecutor) *CatalogRepositoryPG {
	return &CatalogRepositoryPG{sql: sql}
}

// ListCategories returns categories of programID, or of every program when it is empty.
func (r *CatalogRepositoryPG) ListCategories(ctx context.Context, programID string) ([]domain.DonationCategory, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListCategories, programID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var items []domain.DonationCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}

func (r *CatalogRepositoryPG) GetCategory(ctx context.Context, id string) (*domain.DonationCategory, error) {
	return scanCategory(r.sql.QueryRow(ctx, sqlinline.QSelectCategory, id))
}

func (r *CatalogRepositoryPG) CreateCategory(ctx context.Context, c *domain.DonationCategory) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertCategory, c.ProgramID, c.Name)
	return mapErr(row.Scan(&c.ID, &c.CreatedAt))
}

// DeleteCategory removes a category together with its goods items.
func (r *CatalogRepositoryPG) DeleteCategory(ctx context.Context, id string) error {
	return execOne(ctx, r.sql, sqlinline.QDeleteCategory, id)
}

// ListGoodsItems returns the items of categoryID, or all items when it is empty.
func (r *CatalogRepositoryPG) ListGoodsItems(ctx context.Context, categoryID string) ([]domain.GoodsItem, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListGoodsItems, categoryID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var items []domain.GoodsItem
	for rows.Next() {
		var g domain.GoodsItem
		if err := rows.Scan(&g.ID, &g.CategoryID, &g.CategoryName, &g.Name, &g.RequiredQuantity, &g.CreatedAt); err != nil {
			return nil, mapErr(err)
		}
		items = append(items, g)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}

func (r *CatalogRepositoryPG) CreateGoodsItem(ctx context.Context, item *domain.GoodsItem) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertGoodsItem, item.CategoryID, item.Name, item.RequiredQuantity)
	return mapErr(row.Scan(&item.ID, &item.CreatedAt))
}

func (r *CatalogRepositoryPG) UpdateGoodsItem(ctx context.Context, item *domain.GoodsItem) error {
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateGoodsItem, item.ID, item.Name, item.RequiredQuantity)
	return mapErr(row.Scan(&item.CategoryID, &item.CreatedAt))
}

func (r *CatalogRepositoryPG) DeleteGoodsItem(ctx context.Context, id string) error {
	return execOne(ctx, r.sql, sqlinline.QDeleteGoodsItem, id)
}

func (r *CatalogRepositoryPG) ListRequirements(ctx context.Context, programID string) ([]domain.GoodsRequirement, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListRequirements, programID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var items []domain.GoodsRequirement
	for rows.Next() {
		var req domain.GoodsRequirement
		if err := rows.Scan(&req.ID, &req.ProgramID, &req.GoodsItemID, &req.ItemName, &req.CategoryName, &req.RequiredQuantity, &req.CreatedAt); err != nil {
			return nil, mapErr(err)
		}
		items = append(items, req)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}

// CreateRequirement inserts a requirement, replacing the quantity when the
// item is already required by the program.
func (r *CatalogRepositoryPG) CreateRequirement(ctx context.Context, req *domain.GoodsRequirement) error {
	row := r.sql.QueryRow(ctx, sqlinline.QUpsertRequirement, req.ProgramID, req.GoodsItemID, req.RequiredQuantity)
	return mapErr(row.Scan(&req.ID, &req.CreatedAt))
}

func (r *CatalogRepositoryPG) DeleteRequirement(ctx context.Context, id string) error {
	return execOne(ctx, r.sql, sqlinline.QDeleteRequirement, id)
}

// RequiredItems resolves the goods targets of a program. A program-level
// requirement overrides the quantity stored on the goods item.
func (r *CatalogRepositoryPG) RequiredItems(ctx context.Context, programID string) ([]domain.RequiredItem, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QRequiredItemsForProgram, programID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var items []domain.RequiredItem
	for rows.Next() {
		var it domain.RequiredItem
		if err := rows.Scan(&it.ItemID, &it.ItemName, &it.RequiredQuantity); err != nil {
			return nil, mapErr(err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}

func scanCategory(row scanner) (*domain.DonationCategory, error) {
	var c domain.DonationCategory
	if err := row.Scan(&c.ID, &c.ProgramID, &c.ProgramTitle, &c.Name, &c.CreatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

var _ domain.CatalogRepository = (*CatalogRepositoryPG)(nil)
