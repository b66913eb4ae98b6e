package repo

import (
	"context"

	"society/internal/domain"
	"society/internal/infra"
	"society/internal/sqlinline"
)

// ProgramRepositoryPG implements domain.ProgramRepository using PostgreSQL.
type ProgramRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewProgramRepository creates a new program repo.
func NewProgramRepository(sql infra.SQLExecutor) *ProgramRepositoryPG {
	return &ProgramRepositoryPG{sql: sql}
}

// List returns programs matching filter, newest date first.
func (r *ProgramRepositoryPG) List(ctx context.Context, filter domain.ProgramFilter) ([]domain.Program, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListPrograms, string(filter.Category), string(filter.Status), filter.Limit)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var items []domain.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}

// Get fetches one program.
func (r *ProgramRepositoryPG) Get(ctx context.Context, id string) (*domain.Program, error) {
	return scanProgram(r.sql.QueryRow(ctx, sqlinline.QSelectProgram, id))
}

// Create inserts p and fills its generated fields.
func (r *ProgramRepositoryPG) Create(ctx context.Context, p *domain.Program) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertProgram,
		p.Title, string(p.Category), p.Description, p.Date, p.Location, decimalArg(p.FundingGoal), string(p.Status))
	return mapErr(row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt))
}

// Update overwrites the editable fields of p.
func (r *ProgramRepositoryPG) Update(ctx context.Context, p *domain.Program) error {
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateProgram,
		p.ID, p.Title, string(p.Category), p.Description, p.Date, p.Location, decimalArg(p.FundingGoal), string(p.Status))
	return mapErr(row.Scan(&p.CreatedAt, &p.UpdatedAt))
}

// Delete removes a program; images, categories, donations and expenses cascade.
func (r *ProgramRepositoryPG) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.sql, sqlinline.QDeleteProgram, id)
}

// ListImages returns the images of a program, feature image first.
func (r *ProgramRepositoryPG) ListImages(ctx context.Context, programID string) ([]domain.ProgramImage, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListProgramImages, programID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var items []domain.ProgramImage
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *img)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}

func (r *ProgramRepositoryPG) GetImage(ctx context.Context, id string) (*domain.ProgramImage, error) {
	return scanImage(r.sql.QueryRow(ctx, sqlinline.QSelectProgramImage, id))
}

func (r *ProgramRepositoryPG) AddImage(ctx context.Context, img *domain.ProgramImage) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertProgramImage, img.ProgramID, img.ImageURL, img.DisplayOrder)
	return mapErr(row.Scan(&img.ID, &img.CreatedAt))
}

func (r *ProgramRepositoryPG) DeleteImage(ctx context.Context, id string) error {
	return execOne(ctx, r.sql, sqlinline.QDeleteProgramImage, id)
}

// NextGalleryOrder returns the display order for a new gallery image.
func (r *ProgramRepositoryPG) NextGalleryOrder(ctx context.Context, programID string) (int, error) {
	var next int
	if err := r.sql.QueryRow(ctx, sqlinline.QNextGalleryOrder, programID).Scan(&next); err != nil {
		return 0, mapErr(err)
	}
	return next, nil
}

func scanProgram(row scanner) (*domain.Program, error) {
	var p domain.Program
	var category, status string
	var goal *string
	if err := row.Scan(&p.ID, &p.Title, &category, &p.Description, &p.Date, &p.Location, &goal, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	p.Category = domain.ProgramCategory(category)
	p.Status = domain.ProgramStatus(status)
	fundingGoal, err := parseNullDecimal(goal)
	if err != nil {
		return nil, err
	}
	p.FundingGoal = fundingGoal
	return &p, nil
}

func scanImage(row scanner) (*domain.ProgramImage, error) {
	var img domain.ProgramImage
	if err := row.Scan(&img.ID, &img.ProgramID, &img.ImageURL, &img.DisplayOrder, &img.CreatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &img, nil
}

// execOne runs a statement that must touch exactly one row.
func execOne(ctx context.Context, sql infra.SQLExecutor, query string, args ...any) error {
	tag, err := sql.Exec(ctx, query, args...)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ domain.ProgramRepository = (*ProgramRepositoryPG)(nil)
