package repo

import (
	"context"

	"society/internal/domain"
	"society/internal/infra"
	"society/internal/sqlinline"
)

type TeamRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewTeamRepository(sql infra.SQLExecutor) *TeamRepositoryPG {
	return &TeamRepositoryPG{sql: sql}
}

// List returns members of year ordered by display order, or all members when
// year is empty.
func (r *TeamRepositoryPG) List(ctx context.Context, year string) ([]domain.TeamMember, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListTeamMembers, year)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var items []domain.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}

func (r *TeamRepositoryPG) Get(ctx context.Context, id string) (*domain.TeamMember, error) {
	return scanTeamMember(r.sql.QueryRow(ctx, sqlinline.QSelectTeamMember, id))
}

func (r *TeamRepositoryPG) Create(ctx context.Context, m *domain.TeamMember) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertTeamMember, m.Name, m.Position, m.Year, m.DisplayOrder, m.ImageURL)
	return mapErr(row.Scan(&m.ID, &m.CreatedAt))
}

func (r *TeamRepositoryPG) Update(ctx context.Context, m *domain.TeamMember) error {
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateTeamMember, m.ID, m.Name, m.Position, m.Year, m.DisplayOrder, m.ImageURL)
	return mapErr(row.Scan(&m.CreatedAt))
}

func (r *TeamRepositoryPG) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.sql, sqlinline.QDeleteTeamMember, id)
}

func scanTeamMember(row scanner) (*domain.TeamMember, error) {
	var m domain.TeamMember
	if err := row.Scan(&m.ID, &m.Name, &m.Position, &m.Year, &m.DisplayOrder, &m.ImageURL, &m.CreatedAt); err != nil {
		return nil, mapErr(err)
	}
	return &m, nil
}

var _ domain.TeamRepository = (*TeamRepositoryPG)(nil)
