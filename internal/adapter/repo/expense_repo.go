package repo

import (
	"context"

	"github.com/shopspring/decimal"

	"society/internal/domain"
	"society/internal/infra"
	"society/internal/sqlinline"
)

// ExpenseRepositoryPG implements domain.ExpenseRepository using PostgreSQL.
type ExpenseRepositoryPG struct {
	sql infra.SQLExecutor
}

func NewExpenseRepository(sql infra.SQLExecutor) *ExpenseRepositoryPG {
	return &ExpenseRepositoryPG{sql: sql}
}

// List returns expenses of programID, or every expense when it is empty.
func (r *ExpenseRepositoryPG) List(ctx context.Context, programID string) ([]domain.Expense, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListExpenses, programID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var items []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}

func (r *ExpenseRepositoryPG) Get(ctx context.Context, id string) (*domain.Expense, error) {
	return scanExpense(r.sql.QueryRow(ctx, sqlinline.QSelectExpense, id))
}

func (r *ExpenseRepositoryPG) Create(ctx context.Context, e *domain.Expense) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertExpense,
		e.ProgramID, e.Description, e.Amount.String(), e.ExpenseDate, e.InvoiceURL)
	return mapErr(row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt))
}

func (r *ExpenseRepositoryPG) Update(ctx context.Context, e *domain.Expense) error {
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateExpense,
		e.ID, e.ProgramID, e.Description, e.Amount.String(), e.ExpenseDate, e.InvoiceURL)
	return mapErr(row.Scan(&e.CreatedAt, &e.UpdatedAt))
}

func (r *ExpenseRepositoryPG) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.sql, sqlinline.QDeleteExpense, id)
}

// TotalForProgram sums all expenses recorded against a program.
func (r *ExpenseRepositoryPG) TotalForProgram(ctx context.Context, programID string) (decimal.Decimal, error) {
	var total string
	if err := r.sql.QueryRow(ctx, sqlinline.QExpenseTotalForProgram, programID).Scan(&total); err != nil {
		return decimal.Zero, mapErr(err)
	}
	return parseDecimal(total)
}

func scanExpense(row scanner) (*domain.Expense, error) {
	var e domain.Expense
	var amount string
	if err := row.Scan(&e.ID, &e.ProgramID, &e.ProgramTitle, &e.Description, &amount, &e.ExpenseDate, &e.InvoiceURL, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, mapErr(err)
	}
	d, err := parseDecimal(amount)
	if err != nil {
		return nil, err
	}
	e.Amount = d
	return &e, nil
}

var _ domain.ExpenseRepository = (*ExpenseRepositoryPG)(nil)
