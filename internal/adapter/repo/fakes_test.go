package repo

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"society/internal/infra"
)

type call struct {
	query string
	args  []any
}

// fakeSQL replays canned results keyed by query text.
type fakeSQL struct {
	rows     map[string][][]any
	execTags map[string]string
	errs     map[string]error
	calls    []call
	txCount  int
}

func newFakeSQL() *fakeSQL {
	return &fakeSQL{
		rows:     map[string][][]any{},
		execTags: map[string]string{},
		errs:     map[string]error{},
	}
}

func (f *fakeSQL) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, call{query: query, args: args})
	if err := f.errs[query]; err != nil {
		return pgconn.CommandTag{}, err
	}
	return pgconn.NewCommandTag(f.execTags[query]), nil
}

func (f *fakeSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	f.calls = append(f.calls, call{query: query, args: args})
	if err := f.errs[query]; err != nil {
		return errRow{err: err}
	}
	results := f.rows[query]
	if len(results) == 0 {
		return errRow{err: pgx.ErrNoRows}
	}
	f.rows[query] = results[1:]
	return valuesRow{values: results[0]}
}

func (f *fakeSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	f.calls = append(f.calls, call{query: query, args: args})
	if err := f.errs[query]; err != nil {
		return nil, err
	}
	return &fakeRows{data: f.rows[query]}, nil
}

func (f *fakeSQL) InTx(_ context.Context, fn func(infra.SQLExecutor) error) error {
	f.txCount++
	return fn(f)
}

func (f *fakeSQL) queries() []string {
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.query)
	}
	return out
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

type valuesRow struct{ values []any }

func (r valuesRow) Scan(dest ...any) error { return assign(dest, r.values) }

type fakeRows struct {
	data [][]any
	idx  int
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.data) {
		return pgx.ErrNoRows
	}
	return assign(dest, r.data[r.idx-1])
}

func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) Close()                                       {}
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }

func (r *fakeRows) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

// assign copies values into scan destinations; a nil value zeroes the target.
func assign(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("unexpected scan args: got %d, want %d", len(dest), len(values))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d).Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(values[i])
		if !v.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("column %d: cannot scan %T into %s", i, values[i], target.Type())
		}
		target.Set(v)
	}
	return nil
}

func strPtr(s string) *string { return &s }
