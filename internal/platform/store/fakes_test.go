package store

import (
	"context"
	"errors"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// memRows is an in memory Rows used by the helper tests
type memRows struct {
	cols   []string
	data   [][]any
	idx    int
	err    error
	closed bool
}

func newMemRows(cols []string, data ...[]any) *memRows {
	return &memRows{cols: cols, data: data, idx: -1}
}

func (r *memRows) Next() bool {
	if r.err != nil {
		return false
	}
	r.idx++
	return r.idx < len(r.data)
}
func (r *memRows) Err() error        { return r.err }
func (r *memRows) Close()            { r.closed = true }
func (r *memRows) Columns() []string { return r.cols }
func (r *memRows) Scan(dest ...any) error {
	if r.idx < 0 || r.idx >= len(r.data) {
		return errors.New("scan out of range")
	}
	return assignAll(r.data[r.idx], dest)
}

// assignAll copies src values into dest pointers
func assignAll(src []any, dest []any) error {
	if len(src) != len(dest) {
		return errors.New("dest len mismatch")
	}
	for i := range dest {
		dv := reflect.ValueOf(dest[i])
		if dv.Kind() != reflect.Pointer {
			return errors.New("dest not pointer")
		}
		sv := reflect.ValueOf(src[i])
		if !sv.IsValid() {
			dv.Elem().SetZero()
			continue
		}
		if !sv.Type().ConvertibleTo(dv.Elem().Type()) {
			return errors.New("type mismatch")
		}
		dv.Elem().Set(sv.Convert(dv.Elem().Type()))
	}
	return nil
}

type memTag int64

func (t memTag) String() string      { return "UPDATE" }
func (t memTag) RowsAffected() int64 { return int64(t) }

type memRow struct {
	vals []any
	err  error
}

func (r memRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignAll(r.vals, dest)
}

// memQuerier records the last statement and returns canned results
type memQuerier struct {
	sql  string
	args []any

	tag  CommandTag
	rows Rows
	row  Row
	err  error
}

func (q *memQuerier) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	q.sql, q.args = sql, args
	return q.tag, q.err
}

func (q *memQuerier) Query(_ context.Context, sql string, args ...any) (Rows, error) {
	q.sql, q.args = sql, args
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func (q *memQuerier) QueryRow(_ context.Context, sql string, args ...any) Row {
	q.sql, q.args = sql, args
	return q.row
}

// pgx level fakes for the adapter tests

type pgxRow struct {
	vals []any
	err  error
}

func (r pgxRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assignAll(r.vals, dest)
}

type pgxRows struct {
	memRows
}

func (r *pgxRows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT 1") }
func (r *pgxRows) FieldDescriptions() []pgconn.FieldDescription {
	out := make([]pgconn.FieldDescription, len(r.cols))
	for i, c := range r.cols {
		out[i] = pgconn.FieldDescription{Name: c}
	}
	return out
}
func (r *pgxRows) Values() ([]any, error) { return r.data[r.idx], nil }
func (r *pgxRows) RawValues() [][]byte    { return nil }
func (r *pgxRows) Conn() *pgx.Conn        { return nil }

type pgxFake struct {
	execTag pgconn.CommandTag
	err     error
	row     pgxRow
	rows    *pgxRows
}

func (f *pgxFake) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return f.execTag, f.err
}

func (f *pgxFake) Query(context.Context, string, ...any) (pgx.Rows, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *pgxFake) QueryRow(context.Context, string, ...any) pgx.Row { return f.row }

// pgxTx embeds pgx.Tx so only the methods runTx touches need bodies
type pgxTx struct {
	pgx.Tx
	pgxFake
	committed, rolledBack bool
}

func (t *pgxTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.pgxFake.Exec(ctx, sql, args...)
}
func (t *pgxTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return t.pgxFake.Query(ctx, sql, args...)
}
func (t *pgxTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.pgxFake.QueryRow(ctx, sql, args...)
}
func (t *pgxTx) Commit(context.Context) error   { t.committed = true; return nil }
func (t *pgxTx) Rollback(context.Context) error { t.rolledBack = true; return nil }
