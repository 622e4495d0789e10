package store

import (
	"context"

	perr "gsa/internal/platform/errors"
)

// ExecOne runs a write that must touch exactly one row. Zero rows is
// ErrNotFound
func ExecOne(ctx context.Context, q RowQuerier, sql string, args ...any) error {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if n := tag.RowsAffected(); n != 1 {
		if n == 0 {
			return perr.ErrNotFound
		}
		return perr.DBf("write touched %d rows, want 1", n)
	}
	return nil
}

// Scalar reads a single column value such as a count
func Scalar[T any](ctx context.Context, q RowQuerier, sql string, args ...any) (out T, err error) {
	err = q.QueryRow(ctx, sql, args...).Scan(&out)
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Many maps every row with scan
func Many[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) ([]T, error) {
	var out []T
	err := each(ctx, q, sql, args, func(r Row) (bool, error) {
		v, err := scan(r)
		if err == nil {
			out = append(out, v)
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// One maps the only row with scan. No row is ErrNotFound and a second row is
// a DB error
func One[T any](ctx context.Context, q RowQuerier, scan func(Row) (T, error), sql string, args ...any) (T, error) {
	var (
		out  T
		seen int
	)
	err := each(ctx, q, sql, args, func(r Row) (bool, error) {
		if seen++; seen > 1 {
			return false, perr.DBf("query returned more than one row")
		}
		v, err := scan(r)
		out = v
		return true, err
	})
	switch {
	case err != nil:
		var zero T
		return zero, err
	case seen == 0:
		var zero T
		return zero, perr.ErrNotFound
	}
	return out, nil
}

// each feeds rows to fn until it returns false or an error
func each(ctx context.Context, q RowQuerier, sql string, args []any, fn func(Row) (bool, error)) error {
	rs, err := q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rs.Close()
	for rs.Next() {
		more, err := fn(rs)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return rs.Err()
}
