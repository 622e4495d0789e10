package store

import (
	"context"
	"errors"
	"slices"
	"testing"

	perr "gsa/internal/platform/errors"
)

type named struct {
	ID   int
	Name string
}

func scanNamed(r Row) (named, error) {
	var n named
	err := r.Scan(&n.ID, &n.Name)
	return n, err
}

func TestExecOne(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		q    *memQuerier
		code perr.ErrorCode
		ok   bool
	}{
		{"one row", &memQuerier{tag: memTag(1)}, 0, true},
		{"none", &memQuerier{tag: memTag(0)}, perr.ErrorCodeNotFound, false},
		{"many", &memQuerier{tag: memTag(3)}, perr.ErrorCodeDB, false},
	}
	for _, tc := range cases {
		err := ExecOne(ctx, tc.q, "UPDATE filters SET name=$1 WHERE id=$2", "x", "id")
		if tc.ok {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if !perr.IsCode(err, tc.code) {
			t.Fatalf("%s: code = %v, want %v", tc.name, perr.CodeOf(err), tc.code)
		}
	}

	boom := errors.New("boom")
	if err := ExecOne(ctx, &memQuerier{err: boom}, "x"); !errors.Is(err, boom) {
		t.Fatalf("exec error should pass through, got %v", err)
	}
}

func TestScalar(t *testing.T) {
	q := &memQuerier{row: memRow{vals: []any{int64(12)}}}
	n, err := Scalar[int64](context.Background(), q, "SELECT count(*) FROM filters WHERE name ILIKE $1", "%a%")
	if err != nil || n != 12 {
		t.Fatalf("Scalar = %d, %v", n, err)
	}
	if q.args[0] != "%a%" {
		t.Fatalf("args not forwarded: %v", q.args)
	}

	q = &memQuerier{row: memRow{err: perr.ErrNotFound}}
	if _, err := Scalar[int](context.Background(), q, "x"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("Scalar err = %v", err)
	}
}

func TestOne(t *testing.T) {
	ctx := context.Background()

	rs := newMemRows([]string{"id", "name"}, []any{1, "tasks"})
	got, err := One(ctx, &memQuerier{rows: rs}, scanNamed, "x")
	if err != nil || got != (named{1, "tasks"}) {
		t.Fatalf("One = %+v, %v", got, err)
	}
	if !rs.closed {
		t.Fatalf("rows not closed")
	}

	if _, err := One(ctx, &memQuerier{rows: newMemRows(nil)}, scanNamed, "x"); !errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("empty One err = %v", err)
	}

	two := newMemRows([]string{"id", "name"}, []any{1, "a"}, []any{2, "b"})
	if _, err := One(ctx, &memQuerier{rows: two}, scanNamed, "x"); err == nil {
		t.Fatalf("expected error for more than one row")
	}

	failing := newMemRows(nil)
	failing.err = errors.New("conn reset")
	if _, err := One(ctx, &memQuerier{rows: failing}, scanNamed, "x"); err == nil || errors.Is(err, perr.ErrNotFound) {
		t.Fatalf("rows.Err should win over not found, got %v", err)
	}
}

func TestMany(t *testing.T) {
	ctx := context.Background()
	rs := newMemRows([]string{"id", "name"}, []any{1, "a"}, []any{2, "b"})
	got, err := Many(ctx, &memQuerier{rows: rs}, scanNamed, "x")
	if err != nil {
		t.Fatalf("Many: %v", err)
	}
	if !slices.Equal(got, []named{{1, "a"}, {2, "b"}}) {
		t.Fatalf("Many = %+v", got)
	}

	got, err = Many(ctx, &memQuerier{rows: newMemRows(nil)}, scanNamed, "x")
	if err != nil || len(got) != 0 {
		t.Fatalf("empty Many = %+v, %v", got, err)
	}

	if _, err := Many(ctx, &memQuerier{err: errors.New("x")}, scanNamed, "x"); err == nil {
		t.Fatalf("query error should surface")
	}
}
