package repo

import (
	"context"
	"testing"

	"gsa/internal/modkit/repokit"
	perr "gsa/internal/platform/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestDBErr(t *testing.T) {
	t.Parallel()

	if dbErr(nil, "x") != nil {
		t.Fatalf("nil should stay nil")
	}
	if err := dbErr(perr.ErrNotFound, "filter 1"); !perr.IsCode(err, perr.ErrorCodeNotFound) || err.Error() == perr.ErrNotFound.Error() {
		t.Fatalf("not found = %v", err)
	}
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "filters_name_type_uq"}
	if err := dbErr(dup, "insert filter"); !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("duplicate = %v", err)
	}
	if err := dbErr(perr.Unavailablef("postgres is not configured"), "list"); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("project error should pass through, got %v", err)
	}
}

func TestRepo_Unavailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	r := NewPG().Bind(repokit.Unavailable("postgres"))

	if _, err := r.Get(ctx, "00000000-0000-4000-8000-000000000001"); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("Get err = %v", err)
	}
	if _, err := r.Count(ctx, ListQuery{}); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("Count err = %v", err)
	}
	if err := r.Delete(ctx, "00000000-0000-4000-8000-000000000001"); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("Delete err = %v", err)
	}
}
