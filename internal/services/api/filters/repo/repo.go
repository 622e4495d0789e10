// Package repo provides postgres access for saved filters
package repo

import (
	"context"
	"time"

	"gsa/internal/modkit/repokit"
	perr "gsa/internal/platform/errors"
	"gsa/internal/platform/store"
)

// Repo defines the repository contract for saved filters
type Repo interface {
	Insert(ctx context.Context, r RowFilter) (RowFilter, error)
	Get(ctx context.Context, id string) (RowFilter, error)
	Update(ctx context.Context, r RowFilter) (RowFilter, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q ListQuery) ([]RowFilter, error)
	Count(ctx context.Context, q ListQuery) (int, error)

	GetDefault(ctx context.Context, entityType string) (RowFilter, error)
	SetDefault(ctx context.Context, entityType, filterID string) error
	ClearDefault(ctx context.Context, entityType string) error
}

// RowFilter is a filters row
type RowFilter struct {
	ID         string
	Name       string
	Comment    string
	Type       string
	Term       string
	CreatedAt  time.Time
	ModifiedAt time.Time
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const cols = `id::text, name, comment, filter_type, term, created_at, modified_at`

func scanFilter(r repokit.Row) (RowFilter, error) {
	var f RowFilter
	err := r.Scan(&f.ID, &f.Name, &f.Comment, &f.Type, &f.Term, &f.CreatedAt, &f.ModifiedAt)
	return f, err
}

// dbErr names not found errors, keeps other project errors and maps driver
// errors to project codes
func dbErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return perr.NotFoundf("%s: not found", msg)
	}
	if _, ok := perr.As(err); ok {
		if _, isPg := perr.ExtractPgError(err); !isPg {
			return err
		}
	}
	return perr.FromPostgres(err, msg)
}

func (r *queries) Insert(ctx context.Context, in RowFilter) (RowFilter, error) {
	const sql = `
insert into filters (id, name, comment, filter_type, term)
values ($1::uuid, $2, $3, $4, $5)
returning ` + cols
	out, err := store.One(ctx, r.q, scanFilter, sql, in.ID, in.Name, in.Comment, in.Type, in.Term)
	return out, dbErr(err, "insert filter")
}

func (r *queries) Get(ctx context.Context, id string) (RowFilter, error) {
	const sql = `select ` + cols + ` from filters where id = $1::uuid`
	out, err := store.One(ctx, r.q, scanFilter, sql, id)
	return out, dbErr(err, "filter "+id)
}

func (r *queries) Update(ctx context.Context, in RowFilter) (RowFilter, error) {
	const sql = `
update filters
set name = $2, comment = $3, filter_type = $4, term = $5, modified_at = now()
where id = $1::uuid
returning ` + cols
	out, err := store.One(ctx, r.q, scanFilter, sql, in.ID, in.Name, in.Comment, in.Type, in.Term)
	return out, dbErr(err, "filter "+in.ID)
}

func (r *queries) Delete(ctx context.Context, id string) error {
	err := store.ExecOne(ctx, r.q, `delete from filters where id = $1::uuid`, id)
	return dbErr(err, "filter "+id)
}

func (r *queries) List(ctx context.Context, q ListQuery) ([]RowFilter, error) {
	sql := `select ` + cols + ` from filters` + q.whereClause() + ` order by ` + q.OrderBy + q.window()
	out, err := store.Many(ctx, r.q, scanFilter, sql, q.Args...)
	return out, dbErr(err, "list filters")
}

func (r *queries) Count(ctx context.Context, q ListQuery) (int, error) {
	n, err := store.Scalar[int64](ctx, r.q, `select count(*) from filters`+q.whereClause(), q.Args...)
	return int(n), dbErr(err, "count filters")
}

func (r *queries) GetDefault(ctx context.Context, entityType string) (RowFilter, error) {
	const sql = `
select f.id::text, f.name, f.comment, f.filter_type, f.term, f.created_at, f.modified_at
from filter_defaults d
join filters f on f.id = d.filter_id
where d.entity_type = $1`
	out, err := store.One(ctx, r.q, scanFilter, sql, entityType)
	return out, dbErr(err, "default filter for "+entityType)
}

func (r *queries) SetDefault(ctx context.Context, entityType, filterID string) error {
	const sql = `
insert into filter_defaults (entity_type, filter_id)
values ($1, $2::uuid)
on conflict (entity_type) do update set filter_id = excluded.filter_id, modified_at = now()`
	_, err := r.q.Exec(ctx, sql, entityType, filterID)
	return dbErr(err, "set default filter")
}

func (r *queries) ClearDefault(ctx context.Context, entityType string) error {
	_, err := r.q.Exec(ctx, `delete from filter_defaults where entity_type = $1`, entityType)
	return dbErr(err, "clear default filter")
}
