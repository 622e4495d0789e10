// Package service contains saved filter workflows and the stateless filter
// operations the API exposes
package service

import (
	"context"
	"time"

	"gsa/internal/core/filter"
	"gsa/internal/core/pagination"
	"gsa/internal/modkit/repokit"
	perr "gsa/internal/platform/errors"
	"gsa/internal/platform/logger"
	"gsa/internal/platform/metrics"
	"gsa/internal/platform/net/http/bind"
	"gsa/internal/services/api/filters/domain"
	"gsa/internal/services/api/filters/repo"

	"github.com/google/uuid"
)

// Service defines the service contract for filters
type Service interface {
	domain.ServicePort
	domain.DefaultsPort
}

// Svc implements the Service interface
type Svc struct {
	Repo     repo.Repo
	binder   repokit.Binder[repo.Repo]
	db       repokit.TxRunner
	defaults *defaults
	newID    func() string
}

// Option tweaks a Svc at construction
type Option func(*Svc)

// WithCacheTTL sets how long default filter lookups are cached
func WithCacheTTL(d time.Duration) Option {
	return func(s *Svc) { s.defaults = newDefaults(d) }
}

// New creates a new filters service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("filters.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("filters.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:     binder.Bind(db),
		binder:   binder,
		db:       db,
		defaults: newDefaults(DefaultCacheTTL),
		newID:    uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func toDomain(r repo.RowFilter) domain.SavedFilter {
	return domain.SavedFilter{
		ID:         r.ID,
		Name:       r.Name,
		Comment:    r.Comment,
		Type:       r.Type,
		Term:       r.Term,
		CreatedAt:  r.CreatedAt,
		ModifiedAt: r.ModifiedAt,
	}
}

func toRow(id string, in domain.SaveInput) repo.RowFilter {
	return repo.RowFilter{
		ID:      id,
		Name:    in.Name,
		Comment: in.Comment,
		Type:    in.Type,
		Term:    filter.Parse(in.Term).FilterString(),
	}
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return perr.WithField(perr.InvalidArgf("invalid filter id %q", id), "id")
	}
	return nil
}

func checkEntityType(entityType string) error {
	if !bind.IsEntityType(entityType) {
		return perr.WithField(perr.InvalidArgf("invalid entity type %q", entityType), "entity_type")
	}
	return nil
}

// Create stores a new filter, its term kept in canonical form
func (s *Svc) Create(ctx context.Context, in domain.SaveInput) (domain.SavedFilter, error) {
	row, err := s.Repo.Insert(ctx, toRow(s.newID(), in))
	if err != nil {
		return domain.SavedFilter{}, err
	}
	logger.C(ctx).Debug().Str("filter_id", row.ID).Str("type", row.Type).Msg("filter created")
	return toDomain(row), nil
}

// Get loads one saved filter
func (s *Svc) Get(ctx context.Context, id string) (domain.SavedFilter, error) {
	if err := checkID(id); err != nil {
		return domain.SavedFilter{}, err
	}
	row, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.SavedFilter{}, err
	}
	return toDomain(row), nil
}

// Update replaces a saved filter; any cached default may point at it
func (s *Svc) Update(ctx context.Context, id string, in domain.SaveInput) (domain.SavedFilter, error) {
	if err := checkID(id); err != nil {
		return domain.SavedFilter{}, err
	}
	row, err := s.Repo.Update(ctx, toRow(id, in))
	if err != nil {
		return domain.SavedFilter{}, err
	}
	s.defaults.forgetAll()
	return toDomain(row), nil
}

// Delete removes a saved filter and with it any default that used it
func (s *Svc) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.defaults.forgetAll()
	return nil
}

// List reads saved filters selected and paged by a filter string
func (s *Svc) List(ctx context.Context, filterString string) (domain.ListResult, error) {
	metrics.FilterOpsTotal.WithLabelValues("list").Inc()

	f := filter.Parse(filterString)
	q, err := repo.BuildList(f)
	if err != nil {
		return domain.ListResult{}, err
	}

	var (
		rows  []repo.RowFilter
		total int
	)
	err = s.db.Tx(ctx, func(tx repokit.Queryer) error {
		r := s.binder.Bind(tx)
		var err error
		if rows, err = r.List(ctx, q); err != nil {
			return err
		}
		total, err = r.Count(ctx, q)
		return err
	})
	if err != nil {
		return domain.ListResult{}, err
	}

	items := make([]domain.SavedFilter, 0, len(rows))
	for _, r := range rows {
		items = append(items, toDomain(r))
	}
	first := q.Offset + 1
	return domain.ListResult{
		Items: items,
		Counts: domain.Counts{
			First:    first,
			Rows:     q.Limit,
			Length:   len(items),
			Filtered: total,
		},
		Filter: f.SetInt("first", first).SetInt("rows", q.Limit).FilterString(),
	}, nil
}

// Normalize breaks a filter string down into its canonical parts
func (s *Svc) Normalize(_ context.Context, filterString string) domain.Normalized {
	metrics.FilterOpsTotal.WithLabelValues("normalize").Inc()

	return domain.Normalize(filter.Parse(filterString))
}

// Compose joins left and right with and/or, or negates left
func (s *Svc) Compose(_ context.Context, in domain.ComposeInput) (domain.ComposeResult, error) {
	metrics.FilterOpsTotal.WithLabelValues("compose").Inc()

	out, err := filter.Compose(in.Op, filter.Parse(in.Left), filter.Parse(in.Right))
	if err != nil {
		return domain.ComposeResult{}, err
	}
	return domain.ComposeResult{Filter: out.FilterString()}, nil
}

// Page returns the refetch parameters for a page move
func (s *Svc) Page(_ context.Context, in domain.PageInput) (pagination.Params, error) {
	metrics.FilterOpsTotal.WithLabelValues("page").Inc()

	if !in.Direction.Valid() {
		return pagination.Params{}, perr.WithField(perr.InvalidArgf("unknown direction %q", in.Direction), "direction")
	}
	return pagination.Build(in.Direction, filter.Parse(in.Filter), in.PageInfo), nil
}

// GetDefault returns the default filter of an entity type, Filter is nil when unset
func (s *Svc) GetDefault(ctx context.Context, entityType string) (domain.Default, error) {
	if err := checkEntityType(entityType); err != nil {
		return domain.Default{}, err
	}
	sf, err := s.defaults.get(ctx, entityType, func(ctx context.Context) (*domain.SavedFilter, error) {
		row, err := s.Repo.GetDefault(ctx, entityType)
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		sf := toDomain(row)
		return &sf, nil
	})
	if err != nil {
		return domain.Default{}, err
	}
	return domain.Default{EntityType: entityType, Filter: sf}, nil
}

// SetDefault points an entity type at a saved filter, an empty id clears it
// a typed filter may only back the default of its own type
func (s *Svc) SetDefault(ctx context.Context, entityType string, in domain.DefaultInput) (domain.Default, error) {
	if err := checkEntityType(entityType); err != nil {
		return domain.Default{}, err
	}
	defer s.defaults.forget(entityType)

	if in.FilterID == "" {
		if err := s.Repo.ClearDefault(ctx, entityType); err != nil {
			return domain.Default{}, err
		}
		return domain.Default{EntityType: entityType}, nil
	}

	var sf domain.SavedFilter
	err := s.db.Tx(ctx, func(tx repokit.Queryer) error {
		r := s.binder.Bind(tx)
		row, err := r.Get(ctx, in.FilterID)
		if err != nil {
			return err
		}
		if row.Type != "" && row.Type != entityType {
			return perr.WithField(perr.InvalidArgf("filter %s is for %s, not %s", row.ID, row.Type, entityType), "filter_id")
		}
		sf = toDomain(row)
		return r.SetDefault(ctx, entityType, row.ID)
	})
	if err != nil {
		return domain.Default{}, err
	}
	return domain.Default{EntityType: entityType, Filter: &sf}, nil
}

// DefaultFilter implements domain.DefaultsPort
func (s *Svc) DefaultFilter(ctx context.Context, entityType string) (*filter.Filter, bool, error) {
	d, err := s.GetDefault(ctx, entityType)
	if err != nil || d.Filter == nil {
		return nil, false, err
	}
	return d.Filter.Filter(), true, nil
}
