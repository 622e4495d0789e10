// Package service lists backend entities through filters, applying the
// saved default of the entity type
package service

import (
	"context"
	"strings"

	"gsa/internal/adapters/gmp"
	"gsa/internal/core/filter"
	perr "gsa/internal/platform/errors"
	"gsa/internal/platform/logger"
	"gsa/internal/platform/metrics"
	"gsa/internal/platform/net/http/bind"
	"gsa/internal/services/api/entities/domain"
	filtersdom "gsa/internal/services/api/filters/domain"
)

// Service defines the service contract for entities
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	lister   domain.Lister
	defaults filtersdom.DefaultsPort
}

// New creates an entities service; defaults may be nil
func New(lister domain.Lister, defaults filtersdom.DefaultsPort) *Svc {
	if lister == nil {
		panic("entities.Service requires a non nil Lister")
	}
	return &Svc{lister: lister, defaults: defaults}
}

// List fetches a page of entityType. An empty filter string selects the
// saved default of the type; a given one borrows the default's settings it lacks
func (s *Svc) List(ctx context.Context, entityType, filterString string) (domain.Page, error) {
	metrics.FilterOpsTotal.WithLabelValues("entities").Inc()

	if !bind.IsEntityType(entityType) {
		return domain.Page{}, perr.WithField(perr.InvalidArgf("invalid entity type %q", entityType), "entity_type")
	}

	ctx = logger.WithEntityType(ctx, entityType)
	def := s.defaultFor(ctx, entityType)
	f, defaulted := filter.Parse(filterString), false
	switch {
	case strings.TrimSpace(filterString) == "" && def != nil:
		f, defaulted = def, true
	case def != nil:
		f = f.MergeSettings(def)
	}

	page, err := s.lister.GetEntities(ctx, entityType, f)
	if err != nil {
		return domain.Page{}, err
	}
	return toPage(entityType, page, defaulted), nil
}

// defaultFor looks the default up; a failing lookup is logged and treated as none
func (s *Svc) defaultFor(ctx context.Context, entityType string) *filter.Filter {
	if s.defaults == nil {
		return nil
	}
	f, ok, err := s.defaults.DefaultFilter(ctx, entityType)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("default filter lookup failed")
		return nil
	}
	if !ok {
		return nil
	}
	return f
}

func toPage(entityType string, p gmp.EntityPage, defaulted bool) domain.Page {
	nf := p.Filter
	if nf == nil {
		nf = filter.New()
	}
	if p.Counts.First > 0 {
		nf = nf.SetInt("first", p.Counts.First)
	}
	if p.Counts.Rows != 0 {
		nf = nf.SetInt("rows", p.Counts.Rows)
	}
	return domain.Page{
		EntityType: entityType,
		Items:      p.Items,
		Counts:     p.Counts,
		Filter:     nf.Simple().FilterString(),
		FilterID:   nf.ID(),
		Defaulted:  defaulted,
		Links:      links(nf, p.Counts),
	}
}

// links derives the page move filters from the window the backend answered
func links(f *filter.Filter, c gmp.Counts) domain.Links {
	l := domain.Links{
		First: f.First().Simple().FilterString(),
		Last:  f.Last(c.Filtered).Simple().FilterString(),
	}
	if f.Rows() <= 0 {
		return l
	}
	first := f.FirstRow()
	if first > 1 {
		l.Previous = f.Previous().Simple().FilterString()
	}
	if first-1+c.Length < c.Filtered {
		l.Next = f.Next().Simple().FilterString()
	}
	return l
}
