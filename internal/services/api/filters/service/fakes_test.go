package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"gsa/internal/modkit/repokit"
	perr "gsa/internal/platform/errors"
	"gsa/internal/services/api/filters/repo"
)

// memRepo keeps filters in memory; List honours only paging and sorts by name
type memRepo struct {
	mu       sync.Mutex
	rows     map[string]repo.RowFilter
	defaults map[string]string
	gets     int
	lastList repo.ListQuery
	failList error
}

func newMemRepo() *memRepo {
	return &memRepo{rows: map[string]repo.RowFilter{}, defaults: map[string]string{}}
}

func (m *memRepo) Insert(_ context.Context, r repo.RowFilter) (repo.RowFilter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.rows {
		if o.Name == r.Name && o.Type == r.Type {
			return repo.RowFilter{}, perr.DuplicateKeyf("filter %s exists", r.Name)
		}
	}
	r.CreatedAt = time.Unix(1700000000, 0).UTC()
	r.ModifiedAt = r.CreatedAt
	m.rows[r.ID] = r
	return r, nil
}

func (m *memRepo) Get(_ context.Context, id string) (repo.RowFilter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return repo.RowFilter{}, perr.NotFoundf("filter %s: not found", id)
	}
	return r, nil
}

func (m *memRepo) Update(_ context.Context, r repo.RowFilter) (repo.RowFilter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.rows[r.ID]
	if !ok {
		return repo.RowFilter{}, perr.NotFoundf("filter %s: not found", r.ID)
	}
	r.CreatedAt = old.CreatedAt
	r.ModifiedAt = old.ModifiedAt.Add(time.Minute)
	m.rows[r.ID] = r
	return r, nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return perr.NotFoundf("filter %s: not found", id)
	}
	delete(m.rows, id)
	for k, v := range m.defaults {
		if v == id {
			delete(m.defaults, k)
		}
	}
	return nil
}

func (m *memRepo) sorted() []repo.RowFilter {
	out := make([]repo.RowFilter, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (m *memRepo) List(_ context.Context, q repo.ListQuery) ([]repo.RowFilter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastList = q
	if m.failList != nil {
		return nil, m.failList
	}
	all := m.sorted()
	if q.Offset >= len(all) {
		return nil, nil
	}
	all = all[q.Offset:]
	if q.Limit >= 0 && q.Limit < len(all) {
		all = all[:q.Limit]
	}
	return all, nil
}

func (m *memRepo) Count(context.Context, repo.ListQuery) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows), nil
}

func (m *memRepo) GetDefault(_ context.Context, entityType string) (repo.RowFilter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	id, ok := m.defaults[entityType]
	if !ok {
		return repo.RowFilter{}, perr.NotFoundf("default filter for %s: not found", entityType)
	}
	return m.rows[id], nil
}

func (m *memRepo) SetDefault(_ context.Context, entityType, filterID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaults[entityType] = filterID
	return nil
}

func (m *memRepo) ClearDefault(_ context.Context, entityType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.defaults, entityType)
	return nil
}

func (m *memRepo) defaultLoads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gets
}

// fakeTx runs fn inline and counts transactions
type fakeTx struct{ txs int }

var errNoSQL = errors.New("fakeTx runs no SQL")

func (f *fakeTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) {
	return nil, errNoSQL
}
func (f *fakeTx) Query(context.Context, string, ...any) (repokit.Rows, error) { return nil, errNoSQL }
func (f *fakeTx) QueryRow(context.Context, string, ...any) repokit.Row       { return nil }
func (f *fakeTx) Tx(_ context.Context, fn func(repokit.Queryer) error) error {
	f.txs++
	return fn(f)
}

func newTestSvc(opts ...Option) (*Svc, *memRepo, *fakeTx) {
	m := newMemRepo()
	tx := &fakeTx{}
	s := New(tx, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return m }), opts...)
	n := 0
	s.newID = func() string {
		n++
		return []string{
			"00000000-0000-4000-8000-000000000001",
			"00000000-0000-4000-8000-000000000002",
			"00000000-0000-4000-8000-000000000003",
			"00000000-0000-4000-8000-000000000004",
		}[n-1]
	}
	return s, m, tx
}
