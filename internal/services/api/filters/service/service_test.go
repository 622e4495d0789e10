package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"gsa/internal/core/pagination"
	"gsa/internal/modkit/repokit"
	perr "gsa/internal/platform/errors"
	kit "gsa/internal/platform/testkit"
	"gsa/internal/services/api/filters/domain"
	"gsa/internal/services/api/filters/repo"
)

func TestNew_PanicsOnNil(t *testing.T) {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return newMemRepo() })
	kit.MustPanic(t, func() { New(nil, binder) })
	kit.MustPanic(t, func() { New(&fakeTx{}, nil) })
}

func TestCRUD(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestSvc()

	created, err := s.Create(ctx, domain.SaveInput{Name: "hot", Type: "result", Term: "  severity>6.9   rows=10 "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Term != "severity>6.9 rows=10" {
		t.Fatalf("term not canonical: %q", created.Term)
	}
	if created.ID != "00000000-0000-4000-8000-000000000001" {
		t.Fatalf("id = %q", created.ID)
	}

	if _, err := s.Create(ctx, domain.SaveInput{Name: "hot", Type: "result"}); !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("duplicate create err = %v", err)
	}

	got, err := s.Get(ctx, created.ID)
	if err != nil || got.Name != "hot" {
		t.Fatalf("Get = %+v, %v", got, err)
	}
	if id := got.Filter().ID(); id != created.ID {
		t.Fatalf("Filter() id = %q", id)
	}

	upd, err := s.Update(ctx, created.ID, domain.SaveInput{Name: "hotter", Term: "rows=5"})
	if err != nil || upd.Name != "hotter" || !upd.ModifiedAt.After(upd.CreatedAt) {
		t.Fatalf("Update = %+v, %v", upd, err)
	}

	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, created.ID); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("Get after delete err = %v", err)
	}
	if err := s.Delete(ctx, created.ID); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("Delete twice err = %v", err)
	}
}

func TestInvalidIDs(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestSvc()

	checks := []error{
		func() error { _, err := s.Get(ctx, "nope"); return err }(),
		func() error { _, err := s.Update(ctx, "nope", domain.SaveInput{Name: "x"}); return err }(),
		s.Delete(ctx, "nope"),
		func() error { _, err := s.GetDefault(ctx, "Task"); return err }(),
		func() error { _, err := s.SetDefault(ctx, "", domain.DefaultInput{}); return err }(),
	}
	for i, err := range checks {
		if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
			t.Fatalf("check %d: err = %v, want invalid argument", i, err)
		}
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s, m, tx := newTestSvc()
	for _, n := range []string{"c", "a", "b"} {
		if _, err := s.Create(ctx, domain.SaveInput{Name: n}); err != nil {
			t.Fatalf("Create %s: %v", n, err)
		}
	}

	res, err := s.List(ctx, "rows=2 first=2")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if tx.txs != 1 {
		t.Fatalf("list should run in one tx, got %d", tx.txs)
	}
	if len(res.Items) != 2 || res.Items[0].Name != "b" || res.Items[1].Name != "c" {
		t.Fatalf("items = %+v", res.Items)
	}
	want := domain.Counts{First: 2, Rows: 2, Length: 2, Filtered: 3}
	if res.Counts != want {
		t.Fatalf("counts = %+v, want %+v", res.Counts, want)
	}
	if res.Filter != "rows=2 first=2" {
		t.Fatalf("filter = %q", res.Filter)
	}

	res, err = s.List(ctx, "")
	if err != nil || res.Filter != "first=1 rows=50" || res.Counts.Rows != 50 {
		t.Fatalf("default list = %+v, %v", res, err)
	}

	if _, err := s.List(ctx, "owner=me"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad keyword err = %v", err)
	}

	boom := errors.New("boom")
	m.failList = boom
	if _, err := s.List(ctx, ""); !errors.Is(err, boom) {
		t.Fatalf("List err = %v", err)
	}
}

func TestNormalize(t *testing.T) {
	s, _, _ := newTestSvc()
	n := s.Normalize(context.Background(), `name~"a b"  sort-reverse=name rows=abc first=0`)

	if n.Canonical != `name~"a b" sort-reverse=name rows=0 first=1` {
		t.Fatalf("canonical = %q", n.Canonical)
	}
	if n.Criteria != `name~"a b"` || n.Settings != "sort-reverse=name rows=0 first=1" {
		t.Fatalf("criteria %q settings %q", n.Criteria, n.Settings)
	}
	if n.SortBy != "name" || n.SortOrder != "sort-reverse" || n.First != 1 || n.Rows != 0 {
		t.Fatalf("normalized = %+v", n)
	}
	if len(n.Terms) != 4 {
		t.Fatalf("terms = %+v", n.Terms)
	}
	if empty := s.Normalize(context.Background(), ""); empty.Terms == nil || empty.Rows != 50 {
		t.Fatalf("empty normalize = %+v", empty)
	}
}

func TestCompose(t *testing.T) {
	s, _, _ := newTestSvc()
	ctx := context.Background()

	cases := []struct {
		in   domain.ComposeInput
		want string
	}{
		{domain.ComposeInput{Left: "name~foo rows=10", Right: "severity>5 sort=name", Op: "and"}, "name~foo rows=10 and severity>5 sort=name"},
		{domain.ComposeInput{Left: "name~a", Right: "name~b", Op: "or"}, "name~a or name~b"},
		{domain.ComposeInput{Left: "name~a rows=10", Right: "ignored", Op: "not"}, "not name~a rows=10"},
	}
	for _, tc := range cases {
		got, err := s.Compose(ctx, tc.in)
		if err != nil || got.Filter != tc.want {
			t.Fatalf("Compose(%+v) = %q, %v; want %q", tc.in, got.Filter, err, tc.want)
		}
	}
	if _, err := s.Compose(ctx, domain.ComposeInput{Op: "xor"}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("xor err = %v", err)
	}
}

func TestPage(t *testing.T) {
	s, _, _ := newTestSvc()
	ctx := context.Background()
	info := pagination.PageInfo{StartCursor: "s", EndCursor: "e", LastPageCursor: "l"}

	p, err := s.Page(ctx, domain.PageInput{Filter: "name~x rows=5 first=6", PageInfo: info, Direction: pagination.DirNext})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if p.FilterString != "name~x" || p.After == nil || *p.After != "e" || p.First == nil || *p.First != 5 {
		t.Fatalf("params = %+v", p)
	}
	if _, err := s.Page(ctx, domain.PageInput{Direction: "sideways"}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad direction err = %v", err)
	}
}

func TestDefaults_CacheAndInvalidation(t *testing.T) {
	ctx := context.Background()
	s, m, _ := newTestSvc()

	d, err := s.GetDefault(ctx, "task")
	if err != nil || d.Filter != nil {
		t.Fatalf("unset default = %+v, %v", d, err)
	}
	if _, err := s.GetDefault(ctx, "task"); err != nil {
		t.Fatalf("GetDefault: %v", err)
	}
	if n := m.defaultLoads(); n != 1 {
		t.Fatalf("absent default should be cached, loads = %d", n)
	}

	sf, _ := s.Create(ctx, domain.SaveInput{Name: "mine", Type: "task", Term: "owner=me rows=10"})
	if _, err := s.SetDefault(ctx, "task", domain.DefaultInput{FilterID: sf.ID}); err != nil {
		t.Fatalf("SetDefault: %v", err)
	}

	f, ok, err := s.DefaultFilter(ctx, "task")
	if err != nil || !ok || f.FilterString() != "owner=me rows=10" || f.ID() != sf.ID {
		t.Fatalf("DefaultFilter = %v, %v, %v", f, ok, err)
	}
	if _, _, err := s.DefaultFilter(ctx, "task"); err != nil {
		t.Fatalf("DefaultFilter: %v", err)
	}
	if n := m.defaultLoads(); n != 2 {
		t.Fatalf("set should invalidate once then cache, loads = %d", n)
	}

	if _, err := s.Update(ctx, sf.ID, domain.SaveInput{Name: "mine", Type: "task", Term: "rows=20"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	f, _, _ = s.DefaultFilter(ctx, "task")
	if f.FilterString() != "rows=20" {
		t.Fatalf("update not visible through cache: %q", f.FilterString())
	}

	if err := s.Delete(ctx, sf.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.DefaultFilter(ctx, "task"); ok {
		t.Fatalf("default should go with its filter")
	}
}

func TestSetDefault_Rules(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestSvc()

	report, _ := s.Create(ctx, domain.SaveInput{Name: "r", Type: "report"})
	untyped, _ := s.Create(ctx, domain.SaveInput{Name: "untyped"})

	if _, err := s.SetDefault(ctx, "task", domain.DefaultInput{FilterID: report.ID}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("type mismatch err = %v", err)
	}
	if _, err := s.SetDefault(ctx, "task", domain.DefaultInput{FilterID: "00000000-0000-4000-8000-0000000000ff"}); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing filter err = %v", err)
	}
	d, err := s.SetDefault(ctx, "task", domain.DefaultInput{FilterID: untyped.ID})
	if err != nil || d.Filter == nil || d.Filter.ID != untyped.ID {
		t.Fatalf("untyped default = %+v, %v", d, err)
	}
	d, err = s.SetDefault(ctx, "task", domain.DefaultInput{})
	if err != nil || d.Filter != nil {
		t.Fatalf("clear = %+v, %v", d, err)
	}
	if _, ok, _ := s.DefaultFilter(ctx, "task"); ok {
		t.Fatalf("cleared default still served")
	}
}

func TestDefaults_ConcurrentMissLoadsOnce(t *testing.T) {
	ctx := context.Background()
	s, m, _ := newTestSvc()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.GetDefault(ctx, "report"); err != nil {
				t.Errorf("GetDefault: %v", err)
			}
		}()
	}
	wg.Wait()
	if n := m.defaultLoads(); n < 1 || n > 16 {
		t.Fatalf("loads = %d", n)
	}
	if _, err := s.GetDefault(ctx, "report"); err != nil {
		t.Fatalf("GetDefault: %v", err)
	}
	before := m.defaultLoads()
	if _, err := s.GetDefault(ctx, "report"); err != nil || m.defaultLoads() != before {
		t.Fatalf("warm cache should not load again")
	}
}
