package repokit

import (
	"context"
	"errors"
	"strings"
	"testing"

	perr "gsa/internal/platform/errors"
	"gsa/internal/platform/store"
)

type execRec struct {
	sql  []string
	args [][]any
	err  error
}

func (e *execRec) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	e.sql = append(e.sql, sql)
	e.args = append(e.args, args)
	return nil, e.err
}
func (e *execRec) Query(context.Context, string, ...any) (Rows, error) { return nil, nil }
func (e *execRec) QueryRow(context.Context, string, ...any) Row       { return nil }
func (e *execRec) Tx(ctx context.Context, fn func(Queryer) error) error {
	return fn(e)
}

var _ store.TxRunner = (*execRec)(nil)

func TestWithBeginHooks_RunsBeforeFn(t *testing.T) {
	rec := &execRec{}
	tx := WithBeginHooks(rec, StatementTimeout(1500))

	err := tx.Tx(context.Background(), func(q Queryer) error {
		_, err := q.Exec(context.Background(), "DELETE FROM filters WHERE id=$1", "x")
		return err
	})
	if err != nil {
		t.Fatalf("Tx: %v", err)
	}
	if len(rec.sql) != 2 || !strings.Contains(rec.sql[0], "statement_timeout") {
		t.Fatalf("statements = %v", rec.sql)
	}
	if rec.args[0][0] != "1500" {
		t.Fatalf("timeout arg = %v", rec.args[0])
	}
}

func TestWithBeginHooks_HookErrorStops(t *testing.T) {
	rec := &execRec{}
	boom := errors.New("boom")
	tx := WithBeginHooks(rec, func(context.Context, Queryer) error { return boom })
	called := false
	err := tx.Tx(context.Background(), func(Queryer) error { called = true; return nil })
	if !errors.Is(err, boom) || called {
		t.Fatalf("err=%v called=%v", err, called)
	}

	if _, err := tx.Exec(context.Background(), "SELECT 1"); err != nil || len(rec.sql) != 1 {
		t.Fatalf("plain statements should pass through")
	}
}

func TestWithRetry(t *testing.T) {
	ctx := context.Background()
	rec := &execRec{}

	calls := 0
	err := WithRetry(rec, 3).Tx(ctx, func(Queryer) error {
		if calls++; calls < 3 {
			return perr.Unavailablef("conn lost")
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Fatalf("retryable: err=%v calls=%d", err, calls)
	}

	calls = 0
	err = WithRetry(rec, 3).Tx(ctx, func(Queryer) error { calls++; return perr.InvalidArgf("bad") })
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) || calls != 1 {
		t.Fatalf("final: err=%v calls=%d", err, calls)
	}

	if got := WithRetry(rec, 1); got != TxRunner(rec) {
		t.Fatalf("single attempt should not wrap")
	}
}

type namedRepo struct{ q Queryer }

func TestBinder(t *testing.T) {
	var b Binder[namedRepo] = BindFunc[namedRepo](func(q Queryer) namedRepo { return namedRepo{q: q} })
	rec := &execRec{}
	if got := b.Bind(rec); got.q != rec {
		t.Fatalf("Bind did not keep the queryer")
	}
}

type pinger struct{ err error }

func (p pinger) Ping(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("no deadline")
	}
	return p.err
}

func TestCheck(t *testing.T) {
	ctx := context.Background()
	if err := Check(ctx, Dep{"postgres", pinger{}}, Dep{"gmp", pinger{}}); err != nil {
		t.Fatalf("Check: %v", err)
	}

	err := Check(ctx, Dep{"postgres", pinger{err: errors.New("refused")}}, Dep{"gmp", nil}, Dep{"cache", pinger{}})
	if err == nil {
		t.Fatalf("expected failures")
	}
	lines := strings.Split(err.Error(), "\n")
	if len(lines) != 2 || lines[0] != "postgres: refused" || lines[1] != "gmp: not configured" {
		t.Fatalf("Check err = %q", err)
	}
}

func TestUnavailable(t *testing.T) {
	ctx := context.Background()
	u := Unavailable("postgres")

	if _, err := u.Exec(ctx, "select 1"); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("Exec err = %v", err)
	}
	if _, err := u.Query(ctx, "select 1"); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("Query err = %v", err)
	}
	if err := u.QueryRow(ctx, "select 1").Scan(); !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("QueryRow err = %v", err)
	}
	called := false
	err := u.Tx(ctx, func(Queryer) error { called = true; return nil })
	if called || !perr.IsCode(err, perr.ErrorCodeUnavailable) || !strings.Contains(err.Error(), "postgres") {
		t.Fatalf("Tx err = %v, called %v", err, called)
	}
}
