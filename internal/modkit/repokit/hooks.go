package repokit

import (
	"context"
	"strconv"
	"time"

	perr "gsa/internal/platform/errors"
)

// BeginHook runs at the start of a transaction with the tx bound Queryer
type BeginHook func(ctx context.Context, q Queryer) error

// WithBeginHooks wraps a TxRunner and runs hooks before fn inside the same tx
func WithBeginHooks(inner TxRunner, hooks ...BeginHook) TxRunner {
	return hookedTx{TxRunner: inner, hooks: hooks}
}

// hookedTx delegates plain statements to the embedded runner
type hookedTx struct {
	TxRunner
	hooks []BeginHook
}

func (h hookedTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	return h.TxRunner.Tx(ctx, func(q Queryer) error {
		for _, hk := range h.hooks {
			if err := hk(ctx, q); err != nil {
				return err
			}
		}
		return fn(q)
	})
}

// StatementTimeout is a BeginHook bounding every statement in the tx
func StatementTimeout(ms int) BeginHook {
	return func(ctx context.Context, q Queryer) error {
		_, err := q.Exec(ctx, "SELECT set_config('statement_timeout', $1, true)", strconv.Itoa(ms))
		return err
	}
}

// WithRetry reruns a whole tx up to attempts times while it fails with a
// retryable error. Statement timeouts are final
func WithRetry(inner TxRunner, attempts int) TxRunner {
	if attempts < 2 {
		return inner
	}
	return retryTx{TxRunner: inner, attempts: attempts}
}

type retryTx struct {
	TxRunner
	attempts int
}

func (r retryTx) Tx(ctx context.Context, fn func(q Queryer) error) error {
	var err error
	for i := range r.attempts {
		if i > 0 {
			t := time.NewTimer(time.Duration(i*i) * 10 * time.Millisecond)
			select {
			case <-ctx.Done():
				t.Stop()
				return err
			case <-t.C:
			}
		}
		err = r.TxRunner.Tx(ctx, fn)
		if !perr.Retryable(err) || perr.IsStatementTimeout(err) {
			return err
		}
	}
	return err
}
