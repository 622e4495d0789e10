package repokit

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Pinger is a dependency that can report reachability
type Pinger interface {
	Ping(context.Context) error
}

// Dep names a dependency for Check
type Dep struct {
	Name string
	P    Pinger
}

// checkTimeout bounds each ping when ctx carries no deadline
const checkTimeout = 5 * time.Second

// Check pings every dep and joins the failures, one line per dependency.
// A nil Pinger is reported as unconfigured
func Check(ctx context.Context, deps ...Dep) error {
	var errs []error
	for _, d := range deps {
		if err := ping(ctx, d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func ping(ctx context.Context, d Dep) error {
	if d.P == nil {
		return fmt.Errorf("%s: not configured", d.Name)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, checkTimeout)
		defer cancel()
	}
	if err := d.P.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", d.Name, err)
	}
	return nil
}
