package repokit

import (
	"context"

	perr "gsa/internal/platform/errors"
)

// Unavailable returns a TxRunner that fails every call with an unavailable
// error naming what is missing, for modules mounted without a database
func Unavailable(what string) TxRunner { return unavailable{err: perr.Unavailablef("%s is not configured", what)} }

type unavailable struct{ err error }

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func (u unavailable) Exec(context.Context, string, ...any) (CommandTag, error) { return nil, u.err }
func (u unavailable) Query(context.Context, string, ...any) (Rows, error)      { return nil, u.err }
func (u unavailable) QueryRow(context.Context, string, ...any) Row             { return errRow{u.err} }
func (u unavailable) Tx(context.Context, func(Queryer) error) error            { return u.err }
