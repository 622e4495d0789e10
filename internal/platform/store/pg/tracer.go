package pg

import (
	"context"
	"strings"
	"time"

	"gsa/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one finished statement
type QueryEvent struct {
	SQL     string
	Args    []any
	Elapsed time.Duration
	Err     error
	Slow    bool
}

// QueryTracer observes finished statements
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs statements through l at debug, slow ones at warn and failed ones
// at error. Its level is pinned to debug so GSA_PGSQL_LOG_SQL alone decides
func Tracer(l logger.Logger) QueryTracer {
	return &logTracer{log: l.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()}
}

type logTracer struct{ log logger.Logger }

func (lt *logTracer) OnQuery(ctx context.Context, ev QueryEvent) {
	l := logger.Attach(ctx, lt.log)

	var e *zerolog.Event
	switch {
	case ev.Err != nil:
		e = l.Error().Err(ev.Err)
	case ev.Slow:
		e = l.Warn()
	default:
		e = l.Debug()
	}
	e.Dur("elapsed", ev.Elapsed).
		Bool("slow", ev.Slow).
		Str("sql", oneLine(ev.SQL)).
		Int("args", len(ev.Args)).
		Msg("pg query")
}

// oneLine collapses whitespace runs so multi-line statements log on one line
func oneLine(s string) string { return strings.Join(strings.Fields(s), " ") }
