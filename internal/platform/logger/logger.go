// Package logger wraps zerolog with a process root logger and context fields
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"gsa/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the logging type used across the module
type Logger = zerolog.Logger

// Options configures the root logger
type Options struct {
	Level        string // zerolog level name, debug when empty or unknown
	Format       string // "console" or "json"
	Service      string
	Component    string
	Writer       io.Writer // stdout when nil
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv reads GSA_LOG_* keys, falling back to LOG_*
func FromEnv() Options {
	rc := raw.Prefixes("GSA_LOG_", "LOG_")
	return Options{
		Level:       rc.Get("LEVEL", "debug"),
		Format:      strings.ToLower(rc.Get("FORMAT", "console")),
		Service:     rc.Get("SERVICE", ""),
		Component:   rc.Get("COMPONENT", ""),
		WithCaller:  rc.GetBool("CALLER", false),
		SampleEvery: rc.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	once sync.Once
	root *Logger
)

// Init builds the root logger. Only the first call has effect
func Init(opt Options) {
	once.Do(func() { root = build(opt) })
}

// Get returns the root logger, initializing it from the environment on first use
func Get() *Logger {
	Init(FromEnv())
	return root
}

func build(opt Options) *Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opt.Writer
	if out == nil {
		out = os.Stdout
	}
	if opt.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	fields := map[string]any{}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fields["go_version"] = bi.GoVersion
	}
	for k, v := range opt.StaticFields {
		fields[k] = v
	}
	if opt.Service != "" {
		fields["service"] = opt.Service
	}
	if opt.Component != "" {
		fields["component"] = opt.Component
	}

	zc := zerolog.New(out).Level(level(opt.Level)).With().Timestamp().Fields(fields)
	if opt.WithCaller {
		zc = zc.Caller()
	}
	l := zc.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return &l
}

// level maps a level name to zerolog, debug for anything unparseable
func level(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.DebugLevel
	}
	return lvl
}

// context fields

type fieldsKey struct{}

type field struct{ key, val string }

// With returns ctx carrying key=val on every logger built by C
func With(ctx context.Context, key, val string) context.Context {
	if key == "" || val == "" {
		return ctx
	}
	prev, _ := ctx.Value(fieldsKey{}).([]field)
	next := make([]field, 0, len(prev)+1)
	for _, f := range prev {
		if f.key != key {
			next = append(next, f)
		}
	}
	return context.WithValue(ctx, fieldsKey{}, append(next, field{key, val}))
}

// Field returns the value stored by With for key, empty if none
func Field(ctx context.Context, key string) string {
	fs, _ := ctx.Value(fieldsKey{}).([]field)
	for _, f := range fs {
		if f.key == key {
			return f.val
		}
	}
	return ""
}

// WithRequest tags ctx with the request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	return With(ctx, "request_id", reqID)
}

// RequestID returns the id stored by WithRequest
func RequestID(ctx context.Context) string { return Field(ctx, "request_id") }

// WithCommand tags ctx with the management protocol command in flight
func WithCommand(ctx context.Context, cmd string) context.Context {
	return With(ctx, "gmp_cmd", cmd)
}

// WithEntityType tags ctx with the entity type being listed or filtered
func WithEntityType(ctx context.Context, entityType string) context.Context {
	return With(ctx, "entity_type", entityType)
}

// C returns the root logger enriched with the fields carried by ctx
func C(ctx context.Context) *Logger {
	if !hasFields(ctx) {
		return Get()
	}
	l := Attach(ctx, *Get())
	return &l
}

// Attach copies the fields carried by ctx onto l
func Attach(ctx context.Context, l Logger) Logger {
	fs, _ := ctx.Value(fieldsKey{}).([]field)
	if len(fs) == 0 {
		return l
	}
	zc := l.With()
	for _, f := range fs {
		zc = zc.Str(f.key, f.val)
	}
	return zc.Logger()
}

func hasFields(ctx context.Context) bool {
	fs, _ := ctx.Value(fieldsKey{}).([]field)
	return len(fs) > 0
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
