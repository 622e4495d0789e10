// Package config reads namespaced settings from the environment, optionally
// seeded from .env files
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gsa/internal/platform/logger"

	"github.com/joho/godotenv"
)

// Conf is a prefixed view over the environment. New().Prefix("GSA_") is the
// service root; modules narrow it further, e.g. root.Prefix("GMP_")
type Conf struct{ prefix string }

// New returns the unprefixed view
func New() Conf { return Conf{} }

// Prefix narrows c by p
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

// lookup returns the trimmed value; blank counts as unset
func (c Conf) lookup(k string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.key(k)))
	return v, v != ""
}

// LoadDotEnv seeds the environment from paths (".env" when none). Variables
// already set win and missing files are skipped
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		err := godotenv.Load(p)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			continue
		case err != nil:
			return fmt.Errorf("load %s: %w", p, err)
		}
		logger.Get().Debug().Str("file", p).Msg("loaded env file")
	}
	return nil
}

// parsers

func parseInt(s string) (int, error) { return strconv.Atoi(s) }

func parseAbsURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err == nil && !u.IsAbs() {
		err = errors.New("not absolute")
	}
	return u, err
}

func parsePort(s string) (string, error) {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return "", errors.New("expected 1..65535")
	}
	return ":" + s, nil
}

// must resolves key through parse and panics when it is unset or malformed
func must[T any](c Conf, key, kind string, parse func(string) (T, error)) T {
	s, ok := c.lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Err(err).Msgf("invalid %s", kind)
	}
	return v
}

// may resolves key through parse, falling back to def when unset or malformed
func may[T any](c Conf, key, kind string, def T, parse func(string) (T, error)) T {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Err(err).Msgf("invalid %s; using default", kind)
		return def
	}
	return v
}

func identity(s string) (string, error) { return s, nil }

// MustString panics when key is unset or blank
func (c Conf) MustString(key string) string { return must(c, key, "string", identity) }

// MustInt panics when key is unset or not an int
func (c Conf) MustInt(key string) int { return must(c, key, "int", parseInt) }

// MustBool panics when key is unset or not a bool
func (c Conf) MustBool(key string) bool { return must(c, key, "bool", strconv.ParseBool) }

// MustDuration panics when key is unset or not a duration such as 250ms
func (c Conf) MustDuration(key string) time.Duration {
	return must(c, key, "duration", time.ParseDuration)
}

// MustURL panics when key is unset or not an absolute URL
func (c Conf) MustURL(key string) *url.URL { return must(c, key, "absolute URL", parseAbsURL) }

// MustPort returns a listen address such as ":9392"
func (c Conf) MustPort(key string) string { return must(c, key, "TCP port", parsePort) }

// Require panics on the first unset key
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		_ = c.MustString(k)
	}
}

// MayString returns def when key is unset
func (c Conf) MayString(key, def string) string { return may(c, key, "string", def, identity) }

// MayInt returns def when key is unset or malformed
func (c Conf) MayInt(key string, def int) int { return may(c, key, "int", def, parseInt) }

// MayBool returns def when key is unset or malformed
func (c Conf) MayBool(key string, def bool) bool {
	return may(c, key, "bool", def, strconv.ParseBool)
}

// MayDuration returns def when key is unset or malformed
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, "duration", def, time.ParseDuration)
}

// MayURL returns nil when key is unset or not an absolute URL
func (c Conf) MayURL(key string) *url.URL { return may[*url.URL](c, key, "absolute URL", nil, parseAbsURL) }

// MayCSV splits key on commas, dropping blanks; def when nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	s, _ := c.lookup(key)
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns def when key is unset and panics when the value is not one
// of allowed (case insensitive)
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	return may(c, key, "enum", def, func(s string) (string, error) {
		for _, a := range allowed {
			if strings.EqualFold(s, a) {
				return s, nil
			}
		}
		logger.Get().Panic().Str("key", c.key(key)).Str("value", s).Strs("allowed", allowed).Msg("invalid enum value")
		return "", nil
	})
}
