// Package raw reads environment variables during bootstrap, before the logger
// exists. It must not import the logger
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf looks keys up under one or more prefixes, first non-empty value wins
type Conf struct{ prefixes []string }

// New returns a Conf without prefix
func New() Conf { return Conf{prefixes: []string{""}} }

// Prefixes returns a Conf that tries each prefix in order, e.g.
// Prefixes("GSA_LOG_", "LOG_") prefers GSA_LOG_LEVEL over LOG_LEVEL
func Prefixes(p ...string) Conf {
	if len(p) == 0 {
		return New()
	}
	return Conf{prefixes: append([]string(nil), p...)}
}

// Prefix appends p to every prefix of c
func (c Conf) Prefix(p string) Conf {
	out := make([]string, len(c.prefixes))
	for i, base := range c.prefixes {
		out[i] = base + p
	}
	return Conf{prefixes: out}
}

func (c Conf) lookup(key string) string {
	for _, p := range c.prefixes {
		if v := strings.TrimSpace(os.Getenv(p + key)); v != "" {
			return v
		}
	}
	return ""
}

// Get returns the trimmed value or def
func (c Conf) Get(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// GetBool accepts 1, true and yes as true and anything else set as false
func (c Conf) GetBool(key string, def bool) bool {
	switch v := strings.ToLower(c.lookup(key)); v {
	case "":
		return def
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// GetInt returns a non negative integer or def
func (c Conf) GetInt(key string, def int) int {
	n, err := strconv.Atoi(c.lookup(key))
	if err != nil || n < 0 {
		return def
	}
	return n
}
