package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	kit "gsa/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("GSA_").Prefix("API_")
	if got := api.key("PORT"); got != "GSA_API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "GSA_API_PORT")
	}
}

func TestMust(t *testing.T) {
	c := New().Prefix("GSA_T_")
	t.Setenv("GSA_T_NAME", "  gsa ")
	t.Setenv("GSA_T_ROWS", " 8 ")
	t.Setenv("GSA_T_ON", " true ")
	t.Setenv("GSA_T_TIMEOUT", " 250ms ")
	t.Setenv("GSA_T_URL", "https://gsad.local/gmp")
	t.Setenv("GSA_T_PORT", "9392")

	if got := c.MustString("NAME"); got != "gsa" {
		t.Fatalf("MustString = %q", got)
	}
	if got := c.MustInt("ROWS"); got != 8 {
		t.Fatalf("MustInt = %d", got)
	}
	if !c.MustBool("ON") {
		t.Fatalf("MustBool = false")
	}
	if got := c.MustDuration("TIMEOUT"); got != 250*time.Millisecond {
		t.Fatalf("MustDuration = %v", got)
	}
	if u := c.MustURL("URL"); u.Host != "gsad.local" || u.Path != "/gmp" {
		t.Fatalf("MustURL = %v", u)
	}
	if got := c.MustPort("PORT"); got != ":9392" {
		t.Fatalf("MustPort = %q", got)
	}
	c.Require("NAME", "ROWS")
}

func TestMust_Panics(t *testing.T) {
	c := New().Prefix("GSA_P_")
	t.Setenv("GSA_P_WS", "   ")
	t.Setenv("GSA_P_BAD", "x")
	t.Setenv("GSA_P_REL", "/relative")
	t.Setenv("GSA_P_OOB", "70000")

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
	kit.MustPanic(t, func() { c.Require("WS") })
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
	kit.MustPanic(t, func() { _ = c.MustBool("BAD") })
	kit.MustPanic(t, func() { _ = c.MustDuration("BAD") })
	kit.MustPanic(t, func() { _ = c.MustURL("REL") })
	kit.MustPanic(t, func() { _ = c.MustPort("OOB") })
}

func TestMay(t *testing.T) {
	c := New().Prefix("GSA_M_")
	t.Setenv("GSA_M_NAME", " gsa ")
	t.Setenv("GSA_M_INT", " 7 ")
	t.Setenv("GSA_M_BOOL", "true")
	t.Setenv("GSA_M_DUR", "150ms")
	t.Setenv("GSA_M_BAD", "nope")

	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayString("NAME", "x"); got != "gsa" {
		t.Fatalf("MayString = %q", got)
	}
	if c.MayInt("INT", 0) != 7 || c.MayInt("BAD", 3) != 3 || c.MayInt("MISSING", 9) != 9 {
		t.Fatalf("MayInt mismatch")
	}
	if !c.MayBool("BOOL", false) || c.MayBool("BAD", false) || !c.MayBool("MISSING", true) {
		t.Fatalf("MayBool mismatch")
	}
	if c.MayDuration("DUR", time.Second) != 150*time.Millisecond || c.MayDuration("BAD", time.Minute) != time.Minute {
		t.Fatalf("MayDuration mismatch")
	}
	if c.MayURL("MISSING") != nil || c.MayURL("BAD") != nil {
		t.Fatalf("MayURL should be nil for missing or relative values")
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("GSA_CSV_")
	t.Setenv("GSA_CSV_VALS", " one, two , ,three ,, ")
	t.Setenv("GSA_CSV_EMPTY", " , ,  ,")

	if got := c.MayCSV("VALS", nil); !slices.Equal(got, []string{"one", "two", "three"}) {
		t.Fatalf("MayCSV = %#v", got)
	}
	if got := c.MayCSV("EMPTY", []string{"fallback"}); !slices.Equal(got, []string{"fallback"}) {
		t.Fatalf("MayCSV all-empty = %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("GSA_E_")
	if got := c.MayEnum("MISS", "json", "json", "console"); got != "json" {
		t.Fatalf("MayEnum default = %q", got)
	}
	if got := c.MayEnum("MISS", "", "json"); got != "" {
		t.Fatalf("MayEnum empty default = %q", got)
	}
	t.Setenv("GSA_E_FMT", "Console")
	if got := c.MayEnum("FMT", "json", "json", "console"); got != "Console" {
		t.Fatalf("MayEnum = %q", got)
	}
	t.Setenv("GSA_E_BAD", "xml")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "json", "json", "console") })
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "test.env")
	if err := os.WriteFile(p, []byte("GSA_DOT_ROWS=25\nGSA_DOT_KEEP=fromfile\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("GSA_DOT_KEEP", "fromenv")
	t.Setenv("GSA_DOT_ROWS", "")
	os.Unsetenv("GSA_DOT_ROWS")

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), p); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	c := New().Prefix("GSA_DOT_")
	if got := c.MayInt("ROWS", 0); got != 25 {
		t.Fatalf("ROWS = %d, want 25", got)
	}
	if got := c.MayString("KEEP", ""); got != "fromenv" {
		t.Fatalf("existing env should win, got %q", got)
	}
	os.Unsetenv("GSA_DOT_ROWS")
}
