package repo

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"gsa/internal/core/filter"
	perr "gsa/internal/platform/errors"
)

func TestBuildList(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		in     string
		where  string
		args   []any
		order  string
		window string
	}{
		{
			name:   "empty",
			in:     "",
			order:  "name ASC, id ASC",
			window: " LIMIT 50",
		},
		{
			name:   "paging",
			in:     "first=21 rows=10",
			order:  "name ASC, id ASC",
			window: " LIMIT 10 OFFSET 20",
		},
		{
			name:   "all rows",
			in:     "rows=-1 first=1",
			order:  "name ASC, id ASC",
			window: "",
		},
		{
			name:   "sort reverse modified",
			in:     "sort-reverse=modified",
			order:  "modified_at DESC, id ASC",
			window: " LIMIT 50",
		},
		{
			name:   "unknown sort falls back to name",
			in:     "sort=severity",
			order:  "name ASC, id ASC",
			window: " LIMIT 50",
		},
		{
			name:   "exact and contains",
			in:     "name=nightly type~res",
			where:  "((name = $1) AND (filter_type ILIKE $2))",
			args:   []any{"nightly", "%res%"},
			order:  "name ASC, id ASC",
			window: " LIMIT 50",
		},
		{
			name:   "or and not",
			in:     "name~a or not type=task",
			where:  "((name ILIKE $1) OR NOT (filter_type = $2))",
			args:   []any{"%a%", "task"},
			order:  "name ASC, id ASC",
			window: " LIMIT 50",
		},
		{
			name:   "free text escapes like",
			in:     `"50%_off"`,
			where:  "(name ILIKE $1 OR comment ILIKE $1 OR term ILIKE $1)",
			args:   []any{`%50\%\_off%`},
			order:  "name ASC, id ASC",
			window: " LIMIT 50",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := BuildList(filter.Parse(tc.in))
			if err != nil {
				t.Fatalf("BuildList(%q): %v", tc.in, err)
			}
			if q.Where != tc.where {
				t.Fatalf("where = %q, want %q", q.Where, tc.where)
			}
			if len(tc.args) > 0 && !reflect.DeepEqual(q.Args, tc.args) {
				t.Fatalf("args = %#v, want %#v", q.Args, tc.args)
			}
			if q.OrderBy != tc.order {
				t.Fatalf("order = %q, want %q", q.OrderBy, tc.order)
			}
			if got := q.window(); got != tc.window {
				t.Fatalf("window = %q, want %q", got, tc.window)
			}
		})
	}
}

func TestBuildList_Rejects(t *testing.T) {
	t.Parallel()

	bad := []*filter.Filter{
		filter.Parse("owner=admin"),
		filter.FromTerms(filter.Term{Keyword: "name", Relation: "!=", Value: filter.Str("x")}),
	}
	for _, f := range bad {
		_, err := BuildList(f)
		if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
			t.Fatalf("BuildList(%q) err = %v, want invalid argument", f.FilterString(), err)
		}
		if fe, ok := perr.As(err); !ok || fe.Field() != "filter" {
			t.Fatalf("field not attached: %v", err)
		}
	}
}

func TestWhereClause(t *testing.T) {
	t.Parallel()

	if got := (ListQuery{}).whereClause(); got != "" {
		t.Fatalf("empty where = %q", got)
	}
	if got := (ListQuery{Where: "(name = $1)"}).whereClause(); got != " WHERE (name = $1)" {
		t.Fatalf("where = %q", got)
	}
}

// columnPred matches one keyword predicate rendered by BuildList
var columnPred = regexp.MustCompile(`\((?:name|comment|filter_type|term|id::text) (?:=|ILIKE|<|>) \$(\d+)\)`)

// evalWhere evaluates q.Where with every predicate replaced by truth[arg]
func evalWhere(t *testing.T, q ListQuery, truth map[string]bool) bool {
	t.Helper()
	src := columnPred.ReplaceAllStringFunc(q.Where, func(m string) string {
		n, _ := strconv.Atoi(columnPred.FindStringSubmatch(m)[1])
		return " " + strconv.FormatBool(truth[fmt.Sprint(q.Args[n-1])]) + " "
	})
	src = strings.NewReplacer("(", " ( ", ")", " ) ").Replace(src)
	toks := strings.Fields(src)

	var expr, unary func() bool
	unary = func() bool {
		tok := toks[0]
		toks = toks[1:]
		switch tok {
		case "NOT":
			return !unary()
		case "(":
			v := expr()
			toks = toks[1:]
			return v
		case "true", "false":
			return tok == "true"
		}
		t.Fatalf("unexpected token %q in %q", tok, q.Where)
		return false
	}
	expr = func() bool {
		v := unary()
		for len(toks) > 0 && (toks[0] == "AND" || toks[0] == "OR") {
			op := toks[0]
			toks = toks[1:]
			r := unary()
			if op == "AND" {
				v = v && r
			} else {
				v = v || r
			}
		}
		return v
	}
	return expr()
}

func TestBuildList_NotIsComplement(t *testing.T) {
	t.Parallel()

	filters := []string{
		"name~a",
		"name~a or name~b",
		"name~a name~b",
		"not name~a and type=b",
		"name~a or type=b and not comment~c",
		"not not name~a or term~d rows=5",
	}
	keys := []string{"%a%", "b", "%b%", "%c%", "%d%"}
	for _, in := range filters {
		f := filter.Parse(in)
		pos, err := BuildList(f)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		neg, err := BuildList(f.Not())
		if err != nil {
			t.Fatalf("not %q: %v", in, err)
		}
		for mask := range 1 << len(keys) {
			truth := map[string]bool{}
			for i, k := range keys {
				truth[k] = mask&(1<<i) != 0
			}
			if evalWhere(t, pos, truth) == evalWhere(t, neg, truth) {
				t.Fatalf("%q: Not() is not the complement under %v\n  %s\n  %s", in, truth, pos.Where, neg.Where)
			}
		}
	}
}
