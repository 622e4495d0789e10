package repo

import (
	"strconv"
	"strings"

	"gsa/internal/core/filter"
	perr "gsa/internal/platform/errors"
	pstrings "gsa/internal/platform/strings"
)

// ListQuery is a filter string lowered onto the filters table
type ListQuery struct {
	Where   string // boolean SQL expression, empty matches everything
	Args    []any
	OrderBy string
	Limit   int // negative means no limit
	Offset  int
}

// criteria keywords and the column each one reads
var columns = map[string]string{
	"name":    "name",
	"comment": "comment",
	"type":    "filter_type",
	"term":    "term",
	"uuid":    "id::text",
}

// sort fields and the column each one orders by
var sortColumns = map[string]string{
	"name":         "name",
	"comment":      "comment",
	"type":         "filter_type",
	"term":         "term",
	"created":      "created_at",
	"creation":     "created_at",
	"modified":     "modified_at",
	"modification": "modified_at",
}

// BuildList interprets f against the filters table
//
//	first=N rows=M         -> OFFSET N-1 LIMIT M, rows=-1 lifts the limit
//	sort=x, sort-reverse=x -> ORDER BY a whitelisted column, name otherwise
//	name=x name~x type=x   -> column predicates
//	free text              -> name, comment or term contains the text
//
// Terms are joined with AND unless an or sits between them; not negates the next term
func BuildList(f *filter.Filter) (ListQuery, error) {
	q := ListQuery{Limit: f.Rows(), Offset: f.FirstRow() - 1}
	if q.Limit == 0 {
		q.Limit = filter.DefaultRowsPerPage
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	col, ok := sortColumns[f.SortBy()]
	if !ok {
		col = "name"
	}
	dir := "ASC"
	if f.SortOrder() == "sort-reverse" {
		dir = "DESC"
	}
	q.OrderBy = col + " " + dir + ", id ASC"

	var (
		expr   string
		op     = "AND"
		negate bool
	)
	for _, t := range f.AllTerms() {
		if t.HasKeyword() && filter.IsSettingKeyword(t.Keyword) {
			continue
		}
		if t.IsCombinator() {
			switch t.Value.String() {
			case filter.Or:
				op = "OR"
			case filter.And:
				op = "AND"
			case filter.Not:
				negate = !negate
			}
			continue
		}

		cond, err := q.predicate(t)
		if err != nil {
			return ListQuery{}, err
		}
		if negate {
			cond = "NOT " + cond
		}
		if expr == "" {
			expr = cond
		} else {
			expr = "(" + expr + " " + op + " " + cond + ")"
		}
		op, negate = "AND", false
	}
	q.Where = expr
	return q, nil
}

// predicate renders one criteria term, binding its value as the next arg
func (q *ListQuery) predicate(t filter.Term) (string, error) {
	v := pstrings.Unquote(t.Value.String())

	if !t.HasKeyword() {
		p := q.bind("%" + escapeLike(v) + "%")
		return "(name ILIKE " + p + " OR comment ILIKE " + p + " OR term ILIKE " + p + ")", nil
	}

	col, ok := columns[t.Keyword]
	if !ok {
		return "", perr.WithField(perr.InvalidArgf("unknown filter keyword %q", t.Keyword), "filter")
	}
	switch t.Relation {
	case filter.RelEqual:
		return "(" + col + " = " + q.bind(v) + ")", nil
	case filter.RelContains, filter.RelColon, "":
		return "(" + col + " ILIKE " + q.bind("%"+escapeLike(v)+"%") + ")", nil
	case filter.RelLess:
		return "(" + col + " < " + q.bind(v) + ")", nil
	case filter.RelGreater:
		return "(" + col + " > " + q.bind(v) + ")", nil
	}
	return "", perr.WithField(perr.InvalidArgf("unsupported relation %q for %s", t.Relation, t.Keyword), "filter")
}

func (q *ListQuery) bind(v any) string {
	q.Args = append(q.Args, v)
	return "$" + strconv.Itoa(len(q.Args))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

// whereClause renders q.Where as a WHERE clause, empty when there are no criteria
func (q ListQuery) whereClause() string {
	if q.Where == "" {
		return ""
	}
	return " WHERE " + q.Where
}

// window renders LIMIT and OFFSET
func (q ListQuery) window() string {
	var b strings.Builder
	if q.Limit >= 0 {
		b.WriteString(" LIMIT " + strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		b.WriteString(" OFFSET " + strconv.Itoa(q.Offset))
	}
	return b.String()
}
