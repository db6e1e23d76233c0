package query

import (
	"sort"
	"strings"

	"zoomctl/pkg/directory"
)

// Options is what a find invocation asks for.
type Options struct {
	All     bool
	Filters map[Attribute]string // raw filter expression per attribute
	Sort    []Attribute
	Hide    []Attribute
}

type predicate struct {
	attr Attribute
	node Node
}

// Query is a validated, parsed set of options.
type Query struct {
	all        bool
	predicates []predicate
	sortKeys   []Attribute
	hidden     map[Attribute]bool
}

// NewQuery parses every filter in opts. Filters are combined with AND.
// All cannot be combined with filters, and one of the two is required.
func NewQuery(opts Options) (*Query, error) {
	if opts.All && len(opts.Filters) > 0 {
		return nil, &UsageError{Msg: "--all cannot be combined with course filters"}
	}
	if !opts.All && len(opts.Filters) == 0 {
		return nil, &UsageError{Msg: "specify --all or at least one course filter"}
	}

	q := &Query{
		all:      opts.All,
		sortKeys: opts.Sort,
		hidden:   make(map[Attribute]bool),
	}

	for _, attr := range Attributes {
		expr, ok := opts.Filters[attr]
		if !ok {
			continue
		}
		node, err := Parse(attr, expr)
		if err != nil {
			return nil, err
		}
		q.predicates = append(q.predicates, predicate{attr: attr, node: node})
	}

	for _, attr := range opts.Hide {
		q.hidden[attr] = true
	}

	return q, nil
}

// Evaluate returns every course in dir that satisfies all filters, in
// directory order unless sort keys were given.
func (q *Query) Evaluate(dir directory.Directory) []Row {
	var rows []Row

	for _, major := range dir {
		for _, course := range major.Courses {
			row := Row{Major: major.Abbr, Course: course}
			if q.all || q.matches(row) {
				rows = append(rows, row)
			}
		}
	}

	SortRows(rows, q.sortKeys)
	return rows
}

func (q *Query) matches(row Row) bool {
	for _, p := range q.predicates {
		if !p.node.Match(row.values(p.attr)) {
			return false
		}
	}
	return true
}

// Columns returns the columns to display, in display order.
func (q *Query) Columns() []Attribute {
	var cols []Attribute
	for _, attr := range Attributes {
		if !q.hidden[attr] {
			cols = append(cols, attr)
		}
	}
	return cols
}

// String describes the parsed filters, e.g. "major=C*** code=~1".
func (q *Query) String() string {
	if q.all {
		return "all"
	}
	parts := make([]string, 0, len(q.predicates))
	for _, p := range q.predicates {
		parts = append(parts, p.attr.String()+"="+p.node.String())
	}
	return strings.Join(parts, " ")
}

// SortRows orders rows by keys, first key first. Ties keep their order.
func SortRows(rows []Row, keys []Attribute) {
	if len(keys) == 0 {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		for _, k := range keys {
			a, b := rows[i].Field(k), rows[j].Field(k)
			if a != b {
				return a < b
			}
		}
		return false
	})
}

// ParseOptions builds Options from the raw strings of a find invocation.
// hide and sortKeys are runs of column shorthands such as "nl".
func ParseOptions(all bool, filters map[Attribute]string, hide, sortKeys string) (Options, error) {
	opts := Options{All: all}

	if len(filters) > 0 {
		opts.Filters = make(map[Attribute]string, len(filters))
		for attr, expr := range filters {
			opts.Filters[attr] = expr
		}
	}

	var err error
	if opts.Hide, err = ParseColumns(hide); err != nil {
		return Options{}, err
	}
	if opts.Sort, err = ParseColumns(sortKeys); err != nil {
		return Options{}, err
	}
	return opts, nil
}
