package query

import (
	"fmt"

	"zoomctl/pkg/directory"
)

// Attribute is a course column that can be filtered, sorted or hidden.
type Attribute int

const (
	AttrMajor Attribute = iota
	AttrCode
	AttrName
	AttrTime
	AttrZoomID
	AttrLink
)

// Attributes lists every attribute in display order.
var Attributes = []Attribute{AttrMajor, AttrCode, AttrName, AttrTime, AttrZoomID, AttrLink}

func (a Attribute) String() string {
	switch a {
	case AttrMajor:
		return "major"
	case AttrCode:
		return "code"
	case AttrName:
		return "name"
	case AttrTime:
		return "time"
	case AttrZoomID:
		return "zoom-id"
	case AttrLink:
		return "link"
	}
	return fmt.Sprintf("Attribute(%d)", int(a))
}

// Shorthand is the single letter used by --hide and --sort.
func (a Attribute) Shorthand() rune {
	switch a {
	case AttrMajor:
		return 'm'
	case AttrCode:
		return 'c'
	case AttrName:
		return 'n'
	case AttrTime:
		return 't'
	case AttrZoomID:
		return 'z'
	case AttrLink:
		return 'l'
	}
	return '?'
}

// ParseColumns reads a run of column shorthands such as "nl".
// Repeated letters are kept once, at their first position.
func ParseColumns(s string) ([]Attribute, error) {
	var cols []Attribute
	seen := make(map[Attribute]bool)

	for _, r := range s {
		attr, ok := attributeByShorthand(r)
		if !ok {
			return nil, &UsageError{Msg: fmt.Sprintf("unknown column %q in %q, expected one of m, c, n, t, z, l", r, s)}
		}
		if !seen[attr] {
			seen[attr] = true
			cols = append(cols, attr)
		}
	}
	return cols, nil
}

func attributeByShorthand(r rune) (Attribute, bool) {
	for _, a := range Attributes {
		if a.Shorthand() == r {
			return a, true
		}
	}
	return 0, false
}

// Row is a matching course together with the major it belongs to.
type Row struct {
	Major string
	directory.Course
}

// Field returns the value of attr for this row.
func (r Row) Field(attr Attribute) string {
	switch attr {
	case AttrMajor:
		return r.Major
	case AttrCode:
		return r.Code
	case AttrName:
		return r.Name
	case AttrTime:
		return r.Time
	case AttrZoomID:
		return r.ZoomID
	case AttrLink:
		return r.Link
	}
	return ""
}

// values returns what a filter on attr is tested against. Every slot of a
// course that meets several times is tested on its own.
func (r Row) values(attr Attribute) []string {
	if attr == AttrTime {
		return r.Slots()
	}
	return []string{r.Field(attr)}
}

// Projection is a row with hidden columns left out.
type Projection struct {
	Major  *string `json:"major,omitempty" yaml:"major,omitempty"`
	Code   *string `json:"code,omitempty" yaml:"code,omitempty"`
	Name   *string `json:"name,omitempty" yaml:"name,omitempty"`
	Time   *string `json:"time,omitempty" yaml:"time,omitempty"`
	ZoomID *string `json:"zoomId,omitempty" yaml:"zoomId,omitempty"`
	Link   *string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Project keeps only the given columns of r.
func (r Row) Project(cols []Attribute) Projection {
	var p Projection
	for _, c := range cols {
		v := r.Field(c)
		switch c {
		case AttrMajor:
			p.Major = &v
		case AttrCode:
			p.Code = &v
		case AttrName:
			p.Name = &v
		case AttrTime:
			p.Time = &v
		case AttrZoomID:
			p.ZoomID = &v
		case AttrLink:
			p.Link = &v
		}
	}
	return p
}
