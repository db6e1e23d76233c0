// Package directory holds the majors and courses read from the upcoming
// meetings page, and keeps them on disk between runs.
package directory

import "strings"

// SlotSeparator joins the time slots of a course that meets more than once.
const SlotSeparator = "\n"

// Course is one course section and its Zoom meeting.
type Course struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Time   string `json:"time"` // "2024-3-4 10:00", "Webinar", or several slots joined by SlotSeparator
	ZoomID string `json:"zoomId"`
	Link   string `json:"link"`
}

// Slots splits Time into its individual slots.
func (c Course) Slots() []string {
	if c.Time == "" {
		return nil
	}
	return strings.Split(c.Time, SlotSeparator)
}

// sameMeeting reports whether two courses only differ in their time.
func (c Course) sameMeeting(o Course) bool {
	return c.Code == o.Code && c.Name == o.Name && c.ZoomID == o.ZoomID && c.Link == o.Link
}

// Major groups the courses of one department, e.g. "COMP".
type Major struct {
	Abbr    string   `json:"abbr"`
	Courses []Course `json:"courses"`
}

// Directory is every major known, sorted by abbreviation.
type Directory []Major

// Major returns the major with the given abbreviation.
func (d Directory) Major(abbr string) (*Major, bool) {
	for i := range d {
		if d[i].Abbr == abbr {
			return &d[i], true
		}
	}
	return nil, false
}

// CourseCount returns the number of courses over all majors.
func (d Directory) CourseCount() int {
	n := 0
	for _, m := range d {
		n += len(m.Courses)
	}
	return n
}

// Clone returns a deep copy of d.
func (d Directory) Clone() Directory {
	if d == nil {
		return nil
	}
	out := make(Directory, len(d))
	for i, m := range d {
		out[i] = Major{Abbr: m.Abbr}
		if m.Courses != nil {
			out[i].Courses = append([]Course(nil), m.Courses...)
		}
	}
	return out
}
