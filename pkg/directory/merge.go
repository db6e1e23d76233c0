package directory

import (
	"sort"

	"zoomctl/pkg/scraper"
)

// Merge folds records into a copy of dir and returns it; dir itself is not modified.
//
// A record whose code, name, Zoom ID and link match a course already in its
// major adds its time as another slot of that course. Anything else becomes a
// new course. Afterwards courses are sorted by code and name, and majors by
// abbreviation.
//
// Merging the same records into an already merged directory adds their
// slots a second time, so a full refresh has to start from an empty Directory.
func Merge(dir Directory, records []scraper.RawRecord) Directory {
	out := dir.Clone()

	for _, r := range records {
		major, ok := out.Major(r.Major)
		if !ok {
			out = append(out, Major{Abbr: r.Major})
			major = &out[len(out)-1]
		}

		incoming := Course{
			Code:   r.Code,
			Name:   r.Name,
			Time:   r.Time,
			ZoomID: r.ZoomID,
			Link:   r.Link,
		}

		merged := false
		for i := range major.Courses {
			if major.Courses[i].sameMeeting(incoming) {
				major.Courses[i].Time += SlotSeparator + incoming.Time
				merged = true
				break
			}
		}
		if !merged {
			major.Courses = append(major.Courses, incoming)
		}
	}

	for i := range out {
		courses := out[i].Courses
		sort.SliceStable(courses, func(a, b int) bool {
			if courses[a].Code != courses[b].Code {
				return courses[a].Code < courses[b].Code
			}
			return courses[a].Name < courses[b].Name
		})
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Abbr < out[b].Abbr
	})

	return out
}
