package exporter

import (
	"fmt"
	"io"
	"time"
	_ "time/tzdata"

	"zoomctl/pkg/query"
	"zoomctl/pkg/scraper"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// slotLayout is how the upcoming page writes start times, e.g. "2024-3-4 10:00".
const slotLayout = "2006-1-2 15:04"

// eventNamespace seeds the event UIDs so re-exporting the same slot gives the same UID.
var eventNamespace = uuid.MustParse("6f1c2a52-7d4b-4f0e-9a51-3c1f6f7f2b10")

// GenerateICS writes one calendar event per dated slot of every row.
// Webinars and slots that cannot be parsed are skipped. It returns the number of events written.
func GenerateICS(rows []query.Row, length time.Duration, w io.Writer) (int, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//zoomctl//Upcoming Zoom Meetings//EN")

	// Course times on the page are Hong Kong local time
	loc, err := time.LoadLocation("Asia/Hong_Kong")
	if err != nil {
		return 0, fmt.Errorf("could not load timezone: %w", err)
	}

	count := 0
	for _, r := range rows {
		for _, slot := range r.Slots() {
			if slot == scraper.Webinar {
				continue
			}

			start, err := time.ParseInLocation(slotLayout, slot, loc)
			if err != nil {
				continue
			}

			uid := uuid.NewSHA1(eventNamespace, []byte(r.Code+"|"+r.ZoomID+"|"+slot))
			event := cal.AddEvent(uid.String() + "@zoomctl")
			event.SetCreatedTime(time.Now())
			event.SetDtStampTime(time.Now())
			event.SetModifiedAt(time.Now())
			event.SetStartAt(start)
			event.SetEndAt(start.Add(length))
			event.SetSummary(fmt.Sprintf("%s - %s", r.Code, r.Name))
			event.SetLocation(r.Link)
			event.SetURL(r.Link)
			event.SetDescription(fmt.Sprintf("Zoom ID: %s\nJoin: %s", r.ZoomID, r.Link))
			count++
		}
	}

	return count, cal.SerializeTo(w)
}
