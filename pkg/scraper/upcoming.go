package scraper

import (
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

var (
	codePattern   = regexp.MustCompile(`^([A-Z]{4})[0-9A-Z]+$`)
	timePattern   = regexp.MustCompile(`^\d+-\d+-\d+\s\d+:\d+$`)
	zoomIDPattern = regexp.MustCompile(`^\d+$`)
)

// cellMatcher checks one table cell and copies what it found into rec.
type cellMatcher func(cell *goquery.Selection, rec *RawRecord) bool

// upcomingRow is the expected cell sequence of one meeting row.
// Cells after the last matcher are ignored.
var upcomingRow = []cellMatcher{
	matchCode,
	matchTime,
	matchName,
	matchZoomID,
	matchLink,
}

// ParseUpcoming extracts the meeting rows of the upcoming meetings page in
// page order. Rows that do not have the expected shape are skipped.
func ParseUpcoming(r io.Reader) ([]RawRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var records []RawRecord

	doc.Find("tr").Each(func(i int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("td")
		if cells.Length() < len(upcomingRow) {
			return
		}

		var rec RawRecord
		for j, match := range upcomingRow {
			if !match(cells.Eq(j), &rec) {
				log.Debug().Int("row", i).Int("cell", j).Msg("skipping row that does not look like a meeting")
				return
			}
		}
		records = append(records, rec)
	})

	return records, nil
}

// FetchUpcoming logs in if needed and returns every meeting row on the upcoming page.
func (c *Client) FetchUpcoming(provider CredentialProvider) ([]RawRecord, error) {
	body, err := c.FetchAuthenticated(baseURL, provider)
	if err != nil {
		return nil, err
	}

	return ParseUpcoming(strings.NewReader(body))
}

func matchCode(cell *goquery.Selection, rec *RawRecord) bool {
	m := codePattern.FindStringSubmatch(strings.TrimSpace(cell.Text()))
	if m == nil {
		return false
	}
	rec.Code = m[0]
	rec.Major = m[1]
	return true
}

func matchTime(cell *goquery.Selection, rec *RawRecord) bool {
	text := strings.TrimSpace(cell.Text())
	if text != Webinar && !timePattern.MatchString(text) {
		return false
	}
	rec.Time = text
	return true
}

// matchName accepts any text, including text split over lines or wrapped in markup.
func matchName(cell *goquery.Selection, rec *RawRecord) bool {
	rec.Name = strings.Join(strings.Fields(cell.Text()), " ")
	return true
}

func matchZoomID(cell *goquery.Selection, rec *RawRecord) bool {
	text := strings.TrimSpace(cell.Text())
	if !zoomIDPattern.MatchString(text) {
		return false
	}
	rec.ZoomID = text
	return true
}

func matchLink(cell *goquery.Selection, rec *RawRecord) bool {
	href, exists := cell.Find("a[href]").First().Attr("href")
	if !exists {
		return false
	}

	href = strings.TrimSpace(href)
	u, err := url.Parse(href)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return false
	}
	rec.Link = href
	return true
}
