package scraper

// Webinar is the literal the upcoming page shows instead of a start time
// for meetings without a fixed slot.
const Webinar = "Webinar"

// RawRecord is one row of the upcoming meetings table, as extracted from the page.
type RawRecord struct {
	Major  string // "COMP", the leading four letters of Code
	Code   string // "COMP2011" or "COMP1021L1"
	Time   string // "2024-3-4 10:00" or Webinar
	Name   string
	ZoomID string // 9 or 10 digits
	Link   string
}
