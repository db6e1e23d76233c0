package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"zoomctl/pkg/directory"
	"zoomctl/pkg/query"
)

func TestGenerateICS(t *testing.T) {
	rows := []query.Row{
		{Major: "COMP", Course: directory.Course{
			Code:   "COMP2011",
			Name:   "Programming",
			Time:   "2024-3-4 10:00\n2024-3-6 10:00",
			ZoomID: "123456789",
			Link:   "https://hkust.zoom.us/j/123456789",
		}},
		{Major: "ACCT", Course: directory.Course{
			Code:   "ACCT2010",
			Name:   "Lab Session",
			Time:   "Webinar",
			ZoomID: "987654321",
			Link:   "https://hkust.zoom.us/w/987654321",
		}},
	}

	var buf bytes.Buffer
	n, err := GenerateICS(rows, time.Hour, &buf)
	if err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 events (webinar skipped), got %d", n)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:COMP2011 - Programming") {
		t.Errorf("Expected ICS to contain course summary, got: \n%s", output)
	}
	if strings.Contains(output, "ACCT2010") {
		t.Errorf("Expected webinar to be skipped")
	}

	// 04-Mar-2024 10:00 Hong Kong time is 02:00 UTC.
	if !strings.Contains(output, "DTSTART:20240304T020000Z") {
		t.Errorf("Expected start time string in ICS (should be UTC), got: \n%s", output)
	}
	if !strings.Contains(output, "DTEND:20240306T030000Z") {
		t.Errorf("Expected end time one hour after the second slot, got: \n%s", output)
	}
}

func TestGenerateICS_StableUIDs(t *testing.T) {
	rows := []query.Row{{Major: "COMP", Course: directory.Course{
		Code: "COMP2011", Name: "Programming", Time: "2024-3-4 10:00", ZoomID: "123456789", Link: "https://x",
	}}}

	var first, second bytes.Buffer
	if _, err := GenerateICS(rows, time.Hour, &first); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}
	if _, err := GenerateICS(rows, time.Hour, &second); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	uidLine := func(s string) string {
		for _, line := range strings.Split(s, "\n") {
			if strings.HasPrefix(line, "UID:") {
				return strings.TrimSpace(line)
			}
		}
		return ""
	}

	if uidLine(first.String()) == "" || uidLine(first.String()) != uidLine(second.String()) {
		t.Errorf("expected identical UIDs across exports, got %q and %q", uidLine(first.String()), uidLine(second.String()))
	}
}

func TestGenerateICS_WithoutZoneinfo(t *testing.T) {
	// An empty zoneinfo directory leaves only the embedded database.
	t.Setenv("ZONEINFO", t.TempDir())

	rows := []query.Row{
		{Major: "MATH", Course: directory.Course{
			Code:   "MATH1013",
			Name:   "Calculus",
			Time:   "2024-9-2 09:00",
			ZoomID: "111222333",
			Link:   "https://hkust.zoom.us/j/111222333",
		}},
	}

	var buf bytes.Buffer
	if _, err := GenerateICS(rows, time.Hour, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}
	if !strings.Contains(buf.String(), "DTSTART:20240902T010000Z") {
		t.Errorf("Expected Hong Kong start time in UTC, got: \n%s", buf.String())
	}
}
