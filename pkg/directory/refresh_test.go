package directory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"zoomctl/pkg/scraper"
)

type fakeFetcher struct {
	records []scraper.RawRecord
	err     error
}

func (f fakeFetcher) FetchUpcoming(scraper.CredentialProvider) ([]scraper.RawRecord, error) {
	return f.records, f.err
}

func TestRefresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoom_ids.json")
	records := []scraper.RawRecord{
		rec("COMP2011", "2024-3-4 10:00", "Programming", "123456789"),
		rec("COMP2011", "2024-3-6 10:00", "Programming", "123456789"),
		rec("ACCT2010", "Webinar", "Accounting", "987654321"),
	}

	dir, err := Refresh(fakeFetcher{records: records}, nil, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dir) != 2 || dir.CourseCount() != 2 {
		t.Errorf("expected 2 majors with 2 courses, got %+v", dir)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("expected refreshed directory to be saved: %v", err)
	}
	if loaded.CourseCount() != 2 {
		t.Errorf("expected 2 saved courses, got %d", loaded.CourseCount())
	}

	// A second refresh starts from scratch and does not duplicate slots.
	dir, err = Refresh(fakeFetcher{records: records}, nil, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	comp, _ := dir.Major("COMP")
	if got := comp.Courses[0].Time; got != "2024-3-4 10:00\n2024-3-6 10:00" {
		t.Errorf("expected slots from one pass only, got %q", got)
	}
}

func TestRefresh_FailedFetchKeepsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoom_ids.json")
	if err := Save(Directory{{Abbr: "MATH", Courses: []Course{{Code: "MATH1013"}}}}, path); err != nil {
		t.Fatalf("failed to save fixture: %v", err)
	}
	before, _ := os.ReadFile(path)

	fetchErr := errors.New("boom")
	if _, err := Refresh(fakeFetcher{err: fetchErr}, nil, path); !errors.Is(err, fetchErr) {
		t.Fatalf("expected fetch error, got %v", err)
	}

	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Errorf("expected the saved directory to be untouched after a failed fetch")
	}
}
