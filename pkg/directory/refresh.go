package directory

import (
	"fmt"

	"zoomctl/pkg/scraper"
)

// Fetcher returns the current rows of the upcoming meetings page.
type Fetcher interface {
	FetchUpcoming(provider scraper.CredentialProvider) ([]scraper.RawRecord, error)
}

// Refresh fetches every row, merges them into a new Directory and saves it to path.
// Nothing is written unless the whole fetch succeeds.
func Refresh(f Fetcher, provider scraper.CredentialProvider, path string) (Directory, error) {
	records, err := f.FetchUpcoming(provider)
	if err != nil {
		return nil, err
	}

	dir := Merge(Directory{}, records)
	if err := Save(dir, path); err != nil {
		return nil, fmt.Errorf("fetched %d courses but could not save them: %w", dir.CourseCount(), err)
	}
	return dir, nil
}
