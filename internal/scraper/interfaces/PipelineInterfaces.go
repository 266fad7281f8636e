package interfaces

import (
	"context"
	"npd/internal/models"
	"npd/internal/structures"
)

// PageResult carries the fields scraped from one station page.
// Absent fields are empty strings; all text is whitespace-normalized.
type PageResult struct {
	RawNow     string
	Artist     string
	Title      string
	ArtworkURL string
}

// PageReaderInterface reads a station's now-playing page. A returned error
// means the source was unavailable (timeout, non-200, unparseable markup).
type PageReaderInterface interface {
	Read(ctx context.Context, station structures.Station) (*PageResult, error)
}

// CatalogMatch is an authoritative lookup result from the music catalog.
type CatalogMatch struct {
	ArtworkURL string
	SourceURL  string
	Artist     string
	Track      string
}

// Resolution bundles the best-effort external lookup results. Either or
// both fields may be absent.
type Resolution struct {
	Catalog  *CatalogMatch
	VideoURL string
}

// ResolverInterface performs the two external metadata lookups. It never
// returns an error: a failed or empty lookup leaves its field unset.
type ResolverInterface interface {
	Resolve(ctx context.Context, query string) Resolution
}

// HistoryReaderInterface serves daily logs by calendar date, transparently
// falling back from memory to disk to the archive tier.
type HistoryReaderInterface interface {
	History(date string) *models.DailyLog
}
