package scraper

import (
	"context"
	"net/url"
	"npd/internal/models"
	"npd/internal/providers"
	"npd/internal/scraper/interfaces"
	"npd/internal/structures"
	"time"
)

const (
	youtubeSearchBase    = "https://www.youtube.com/results?search_query="
	spotifySearchBase    = "https://open.spotify.com/search/"
	appleMusicSearchBase = "https://music.apple.com/search?term="
)

// Assembler combines page-scraped fields, parser output and resolver
// output into one canonical StationSnapshot. It never returns an error:
// an upstream page-read failure becomes the snapshot failure variant.
type Assembler struct {
	resolver interfaces.ResolverInterface
	logger   providers.Logger
	now      func() time.Time
}

func NewAssembler(resolver interfaces.ResolverInterface, logger providers.Logger) *Assembler {
	return &Assembler{
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

// Assemble builds the snapshot for one station. readErr set means the page
// read failed; the result is then the failure variant with identity and
// timestamp populated.
func (a *Assembler) Assemble(ctx context.Context, station structures.Station, page *interfaces.PageResult, readErr error) *models.StationSnapshot {
	snap := &models.StationSnapshot{
		StationID:   station.ID,
		StationName: station.Name,
		SourceURL:   station.URL,
		CapturedAt:  a.now().Format(time.RFC3339),
	}

	if readErr != nil {
		snap.Error = readErr.Error()
		return snap
	}

	snap.RawNow = page.RawNow
	snap.Artist, snap.Title = ParseTrack(page.RawNow, page.Artist, page.Title)

	query := a.buildQuery(snap, station)
	snap.Links = buildSearchLinks(query)

	res := a.resolver.Resolve(ctx, query)
	if res.Catalog != nil {
		if res.Catalog.SourceURL != "" {
			snap.Links[models.LinkApple] = res.Catalog.SourceURL
		}
		snap.ArtworkURL = res.Catalog.ArtworkURL
	}
	if res.VideoURL != "" {
		snap.Links[models.LinkYoutubeExact] = res.VideoURL
	}

	// Page artwork wins over catalog artwork.
	if page.ArtworkURL != "" {
		snap.ArtworkURL = page.ArtworkURL
	}

	return snap
}

// buildQuery picks the lookup term: resolved track, else raw text, else the
// station name so the search links still lead somewhere useful.
func (a *Assembler) buildQuery(snap *models.StationSnapshot, station structures.Station) string {
	if snap.HasTrack() {
		return snap.Artist + " " + snap.Title
	}
	if snap.RawNow != "" {
		return snap.RawNow
	}
	return station.Name
}

// buildSearchLinks constructs the three search-style fallback links every
// snapshot carries regardless of lookup outcome.
func buildSearchLinks(query string) models.LinkBundle {
	q := url.QueryEscape(query)
	return models.LinkBundle{
		models.LinkYoutubeSearch:    youtubeSearchBase + q,
		models.LinkSpotifySearch:    spotifySearchBase + q,
		models.LinkAppleMusicSearch: appleMusicSearchBase + q,
	}
}
