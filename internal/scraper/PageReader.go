package scraper

import (
	"context"
	"fmt"
	"net/http"
	"npd/internal/providers"
	"npd/internal/scraper/interfaces"
	"npd/internal/structures"

	"github.com/PuerkitoBio/goquery"
)

// Default selectors match the radio-south-africa station pages.
const (
	defaultNowSelector             = ".latest-song"
	defaultArtistSelector          = ".latest-song .artist-name"
	defaultTitleSelector           = ".latest-song .song-name"
	defaultArtworkSelector         = "#player_image"
	defaultArtworkFallbackSelector = "#player_image_background"
)

type PageReader struct {
	client *http.Client
	config *structures.Config
	logger providers.Logger
}

func NewPageReader(conf *structures.Config, logger providers.Logger) interfaces.PageReaderInterface {
	return &PageReader{
		client: &http.Client{Timeout: conf.Scraper.Timeout},
		config: conf,
		logger: logger,
	}
}

// Read fetches the station page and extracts the now-playing fields.
// Any transport, status or parse failure is returned as an error; the
// caller turns it into the snapshot failure variant.
func (pr *PageReader) Read(ctx context.Context, station structures.Station) (*interfaces.PageResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, station.URL, nil)
	if err != nil {
		return nil, err
	}
	if ua := pr.config.Scraper.UserAgent; ua != "" {
		req.Header.Set("User-Agent", ua)
	}

	resp, err := pr.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", station.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", station.URL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", station.URL, err)
	}

	sel := station.Selectors
	result := &interfaces.PageResult{
		RawNow: Normalize(doc.Find(orDefault(sel.Now, defaultNowSelector)).First().Text()),
		Artist: Normalize(doc.Find(orDefault(sel.Artist, defaultArtistSelector)).First().Text()),
		Title:  Normalize(doc.Find(orDefault(sel.Title, defaultTitleSelector)).First().Text()),
	}

	artwork, ok := doc.Find(orDefault(sel.Artwork, defaultArtworkSelector)).First().Attr("src")
	if !ok || artwork == "" {
		artwork, _ = doc.Find(orDefault(sel.ArtworkFallback, defaultArtworkFallbackSelector)).First().Attr("src")
	}
	result.ArtworkURL = Normalize(artwork)

	if result.RawNow == "" && result.Artist == "" && result.Title == "" {
		return nil, fmt.Errorf("page %s: now-playing markup not found", station.URL)
	}

	pr.logger.Debugf(providers.TypeScrape, "Read %s: now=%q artist=%q title=%q", station.ID, result.RawNow, result.Artist, result.Title)
	return result, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
