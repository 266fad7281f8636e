package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"npd/internal/providers"
	"npd/internal/scraper/interfaces"
	"npd/internal/structures"
	"regexp"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
)

const (
	artworkSmallSuffix = "100x100bb.jpg"
	artworkLargeSuffix = "600x600bb.jpg"

	watchURLPrefix = "https://www.youtube.com/watch?v="

	// Search-result payloads are large; a videoId token appears early.
	maxVideoPayloadBytes = 2 << 20
)

var (
	videoIDPattern    = regexp.MustCompile(`"videoId":"([^"]+)"`)
	watchTokenPattern = regexp.MustCompile(`watch\?v=([^"'&<>\s\\]+)`)
)

// itunesResponse mirrors the catalog search API payload.
type itunesResponse struct {
	ResultCount int `json:"resultCount"`
	Results     []struct {
		ArtworkUrl100     string `json:"artworkUrl100"`
		TrackViewUrl      string `json:"trackViewUrl"`
		CollectionViewUrl string `json:"collectionViewUrl"`
		ArtistViewUrl     string `json:"artistViewUrl"`
		ArtistName        string `json:"artistName"`
		TrackName         string `json:"trackName"`
	} `json:"results"`
}

// Resolver queries the music catalog and the video search endpoint.
// Both lookups are best-effort: every failure degrades to "no result"
// and is logged, never returned.
type Resolver struct {
	client  *http.Client
	config  *structures.Config
	logger  providers.Logger
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewResolver(conf *structures.Config, logger providers.Logger, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) interfaces.ResolverInterface {
	return &Resolver{
		client:  &http.Client{Timeout: conf.Resolver.Timeout},
		config:  conf,
		logger:  logger,
		cache:   cache,
		metrics: metrics,
	}
}

// Resolve runs the two lookups concurrently and joins them. An empty query
// short-circuits without any network call.
func (r *Resolver) Resolve(ctx context.Context, query string) interfaces.Resolution {
	var res interfaces.Resolution
	if query == "" {
		return res
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		res.Catalog = r.lookupCatalog(ctx, query)
	}()
	go func() {
		defer wg.Done()
		res.VideoURL = r.lookupVideo(ctx, query)
	}()
	wg.Wait()

	return res
}

// lookupCatalog asks the catalog for the single best match and normalizes
// its artwork to the large variant. Returns nil on any failure.
func (r *Resolver) lookupCatalog(ctx context.Context, term string) *interfaces.CatalogMatch {
	cacheKey := "itunes:" + term
	if data, ok := r.cache.Get(cacheKey); ok {
		var m interfaces.CatalogMatch
		if err := json.Unmarshal(data, &m); err == nil {
			return &m
		}
	}

	searchURL := fmt.Sprintf("%s?term=%s&media=music&limit=1", r.config.Resolver.ItunesURL, url.QueryEscape(term))
	body, err := r.fetch(ctx, searchURL)
	if err != nil {
		r.logger.Warnf(providers.TypeScrape, "Catalog lookup failed for %q: %s", term, err)
		r.metrics.IncLookupFailures("itunes")
		return nil
	}

	var payload itunesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		r.logger.Warnf(providers.TypeScrape, "Catalog lookup returned non-JSON for %q: %s", term, err)
		r.metrics.IncLookupFailures("itunes")
		return nil
	}
	if payload.ResultCount == 0 || len(payload.Results) == 0 {
		return nil
	}

	first := payload.Results[0]
	match := &interfaces.CatalogMatch{
		ArtworkURL: upscaleArtwork(first.ArtworkUrl100),
		SourceURL:  firstNonEmpty(first.TrackViewUrl, first.CollectionViewUrl, first.ArtistViewUrl),
		Artist:     first.ArtistName,
		Track:      first.TrackName,
	}

	if data, err := json.Marshal(match); err == nil {
		r.cache.Set(cacheKey, data)
	}
	return match
}

// lookupVideo scans the search-results payload for the first watch
// identifier and builds a canonical watch URL. Returns "" on any failure.
func (r *Resolver) lookupVideo(ctx context.Context, term string) string {
	cacheKey := "yt:" + term
	if data, ok := r.cache.Get(cacheKey); ok {
		return string(data)
	}

	searchURL := fmt.Sprintf("%s?search_query=%s", r.config.Resolver.YoutubeURL, url.QueryEscape(term))
	body, err := r.fetch(ctx, searchURL)
	if err != nil {
		r.logger.Warnf(providers.TypeScrape, "Video lookup failed for %q: %s", term, err)
		r.metrics.IncLookupFailures("youtube")
		return ""
	}

	id := firstSubmatch(videoIDPattern, body)
	if id == "" {
		id = firstSubmatch(watchTokenPattern, body)
	}
	if id == "" {
		return ""
	}

	watchURL := watchURLPrefix + id
	r.cache.Set(cacheKey, []byte(watchURL))
	return watchURL
}

func (r *Resolver) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxVideoPayloadBytes))
}

// upscaleArtwork rewrites the catalog's standard small artwork variant to
// the largest standard one. Unknown shapes pass through untouched.
func upscaleArtwork(artworkURL string) string {
	if strings.HasSuffix(artworkURL, artworkSmallSuffix) {
		return strings.TrimSuffix(artworkURL, artworkSmallSuffix) + artworkLargeSuffix
	}
	return artworkURL
}

func firstSubmatch(re *regexp.Regexp, body []byte) string {
	if m := re.FindSubmatch(body); len(m) > 1 {
		return string(m[1])
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
